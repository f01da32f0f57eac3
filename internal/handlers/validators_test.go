package handlers

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())

	type sample struct {
		Number   string `binding:"omitempty,docnumber"`
		Start    string `binding:"omitempty,hhmm"`
		Category string `binding:"omitempty,clientcategory"`
	}
	tests := []struct {
		name  string
		in    sample
		valid bool
	}{
		{"valid values", sample{Number: "2024-001", Start: "09:30", Category: "business"}, true},
		{"long sequence", sample{Number: "2024-1234"}, true},
		{"short year", sample{Number: "24-001"}, false},
		{"short sequence", sample{Number: "2024-01"}, false},
		{"hour out of range", sample{Start: "24:00"}, false},
		{"missing leading zero", sample{Start: "9:30"}, false},
		{"unknown category", sample{Category: "charity"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(tt.in)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
