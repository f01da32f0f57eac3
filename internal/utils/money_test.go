package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRoundMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"12.345", "12.35"},
		{"12.344", "12.34"},
		{"58.3333333", "58.33"},
		{"-1.005", "-1.01"},
		{"50", "50"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := RoundMoney(decimal.RequireFromString(tt.in))
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "50.00", FormatMoney(decimal.NewFromInt(50)))
	assert.Equal(t, "0.10", FormatMoney(decimal.RequireFromString("0.1")))
	assert.Equal(t, "58.33", FormatMoney(decimal.NewFromInt(175).Div(decimal.NewFromInt(3))))
	assert.Equal(t, "20", FormatRate(decimal.RequireFromString("20.00")))
}
