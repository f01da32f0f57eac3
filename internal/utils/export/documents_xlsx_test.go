package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestDocumentsXLSX(t *testing.T) {
	doc := domain.Document{
		Number:    "2024-008",
		Type:      domain.Invoice,
		Status:    domain.StatusToPay,
		Client:    domain.DocumentClient{Name: "Villa Dupont"},
		IssueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		Totals: domain.Totals{
			Subtotal: decimal.NewFromInt(150),
			TotalTax: decimal.NewFromInt(25),
			Total:    decimal.RequireFromString("175.004"),
		},
	}

	data, err := DocumentsXLSX([]domain.Document{doc})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{documentsSheet}, f.GetSheetList())
	number, err := f.GetCellValue(documentsSheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "2024-008", number)
	client, _ := f.GetCellValue(documentsSheet, "D2")
	assert.Equal(t, "Villa Dupont", client)
	total, _ := f.GetCellValue(documentsSheet, "K2", excelize.Options{RawCellValue: true})
	assert.Equal(t, "175", total)
}

func TestDocumentsXLSXEmpty(t *testing.T) {
	data, err := DocumentsXLSX(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
