package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDocument(rate int64) *domain.Document {
	settings := domain.DefaultSettings()
	settings.HourlyRate = decimal.NewFromInt(rate)
	return domain.NewDraft(domain.Invoice, settings, time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC))
}

func assertTotalsConsistent(t *testing.T, d *domain.Document) {
	t.Helper()
	assert.True(t, d.Total.Equal(d.Subtotal.Add(d.TotalTax)), "total must equal subtotal + totalTax")
	assert.True(t, d.TotalTax.Equal(d.ServicesTax.Add(d.GoodsTax)), "totalTax must equal servicesTax + goodsTax")
	assert.True(t, d.Subtotal.Equal(d.ServicesSubtotal.Add(d.GoodsSubtotal)))
}

func TestUpsertCategoryLine_PriceAndDuration(t *testing.T) {
	tests := []struct {
		name         string
		rate         int64
		selections   []domain.PrestationSelection
		wantDuration int
		wantPrice    string
	}{
		{
			name: "single prestation",
			rate: 25,
			selections: []domain.PrestationSelection{
				{PrestationID: "p1", Description: "Vacuum", DurationMinutes: 60, Quantity: 2},
			},
			wantDuration: 120,
			wantPrice:    "50",
		},
		{
			name: "several prestations summed",
			rate: 30,
			selections: []domain.PrestationSelection{
				{PrestationID: "p1", DurationMinutes: 30, Quantity: 1},
				{PrestationID: "p2", DurationMinutes: 15, Quantity: 3},
			},
			wantDuration: 75,
			wantPrice:    "37.5",
		},
		{
			name: "non-positive quantities are dropped",
			rate: 20,
			selections: []domain.PrestationSelection{
				{PrestationID: "p1", DurationMinutes: 45, Quantity: 1},
				{PrestationID: "p2", DurationMinutes: 60, Quantity: 0},
				{PrestationID: "p3", DurationMinutes: 60, Quantity: -2},
			},
			wantDuration: 45,
			wantPrice:    "15",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDocument(tt.rate)
			require.True(t, d.UpsertCategoryLine("Cleaning", tt.selections))
			require.Len(t, d.CategoryLines, 1)

			line := d.CategoryLines[0]
			assert.Equal(t, tt.wantDuration, line.TotalDurationMinutes)
			assert.True(t, line.Price.Equal(decimal.RequireFromString(tt.wantPrice)), "price %s", line.Price)
			expected := decimal.NewFromInt(int64(line.TotalDurationMinutes)).Mul(d.HourlyRate).Div(decimal.NewFromInt(60))
			assert.True(t, line.Price.Equal(expected))
			for _, p := range line.Prestations {
				assert.Positive(t, p.Quantity)
			}
			assertTotalsConsistent(t, d)
		})
	}
}

func TestUpsertCategoryLine_EmptySelectionIsNoop(t *testing.T) {
	d := newTestDocument(25)

	assert.False(t, d.UpsertCategoryLine("Cleaning", nil))
	assert.False(t, d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "p1", DurationMinutes: 60, Quantity: 0}}))
	assert.Empty(t, d.CategoryLines)
	assert.True(t, d.Total.IsZero())
}

func TestUpsertCategoryLine_SameNameReplaces(t *testing.T) {
	d := newTestDocument(25)
	d.UpsertCategoryLine("Garden", []domain.PrestationSelection{{PrestationID: "g1", DurationMinutes: 60, Quantity: 1}})
	d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "c1", DurationMinutes: 60, Quantity: 1}})
	d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "c2", DurationMinutes: 30, Quantity: 4}})

	require.Len(t, d.CategoryLines, 2)
	assert.Equal(t, "Garden", d.CategoryLines[0].Name)
	assert.Equal(t, "Cleaning", d.CategoryLines[1].Name)
	assert.Equal(t, 120, d.CategoryLines[1].TotalDurationMinutes)
	require.Len(t, d.CategoryLines[1].Prestations, 1)
	assert.Equal(t, "c2", d.CategoryLines[1].Prestations[0].PrestationID)
}

func TestMergeProductLines(t *testing.T) {
	d := newTestDocument(25)
	soap := domain.Product{ProductID: "soap", Name: "Soap", UnitPrice: decimal.RequireFromString("3.20"), Unit: "unit"}
	wine := domain.Product{ProductID: "wine", Name: "Wine", UnitPrice: decimal.RequireFromString("12.50"), Unit: "bottle"}
	oil := domain.Product{ProductID: "oil", Name: "Oil", UnitPrice: decimal.RequireFromString("7"), Unit: "liter"}

	d.MergeProductLines([]domain.ProductLine{domain.NewProductLine(soap, 2), domain.NewProductLine(wine, 1)})
	d.MergeProductLines([]domain.ProductLine{domain.NewProductLine(oil, 3), domain.NewProductLine(soap, 5)})

	require.Len(t, d.ProductLines, 3)
	assert.Equal(t, []string{"soap", "wine", "oil"}, []string{d.ProductLines[0].ProductID, d.ProductLines[1].ProductID, d.ProductLines[2].ProductID})
	assert.Equal(t, 5, d.ProductLines[0].Quantity)
	assert.True(t, d.ProductLines[0].Price.Equal(decimal.RequireFromString("16")))
	assert.True(t, d.ProductLines[2].Price.Equal(decimal.RequireFromString("21")))
	assert.True(t, d.GoodsSubtotal.Equal(decimal.RequireFromString("49.5")))
	assertTotalsConsistent(t, d)
}

func TestRecompute_Taxes(t *testing.T) {
	d := newTestDocument(25)
	d.SetTaxRates(decimal.NewFromInt(10), decimal.NewFromInt(20))
	d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "c1", DurationMinutes: 120, Quantity: 1}})
	d.MergeProductLines([]domain.ProductLine{{ProductID: "x", Price: decimal.NewFromInt(100), Quantity: 1}})

	assert.True(t, d.ServicesSubtotal.Equal(decimal.NewFromInt(50)))
	assert.True(t, d.GoodsSubtotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, d.ServicesTax.Equal(decimal.NewFromInt(5)))
	assert.True(t, d.GoodsTax.Equal(decimal.NewFromInt(20)))
	assert.True(t, d.Total.Equal(decimal.NewFromInt(175)))
	assertTotalsConsistent(t, d)
}

func TestRecompute_TotalsAddUpFromCentLines(t *testing.T) {
	d := newTestDocument(25)
	d.SetTaxRates(decimal.NewFromInt(10), decimal.NewFromInt(20))
	// 10 min at 25/h = 4.1666..., twice
	d.UpsertCategoryLine("Garden", []domain.PrestationSelection{{PrestationID: "g1", DurationMinutes: 10, Quantity: 1}})
	d.UpsertCategoryLine("Pool", []domain.PrestationSelection{{PrestationID: "p1", DurationMinutes: 10, Quantity: 1}})
	d.MergeProductLines([]domain.ProductLine{{ProductID: "x", Price: decimal.RequireFromString("0.333"), Quantity: 1}})

	assert.Equal(t, "8.34", d.ServicesSubtotal.String())
	assert.Equal(t, "0.33", d.GoodsSubtotal.String())
	assert.Equal(t, "0.83", d.ServicesTax.String())
	assert.Equal(t, "0.07", d.GoodsTax.String())
	assert.Equal(t, "9.57", d.Total.String())
	assertTotalsConsistent(t, d)

	lines := decimal.Zero
	for _, l := range d.CategoryLines {
		lines = lines.Add(domain.RoundMoney(l.Price))
	}
	assert.True(t, lines.Equal(d.ServicesSubtotal))
}

func TestChangeHourlyRate_RescalesStoredDurations(t *testing.T) {
	d := newTestDocument(25)
	d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "c1", DurationMinutes: 120, Quantity: 1}})
	require.True(t, d.CategoryLines[0].Price.Equal(decimal.NewFromInt(50)))

	d.ChangeHourlyRate(decimal.NewFromInt(30))

	assert.Equal(t, 120, d.CategoryLines[0].TotalDurationMinutes)
	assert.True(t, d.CategoryLines[0].Price.Equal(decimal.NewFromInt(60)))
	assert.True(t, d.HourlyRate.Equal(decimal.NewFromInt(30)))
	assertTotalsConsistent(t, d)
}

func TestChangeClientCategory_ResetsOverrides(t *testing.T) {
	defaults := domain.DefaultTaxDefaults()
	d := newTestDocument(25)
	d.SetTaxRates(decimal.NewFromInt(3), decimal.NewFromInt(4))

	d.ChangeClientCategory(domain.Business, defaults)

	wantServices, wantGoods := defaults.RatesFor(domain.Business)
	assert.Equal(t, domain.Business, d.Client.Category)
	assert.True(t, d.ServicesTaxRate.Equal(wantServices))
	assert.True(t, d.GoodsTaxRate.Equal(wantGoods))
}

func TestRemoveLines(t *testing.T) {
	d := newTestDocument(25)
	d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "c1", DurationMinutes: 60, Quantity: 1}})
	d.MergeProductLines([]domain.ProductLine{{ProductID: "x", Price: decimal.NewFromInt(10), Quantity: 1}})

	assert.False(t, d.RemoveCategoryLine("Garden"))
	assert.True(t, d.RemoveCategoryLine("Cleaning"))
	assert.True(t, d.RemoveProductLine("x"))
	assert.False(t, d.RemoveProductLine("x"))
	assert.True(t, d.Total.IsZero())
}

func TestStatusCycle(t *testing.T) {
	for _, s := range []domain.DocumentStatus{domain.StatusIssued, domain.StatusToPay, domain.StatusPaid} {
		assert.Equal(t, s, s.Next().Next().Next(), "three steps from %q", s)
	}
	assert.Equal(t, domain.StatusToPay, domain.DocumentStatus("").Next())
	assert.Equal(t, domain.StatusToPay, domain.DocumentStatus("bogus").Next())
	unset := domain.DocumentStatus("")
	assert.Equal(t, domain.StatusIssued, unset.Next().Next().Next())

	d := &domain.Document{Status: domain.StatusPaid}
	assert.Equal(t, domain.StatusIssued, d.CycleStatus())
}

func TestValidateForSave(t *testing.T) {
	d := newTestDocument(25)
	assert.ErrorIs(t, d.ValidateForSave(), domain.ErrNoClientSelected)

	d.Client.ClientID = "client-1"
	assert.ErrorIs(t, d.ValidateForSave(), domain.ErrNoLines)

	d.MergeProductLines([]domain.ProductLine{{ProductID: "x", Price: decimal.NewFromInt(1), Quantity: 1}})
	assert.NoError(t, d.ValidateForSave())
}

func TestTaxCreditAmount(t *testing.T) {
	d := newTestDocument(25)
	d.SetTaxRates(decimal.Zero, decimal.Zero)
	d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "c1", DurationMinutes: 240, Quantity: 1}})
	assert.True(t, d.TaxCreditAmount().IsZero())

	d.TaxCreditEnabled = true
	assert.True(t, d.TaxCreditAmount().Equal(decimal.NewFromInt(50)))
	assert.True(t, d.Total.Equal(decimal.NewFromInt(100)), "tax credit never changes the total")

	d.ChangeClientCategory(domain.Business, domain.DefaultTaxDefaults())
	assert.True(t, d.TaxCreditAmount().IsZero())
}
