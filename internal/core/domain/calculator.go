package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	minutesPerHour = decimal.NewFromInt(60)
	hundred        = decimal.NewFromInt(100)
)

// Validation failures raised before a document may be saved.
var (
	ErrNoClientSelected = errors.New("a client must be selected")
	ErrNoLines          = errors.New("at least one category or product line is required")
)

// defaultValidity is how far the due (or validity) date sits from the issue date on a new draft.
const defaultValidity = 30 * 24 * time.Hour

// NewDraft starts an in-memory document seeded from settings.
// The number is left empty; it is assigned by the caller from the persisted documents.
func NewDraft(docType DocumentType, settings Settings, now time.Time) *Document {
	d := &Document{
		Type:          docType,
		IssueDate:     now,
		DueDate:       now.Add(defaultValidity),
		HourlyRate:    settings.HourlyRate,
		TaxCreditRate: settings.TaxCreditRate,
		Client:        DocumentClient{Category: Individual},
		CategoryLines: []CategoryLine{},
		ProductLines:  []ProductLine{},
		Status:        StatusIssued,
	}
	d.ServicesTaxRate, d.GoodsTaxRate = settings.TaxDefaults.RatesFor(Individual)
	d.Recompute()
	return d
}

// CategoryLinePrice converts a duration to a price at the given hourly rate.
func CategoryLinePrice(durationMinutes int, hourlyRate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(durationMinutes)).Mul(hourlyRate).Div(minutesPerHour)
}

// NewProductLine prices quantity units of p.
func NewProductLine(p Product, quantity int) ProductLine {
	return ProductLine{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.UnitPrice.Mul(decimal.NewFromInt(int64(quantity))),
		Quantity:  quantity,
		Unit:      p.Unit,
	}
}

// UpsertCategoryLine builds the line for category name from selections and
// stores it, replacing an existing line with the same name in place.
// Selections with a non-positive quantity are dropped. An empty selection
// leaves the document untouched and returns false.
func (d *Document) UpsertCategoryLine(name string, selections []PrestationSelection) bool {
	kept := make([]PrestationSelection, 0, len(selections))
	total := 0
	for _, s := range selections {
		if s.Quantity <= 0 {
			continue
		}
		kept = append(kept, s)
		total += s.DurationMinutes * s.Quantity
	}
	if len(kept) == 0 {
		return false
	}

	line := CategoryLine{
		Name:                 name,
		TotalDurationMinutes: total,
		Price:                CategoryLinePrice(total, d.HourlyRate),
		Prestations:          kept,
	}
	replaced := false
	for i := range d.CategoryLines {
		if d.CategoryLines[i].Name == name {
			d.CategoryLines[i] = line
			replaced = true
			break
		}
	}
	if !replaced {
		d.CategoryLines = append(d.CategoryLines, line)
	}
	d.Recompute()
	return true
}

// RemoveCategoryLine drops the line named name. It returns false when no such line exists.
func (d *Document) RemoveCategoryLine(name string) bool {
	for i := range d.CategoryLines {
		if d.CategoryLines[i].Name == name {
			d.CategoryLines = append(d.CategoryLines[:i], d.CategoryLines[i+1:]...)
			d.Recompute()
			return true
		}
	}
	return false
}

// MergeProductLines merges lines into the document by product id.
// Existing lines keep their position when replaced; unknown products append in order.
func (d *Document) MergeProductLines(lines []ProductLine) {
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		replaced := false
		for i := range d.ProductLines {
			if d.ProductLines[i].ProductID == l.ProductID {
				d.ProductLines[i] = l
				replaced = true
				break
			}
		}
		if !replaced {
			d.ProductLines = append(d.ProductLines, l)
		}
	}
	d.Recompute()
}

// RemoveProductLine drops the line for productID. It returns false when absent.
func (d *Document) RemoveProductLine(productID string) bool {
	for i := range d.ProductLines {
		if d.ProductLines[i].ProductID == productID {
			d.ProductLines = append(d.ProductLines[:i], d.ProductLines[i+1:]...)
			d.Recompute()
			return true
		}
	}
	return false
}

// Recompute derives every total from the current lines and tax rates.
// Line prices keep full precision; each one enters the subtotals rounded to
// cents, and each tax is rounded before it is added, so the stored lines add
// up to the stored totals and a reloaded document recomputes to the same values.
func (d *Document) Recompute() {
	services := decimal.Zero
	for _, l := range d.CategoryLines {
		services = services.Add(RoundMoney(l.Price))
	}
	goods := decimal.Zero
	for _, l := range d.ProductLines {
		goods = goods.Add(RoundMoney(l.Price))
	}

	d.ServicesSubtotal = services
	d.GoodsSubtotal = goods
	d.Subtotal = services.Add(goods)
	d.ServicesTax = RoundMoney(services.Mul(d.ServicesTaxRate).Div(hundred))
	d.GoodsTax = RoundMoney(goods.Mul(d.GoodsTaxRate).Div(hundred))
	d.TotalTax = d.ServicesTax.Add(d.GoodsTax)
	d.Total = d.Subtotal.Add(d.TotalTax)
}

// ChangeHourlyRate stores rate and reprices every category line from its
// stored total duration. Catalog durations are not consulted.
func (d *Document) ChangeHourlyRate(rate decimal.Decimal) {
	d.HourlyRate = rate
	for i := range d.CategoryLines {
		d.CategoryLines[i].Price = CategoryLinePrice(d.CategoryLines[i].TotalDurationMinutes, rate)
	}
	d.Recompute()
}

// ChangeClientCategory switches the client category and resets both tax
// rates to the defaults for it, discarding manual overrides.
func (d *Document) ChangeClientCategory(c ClientCategory, defaults TaxDefaults) {
	d.Client.Category = c
	d.ServicesTaxRate, d.GoodsTaxRate = defaults.RatesFor(c)
	d.Recompute()
}

// SetTaxRates applies a manual override of both rates.
func (d *Document) SetTaxRates(services, goods decimal.Decimal) {
	d.ServicesTaxRate = services
	d.GoodsTaxRate = goods
	d.Recompute()
}

// CycleStatus advances the status one step along the cycle.
func (d *Document) CycleStatus() DocumentStatus {
	d.Status = d.Status.Next()
	return d.Status
}

// TaxCreditAmount estimates the fiscal rebate shown to individual clients.
// It never changes the amount charged.
func (d *Document) TaxCreditAmount() decimal.Decimal {
	if !d.TaxCreditEnabled || d.Client.Category != Individual {
		return decimal.Zero
	}
	return RoundMoney(d.Total.Mul(d.TaxCreditRate).Div(hundred))
}

// ValidateForSave checks the preconditions of a save.
func (d *Document) ValidateForSave() error {
	if d.Client.ClientID == "" {
		return ErrNoClientSelected
	}
	if len(d.CategoryLines) == 0 && len(d.ProductLines) == 0 {
		return ErrNoLines
	}
	return nil
}
