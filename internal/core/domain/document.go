package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentType distinguishes quotes from invoices; both share one schema.
type DocumentType string

const (
	Quote   DocumentType = "quote"
	Invoice DocumentType = "invoice"
)

// IsValid reports whether t is a known document type.
func (t DocumentType) IsValid() bool {
	return t == Quote || t == Invoice
}

// DocumentStatus is the payment status of a document.
type DocumentStatus string

const (
	StatusIssued DocumentStatus = "issued"
	StatusToPay  DocumentStatus = "to-pay"
	StatusPaid   DocumentStatus = "paid"
)

// IsValid reports whether s is one of the three known statuses.
func (s DocumentStatus) IsValid() bool {
	switch s {
	case StatusIssued, StatusToPay, StatusPaid:
		return true
	}
	return false
}

// Next returns the status following s on the cycle issued -> to-pay -> paid -> issued.
// Unknown or empty statuses are treated as issued.
func (s DocumentStatus) Next() DocumentStatus {
	switch s {
	case StatusToPay:
		return StatusPaid
	case StatusPaid:
		return StatusIssued
	default:
		return StatusToPay
	}
}

// PrestationSelection is one prestation chosen inside a category line.
// Duration is a snapshot; later catalog edits do not change it.
type PrestationSelection struct {
	PrestationID    string `json:"prestationID"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"` // per unit
	Quantity        int    `json:"quantity"`
}

// CategoryLine aggregates prestations under a single named group.
type CategoryLine struct {
	Name                 string                `json:"name"`
	TotalDurationMinutes int                   `json:"totalDurationMinutes"`
	Price                decimal.Decimal       `json:"price"`
	Prestations          []PrestationSelection `json:"prestations"`
}

// ProductLine is a unit-priced goods entry.
type ProductLine struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"` // unit price x quantity
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
}

// DocumentClient is the client header snapshot of a document.
type DocumentClient struct {
	ClientID string         `json:"clientID"`
	Name     string         `json:"name"`
	Address  string         `json:"address"`
	TaxID    string         `json:"taxID"`
	Category ClientCategory `json:"category"`
}

// Totals are derived from the lines and the two tax rates.
type Totals struct {
	ServicesSubtotal decimal.Decimal `json:"servicesSubtotal"`
	GoodsSubtotal    decimal.Decimal `json:"goodsSubtotal"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ServicesTax      decimal.Decimal `json:"servicesTax"`
	GoodsTax         decimal.Decimal `json:"goodsTax"`
	TotalTax         decimal.Decimal `json:"totalTax"`
	Total            decimal.Decimal `json:"total"`
}

// Document is a quote or an invoice, the aggregate root of the billing side.
type Document struct {
	DocumentID       string          `json:"documentID"`
	Number           string          `json:"number"` // YYYY-NNN
	Type             DocumentType    `json:"type"`
	Client           DocumentClient  `json:"client"`
	IssueDate        time.Time       `json:"issueDate"`
	DueDate          time.Time       `json:"dueDate"` // validity date for quotes
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
	ServicesTaxRate  decimal.Decimal `json:"servicesTaxRate"` // percent
	GoodsTaxRate     decimal.Decimal `json:"goodsTaxRate"`    // percent
	PaymentMethod    string          `json:"paymentMethod"`
	Notes            string          `json:"notes"`
	TaxCreditEnabled bool            `json:"taxCreditEnabled"`
	TaxCreditRate    decimal.Decimal `json:"taxCreditRate"` // percent, informational
	CategoryLines    []CategoryLine  `json:"categoryLines"`
	ProductLines     []ProductLine   `json:"productLines"`
	Totals
	Status DocumentStatus `json:"status"`
	AuditFields
}

// IsNew reports whether the document has never been persisted.
func (d *Document) IsNew() bool {
	return d.DocumentID == ""
}
