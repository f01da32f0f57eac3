package models

import "github.com/shopspring/decimal"

type PrestationSelection struct {
	PrestationID    string `json:"prestationID"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	Quantity        int    `json:"quantity"`
}

type CategoryLine struct {
	Name                 string                `json:"name"`
	TotalDurationMinutes int                   `json:"totalDurationMinutes"`
	Price                decimal.Decimal       `json:"price"`
	Prestations          []PrestationSelection `json:"prestations"`
}

type ProductLine struct {
	ProductID string          `json:"productID"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Unit      string          `json:"unit"`
}

type DocumentClient struct {
	ClientID string `json:"clientID"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	TaxID    string `json:"taxID"`
	Category string `json:"category"`
}

// Document is the stored form of a quote or invoice. Amounts are persisted rounded
// to cents; dates are YYYY-MM-DD.
type Document struct {
	DocumentID       string          `json:"-"`
	Number           string          `json:"number"`
	Type             string          `json:"type"`
	Client           DocumentClient  `json:"client"`
	IssueDate        string          `json:"issueDate"`
	DueDate          string          `json:"dueDate"`
	HourlyRate       decimal.Decimal `json:"hourlyRate"`
	ServicesTaxRate  decimal.Decimal `json:"servicesTaxRate"`
	GoodsTaxRate     decimal.Decimal `json:"goodsTaxRate"`
	PaymentMethod    string          `json:"paymentMethod"`
	Notes            string          `json:"notes"`
	TaxCreditEnabled bool            `json:"taxCreditEnabled"`
	TaxCreditRate    decimal.Decimal `json:"taxCreditRate"`
	CategoryLines    []CategoryLine  `json:"categoryLines"`
	ProductLines     []ProductLine   `json:"productLines"`
	ServicesSubtotal decimal.Decimal `json:"servicesSubtotal"`
	GoodsSubtotal    decimal.Decimal `json:"goodsSubtotal"`
	Subtotal         decimal.Decimal `json:"subtotal"`
	ServicesTax      decimal.Decimal `json:"servicesTax"`
	GoodsTax         decimal.Decimal `json:"goodsTax"`
	TotalTax         decimal.Decimal `json:"totalTax"`
	Total            decimal.Decimal `json:"total"`
	Status           string          `json:"status"`
	AuditFields
}
