package models

import "github.com/shopspring/decimal"

// Settings is the stored form of the single settings document.
type Settings struct {
	HourlyRate     decimal.Decimal            `json:"hourlyRate"`
	ServicesTax    map[string]decimal.Decimal `json:"servicesTaxDefaults"`
	GoodsTax       map[string]decimal.Decimal `json:"goodsTaxDefaults"`
	TaxCreditRate  decimal.Decimal            `json:"taxCreditRate"`
	CompanyName    string                     `json:"companyName"`
	CompanyAddress string                     `json:"companyAddress"`
	CompanyTaxID   string                     `json:"companyTaxID"`
	CompanyEmail   string                     `json:"companyEmail"`
	LastUpdatedBy  string                     `json:"lastUpdatedBy"`
}

// ContactMessage is the stored form of a contact form submission.
type ContactMessage struct {
	ContactID string `json:"-"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	Reply     string `json:"reply"`
	RepliedAt string `json:"repliedAt"` // RFC 3339, empty until replied
}
