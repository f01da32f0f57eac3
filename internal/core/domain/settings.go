package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ClientCategory drives which tax defaults apply to a document.
type ClientCategory string

const (
	Individual ClientCategory = "individual"
	Business   ClientCategory = "business"
)

// IsValid reports whether c is a known client category.
func (c ClientCategory) IsValid() bool {
	return c == Individual || c == Business
}

// TaxRateTable maps a client category to a tax rate in percent.
type TaxRateTable map[ClientCategory]decimal.Decimal

// TaxDefaults holds the two independent default tables, one for services and one for goods.
type TaxDefaults struct {
	Services TaxRateTable `json:"services"`
	Goods    TaxRateTable `json:"goods"`
}

// RatesFor returns the services and goods rates for category c.
// Missing entries yield zero.
func (t TaxDefaults) RatesFor(c ClientCategory) (services, goods decimal.Decimal) {
	return t.Services[c], t.Goods[c]
}

// DefaultTaxDefaults returns the jurisdiction defaults used when no settings were saved.
// Household services sold to individuals carry the reduced rate.
func DefaultTaxDefaults() TaxDefaults {
	return TaxDefaults{
		Services: TaxRateTable{
			Individual: decimal.NewFromInt(10),
			Business:   decimal.NewFromInt(20),
		},
		Goods: TaxRateTable{
			Individual: decimal.NewFromInt(20),
			Business:   decimal.NewFromInt(20),
		},
	}
}

// Settings is the single configuration document of the back office.
type Settings struct {
	HourlyRate     decimal.Decimal `json:"hourlyRate"`
	TaxDefaults    TaxDefaults     `json:"taxDefaults"`
	TaxCreditRate  decimal.Decimal `json:"taxCreditRate"`
	CompanyName    string          `json:"companyName"`
	CompanyAddress string          `json:"companyAddress"`
	CompanyTaxID   string          `json:"companyTaxID"`
	CompanyEmail   string          `json:"companyEmail"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// DefaultSettings returns settings used before the admin saves any.
func DefaultSettings() Settings {
	return Settings{
		HourlyRate:    decimal.NewFromInt(25),
		TaxDefaults:   DefaultTaxDefaults(),
		TaxCreditRate: decimal.NewFromInt(50),
	}
}
