package dto

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// TaxDefaultsPayload lists default percentages per client category.
type TaxDefaultsPayload struct {
	Services map[domain.ClientCategory]decimal.Decimal `json:"services"`
	Goods    map[domain.ClientCategory]decimal.Decimal `json:"goods"`
}

// UpdateSettingsRequest defines the settings fields that can be changed.
type UpdateSettingsRequest struct {
	HourlyRate     *decimal.Decimal    `json:"hourlyRate"`
	TaxDefaults    *TaxDefaultsPayload `json:"taxDefaults"`
	TaxCreditRate  *decimal.Decimal    `json:"taxCreditRate"`
	CompanyName    *string             `json:"companyName"`
	CompanyAddress *string             `json:"companyAddress"`
	CompanyTaxID   *string             `json:"companyTaxID"`
	CompanyEmail   *string             `json:"companyEmail" binding:"omitempty,email"`
}

// SettingsResponse defines the data returned for the application settings.
type SettingsResponse struct {
	HourlyRate     string                                      `json:"hourlyRate"`
	TaxDefaults    map[string]map[domain.ClientCategory]string `json:"taxDefaults"`
	TaxCreditRate  string                                      `json:"taxCreditRate"`
	CompanyName    string                                      `json:"companyName"`
	CompanyAddress string                                      `json:"companyAddress"`
	CompanyTaxID   string                                      `json:"companyTaxID"`
	CompanyEmail   string                                      `json:"companyEmail"`
	LastUpdatedAt  *time.Time                                  `json:"lastUpdatedAt,omitempty"`
}

// ToSettingsResponse converts domain.Settings to SettingsResponse DTO
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	table := func(t domain.TaxRateTable) map[domain.ClientCategory]string {
		out := make(map[domain.ClientCategory]string, len(t))
		for k, v := range t {
			out[k] = utils.FormatRate(v)
		}
		return out
	}
	res := SettingsResponse{
		HourlyRate: utils.FormatMoney(s.HourlyRate),
		TaxDefaults: map[string]map[domain.ClientCategory]string{
			"services": table(s.TaxDefaults.Services),
			"goods":    table(s.TaxDefaults.Goods),
		},
		TaxCreditRate:  utils.FormatRate(s.TaxCreditRate),
		CompanyName:    s.CompanyName,
		CompanyAddress: s.CompanyAddress,
		CompanyTaxID:   s.CompanyTaxID,
		CompanyEmail:   s.CompanyEmail,
	}
	if !s.LastUpdatedAt.IsZero() {
		t := s.LastUpdatedAt
		res.LastUpdatedAt = &t
	}
	return res
}
