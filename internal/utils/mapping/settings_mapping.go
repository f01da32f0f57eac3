package mapping

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelSettings converts domain Settings to model Settings
func ToModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		HourlyRate:     d.HourlyRate,
		ServicesTax:    toModelRateTable(d.TaxDefaults.Services),
		GoodsTax:       toModelRateTable(d.TaxDefaults.Goods),
		TaxCreditRate:  d.TaxCreditRate,
		CompanyName:    d.CompanyName,
		CompanyAddress: d.CompanyAddress,
		CompanyTaxID:   d.CompanyTaxID,
		CompanyEmail:   d.CompanyEmail,
		LastUpdatedBy:  d.LastUpdatedBy,
	}
}

// ToDomainSettings converts model Settings to domain Settings. Categories missing
// from the stored tables fall back to the built-in defaults.
func ToDomainSettings(m models.Settings, updatedAt time.Time) domain.Settings {
	defaults := domain.DefaultTaxDefaults()
	return domain.Settings{
		HourlyRate: m.HourlyRate,
		TaxDefaults: domain.TaxDefaults{
			Services: toDomainRateTable(m.ServicesTax, defaults.Services),
			Goods:    toDomainRateTable(m.GoodsTax, defaults.Goods),
		},
		TaxCreditRate:  m.TaxCreditRate,
		CompanyName:    m.CompanyName,
		CompanyAddress: m.CompanyAddress,
		CompanyTaxID:   m.CompanyTaxID,
		CompanyEmail:   m.CompanyEmail,
		LastUpdatedAt:  updatedAt,
		LastUpdatedBy:  m.LastUpdatedBy,
	}
}

func toModelRateTable(t domain.TaxRateTable) map[string]decimal.Decimal {
	out := make(map[string]decimal.Decimal, len(t))
	for k, v := range t {
		out[string(k)] = v
	}
	return out
}

func toDomainRateTable(m map[string]decimal.Decimal, fallback domain.TaxRateTable) domain.TaxRateTable {
	out := make(domain.TaxRateTable, len(fallback))
	for k, v := range fallback {
		out[k] = v
	}
	for k, v := range m {
		out[domain.ClientCategory(k)] = v
	}
	return out
}

// ToModelContact converts a domain ContactMessage to a model ContactMessage
func ToModelContact(d domain.ContactMessage) models.ContactMessage {
	m := models.ContactMessage{
		ContactID: d.ContactID,
		Name:      d.Name,
		Email:     d.Email,
		Phone:     d.Phone,
		Message:   d.Message,
		Status:    string(d.Status),
		Reply:     d.Reply,
	}
	if d.RepliedAt != nil {
		m.RepliedAt = d.RepliedAt.UTC().Format(time.RFC3339)
	}
	return m
}

// ToDomainContact converts a model ContactMessage to a domain ContactMessage
func ToDomainContact(m models.ContactMessage, createdAt time.Time) domain.ContactMessage {
	d := domain.ContactMessage{
		ContactID: m.ContactID,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		Message:   m.Message,
		Status:    domain.ContactStatus(m.Status),
		Reply:     m.Reply,
		CreatedAt: createdAt,
	}
	if t, err := time.Parse(time.RFC3339, m.RepliedAt); err == nil {
		d.RepliedAt = &t
	}
	if d.Status == "" {
		d.Status = domain.ContactNew
	}
	return d
}
