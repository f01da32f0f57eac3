package mapping

import (
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
)

// ToModelCategory converts a domain Category to a model Category
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:  d.CategoryID,
		Name:        d.Name,
		Icon:        d.Icon,
		AuditFields: auditToModel(d.AuditFields),
	}
}

// ToDomainCategory converts a model Category to a domain Category of the given kind
func ToDomainCategory(m models.Category, kind domain.CategoryKind) domain.Category {
	return domain.Category{
		CategoryID:  m.CategoryID,
		Kind:        kind,
		Name:        m.Name,
		Icon:        m.Icon,
		AuditFields: auditToDomain(m.AuditFields),
	}
}

// ToModelPrestation converts a domain Prestation to a model Prestation
func ToModelPrestation(d domain.Prestation) models.Prestation {
	return models.Prestation{
		PrestationID:    d.PrestationID,
		Description:     d.Description,
		DurationMinutes: d.DurationMinutes,
		CategoryID:      d.CategoryID,
		AuditFields:     auditToModel(d.AuditFields),
	}
}

// ToDomainPrestation converts a model Prestation to a domain Prestation
func ToDomainPrestation(m models.Prestation) domain.Prestation {
	return domain.Prestation{
		PrestationID:    m.PrestationID,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		CategoryID:      m.CategoryID,
		AuditFields:     auditToDomain(m.AuditFields),
	}
}

// ToModelProduct converts a domain Product to a model Product
func ToModelProduct(d domain.Product) models.Product {
	return models.Product{
		ProductID:   d.ProductID,
		Name:        d.Name,
		UnitPrice:   utils.RoundMoney(d.UnitPrice),
		CategoryID:  d.CategoryID,
		Unit:        d.Unit,
		AuditFields: auditToModel(d.AuditFields),
	}
}

// ToDomainProduct converts a model Product to a domain Product
func ToDomainProduct(m models.Product) domain.Product {
	return domain.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		UnitPrice:   m.UnitPrice,
		CategoryID:  m.CategoryID,
		Unit:        m.Unit,
		AuditFields: auditToDomain(m.AuditFields),
	}
}
