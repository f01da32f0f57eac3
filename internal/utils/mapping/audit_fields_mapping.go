package mapping

import (
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/models"
)

// The timestamps only travel model -> domain: the store fills them on read
// and ignores them on write.
func auditToModel(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{CreatedBy: d.CreatedBy, LastUpdatedBy: d.LastUpdatedBy}
}

func auditToDomain(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		CreatedBy:     m.CreatedBy,
		LastUpdatedAt: m.LastUpdatedAt,
		LastUpdatedBy: m.LastUpdatedBy,
	}
}
