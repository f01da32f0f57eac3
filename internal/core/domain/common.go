package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // admin subject
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // admin subject
}

// Touch stamps the update half of the audit fields.
func (a *AuditFields) Touch(now time.Time, by string) {
	a.LastUpdatedAt = now
	a.LastUpdatedBy = by
}

// Stamp sets both creation and update fields, used for new entities.
func (a *AuditFields) Stamp(now time.Time, by string) {
	a.CreatedAt = now
	a.CreatedBy = by
	a.Touch(now, by)
}
