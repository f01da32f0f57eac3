package models

import "time"

// AuditFields holds who touched a record. The timestamps come from the store
// itself and are never written into the record body.
type AuditFields struct {
	CreatedAt     time.Time `json:"-"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"-"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}
