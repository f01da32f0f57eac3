package domain

import "github.com/shopspring/decimal"

// CategoryKind tells which catalog a category groups.
type CategoryKind string

const (
	PrestationCategory CategoryKind = "prestation"
	ProductCategory    CategoryKind = "product"
)

// IsValid reports whether k is a known kind.
func (k CategoryKind) IsValid() bool {
	return k == PrestationCategory || k == ProductCategory
}

// Category groups prestations or products. It cannot be deleted while a
// catalog entry still points at it.
type Category struct {
	CategoryID string       `json:"categoryID"`
	Kind       CategoryKind `json:"kind"`
	Name       string       `json:"name"`
	Icon       string       `json:"icon"` // icon tag rendered by the admin UI
	AuditFields
}

// Prestation is a billable service priced by its duration.
type Prestation struct {
	PrestationID    string `json:"prestationID"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	CategoryID      string `json:"categoryID"`
	AuditFields
}

// Product is a goods item priced per unit.
type Product struct {
	ProductID  string          `json:"productID"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	CategoryID string          `json:"categoryID"`
	Unit       string          `json:"unit"` // e.g. "unit", "bottle", "liter"
	AuditFields
}
