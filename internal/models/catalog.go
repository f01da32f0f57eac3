package models

import "github.com/shopspring/decimal"

// Category is the stored form of a prestation or product category.
type Category struct {
	CategoryID string `json:"-"`
	Name       string `json:"name"`
	Icon       string `json:"icon"`
	AuditFields
}

// Prestation is the stored form of a catalog service.
type Prestation struct {
	PrestationID    string `json:"-"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	CategoryID      string `json:"categoryID"`
	AuditFields
}

// Product is the stored form of a catalog goods item.
type Product struct {
	ProductID  string          `json:"-"`
	Name       string          `json:"name"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	CategoryID string          `json:"categoryID"`
	Unit       string          `json:"unit"`
	AuditFields
}
