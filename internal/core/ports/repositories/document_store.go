package repositories

import (
	"context"
	"time"
)

// Collection names of the document store.
const (
	ClientsCollection              = "clients"
	MissionsCollection             = "missions"
	DocumentsCollection            = "documents"
	PrestationsCollection          = "prestations"
	ProductsCollection             = "products"
	PrestationCategoriesCollection = "prestationCategories"
	ProductCategoriesCollection    = "productCategories"
	SettingsCollection             = "settings"
	ContactsCollection             = "contacts"
)

// Record is a stored document: its server-assigned id, its fields and its timestamps.
type Record struct {
	ID        string
	Data      map[string]any
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter is an equality condition on a (possibly dotted) field path.
type Filter struct {
	Field string
	Value any
}

// Order sorts a listing on a (possibly dotted) field path.
// The reserved fields "createdAt" and "updatedAt" sort on the record timestamps.
type Order struct {
	Field      string
	Descending bool
}

// Query narrows a List call. A zero Limit means no limit.
type Query struct {
	Filters []Filter
	OrderBy []Order
	Limit   int
	Offset  int
}

// DocumentStore is the collection-level persistence collaborator.
// Every write is a single atomic document write; there is no versioning, so
// concurrent updates of one record resolve as last write wins.
type DocumentStore interface {
	// Create stores fields under a new server-assigned id and stamps the creation time.
	Create(ctx context.Context, collection string, fields map[string]any) (string, error)
	// Set creates or replaces the record stored under id.
	Set(ctx context.Context, collection, id string, fields map[string]any) error
	// Get returns apperrors.ErrNotFound when id does not exist.
	Get(ctx context.Context, collection, id string) (*Record, error)
	List(ctx context.Context, collection string, q Query) ([]Record, error)
	// Update shallow-merges fields into the record. Missing records yield apperrors.ErrNotFound.
	Update(ctx context.Context, collection, id string, fields map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}
