package repositories

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// CategoryRepositoryFacade stores prestation and product categories, each
// kind in its own collection.
type CategoryRepositoryFacade interface {
	FindCategoryByID(ctx context.Context, kind domain.CategoryKind, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
	CreateCategory(ctx context.Context, category domain.Category) (string, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	DeleteCategory(ctx context.Context, kind domain.CategoryKind, categoryID string) error
}

// PrestationReader defines read operations for the service catalog
type PrestationReader interface {
	FindPrestationByID(ctx context.Context, prestationID string) (*domain.Prestation, error)
	// FindPrestationsByIDs returns the prestations found, keyed by id. Unknown ids are skipped.
	FindPrestationsByIDs(ctx context.Context, prestationIDs []string) (map[string]domain.Prestation, error)
	// ListPrestations lists every prestation, or those of categoryID when not empty.
	ListPrestations(ctx context.Context, categoryID string) ([]domain.Prestation, error)
	HasPrestationsInCategory(ctx context.Context, categoryID string) (bool, error)
}

// PrestationWriter defines write operations for the service catalog
type PrestationWriter interface {
	CreatePrestation(ctx context.Context, prestation domain.Prestation) (string, error)
	UpdatePrestation(ctx context.Context, prestation domain.Prestation) error
	DeletePrestation(ctx context.Context, prestationID string) error
}

// PrestationRepositoryFacade combines all prestation-related repository interfaces
type PrestationRepositoryFacade interface {
	PrestationReader
	PrestationWriter
}

// ProductReader defines read operations for the goods catalog
type ProductReader interface {
	FindProductByID(ctx context.Context, productID string) (*domain.Product, error)
	FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error)
	ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error)
	HasProductsInCategory(ctx context.Context, categoryID string) (bool, error)
}

// ProductWriter defines write operations for the goods catalog
type ProductWriter interface {
	CreateProduct(ctx context.Context, product domain.Product) (string, error)
	UpdateProduct(ctx context.Context, product domain.Product) error
	DeleteProduct(ctx context.Context, productID string) error
}

// ProductRepositoryFacade combines all product-related repository interfaces
type ProductRepositoryFacade interface {
	ProductReader
	ProductWriter
}
