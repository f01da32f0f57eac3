package services

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

// CategorySvc manages prestation and product categories.
type CategorySvc interface {
	GetCategoryByID(ctx context.Context, kind domain.CategoryKind, categoryID string) (*domain.Category, error)
	ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error)
	CreateCategory(ctx context.Context, kind domain.CategoryKind, req dto.CreateCategoryRequest, creatorID string) (*domain.Category, error)
	UpdateCategory(ctx context.Context, kind domain.CategoryKind, categoryID string, req dto.UpdateCategoryRequest, updaterID string) (*domain.Category, error)
	// DeleteCategory fails with apperrors.ErrConflict while any catalog entry references the category.
	DeleteCategory(ctx context.Context, kind domain.CategoryKind, categoryID string) error
}

// PrestationSvc manages the service catalog.
type PrestationSvc interface {
	GetPrestationByID(ctx context.Context, prestationID string) (*domain.Prestation, error)
	ListPrestations(ctx context.Context, params dto.ListCatalogParams) ([]domain.Prestation, error)
	CreatePrestation(ctx context.Context, req dto.CreatePrestationRequest, creatorID string) (*domain.Prestation, error)
	UpdatePrestation(ctx context.Context, prestationID string, req dto.UpdatePrestationRequest, updaterID string) (*domain.Prestation, error)
	DeletePrestation(ctx context.Context, prestationID string) error
}

// ProductSvc manages the goods catalog.
type ProductSvc interface {
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, params dto.ListCatalogParams) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorID string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterID string) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

// CatalogSvcFacade combines all catalog-related service interfaces
type CatalogSvcFacade interface {
	CategorySvc
	PrestationSvc
	ProductSvc
}
