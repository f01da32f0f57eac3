package dto

import (
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateCategoryRequest defines the data needed to create a catalog category.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Icon string `json:"icon"`
}

// UpdateCategoryRequest defines the fields allowed for updating a category.
type UpdateCategoryRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
	Icon *string `json:"icon"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID string              `json:"categoryID"`
	Kind       domain.CategoryKind `json:"kind"`
	Name       string              `json:"name"`
	Icon       string              `json:"icon"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO
func ToCategoryResponse(c *domain.Category) CategoryResponse {
	return CategoryResponse{CategoryID: c.CategoryID, Kind: c.Kind, Name: c.Name, Icon: c.Icon}
}

// ToListCategoryResponse converts categories to DTOs
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}

// CreatePrestationRequest defines the data needed to add a service to the catalog.
type CreatePrestationRequest struct {
	Description     string `json:"description" binding:"required"`
	DurationMinutes int    `json:"durationMinutes" binding:"required,gt=0"`
	CategoryID      string `json:"categoryID" binding:"required"`
}

// UpdatePrestationRequest defines the fields allowed for updating a prestation.
type UpdatePrestationRequest struct {
	Description     *string `json:"description" binding:"omitempty,min=1"`
	DurationMinutes *int    `json:"durationMinutes" binding:"omitempty,gt=0"`
	CategoryID      *string `json:"categoryID" binding:"omitempty,min=1"`
}

// PrestationResponse defines the data returned for a prestation.
type PrestationResponse struct {
	PrestationID    string `json:"prestationID"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	CategoryID      string `json:"categoryID"`
}

// ToPrestationResponse converts a domain.Prestation to PrestationResponse DTO
func ToPrestationResponse(p *domain.Prestation) PrestationResponse {
	return PrestationResponse{
		PrestationID:    p.PrestationID,
		Description:     p.Description,
		DurationMinutes: p.DurationMinutes,
		CategoryID:      p.CategoryID,
	}
}

// ToListPrestationResponse converts prestations to DTOs
func ToListPrestationResponse(prestations []domain.Prestation) []PrestationResponse {
	res := make([]PrestationResponse, len(prestations))
	for i := range prestations {
		res[i] = ToPrestationResponse(&prestations[i])
	}
	return res
}

// CreateProductRequest defines the data needed to add a goods item to the catalog.
// UnitPrice is validated by the service (must not be negative).
type CreateProductRequest struct {
	Name       string          `json:"name" binding:"required"`
	UnitPrice  decimal.Decimal `json:"unitPrice"`
	CategoryID string          `json:"categoryID" binding:"required"`
	Unit       string          `json:"unit"`
}

// UpdateProductRequest defines the fields allowed for updating a product.
type UpdateProductRequest struct {
	Name       *string          `json:"name" binding:"omitempty,min=1"`
	UnitPrice  *decimal.Decimal `json:"unitPrice"`
	CategoryID *string          `json:"categoryID" binding:"omitempty,min=1"`
	Unit       *string          `json:"unit"`
}

// ProductResponse defines the data returned for a product.
type ProductResponse struct {
	ProductID  string `json:"productID"`
	Name       string `json:"name"`
	UnitPrice  string `json:"unitPrice"`
	CategoryID string `json:"categoryID"`
	Unit       string `json:"unit"`
}

// ToProductResponse converts a domain.Product to ProductResponse DTO
func ToProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ProductID:  p.ProductID,
		Name:       p.Name,
		UnitPrice:  utils.FormatMoney(p.UnitPrice),
		CategoryID: p.CategoryID,
		Unit:       p.Unit,
	}
}

// ToListProductResponse converts products to DTOs
func ToListProductResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, len(products))
	for i := range products {
		res[i] = ToProductResponse(&products[i])
	}
	return res
}

// ListCatalogParams defines query parameters for listing catalog entries.
type ListCatalogParams struct {
	CategoryID string `form:"categoryId"`
}
