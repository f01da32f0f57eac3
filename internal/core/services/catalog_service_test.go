package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/core/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteCategory_BlockedWhileInUse(t *testing.T) {
	ctx := context.Background()
	categories := new(MockCategoryRepository)
	prestations := new(MockPrestationRepository)
	products := new(MockProductRepository)
	svc := services.NewCatalogService(categories, prestations, products)

	prestations.On("HasPrestationsInCategory", mock.Anything, "cat-1").Return(true, nil).Once()
	err := svc.DeleteCategory(ctx, domain.PrestationCategory, "cat-1")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	categories.AssertNotCalled(t, "DeleteCategory", mock.Anything, mock.Anything, mock.Anything)

	products.On("HasProductsInCategory", mock.Anything, "cat-2").Return(false, nil).Once()
	categories.On("DeleteCategory", mock.Anything, domain.ProductCategory, "cat-2").Return(nil).Once()
	require.NoError(t, svc.DeleteCategory(ctx, domain.ProductCategory, "cat-2"))

	assert.ErrorIs(t, svc.DeleteCategory(ctx, domain.CategoryKind("misc"), "cat-3"), apperrors.ErrValidation)

	categories.AssertExpectations(t)
	prestations.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestCreateProduct_Validation(t *testing.T) {
	ctx := context.Background()
	categories := new(MockCategoryRepository)
	products := new(MockProductRepository)
	svc := services.NewCatalogService(categories, new(MockPrestationRepository), products)

	_, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Wine", UnitPrice: decimal.NewFromInt(-1), CategoryID: "cat-1"}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	categories.On("FindCategoryByID", mock.Anything, domain.ProductCategory, "nope").Return(nil, apperrors.ErrNotFound).Once()
	_, err = svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Wine", UnitPrice: decimal.NewFromInt(12), CategoryID: "nope"}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	categories.On("FindCategoryByID", mock.Anything, domain.ProductCategory, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", Kind: domain.ProductCategory}, nil).Once()
	products.On("CreateProduct", mock.Anything, mock.MatchedBy(func(p domain.Product) bool {
		return p.Name == "Wine" && p.CreatedBy == "admin"
	})).Return("prod-1", nil).Once()
	product, err := svc.CreateProduct(ctx, dto.CreateProductRequest{Name: "Wine", UnitPrice: decimal.NewFromInt(12), CategoryID: "cat-1", Unit: "bottle"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "prod-1", product.ProductID)

	categories.AssertExpectations(t)
	products.AssertExpectations(t)
}

func TestUpdatePrestation_MovesCategory(t *testing.T) {
	ctx := context.Background()
	categories := new(MockCategoryRepository)
	prestations := new(MockPrestationRepository)
	svc := services.NewCatalogService(categories, prestations, new(MockProductRepository))

	prestations.On("FindPrestationByID", mock.Anything, "p-1").
		Return(&domain.Prestation{PrestationID: "p-1", Description: "Vacuum", DurationMinutes: 30, CategoryID: "cat-1"}, nil).Once()
	categories.On("FindCategoryByID", mock.Anything, domain.PrestationCategory, "cat-2").
		Return(&domain.Category{CategoryID: "cat-2"}, nil).Once()
	prestations.On("UpdatePrestation", mock.Anything, mock.MatchedBy(func(p domain.Prestation) bool {
		return p.CategoryID == "cat-2" && p.DurationMinutes == 45
	})).Return(nil).Once()

	newCategory, newDuration := "cat-2", 45
	p, err := svc.UpdatePrestation(ctx, "p-1", dto.UpdatePrestationRequest{CategoryID: &newCategory, DurationMinutes: &newDuration}, "admin")
	require.NoError(t, err)
	assert.Equal(t, "Vacuum", p.Description)

	categories.AssertExpectations(t)
	prestations.AssertExpectations(t)
}
