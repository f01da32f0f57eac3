package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

type catalogService struct {
	BaseService
	categoryRepo   portsrepo.CategoryRepositoryFacade
	prestationRepo portsrepo.PrestationRepositoryFacade
	productRepo    portsrepo.ProductRepositoryFacade
}

// NewCatalogService creates the service managing categories, prestations and products.
func NewCatalogService(
	categoryRepo portsrepo.CategoryRepositoryFacade,
	prestationRepo portsrepo.PrestationRepositoryFacade,
	productRepo portsrepo.ProductRepositoryFacade,
	opts ...ServiceOption,
) portssvc.CatalogSvcFacade {
	return &catalogService{
		BaseService:    newBaseService(opts),
		categoryRepo:   categoryRepo,
		prestationRepo: prestationRepo,
		productRepo:    productRepo,
	}
}

var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// --- Categories ---

func (s *catalogService) GetCategoryByID(ctx context.Context, kind domain.CategoryKind, categoryID string) (*domain.Category, error) {
	if !kind.IsValid() {
		return nil, validationError("unknown category kind %q", kind)
	}
	category, err := s.categoryRepo.FindCategoryByID(ctx, kind, categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find category", slog.String("category_id", categoryID), slog.String("kind", string(kind)))
		}
		return nil, err
	}
	return category, nil
}

func (s *catalogService) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	if !kind.IsValid() {
		return nil, validationError("unknown category kind %q", kind)
	}
	categories, err := s.categoryRepo.ListCategories(ctx, kind)
	if err != nil {
		s.LogError(ctx, err, "Failed to list categories", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		return []domain.Category{}, nil
	}
	return categories, nil
}

func (s *catalogService) CreateCategory(ctx context.Context, kind domain.CategoryKind, req dto.CreateCategoryRequest, creatorID string) (*domain.Category, error) {
	if !kind.IsValid() {
		return nil, validationError("unknown category kind %q", kind)
	}
	category := domain.Category{Kind: kind, Name: req.Name, Icon: req.Icon}
	category.Stamp(s.Now(), creatorID)

	id, err := s.categoryRepo.CreateCategory(ctx, category)
	if err != nil {
		s.LogError(ctx, err, "Failed to create category", slog.String("kind", string(kind)))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	category.CategoryID = id
	s.LogInfo(ctx, "Category created", slog.String("category_id", id), slog.String("kind", string(kind)))
	return &category, nil
}

func (s *catalogService) UpdateCategory(ctx context.Context, kind domain.CategoryKind, categoryID string, req dto.UpdateCategoryRequest, updaterID string) (*domain.Category, error) {
	category, err := s.GetCategoryByID(ctx, kind, categoryID)
	if err != nil {
		return nil, err
	}
	setString(&category.Name, req.Name)
	setString(&category.Icon, req.Icon)
	category.Touch(s.Now(), updaterID)

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		s.LogError(ctx, err, "Failed to update category", slog.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return category, nil
}

// DeleteCategory refuses to remove a category still referenced by catalog entries.
func (s *catalogService) DeleteCategory(ctx context.Context, kind domain.CategoryKind, categoryID string) error {
	if !kind.IsValid() {
		return validationError("unknown category kind %q", kind)
	}

	var (
		inUse bool
		err   error
	)
	switch kind {
	case domain.PrestationCategory:
		inUse, err = s.prestationRepo.HasPrestationsInCategory(ctx, categoryID)
	case domain.ProductCategory:
		inUse, err = s.productRepo.HasProductsInCategory(ctx, categoryID)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to check category usage", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to check category usage: %w", err)
	}
	if inUse {
		return fmt.Errorf("%w: category %s still has %s entries", apperrors.ErrConflict, categoryID, kind)
	}

	if err := s.categoryRepo.DeleteCategory(ctx, kind, categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete category", slog.String("category_id", categoryID))
		return fmt.Errorf("failed to delete category: %w", err)
	}
	s.LogInfo(ctx, "Category deleted", slog.String("category_id", categoryID), slog.String("kind", string(kind)))
	return nil
}

// requireCategory checks that categoryID names an existing category of the given kind.
func (s *catalogService) requireCategory(ctx context.Context, kind domain.CategoryKind, categoryID string) error {
	_, err := s.categoryRepo.FindCategoryByID(ctx, kind, categoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return validationError("unknown %s category %s", kind, categoryID)
	}
	if err != nil {
		return fmt.Errorf("failed to load category %s: %w", categoryID, err)
	}
	return nil
}

// --- Prestations ---

func (s *catalogService) GetPrestationByID(ctx context.Context, prestationID string) (*domain.Prestation, error) {
	prestation, err := s.prestationRepo.FindPrestationByID(ctx, prestationID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find prestation", slog.String("prestation_id", prestationID))
		}
		return nil, err
	}
	return prestation, nil
}

func (s *catalogService) ListPrestations(ctx context.Context, params dto.ListCatalogParams) ([]domain.Prestation, error) {
	prestations, err := s.prestationRepo.ListPrestations(ctx, params.CategoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list prestations", slog.String("category_id", params.CategoryID))
		return nil, fmt.Errorf("failed to list prestations: %w", err)
	}
	if prestations == nil {
		return []domain.Prestation{}, nil
	}
	return prestations, nil
}

func (s *catalogService) CreatePrestation(ctx context.Context, req dto.CreatePrestationRequest, creatorID string) (*domain.Prestation, error) {
	if req.DurationMinutes <= 0 {
		return nil, validationError("duration must be positive")
	}
	if err := s.requireCategory(ctx, domain.PrestationCategory, req.CategoryID); err != nil {
		return nil, err
	}

	prestation := domain.Prestation{
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		CategoryID:      req.CategoryID,
	}
	prestation.Stamp(s.Now(), creatorID)

	id, err := s.prestationRepo.CreatePrestation(ctx, prestation)
	if err != nil {
		s.LogError(ctx, err, "Failed to create prestation")
		return nil, fmt.Errorf("failed to create prestation: %w", err)
	}
	prestation.PrestationID = id
	return &prestation, nil
}

func (s *catalogService) UpdatePrestation(ctx context.Context, prestationID string, req dto.UpdatePrestationRequest, updaterID string) (*domain.Prestation, error) {
	prestation, err := s.GetPrestationByID(ctx, prestationID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil && *req.CategoryID != prestation.CategoryID {
		if err := s.requireCategory(ctx, domain.PrestationCategory, *req.CategoryID); err != nil {
			return nil, err
		}
		prestation.CategoryID = *req.CategoryID
	}
	setString(&prestation.Description, req.Description)
	if req.DurationMinutes != nil {
		if *req.DurationMinutes <= 0 {
			return nil, validationError("duration must be positive")
		}
		prestation.DurationMinutes = *req.DurationMinutes
	}
	prestation.Touch(s.Now(), updaterID)

	if err := s.prestationRepo.UpdatePrestation(ctx, *prestation); err != nil {
		s.LogError(ctx, err, "Failed to update prestation", slog.String("prestation_id", prestationID))
		return nil, fmt.Errorf("failed to update prestation: %w", err)
	}
	return prestation, nil
}

func (s *catalogService) DeletePrestation(ctx context.Context, prestationID string) error {
	if err := s.prestationRepo.DeletePrestation(ctx, prestationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete prestation", slog.String("prestation_id", prestationID))
		return fmt.Errorf("failed to delete prestation: %w", err)
	}
	return nil
}

// --- Products ---

func (s *catalogService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find product", slog.String("product_id", productID))
		}
		return nil, err
	}
	return product, nil
}

func (s *catalogService) ListProducts(ctx context.Context, params dto.ListCatalogParams) ([]domain.Product, error) {
	products, err := s.productRepo.ListProducts(ctx, params.CategoryID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list products", slog.String("category_id", params.CategoryID))
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	if products == nil {
		return []domain.Product{}, nil
	}
	return products, nil
}

func (s *catalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorID string) (*domain.Product, error) {
	if req.UnitPrice.IsNegative() {
		return nil, validationError("unit price must not be negative")
	}
	if err := s.requireCategory(ctx, domain.ProductCategory, req.CategoryID); err != nil {
		return nil, err
	}

	product := domain.Product{
		Name:       req.Name,
		UnitPrice:  req.UnitPrice,
		CategoryID: req.CategoryID,
		Unit:       req.Unit,
	}
	product.Stamp(s.Now(), creatorID)

	id, err := s.productRepo.CreateProduct(ctx, product)
	if err != nil {
		s.LogError(ctx, err, "Failed to create product")
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	product.ProductID = id
	return &product, nil
}

func (s *catalogService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterID string) (*domain.Product, error) {
	product, err := s.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if req.CategoryID != nil && *req.CategoryID != product.CategoryID {
		if err := s.requireCategory(ctx, domain.ProductCategory, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.UnitPrice != nil {
		if req.UnitPrice.IsNegative() {
			return nil, validationError("unit price must not be negative")
		}
		product.UnitPrice = *req.UnitPrice
	}
	setString(&product.Name, req.Name)
	setString(&product.Unit, req.Unit)
	product.Touch(s.Now(), updaterID)

	if err := s.productRepo.UpdateProduct(ctx, *product); err != nil {
		s.LogError(ctx, err, "Failed to update product", slog.String("product_id", productID))
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (s *catalogService) DeleteProduct(ctx context.Context, productID string) error {
	if err := s.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete product", slog.String("product_id", productID))
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
