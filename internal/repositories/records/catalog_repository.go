package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils/mapping"
)

func categoryCollection(kind domain.CategoryKind) (string, error) {
	switch kind {
	case domain.PrestationCategory:
		return portsrepo.PrestationCategoriesCollection, nil
	case domain.ProductCategory:
		return portsrepo.ProductCategoriesCollection, nil
	}
	return "", fmt.Errorf("unknown category kind %q: %w", kind, apperrors.ErrValidation)
}

type categoryRepository struct {
	store portsrepo.DocumentStore
}

func newCategoryRepository(store portsrepo.DocumentStore) portsrepo.CategoryRepositoryFacade {
	return &categoryRepository{store: store}
}

var _ portsrepo.CategoryRepositoryFacade = (*categoryRepository)(nil)

func (r *categoryRepository) FindCategoryByID(ctx context.Context, kind domain.CategoryKind, categoryID string) (*domain.Category, error) {
	coll, err := categoryCollection(kind)
	if err != nil {
		return nil, err
	}
	rec, err := r.store.Get(ctx, coll, categoryID)
	if err != nil {
		return nil, err
	}
	category, err := decodeCategory(*rec, kind)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	coll, err := categoryCollection(kind)
	if err != nil {
		return nil, err
	}
	recs, err := r.store.List(ctx, coll, portsrepo.Query{OrderBy: []portsrepo.Order{{Field: "name"}}})
	if err != nil {
		return nil, fmt.Errorf("failed to list %s categories: %w", kind, err)
	}
	categories := make([]domain.Category, 0, len(recs))
	for _, rec := range recs {
		c, err := decodeCategory(rec, kind)
		if err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, nil
}

func (r *categoryRepository) CreateCategory(ctx context.Context, category domain.Category) (string, error) {
	coll, err := categoryCollection(category.Kind)
	if err != nil {
		return "", err
	}
	fields, err := toFields(mapping.ToModelCategory(category))
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, coll, fields)
}

func (r *categoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	coll, err := categoryCollection(category.Kind)
	if err != nil {
		return err
	}
	fields, err := toFields(mapping.ToModelCategory(category))
	if err != nil {
		return err
	}
	return r.store.Update(ctx, coll, category.CategoryID, fields)
}

func (r *categoryRepository) DeleteCategory(ctx context.Context, kind domain.CategoryKind, categoryID string) error {
	coll, err := categoryCollection(kind)
	if err != nil {
		return err
	}
	return r.store.Delete(ctx, coll, categoryID)
}

func decodeCategory(rec portsrepo.Record, kind domain.CategoryKind) (domain.Category, error) {
	var m models.Category
	if err := fromRecord(rec, &m); err != nil {
		return domain.Category{}, err
	}
	m.CategoryID = rec.ID
	m.CreatedAt, m.LastUpdatedAt = rec.CreatedAt, rec.UpdatedAt
	return mapping.ToDomainCategory(m, kind), nil
}

type prestationRepository struct {
	store portsrepo.DocumentStore
}

func newPrestationRepository(store portsrepo.DocumentStore) portsrepo.PrestationRepositoryFacade {
	return &prestationRepository{store: store}
}

var _ portsrepo.PrestationRepositoryFacade = (*prestationRepository)(nil)

func (r *prestationRepository) FindPrestationByID(ctx context.Context, prestationID string) (*domain.Prestation, error) {
	rec, err := r.store.Get(ctx, portsrepo.PrestationsCollection, prestationID)
	if err != nil {
		return nil, err
	}
	p, err := decodePrestation(*rec)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *prestationRepository) FindPrestationsByIDs(ctx context.Context, prestationIDs []string) (map[string]domain.Prestation, error) {
	found := make(map[string]domain.Prestation, len(prestationIDs))
	for _, id := range prestationIDs {
		if _, seen := found[id]; seen {
			continue
		}
		p, err := r.FindPrestationByID(ctx, id)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		found[id] = *p
	}
	return found, nil
}

func (r *prestationRepository) ListPrestations(ctx context.Context, categoryID string) ([]domain.Prestation, error) {
	recs, err := r.store.List(ctx, portsrepo.PrestationsCollection, byCategory(categoryID, "description", 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list prestations: %w", err)
	}
	prestations := make([]domain.Prestation, 0, len(recs))
	for _, rec := range recs {
		p, err := decodePrestation(rec)
		if err != nil {
			return nil, err
		}
		prestations = append(prestations, p)
	}
	return prestations, nil
}

func (r *prestationRepository) HasPrestationsInCategory(ctx context.Context, categoryID string) (bool, error) {
	recs, err := r.store.List(ctx, portsrepo.PrestationsCollection, byCategory(categoryID, "", 1))
	if err != nil {
		return false, fmt.Errorf("failed to check prestations of category %s: %w", categoryID, err)
	}
	return len(recs) > 0, nil
}

func (r *prestationRepository) CreatePrestation(ctx context.Context, prestation domain.Prestation) (string, error) {
	fields, err := toFields(mapping.ToModelPrestation(prestation))
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, portsrepo.PrestationsCollection, fields)
}

func (r *prestationRepository) UpdatePrestation(ctx context.Context, prestation domain.Prestation) error {
	fields, err := toFields(mapping.ToModelPrestation(prestation))
	if err != nil {
		return err
	}
	return r.store.Update(ctx, portsrepo.PrestationsCollection, prestation.PrestationID, fields)
}

func (r *prestationRepository) DeletePrestation(ctx context.Context, prestationID string) error {
	return r.store.Delete(ctx, portsrepo.PrestationsCollection, prestationID)
}

func decodePrestation(rec portsrepo.Record) (domain.Prestation, error) {
	var m models.Prestation
	if err := fromRecord(rec, &m); err != nil {
		return domain.Prestation{}, err
	}
	m.PrestationID = rec.ID
	m.CreatedAt, m.LastUpdatedAt = rec.CreatedAt, rec.UpdatedAt
	return mapping.ToDomainPrestation(m), nil
}

type productRepository struct {
	store portsrepo.DocumentStore
}

func newProductRepository(store portsrepo.DocumentStore) portsrepo.ProductRepositoryFacade {
	return &productRepository{store: store}
}

var _ portsrepo.ProductRepositoryFacade = (*productRepository)(nil)

func (r *productRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	rec, err := r.store.Get(ctx, portsrepo.ProductsCollection, productID)
	if err != nil {
		return nil, err
	}
	p, err := decodeProduct(*rec)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	found := make(map[string]domain.Product, len(productIDs))
	for _, id := range productIDs {
		if _, seen := found[id]; seen {
			continue
		}
		p, err := r.FindProductByID(ctx, id)
		if errors.Is(err, apperrors.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		found[id] = *p
	}
	return found, nil
}

func (r *productRepository) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	recs, err := r.store.List(ctx, portsrepo.ProductsCollection, byCategory(categoryID, "name", 0))
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	products := make([]domain.Product, 0, len(recs))
	for _, rec := range recs {
		p, err := decodeProduct(rec)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, nil
}

func (r *productRepository) HasProductsInCategory(ctx context.Context, categoryID string) (bool, error) {
	recs, err := r.store.List(ctx, portsrepo.ProductsCollection, byCategory(categoryID, "", 1))
	if err != nil {
		return false, fmt.Errorf("failed to check products of category %s: %w", categoryID, err)
	}
	return len(recs) > 0, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product domain.Product) (string, error) {
	fields, err := toFields(mapping.ToModelProduct(product))
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, portsrepo.ProductsCollection, fields)
}

func (r *productRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	fields, err := toFields(mapping.ToModelProduct(product))
	if err != nil {
		return err
	}
	return r.store.Update(ctx, portsrepo.ProductsCollection, product.ProductID, fields)
}

func (r *productRepository) DeleteProduct(ctx context.Context, productID string) error {
	return r.store.Delete(ctx, portsrepo.ProductsCollection, productID)
}

func decodeProduct(rec portsrepo.Record) (domain.Product, error) {
	var m models.Product
	if err := fromRecord(rec, &m); err != nil {
		return domain.Product{}, err
	}
	m.ProductID = rec.ID
	m.CreatedAt, m.LastUpdatedAt = rec.CreatedAt, rec.UpdatedAt
	return mapping.ToDomainProduct(m), nil
}

func byCategory(categoryID, orderField string, limit int) portsrepo.Query {
	q := portsrepo.Query{Limit: limit}
	if categoryID != "" {
		q.Filters = []portsrepo.Filter{{Field: "categoryID", Value: categoryID}}
	}
	if orderField != "" {
		q.OrderBy = []portsrepo.Order{{Field: orderField}}
	}
	return q
}
