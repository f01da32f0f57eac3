package records

import (
	"context"
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils/mapping"
)

type documentRepository struct {
	store portsrepo.DocumentStore
}

func newDocumentRepository(store portsrepo.DocumentStore) portsrepo.DocumentRepositoryFacade {
	return &documentRepository{store: store}
}

var _ portsrepo.DocumentRepositoryFacade = (*documentRepository)(nil)

func (r *documentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	rec, err := r.store.Get(ctx, portsrepo.DocumentsCollection, documentID)
	if err != nil {
		return nil, err
	}
	doc, err := decodeDocument(*rec)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepository) ListDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	q := portsrepo.Query{
		OrderBy: []portsrepo.Order{
			{Field: "issueDate", Descending: true},
			{Field: "createdAt", Descending: true},
		},
		Limit:  filter.Limit,
		Offset: filter.Offset,
	}
	if filter.Type != "" {
		q.Filters = append(q.Filters, portsrepo.Filter{Field: "type", Value: string(filter.Type)})
	}
	if filter.Status != "" {
		q.Filters = append(q.Filters, portsrepo.Filter{Field: "status", Value: string(filter.Status)})
	}
	if filter.ClientID != "" {
		q.Filters = append(q.Filters, portsrepo.Filter{Field: "client.clientID", Value: filter.ClientID})
	}

	recs, err := r.store.List(ctx, portsrepo.DocumentsCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	docs := make([]domain.Document, 0, len(recs))
	for _, rec := range recs {
		d, err := decodeDocument(rec)
		if err != nil {
			return nil, err
		}
		docs = append(docs, d)
	}
	return docs, nil
}

func (r *documentRepository) ListDocumentNumbers(ctx context.Context) ([]string, error) {
	recs, err := r.store.List(ctx, portsrepo.DocumentsCollection, portsrepo.Query{})
	if err != nil {
		return nil, fmt.Errorf("failed to list document numbers: %w", err)
	}
	numbers := make([]string, 0, len(recs))
	for _, rec := range recs {
		if n, ok := rec.Data["number"].(string); ok {
			numbers = append(numbers, n)
		}
	}
	return numbers, nil
}

func (r *documentRepository) CreateDocument(ctx context.Context, document domain.Document) (string, error) {
	fields, err := toFields(mapping.ToModelDocument(document))
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, portsrepo.DocumentsCollection, fields)
}

func (r *documentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	fields, err := toFields(mapping.ToModelDocument(document))
	if err != nil {
		return err
	}
	return r.store.Update(ctx, portsrepo.DocumentsCollection, document.DocumentID, fields)
}

func (r *documentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string) error {
	return r.store.Update(ctx, portsrepo.DocumentsCollection, documentID, map[string]any{
		"status":        string(status),
		"lastUpdatedBy": updatedBy,
	})
}

func (r *documentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	return r.store.Delete(ctx, portsrepo.DocumentsCollection, documentID)
}

func decodeDocument(rec portsrepo.Record) (domain.Document, error) {
	var m models.Document
	if err := fromRecord(rec, &m); err != nil {
		return domain.Document{}, err
	}
	m.DocumentID = rec.ID
	m.CreatedAt, m.LastUpdatedAt = rec.CreatedAt, rec.UpdatedAt
	doc, err := mapping.ToDomainDocument(m)
	if err != nil {
		return domain.Document{}, fmt.Errorf("document %s: %w", rec.ID, err)
	}
	return doc, nil
}
