package repositories

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// DocumentFilter narrows document listings. Empty fields do not filter.
type DocumentFilter struct {
	Type     domain.DocumentType
	Status   domain.DocumentStatus
	ClientID string
	Limit    int
	Offset   int
}

// DocumentReader defines read operations for quotes and invoices
type DocumentReader interface {
	FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	// ListDocuments returns documents by issue date, newest first.
	ListDocuments(ctx context.Context, filter DocumentFilter) ([]domain.Document, error)
	// ListDocumentNumbers returns the number of every stored document.
	ListDocumentNumbers(ctx context.Context) ([]string, error)
}

// DocumentWriter defines write operations for quotes and invoices
type DocumentWriter interface {
	CreateDocument(ctx context.Context, document domain.Document) (string, error)
	UpdateDocument(ctx context.Context, document domain.Document) error
	UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string) error
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentRepositoryFacade combines all document-related repository interfaces
type DocumentRepositoryFacade interface {
	DocumentReader
	DocumentWriter
}
