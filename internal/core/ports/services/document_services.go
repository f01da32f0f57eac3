package services

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

// DocumentSaveResult is what a document write hands back to the caller.
type DocumentSaveResult struct {
	Document *domain.Document
	// NextNumber is the number a fresh draft would receive after this save.
	// It is empty when the numbers could not be listed after an update.
	NextNumber   string
	Notification NotificationOutcome
}

// DocumentReaderSvc defines read operations for quotes and invoices
type DocumentReaderSvc interface {
	GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error)
	// ListDocuments returns a page of documents and the token of the next page, if any.
	ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, string, error)
	NextDocumentNumber(ctx context.Context) (string, error)
	// PreviewDocument builds and prices a document without persisting it.
	PreviewDocument(ctx context.Context, req dto.CreateDocumentRequest) (*domain.Document, error)
	// ExportDocuments renders every document matching the filters as an XLSX workbook.
	ExportDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]byte, error)
}

// DocumentWriterSvc defines write operations for quotes and invoices
type DocumentWriterSvc interface {
	CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorID string) (*DocumentSaveResult, error)
	UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, updaterID string) (*DocumentSaveResult, error)
	DeleteDocument(ctx context.Context, documentID string) error
}

// DocumentLineSvc edits the lines and pricing inputs of a stored document.
type DocumentLineSvc interface {
	SetCategorySelection(ctx context.Context, documentID string, req dto.CategorySelectionRequest, updaterID string) (*domain.Document, error)
	RemoveCategoryLine(ctx context.Context, documentID string, categoryName string, updaterID string) (*domain.Document, error)
	SetProductSelections(ctx context.Context, documentID string, req dto.ProductSelectionRequest, updaterID string) (*domain.Document, error)
	RemoveProductLine(ctx context.Context, documentID string, productID string, updaterID string) (*domain.Document, error)
	ChangeHourlyRate(ctx context.Context, documentID string, rate decimal.Decimal, updaterID string) (*domain.Document, error)
	ChangeClientCategory(ctx context.Context, documentID string, category domain.ClientCategory, updaterID string) (*domain.Document, error)
}

// DocumentStatusSvc changes the payment status of a document.
type DocumentStatusSvc interface {
	CycleStatus(ctx context.Context, documentID string, updaterID string) (*domain.Document, error)
	SetStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updaterID string) (*domain.Document, error)
}

// DocumentSvcFacade combines all document-related service interfaces
type DocumentSvcFacade interface {
	DocumentReaderSvc
	DocumentWriterSvc
	DocumentLineSvc
	DocumentStatusSvc
}
