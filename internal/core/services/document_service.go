package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/utils"
	"github.com/SscSPs/concierge_backoffice/internal/utils/export"
	"github.com/SscSPs/concierge_backoffice/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const (
	defaultDocumentPageSize = 50
	maxDocumentPageSize     = 500
)

type documentService struct {
	BaseService
	documentRepo   portsrepo.DocumentRepositoryFacade
	clientRepo     portsrepo.ClientReader
	categoryRepo   portsrepo.CategoryRepositoryFacade
	prestationRepo portsrepo.PrestationReader
	productRepo    portsrepo.ProductReader
	settings       portssvc.SettingsSvcFacade
	notifier       portssvc.Notifier
}

// NewDocumentService creates the quote and invoice service. notifier may be nil,
// in which case client notifications are never attempted.
func NewDocumentService(repos portsrepo.RepositoryProvider, settings portssvc.SettingsSvcFacade, notifier portssvc.Notifier, opts ...ServiceOption) portssvc.DocumentSvcFacade {
	return &documentService{
		BaseService:    newBaseService(opts),
		documentRepo:   repos.DocumentRepo,
		clientRepo:     repos.ClientRepo,
		categoryRepo:   repos.CategoryRepo,
		prestationRepo: repos.PrestationRepo,
		productRepo:    repos.ProductRepo,
		settings:       settings,
		notifier:       notifier,
	}
}

var _ portssvc.DocumentSvcFacade = (*documentService)(nil)

// --- Reads ---

func (s *documentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	doc, err := s.documentRepo.FindDocumentByID(ctx, documentID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find document", slog.String("document_id", documentID))
		}
		return nil, err
	}
	return doc, nil
}

func (s *documentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, string, error) {
	limit := params.Limit
	if limit <= 0 {
		limit = defaultDocumentPageSize
	}
	limit = min(limit, maxDocumentPageSize)
	offset, err := pagination.DecodeOffsetToken(params.PageToken)
	if err != nil {
		return nil, "", validationError("invalid page token")
	}

	filter := documentFilter(params)
	filter.Limit, filter.Offset = limit, offset
	docs, err := s.documentRepo.ListDocuments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents")
		return nil, "", fmt.Errorf("failed to list documents: %w", err)
	}
	if docs == nil {
		docs = []domain.Document{}
	}
	return docs, pagination.NextOffsetToken(offset, limit, len(docs)), nil
}

func (s *documentService) ExportDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]byte, error) {
	docs, err := s.documentRepo.ListDocuments(ctx, documentFilter(params))
	if err != nil {
		s.LogError(ctx, err, "Failed to list documents for export")
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}
	data, err := export.DocumentsXLSX(docs)
	if err != nil {
		s.LogError(ctx, err, "Failed to render documents workbook")
		return nil, err
	}
	s.LogInfo(ctx, "Documents exported", slog.Int("count", len(docs)))
	return data, nil
}

func (s *documentService) NextDocumentNumber(ctx context.Context) (string, error) {
	numbers, err := s.documentRepo.ListDocumentNumbers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list document numbers")
		return "", fmt.Errorf("failed to list document numbers: %w", err)
	}
	return domain.NextDocumentNumber(numbers, s.Now().Year()), nil
}

func (s *documentService) PreviewDocument(ctx context.Context, req dto.CreateDocumentRequest) (*domain.Document, error) {
	doc, err := s.buildDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	if doc.Number == "" {
		next, err := s.NextDocumentNumber(ctx)
		if err != nil {
			return nil, err
		}
		doc.Number = next
	}
	return doc, nil
}

// --- Writes ---

func (s *documentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorID string) (*portssvc.DocumentSaveResult, error) {
	doc, err := s.buildDocument(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := validateForSave(doc); err != nil {
		return nil, err
	}

	numbers, err := s.documentRepo.ListDocumentNumbers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list document numbers")
		return nil, fmt.Errorf("failed to list document numbers: %w", err)
	}
	year := s.Now().Year()
	switch {
	case doc.Number == "":
		doc.Number = domain.NextDocumentNumber(numbers, year)
	case slices.Contains(numbers, doc.Number):
		return nil, fmt.Errorf("%w: document number %s is already used", apperrors.ErrDuplicate, doc.Number)
	}

	if err := s.persist(ctx, doc, creatorID, "create"); err != nil {
		return nil, err
	}
	result := &portssvc.DocumentSaveResult{
		Document:   doc,
		NextNumber: domain.NextDocumentNumber(append(numbers, doc.Number), year),
	}
	if req.Notify {
		result.Notification = s.notifyClient(ctx, doc)
	}
	return result, nil
}

// UpdateDocument edits the header of a stored document and saves it again.
func (s *documentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, updaterID string) (*portssvc.DocumentSaveResult, error) {
	doc, err := s.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}

	if req.Type != nil {
		if !req.Type.IsValid() {
			return nil, validationError("unknown document type %q", *req.Type)
		}
		doc.Type = *req.Type
	}
	if req.ClientID != nil && *req.ClientID != doc.Client.ClientID {
		doc.Client.ClientID = ""
		if *req.ClientID != "" {
			client, err := findReferencedClient(ctx, s.clientRepo, *req.ClientID)
			if err != nil {
				return nil, err
			}
			selectClient(doc, client)
		}
	}
	setString(&doc.Client.Name, req.ClientName)
	setString(&doc.Client.Address, req.ClientAddress)
	setString(&doc.Client.TaxID, req.ClientTaxID)
	if req.ClientCategory != nil && *req.ClientCategory != doc.Client.Category {
		if err := s.changeClientCategory(ctx, doc, *req.ClientCategory); err != nil {
			return nil, err
		}
	}
	if err := applyDates(doc, derefString(req.IssueDate), derefString(req.DueDate)); err != nil {
		return nil, err
	}
	if err := applyTaxRates(doc, req.ServicesTaxRate, req.GoodsTaxRate); err != nil {
		return nil, err
	}
	setString(&doc.PaymentMethod, req.PaymentMethod)
	setString(&doc.Notes, req.Notes)
	if req.TaxCreditEnabled != nil {
		doc.TaxCreditEnabled = *req.TaxCreditEnabled
	}
	if req.TaxCreditRate != nil {
		if err := checkPercent("tax credit rate", *req.TaxCreditRate); err != nil {
			return nil, err
		}
		doc.TaxCreditRate = *req.TaxCreditRate
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, validationError("unknown status %q", *req.Status)
		}
		doc.Status = *req.Status
	}

	if err := s.persist(ctx, doc, updaterID, "update"); err != nil {
		return nil, err
	}
	// The write is committed; a missing next number only leaves the fresh draft unnumbered.
	result := &portssvc.DocumentSaveResult{Document: doc}
	if numbers, err := s.documentRepo.ListDocumentNumbers(ctx); err != nil {
		s.LogWarn(ctx, err, "Next document number unavailable after update", slog.String("document_id", doc.DocumentID))
	} else {
		result.NextNumber = domain.NextDocumentNumber(numbers, s.Now().Year())
	}
	if req.Notify {
		result.Notification = s.notifyClient(ctx, doc)
	}
	return result, nil
}

func (s *documentService) DeleteDocument(ctx context.Context, documentID string) error {
	if err := s.documentRepo.DeleteDocument(ctx, documentID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete document", slog.String("document_id", documentID))
		return fmt.Errorf("failed to delete document: %w", err)
	}
	s.LogInfo(ctx, "Document deleted", slog.String("document_id", documentID))
	return nil
}

// --- Line editing ---

func (s *documentService) SetCategorySelection(ctx context.Context, documentID string, req dto.CategorySelectionRequest, updaterID string) (*domain.Document, error) {
	return s.edit(ctx, documentID, updaterID, func(doc *domain.Document) (bool, error) {
		return s.applyCategorySelection(ctx, doc, req)
	})
}

func (s *documentService) RemoveCategoryLine(ctx context.Context, documentID string, categoryName string, updaterID string) (*domain.Document, error) {
	return s.edit(ctx, documentID, updaterID, func(doc *domain.Document) (bool, error) {
		if !doc.RemoveCategoryLine(categoryName) {
			return false, fmt.Errorf("%w: no category line named %q", apperrors.ErrNotFound, categoryName)
		}
		return true, nil
	})
}

func (s *documentService) SetProductSelections(ctx context.Context, documentID string, req dto.ProductSelectionRequest, updaterID string) (*domain.Document, error) {
	return s.edit(ctx, documentID, updaterID, func(doc *domain.Document) (bool, error) {
		return s.applyProductSelections(ctx, doc, req.Selections)
	})
}

func (s *documentService) RemoveProductLine(ctx context.Context, documentID string, productID string, updaterID string) (*domain.Document, error) {
	return s.edit(ctx, documentID, updaterID, func(doc *domain.Document) (bool, error) {
		if !doc.RemoveProductLine(productID) {
			return false, fmt.Errorf("%w: no product line for %s", apperrors.ErrNotFound, productID)
		}
		return true, nil
	})
}

// ChangeHourlyRate reprices every category line from its stored duration.
func (s *documentService) ChangeHourlyRate(ctx context.Context, documentID string, rate decimal.Decimal, updaterID string) (*domain.Document, error) {
	if rate.IsNegative() {
		return nil, validationError("hourly rate must not be negative")
	}
	return s.edit(ctx, documentID, updaterID, func(doc *domain.Document) (bool, error) {
		doc.ChangeHourlyRate(rate)
		return true, nil
	})
}

// ChangeClientCategory resets both tax rates to the defaults of the new category.
func (s *documentService) ChangeClientCategory(ctx context.Context, documentID string, category domain.ClientCategory, updaterID string) (*domain.Document, error) {
	return s.edit(ctx, documentID, updaterID, func(doc *domain.Document) (bool, error) {
		return true, s.changeClientCategory(ctx, doc, category)
	})
}

// --- Status ---

func (s *documentService) CycleStatus(ctx context.Context, documentID string, updaterID string) (*domain.Document, error) {
	doc, err := s.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	doc.CycleStatus()
	return doc, s.saveStatus(ctx, doc, updaterID)
}

func (s *documentService) SetStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updaterID string) (*domain.Document, error) {
	if !status.IsValid() {
		return nil, validationError("unknown status %q", status)
	}
	doc, err := s.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	doc.Status = status
	return doc, s.saveStatus(ctx, doc, updaterID)
}

func (s *documentService) saveStatus(ctx context.Context, doc *domain.Document, updaterID string) error {
	now := s.Now()
	if err := s.documentRepo.UpdateDocumentStatus(ctx, doc.DocumentID, doc.Status, updaterID); err != nil {
		s.LogError(ctx, err, "Failed to update document status", slog.String("document_id", doc.DocumentID))
		return fmt.Errorf("failed to update document status: %w", err)
	}
	doc.Touch(now, updaterID)
	s.metrics.DocumentSaved(string(doc.Type), "status")
	s.LogInfo(ctx, "Document status changed", slog.String("document_id", doc.DocumentID), slog.String("status", string(doc.Status)))
	return nil
}

// --- Helpers ---

// edit loads a document, applies change and saves it when change reports a modification.
func (s *documentService) edit(ctx context.Context, documentID, updaterID string, change func(*domain.Document) (bool, error)) (*domain.Document, error) {
	doc, err := s.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	changed, err := change(doc)
	if err != nil {
		return nil, err
	}
	if !changed {
		return doc, nil
	}
	if err := s.persist(ctx, doc, updaterID, "edit"); err != nil {
		return nil, err
	}
	return doc, nil
}

// persist is the single write path for full documents. Nothing is written unless
// the document has a client and at least one line.
func (s *documentService) persist(ctx context.Context, doc *domain.Document, actor, operation string) error {
	if err := validateForSave(doc); err != nil {
		return err
	}
	now := s.Now()
	if doc.IsNew() {
		audit := doc.AuditFields
		doc.Stamp(now, actor)
		id, err := s.documentRepo.CreateDocument(ctx, *doc)
		if err != nil {
			doc.AuditFields = audit
			s.LogError(ctx, err, "Failed to create document", slog.String("number", doc.Number))
			return fmt.Errorf("failed to create document: %w", err)
		}
		doc.DocumentID = id
	} else {
		audit := doc.AuditFields
		doc.Touch(now, actor)
		if err := s.documentRepo.UpdateDocument(ctx, *doc); err != nil {
			doc.AuditFields = audit
			s.LogError(ctx, err, "Failed to update document", slog.String("document_id", doc.DocumentID))
			return fmt.Errorf("failed to update document: %w", err)
		}
	}
	s.metrics.DocumentSaved(string(doc.Type), operation)
	s.LogInfo(ctx, "Document saved",
		slog.String("document_id", doc.DocumentID),
		slog.String("number", doc.Number),
		slog.String("operation", operation))
	return nil
}

func validateForSave(doc *domain.Document) error {
	if err := doc.ValidateForSave(); err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return nil
}

// buildDocument turns a creation request into a priced, unsaved document.
func (s *documentService) buildDocument(ctx context.Context, req dto.CreateDocumentRequest) (*domain.Document, error) {
	if !req.Type.IsValid() {
		return nil, validationError("unknown document type %q", req.Type)
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	doc := domain.NewDraft(req.Type, *settings, time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC))
	doc.Number = req.Number
	if err := applyDates(doc, req.IssueDate, req.DueDate); err != nil {
		return nil, err
	}

	if req.ClientID != "" {
		client, err := findReferencedClient(ctx, s.clientRepo, req.ClientID)
		if err != nil {
			return nil, err
		}
		selectClient(doc, client)
	}
	if req.ClientName != "" {
		doc.Client.Name = req.ClientName
	}
	if req.ClientAddress != "" {
		doc.Client.Address = req.ClientAddress
	}
	doc.Client.TaxID = req.ClientTaxID
	if req.ClientCategory != "" {
		if !req.ClientCategory.IsValid() {
			return nil, validationError("unknown client category %q", req.ClientCategory)
		}
		doc.ChangeClientCategory(req.ClientCategory, settings.TaxDefaults)
	}

	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return nil, validationError("hourly rate must not be negative")
		}
		doc.ChangeHourlyRate(*req.HourlyRate)
	}
	if err := applyTaxRates(doc, req.ServicesTaxRate, req.GoodsTaxRate); err != nil {
		return nil, err
	}
	doc.PaymentMethod = req.PaymentMethod
	doc.Notes = req.Notes
	doc.TaxCreditEnabled = req.TaxCreditEnabled
	if req.TaxCreditRate != nil {
		if err := checkPercent("tax credit rate", *req.TaxCreditRate); err != nil {
			return nil, err
		}
		doc.TaxCreditRate = *req.TaxCreditRate
	}

	for _, sel := range req.Categories {
		if _, err := s.applyCategorySelection(ctx, doc, sel); err != nil {
			return nil, err
		}
	}
	if _, err := s.applyProductSelections(ctx, doc, req.Products); err != nil {
		return nil, err
	}
	return doc, nil
}

// applyCategorySelection snapshots the selected prestations of one category into a
// category line named after it. An empty selection changes nothing.
func (s *documentService) applyCategorySelection(ctx context.Context, doc *domain.Document, req dto.CategorySelectionRequest) (bool, error) {
	category, err := s.categoryRepo.FindCategoryByID(ctx, domain.PrestationCategory, req.CategoryID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return false, validationError("unknown prestation category %s", req.CategoryID)
	}
	if err != nil {
		return false, fmt.Errorf("failed to load category %s: %w", req.CategoryID, err)
	}

	ids := make([]string, 0, len(req.Selections))
	for _, item := range req.Selections {
		if item.Quantity > 0 {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return false, nil
	}
	found, err := s.prestationRepo.FindPrestationsByIDs(ctx, ids)
	if err != nil {
		return false, fmt.Errorf("failed to load prestations: %w", err)
	}

	selections := make([]domain.PrestationSelection, 0, len(ids))
	for _, item := range req.Selections {
		if item.Quantity <= 0 {
			continue
		}
		p, ok := found[item.ID]
		if !ok {
			return false, validationError("unknown prestation %s", item.ID)
		}
		if p.CategoryID != category.CategoryID {
			return false, validationError("prestation %s is not in category %s", item.ID, category.Name)
		}
		selections = append(selections, domain.PrestationSelection{
			PrestationID:    p.PrestationID,
			Description:     p.Description,
			DurationMinutes: p.DurationMinutes,
			Quantity:        item.Quantity,
		})
	}
	return doc.UpsertCategoryLine(category.Name, selections), nil
}

// applyProductSelections prices the selected products and merges them by product id.
func (s *documentService) applyProductSelections(ctx context.Context, doc *domain.Document, items []dto.SelectionItem) (bool, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if item.Quantity > 0 {
			ids = append(ids, item.ID)
		}
	}
	if len(ids) == 0 {
		return false, nil
	}
	found, err := s.productRepo.FindProductsByIDs(ctx, ids)
	if err != nil {
		return false, fmt.Errorf("failed to load products: %w", err)
	}

	lines := make([]domain.ProductLine, 0, len(ids))
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		p, ok := found[item.ID]
		if !ok {
			return false, validationError("unknown product %s", item.ID)
		}
		lines = append(lines, domain.NewProductLine(p, item.Quantity))
	}
	doc.MergeProductLines(lines)
	return true, nil
}

func (s *documentService) changeClientCategory(ctx context.Context, doc *domain.Document, category domain.ClientCategory) error {
	if !category.IsValid() {
		return validationError("unknown client category %q", category)
	}
	settings, err := s.settings.GetSettings(ctx)
	if err != nil {
		return err
	}
	doc.ChangeClientCategory(category, settings.TaxDefaults)
	return nil
}

// notifyClient e-mails the document summary to its client. The outcome never
// affects the save that preceded it.
func (s *documentService) notifyClient(ctx context.Context, doc *domain.Document) portssvc.NotificationOutcome {
	if s.notifier == nil {
		return portssvc.NotificationOutcome{}
	}
	fail := func(err error) portssvc.NotificationOutcome {
		s.LogWarn(ctx, err, "Document notification not sent", slog.String("document_id", doc.DocumentID))
		s.metrics.NotificationFailed("document")
		return portssvc.NotificationOutcome{Attempted: true, Err: err}
	}

	client, err := s.clientRepo.FindClientByID(ctx, doc.Client.ClientID)
	if err != nil {
		return fail(fmt.Errorf("%w: cannot load client %s: %w", apperrors.ErrNotification, doc.Client.ClientID, err))
	}
	if client.Email == "" {
		return fail(fmt.Errorf("%w: client %s has no e-mail address", apperrors.ErrNotification, client.ClientID))
	}

	name := doc.Client.Name
	if name == "" {
		name = client.OwnerName
	}
	return s.notify(ctx, s.notifier, "document", domain.Notification{
		ToName:  name,
		ToEmail: client.Email,
		Subject: fmt.Sprintf("%s %s", doc.Type, doc.Number),
		Body: fmt.Sprintf("Your %s %s dated %s is available.\nTotal: %s",
			doc.Type, doc.Number, doc.IssueDate.Format(time.DateOnly), utils.FormatMoney(doc.Total)),
	})
}

func selectClient(doc *domain.Document, client *domain.Client) {
	doc.Client.ClientID = client.ClientID
	doc.Client.Name = client.OwnerName
	doc.Client.Address = client.Address
}

// applyDates sets the issue and due dates given as YYYY-MM-DD. A new issue date
// without a due date keeps the current validity period.
func applyDates(doc *domain.Document, issue, due string) error {
	if issue != "" {
		t, err := time.Parse(time.DateOnly, issue)
		if err != nil {
			return validationError("invalid issue date %q", issue)
		}
		validity := doc.DueDate.Sub(doc.IssueDate)
		doc.IssueDate = t
		if due == "" {
			doc.DueDate = t.Add(validity)
		}
	}
	if due != "" {
		t, err := time.Parse(time.DateOnly, due)
		if err != nil {
			return validationError("invalid due date %q", due)
		}
		doc.DueDate = t
	}
	if doc.DueDate.Before(doc.IssueDate) {
		return validationError("due date is before issue date")
	}
	return nil
}

func applyTaxRates(doc *domain.Document, services, goods *decimal.Decimal) error {
	if services == nil && goods == nil {
		return nil
	}
	s, g := doc.ServicesTaxRate, doc.GoodsTaxRate
	if services != nil {
		if err := checkPercent("services tax rate", *services); err != nil {
			return err
		}
		s = *services
	}
	if goods != nil {
		if err := checkPercent("goods tax rate", *goods); err != nil {
			return err
		}
		g = *goods
	}
	doc.SetTaxRates(s, g)
	return nil
}

func documentFilter(params dto.ListDocumentsParams) portsrepo.DocumentFilter {
	return portsrepo.DocumentFilter{
		Type:     params.Type,
		Status:   params.Status,
		ClientID: params.ClientID,
	}
}

func derefString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
