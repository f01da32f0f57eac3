package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/core/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/utils/pagination"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type DocumentServiceTestSuite struct {
	suite.Suite
	documentRepo   *MockDocumentRepository
	clientRepo     *MockClientRepository
	categoryRepo   *MockCategoryRepository
	prestationRepo *MockPrestationRepository
	productRepo    *MockProductRepository
	settingsRepo   *MockSettingsRepository
	notifier       *MockNotifier
	service        portssvc.DocumentSvcFacade
	ctx            context.Context
}

func (s *DocumentServiceTestSuite) SetupTest() {
	s.documentRepo = new(MockDocumentRepository)
	s.clientRepo = new(MockClientRepository)
	s.categoryRepo = new(MockCategoryRepository)
	s.prestationRepo = new(MockPrestationRepository)
	s.productRepo = new(MockProductRepository)
	s.settingsRepo = new(MockSettingsRepository)
	s.notifier = new(MockNotifier)
	s.ctx = context.Background()

	clock := services.WithClock(func() time.Time { return fixedNow })
	repos := portsrepo.RepositoryProvider{
		DocumentRepo:   s.documentRepo,
		ClientRepo:     s.clientRepo,
		CategoryRepo:   s.categoryRepo,
		PrestationRepo: s.prestationRepo,
		ProductRepo:    s.productRepo,
		SettingsRepo:   s.settingsRepo,
	}
	settings := services.NewSettingsService(s.settingsRepo, clock)
	s.service = services.NewDocumentService(repos, settings, s.notifier, clock)

	// No stored settings: the built-in defaults apply (25/h, services 10% and goods 20% for individuals).
	s.settingsRepo.On("GetSettings", mock.Anything).Return(nil, apperrors.ErrNotFound).Maybe()
}

func (s *DocumentServiceTestSuite) TearDownTest() {
	s.documentRepo.AssertExpectations(s.T())
	s.clientRepo.AssertExpectations(s.T())
	s.notifier.AssertExpectations(s.T())
}

func TestDocumentServiceSuite(t *testing.T) {
	suite.Run(t, new(DocumentServiceTestSuite))
}

func (s *DocumentServiceTestSuite) expectCleaningCatalog() {
	s.categoryRepo.On("FindCategoryByID", mock.Anything, domain.PrestationCategory, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", Kind: domain.PrestationCategory, Name: "Cleaning"}, nil)
	s.prestationRepo.On("FindPrestationsByIDs", mock.Anything, []string{"p-1"}).
		Return(map[string]domain.Prestation{
			"p-1": {PrestationID: "p-1", Description: "Vacuum", DurationMinutes: 60, CategoryID: "cat-1"},
		}, nil)
}

func (s *DocumentServiceTestSuite) expectClient(times int) {
	s.clientRepo.On("FindClientByID", mock.Anything, "client-1").
		Return(&domain.Client{ClientID: "client-1", OwnerName: "Jane Doe", Email: "jane@example.com", Address: "1 Sea Road"}, nil).
		Times(times)
}

func cleaningRequest() dto.CreateDocumentRequest {
	return dto.CreateDocumentRequest{
		Type:     domain.Invoice,
		ClientID: "client-1",
		Categories: []dto.CategorySelectionRequest{
			{CategoryID: "cat-1", Selections: []dto.SelectionItem{{ID: "p-1", Quantity: 2}}},
		},
	}
}

func storedDocument() *domain.Document {
	d := domain.NewDraft(domain.Invoice, domain.DefaultSettings(), fixedNow)
	d.DocumentID = "doc-1"
	d.Number = "2024-003"
	d.Client = domain.DocumentClient{ClientID: "client-1", Name: "Jane Doe", Category: domain.Individual}
	d.UpsertCategoryLine("Cleaning", []domain.PrestationSelection{{PrestationID: "p-1", DurationMinutes: 60, Quantity: 2}})
	return d
}

func (s *DocumentServiceTestSuite) TestCreateDocument_WithoutClientIsRejected() {
	req := cleaningRequest()
	req.ClientID = ""
	s.expectCleaningCatalog()

	result, err := s.service.CreateDocument(s.ctx, req, "admin")

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, domain.ErrNoClientSelected)
	s.documentRepo.AssertNotCalled(s.T(), "CreateDocument", mock.Anything, mock.Anything)
	s.documentRepo.AssertNotCalled(s.T(), "ListDocumentNumbers", mock.Anything)
}

func (s *DocumentServiceTestSuite) TestCreateDocument_WithoutLinesIsRejected() {
	s.expectClient(1)

	result, err := s.service.CreateDocument(s.ctx, dto.CreateDocumentRequest{Type: domain.Quote, ClientID: "client-1"}, "admin")

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, domain.ErrNoLines)
	s.documentRepo.AssertNotCalled(s.T(), "CreateDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestCreateDocument_AssignsNextNumberAndPrices() {
	s.expectClient(1)
	s.expectCleaningCatalog()
	s.documentRepo.On("ListDocumentNumbers", mock.Anything).
		Return([]string{"2024-001", "2024-007", "2023-099"}, nil).Once()
	s.documentRepo.On("CreateDocument", mock.Anything, mock.MatchedBy(func(d domain.Document) bool {
		return d.Number == "2024-008" && d.Client.ClientID == "client-1" && d.CreatedBy == "admin"
	})).Return("doc-9", nil).Once()

	result, err := s.service.CreateDocument(s.ctx, cleaningRequest(), "admin")

	s.Require().NoError(err)
	s.Equal("doc-9", result.Document.DocumentID)
	s.Equal("2024-008", result.Document.Number)
	s.Equal("2024-009", result.NextNumber)
	s.Equal("Jane Doe", result.Document.Client.Name)
	s.Require().Len(result.Document.CategoryLines, 1)
	line := result.Document.CategoryLines[0]
	s.Equal("Cleaning", line.Name)
	s.Equal(120, line.TotalDurationMinutes)
	s.True(line.Price.Equal(decimal.NewFromInt(50)), "price %s", line.Price)
	s.True(result.Document.Total.Equal(decimal.NewFromInt(55)), "total %s", result.Document.Total)
	s.False(result.Notification.Attempted)
}

func (s *DocumentServiceTestSuite) TestCreateDocument_DuplicateNumber() {
	req := cleaningRequest()
	req.Number = "2024-007"
	s.expectClient(1)
	s.expectCleaningCatalog()
	s.documentRepo.On("ListDocumentNumbers", mock.Anything).Return([]string{"2024-007"}, nil).Once()

	_, err := s.service.CreateDocument(s.ctx, req, "admin")

	s.ErrorIs(err, apperrors.ErrDuplicate)
	s.documentRepo.AssertNotCalled(s.T(), "CreateDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestCreateDocument_NotificationFailureKeepsTheSave() {
	req := cleaningRequest()
	req.Notify = true
	s.expectClient(2)
	s.expectCleaningCatalog()
	s.documentRepo.On("ListDocumentNumbers", mock.Anything).Return([]string{}, nil).Once()
	s.documentRepo.On("CreateDocument", mock.Anything, mock.Anything).Return("doc-1", nil).Once()
	s.notifier.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.ToEmail == "jane@example.com" && n.Subject == "invoice 2024-001"
	})).Return(errors.New("smtp down")).Once()

	result, err := s.service.CreateDocument(s.ctx, req, "admin")

	s.Require().NoError(err)
	s.Equal("doc-1", result.Document.DocumentID)
	s.True(result.Notification.Attempted)
	s.EqualError(result.Notification.Err, "smtp down")
	s.Equal("2024-002", result.NextNumber)
}

func (s *DocumentServiceTestSuite) TestRemoveLastLine_FailsValidationWithoutWrite() {
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()

	doc, err := s.service.RemoveCategoryLine(s.ctx, "doc-1", "Cleaning", "admin")

	s.Nil(doc)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, domain.ErrNoLines)
	s.documentRepo.AssertNotCalled(s.T(), "UpdateDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestRemoveUnknownLine_NotFound() {
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()

	_, err := s.service.RemoveCategoryLine(s.ctx, "doc-1", "Garden", "admin")

	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *DocumentServiceTestSuite) TestChangeHourlyRate_RescalesLines() {
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()
	s.documentRepo.On("UpdateDocument", mock.Anything, mock.MatchedBy(func(d domain.Document) bool {
		return d.CategoryLines[0].Price.Equal(decimal.NewFromInt(60)) && d.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()

	doc, err := s.service.ChangeHourlyRate(s.ctx, "doc-1", decimal.NewFromInt(30), "admin")

	s.Require().NoError(err)
	s.Equal(120, doc.CategoryLines[0].TotalDurationMinutes)
	s.True(doc.HourlyRate.Equal(decimal.NewFromInt(30)))
	s.prestationRepo.AssertNotCalled(s.T(), "FindPrestationsByIDs", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestChangeClientCategory_ResetsTaxRates() {
	stored := storedDocument()
	stored.SetTaxRates(decimal.NewFromInt(5), decimal.NewFromInt(5))
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(stored, nil).Once()
	s.documentRepo.On("UpdateDocument", mock.Anything, mock.Anything).Return(nil).Once()

	doc, err := s.service.ChangeClientCategory(s.ctx, "doc-1", domain.Business, "admin")

	s.Require().NoError(err)
	s.Equal(domain.Business, doc.Client.Category)
	s.True(doc.ServicesTaxRate.Equal(decimal.NewFromInt(20)))
	s.True(doc.GoodsTaxRate.Equal(decimal.NewFromInt(20)))
}

func (s *DocumentServiceTestSuite) TestSetCategorySelection_UnknownPrestation() {
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()
	s.categoryRepo.On("FindCategoryByID", mock.Anything, domain.PrestationCategory, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", Name: "Cleaning"}, nil)
	s.prestationRepo.On("FindPrestationsByIDs", mock.Anything, []string{"ghost"}).
		Return(map[string]domain.Prestation{}, nil)

	_, err := s.service.SetCategorySelection(s.ctx, "doc-1", dto.CategorySelectionRequest{
		CategoryID: "cat-1",
		Selections: []dto.SelectionItem{{ID: "ghost", Quantity: 1}},
	}, "admin")

	s.ErrorIs(err, apperrors.ErrValidation)
	s.documentRepo.AssertNotCalled(s.T(), "UpdateDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestSetCategorySelection_EmptySelectionIsNoop() {
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()
	s.categoryRepo.On("FindCategoryByID", mock.Anything, domain.PrestationCategory, "cat-1").
		Return(&domain.Category{CategoryID: "cat-1", Name: "Cleaning"}, nil)

	doc, err := s.service.SetCategorySelection(s.ctx, "doc-1", dto.CategorySelectionRequest{
		CategoryID: "cat-1",
		Selections: []dto.SelectionItem{{ID: "p-1", Quantity: 0}},
	}, "admin")

	s.Require().NoError(err)
	s.Len(doc.CategoryLines, 1)
	s.documentRepo.AssertNotCalled(s.T(), "UpdateDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestCycleStatus() {
	stored := storedDocument()
	stored.Status = domain.StatusPaid
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(stored, nil).Once()
	s.documentRepo.On("UpdateDocumentStatus", mock.Anything, "doc-1", domain.StatusIssued, "admin").Return(nil).Once()

	doc, err := s.service.CycleStatus(s.ctx, "doc-1", "admin")

	s.Require().NoError(err)
	s.Equal(domain.StatusIssued, doc.Status)
}

func (s *DocumentServiceTestSuite) TestListDocuments_Paging() {
	s.documentRepo.On("ListDocuments", mock.Anything, portsrepo.DocumentFilter{Type: domain.Invoice, Limit: 2, Offset: 0}).
		Return([]domain.Document{*storedDocument(), *storedDocument()}, nil).Once()

	docs, next, err := s.service.ListDocuments(s.ctx, dto.ListDocumentsParams{Type: domain.Invoice, Limit: 2})

	s.Require().NoError(err)
	s.Len(docs, 2)
	offset, err := pagination.DecodeOffsetToken(next)
	s.Require().NoError(err)
	s.Equal(2, offset)

	_, _, err = s.service.ListDocuments(s.ctx, dto.ListDocumentsParams{PageToken: "%%%"})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *DocumentServiceTestSuite) TestPreviewDocument_DoesNotPersist() {
	s.expectClient(1)
	s.expectCleaningCatalog()
	s.documentRepo.On("ListDocumentNumbers", mock.Anything).Return([]string{"2024-004"}, nil).Once()

	doc, err := s.service.PreviewDocument(s.ctx, cleaningRequest())

	s.Require().NoError(err)
	s.Equal("2024-005", doc.Number)
	s.True(doc.IsNew())
	s.documentRepo.AssertNotCalled(s.T(), "CreateDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestUpdateDocument_PersistsHeaderAndTotals() {
	servicesRate := decimal.NewFromInt(20)
	notes := "Gate code changed"
	method := "transfer"
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()
	s.documentRepo.On("UpdateDocument", mock.Anything, mock.MatchedBy(func(d domain.Document) bool {
		return d.DocumentID == "doc-1" &&
			d.Notes == notes &&
			d.PaymentMethod == method &&
			d.ServicesTaxRate.Equal(servicesRate) &&
			d.ServicesTax.Equal(decimal.NewFromInt(10)) &&
			d.Total.Equal(decimal.NewFromInt(60)) &&
			d.LastUpdatedBy == "admin" &&
			d.LastUpdatedAt.Equal(fixedNow)
	})).Return(nil).Once()
	s.documentRepo.On("ListDocumentNumbers", mock.Anything).Return([]string{"2024-001", "2024-003"}, nil).Once()

	result, err := s.service.UpdateDocument(s.ctx, "doc-1", dto.UpdateDocumentRequest{
		ServicesTaxRate: &servicesRate,
		Notes:           &notes,
		PaymentMethod:   &method,
	}, "admin")

	s.Require().NoError(err)
	s.Equal("2024-003", result.Document.Number)
	s.Equal("2024-004", result.NextNumber)
	s.True(result.Document.Total.Equal(decimal.NewFromInt(60)), "total %s", result.Document.Total)
	s.False(result.Notification.Attempted)
}

func (s *DocumentServiceTestSuite) TestUpdateDocument_ClearingClientIsRejected() {
	empty := ""
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()

	result, err := s.service.UpdateDocument(s.ctx, "doc-1", dto.UpdateDocumentRequest{ClientID: &empty}, "admin")

	s.Nil(result)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.ErrorIs(err, domain.ErrNoClientSelected)
	s.documentRepo.AssertNotCalled(s.T(), "UpdateDocument", mock.Anything, mock.Anything)
}

func (s *DocumentServiceTestSuite) TestUpdateDocument_NotificationFailureKeepsTheSave() {
	s.expectClient(1)
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()
	s.documentRepo.On("UpdateDocument", mock.Anything, mock.Anything).Return(nil).Once()
	s.documentRepo.On("ListDocumentNumbers", mock.Anything).Return([]string{"2024-003"}, nil).Once()
	s.notifier.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.ToEmail == "jane@example.com" && n.Subject == "invoice 2024-003"
	})).Return(errors.New("smtp down")).Once()

	result, err := s.service.UpdateDocument(s.ctx, "doc-1", dto.UpdateDocumentRequest{Notify: true}, "admin")

	s.Require().NoError(err)
	s.Equal("doc-1", result.Document.DocumentID)
	s.True(result.Notification.Attempted)
	s.EqualError(result.Notification.Err, "smtp down")
}

func (s *DocumentServiceTestSuite) TestUpdateDocument_NextNumberFailureKeepsTheSave() {
	s.expectClient(1)
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(storedDocument(), nil).Once()
	s.documentRepo.On("UpdateDocument", mock.Anything, mock.Anything).Return(nil).Once()
	s.documentRepo.On("ListDocumentNumbers", mock.Anything).Return(nil, errors.New("db down")).Once()
	s.notifier.On("Send", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := s.service.UpdateDocument(s.ctx, "doc-1", dto.UpdateDocumentRequest{Notify: true}, "admin")

	s.Require().NoError(err)
	s.Require().NotNil(result)
	s.Equal("doc-1", result.Document.DocumentID)
	s.Empty(result.NextNumber)
	s.True(result.Notification.Attempted)
	s.NoError(result.Notification.Err)
}

func (s *DocumentServiceTestSuite) TestSetProductSelections_MergesByProductID() {
	stored := storedDocument()
	stored.MergeProductLines([]domain.ProductLine{
		{ProductID: "soap", Name: "Soap", Price: decimal.RequireFromString("3.2"), Quantity: 1, Unit: "unit"},
		{ProductID: "wine", Name: "Wine", Price: decimal.RequireFromString("12.5"), Quantity: 1, Unit: "bottle"},
	})
	s.documentRepo.On("FindDocumentByID", mock.Anything, "doc-1").Return(stored, nil).Once()
	s.productRepo.On("FindProductsByIDs", mock.Anything, []string{"soap", "oil"}).
		Return(map[string]domain.Product{
			"soap": {ProductID: "soap", Name: "Soap", UnitPrice: decimal.RequireFromString("3.2"), Unit: "unit"},
			"oil":  {ProductID: "oil", Name: "Olive oil", UnitPrice: decimal.NewFromInt(21), Unit: "liter"},
		}, nil).Once()
	s.documentRepo.On("UpdateDocument", mock.Anything, mock.MatchedBy(func(d domain.Document) bool {
		return len(d.ProductLines) == 3 && d.GoodsSubtotal.Equal(decimal.RequireFromString("49.5"))
	})).Return(nil).Once()

	doc, err := s.service.SetProductSelections(s.ctx, "doc-1", dto.ProductSelectionRequest{
		Selections: []dto.SelectionItem{{ID: "soap", Quantity: 5}, {ID: "ghost", Quantity: 0}, {ID: "oil", Quantity: 1}},
	}, "admin")

	s.Require().NoError(err)
	s.Equal([]string{"soap", "wine", "oil"},
		[]string{doc.ProductLines[0].ProductID, doc.ProductLines[1].ProductID, doc.ProductLines[2].ProductID})
	s.Equal(5, doc.ProductLines[0].Quantity)
	s.True(doc.ProductLines[0].Price.Equal(decimal.NewFromInt(16)))
	s.True(doc.GoodsTax.Equal(decimal.RequireFromString("9.9")))
	s.True(doc.Total.Equal(decimal.RequireFromString("114.4")), "total %s", doc.Total)
}
