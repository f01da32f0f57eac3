package handlers

import (
	"context"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock DocumentService ---
type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) document(args mock.Arguments) (*domain.Document, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentService) saveResult(args mock.Arguments) (*portssvc.DocumentSaveResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portssvc.DocumentSaveResult), args.Error(1)
}

func (m *MockDocumentService) GetDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID))
}
func (m *MockDocumentService) ListDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]domain.Document, string, error) {
	args := m.Called(ctx, params)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	return docs, args.String(1), args.Error(2)
}
func (m *MockDocumentService) NextDocumentNumber(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockDocumentService) PreviewDocument(ctx context.Context, req dto.CreateDocumentRequest) (*domain.Document, error) {
	return m.document(m.Called(ctx, req))
}
func (m *MockDocumentService) ExportDocuments(ctx context.Context, params dto.ListDocumentsParams) ([]byte, error) {
	args := m.Called(ctx, params)
	var data []byte
	if args.Get(0) != nil {
		data = args.Get(0).([]byte)
	}
	return data, args.Error(1)
}
func (m *MockDocumentService) CreateDocument(ctx context.Context, req dto.CreateDocumentRequest, creatorID string) (*portssvc.DocumentSaveResult, error) {
	return m.saveResult(m.Called(ctx, req, creatorID))
}
func (m *MockDocumentService) UpdateDocument(ctx context.Context, documentID string, req dto.UpdateDocumentRequest, updaterID string) (*portssvc.DocumentSaveResult, error) {
	return m.saveResult(m.Called(ctx, documentID, req, updaterID))
}
func (m *MockDocumentService) DeleteDocument(ctx context.Context, documentID string) error {
	return m.Called(ctx, documentID).Error(0)
}
func (m *MockDocumentService) SetCategorySelection(ctx context.Context, documentID string, req dto.CategorySelectionRequest, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, req, updaterID))
}
func (m *MockDocumentService) RemoveCategoryLine(ctx context.Context, documentID string, categoryName string, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, categoryName, updaterID))
}
func (m *MockDocumentService) SetProductSelections(ctx context.Context, documentID string, req dto.ProductSelectionRequest, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, req, updaterID))
}
func (m *MockDocumentService) RemoveProductLine(ctx context.Context, documentID string, productID string, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, productID, updaterID))
}
func (m *MockDocumentService) ChangeHourlyRate(ctx context.Context, documentID string, rate decimal.Decimal, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, rate, updaterID))
}
func (m *MockDocumentService) ChangeClientCategory(ctx context.Context, documentID string, category domain.ClientCategory, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, category, updaterID))
}
func (m *MockDocumentService) CycleStatus(ctx context.Context, documentID string, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, updaterID))
}
func (m *MockDocumentService) SetStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updaterID string) (*domain.Document, error) {
	return m.document(m.Called(ctx, documentID, status, updaterID))
}

var _ portssvc.DocumentSvcFacade = (*MockDocumentService)(nil)

// --- Mock ClientService ---
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) client(args mock.Arguments) (*domain.Client, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	return m.client(m.Called(ctx, clientID))
}
func (m *MockClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}
func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorID string) (*domain.Client, error) {
	return m.client(m.Called(ctx, req, creatorID))
}
func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterID string) (*domain.Client, error) {
	return m.client(m.Called(ctx, clientID, req, updaterID))
}
func (m *MockClientService) DeleteClient(ctx context.Context, clientID string) error {
	return m.Called(ctx, clientID).Error(0)
}

var _ portssvc.ClientSvcFacade = (*MockClientService)(nil)

// --- Mock CatalogService ---
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetCategoryByID(ctx context.Context, kind domain.CategoryKind, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, kind, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCatalogService) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}
func (m *MockCatalogService) CreateCategory(ctx context.Context, kind domain.CategoryKind, req dto.CreateCategoryRequest, creatorID string) (*domain.Category, error) {
	args := m.Called(ctx, kind, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCatalogService) UpdateCategory(ctx context.Context, kind domain.CategoryKind, categoryID string, req dto.UpdateCategoryRequest, updaterID string) (*domain.Category, error) {
	args := m.Called(ctx, kind, categoryID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}
func (m *MockCatalogService) DeleteCategory(ctx context.Context, kind domain.CategoryKind, categoryID string) error {
	return m.Called(ctx, kind, categoryID).Error(0)
}
func (m *MockCatalogService) GetPrestationByID(ctx context.Context, prestationID string) (*domain.Prestation, error) {
	args := m.Called(ctx, prestationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}
func (m *MockCatalogService) ListPrestations(ctx context.Context, params dto.ListCatalogParams) ([]domain.Prestation, error) {
	args := m.Called(ctx, params)
	var prestations []domain.Prestation
	if args.Get(0) != nil {
		prestations = args.Get(0).([]domain.Prestation)
	}
	return prestations, args.Error(1)
}
func (m *MockCatalogService) CreatePrestation(ctx context.Context, req dto.CreatePrestationRequest, creatorID string) (*domain.Prestation, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}
func (m *MockCatalogService) UpdatePrestation(ctx context.Context, prestationID string, req dto.UpdatePrestationRequest, updaterID string) (*domain.Prestation, error) {
	args := m.Called(ctx, prestationID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Prestation), args.Error(1)
}
func (m *MockCatalogService) DeletePrestation(ctx context.Context, prestationID string) error {
	return m.Called(ctx, prestationID).Error(0)
}
func (m *MockCatalogService) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockCatalogService) ListProducts(ctx context.Context, params dto.ListCatalogParams) ([]domain.Product, error) {
	args := m.Called(ctx, params)
	var products []domain.Product
	if args.Get(0) != nil {
		products = args.Get(0).([]domain.Product)
	}
	return products, args.Error(1)
}
func (m *MockCatalogService) CreateProduct(ctx context.Context, req dto.CreateProductRequest, creatorID string) (*domain.Product, error) {
	args := m.Called(ctx, req, creatorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockCatalogService) UpdateProduct(ctx context.Context, productID string, req dto.UpdateProductRequest, updaterID string) (*domain.Product, error) {
	args := m.Called(ctx, productID, req, updaterID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockCatalogService) DeleteProduct(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

var _ portssvc.CatalogSvcFacade = (*MockCatalogService)(nil)

// --- Mock ContactService ---
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) GetContactByID(ctx context.Context, contactID string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, contactID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactMessage), args.Error(1)
}
func (m *MockContactService) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	var contacts []domain.ContactMessage
	if args.Get(0) != nil {
		contacts = args.Get(0).([]domain.ContactMessage)
	}
	return contacts, args.Error(1)
}
func (m *MockContactService) SubmitContact(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, portssvc.NotificationOutcome, error) {
	args := m.Called(ctx, req)
	var contact *domain.ContactMessage
	if args.Get(0) != nil {
		contact = args.Get(0).(*domain.ContactMessage)
	}
	return contact, args.Get(1).(portssvc.NotificationOutcome), args.Error(2)
}
func (m *MockContactService) ReplyToContact(ctx context.Context, contactID string, req dto.ReplyContactRequest, replierID string) (*domain.ContactMessage, portssvc.NotificationOutcome, error) {
	args := m.Called(ctx, contactID, req, replierID)
	var contact *domain.ContactMessage
	if args.Get(0) != nil {
		contact = args.Get(0).(*domain.ContactMessage)
	}
	return contact, args.Get(1).(portssvc.NotificationOutcome), args.Error(2)
}
func (m *MockContactService) DeleteContact(ctx context.Context, contactID string) error {
	return m.Called(ctx, contactID).Error(0)
}

var _ portssvc.ContactSvcFacade = (*MockContactService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Authenticate(ctx context.Context, username, password string) (string, error) {
	args := m.Called(ctx, username, password)
	return args.String(0), args.Error(1)
}
func (m *MockTokenService) GenerateAccessToken(ctx context.Context, subject string) (string, time.Time, error) {
	args := m.Called(ctx, subject)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) GenerateStateString(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
func (m *MockGoogleOAuthService) GetGoogleLoginURL(ctx context.Context, state string) string {
	return m.Called(ctx, state).String(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}
func (m *MockGoogleOAuthService) AdminSubjectForEmail(ctx context.Context, email string) (string, error) {
	args := m.Called(ctx, email)
	return args.String(0), args.Error(1)
}

var _ portssvc.GoogleOAuthHandlerSvcFacade = (*MockGoogleOAuthService)(nil)
