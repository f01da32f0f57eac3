package services_test

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock DocumentRepository ---
type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) FindDocumentByID(ctx context.Context, documentID string) (*domain.Document, error) {
	args := m.Called(ctx, documentID)
	var doc *domain.Document
	if args.Get(0) != nil {
		doc = args.Get(0).(*domain.Document)
	}
	return doc, args.Error(1)
}

func (m *MockDocumentRepository) ListDocuments(ctx context.Context, filter portsrepo.DocumentFilter) ([]domain.Document, error) {
	args := m.Called(ctx, filter)
	var docs []domain.Document
	if args.Get(0) != nil {
		docs = args.Get(0).([]domain.Document)
	}
	return docs, args.Error(1)
}

func (m *MockDocumentRepository) ListDocumentNumbers(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	var numbers []string
	if args.Get(0) != nil {
		numbers = args.Get(0).([]string)
	}
	return numbers, args.Error(1)
}

func (m *MockDocumentRepository) CreateDocument(ctx context.Context, document domain.Document) (string, error) {
	args := m.Called(ctx, document)
	return args.String(0), args.Error(1)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, document domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) UpdateDocumentStatus(ctx context.Context, documentID string, status domain.DocumentStatus, updatedBy string) error {
	args := m.Called(ctx, documentID, status, updatedBy)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, documentID string) error {
	args := m.Called(ctx, documentID)
	return args.Error(0)
}

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) CreateClient(ctx context.Context, client domain.Client) (string, error) {
	args := m.Called(ctx, client)
	return args.String(0), args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// --- Mock MissionRepository ---
type MockMissionRepository struct {
	mock.Mock
}

func (m *MockMissionRepository) FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	args := m.Called(ctx, missionID)
	var mission *domain.Mission
	if args.Get(0) != nil {
		mission = args.Get(0).(*domain.Mission)
	}
	return mission, args.Error(1)
}

func (m *MockMissionRepository) ListMissions(ctx context.Context, filter portsrepo.MissionFilter) ([]domain.Mission, error) {
	args := m.Called(ctx, filter)
	var missions []domain.Mission
	if args.Get(0) != nil {
		missions = args.Get(0).([]domain.Mission)
	}
	return missions, args.Error(1)
}

func (m *MockMissionRepository) CreateMission(ctx context.Context, mission domain.Mission) (string, error) {
	args := m.Called(ctx, mission)
	return args.String(0), args.Error(1)
}

func (m *MockMissionRepository) UpdateMission(ctx context.Context, mission domain.Mission) error {
	args := m.Called(ctx, mission)
	return args.Error(0)
}

func (m *MockMissionRepository) DeleteMission(ctx context.Context, missionID string) error {
	args := m.Called(ctx, missionID)
	return args.Error(0)
}

// --- Mock CategoryRepository ---
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindCategoryByID(ctx context.Context, kind domain.CategoryKind, categoryID string) (*domain.Category, error) {
	args := m.Called(ctx, kind, categoryID)
	var category *domain.Category
	if args.Get(0) != nil {
		category = args.Get(0).(*domain.Category)
	}
	return category, args.Error(1)
}

func (m *MockCategoryRepository) ListCategories(ctx context.Context, kind domain.CategoryKind) ([]domain.Category, error) {
	args := m.Called(ctx, kind)
	var categories []domain.Category
	if args.Get(0) != nil {
		categories = args.Get(0).([]domain.Category)
	}
	return categories, args.Error(1)
}

func (m *MockCategoryRepository) CreateCategory(ctx context.Context, category domain.Category) (string, error) {
	args := m.Called(ctx, category)
	return args.String(0), args.Error(1)
}

func (m *MockCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCategory(ctx context.Context, kind domain.CategoryKind, categoryID string) error {
	args := m.Called(ctx, kind, categoryID)
	return args.Error(0)
}

// --- Mock PrestationRepository ---
type MockPrestationRepository struct {
	mock.Mock
}

func (m *MockPrestationRepository) FindPrestationByID(ctx context.Context, prestationID string) (*domain.Prestation, error) {
	args := m.Called(ctx, prestationID)
	var p *domain.Prestation
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Prestation)
	}
	return p, args.Error(1)
}

func (m *MockPrestationRepository) FindPrestationsByIDs(ctx context.Context, prestationIDs []string) (map[string]domain.Prestation, error) {
	args := m.Called(ctx, prestationIDs)
	var found map[string]domain.Prestation
	if args.Get(0) != nil {
		found = args.Get(0).(map[string]domain.Prestation)
	}
	return found, args.Error(1)
}

func (m *MockPrestationRepository) ListPrestations(ctx context.Context, categoryID string) ([]domain.Prestation, error) {
	args := m.Called(ctx, categoryID)
	var ps []domain.Prestation
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.Prestation)
	}
	return ps, args.Error(1)
}

func (m *MockPrestationRepository) HasPrestationsInCategory(ctx context.Context, categoryID string) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrestationRepository) CreatePrestation(ctx context.Context, prestation domain.Prestation) (string, error) {
	args := m.Called(ctx, prestation)
	return args.String(0), args.Error(1)
}

func (m *MockPrestationRepository) UpdatePrestation(ctx context.Context, prestation domain.Prestation) error {
	args := m.Called(ctx, prestation)
	return args.Error(0)
}

func (m *MockPrestationRepository) DeletePrestation(ctx context.Context, prestationID string) error {
	args := m.Called(ctx, prestationID)
	return args.Error(0)
}

// --- Mock ProductRepository ---
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	var p *domain.Product
	if args.Get(0) != nil {
		p = args.Get(0).(*domain.Product)
	}
	return p, args.Error(1)
}

func (m *MockProductRepository) FindProductsByIDs(ctx context.Context, productIDs []string) (map[string]domain.Product, error) {
	args := m.Called(ctx, productIDs)
	var found map[string]domain.Product
	if args.Get(0) != nil {
		found = args.Get(0).(map[string]domain.Product)
	}
	return found, args.Error(1)
}

func (m *MockProductRepository) ListProducts(ctx context.Context, categoryID string) ([]domain.Product, error) {
	args := m.Called(ctx, categoryID)
	var ps []domain.Product
	if args.Get(0) != nil {
		ps = args.Get(0).([]domain.Product)
	}
	return ps, args.Error(1)
}

func (m *MockProductRepository) HasProductsInCategory(ctx context.Context, categoryID string) (bool, error) {
	args := m.Called(ctx, categoryID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) CreateProduct(ctx context.Context, product domain.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *MockProductRepository) UpdateProduct(ctx context.Context, product domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// --- Mock SettingsRepository ---
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	args := m.Called(ctx)
	var s *domain.Settings
	if args.Get(0) != nil {
		s = args.Get(0).(*domain.Settings)
	}
	return s, args.Error(1)
}

func (m *MockSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// --- Mock ContactRepository ---
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) CreateContact(ctx context.Context, contact domain.ContactMessage) (string, error) {
	args := m.Called(ctx, contact)
	return args.String(0), args.Error(1)
}

func (m *MockContactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.ContactMessage, error) {
	args := m.Called(ctx, contactID)
	var c *domain.ContactMessage
	if args.Get(0) != nil {
		c = args.Get(0).(*domain.ContactMessage)
	}
	return c, args.Error(1)
}

func (m *MockContactRepository) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	args := m.Called(ctx)
	var cs []domain.ContactMessage
	if args.Get(0) != nil {
		cs = args.Get(0).([]domain.ContactMessage)
	}
	return cs, args.Error(1)
}

func (m *MockContactRepository) UpdateContact(ctx context.Context, contact domain.ContactMessage) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteContact(ctx context.Context, contactID string) error {
	args := m.Called(ctx, contactID)
	return args.Error(0)
}

// --- Mock Notifier ---
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, n domain.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}
