package repositories

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	// CreateClient persists a new client and returns its generated id.
	CreateClient(ctx context.Context, client domain.Client) (string, error)
	UpdateClient(ctx context.Context, client domain.Client) error
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
}
