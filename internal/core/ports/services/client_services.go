package services

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

// ClientReaderSvc defines read operations for client records
type ClientReaderSvc interface {
	GetClientByID(ctx context.Context, clientID string) (*domain.Client, error)
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriterSvc defines write operations for client records
type ClientWriterSvc interface {
	CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorID string) (*domain.Client, error)
	UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterID string) (*domain.Client, error)
	// DeleteClient removes the client only; missions and documents referencing it are kept.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
}
