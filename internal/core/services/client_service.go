package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewClientService creates the service managing client records.
func NewClientService(clientRepo portsrepo.ClientRepositoryFacade, opts ...ServiceOption) portssvc.ClientSvcFacade {
	return &clientService{
		BaseService: newBaseService(opts),
		clientRepo:  clientRepo,
	}
}

var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find client", slog.String("client_id", clientID))
		}
		return nil, err
	}
	return client, nil
}

func (s *clientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients")
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		return []domain.Client{}, nil
	}
	return clients, nil
}

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest, creatorID string) (*domain.Client, error) {
	client := domain.Client{
		OwnerName:       req.OwnerName,
		Phone:           req.Phone,
		Email:           req.Email,
		Address:         req.Address,
		WifiName:        req.WifiName,
		WifiPassword:    req.WifiPassword,
		AlarmCode:       req.AlarmCode,
		KeyBoxCode:      req.KeyBoxCode,
		KeyCount:        req.KeyCount,
		WaterShutoff:    req.WaterShutoff,
		ElectricShutoff: req.ElectricShutoff,
		GarbageSchedule: req.GarbageSchedule,
		PoolSchedule:    req.PoolSchedule,
		GardenSchedule:  req.GardenSchedule,
		ContractType:    req.ContractType,
		Notes:           req.Notes,
	}
	client.Stamp(s.Now(), creatorID)

	id, err := s.clientRepo.CreateClient(ctx, client)
	if err != nil {
		s.LogError(ctx, err, "Failed to create client")
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	client.ClientID = id

	s.LogInfo(ctx, "Client created", slog.String("client_id", id))
	return &client, nil
}

func (s *clientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest, updaterID string) (*domain.Client, error) {
	client, err := s.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	setString(&client.OwnerName, req.OwnerName)
	setString(&client.Phone, req.Phone)
	setString(&client.Email, req.Email)
	setString(&client.Address, req.Address)
	setString(&client.WifiName, req.WifiName)
	setString(&client.WifiPassword, req.WifiPassword)
	setString(&client.AlarmCode, req.AlarmCode)
	setString(&client.KeyBoxCode, req.KeyBoxCode)
	if req.KeyCount != nil {
		client.KeyCount = *req.KeyCount
	}
	setString(&client.WaterShutoff, req.WaterShutoff)
	setString(&client.ElectricShutoff, req.ElectricShutoff)
	setString(&client.GarbageSchedule, req.GarbageSchedule)
	setString(&client.PoolSchedule, req.PoolSchedule)
	setString(&client.GardenSchedule, req.GardenSchedule)
	setString(&client.ContractType, req.ContractType)
	setString(&client.Notes, req.Notes)
	client.Touch(s.Now(), updaterID)

	if err := s.clientRepo.UpdateClient(ctx, *client); err != nil {
		s.LogError(ctx, err, "Failed to update client", slog.String("client_id", clientID))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return fmt.Errorf("failed to delete client: %w", err)
	}
	s.LogInfo(ctx, "Client deleted", slog.String("client_id", clientID))
	return nil
}

// findReferencedClient resolves a client referenced by another record.
// An unknown id is a validation error rather than a missing resource.
func findReferencedClient(ctx context.Context, repo portsrepo.ClientReader, clientID string) (*domain.Client, error) {
	client, err := repo.FindClientByID(ctx, clientID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, validationError("unknown client %s", clientID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load client %s: %w", clientID, err)
	}
	return client, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
