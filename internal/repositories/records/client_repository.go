package records

import (
	"context"
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils/mapping"
)

type clientRepository struct {
	store portsrepo.DocumentStore
}

func newClientRepository(store portsrepo.DocumentStore) portsrepo.ClientRepositoryFacade {
	return &clientRepository{store: store}
}

var _ portsrepo.ClientRepositoryFacade = (*clientRepository)(nil)

func (r *clientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	rec, err := r.store.Get(ctx, portsrepo.ClientsCollection, clientID)
	if err != nil {
		return nil, err
	}
	client, err := decodeClient(*rec)
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	recs, err := r.store.List(ctx, portsrepo.ClientsCollection, portsrepo.Query{
		OrderBy: []portsrepo.Order{{Field: "ownerName"}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	clients := make([]domain.Client, 0, len(recs))
	for _, rec := range recs {
		c, err := decodeClient(rec)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, nil
}

func (r *clientRepository) CreateClient(ctx context.Context, client domain.Client) (string, error) {
	fields, err := toFields(mapping.ToModelClient(client))
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, portsrepo.ClientsCollection, fields)
}

func (r *clientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	fields, err := toFields(mapping.ToModelClient(client))
	if err != nil {
		return err
	}
	return r.store.Update(ctx, portsrepo.ClientsCollection, client.ClientID, fields)
}

func (r *clientRepository) DeleteClient(ctx context.Context, clientID string) error {
	return r.store.Delete(ctx, portsrepo.ClientsCollection, clientID)
}

func decodeClient(rec portsrepo.Record) (domain.Client, error) {
	var m models.Client
	if err := fromRecord(rec, &m); err != nil {
		return domain.Client{}, err
	}
	m.ClientID = rec.ID
	m.CreatedAt, m.LastUpdatedAt = rec.CreatedAt, rec.UpdatedAt
	return mapping.ToDomainClient(m), nil
}
