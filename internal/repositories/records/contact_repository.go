package records

import (
	"context"
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils/mapping"
)

type contactRepository struct {
	store portsrepo.DocumentStore
}

func newContactRepository(store portsrepo.DocumentStore) portsrepo.ContactRepositoryFacade {
	return &contactRepository{store: store}
}

var _ portsrepo.ContactRepositoryFacade = (*contactRepository)(nil)

func (r *contactRepository) CreateContact(ctx context.Context, contact domain.ContactMessage) (string, error) {
	fields, err := toFields(mapping.ToModelContact(contact))
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, portsrepo.ContactsCollection, fields)
}

func (r *contactRepository) FindContactByID(ctx context.Context, contactID string) (*domain.ContactMessage, error) {
	rec, err := r.store.Get(ctx, portsrepo.ContactsCollection, contactID)
	if err != nil {
		return nil, err
	}
	c, err := decodeContact(*rec)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *contactRepository) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	recs, err := r.store.List(ctx, portsrepo.ContactsCollection, portsrepo.Query{
		OrderBy: []portsrepo.Order{{Field: "createdAt", Descending: true}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	contacts := make([]domain.ContactMessage, 0, len(recs))
	for _, rec := range recs {
		c, err := decodeContact(rec)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, nil
}

func (r *contactRepository) UpdateContact(ctx context.Context, contact domain.ContactMessage) error {
	fields, err := toFields(mapping.ToModelContact(contact))
	if err != nil {
		return err
	}
	return r.store.Update(ctx, portsrepo.ContactsCollection, contact.ContactID, fields)
}

func (r *contactRepository) DeleteContact(ctx context.Context, contactID string) error {
	return r.store.Delete(ctx, portsrepo.ContactsCollection, contactID)
}

func decodeContact(rec portsrepo.Record) (domain.ContactMessage, error) {
	var m models.ContactMessage
	if err := fromRecord(rec, &m); err != nil {
		return domain.ContactMessage{}, err
	}
	m.ContactID = rec.ID
	return mapping.ToDomainContact(m, rec.CreatedAt), nil
}
