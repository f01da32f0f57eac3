package repositories

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// ContactRepositoryFacade stores contact form submissions.
type ContactRepositoryFacade interface {
	CreateContact(ctx context.Context, contact domain.ContactMessage) (string, error)
	FindContactByID(ctx context.Context, contactID string) (*domain.ContactMessage, error)
	// ListContacts returns messages newest first.
	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
	UpdateContact(ctx context.Context, contact domain.ContactMessage) error
	DeleteContact(ctx context.Context, contactID string) error
}
