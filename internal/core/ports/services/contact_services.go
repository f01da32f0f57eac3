package services

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

// ContactReaderSvc defines read operations for contact messages
type ContactReaderSvc interface {
	GetContactByID(ctx context.Context, contactID string) (*domain.ContactMessage, error)
	ListContacts(ctx context.Context) ([]domain.ContactMessage, error)
}

// ContactWriterSvc defines write operations for contact messages
type ContactWriterSvc interface {
	// SubmitContact stores a public contact form message and notifies the owner.
	SubmitContact(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, NotificationOutcome, error)
	// ReplyToContact e-mails the sender and marks the message replied.
	ReplyToContact(ctx context.Context, contactID string, req dto.ReplyContactRequest, replierID string) (*domain.ContactMessage, NotificationOutcome, error)
	DeleteContact(ctx context.Context, contactID string) error
}

// ContactSvcFacade combines all contact-related service interfaces
type ContactSvcFacade interface {
	ContactReaderSvc
	ContactWriterSvc
}
