package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

// Owner identifies the business owner who receives contact form alerts.
type Owner struct {
	Name  string
	Email string
}

type contactService struct {
	BaseService
	contactRepo portsrepo.ContactRepositoryFacade
	alerts      portssvc.Notifier
	replies     portssvc.Notifier
	owner       Owner
}

// NewContactService creates the contact form service. alerts notifies the owner of
// new messages; replies carries admin answers back to the sender. Either may be nil.
func NewContactService(contactRepo portsrepo.ContactRepositoryFacade, alerts, replies portssvc.Notifier, owner Owner, opts ...ServiceOption) portssvc.ContactSvcFacade {
	return &contactService{
		BaseService: newBaseService(opts),
		contactRepo: contactRepo,
		alerts:      alerts,
		replies:     replies,
		owner:       owner,
	}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

func (s *contactService) GetContactByID(ctx context.Context, contactID string) (*domain.ContactMessage, error) {
	contact, err := s.contactRepo.FindContactByID(ctx, contactID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find contact message", slog.String("contact_id", contactID))
		}
		return nil, err
	}
	return contact, nil
}

func (s *contactService) ListContacts(ctx context.Context) ([]domain.ContactMessage, error) {
	contacts, err := s.contactRepo.ListContacts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list contact messages")
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	if contacts == nil {
		return []domain.ContactMessage{}, nil
	}
	return contacts, nil
}

func (s *contactService) SubmitContact(ctx context.Context, req dto.CreateContactRequest) (*domain.ContactMessage, portssvc.NotificationOutcome, error) {
	contact := domain.ContactMessage{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Message:   req.Message,
		Status:    domain.ContactNew,
		CreatedAt: s.Now(),
	}
	id, err := s.contactRepo.CreateContact(ctx, contact)
	if err != nil {
		s.LogError(ctx, err, "Failed to store contact message")
		return nil, portssvc.NotificationOutcome{}, fmt.Errorf("failed to store contact message: %w", err)
	}
	contact.ContactID = id
	s.LogInfo(ctx, "Contact message received", slog.String("contact_id", id))

	if s.alerts == nil || s.owner.Email == "" {
		return &contact, portssvc.NotificationOutcome{}, nil
	}
	body := fmt.Sprintf("%s\n\n%s <%s>", contact.Message, contact.Name, contact.Email)
	if contact.Phone != "" {
		body += "\n" + contact.Phone
	}
	outcome := s.notify(ctx, s.alerts, "contact", domain.Notification{
		ToName:  s.owner.Name,
		ToEmail: s.owner.Email,
		ReplyTo: contact.Email,
		Subject: "New message from " + contact.Name,
		Body:    body,
	})
	return &contact, outcome, nil
}

// ReplyToContact stores the reply first; a failed e-mail is reported, not rolled back.
func (s *contactService) ReplyToContact(ctx context.Context, contactID string, req dto.ReplyContactRequest, replierID string) (*domain.ContactMessage, portssvc.NotificationOutcome, error) {
	contact, err := s.GetContactByID(ctx, contactID)
	if err != nil {
		return nil, portssvc.NotificationOutcome{}, err
	}

	now := s.Now()
	contact.Reply = req.Message
	contact.RepliedAt = &now
	contact.Status = domain.ContactReplied
	if err := s.contactRepo.UpdateContact(ctx, *contact); err != nil {
		s.LogError(ctx, err, "Failed to store contact reply", slog.String("contact_id", contactID))
		return nil, portssvc.NotificationOutcome{}, fmt.Errorf("failed to store contact reply: %w", err)
	}
	s.LogInfo(ctx, "Contact message replied", slog.String("contact_id", contactID), slog.String("admin", replierID))

	if s.replies == nil {
		return contact, portssvc.NotificationOutcome{}, nil
	}
	outcome := s.notify(ctx, s.replies, "contact_reply", domain.Notification{
		ToName:  contact.Name,
		ToEmail: contact.Email,
		ReplyTo: s.owner.Email,
		Subject: "Re: your message",
		Body:    req.Message,
	})
	return contact, outcome, nil
}

func (s *contactService) DeleteContact(ctx context.Context, contactID string) error {
	if err := s.contactRepo.DeleteContact(ctx, contactID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete contact message", slog.String("contact_id", contactID))
		return fmt.Errorf("failed to delete contact message: %w", err)
	}
	return nil
}
