package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/core/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubmitContact_NotifiesOwner(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	alerts := new(MockNotifier)
	svc := services.NewContactService(repo, alerts, nil, services.Owner{Name: "Owner", Email: "owner@example.com"},
		services.WithClock(func() time.Time { return fixedNow }))

	repo.On("CreateContact", mock.Anything, mock.MatchedBy(func(c domain.ContactMessage) bool {
		return c.Status == domain.ContactNew && c.CreatedAt.Equal(fixedNow) && c.Email == "ann@example.com"
	})).Return("contact-1", nil).Once()
	alerts.On("Send", mock.Anything, mock.MatchedBy(func(n domain.Notification) bool {
		return n.ToEmail == "owner@example.com" && n.ReplyTo == "ann@example.com"
	})).Return(nil).Once()

	contact, outcome, err := svc.SubmitContact(ctx, dto.CreateContactRequest{Name: " Ann ", Email: "ann@example.com", Message: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "contact-1", contact.ContactID)
	assert.Equal(t, "Ann", contact.Name)
	assert.True(t, outcome.Attempted)
	assert.NoError(t, outcome.Err)

	repo.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func TestSubmitContact_StoreFailureSkipsNotification(t *testing.T) {
	repo := new(MockContactRepository)
	alerts := new(MockNotifier)
	svc := services.NewContactService(repo, alerts, nil, services.Owner{Email: "owner@example.com"})

	repo.On("CreateContact", mock.Anything, mock.Anything).Return("", errors.New("db down")).Once()

	_, outcome, err := svc.SubmitContact(context.Background(), dto.CreateContactRequest{Name: "Ann", Email: "ann@example.com", Message: "Hello"})
	assert.Error(t, err)
	assert.False(t, outcome.Attempted)
	alerts.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestReplyToContact_FailedMailKeepsReply(t *testing.T) {
	ctx := context.Background()
	repo := new(MockContactRepository)
	replies := new(MockNotifier)
	svc := services.NewContactService(repo, nil, replies, services.Owner{Email: "owner@example.com"},
		services.WithClock(func() time.Time { return fixedNow }))

	repo.On("FindContactByID", mock.Anything, "contact-1").
		Return(&domain.ContactMessage{ContactID: "contact-1", Name: "Ann", Email: "ann@example.com", Status: domain.ContactNew}, nil).Once()
	repo.On("UpdateContact", mock.Anything, mock.MatchedBy(func(c domain.ContactMessage) bool {
		return c.Status == domain.ContactReplied && c.Reply == "Thanks" && c.RepliedAt != nil
	})).Return(nil).Once()
	replies.On("Send", mock.Anything, mock.Anything).Return(apperrors.ErrNotification).Once()

	contact, outcome, err := svc.ReplyToContact(ctx, "contact-1", dto.ReplyContactRequest{Message: "Thanks"}, "admin")
	require.NoError(t, err)
	assert.Equal(t, domain.ContactReplied, contact.Status)
	assert.True(t, outcome.Attempted)
	assert.ErrorIs(t, outcome.Err, apperrors.ErrNotification)

	repo.AssertExpectations(t)
	replies.AssertExpectations(t)
}
