package services

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// Notifier delivers an outbound e-mail. A non-nil error means the message was not accepted.
type Notifier interface {
	Send(ctx context.Context, n domain.Notification) error
}

// NotificationOutcome records whether a notification was attempted and how it ended.
// A failed notification never undoes the write that triggered it.
type NotificationOutcome struct {
	Attempted bool
	Err       error
}
