// Package notifier delivers e-mail through an EmailJS-compatible HTTP endpoint.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
)

// Config identifies the account and template used for outbound mail.
type Config struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
	// FromName is shown as the sender in the template.
	FromName string
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// EmailJS implements the Notifier port.
type EmailJS struct {
	cfg    Config
	client *http.Client
}

// NewEmailJS creates a notifier. A nil client gets a default one with a timeout.
func NewEmailJS(cfg Config, client *http.Client) *EmailJS {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &EmailJS{cfg: cfg, client: client}
}

var _ portssvc.Notifier = (*EmailJS)(nil)

// Send posts the notification. Any non-2xx answer is reported as apperrors.ErrNotification.
func (n *EmailJS) Send(ctx context.Context, msg domain.Notification) error {
	if n.cfg.ServiceID == "" || n.cfg.TemplateID == "" {
		return fmt.Errorf("%w: mail service is not configured", apperrors.ErrNotification)
	}
	if msg.ToEmail == "" {
		return fmt.Errorf("%w: recipient e-mail is empty", apperrors.ErrNotification)
	}

	payload := emailJSRequest{
		ServiceID:   n.cfg.ServiceID,
		TemplateID:  n.cfg.TemplateID,
		UserID:      n.cfg.PublicKey,
		AccessToken: n.cfg.PrivateKey,
		TemplateParams: map[string]string{
			"to_name":   msg.ToName,
			"to_email":  msg.ToEmail,
			"from_name": n.cfg.FromName,
			"reply_to":  msg.ReplyTo,
			"subject":   msg.Subject,
			"message":   msg.Body,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode mail payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build mail request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNotification, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: mail endpoint returned %s: %s", apperrors.ErrNotification, resp.Status, bytes.TrimSpace(detail))
	}
	return nil
}

// WithTemplate returns a copy of the notifier using another template id.
func (n *EmailJS) WithTemplate(templateID string) *EmailJS {
	cfg := n.cfg
	cfg.TemplateID = templateID
	return &EmailJS{cfg: cfg, client: n.client}
}
