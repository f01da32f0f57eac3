package repositories

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// SettingsRepository stores the single settings document.
type SettingsRepository interface {
	// GetSettings returns apperrors.ErrNotFound when nothing was saved yet.
	GetSettings(ctx context.Context) (*domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}
