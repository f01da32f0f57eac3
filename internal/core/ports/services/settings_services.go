package services

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

// SettingsSvcFacade reads and updates the application settings.
type SettingsSvcFacade interface {
	// GetSettings returns the stored settings, or the defaults when none were saved yet.
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterID string) (*domain.Settings, error)
}
