package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/shopspring/decimal"
)

type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
}

// NewSettingsService creates the service reading and writing the settings document.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, opts ...ServiceOption) portssvc.SettingsSvcFacade {
	return &settingsService{
		BaseService:  newBaseService(opts),
		settingsRepo: settingsRepo,
	}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context) (*domain.Settings, error) {
	settings, err := s.settingsRepo.GetSettings(ctx)
	if errors.Is(err, apperrors.ErrNotFound) {
		defaults := domain.DefaultSettings()
		return &defaults, nil
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, updaterID string) (*domain.Settings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if req.HourlyRate != nil {
		if req.HourlyRate.IsNegative() {
			return nil, validationError("hourly rate must not be negative")
		}
		settings.HourlyRate = *req.HourlyRate
	}
	if req.TaxCreditRate != nil {
		if err := checkPercent("tax credit rate", *req.TaxCreditRate); err != nil {
			return nil, err
		}
		settings.TaxCreditRate = *req.TaxCreditRate
	}
	if req.TaxDefaults != nil {
		if err := mergeRates(settings.TaxDefaults.Services, req.TaxDefaults.Services); err != nil {
			return nil, err
		}
		if err := mergeRates(settings.TaxDefaults.Goods, req.TaxDefaults.Goods); err != nil {
			return nil, err
		}
	}
	setString(&settings.CompanyName, req.CompanyName)
	setString(&settings.CompanyAddress, req.CompanyAddress)
	setString(&settings.CompanyTaxID, req.CompanyTaxID)
	setString(&settings.CompanyEmail, req.CompanyEmail)
	settings.LastUpdatedAt = s.Now()
	settings.LastUpdatedBy = updaterID

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to save settings")
		return nil, fmt.Errorf("failed to save settings: %w", err)
	}
	s.LogInfo(ctx, "Settings updated")
	return settings, nil
}

func mergeRates(dst domain.TaxRateTable, src map[domain.ClientCategory]decimal.Decimal) error {
	for category, rate := range src {
		if !category.IsValid() {
			return validationError("unknown client category %q", category)
		}
		if err := checkPercent("tax rate", rate); err != nil {
			return err
		}
		dst[category] = rate
	}
	return nil
}

func checkPercent(name string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(100)) {
		return validationError("%s must be between 0 and 100", name)
	}
	return nil
}
