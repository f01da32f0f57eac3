package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/core/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetSettings_DefaultsWhenMissing(t *testing.T) {
	repo := new(MockSettingsRepository)
	repo.On("GetSettings", mock.Anything).Return(nil, apperrors.ErrNotFound).Once()

	settings, err := services.NewSettingsService(repo).GetSettings(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.HourlyRate.Equal(domain.DefaultSettings().HourlyRate))
	repo.AssertExpectations(t)
}

func TestUpdateSettings(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSettingsRepository)
	svc := services.NewSettingsService(repo, services.WithClock(func() time.Time { return fixedNow }))

	repo.On("GetSettings", mock.Anything).Return(nil, apperrors.ErrNotFound)
	repo.On("SaveSettings", mock.Anything, mock.MatchedBy(func(s domain.Settings) bool {
		servicesRate, _ := s.TaxDefaults.RatesFor(domain.Business)
		return s.HourlyRate.Equal(decimal.NewFromInt(30)) && servicesRate.Equal(decimal.NewFromInt(19)) && s.LastUpdatedBy == "admin"
	})).Return(nil).Once()

	rate := decimal.NewFromInt(30)
	settings, err := svc.UpdateSettings(ctx, dto.UpdateSettingsRequest{
		HourlyRate: &rate,
		TaxDefaults: &dto.TaxDefaultsPayload{
			Services: map[domain.ClientCategory]decimal.Decimal{domain.Business: decimal.NewFromInt(19)},
		},
	}, "admin")
	require.NoError(t, err)
	assert.Equal(t, fixedNow, settings.LastUpdatedAt)
	_, goods := settings.TaxDefaults.RatesFor(domain.Business)
	assert.True(t, goods.Equal(decimal.NewFromInt(20)), "untouched table keeps its defaults")

	_, err = svc.UpdateSettings(ctx, dto.UpdateSettingsRequest{
		TaxDefaults: &dto.TaxDefaultsPayload{Goods: map[domain.ClientCategory]decimal.Decimal{"company": decimal.NewFromInt(5)}},
	}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	negative := decimal.NewFromInt(-1)
	_, err = svc.UpdateSettings(ctx, dto.UpdateSettingsRequest{HourlyRate: &negative}, "admin")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	repo.AssertExpectations(t)
}
