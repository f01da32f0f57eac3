package records

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils/mapping"
)

// settingsDocumentID is the id of the single settings record.
const settingsDocumentID = "app"

type settingsRepository struct {
	store portsrepo.DocumentStore
}

func newSettingsRepository(store portsrepo.DocumentStore) portsrepo.SettingsRepository {
	return &settingsRepository{store: store}
}

var _ portsrepo.SettingsRepository = (*settingsRepository)(nil)

func (r *settingsRepository) GetSettings(ctx context.Context) (*domain.Settings, error) {
	rec, err := r.store.Get(ctx, portsrepo.SettingsCollection, settingsDocumentID)
	if err != nil {
		return nil, err
	}
	var m models.Settings
	if err := fromRecord(*rec, &m); err != nil {
		return nil, err
	}
	settings := mapping.ToDomainSettings(m, rec.UpdatedAt)
	return &settings, nil
}

func (r *settingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	fields, err := toFields(mapping.ToModelSettings(settings))
	if err != nil {
		return err
	}
	return r.store.Set(ctx, portsrepo.SettingsCollection, settingsDocumentID, fields)
}
