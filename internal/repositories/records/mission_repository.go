package records

import (
	"context"
	"fmt"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	"github.com/SscSPs/concierge_backoffice/internal/models"
	"github.com/SscSPs/concierge_backoffice/internal/utils/mapping"
)

type missionRepository struct {
	store portsrepo.DocumentStore
}

func newMissionRepository(store portsrepo.DocumentStore) portsrepo.MissionRepositoryFacade {
	return &missionRepository{store: store}
}

var _ portsrepo.MissionRepositoryFacade = (*missionRepository)(nil)

func (r *missionRepository) FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	rec, err := r.store.Get(ctx, portsrepo.MissionsCollection, missionID)
	if err != nil {
		return nil, err
	}
	mission, err := decodeMission(*rec)
	if err != nil {
		return nil, err
	}
	return &mission, nil
}

func (r *missionRepository) ListMissions(ctx context.Context, filter portsrepo.MissionFilter) ([]domain.Mission, error) {
	q := portsrepo.Query{
		OrderBy: []portsrepo.Order{{Field: "date"}, {Field: "startTime"}},
	}
	if filter.ClientID != "" {
		q.Filters = append(q.Filters, portsrepo.Filter{Field: "clientID", Value: filter.ClientID})
	}
	recs, err := r.store.List(ctx, portsrepo.MissionsCollection, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	missions := make([]domain.Mission, 0, len(recs))
	for _, rec := range recs {
		m, err := decodeMission(rec)
		if err != nil {
			return nil, err
		}
		missions = append(missions, m)
	}
	return missions, nil
}

func (r *missionRepository) CreateMission(ctx context.Context, mission domain.Mission) (string, error) {
	fields, err := toFields(mapping.ToModelMission(mission))
	if err != nil {
		return "", err
	}
	return r.store.Create(ctx, portsrepo.MissionsCollection, fields)
}

func (r *missionRepository) UpdateMission(ctx context.Context, mission domain.Mission) error {
	fields, err := toFields(mapping.ToModelMission(mission))
	if err != nil {
		return err
	}
	return r.store.Update(ctx, portsrepo.MissionsCollection, mission.MissionID, fields)
}

func (r *missionRepository) DeleteMission(ctx context.Context, missionID string) error {
	return r.store.Delete(ctx, portsrepo.MissionsCollection, missionID)
}

func decodeMission(rec portsrepo.Record) (domain.Mission, error) {
	var m models.Mission
	if err := fromRecord(rec, &m); err != nil {
		return domain.Mission{}, err
	}
	m.MissionID = rec.ID
	m.CreatedAt, m.LastUpdatedAt = rec.CreatedAt, rec.UpdatedAt
	mission, err := mapping.ToDomainMission(m)
	if err != nil {
		return domain.Mission{}, fmt.Errorf("mission %s: %w", rec.ID, err)
	}
	return mission, nil
}
