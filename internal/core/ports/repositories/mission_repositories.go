package repositories

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// MissionFilter narrows mission listings. Empty fields do not filter.
type MissionFilter struct {
	ClientID string
}

// MissionReader defines read operations for missions
type MissionReader interface {
	FindMissionByID(ctx context.Context, missionID string) (*domain.Mission, error)
	// ListMissions returns missions ordered by date then start time.
	ListMissions(ctx context.Context, filter MissionFilter) ([]domain.Mission, error)
}

// MissionWriter defines write operations for missions
type MissionWriter interface {
	CreateMission(ctx context.Context, mission domain.Mission) (string, error)
	UpdateMission(ctx context.Context, mission domain.Mission) error
	DeleteMission(ctx context.Context, missionID string) error
}

// MissionRepositoryFacade combines all mission-related repository interfaces
type MissionRepositoryFacade interface {
	MissionReader
	MissionWriter
}
