package services

import (
	"context"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
)

// MissionReaderSvc defines read operations for missions
type MissionReaderSvc interface {
	GetMissionByID(ctx context.Context, missionID string) (*domain.Mission, error)
	ListMissions(ctx context.Context, params dto.ListMissionsParams) ([]domain.Mission, error)
}

// MissionWriterSvc defines write operations for missions
type MissionWriterSvc interface {
	// ScheduleMission stores the mission and returns a calendar deep link for it.
	ScheduleMission(ctx context.Context, req dto.CreateMissionRequest, creatorID string) (*domain.Mission, string, error)
	UpdateMission(ctx context.Context, missionID string, req dto.UpdateMissionRequest, updaterID string) (*domain.Mission, error)
	DeleteMission(ctx context.Context, missionID string) error
}

// MissionSvcFacade combines all mission-related service interfaces
type MissionSvcFacade interface {
	MissionReaderSvc
	MissionWriterSvc
}
