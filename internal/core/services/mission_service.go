package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/apperrors"
	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
	portsrepo "github.com/SscSPs/concierge_backoffice/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/concierge_backoffice/internal/core/ports/services"
	"github.com/SscSPs/concierge_backoffice/internal/dto"
	"github.com/SscSPs/concierge_backoffice/internal/utils/calendar"
)

type missionService struct {
	BaseService
	missionRepo portsrepo.MissionRepositoryFacade
	clientRepo  portsrepo.ClientReader
	location    *time.Location
}

// NewMissionService creates the mission scheduling service. Calendar links are
// expressed in loc; nil means UTC.
func NewMissionService(missionRepo portsrepo.MissionRepositoryFacade, clientRepo portsrepo.ClientReader, loc *time.Location, opts ...ServiceOption) portssvc.MissionSvcFacade {
	if loc == nil {
		loc = time.UTC
	}
	return &missionService{
		BaseService: newBaseService(opts),
		missionRepo: missionRepo,
		clientRepo:  clientRepo,
		location:    loc,
	}
}

var _ portssvc.MissionSvcFacade = (*missionService)(nil)

func (s *missionService) GetMissionByID(ctx context.Context, missionID string) (*domain.Mission, error) {
	mission, err := s.missionRepo.FindMissionByID(ctx, missionID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find mission", slog.String("mission_id", missionID))
		}
		return nil, err
	}
	return mission, nil
}

func (s *missionService) ListMissions(ctx context.Context, params dto.ListMissionsParams) ([]domain.Mission, error) {
	missions, err := s.missionRepo.ListMissions(ctx, portsrepo.MissionFilter{ClientID: params.ClientID})
	if err != nil {
		s.LogError(ctx, err, "Failed to list missions", slog.String("client_id", params.ClientID))
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	if missions == nil {
		return []domain.Mission{}, nil
	}
	return missions, nil
}

func (s *missionService) ScheduleMission(ctx context.Context, req dto.CreateMissionRequest, creatorID string) (*domain.Mission, string, error) {
	date, err := time.ParseInLocation(domain.MissionDateLayout, req.Date, s.location)
	if err != nil {
		return nil, "", validationError("invalid date %q", req.Date)
	}
	client, err := findReferencedClient(ctx, s.clientRepo, req.ClientID)
	if err != nil {
		return nil, "", err
	}

	mission := domain.Mission{
		ClientID:    req.ClientID,
		Date:        date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	}
	start, end, err := mission.Window(s.location)
	if err != nil {
		return nil, "", validationError("%v", err)
	}
	mission.Stamp(s.Now(), creatorID)

	id, err := s.missionRepo.CreateMission(ctx, mission)
	if err != nil {
		s.LogError(ctx, err, "Failed to create mission", slog.String("client_id", req.ClientID))
		return nil, "", fmt.Errorf("failed to create mission: %w", err)
	}
	mission.MissionID = id
	s.LogInfo(ctx, "Mission scheduled", slog.String("mission_id", id), slog.String("client_id", req.ClientID))

	link, err := calendar.GoogleTemplateLink(calendar.Event{
		Title:    missionTitle(client),
		Details:  mission.Description,
		Location: client.Address,
		Start:    start,
		End:      end,
	})
	if err != nil {
		// The mission is stored; only the convenience link is missing.
		s.LogWarn(ctx, err, "Failed to build calendar link", slog.String("mission_id", id))
		return &mission, "", nil
	}
	return &mission, link, nil
}

func (s *missionService) UpdateMission(ctx context.Context, missionID string, req dto.UpdateMissionRequest, updaterID string) (*domain.Mission, error) {
	mission, err := s.GetMissionByID(ctx, missionID)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil && *req.ClientID != mission.ClientID {
		if _, err := findReferencedClient(ctx, s.clientRepo, *req.ClientID); err != nil {
			return nil, err
		}
		mission.ClientID = *req.ClientID
	}
	if req.Date != nil {
		date, err := time.ParseInLocation(domain.MissionDateLayout, *req.Date, s.location)
		if err != nil {
			return nil, validationError("invalid date %q", *req.Date)
		}
		mission.Date = date
	}
	setString(&mission.StartTime, req.StartTime)
	setString(&mission.EndTime, req.EndTime)
	setString(&mission.Description, req.Description)
	if _, _, err := mission.Window(s.location); err != nil {
		return nil, validationError("%v", err)
	}
	mission.Touch(s.Now(), updaterID)

	if err := s.missionRepo.UpdateMission(ctx, *mission); err != nil {
		s.LogError(ctx, err, "Failed to update mission", slog.String("mission_id", missionID))
		return nil, fmt.Errorf("failed to update mission: %w", err)
	}
	return mission, nil
}

func (s *missionService) DeleteMission(ctx context.Context, missionID string) error {
	if err := s.missionRepo.DeleteMission(ctx, missionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return err
		}
		s.LogError(ctx, err, "Failed to delete mission", slog.String("mission_id", missionID))
		return fmt.Errorf("failed to delete mission: %w", err)
	}
	return nil
}

func missionTitle(c *domain.Client) string {
	if strings.TrimSpace(c.OwnerName) == "" {
		return "Mission"
	}
	return "Mission - " + c.OwnerName
}
