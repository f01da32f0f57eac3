package dto

import (
	"time"

	"github.com/SscSPs/concierge_backoffice/internal/core/domain"
)

// CreateMissionRequest schedules a mission at a client's property.
type CreateMissionRequest struct {
	ClientID    string `json:"clientID" binding:"required"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime   string `json:"startTime" binding:"required,hhmm"`
	EndTime     string `json:"endTime" binding:"required,hhmm"`
	Description string `json:"description"`
}

// UpdateMissionRequest defines the fields allowed for updating a mission.
type UpdateMissionRequest struct {
	ClientID    *string `json:"clientID" binding:"omitempty,min=1"`
	Date        *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	StartTime   *string `json:"startTime" binding:"omitempty,hhmm"`
	EndTime     *string `json:"endTime" binding:"omitempty,hhmm"`
	Description *string `json:"description"`
}

// ListMissionsParams defines query parameters for listing missions.
type ListMissionsParams struct {
	ClientID string `form:"clientId"`
}

// MissionResponse defines the data returned for a mission.
type MissionResponse struct {
	MissionID     string    `json:"missionID"`
	ClientID      string    `json:"clientID"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Description   string    `json:"description"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ScheduleMissionResponse is returned when a mission is created, with the calendar deep link.
type ScheduleMissionResponse struct {
	Mission      MissionResponse `json:"mission"`
	CalendarLink string          `json:"calendarLink"`
}

// ToMissionResponse converts a domain.Mission to MissionResponse DTO
func ToMissionResponse(m *domain.Mission) MissionResponse {
	return MissionResponse{
		MissionID:     m.MissionID,
		ClientID:      m.ClientID,
		Date:          m.Date.Format(domain.MissionDateLayout),
		StartTime:     m.StartTime,
		EndTime:       m.EndTime,
		Description:   m.Description,
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}

// ToListMissionResponse converts a slice of domain.Mission to a slice of MissionResponse DTOs
func ToListMissionResponse(missions []domain.Mission) []MissionResponse {
	res := make([]MissionResponse, len(missions))
	for i := range missions {
		res[i] = ToMissionResponse(&missions[i])
	}
	return res
}
