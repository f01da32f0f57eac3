package domain

import (
	"fmt"
	"time"
)

// MissionTimeLayout is the wall-clock layout used for mission start and end times.
const MissionTimeLayout = "15:04"

// MissionDateLayout is the calendar date layout of a mission.
const MissionDateLayout = "2006-01-02"

// Mission is a scheduled intervention at a client's property.
type Mission struct {
	MissionID   string    `json:"missionID"`
	ClientID    string    `json:"clientID"`
	Date        time.Time `json:"date"`      // date only, time part ignored
	StartTime   string    `json:"startTime"` // HH:MM
	EndTime     string    `json:"endTime"`   // HH:MM
	Description string    `json:"description"`
	AuditFields
}

// Window resolves the mission's start and end instants in loc.
// An end time earlier than the start time is rejected.
func (m Mission) Window(loc *time.Location) (time.Time, time.Time, error) {
	start, err := m.at(m.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start time %q: %w", m.StartTime, err)
	}
	end, err := m.at(m.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end time %q: %w", m.EndTime, err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("end time %s is before start time %s", m.EndTime, m.StartTime)
	}
	return start, end, nil
}

func (m Mission) at(clock string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(MissionTimeLayout, clock, loc)
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := m.Date.Date()
	return time.Date(y, mo, d, t.Hour(), t.Minute(), 0, 0, loc), nil
}
