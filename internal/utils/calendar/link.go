// Package calendar builds "add to calendar" deep links for scheduled missions.
package calendar

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const (
	googleTemplateURL = "https://calendar.google.com/calendar/render"
	compactLayout     = "20060102T150405"
)

// Event describes a calendar entry to pre-fill.
type Event struct {
	Title    string
	Details  string
	Location string
	Start    time.Time
	End      time.Time
}

// GoogleTemplateLink returns a Google Calendar TEMPLATE URL for the event.
// Times are written as local wall-clock times and the zone is passed through ctz.
func GoogleTemplateLink(e Event) (string, error) {
	if e.Start.IsZero() || e.End.IsZero() {
		return "", fmt.Errorf("event start and end are required")
	}
	if e.End.Before(e.Start) {
		return "", fmt.Errorf("event end %s is before start %s", e.End.Format(time.RFC3339), e.Start.Format(time.RFC3339))
	}

	q := url.Values{}
	q.Set("action", "TEMPLATE")
	q.Set("text", strings.TrimSpace(e.Title))
	q.Set("dates", e.Start.Format(compactLayout)+"/"+e.End.Format(compactLayout))
	if e.Details != "" {
		q.Set("details", e.Details)
	}
	if e.Location != "" {
		q.Set("location", e.Location)
	}
	if name := e.Start.Location().String(); name != "" && name != "Local" {
		q.Set("ctz", name)
	}
	return googleTemplateURL + "?" + q.Encode(), nil
}
