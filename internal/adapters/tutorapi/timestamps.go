package tutorapi

import (
	"fmt"
	"strings"
	"time"

	"tutorportal/internal/domain"
)

// Wall-clock layouts the API may send without a zone offset.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
}

// parseTimestamp reads an RFC 3339 timestamp. Offset-less values are taken
// as wall-clock time in loc.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

type wireEvent struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Start     string   `json:"start"`
	End       string   `json:"end"`
	Attendees []string `json:"attendees"`
}

type wireSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func parseInterval(start, end string, loc *time.Location) (time.Time, time.Time, error) {
	s, err := parseTimestamp(start, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}
	e, err := parseTimestamp(end, loc)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return s, e, nil
}

func (w wireEvent) toDomain(loc *time.Location) (domain.Event, error) {
	start, end, err := parseInterval(w.Start, w.End, loc)
	if err != nil {
		return domain.Event{}, fmt.Errorf("event %s: %w", w.ID, err)
	}
	return domain.Event{ID: w.ID, Title: w.Title, Start: start, End: end, Attendees: w.Attendees}, nil
}

func (w wireSlot) toDomain(loc *time.Location) (domain.TimeSlot, error) {
	start, end, err := parseInterval(w.Start, w.End, loc)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("slot: %w", err)
	}
	return domain.TimeSlot{Start: start, End: end}, nil
}
