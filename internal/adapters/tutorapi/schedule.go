package tutorapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"tutorportal/internal/domain"
)

var _ domain.ScheduleAPI = (*Client)(nil)

// ListEvents calls GET /api/events?start=YYYY-MM-DD&end=YYYY-MM-DD.
func (c *Client) ListEvents(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	q := url.Values{}
	q.Set("start", start.Format(dateLayout))
	q.Set("end", end.Format(dateLayout))
	raw, err := getList[wireEvent](ctx, c, "/api/events", q)
	if err != nil {
		return nil, err
	}
	events := make([]domain.Event, 0, len(raw))
	for _, w := range raw {
		ev, err := w.toDomain(c.location)
		if err != nil {
			return nil, fmt.Errorf("failed to decode /api/events response: %w", err)
		}
		events = append(events, ev)
	}
	return events, nil
}

// AvailableSlots calls GET /api/available-slots?date=YYYY-MM-DD.
func (c *Client) AvailableSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	q := url.Values{}
	q.Set("date", date.Format(dateLayout))
	raw, err := getList[wireSlot](ctx, c, "/api/available-slots", q)
	if err != nil {
		return nil, err
	}
	slots := make([]domain.TimeSlot, 0, len(raw))
	for _, w := range raw {
		slot, err := w.toDomain(c.location)
		if err != nil {
			return nil, fmt.Errorf("failed to decode /api/available-slots response: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// CreateEvent calls POST /api/events.
func (c *Client) CreateEvent(ctx context.Context, req domain.EventRequest) (*domain.Event, error) {
	var w wireEvent
	if err := c.postJSON(ctx, "/api/events", req, &w, http.StatusOK, http.StatusCreated); err != nil {
		return nil, err
	}
	ev, err := w.toDomain(c.location)
	if err != nil {
		return nil, fmt.Errorf("failed to decode /api/events response: %w", err)
	}
	return &ev, nil
}
