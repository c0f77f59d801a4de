package domain

import (
	"context"
	"time"
)

// Event is a booked session owned by the scheduling service.
// swagger:model Event
type Event struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Attendees []string  `json:"attendees"`
}

// TimeSlot is an interval of availability offered by the scheduling service.
// It has no identity; two slots with the same bounds are the same slot.
// swagger:model TimeSlot
type TimeSlot struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// IsZero reports whether the slot has no bounds set.
func (s TimeSlot) IsZero() bool {
	return s.Start.IsZero() && s.End.IsZero()
}

// BookingDraft is the form state of a booking in progress.
type BookingDraft struct {
	Title    string
	Attendee string
	Slot     TimeSlot
}

// EventRequest is the body of POST /api/events.
type EventRequest struct {
	Title    string    `json:"title"`
	Attendee string    `json:"attendee"`
	Start    time.Time `json:"start"`
	End      time.Time `json:"end"`
}

// NewEventRequest builds the create payload for a draft.
func NewEventRequest(d BookingDraft) EventRequest {
	return EventRequest{
		Title:    d.Title,
		Attendee: d.Attendee,
		Start:    d.Slot.Start,
		End:      d.Slot.End,
	}
}

// ScheduleAPI is the scheduling side of the tutor API.
type ScheduleAPI interface {
	// ListEvents returns events whose start falls between the two dates (inclusive, by calendar date).
	ListEvents(ctx context.Context, start, end time.Time) ([]Event, error)
	// AvailableSlots returns the free slots for a single calendar date.
	AvailableSlots(ctx context.Context, date time.Time) ([]TimeSlot, error)
	CreateEvent(ctx context.Context, req EventRequest) (*Event, error)
}
