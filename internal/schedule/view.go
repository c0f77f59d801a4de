package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"tutorportal/internal/domain"
)

// Messages surfaced in the view's error banner.
const (
	MsgFetchEventsFailed = "Failed to fetch events. Please try again later."
	MsgFetchSlotsFailed  = "Failed to fetch available time slots."
	MsgBookingFailed     = "Failed to book the slot. Please try again."
	MsgBookingIncomplete = "Session title and student name are required."
)

// View is the state of one weekly schedule screen. It is not safe for
// concurrent use; each screen owns its View.
type View struct {
	api       domain.ScheduleAPI
	logger    *slog.Logger
	weekStart time.Weekday

	pivot  time.Time
	events []domain.Event
	slots  []domain.TimeSlot
	draft  *domain.BookingDraft
	err    string
}

// Option configures a View.
type Option func(*View)

// WithWeekStart sets the first day of the displayed week (default Sunday).
func WithWeekStart(d time.Weekday) Option {
	return func(v *View) { v.weekStart = d }
}

// WithLogger sets the logger used for failed calls.
func WithLogger(l *slog.Logger) Option {
	return func(v *View) { v.logger = l }
}

// NewView returns a View anchored on pivot. Nothing is fetched until Refresh.
func NewView(api domain.ScheduleAPI, pivot time.Time, opts ...Option) *View {
	v := &View{
		api:       api,
		logger:    slog.Default(),
		weekStart: time.Sunday,
		pivot:     pivot,
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Pivot returns the date anchoring the window.
func (v *View) Pivot() time.Time { return v.pivot }

// Window returns the displayed week.
func (v *View) Window() Window { return WindowFor(v.pivot, v.weekStart) }

// Days returns the week grid with events placed under their start dates.
func (v *View) Days() [DaysInWeek]Day { return GroupByDay(v.events, v.Window()) }

// Events returns the events of the last successful fetch.
func (v *View) Events() []domain.Event { return v.events }

// Slots returns the free slots of the last successful fetch.
func (v *View) Slots() []domain.TimeSlot { return v.slots }

// Err returns the banner message, empty when there is none.
func (v *View) Err() string { return v.err }

// ModalOpen reports whether a booking is in progress.
func (v *View) ModalOpen() bool { return v.draft != nil }

// Draft returns a copy of the booking in progress, or nil.
func (v *View) Draft() *domain.BookingDraft {
	if v.draft == nil {
		return nil
	}
	d := *v.draft
	return &d
}

// FetchEvents loads the events of the displayed week. On failure the list is
// cleared and the banner set; there is no retry.
func (v *View) FetchEvents(ctx context.Context) error {
	w := v.Window()
	events, err := v.api.ListEvents(ctx, w.Start, w.End)
	if err != nil {
		v.logger.ErrorContext(ctx, "fetch events failed", "start", w.Start.Format(DateLayout), "end", w.End.Format(DateLayout), "err", err)
		v.events = nil
		v.err = MsgFetchEventsFailed
		return fmt.Errorf("fetch events: %w", err)
	}
	v.events = events
	v.err = ""
	return nil
}

// FetchSlots loads the free slots of the pivot date only. On failure the list
// is cleared and the banner set; there is no retry.
func (v *View) FetchSlots(ctx context.Context) error {
	slots, err := v.api.AvailableSlots(ctx, v.pivot)
	if err != nil {
		v.logger.ErrorContext(ctx, "fetch available slots failed", "date", v.pivot.Format(DateLayout), "err", err)
		v.slots = nil
		v.err = MsgFetchSlotsFailed
		return fmt.Errorf("fetch available slots: %w", err)
	}
	v.slots = slots
	return nil
}

// Refresh fetches events then slots for the current pivot.
func (v *View) Refresh(ctx context.Context) error {
	return errors.Join(v.FetchEvents(ctx), v.FetchSlots(ctx))
}

// NextWeek moves the pivot 7 days forward and refreshes.
func (v *View) NextWeek(ctx context.Context) error {
	v.pivot = v.pivot.AddDate(0, 0, DaysInWeek)
	return v.Refresh(ctx)
}

// PrevWeek moves the pivot 7 days back and refreshes.
func (v *View) PrevWeek(ctx context.Context) error {
	v.pivot = v.pivot.AddDate(0, 0, -DaysInWeek)
	return v.Refresh(ctx)
}

// SelectSlot opens the booking form for slot. Text already typed into an open
// draft is kept. The slot is not re-validated against the server.
func (v *View) SelectSlot(slot domain.TimeSlot) {
	if v.draft == nil {
		v.draft = &domain.BookingDraft{}
	}
	v.draft.Slot = slot
}

// SetDraft updates the typed fields of the open booking. It is a no-op when
// no slot is selected.
func (v *View) SetDraft(title, attendee string) {
	if v.draft == nil {
		return
	}
	v.draft.Title = title
	v.draft.Attendee = attendee
}

// Cancel closes the booking form and discards the draft.
func (v *View) Cancel() {
	v.draft = nil
}

// Book creates the event for the open draft without re-fetching anything. On
// success the draft is discarded; on failure the form stays open with the
// draft intact and the banner set.
func (v *View) Book(ctx context.Context) (*domain.Event, error) {
	if v.draft == nil || v.draft.Slot.IsZero() {
		return nil, domain.ErrNoSlotSelected
	}
	if strings.TrimSpace(v.draft.Title) == "" || strings.TrimSpace(v.draft.Attendee) == "" {
		v.err = MsgBookingIncomplete
		return nil, fmt.Errorf("%w: title and attendee are required", domain.ErrInvalidInput)
	}

	created, err := v.api.CreateEvent(ctx, domain.NewEventRequest(*v.draft))
	if err != nil {
		v.logger.ErrorContext(ctx, "book slot failed", "start", v.draft.Slot.Start, "end", v.draft.Slot.End, "err", err)
		v.err = MsgBookingFailed
		return nil, fmt.Errorf("book slot: %w", err)
	}

	v.draft = nil
	return created, nil
}

// Submit books the selected slot and then re-fetches both lists once; a
// failed re-fetch shows in Err but does not fail the booking.
func (v *View) Submit(ctx context.Context) (*domain.Event, error) {
	created, err := v.Book(ctx)
	if err != nil {
		return nil, err
	}
	_ = v.Refresh(ctx)
	return created, nil
}
