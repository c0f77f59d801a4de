// Package schedule holds the weekly schedule view: the 7-day window around a
// pivot date, the placement of events under their days, and the slot booking
// flow.
package schedule

import (
	"fmt"
	"time"

	"tutorportal/internal/domain"
)

// DaysInWeek is the width of the displayed window.
const DaysInWeek = 7

// DateLayout is the wire and query format of a calendar date.
const DateLayout = "2006-01-02"

// StartOfWeek returns midnight of the most recent weekStart weekday on or
// before t, in t's location.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	diff := (int(t.Weekday()) - int(weekStart) + DaysInWeek) % DaysInWeek
	y, m, d := t.Date()
	return time.Date(y, m, d-diff, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a falls on b's calendar date, as seen in b's location.
func SameDay(a, b time.Time) bool {
	a = a.In(b.Location())
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// Window is the displayed week. Start is midnight of its first day, End is
// midnight of its last day.
type Window struct {
	Start time.Time
	End   time.Time
}

// WindowFor returns the week containing pivot.
func WindowFor(pivot time.Time, weekStart time.Weekday) Window {
	start := StartOfWeek(pivot, weekStart)
	return Window{Start: start, End: start.AddDate(0, 0, DaysInWeek-1)}
}

// Days returns the 7 consecutive days of the window.
func (w Window) Days() [DaysInWeek]time.Time {
	var days [DaysInWeek]time.Time
	for i := range days {
		days[i] = w.Start.AddDate(0, 0, i)
	}
	return days
}

// Contains reports whether t falls on one of the window's calendar dates.
func (w Window) Contains(t time.Time) bool {
	for _, day := range w.Days() {
		if SameDay(t, day) {
			return true
		}
	}
	return false
}

// Day is one column of the week grid.
type Day struct {
	Date   time.Time
	Events []domain.Event
}

// GroupByDay places each event under the day matching its start date.
// Events starting outside the window are dropped; order within a day follows
// the input.
func GroupByDay(events []domain.Event, w Window) [DaysInWeek]Day {
	var grid [DaysInWeek]Day
	for i, day := range w.Days() {
		grid[i].Date = day
		for _, ev := range events {
			if SameDay(ev.Start, day) {
				grid[i].Events = append(grid[i].Events, ev)
			}
		}
	}
	return grid
}

// ParseDate reads a YYYY-MM-DD pivot in loc. An empty string yields today.
func ParseDate(s string, now time.Time, loc *time.Location) (time.Time, error) {
	if s == "" {
		y, m, d := now.In(loc).Date()
		return time.Date(y, m, d, 0, 0, 0, 0, loc), nil
	}
	t, err := time.ParseInLocation(DateLayout, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", domain.ErrInvalidInput)
	}
	return t, nil
}
