// Package calendar exports the displayed week as an iCalendar feed.
package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-ical"

	"tutorportal/internal/domain"
	"tutorportal/internal/schedule"
)

// ProductID is the PRODID of every exported calendar.
const ProductID = "-//tutorportal//schedule//EN"

// WriteWeek encodes one VEVENT per event starting inside w.
func WriteWeek(out io.Writer, w schedule.Window, events []domain.Event, now time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ProductID)
	cal.Props.SetText("X-WR-CALNAME", "Schedule "+w.Heading())

	for _, ev := range events {
		if !w.Contains(ev.Start) {
			continue
		}
		cal.Children = append(cal.Children, newEvent(ev, now).Component)
	}

	if err := ical.NewEncoder(out).Encode(cal); err != nil {
		return fmt.Errorf("encode calendar: %w", err)
	}
	return nil
}

func newEvent(ev domain.Event, now time.Time) *ical.Event {
	e := ical.NewEvent()
	uid := ev.ID
	if uid == "" {
		// Same fallback shape as events without a UID in imported feeds.
		uid = ev.Start.UTC().Format(time.RFC3339) + "-" + ev.Title
	}
	e.Props.SetText(ical.PropUID, uid)
	e.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	e.Props.SetDateTime(ical.PropDateTimeStart, ev.Start.UTC())
	e.Props.SetDateTime(ical.PropDateTimeEnd, ev.End.UTC())
	e.Props.SetText(ical.PropSummary, ev.Title)
	if len(ev.Attendees) > 0 {
		e.Props.SetText(ical.PropDescription, strings.Join(ev.Attendees, ", "))
	}
	return e
}
