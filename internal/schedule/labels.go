package schedule

import "time"

// Heading renders the window as "January 2 - January 8, 2006".
func (w Window) Heading() string {
	return w.Start.Format("January 2") + " - " + w.End.Format("January 2, 2006")
}

// DayName renders "Monday".
func DayName(t time.Time) string {
	return t.Format("Monday")
}

// DayLabel renders "Jan 2".
func DayLabel(t time.Time) string {
	return t.Format("Jan 2")
}

// TimeRange renders "3:04 PM - 4:04 PM" in loc.
func TimeRange(start, end time.Time, loc *time.Location) string {
	return start.In(loc).Format("3:04 PM") + " - " + end.In(loc).Format("3:04 PM")
}
