package controllers

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tutorportal/internal/adapters/calendar"
	"tutorportal/internal/delivery/http/helpers"
	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/domain"
	"tutorportal/internal/schedule"
)

// MsgSessionBooked is the flash shown after a successful booking.
const MsgSessionBooked = "Session booked."

// SchedulePage is the model of the Schedule page.
type SchedulePage struct {
	Pivot       string
	Heading     string
	PrevURL     string
	NextURL     string
	CalendarURL string
	Days        [schedule.DaysInWeek]schedule.Day
	Slots       []domain.TimeSlot
	Draft       *domain.BookingDraft
}

// WeekDay is one column of the JSON week.
type WeekDay struct {
	Date   string         `json:"date"`
	Events []domain.Event `json:"events"`
}

// WeekResponse is the data payload of GET /schedule/week.
type WeekResponse struct {
	Pivot string            `json:"pivot"`
	Start string            `json:"start"`
	End   string            `json:"end"`
	Days  []WeekDay         `json:"days"`
	Slots []domain.TimeSlot `json:"slots"`
}

// WeekSuccessResponse is the success envelope for GET /schedule/week (200).
type WeekSuccessResponse struct {
	Data  WeekResponse      `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type ScheduleController struct {
	Logger      *slog.Logger
	API         domain.ScheduleAPI
	Email       domain.EmailService
	NotifyEmail string
	Views       PageRenderer
	Location    *time.Location
	WeekStart   time.Weekday
	Now         func() time.Time
}

func NewScheduleController(logger *slog.Logger, api domain.ScheduleAPI, email domain.EmailService, notifyEmail string, v PageRenderer, loc *time.Location, weekStart time.Weekday) *ScheduleController {
	if loc == nil {
		loc = time.Local
	}
	return &ScheduleController{
		Logger:      logger,
		API:         api,
		Email:       email,
		NotifyEmail: notifyEmail,
		Views:       v,
		Location:    loc,
		WeekStart:   weekStart,
		Now:         time.Now,
	}
}

// Show renders the week around ?date= (default today).
func (c *ScheduleController) Show(w http.ResponseWriter, r *http.Request) {
	pivot, ok := c.pivot(w, r, r.URL.Query().Get("date"))
	if !ok {
		return
	}
	v := c.newView(pivot)
	_ = v.Refresh(r.Context())

	flash := ""
	if r.URL.Query().Get("booked") == "1" {
		flash = MsgSessionBooked
	}
	c.render(w, http.StatusOK, v, flash)
}

// Prev redirects to the week before ?date=.
func (c *ScheduleController) Prev(w http.ResponseWriter, r *http.Request) {
	c.shift(w, r, -schedule.DaysInWeek)
}

// Next redirects to the week after ?date=.
func (c *ScheduleController) Next(w http.ResponseWriter, r *http.Request) {
	c.shift(w, r, schedule.DaysInWeek)
}

func (c *ScheduleController) shift(w http.ResponseWriter, r *http.Request, days int) {
	pivot, ok := c.pivot(w, r, r.URL.Query().Get("date"))
	if !ok {
		return
	}
	http.Redirect(w, r, scheduleURL("/schedule", pivot.AddDate(0, 0, days)), http.StatusSeeOther)
}

// SelectSlot renders the week with the booking form open for ?start=&end=.
func (c *ScheduleController) SelectSlot(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pivot, ok := c.pivot(w, r, q.Get("date"))
	if !ok {
		return
	}
	slot, err := parseSlot(q.Get("start"), q.Get("end"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	v := c.newView(pivot)
	_ = v.Refresh(r.Context())
	v.SelectSlot(slot)
	c.render(w, http.StatusOK, v, "")
}

// Book submits the booking form. On success the tutor is notified and the
// browser is redirected to the week, whose load is the one re-fetch after the
// booking. On failure the week is fetched once and the form shown again with
// the typed values.
func (c *ScheduleController) Book(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	pivot, ok := c.pivot(w, r, r.PostFormValue("date"))
	if !ok {
		return
	}
	slot, err := parseSlot(r.PostFormValue("start"), r.PostFormValue("end"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	v := c.newView(pivot)
	v.SelectSlot(slot)
	v.SetDraft(r.PostFormValue("title"), r.PostFormValue("attendee"))

	created, err := v.Book(r.Context())
	if err != nil {
		status := http.StatusBadGateway
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrNoSlotSelected) {
			status = http.StatusBadRequest
		}
		banner := v.Err()
		_ = v.Refresh(r.Context())
		c.renderBanner(w, status, v, "", banner)
		return
	}

	c.notify(r, created)
	http.Redirect(w, r, scheduleURL("/schedule", pivot)+"&booked=1", http.StatusSeeOther)
}

// notify emails the tutor about a new booking. A failure is logged only.
func (c *ScheduleController) notify(r *http.Request, ev *domain.Event) {
	if c.Email == nil || c.NotifyEmail == "" || ev == nil {
		return
	}
	data := &domain.BookingConfirmationEmailData{
		Email:    c.NotifyEmail,
		EventID:  ev.ID,
		Title:    ev.Title,
		Attendee: strings.Join(ev.Attendees, ", "),
		Start:    ev.Start,
		End:      ev.End,
	}
	if err := c.Email.SendBookingConfirmation(r.Context(), data); err != nil {
		c.Logger.ErrorContext(r.Context(), "booking notification failed", "event_id", ev.ID, "err", err)
	}
}

// Week godoc
// @Summary Get the week around a date
// @Description Returns the 7-day window containing the date, its events grouped by day, and the free slots of the date itself.
// @Tags schedule
// @Produce json
// @Param date query string false "Pivot date (YYYY-MM-DD), default today"
// @Success 200 {object} controllers.WeekSuccessResponse "data contains the week"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /schedule/week [get]
func (c *ScheduleController) Week(w http.ResponseWriter, r *http.Request) {
	pivot, err := schedule.ParseDate(r.URL.Query().Get("date"), c.Now(), c.Location)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	v := c.newView(pivot)
	if err := v.Refresh(r.Context()); err != nil {
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, v.Err())
		return
	}

	win := v.Window()
	resp := WeekResponse{
		Pivot: pivot.Format(schedule.DateLayout),
		Start: win.Start.Format(schedule.DateLayout),
		End:   win.End.Format(schedule.DateLayout),
		Days:  make([]WeekDay, 0, schedule.DaysInWeek),
		Slots: v.Slots(),
	}
	if resp.Slots == nil {
		resp.Slots = []domain.TimeSlot{}
	}
	for _, day := range v.Days() {
		events := day.Events
		if events == nil {
			events = []domain.Event{}
		}
		resp.Days = append(resp.Days, WeekDay{Date: day.Date.Format(schedule.DateLayout), Events: events})
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, resp)
}

// Calendar godoc
// @Summary Export the week as iCalendar
// @Description Returns the events of the 7-day window containing the date as a text/calendar attachment.
// @Tags schedule
// @Produce text/calendar
// @Param date query string false "Pivot date (YYYY-MM-DD), default today"
// @Success 200 {string} string "VCALENDAR"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 502 {object} helpers.APIResponse "error.code: bad_gateway"
// @Router /schedule.ics [get]
func (c *ScheduleController) Calendar(w http.ResponseWriter, r *http.Request) {
	pivot, err := schedule.ParseDate(r.URL.Query().Get("date"), c.Now(), c.Location)
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	v := c.newView(pivot)
	if err := v.FetchEvents(r.Context()); err != nil {
		helpers.WriteJSONError(w, http.StatusBadGateway, helpers.ErrCodeBadGateway, v.Err())
		return
	}

	var buf bytes.Buffer
	if err := calendar.WriteWeek(&buf, v.Window(), v.Events(), c.Now()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "failed to export calendar")
		return
	}
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="schedule-%s.ics"`, v.Window().Start.Format(schedule.DateLayout)))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (c *ScheduleController) newView(pivot time.Time) *schedule.View {
	return schedule.NewView(c.API, pivot, schedule.WithWeekStart(c.WeekStart), schedule.WithLogger(c.Logger))
}

// pivot parses a date parameter, answering 400 itself when it is malformed.
func (c *ScheduleController) pivot(w http.ResponseWriter, r *http.Request, s string) (time.Time, bool) {
	pivot, err := schedule.ParseDate(s, c.Now(), c.Location)
	if err != nil {
		c.Logger.WarnContext(r.Context(), "bad date parameter", "date", s, "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return time.Time{}, false
	}
	return pivot, true
}

func (c *ScheduleController) render(w http.ResponseWriter, status int, v *schedule.View, flash string) {
	c.renderBanner(w, status, v, flash, "")
}

// renderBanner renders the week with banner in place of the view's own
// message when banner is set.
func (c *ScheduleController) renderBanner(w http.ResponseWriter, status int, v *schedule.View, flash, banner string) {
	if banner == "" {
		banner = v.Err()
	}
	pivot := v.Pivot()
	win := v.Window()
	c.Views.Render(w, status, views.PageSchedule, views.Page{
		Title: "Schedule",
		Path:  "/schedule",
		Error: banner,
		Flash: flash,
		Data: SchedulePage{
			Pivot:       pivot.Format(schedule.DateLayout),
			Heading:     win.Heading(),
			PrevURL:     scheduleURL("/schedule/prev", pivot),
			NextURL:     scheduleURL("/schedule/next", pivot),
			CalendarURL: scheduleURL("/schedule.ics", pivot),
			Days:        v.Days(),
			Slots:       v.Slots(),
			Draft:       v.Draft(),
		},
	})
}

func scheduleURL(path string, pivot time.Time) string {
	return path + "?" + url.Values{"date": {pivot.Format(schedule.DateLayout)}}.Encode()
}

// parseSlot reads a slot from RFC 3339 start and end values.
func parseSlot(start, end string) (domain.TimeSlot, error) {
	s, err := time.Parse(time.RFC3339, start)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: start must be an RFC 3339 time", domain.ErrInvalidInput)
	}
	e, err := time.Parse(time.RFC3339, end)
	if err != nil {
		return domain.TimeSlot{}, fmt.Errorf("%w: end must be an RFC 3339 time", domain.ErrInvalidInput)
	}
	if !e.After(s) {
		return domain.TimeSlot{}, fmt.Errorf("%w: end must be after start", domain.ErrInvalidInput)
	}
	return domain.TimeSlot{Start: s, End: e}, nil
}
