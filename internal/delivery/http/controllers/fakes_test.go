package controllers

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/domain"

	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

func newTestViews(t *testing.T) *views.Renderer {
	t.Helper()
	r, err := views.NewRenderer(time.UTC, testLogger)
	require.NoError(t, err)
	return r
}

// fakeStudentService implements domain.StudentService.
type fakeStudentService struct {
	students   []domain.Student
	listErr    error
	createErr  error
	lastCreate *domain.NewStudent
}

func (f *fakeStudentService) List(ctx context.Context) ([]domain.Student, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.students, nil
}

func (f *fakeStudentService) Create(ctx context.Context, s *domain.NewStudent) (*domain.Student, error) {
	f.lastCreate = s
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Student{ID: "s-new", FirstName: s.FirstName, LastName: s.LastName, Email: s.Email}, nil
}

// fakeResourceService implements domain.ResourceService.
type fakeResourceService struct {
	resources   []domain.Resource
	listErr     error
	createErr   error
	lastCreate  *domain.NewResource
	lastContent string
}

func (f *fakeResourceService) List(ctx context.Context) ([]domain.Resource, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.resources, nil
}

func (f *fakeResourceService) Create(ctx context.Context, r *domain.NewResource) (*domain.Resource, error) {
	f.lastCreate = r
	if r.File != nil {
		b, _ := io.ReadAll(r.File)
		f.lastContent = string(b)
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Resource{ID: "r-new", Title: r.Title}, nil
}

// fakeInvoiceService implements domain.InvoiceService.
type fakeInvoiceService struct {
	invoices   []domain.Invoice
	listErr    error
	createErr  error
	payErr     error
	session    *domain.CheckoutSession
	lastCreate *domain.NewInvoice
	lastPayID  string
}

func (f *fakeInvoiceService) List(ctx context.Context) ([]domain.Invoice, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.invoices, nil
}

func (f *fakeInvoiceService) Create(ctx context.Context, inv *domain.NewInvoice) (*domain.Invoice, error) {
	f.lastCreate = inv
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Invoice{ID: "i-new", Amount: inv.Amount, Status: domain.InvoiceStatusPending}, nil
}

func (f *fakeInvoiceService) Pay(ctx context.Context, id string) (*domain.CheckoutSession, error) {
	f.lastPayID = id
	if f.payErr != nil {
		return nil, f.payErr
	}
	return f.session, nil
}

// fakeDashboardService implements domain.DashboardService.
type fakeDashboardService struct {
	dashboard *domain.Dashboard
	err       error
}

func (f *fakeDashboardService) Load(ctx context.Context) (*domain.Dashboard, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.dashboard, nil
}

// fakeScheduleAPI implements domain.ScheduleAPI.
type fakeScheduleAPI struct {
	events      []domain.Event
	slots       []domain.TimeSlot
	eventsErr   error
	slotsErr    error
	createErr   error
	eventCalls  int
	slotCalls   int
	lastStart   time.Time
	lastEnd     time.Time
	lastDate    time.Time
	lastRequest *domain.EventRequest
}

func (f *fakeScheduleAPI) ListEvents(ctx context.Context, start, end time.Time) ([]domain.Event, error) {
	f.eventCalls++
	f.lastStart, f.lastEnd = start, end
	if f.eventsErr != nil {
		return nil, f.eventsErr
	}
	return f.events, nil
}

func (f *fakeScheduleAPI) AvailableSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	f.slotCalls++
	f.lastDate = date
	if f.slotsErr != nil {
		return nil, f.slotsErr
	}
	return f.slots, nil
}

func (f *fakeScheduleAPI) CreateEvent(ctx context.Context, req domain.EventRequest) (*domain.Event, error) {
	f.lastRequest = &req
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &domain.Event{ID: "ev-1", Title: req.Title, Start: req.Start, End: req.End, Attendees: []string{req.Attendee}}, nil
}

// fakeEmailService implements domain.EmailService.
type fakeEmailService struct {
	err  error
	sent []*domain.BookingConfirmationEmailData
}

func (f *fakeEmailService) SendBookingConfirmation(ctx context.Context, data *domain.BookingConfirmationEmailData) error {
	f.sent = append(f.sent, data)
	return f.err
}
