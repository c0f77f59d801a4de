// Package views renders the portal's HTML pages from embedded templates.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"tutorportal/internal/schedule"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageDashboard = "dashboard"
	PageStudents  = "students"
	PageResources = "resources"
	PageInvoices  = "invoices"
	PageCheckout  = "checkout"
	PageSchedule  = "schedule"
)

var pageNames = []string{PageDashboard, PageStudents, PageResources, PageInvoices, PageCheckout, PageSchedule}

// NavItem is a sidebar link.
type NavItem struct {
	Path  string
	Label string
}

// Nav lists the sidebar links in display order.
var Nav = []NavItem{
	{Path: "/", Label: "Dashboard"},
	{Path: "/students", Label: "Students"},
	{Path: "/resources", Label: "Resources"},
	{Path: "/invoices", Label: "Invoices"},
	{Path: "/schedule", Label: "Schedule"},
}

// Page is the data every template receives. Data holds the page-specific model.
type Page struct {
	Title string
	Path  string
	Error string
	Flash string
	Data  any
}

// Renderer executes page templates inside the shared layout.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// NewRenderer parses every page. Times are displayed in loc.
func NewRenderer(loc *time.Location, logger *slog.Logger) (*Renderer, error) {
	if loc == nil {
		loc = time.Local
	}
	funcs := template.FuncMap{
		"nav":       func() []NavItem { return Nav },
		"dayName":   func(t time.Time) string { return schedule.DayName(t.In(loc)) },
		"dayLabel":  func(t time.Time) string { return schedule.DayLabel(t.In(loc)) },
		"timeRange": func(start, end time.Time) string { return schedule.TimeRange(start, end, loc) },
		"isoDate":   func(t time.Time) string { return t.In(loc).Format(schedule.DateLayout) },
		"rfc3339":   func(t time.Time) string { return t.Format(time.RFC3339) },
		"shortDate": func(t time.Time) string { return t.In(loc).Format("Jan 2, 2006") },
		"money":     Money,
		"earnings":  Earnings,
		"join":      func(names []string) string { return strings.Join(names, ", ") },
	}
	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames)), logger: logger}
	for _, name := range pageNames {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse %s template: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render writes page with status. The page is executed into a buffer first so
// a template failure turns into a plain 500 instead of a half-written page.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, p Page) {
	t, ok := r.pages[name]
	if !ok {
		r.logger.Error("unknown page", "page", name)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", p); err != nil {
		r.logger.Error("render page failed", "page", name, "err", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Money renders an amount as "$12.50".
func Money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

// Earnings renders total earnings, or "N/A" when the API has no figure.
func Earnings(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return Money(*v)
}
