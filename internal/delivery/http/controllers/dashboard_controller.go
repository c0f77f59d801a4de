package controllers

import (
	"log/slog"
	"net/http"

	"tutorportal/internal/delivery/http/views"
	"tutorportal/internal/domain"
)

// MsgFetchDashboardFailed is the banner shown when the dashboard cannot load.
const MsgFetchDashboardFailed = "Failed to fetch dashboard data. Please try again later."

type DashboardController struct {
	Logger  *slog.Logger
	Service domain.DashboardService
	Views   PageRenderer
}

func NewDashboardController(logger *slog.Logger, svc domain.DashboardService, v PageRenderer) *DashboardController {
	return &DashboardController{Logger: logger, Service: svc, Views: v}
}

// Show renders the dashboard. A failed load is logged and the page falls back
// to empty lists and zero counters under an error banner.
func (c *DashboardController) Show(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page := views.Page{Title: "Dashboard", Path: "/"}
	d, err := c.Service.Load(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		d = &domain.Dashboard{}
		page.Error = MsgFetchDashboardFailed
	}
	page.Data = d
	c.Views.Render(w, http.StatusOK, views.PageDashboard, page)
}
