package services

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"tutorportal/internal/domain"
)

type dashboardService struct {
	api            domain.DashboardAPI
	contextTimeout time.Duration
}

// NewDashboardService returns the service behind the Dashboard page.
func NewDashboardService(api domain.DashboardAPI, timeout time.Duration) domain.DashboardService {
	return &dashboardService{api: api, contextTimeout: timeout}
}

// Load fetches the three read models concurrently. Any failure fails the whole
// load and cancels the calls still in flight.
func (s *dashboardService) Load(ctx context.Context) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	var d domain.Dashboard
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		sessions, err := s.api.UpcomingSessions(gctx)
		if err != nil {
			return fmt.Errorf("upcoming sessions: %w", err)
		}
		d.UpcomingSessions = sessions
		return nil
	})
	g.Go(func() error {
		activity, err := s.api.RecentActivity(gctx)
		if err != nil {
			return fmt.Errorf("recent activity: %w", err)
		}
		d.RecentActivity = activity
		return nil
	})
	g.Go(func() error {
		stats, err := s.api.Stats(gctx)
		if err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		d.Stats = stats
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	return &d, nil
}
