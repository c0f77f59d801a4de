package tutorapi

import (
	"context"

	"tutorportal/internal/domain"
)

var _ domain.DashboardAPI = (*Client)(nil)

// UpcomingSessions calls GET /api/sessions/upcoming.
func (c *Client) UpcomingSessions(ctx context.Context) ([]domain.UpcomingSession, error) {
	return getList[domain.UpcomingSession](ctx, c, "/api/sessions/upcoming", nil)
}

// RecentActivity calls GET /api/activity/recent.
func (c *Client) RecentActivity(ctx context.Context) ([]domain.Activity, error) {
	return getList[domain.Activity](ctx, c, "/api/activity/recent", nil)
}

// Stats calls GET /api/stats.
func (c *Client) Stats(ctx context.Context) (domain.Stats, error) {
	var stats domain.Stats
	if err := c.getJSON(ctx, "/api/stats", nil, &stats); err != nil {
		return domain.Stats{}, err
	}
	return stats, nil
}
