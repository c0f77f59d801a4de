package domain

import "context"

// UpcomingSession is a row of GET /api/sessions/upcoming.
type UpcomingSession struct {
	ID          string `json:"id"`
	StudentName string `json:"studentName"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

// Activity is a row of GET /api/activity/recent.
type Activity struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Date        string `json:"date"`
}

// Stats is the answer of GET /api/stats. TotalEarnings is nil when the API
// has no figure.
type Stats struct {
	TotalStudents int      `json:"totalStudents"`
	TotalSessions int      `json:"totalSessions"`
	TotalEarnings *float64 `json:"totalEarnings"`
}

// Dashboard bundles the three dashboard read models.
type Dashboard struct {
	UpcomingSessions []UpcomingSession
	RecentActivity   []Activity
	Stats            Stats
}

// DashboardAPI is the read-model side of the tutor API.
type DashboardAPI interface {
	UpcomingSessions(ctx context.Context) ([]UpcomingSession, error)
	RecentActivity(ctx context.Context) ([]Activity, error)
	Stats(ctx context.Context) (Stats, error)
}

// DashboardService loads the dashboard.
type DashboardService interface {
	Load(ctx context.Context) (*Dashboard, error)
}
