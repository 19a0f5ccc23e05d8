package dashboard

import "context"

type DashboardService interface {
	// GetStats returns the dashboard counters evaluated at call time.
	GetStats(ctx context.Context) (*StatsResponse, error)
	// ListPresentDays returns a page of the present-day leaderboard.
	ListPresentDays(ctx context.Context, limit, offset int) (*PresentDaysResponse, error)
}
