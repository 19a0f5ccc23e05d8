package dashboard

import (
	"context"
	"time"
)

// AttendanceTotals combines the all-time and per-day attendance counts in a
// single query result.
type AttendanceTotals struct {
	PresentAllTime int64
	AbsentAllTime  int64
	PresentToday   int64
	AbsentToday    int64
}

type DashboardRepository interface {
	CountEmployees(ctx context.Context) (int64, error)
	// GetAttendanceTotals returns present/absent counts across all dates plus
	// the counts for the given day, in a single query.
	GetAttendanceTotals(ctx context.Context, today time.Time) (AttendanceTotals, error)
	// ListPresentDays returns one leaderboard row per employee (zero-count
	// employees included) ordered by present_count DESC, emp_id ASC, plus the
	// total number of employees.
	ListPresentDays(ctx context.Context, limit, offset int) ([]PresentDaysItem, int64, error)
}
