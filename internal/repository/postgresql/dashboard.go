package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/stafflog/attendance-backend-go/internal/domain/dashboard"
	"github.com/stafflog/attendance-backend-go/internal/metrics"
	"github.com/stafflog/attendance-backend-go/internal/pkg/database"
)

type dashboardRepositoryImpl struct {
	db      database.Conn
	metrics *metrics.Metrics
}

func NewDashboardRepository(db database.Conn, m *metrics.Metrics) dashboard.DashboardRepository {
	return &dashboardRepositoryImpl{db: db, metrics: m}
}

// CountEmployees implements dashboard.DashboardRepository.
func (r *dashboardRepositoryImpl) CountEmployees(ctx context.Context) (int64, error) {
	startTime := time.Now()
	defer func() {
		r.metrics.DBQueryDuration.WithLabelValues("count_employees").Observe(time.Since(startTime).Seconds())
	}()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return total, nil
}

// GetAttendanceTotals returns all-time and per-day present/absent counts in a
// single query.
func (r *dashboardRepositoryImpl) GetAttendanceTotals(ctx context.Context, today time.Time) (dashboard.AttendanceTotals, error) {
	startTime := time.Now()
	defer func() {
		r.metrics.DBQueryDuration.WithLabelValues("attendance_totals").Observe(time.Since(startTime).Seconds())
	}()

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN status = 'PRESENT' THEN 1 ELSE 0 END), 0) AS present_all,
			COALESCE(SUM(CASE WHEN status = 'ABSENT' THEN 1 ELSE 0 END), 0) AS absent_all,
			COALESCE(SUM(CASE WHEN status = 'PRESENT' AND date = $1 THEN 1 ELSE 0 END), 0) AS present_today,
			COALESCE(SUM(CASE WHEN status = 'ABSENT' AND date = $1 THEN 1 ELSE 0 END), 0) AS absent_today
		FROM attendance
	`

	var totals dashboard.AttendanceTotals
	err := r.db.QueryRow(ctx, query, today).Scan(
		&totals.PresentAllTime, &totals.AbsentAllTime, &totals.PresentToday, &totals.AbsentToday,
	)
	if err != nil {
		return dashboard.AttendanceTotals{}, fmt.Errorf("failed to get attendance totals: %w", err)
	}
	return totals, nil
}

// ListPresentDays returns one row per employee via a left join, so employees
// without a single PRESENT record still show up with a zero count. Ties in
// present_count order by emp_id ascending for a deterministic page.
func (r *dashboardRepositoryImpl) ListPresentDays(ctx context.Context, limit, offset int) ([]dashboard.PresentDaysItem, int64, error) {
	startTime := time.Now()
	defer func() {
		r.metrics.DBQueryDuration.WithLabelValues("present_days").Observe(time.Since(startTime).Seconds())
	}()

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `
		SELECT e.id, e.name, e.dept, COUNT(a.id) AS present_count
		FROM employees e
		LEFT JOIN attendance a ON a.emp_id = e.id AND a.status = 'PRESENT'
		GROUP BY e.id, e.name, e.dept
		ORDER BY present_count DESC, e.id ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list present days: %w", err)
	}
	defer rows.Close()

	var items []dashboard.PresentDaysItem
	for rows.Next() {
		var item dashboard.PresentDaysItem
		if err := rows.Scan(&item.EmpID, &item.Name, &item.Dept, &item.PresentCount); err != nil {
			return nil, 0, fmt.Errorf("failed to scan present days row: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
