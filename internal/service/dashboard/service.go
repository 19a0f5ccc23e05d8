package dashboard

import (
	"context"
	"time"

	"github.com/stafflog/attendance-backend-go/internal/domain/dashboard"
	employeeService "github.com/stafflog/attendance-backend-go/internal/service/employee"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	dashboard.DashboardRepository
}

func NewDashboardService(repo dashboard.DashboardRepository) dashboard.DashboardService {
	return &DashboardServiceImpl{DashboardRepository: repo}
}

// GetStats returns the dashboard counters. The employee count and the
// attendance aggregate run as parallel queries; "today" is fixed once at
// call time so both halves agree on the date.
func (s *DashboardServiceImpl) GetStats(ctx context.Context) (*dashboard.StatsResponse, error) {
	today := time.Now()

	var (
		totalEmployees int64
		totals         dashboard.AttendanceTotals
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.CountEmployees(gCtx)
		if err != nil {
			return err
		}
		totalEmployees = count
		return nil
	})

	g.Go(func() error {
		t, err := s.GetAttendanceTotals(gCtx, today)
		if err != nil {
			return err
		}
		totals = t
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &dashboard.StatsResponse{
		TotalEmployees:    totalEmployees,
		PresentDays:       totals.PresentAllTime,
		AbsentDays:        totals.AbsentAllTime,
		TotalPresentToday: totals.PresentToday,
		TotalAbsentToday:  totals.AbsentToday,
	}, nil
}

// ListPresentDays returns a page of the present-day leaderboard.
func (s *DashboardServiceImpl) ListPresentDays(ctx context.Context, limit, offset int) (*dashboard.PresentDaysResponse, error) {
	limit, offset = employeeService.NormalizePage(limit, offset)

	items, total, err := s.DashboardRepository.ListPresentDays(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []dashboard.PresentDaysItem{}
	}

	return &dashboard.PresentDaysResponse{Items: items, Total: total}, nil
}
