package http

import (
	"net/http"

	"github.com/stafflog/attendance-backend-go/internal/domain/dashboard"
	"github.com/stafflog/attendance-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	// GetStats returns the aggregate dashboard counters
	GetStats(w http.ResponseWriter, r *http.Request)
	// ListPresentDays returns the paginated present-day leaderboard
	ListPresentDays(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// GetStats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetStats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListPresentDays handles GET /present-days
func (h *dashboardHandlerImpl) ListPresentDays(w http.ResponseWriter, r *http.Request) {
	limit, offset, ok := parsePageParams(w, r)
	if !ok {
		return
	}

	result, err := h.dashboardService.ListPresentDays(r.Context(), limit, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
