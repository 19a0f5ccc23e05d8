package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/stafflog/attendance-backend-go/internal/domain/attendance"
	"github.com/stafflog/attendance-backend-go/internal/handler/http/response"
	"github.com/stafflog/attendance-backend-go/internal/pkg/validator"
)

type AttendanceHandler interface {
	CreateAttendance(w http.ResponseWriter, r *http.Request)
	GetAttendance(w http.ResponseWriter, r *http.Request)
	UpdateAttendance(w http.ResponseWriter, r *http.Request)
	DeleteAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// CreateAttendance implements AttendanceHandler. Creating for an existing
// (emp_id, date) pair overwrites the stored status rather than duplicating.
func (h *attendanceHandlerImpl) CreateAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.CreateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.CreateAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) GetAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	result, err := h.attendanceService.GetAttendance(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) UpdateAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	var req attendance.UpdateAttendanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.attendanceService.UpdateAttendance(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) DeleteAttendance(w http.ResponseWriter, r *http.Request) {
	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	if err := h.attendanceService.DeleteAttendance(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	filter := attendance.AttendanceFilter{}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, ok := validator.IsValidDate(raw)
		if !ok {
			response.BadRequest(w, "Invalid date: must be in YYYY-MM-DD format", nil)
			return
		}
		filter.Date = &date
	}
	if raw := r.URL.Query().Get("emp_id"); raw != "" {
		empID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || empID <= 0 {
			response.BadRequest(w, "Invalid emp_id: must be a positive integer", nil)
			return
		}
		filter.EmpID = &empID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status, ok := attendance.ParseStatus(raw)
		if !ok {
			response.BadRequest(w, "Invalid status: must be PRESENT, ABSENT or UNSET", nil)
			return
		}
		filter.Status = &status
	}
	if dept := r.URL.Query().Get("dept"); dept != "" {
		filter.Dept = &dept
	}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}

	limit, offset, ok := parsePageParams(w, r)
	if !ok {
		return
	}
	filter.Limit = limit
	filter.Offset = offset

	result, err := h.attendanceService.ListAttendance(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
