package attendance

import (
	"context"
	"time"

	"github.com/stafflog/attendance-backend-go/internal/domain/attendance"
	employeeService "github.com/stafflog/attendance-backend-go/internal/service/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{attendanceRepo: attendanceRepo}
}

// CreateAttendance implements attendance.AttendanceService. The repository
// upsert overwrites the status of an existing (emp_id, date) record, so the
// returned id is not necessarily fresh.
func (s *AttendanceServiceImpl) CreateAttendance(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	status, _ := attendance.ParseStatus(req.Status)
	date, _ := time.Parse("2006-01-02", req.Date)

	stored, err := s.attendanceRepo.Upsert(ctx, attendance.Attendance{
		EmpID:  req.EmpID,
		Status: status,
		Date:   date,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(stored), nil
}

// GetAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetAttendance(ctx context.Context, id int64) (attendance.AttendanceResponse, error) {
	found, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(found), nil
}

// UpdateAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) UpdateAttendance(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	updated, err := s.attendanceRepo.Update(ctx, id, req)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.ToResponse(updated), nil
}

// DeleteAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) DeleteAttendance(ctx context.Context, id int64) error {
	return s.attendanceRepo.Delete(ctx, id)
}

// ListAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListAttendance(ctx context.Context, filter attendance.AttendanceFilter) (attendance.AttendanceListResponse, error) {
	filter.Limit, filter.Offset = employeeService.NormalizePage(filter.Limit, filter.Offset)

	records, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.AttendanceListResponse{}, err
	}

	items := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		items = append(items, attendance.ToResponse(rec))
	}

	return attendance.AttendanceListResponse{Items: items, Total: total}, nil
}
