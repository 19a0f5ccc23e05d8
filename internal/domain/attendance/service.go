package attendance

import "context"

type AttendanceService interface {
	// CreateAttendance performs the create-or-overwrite upsert keyed on
	// (emp_id, date).
	CreateAttendance(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)
	GetAttendance(ctx context.Context, id int64) (AttendanceResponse, error)
	UpdateAttendance(ctx context.Context, id int64, req UpdateAttendanceRequest) (AttendanceResponse, error)
	DeleteAttendance(ctx context.Context, id int64) error
	ListAttendance(ctx context.Context, filter AttendanceFilter) (AttendanceListResponse, error)
}
