package attendance

import "context"

type AttendanceRepository interface {
	// Upsert inserts the record or, when a row for (emp_id, date) already
	// exists, overwrites its status and returns the existing row. A missing
	// employee surfaces as employee.ErrEmployeeNotFound.
	Upsert(ctx context.Context, record Attendance) (Attendance, error)
	GetByID(ctx context.Context, id int64) (Attendance, error)
	// Update applies only the fields present in req. Moving a record onto an
	// occupied (emp_id, date) pair returns ErrDuplicateAttendance.
	Update(ctx context.Context, id int64, req UpdateAttendanceRequest) (Attendance, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
}
