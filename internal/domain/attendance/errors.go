package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrDuplicateAttendance = errors.New("an attendance record for this employee and date already exists")
)
