package response

import (
	"errors"
	"net/http"

	"github.com/stafflog/attendance-backend-go/internal/domain/attendance"
	"github.com/stafflog/attendance-backend-go/internal/domain/employee"
	"github.com/stafflog/attendance-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeExists):
		Conflict(w, "An employee with the same name, email and department already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "An attendance record for this employee and date already exists")

	// Default: storage or unexpected failure
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
