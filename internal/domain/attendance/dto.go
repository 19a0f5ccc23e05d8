package attendance

import (
	"time"

	"github.com/stafflog/attendance-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type CreateAttendanceRequest struct {
	EmpID  int64  `json:"emp_id"`
	Status string `json:"status"`
	Date   string `json:"date"`
}

func (r CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmpID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id is required"})
	}
	if _, ok := ParseStatus(r.Status); !ok {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be PRESENT, ABSENT or UNSET"})
	}
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date is required"})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateAttendanceRequest carries partial-update fields; nil means "leave
// the stored value unchanged".
type UpdateAttendanceRequest struct {
	EmpID  *int64  `json:"emp_id,omitempty"`
	Status *string `json:"status,omitempty"`
	Date   *string `json:"date,omitempty"`
}

func (r UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.EmpID != nil && *r.EmpID <= 0 {
		errs = append(errs, validator.ValidationError{Field: "emp_id", Message: "emp_id must be a positive integer"})
	}
	if r.Status != nil {
		if _, ok := ParseStatus(*r.Status); !ok || *r.Status == "" {
			errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be PRESENT, ABSENT or UNSET"})
		}
	}
	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be in YYYY-MM-DD format"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AttendanceFilter holds the optional list filters. Date, emp_id and status
// match exactly on the attendance table; dept and name are case-insensitive
// substring filters that join against employees. All conditions AND together.
type AttendanceFilter struct {
	Date   *time.Time
	EmpID  *int64
	Status *Status
	Dept   *string
	Name   *string
	Limit  int
	Offset int
}

type AttendanceResponse struct {
	ID     int64  `json:"id"`
	EmpID  int64  `json:"emp_id"`
	Status Status `json:"status"`
	Date   string `json:"date"`
}

type AttendanceListResponse struct {
	Items []AttendanceResponse `json:"items"`
	Total int64                `json:"total"`
}

func ToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:     a.ID,
		EmpID:  a.EmpID,
		Status: a.Status,
		Date:   a.Date.Format(dateLayout),
	}
}
