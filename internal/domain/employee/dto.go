package employee

import "github.com/stafflog/attendance-backend-go/internal/pkg/validator"

type CreateEmployeeRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Dept  string `json:"dept"`
}

func (r CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name is required"})
	}
	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email is required"})
	}
	if validator.IsEmpty(r.Dept) {
		errs = append(errs, validator.ValidationError{Field: "dept", Message: "dept is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest carries partial-update fields. A nil pointer means
// "field not provided, leave the stored value unchanged".
type UpdateEmployeeRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Dept  *string `json:"dept,omitempty"`
}

func (r UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors
	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "name must not be empty"})
	}
	if r.Email != nil && validator.IsEmpty(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must not be empty"})
	}
	if r.Dept != nil && validator.IsEmpty(*r.Dept) {
		errs = append(errs, validator.ValidationError{Field: "dept", Message: "dept must not be empty"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// EmployeeFilter holds the optional list filters. Substring filters are
// case-insensitive; all conditions combine with AND.
type EmployeeFilter struct {
	Name   *string
	Email  *string
	Dept   *string
	Limit  int
	Offset int
}

type EmployeeResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Dept  string `json:"dept"`
}

type EmployeeListResponse struct {
	Items []EmployeeResponse `json:"items"`
	Total int64              `json:"total"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:    e.ID,
		Name:  e.Name,
		Email: e.Email,
		Dept:  e.Dept,
	}
}
