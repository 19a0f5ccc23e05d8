package employee

import "context"

type EmployeeRepository interface {
	// Create inserts a new employee. Returns ErrEmployeeExists when an
	// employee with the identical (name, email, dept) triple already exists.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	GetByID(ctx context.Context, id int64) (Employee, error)
	// Update applies only the fields present in req and returns the stored row.
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (Employee, error)
	// Delete removes the employee together with its attendance records.
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
}
