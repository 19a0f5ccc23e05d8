package employee

import (
	"context"

	"github.com/stafflog/attendance-backend-go/internal/domain/employee"
)

// Pagination bounds applied to list requests. The cap keeps a single page
// from pulling the whole table.
const (
	defaultLimit = 10
	maxLimit     = 100
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{employeeRepo: employeeRepo}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Name:  req.Name,
		Email: req.Email,
		Dept:  req.Dept,
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(created), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int64) (employee.EmployeeResponse, error) {
	found, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(found), nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	updated, err := s.employeeRepo.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(updated), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id int64) error {
	return s.employeeRepo.Delete(ctx, id)
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.EmployeeListResponse, error) {
	filter.Limit, filter.Offset = NormalizePage(filter.Limit, filter.Offset)

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.EmployeeListResponse{}, err
	}

	items := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		items = append(items, employee.ToResponse(emp))
	}

	return employee.EmployeeListResponse{Items: items, Total: total}, nil
}

// NormalizePage clamps pagination parameters to their defaults and bounds.
func NormalizePage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}
