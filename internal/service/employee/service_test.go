package employee_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stafflog/attendance-backend-go/internal/domain/employee"
	employeeService "github.com/stafflog/attendance-backend-go/internal/service/employee"
)

type mockEmployeeRepo struct {
	createFn  func(ctx context.Context, emp employee.Employee) (employee.Employee, error)
	getByIDFn func(ctx context.Context, id int64) (employee.Employee, error)
	updateFn  func(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error)
	deleteFn  func(ctx context.Context, id int64) error
	listFn    func(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error)
}

func (m *mockEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return m.createFn(ctx, emp)
}

func (m *mockEmployeeRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockEmployeeRepo) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	return m.updateFn(ctx, id, req)
}

func (m *mockEmployeeRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func (m *mockEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return m.listFn(ctx, filter)
}

func TestNormalizePage(t *testing.T) {
	cases := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults", 0, 0, 10, 0},
		{"negative limit", -5, 0, 10, 0},
		{"capped limit", 500, 0, 100, 0},
		{"negative offset", 20, -1, 20, 0},
		{"passthrough", 25, 50, 25, 50},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			limit, offset := employeeService.NormalizePage(c.limit, c.offset)
			assert.Equal(t, c.wantLimit, limit)
			assert.Equal(t, c.wantOffset, offset)
		})
	}
}

func TestCreateEmployee_MapsRequest(t *testing.T) {
	var captured employee.Employee
	repo := &mockEmployeeRepo{
		createFn: func(_ context.Context, emp employee.Employee) (employee.Employee, error) {
			captured = emp
			emp.ID = 1
			return emp, nil
		},
	}

	svc := employeeService.NewEmployeeService(repo)
	resp, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:  "Ana",
		Email: "ana@example.com",
		Dept:  "Engineering",
	})

	require.NoError(t, err)
	assert.Equal(t, "Ana", captured.Name)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Engineering", resp.Dept)
}

func TestCreateEmployee_PropagatesError(t *testing.T) {
	repo := &mockEmployeeRepo{
		createFn: func(_ context.Context, _ employee.Employee) (employee.Employee, error) {
			return employee.Employee{}, employee.ErrEmployeeExists
		},
	}

	svc := employeeService.NewEmployeeService(repo)
	_, err := svc.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{
		Name:  "Ana",
		Email: "ana@example.com",
		Dept:  "Engineering",
	})

	require.ErrorIs(t, err, employee.ErrEmployeeExists)
}

func TestListEmployees_NormalizesPagination(t *testing.T) {
	var captured employee.EmployeeFilter
	repo := &mockEmployeeRepo{
		listFn: func(_ context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	svc := employeeService.NewEmployeeService(repo)
	resp, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{Limit: 0, Offset: -3})

	require.NoError(t, err)
	assert.Equal(t, 10, captured.Limit)
	assert.Equal(t, 0, captured.Offset)

	// A nil result from the repository still serializes as an empty list.
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
}

func TestListEmployees_MapsEntities(t *testing.T) {
	repo := &mockEmployeeRepo{
		listFn: func(_ context.Context, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
			return []employee.Employee{
				{ID: 1, Name: "Ana", Email: "ana@example.com", Dept: "Engineering"},
				{ID: 2, Name: "Bob", Email: "bob@example.com", Dept: "Sales"},
			}, 7, nil
		},
	}

	svc := employeeService.NewEmployeeService(repo)
	resp, err := svc.ListEmployees(context.Background(), employee.EmployeeFilter{})

	require.NoError(t, err)
	assert.Equal(t, int64(7), resp.Total)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, "Bob", resp.Items[1].Name)
}

func TestDeleteEmployee_Passthrough(t *testing.T) {
	var capturedID int64
	repo := &mockEmployeeRepo{
		deleteFn: func(_ context.Context, id int64) error {
			capturedID = id
			return nil
		},
	}

	svc := employeeService.NewEmployeeService(repo)
	require.NoError(t, svc.DeleteEmployee(context.Background(), 5))
	assert.Equal(t, int64(5), capturedID)
}
