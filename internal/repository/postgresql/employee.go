package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stafflog/attendance-backend-go/internal/domain/employee"
	"github.com/stafflog/attendance-backend-go/internal/metrics"
	"github.com/stafflog/attendance-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db      database.Conn
	metrics *metrics.Metrics
}

func NewEmployeeRepository(db database.Conn, m *metrics.Metrics) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db, metrics: m}
}

// Create implements employee.EmployeeRepository. The duplicate-triple check
// and the insert run in one transaction; there is no unique index on the
// triple, so the check has to be serialized with the write.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	startTime := time.Now()
	defer func() {
		e.metrics.DBQueryDuration.WithLabelValues("create_employee").Observe(time.Since(startTime).Seconds())
	}()

	var created employee.Employee
	err := WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		existsQuery := `SELECT EXISTS(SELECT 1 FROM employees WHERE name = $1 AND email = $2 AND dept = $3)`

		var exists bool
		if err := tx.QueryRow(ctx, existsQuery, newEmployee.Name, newEmployee.Email, newEmployee.Dept).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check for duplicate employee: %w", err)
		}
		if exists {
			return employee.ErrEmployeeExists
		}

		insertQuery := `
			INSERT INTO employees (name, email, dept)
			VALUES ($1, $2, $3)
			RETURNING id, name, email, dept
		`

		if err := tx.QueryRow(ctx, insertQuery, newEmployee.Name, newEmployee.Email, newEmployee.Dept).
			Scan(&created.ID, &created.Name, &created.Email, &created.Dept); err != nil {
			return fmt.Errorf("failed to insert employee: %w", err)
		}
		return nil
	})
	if err != nil {
		return employee.Employee{}, err
	}

	return created, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	startTime := time.Now()
	defer func() {
		e.metrics.DBQueryDuration.WithLabelValues("get_employee").Observe(time.Since(startTime).Seconds())
	}()

	query := `SELECT id, name, email, dept FROM employees WHERE id = $1`

	var found employee.Employee
	err := e.db.QueryRow(ctx, query, id).Scan(&found.ID, &found.Name, &found.Email, &found.Dept)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return found, nil
}

// Update implements employee.EmployeeRepository. Only fields present in req
// end up in the SET clause; an empty request reads back the stored row.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id int64, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	startTime := time.Now()
	defer func() {
		e.metrics.DBQueryDuration.WithLabelValues("update_employee").Observe(time.Since(startTime).Seconds())
	}()

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	argIdx := 1

	if req.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", argIdx))
		args = append(args, *req.Name)
		argIdx++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.Dept != nil {
		setClauses = append(setClauses, fmt.Sprintf("dept = $%d", argIdx))
		args = append(args, *req.Dept)
		argIdx++
	}

	if len(setClauses) == 0 {
		return e.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE employees SET %s WHERE id = $%d RETURNING id, name, email, dept",
		strings.Join(setClauses, ", "), argIdx,
	)
	args = append(args, id)

	var updated employee.Employee
	err := e.db.QueryRow(ctx, query, args...).Scan(&updated.ID, &updated.Name, &updated.Email, &updated.Dept)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return updated, nil
}

// Delete implements employee.EmployeeRepository. Dependent attendance rows
// are removed in the same transaction so no orphans survive the delete.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()
	defer func() {
		e.metrics.DBQueryDuration.WithLabelValues("delete_employee").Observe(time.Since(startTime).Seconds())
	}()

	return WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM attendance WHERE emp_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete attendance records for employee: %w", err)
		}

		var deletedID int64
		err := tx.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return employee.ErrEmployeeNotFound
			}
			return fmt.Errorf("failed to delete employee: %w", err)
		}
		return nil
	})
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	startTime := time.Now()
	defer func() {
		e.metrics.DBQueryDuration.WithLabelValues("list_employees").Observe(time.Since(startTime).Seconds())
	}()

	// Build WHERE conditions
	conditions := []string{}
	args := []interface{}{}
	argIdx := 1

	if filter.Name != nil && *filter.Name != "" {
		conditions = append(conditions, fmt.Sprintf("name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}
	if filter.Email != nil && *filter.Email != "" {
		conditions = append(conditions, fmt.Sprintf("email ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Email+"%")
		argIdx++
	}
	if filter.Dept != nil && *filter.Dept != "" {
		conditions = append(conditions, fmt.Sprintf("dept ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Dept+"%")
		argIdx++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) FROM employees" + whereClause
	var total int64
	if err := e.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT id, name, email, dept FROM employees%s ORDER BY id LIMIT $%d OFFSET $%d",
		whereClause, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := e.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		if err := rows.Scan(&emp.ID, &emp.Name, &emp.Email, &emp.Dept); err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}
