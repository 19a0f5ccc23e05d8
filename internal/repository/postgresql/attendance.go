package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stafflog/attendance-backend-go/internal/domain/attendance"
	"github.com/stafflog/attendance-backend-go/internal/domain/employee"
	"github.com/stafflog/attendance-backend-go/internal/metrics"
	"github.com/stafflog/attendance-backend-go/internal/pkg/database"
)

// PostgreSQL error codes surfaced by the attendance table constraints.
const (
	pgErrForeignKeyViolation = "23503"
	pgErrUniqueViolation     = "23505"
)

type attendanceRepositoryImpl struct {
	db      database.Conn
	metrics *metrics.Metrics
}

func NewAttendanceRepository(db database.Conn, m *metrics.Metrics) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db, metrics: m}
}

// Upsert implements attendance.AttendanceRepository. The unique index on
// (emp_id, date) turns the create-or-overwrite into a single atomic
// statement, so two concurrent creates for the same pair cannot duplicate.
func (a *attendanceRepositoryImpl) Upsert(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	startTime := time.Now()
	defer func() {
		a.metrics.DBQueryDuration.WithLabelValues("upsert_attendance").Observe(time.Since(startTime).Seconds())
	}()

	query := `
		INSERT INTO attendance (emp_id, status, date)
		VALUES ($1, $2, $3)
		ON CONFLICT (emp_id, date) DO UPDATE SET status = EXCLUDED.status
		RETURNING id, emp_id, status, date
	`

	var stored attendance.Attendance
	err := a.db.QueryRow(ctx, query, record.EmpID, record.Status, record.Date).
		Scan(&stored.ID, &stored.EmpID, &stored.Status, &stored.Date)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgErrForeignKeyViolation {
			return attendance.Attendance{}, employee.ErrEmployeeNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return stored, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id int64) (attendance.Attendance, error) {
	startTime := time.Now()
	defer func() {
		a.metrics.DBQueryDuration.WithLabelValues("get_attendance").Observe(time.Since(startTime).Seconds())
	}()

	query := `SELECT id, emp_id, status, date FROM attendance WHERE id = $1`

	var found attendance.Attendance
	err := a.db.QueryRow(ctx, query, id).Scan(&found.ID, &found.EmpID, &found.Status, &found.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return found, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, id int64, req attendance.UpdateAttendanceRequest) (attendance.Attendance, error) {
	startTime := time.Now()
	defer func() {
		a.metrics.DBQueryDuration.WithLabelValues("update_attendance").Observe(time.Since(startTime).Seconds())
	}()

	setClauses := make([]string, 0, 3)
	args := make([]interface{}, 0, 4)
	argIdx := 1

	if req.EmpID != nil {
		setClauses = append(setClauses, fmt.Sprintf("emp_id = $%d", argIdx))
		args = append(args, *req.EmpID)
		argIdx++
	}
	if req.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *req.Status)
		argIdx++
	}
	if req.Date != nil {
		// Validated upstream; see UpdateAttendanceRequest.Validate.
		parsedDate, _ := time.Parse("2006-01-02", *req.Date)
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", argIdx))
		args = append(args, parsedDate)
		argIdx++
	}

	if len(setClauses) == 0 {
		return a.GetByID(ctx, id)
	}

	query := fmt.Sprintf(
		"UPDATE attendance SET %s WHERE id = $%d RETURNING id, emp_id, status, date",
		strings.Join(setClauses, ", "), argIdx,
	)
	args = append(args, id)

	var updated attendance.Attendance
	err := a.db.QueryRow(ctx, query, args...).Scan(&updated.ID, &updated.EmpID, &updated.Status, &updated.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgErrUniqueViolation:
				return attendance.Attendance{}, attendance.ErrDuplicateAttendance
			case pgErrForeignKeyViolation:
				return attendance.Attendance{}, employee.ErrEmployeeNotFound
			}
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return updated, nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	startTime := time.Now()
	defer func() {
		a.metrics.DBQueryDuration.WithLabelValues("delete_attendance").Observe(time.Since(startTime).Seconds())
	}()

	var deletedID int64
	err := a.db.QueryRow(ctx, `DELETE FROM attendance WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository. The employees join is only
// attached when a dept or name filter needs it.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	startTime := time.Now()
	defer func() {
		a.metrics.DBQueryDuration.WithLabelValues("list_attendance").Observe(time.Since(startTime).Seconds())
	}()

	conditions := []string{}
	args := []interface{}{}
	argIdx := 1
	joinEmployees := false

	if filter.Date != nil {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.EmpID != nil {
		conditions = append(conditions, fmt.Sprintf("a.emp_id = $%d", argIdx))
		args = append(args, *filter.EmpID)
		argIdx++
	}
	if filter.Status != nil {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Dept != nil && *filter.Dept != "" {
		joinEmployees = true
		conditions = append(conditions, fmt.Sprintf("e.dept ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Dept+"%")
		argIdx++
	}
	if filter.Name != nil && *filter.Name != "" {
		joinEmployees = true
		conditions = append(conditions, fmt.Sprintf("e.name ILIKE $%d", argIdx))
		args = append(args, "%"+*filter.Name+"%")
		argIdx++
	}

	fromClause := "FROM attendance a"
	if joinEmployees {
		fromClause += " JOIN employees e ON a.emp_id = e.id"
	}
	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := "SELECT COUNT(*) " + fromClause + whereClause
	var total int64
	if err := a.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance records: %w", err)
	}

	query := fmt.Sprintf(
		"SELECT a.id, a.emp_id, a.status, a.date %s%s ORDER BY a.id LIMIT $%d OFFSET $%d",
		fromClause, whereClause, argIdx, argIdx+1,
	)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := a.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		if err := rows.Scan(&rec.ID, &rec.EmpID, &rec.Status, &rec.Date); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return records, total, nil
}
