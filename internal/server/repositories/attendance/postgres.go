package attendance

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/common"
	"github.com/dmitrijs2005/hrmsync/internal/dbx"
	"github.com/dmitrijs2005/hrmsync/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const selectAttendance = `SELECT a.id, a.employee_id, e.employee_id, e.full_name, to_char(a.date, 'YYYY-MM-DD'), a.status, a.note
	 FROM attendance a
	 JOIN employees e ON e.id = a.employee_id`

// Empty bounds collapse to the row's own date so the filter is a no-op.
const attendanceFilter = `
	 WHERE a.date >= COALESCE(NULLIF($1, '')::date, a.date)
	   AND a.date <= COALESCE(NULLIF($2, '')::date, a.date)
	   AND ($3 = '' OR a.status = $3)
	 ORDER BY a.date DESC, a.id DESC`

type scanner interface {
	Scan(dest ...any) error
}

func scanAttendance(row scanner) (*models.Attendance, error) {
	a := &models.Attendance{}
	if err := row.Scan(&a.ID, &a.EmployeeID, &a.EmployeeCode, &a.EmployeeName, &a.Date, &a.Status, &a.Note); err != nil {
		return nil, err
	}
	return a, nil
}

// List returns records across all employees, newest first.
func (r *PostgresRepository) List(ctx context.Context, f models.AttendanceFilter) ([]models.Attendance, error) {
	rows, err := r.db.QueryContext(ctx, selectAttendance+attendanceFilter, f.DateFrom, f.DateTo, f.Status)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

// Create inserts a record. An unknown employee maps to common.ErrNotFound and a
// second record for the same day to common.ErrAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, in models.AttendanceCreate) (*models.Attendance, error) {
	query :=
		`WITH ins AS (
		   INSERT INTO attendance (employee_id, date, status, note)
		   VALUES ($1, $2::date, $3, $4)
		   RETURNING id, employee_id, date, status, note
		 )
		 SELECT ins.id, ins.employee_id, e.employee_id, e.full_name, to_char(ins.date, 'YYYY-MM-DD'), ins.status, ins.note
		 FROM ins
		 JOIN employees e ON e.id = ins.employee_id`

	a, err := scanAttendance(r.db.QueryRowContext(ctx, query, in.EmployeeID, in.Date, in.Status, in.Note))
	if err != nil {
		switch {
		case dbx.IsForeignKeyViolation(err):
			return nil, fmt.Errorf("employee %d: %w", in.EmployeeID, common.ErrNotFound)
		case dbx.IsUniqueViolation(err):
			return nil, fmt.Errorf("attendance for %s: %w", in.Date, common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in models.AttendanceUpdate) (*models.Attendance, error) {
	query :=
		`WITH upd AS (
		   UPDATE attendance SET status = $2, note = $3
		   WHERE id = $1
		   RETURNING id, employee_id, date, status, note
		 )
		 SELECT upd.id, upd.employee_id, e.employee_id, e.full_name, to_char(upd.date, 'YYYY-MM-DD'), upd.status, upd.note
		 FROM upd
		 JOIN employees e ON e.id = upd.employee_id`

	a, err := scanAttendance(r.db.QueryRowContext(ctx, query, id, in.Status, in.Note))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return a, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM attendance WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
