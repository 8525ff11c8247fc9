package employees

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

const selectEmployee = `SELECT e.id, e.employee_id, e.full_name, e.email, e.department, e.position, e.phone, e.created_at,
		COUNT(a.id) FILTER (WHERE a.status = 'Present') AS total_present_days
	 FROM employees e
	 LEFT JOIN attendance a ON a.employee_id = e.id`

type scanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row scanner) (*models.Employee, error) {
	e := &models.Employee{}
	err := row.Scan(&e.ID, &e.EmployeeID, &e.FullName, &e.Email, &e.Department,
		&e.Position, &e.Phone, &e.CreatedAt, &e.TotalPresentDays)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// List returns employees ordered by id. Search matches the name, email or
// code case-insensitively.
func (r *PostgresRepository) List(ctx context.Context, f models.EmployeeFilter) ([]models.Employee, error) {
	query := selectEmployee + `
	 WHERE ($1 = '' OR e.full_name ILIKE '%' || $1 || '%' OR e.email ILIKE '%' || $1 || '%' OR e.employee_id ILIKE '%' || $1 || '%')
	   AND ($2 = '' OR e.department = $2)
	 GROUP BY e.id
	 ORDER BY e.id`

	rows, err := r.db.QueryContext(ctx, query, f.Search, f.Department)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]models.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Departments(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT department FROM employees ORDER BY department`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return out, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id int64) (*models.Employee, error) {
	query := selectEmployee + `
	 WHERE e.id = $1
	 GROUP BY e.id`

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	query :=
		`INSERT INTO employees (employee_id, full_name, email, department, position, phone)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`

	e := &models.Employee{
		EmployeeID: in.EmployeeID,
		FullName:   in.FullName,
		Email:      in.Email,
		Department: in.Department,
		Position:   in.Position,
		Phone:      in.Phone,
	}
	err := r.db.QueryRowContext(ctx, query,
		in.EmployeeID, in.FullName, in.Email, in.Department, in.Position, in.Phone).Scan(&e.ID, &e.CreatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, fmt.Errorf("employee %s: %w", in.EmployeeID, common.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error) {
	query :=
		`UPDATE employees
		 SET full_name = $2, email = $3, department = $4, position = $5, phone = $6
		 WHERE id = $1
		 RETURNING id, employee_id, full_name, email, department, position, phone, created_at,
		   (SELECT COUNT(*) FROM attendance a WHERE a.employee_id = employees.id AND a.status = 'Present')`

	e, err := scanEmployee(r.db.QueryRowContext(ctx, query,
		id, in.FullName, in.Email, in.Department, in.Position, in.Phone))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

// Delete removes the employee; attendance goes with it via ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = $1`, id)
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
