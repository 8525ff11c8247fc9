package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Counts(ctx context.Context, day time.Time) (*Counts, error) {
	query :=
		`SELECT
		   (SELECT COUNT(*) FROM employees),
		   (SELECT COUNT(DISTINCT department) FROM employees),
		   COUNT(*) FILTER (WHERE status = 'Present'),
		   COUNT(*) FILTER (WHERE status = 'Absent'),
		   COUNT(*) FILTER (WHERE status = 'Late')
		 FROM attendance
		 WHERE date = $1::date`

	c := &Counts{}
	err := r.db.QueryRowContext(ctx, query, day.Format(time.DateOnly)).
		Scan(&c.Employees, &c.Departments, &c.Present, &c.Absent, &c.Late)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}
