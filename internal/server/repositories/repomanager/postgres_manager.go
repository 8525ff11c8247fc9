// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/dbx"
	"github.com/dmitrijs2005/hrmsync/internal/server/migrations"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/attendance"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/dashboard"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/employees"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories bound to
// either the pool or a running transaction.
type PostgresRepositoryManager struct{}

func (m *PostgresRepositoryManager) Employees(db dbx.DBTX) employees.Repository {
	return employees.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Attendance(db dbx.DBTX) attendance.Repository {
	return attendance.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Dashboard(db dbx.DBTX) dashboard.Repository {
	return dashboard.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded employees/attendance schema.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}

func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}
