package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/hrmsync/internal/dbx"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/attendance"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/dashboard"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/employees"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Employees(db dbx.DBTX) employees.Repository
	Attendance(db dbx.DBTX) attendance.Repository
	Dashboard(db dbx.DBTX) dashboard.Repository
}
