package services

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hrmsync/internal/common"
	"github.com/dmitrijs2005/hrmsync/internal/dbx"
	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/attendance"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/dashboard"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/employees"
	"github.com/stretchr/testify/require"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

type fakeEmployeesRepo struct {
	items   map[int64]models.Employee
	created []models.EmployeeInput
	updated []models.EmployeeInput
	lastF   models.EmployeeFilter
	err     error
}

func newFakeEmployees(es ...models.Employee) *fakeEmployeesRepo {
	f := &fakeEmployeesRepo{items: map[int64]models.Employee{}}
	for _, e := range es {
		f.items[e.ID] = e
	}
	return f
}

func (f *fakeEmployeesRepo) List(ctx context.Context, flt models.EmployeeFilter) ([]models.Employee, error) {
	f.lastF = flt
	if f.err != nil {
		return nil, f.err
	}
	out := make([]models.Employee, 0, len(f.items))
	for _, e := range f.items {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEmployeesRepo) Departments(ctx context.Context) ([]string, error) {
	return []string{"Engineering", "HR"}, f.err
}

func (f *fakeEmployeesRepo) Get(ctx context.Context, id int64) (*models.Employee, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return &e, nil
}

func (f *fakeEmployeesRepo) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, in)
	e := models.Employee{ID: int64(len(f.items) + 1), EmployeeID: in.EmployeeID, FullName: in.FullName,
		Email: in.Email, Department: in.Department, Position: in.Position, Phone: in.Phone}
	f.items[e.ID] = e
	return &e, nil
}

func (f *fakeEmployeesRepo) Update(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error) {
	e, ok := f.items[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	f.updated = append(f.updated, in)
	e.FullName, e.Email, e.Department = in.FullName, in.Email, in.Department
	f.items[id] = e
	return &e, nil
}

func (f *fakeEmployeesRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.items, id)
	return nil
}

type fakeAttendanceRepo struct {
	created   []models.AttendanceCreate
	lastF     models.AttendanceFilter
	createErr error
	missing   bool
}

func (f *fakeAttendanceRepo) List(ctx context.Context, flt models.AttendanceFilter) ([]models.Attendance, error) {
	f.lastF = flt
	return []models.Attendance{}, nil
}

func (f *fakeAttendanceRepo) Create(ctx context.Context, in models.AttendanceCreate) (*models.Attendance, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.created = append(f.created, in)
	return &models.Attendance{ID: int64(len(f.created)), EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status, Note: in.Note}, nil
}

func (f *fakeAttendanceRepo) Update(ctx context.Context, id int64, in models.AttendanceUpdate) (*models.Attendance, error) {
	if f.missing {
		return nil, common.ErrNotFound
	}
	return &models.Attendance{ID: id, Status: in.Status, Note: in.Note}, nil
}

func (f *fakeAttendanceRepo) Delete(ctx context.Context, id int64) error {
	if f.missing {
		return common.ErrNotFound
	}
	return nil
}

type fakeDashboardRepo struct {
	counts *dashboard.Counts
	err    error
	day    time.Time
}

func (f *fakeDashboardRepo) Counts(ctx context.Context, day time.Time) (*dashboard.Counts, error) {
	f.day = day
	return f.counts, f.err
}

type fakeManager struct {
	employees  *fakeEmployeesRepo
	attendance *fakeAttendanceRepo
	dashboard  *fakeDashboardRepo
}

func (m *fakeManager) RunMigrations(context.Context, *sql.DB) error { return nil }

func (m *fakeManager) Employees(dbx.DBTX) employees.Repository { return m.employees }

func (m *fakeManager) Attendance(dbx.DBTX) attendance.Repository { return m.attendance }

func (m *fakeManager) Dashboard(dbx.DBTX) dashboard.Repository { return m.dashboard }
