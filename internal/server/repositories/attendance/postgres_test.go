package attendance

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/hrmsync/internal/common"
	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var attendanceColumns = []string{"id", "employee_id", "employee_code", "employee_name", "date", "status", "note"}

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func TestList(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	rows := sqlmock.NewRows(attendanceColumns).
		AddRow(int64(5), int64(11), "EMP001", "Jane Doe", "2026-02-27", "Half Day", "dentist").
		AddRow(int64(4), int64(12), "EMP002", "John Roe", "2026-02-26", "Half Day", nil)
	mock.ExpectQuery(`(?s)^SELECT .+ FROM attendance a\s+JOIN employees e .+NULLIF\(\$1, ''\)::date.+ORDER BY a\.date DESC, a\.id DESC$`).
		WithArgs("2026-02-01", "", "Half Day").
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), models.AttendanceFilter{DateFrom: "2026-02-01", Status: "Half Day"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "EMP001", got[0].EmployeeCode)
	assert.Equal(t, "dentist", *got[0].Note)
	assert.Nil(t, got[1].Note)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestList_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("db down"))

	_, err := repo.List(context.Background(), models.AttendanceFilter{})
	require.ErrorContains(t, err, "db error")
}

func TestCreate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	note := "bus"
	mock.ExpectQuery(`(?s)^WITH ins AS \(\s+INSERT INTO attendance \(employee_id, date, status, note\)`).
		WithArgs(int64(11), "2026-02-28", "Late", &note).
		WillReturnRows(sqlmock.NewRows(attendanceColumns).
			AddRow(int64(77), int64(11), "EMP001", "Jane Doe", "2026-02-28", "Late", "bus"))

	got, err := repo.Create(context.Background(), models.AttendanceCreate{EmployeeID: 11, Date: "2026-02-28", Status: "Late", Note: &note})
	require.NoError(t, err)
	assert.Equal(t, int64(77), got.ID)
	assert.Equal(t, "Jane Doe", got.EmployeeName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name string
		code string
		want error
	}{
		{"unknown employee", "23503", common.ErrNotFound},
		{"same day twice", "23505", common.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newRepoWithMock(t)
			mock.ExpectQuery(`INSERT`).WillReturnError(&pgconn.PgError{Code: tt.code})

			_, err := repo.Create(context.Background(), models.AttendanceCreate{EmployeeID: 1, Date: "2026-02-28", Status: "Present"})
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUpdate(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectQuery(`(?s)^WITH upd AS \(\s+UPDATE attendance SET status = \$2, note = \$3\s+WHERE id = \$1`).
		WithArgs(int64(77), "Absent", nil).
		WillReturnRows(sqlmock.NewRows(attendanceColumns).
			AddRow(int64(77), int64(11), "EMP001", "Jane Doe", "2026-02-28", "Absent", nil))

	got, err := repo.Update(context.Background(), 77, models.AttendanceUpdate{Status: "Absent"})
	require.NoError(t, err)
	assert.Equal(t, "Absent", got.Status)

	mock.ExpectQuery(`UPDATE`).WillReturnError(sql.ErrNoRows)
	_, err = repo.Update(context.Background(), 78, models.AttendanceUpdate{Status: "Absent"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestDelete(t *testing.T) {
	repo, mock := newRepoWithMock(t)

	mock.ExpectExec(`^DELETE FROM attendance WHERE id = \$1$`).WithArgs(int64(77)).WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.Delete(context.Background(), 77))

	mock.ExpectExec(`DELETE`).WithArgs(int64(78)).WillReturnResult(sqlmock.NewResult(0, 0))
	require.ErrorIs(t, repo.Delete(context.Background(), 78), common.ErrNotFound)
}
