package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteAttendance(t *testing.T) {
	employees := []models.Employee{
		{ID: "EMP001", FirstName: "Jane", LastName: "Doe", Department: "Engineering"},
		{ID: "EMP002", FirstName: "Max", Department: "HR"},
	}
	attendance := []models.Attendance{
		{ID: "1", EmployeeID: "EMP001", Date: "2026-02-25", Status: models.Present},
		{ID: "2", EmployeeID: "EMP001", Date: "2026-02-27", Status: models.Late, Note: "Overslept"},
		{ID: "3", EmployeeID: "EMP002", Date: "2026-02-26", Status: models.HalfDay, CheckIn: "09:00", CheckOut: "13:00"},
		{ID: "4", EmployeeID: "EMP404", EmployeeName: "Gone Person", Date: "2026-02-24", Status: models.Absent},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, employees, attendance))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{AttendanceSheet, SummarySheet}, f.GetSheetList())

	rows, err := f.GetRows(AttendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, attendanceHeaders, rows[0])
	assert.Equal(t, []string{"2026-02-27", "EMP001", "Jane Doe", "Engineering", "late", "", "", "Overslept"}, rows[1])
	assert.Equal(t, []string{"2026-02-26", "EMP002", "Max", "HR", "half-day", "09:00", "13:00"}, rows[2])
	assert.Equal(t, "Gone Person", rows[4][2])

	summary, err := f.GetRows(SummarySheet)
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"EMP001", "Jane Doe", "Engineering", "1", "0", "1", "0"}, summary[1])
	assert.Equal(t, []string{"EMP002", "Max", "HR", "0", "0", "0", "1"}, summary[2])
}

func TestWriteAttendance_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAttendance(&buf, nil, nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(AttendanceSheet)
	require.NoError(t, err)
	require.Len(t, rows, 1)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriteAttendance_WriterError(t *testing.T) {
	err := WriteAttendance(failingWriter{}, nil, nil)
	require.ErrorContains(t, err, "write workbook")
}
