package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/common"
	"github.com/dmitrijs2005/hrmsync/internal/logging"
	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmployees struct {
	lastFilter models.EmployeeFilter
	lastInput  models.EmployeeInput
	lastID     int64
	err        error
}

func (f *fakeEmployees) List(ctx context.Context, flt models.EmployeeFilter) ([]models.Employee, error) {
	f.lastFilter = flt
	if f.err != nil {
		return nil, f.err
	}
	return []models.Employee{{ID: 1, EmployeeID: "EMP001", FullName: "Jane Doe", TotalPresentDays: 2}}, nil
}

func (f *fakeEmployees) Departments(ctx context.Context) ([]string, error) {
	return []string{"Engineering", "HR"}, f.err
}

func (f *fakeEmployees) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	f.lastInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Employee{ID: 7, EmployeeID: in.EmployeeID, FullName: in.FullName}, nil
}

func (f *fakeEmployees) Update(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error) {
	f.lastID, f.lastInput = id, in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Employee{ID: id, FullName: in.FullName}, nil
}

func (f *fakeEmployees) Delete(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

type fakeAttendance struct {
	lastFilter models.AttendanceFilter
	lastCreate models.AttendanceCreate
	lastUpdate models.AttendanceUpdate
	lastID     int64
	err        error
}

func (f *fakeAttendance) List(ctx context.Context, flt models.AttendanceFilter) ([]models.Attendance, error) {
	f.lastFilter = flt
	return []models.Attendance{}, f.err
}

func (f *fakeAttendance) Mark(ctx context.Context, in models.AttendanceCreate) (*models.Attendance, error) {
	f.lastCreate = in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Attendance{ID: 77, EmployeeID: in.EmployeeID, Date: in.Date, Status: in.Status}, nil
}

func (f *fakeAttendance) Update(ctx context.Context, id int64, in models.AttendanceUpdate) (*models.Attendance, error) {
	f.lastID, f.lastUpdate = id, in
	if f.err != nil {
		return nil, f.err
	}
	return &models.Attendance{ID: id, Status: in.Status}, nil
}

func (f *fakeAttendance) Delete(ctx context.Context, id int64) error {
	f.lastID = id
	return f.err
}

type fakeDashboard struct {
	err error
}

func (f *fakeDashboard) Stats(ctx context.Context) (*models.DashboardStats, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.DashboardStats{TotalEmployees: 5, PresentToday: 3, AttendanceRateToday: 60}, nil
}

func newTestServer() (*Server, *fakeEmployees, *fakeAttendance, *fakeDashboard) {
	es, as, ds := &fakeEmployees{}, &fakeAttendance{}, &fakeDashboard{}
	return NewServer("127.0.0.1:0", logging.Nop(), es, as, ds), es, as, ds
}

func do(t *testing.T, s *Server, method, target, body string) (int, string) {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}

func TestHealth(t *testing.T) {
	s, _, _, _ := newTestServer()
	code, body := do(t, s, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)
}

func TestEmployees_ListPassesQuery(t *testing.T) {
	s, es, _, _ := newTestServer()

	code, body := do(t, s, http.MethodGet, "/api/employees?search=jane&department=HR", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, models.EmployeeFilter{Search: "jane", Department: "HR"}, es.lastFilter)

	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "EMP001", got[0]["employee_id"])
	assert.EqualValues(t, 2, got[0]["total_present_days"])
}

func TestEmployees_Departments(t *testing.T) {
	s, _, _, _ := newTestServer()
	code, body := do(t, s, http.MethodGet, "/api/employees/departments", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `["Engineering","HR"]`, body)
}

func TestEmployees_Create(t *testing.T) {
	s, es, _, _ := newTestServer()

	code, body := do(t, s, http.MethodPost, "/api/employees",
		`{"employee_id":"EMP100","full_name":"Jane Doe","email":"jane@x.io","department":"HR","position":null}`)
	require.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "EMP100", es.lastInput.EmployeeID)
	assert.Nil(t, es.lastInput.Position)
	assert.Contains(t, body, `"id":7`)
}

func TestEmployees_UpdateAndDelete(t *testing.T) {
	s, es, _, _ := newTestServer()

	code, _ := do(t, s, http.MethodPut, "/api/employees/21", `{"full_name":"New Name"}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(21), es.lastID)
	assert.Equal(t, "New Name", es.lastInput.FullName)

	code, body := do(t, s, http.MethodDelete, "/api/employees/21", "")
	assert.Equal(t, http.StatusNoContent, code)
	assert.Empty(t, body)
}

func TestErrors_MapToDetail(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		detail string
	}{
		{"validation", fmt.Errorf("%w: full_name is required", common.ErrValidation), http.StatusUnprocessableEntity, "validation error: full_name is required"},
		{"missing", fmt.Errorf("error updating employee 9: %w", common.ErrNotFound), http.StatusNotFound, "error updating employee 9: not found"},
		{"duplicate", fmt.Errorf("employee EMP001: %w", common.ErrAlreadyExists), http.StatusConflict, "employee EMP001: already exists"},
		{"internal", fmt.Errorf("db error: connection refused"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, es, _, _ := newTestServer()
			es.err = tt.err

			code, body := do(t, s, http.MethodPut, "/api/employees/9", `{"full_name":"x"}`)
			assert.Equal(t, tt.status, code)

			var got map[string]string
			require.NoError(t, json.Unmarshal([]byte(body), &got))
			assert.Equal(t, tt.detail, got["detail"])
		})
	}
}

func TestBadRequests(t *testing.T) {
	s, _, _, _ := newTestServer()

	code, body := do(t, s, http.MethodDelete, "/api/employees/abc", "")
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body, "positive integer")

	code, body = do(t, s, http.MethodPost, "/api/attendance", `{"employee_id":`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Contains(t, body, "malformed request body")
}

func TestAttendance_Routes(t *testing.T) {
	s, _, as, _ := newTestServer()

	code, body := do(t, s, http.MethodGet, "/api/attendance?date_from=2026-02-01&date_to=2026-02-28&status=Half%20Day", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `[]`, body)
	assert.Equal(t, models.AttendanceFilter{DateFrom: "2026-02-01", DateTo: "2026-02-28", Status: "Half Day"}, as.lastFilter)

	code, _ = do(t, s, http.MethodPost, "/api/attendance", `{"employee_id":11,"date":"2026-02-28","status":"Late","note":"bus"}`)
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, int64(11), as.lastCreate.EmployeeID)
	assert.Equal(t, "bus", *as.lastCreate.Note)

	code, _ = do(t, s, http.MethodPut, "/api/attendance/77", `{"status":"Absent","note":null}`)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, int64(77), as.lastID)
	assert.Nil(t, as.lastUpdate.Note)

	code, _ = do(t, s, http.MethodDelete, "/api/attendance/77", "")
	assert.Equal(t, http.StatusNoContent, code)

	as.err = common.ErrNotFound
	code, _ = do(t, s, http.MethodDelete, "/api/attendance/78", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDashboardStats(t *testing.T) {
	s, _, _, ds := newTestServer()

	code, body := do(t, s, http.MethodGet, "/api/dashboard/stats", "")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"total_employees":5,"total_departments":0,"present_today":3,"absent_today":0,"late_today":0,"attendance_rate_today":60}`, body)

	ds.err = fmt.Errorf("boom")
	code, _ = do(t, s, http.MethodGet, "/api/dashboard/stats", "")
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	s, _, _, _ := newTestServer()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case err := <-done:
		t.Fatalf("server exited too early: %v", err)
	case <-time.After(150 * time.Millisecond):
	}

	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop after context cancel")
	}
}

func TestRun_ReturnsErrorOnBadAddress(t *testing.T) {
	s := NewServer("127.0.0.1:99999", logging.Nop(), &fakeEmployees{}, &fakeAttendance{}, &fakeDashboard{})
	require.Error(t, s.Run(context.Background()))
}
