package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/normalize"
)

type AttendanceFilter struct {
	DateFrom string
	DateTo   string
	Status   models.AttendanceStatus
}

func (f AttendanceFilter) values() url.Values {
	q := url.Values{}
	setParam(q, "date_from", f.DateFrom)
	setParam(q, "date_to", f.DateTo)
	if f.Status != "" {
		q.Set("status", normalize.StatusToRemote(f.Status))
	}
	return q
}

func (c *HTTPClient) ListAttendance(ctx context.Context, f AttendanceFilter) ([]models.Attendance, error) {
	var remote []normalize.RemoteAttendance
	found, err := c.do(ctx, http.MethodGet, "/api/attendance", f.values(), nil, &remote)
	if err != nil || !found {
		return nil, err
	}

	out := make([]models.Attendance, 0, len(remote))
	for _, r := range remote {
		out = append(out, normalize.AttendanceFromRemote(r))
	}
	return out, nil
}

// CreateAttendance mirrors a new record. The backend addresses employees by
// their primary key, so rec.EmployeeID is looked up in employees; when no
// mirrored employee matches, nothing is sent.
func (c *HTTPClient) CreateAttendance(ctx context.Context, rec models.Attendance, employees []models.Employee) (*models.Attendance, error) {
	if !c.Configured() {
		return nil, nil
	}

	var remoteEmployeeID string
	for _, e := range employees {
		if e.ID == rec.EmployeeID {
			remoteEmployeeID = e.RemoteID
			break
		}
	}
	if remoteEmployeeID == "" {
		return nil, nil
	}

	return c.attendanceCall(ctx, http.MethodPost, "/api/attendance", normalize.AttendanceToCreate(rec, remoteEmployeeID))
}

func (c *HTTPClient) UpdateAttendance(ctx context.Context, remoteID string, rec models.Attendance) (*models.Attendance, error) {
	if remoteID == "" {
		return nil, nil
	}
	return c.attendanceCall(ctx, http.MethodPut, "/api/attendance/"+url.PathEscape(remoteID), normalize.AttendanceToUpdate(rec))
}

func (c *HTTPClient) DeleteAttendance(ctx context.Context, remoteID string) (bool, error) {
	if remoteID == "" || !c.Configured() {
		return false, nil
	}
	if _, err := c.do(ctx, http.MethodDelete, "/api/attendance/"+url.PathEscape(remoteID), nil, nil, nil); err != nil {
		return false, err
	}
	return true, nil
}

func (c *HTTPClient) attendanceCall(ctx context.Context, method, path string, body any) (*models.Attendance, error) {
	var r normalize.RemoteAttendance
	found, err := c.do(ctx, method, path, nil, body, &r)
	if err != nil || !found {
		return nil, err
	}
	a := normalize.AttendanceFromRemote(r)
	return &a, nil
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var s models.DashboardStats
	found, err := c.do(ctx, http.MethodGet, "/api/dashboard/stats", nil, nil, &s)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}
