package client

import (
	"context"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

// Client is the backend contract used by the sync coordinator.
//
// Every method returns an empty result (nil, false) without a network call
// when no endpoint is configured, and likewise when an update or delete is
// given an empty remote id.
type Client interface {
	Configured() bool
	HealthCheck(ctx context.Context) bool

	ListEmployees(ctx context.Context, f EmployeeFilter) ([]models.Employee, error)
	Departments(ctx context.Context) ([]string, error)
	CreateEmployee(ctx context.Context, e models.Employee) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, remoteID string, e models.Employee) (*models.Employee, error)
	DeleteEmployee(ctx context.Context, remoteID string) (bool, error)

	ListAttendance(ctx context.Context, f AttendanceFilter) ([]models.Attendance, error)
	CreateAttendance(ctx context.Context, rec models.Attendance, employees []models.Employee) (*models.Attendance, error)
	UpdateAttendance(ctx context.Context, remoteID string, rec models.Attendance) (*models.Attendance, error)
	DeleteAttendance(ctx context.Context, remoteID string) (bool, error)

	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

var _ Client = (*HTTPClient)(nil)
