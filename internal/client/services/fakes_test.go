package services

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/client"
	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/store"
)

type fakeClient struct {
	mu    sync.Mutex
	calls []string

	configured bool
	healthy    bool
	onHealth   func()

	employees  []models.Employee
	attendance []models.Attendance
	stats      *models.DashboardStats

	listEmployeesErr  error
	listAttendanceErr error
	statsErr          error
	mutationErr       error

	createdEmployee   *models.Employee
	createdAttendance *models.Attendance
	lastEmployees     []models.Employee
}

func (f *fakeClient) record(format string, args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeClient) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeClient) Configured() bool { return f.configured }

func (f *fakeClient) HealthCheck(ctx context.Context) bool {
	f.record("health")
	if f.onHealth != nil {
		f.onHealth()
	}
	return f.healthy
}

func (f *fakeClient) ListEmployees(ctx context.Context, _ client.EmployeeFilter) ([]models.Employee, error) {
	f.record("list employees")
	if f.listEmployeesErr != nil {
		return nil, f.listEmployeesErr
	}
	return clone(f.employees), nil
}

func (f *fakeClient) Departments(ctx context.Context) ([]string, error) {
	f.record("departments")
	return nil, nil
}

func (f *fakeClient) CreateEmployee(ctx context.Context, e models.Employee) (*models.Employee, error) {
	f.record("create employee %s", e.ID)
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return f.createdEmployee, nil
}

func (f *fakeClient) UpdateEmployee(ctx context.Context, remoteID string, e models.Employee) (*models.Employee, error) {
	f.record("update employee %s", remoteID)
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &e, nil
}

func (f *fakeClient) DeleteEmployee(ctx context.Context, remoteID string) (bool, error) {
	f.record("delete employee %s", remoteID)
	if f.mutationErr != nil {
		return false, f.mutationErr
	}
	return true, nil
}

func (f *fakeClient) ListAttendance(ctx context.Context, _ client.AttendanceFilter) ([]models.Attendance, error) {
	f.record("list attendance")
	if f.listAttendanceErr != nil {
		return nil, f.listAttendanceErr
	}
	return clone(f.attendance), nil
}

func (f *fakeClient) CreateAttendance(ctx context.Context, rec models.Attendance, employees []models.Employee) (*models.Attendance, error) {
	f.record("create attendance %s %s", rec.EmployeeID, rec.Date)
	f.mu.Lock()
	f.lastEmployees = employees
	f.mu.Unlock()
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return f.createdAttendance, nil
}

func (f *fakeClient) UpdateAttendance(ctx context.Context, remoteID string, rec models.Attendance) (*models.Attendance, error) {
	f.record("update attendance %s", remoteID)
	if f.mutationErr != nil {
		return nil, f.mutationErr
	}
	return &rec, nil
}

func (f *fakeClient) DeleteAttendance(ctx context.Context, remoteID string) (bool, error) {
	f.record("delete attendance %s", remoteID)
	if f.mutationErr != nil {
		return false, f.mutationErr
	}
	return true, nil
}

func (f *fakeClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	f.record("stats")
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return f.stats, nil
}

var _ client.Client = (*fakeClient)(nil)

type fakePersister struct {
	mu sync.Mutex

	employees  []models.Employee
	attendance []models.Attendance
	leaves     []models.LeaveRequest
	settings   *models.Settings

	saves    map[string]int
	restores []store.Backup
	resets   int
	closed bool
	err    error
}

func newFakePersister() *fakePersister {
	return &fakePersister{saves: map[string]int{}}
}

func (p *fakePersister) SaveEmployees(ctx context.Context, v []models.Employee) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves["employees"]++
	p.employees = v
	return p.err
}

func (p *fakePersister) SaveAttendance(ctx context.Context, v []models.Attendance) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves["attendance"]++
	p.attendance = v
	return p.err
}

func (p *fakePersister) SaveLeaves(ctx context.Context, v []models.LeaveRequest) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves["leaves"]++
	p.leaves = v
	return p.err
}

func (p *fakePersister) SaveSettings(ctx context.Context, v models.Settings) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves["settings"]++
	p.settings = &v
	return p.err
}

func (p *fakePersister) Restore(ctx context.Context, b store.Backup) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.restores = append(p.restores, b)
	return p.err
}

func (p *fakePersister) Reset(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resets++
	return p.err
}

func (p *fakePersister) Close() error {
	p.closed = true
	return nil
}

var fixedNow = time.Date(2026, 2, 27, 14, 5, 0, 0, time.UTC)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

type fixture struct {
	c       *Coordinator
	remote  *fakeClient
	persist *fakePersister
}

func newFixture(t *testing.T, remote *fakeClient, opts ...Option) fixture {
	t.Helper()
	if remote == nil {
		remote = &fakeClient{}
	}
	p := newFakePersister()
	opts = append([]Option{WithClock(func() time.Time { return fixedNow }), WithIDGenerator(sequentialIDs())}, opts...)
	return fixture{
		c:       NewCoordinator(store.DefaultSnapshot(), remote, p, nil, opts...),
		remote:  remote,
		persist: p,
	}
}

// connectedFixture starts a coordinator against a healthy fake backend whose
// hydration returns the default data with remote ids attached.
func connectedFixture(t *testing.T) fixture {
	t.Helper()
	emps := store.DefaultEmployees()
	for i := range emps {
		emps[i].RemoteID = fmt.Sprint(i + 1)
	}
	atts := store.DefaultAttendance()
	for i := range atts {
		atts[i].RemoteID = atts[i].ID
	}

	f := newFixture(t, &fakeClient{
		configured: true,
		healthy:    true,
		employees:  emps,
		attendance: atts,
		stats:      &models.DashboardStats{TotalEmployees: 5, TotalDepartments: 4, PresentToday: 3, AbsentToday: 1, LateToday: 1, AttendanceRateToday: 60.4},
	})
	f.c.Start(context.Background())
	f.remote.mu.Lock()
	f.remote.calls = nil
	f.remote.mu.Unlock()
	return f
}
