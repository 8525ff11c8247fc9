package services

import (
	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/store"
)

func (c *Coordinator) Employee(id string) (models.Employee, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.employeeIndex(id); i >= 0 {
		return c.employees[i], true
	}
	return models.Employee{}, false
}

func (c *Coordinator) AttendanceRecord(id string) (models.Attendance, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.attendanceIndex(id); i >= 0 {
		return c.attendance[i], true
	}
	return models.Attendance{}, false
}

func (c *Coordinator) LeaveRequest(id string) (models.LeaveRequest, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.leaveIndex(id); i >= 0 {
		return c.leaves[i], true
	}
	return models.LeaveRequest{}, false
}

func (c *Coordinator) AttendanceForEmployee(employeeID string) []models.Attendance {
	return c.selectAttendance(func(a models.Attendance) bool { return a.EmployeeID == employeeID })
}

func (c *Coordinator) AttendanceByDate(date string) []models.Attendance {
	return c.selectAttendance(func(a models.Attendance) bool { return a.Date == date })
}

// PresentDays counts the employee's records with status present.
func (c *Coordinator) PresentDays(employeeID string) int {
	return len(c.selectAttendance(func(a models.Attendance) bool {
		return a.EmployeeID == employeeID && a.Status == models.Present
	}))
}

func (c *Coordinator) selectAttendance(keep func(models.Attendance) bool) []models.Attendance {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []models.Attendance{}
	for _, a := range c.attendance {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

// Departments lists distinct department names in first-seen order.
func (c *Coordinator) Departments() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return departments(c.employees)
}

func departments(employees []models.Employee) []string {
	seen := make(map[string]struct{}, len(employees))
	out := []string{}
	for _, e := range employees {
		if _, ok := seen[e.Department]; ok {
			continue
		}
		seen[e.Department] = struct{}{}
		out = append(out, e.Department)
	}
	return out
}

func (c *Coordinator) Employees() []models.Employee {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.employees)
}

func (c *Coordinator) Attendance() []models.Attendance {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.attendance)
}

func (c *Coordinator) LeaveRequests() []models.LeaveRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.leaves)
}

func (c *Coordinator) Settings() models.Settings {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.settings
}

func (c *Coordinator) Notifications() []models.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return clone(c.notifications)
}

func (c *Coordinator) Status() models.ConnectivityStatus {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.status
}

// DashboardStats returns the last stats fetched from the backend, or nil.
func (c *Coordinator) DashboardStats() *models.DashboardStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats == nil {
		return nil
	}
	s := *c.stats
	return &s
}

func (c *Coordinator) Loading() models.Loading {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

func (c *Coordinator) Snapshot() store.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}
