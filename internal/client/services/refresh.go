package services

import (
	"context"

	"github.com/dmitrijs2005/hrmsync/internal/client/client"
	"golang.org/x/sync/errgroup"
)

type refetchSet int

const (
	refetchEmployees refetchSet = 1 << iota
	refetchAttendance
	refetchStats
)

// refetch reloads the selected collections concurrently. Each result is
// applied on its own; failures are logged and leave local state untouched.
func (c *Coordinator) refetch(ctx context.Context, set refetchSet) {
	var g errgroup.Group

	if set&refetchEmployees != 0 {
		g.Go(func() error { return c.RefreshEmployees(ctx) })
	}
	if set&refetchAttendance != 0 {
		g.Go(func() error { return c.RefreshAttendance(ctx) })
	}
	if set&refetchStats != 0 {
		g.Go(func() error { return c.RefreshDashboard(ctx) })
	}

	_ = g.Wait()
}

// RefreshEmployees replaces the employee collection with the backend's.
func (c *Coordinator) RefreshEmployees(ctx context.Context) error {
	c.mu.Lock()
	c.loading.Employees = true
	c.mu.Unlock()

	emps, err := c.remote.ListEmployees(ctx, client.EmployeeFilter{})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading.Employees = false

	if err != nil {
		c.logger.Warn(ctx, "refresh failed", "op", "list employees", "error", err)
		return err
	}
	if emps == nil {
		return nil
	}

	c.employees = emps
	return c.persister.SaveEmployees(ctx, clone(c.employees))
}

// RefreshAttendance replaces the attendance collection with the backend's.
func (c *Coordinator) RefreshAttendance(ctx context.Context) error {
	c.mu.Lock()
	c.loading.Attendance = true
	c.mu.Unlock()

	recs, err := c.remote.ListAttendance(ctx, client.AttendanceFilter{})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading.Attendance = false

	if err != nil {
		c.logger.Warn(ctx, "refresh failed", "op", "list attendance", "error", err)
		return err
	}
	if recs == nil {
		return nil
	}

	c.attendance = recs
	return c.persister.SaveAttendance(ctx, clone(c.attendance))
}

func (c *Coordinator) RefreshDashboard(ctx context.Context) error {
	stats, err := c.remote.DashboardStats(ctx)
	if err != nil {
		c.logger.Warn(ctx, "refresh failed", "op", "dashboard stats", "error", err)
		return err
	}
	if stats == nil {
		return nil
	}

	c.mu.Lock()
	c.stats = stats
	c.mu.Unlock()
	return nil
}
