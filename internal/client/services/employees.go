package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

// AddEmployee appends e locally with status active, generating an EMP code
// when e.ID is empty, and mirrors the create when connected. A successful
// mirror stamps the backend id on the local record and reloads employees and
// stats.
func (c *Coordinator) AddEmployee(ctx context.Context, e models.Employee) (models.Employee, Mirror, error) {
	c.mu.Lock()
	if e.ID == "" {
		e.ID = c.generateEmployeeID()
	}
	e.Status = models.EmployeeActive
	if e.Position == "" {
		e.Position = e.Role
	}
	if e.Role == "" {
		e.Role = e.Position
	}

	c.employees = append(c.employees, e)
	err := c.persister.SaveEmployees(ctx, clone(c.employees))
	c.addNotificationLocked(fmt.Sprintf("New employee %s added", e.ID))
	connected := c.connected()
	c.mu.Unlock()

	if err != nil {
		return e, skipped, fmt.Errorf("save employees: %w", err)
	}
	if !connected {
		return e, skipped, nil
	}

	created, err := c.remote.CreateEmployee(ctx, e)
	if err != nil {
		return e, c.mirrorFailed(ctx, "create employee", err), nil
	}
	if created == nil {
		return e, skipped, nil
	}

	e.RemoteID = created.RemoteID
	c.mu.Lock()
	if i := c.employeeIndex(e.ID); i >= 0 {
		c.employees[i].RemoteID = created.RemoteID
		err = c.persister.SaveEmployees(ctx, clone(c.employees))
	}
	c.mu.Unlock()
	if err != nil {
		return e, Mirror{Status: MirrorApplied}, fmt.Errorf("save employees: %w", err)
	}

	c.refetch(ctx, refetchEmployees|refetchStats)
	return e, Mirror{Status: MirrorApplied}, nil
}

// UpdateEmployee applies patch to the employee with the given code.
func (c *Coordinator) UpdateEmployee(ctx context.Context, id string, patch models.EmployeePatch) (models.Employee, Mirror, error) {
	c.mu.Lock()
	i := c.employeeIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return models.Employee{}, skipped, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}

	e := patch.Apply(c.employees[i])
	c.employees[i] = e
	err := c.persister.SaveEmployees(ctx, clone(c.employees))
	connected := c.connected()
	c.mu.Unlock()

	if err != nil {
		return e, skipped, fmt.Errorf("save employees: %w", err)
	}
	if !connected || !e.Mirrored() {
		return e, skipped, nil
	}

	updated, err := c.remote.UpdateEmployee(ctx, e.RemoteID, e)
	if err != nil {
		return e, c.mirrorFailed(ctx, "update employee", err), nil
	}
	if updated == nil {
		return e, skipped, nil
	}

	c.refetch(ctx, refetchEmployees|refetchStats)
	return e, Mirror{Status: MirrorApplied}, nil
}

// DeleteEmployee removes the employee and every attendance record that
// references it.
func (c *Coordinator) DeleteEmployee(ctx context.Context, id string) (Mirror, error) {
	c.mu.Lock()
	i := c.employeeIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return skipped, fmt.Errorf("employee %s: %w", id, ErrNotFound)
	}

	e := c.employees[i]
	c.employees = slices.Delete(c.employees, i, i+1)
	c.attendance = slices.DeleteFunc(c.attendance, func(a models.Attendance) bool {
		return a.EmployeeID == id
	})

	err := c.persister.SaveEmployees(ctx, clone(c.employees))
	if err == nil {
		err = c.persister.SaveAttendance(ctx, clone(c.attendance))
	}
	c.addNotificationLocked(fmt.Sprintf("Employee %s removed", id))
	connected := c.connected()
	c.mu.Unlock()

	if err != nil {
		return skipped, fmt.Errorf("save after delete: %w", err)
	}
	if !connected || !e.Mirrored() {
		return skipped, nil
	}

	ok, err := c.remote.DeleteEmployee(ctx, e.RemoteID)
	if err != nil {
		return c.mirrorFailed(ctx, "delete employee", err), nil
	}
	if !ok {
		return skipped, nil
	}

	c.refetch(ctx, refetchEmployees|refetchAttendance|refetchStats)
	return Mirror{Status: MirrorApplied}, nil
}

func (c *Coordinator) employeeIndex(id string) int {
	return slices.IndexFunc(c.employees, func(e models.Employee) bool { return e.ID == id })
}

// generateEmployeeID returns "EMP" followed by four random digits, unique
// among the current employees.
func (c *Coordinator) generateEmployeeID() string {
	for {
		id := fmt.Sprintf("EMP%d", 1000+c.intn(9000))
		if c.employeeIndex(id) < 0 {
			return id
		}
	}
}
