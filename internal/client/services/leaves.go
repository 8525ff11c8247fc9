package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

// AddLeaveRequest files a new pending request. Leave requests are local only.
func (c *Coordinator) AddLeaveRequest(ctx context.Context, req models.LeaveRequest) (models.LeaveRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	req.ID = c.newID()
	req.Status = models.LeavePending
	if req.AppliedDate == "" {
		req.AppliedDate = c.today()
	}

	c.leaves = append(c.leaves, req)
	if err := c.persister.SaveLeaves(ctx, clone(c.leaves)); err != nil {
		return req, fmt.Errorf("save leaves: %w", err)
	}

	if i := c.employeeIndex(req.EmployeeID); i >= 0 {
		c.addNotificationLocked("Leave request from " + c.employees[i].FullName())
	}
	return req, nil
}

func (c *Coordinator) UpdateLeaveRequest(ctx context.Context, id string, patch models.LeavePatch) (models.LeaveRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.leaveIndex(id)
	if i < 0 {
		return models.LeaveRequest{}, fmt.Errorf("leave request %s: %w", id, ErrNotFound)
	}

	c.leaves[i] = patch.Apply(c.leaves[i])
	if err := c.persister.SaveLeaves(ctx, clone(c.leaves)); err != nil {
		return c.leaves[i], fmt.Errorf("save leaves: %w", err)
	}
	return c.leaves[i], nil
}

// SetLeaveStatus is a shorthand for approving or rejecting a request.
func (c *Coordinator) SetLeaveStatus(ctx context.Context, id string, status models.LeaveStatus) (models.LeaveRequest, error) {
	return c.UpdateLeaveRequest(ctx, id, models.LeavePatch{Status: &status})
}

func (c *Coordinator) DeleteLeaveRequest(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.leaveIndex(id)
	if i < 0 {
		return fmt.Errorf("leave request %s: %w", id, ErrNotFound)
	}

	c.leaves = slices.Delete(c.leaves, i, i+1)
	if err := c.persister.SaveLeaves(ctx, clone(c.leaves)); err != nil {
		return fmt.Errorf("save leaves: %w", err)
	}
	return nil
}

func (c *Coordinator) UpdateSettings(ctx context.Context, patch models.SettingsPatch) (models.Settings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.settings = patch.Apply(c.settings)
	if err := c.persister.SaveSettings(ctx, c.settings); err != nil {
		return c.settings, fmt.Errorf("save settings: %w", err)
	}
	return c.settings, nil
}

func (c *Coordinator) leaveIndex(id string) int {
	return slices.IndexFunc(c.leaves, func(l models.LeaveRequest) bool { return l.ID == id })
}
