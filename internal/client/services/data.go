package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/client/store"
)

// Export serializes the four collections into a backup document.
func (c *Coordinator) Export() ([]byte, error) {
	c.mu.Lock()
	snap := c.snapshotLocked()
	c.mu.Unlock()

	data, err := store.NewBackup(snap, c.now()).Marshal()
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return data, nil
}

// Import replaces every collection present in the backup. The slots are
// written in one store transaction before memory changes, so a document that
// cannot be parsed or persisted changes nothing.
func (c *Coordinator) Import(ctx context.Context, data []byte) error {
	b, err := store.ParseBackup(data)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.persister.Restore(ctx, b); err != nil {
		return fmt.Errorf("restore backup: %w", err)
	}

	if b.Employees != nil {
		c.employees = clone(*b.Employees)
	}
	if b.Attendance != nil {
		c.attendance = clone(*b.Attendance)
	}
	if b.LeaveRequests != nil {
		c.leaves = clone(*b.LeaveRequests)
	}
	if b.Settings != nil {
		c.settings = *b.Settings
	}
	return nil
}

// Reset restores the seed data in memory and clears the persisted slots.
func (c *Coordinator) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	def := store.DefaultSnapshot()
	c.employees = def.Employees
	c.attendance = def.Attendance
	c.leaves = def.LeaveRequests
	c.settings = def.Settings

	if err := c.persister.Reset(ctx); err != nil {
		return fmt.Errorf("reset store: %w", err)
	}
	return nil
}

func (c *Coordinator) snapshotLocked() store.Snapshot {
	return store.Snapshot{
		Employees:     clone(c.employees),
		Attendance:    clone(c.attendance),
		LeaveRequests: clone(c.leaves),
		Settings:      c.settings,
	}
}
