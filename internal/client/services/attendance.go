package services

import (
	"context"
	"fmt"
	"slices"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

// MarkAttendance records rec for its (EmployeeID, Date) pair. An existing
// record for the pair is updated in place; otherwise a new record with a
// time-ordered local id is added. rec.ID is ignored.
func (c *Coordinator) MarkAttendance(ctx context.Context, rec models.Attendance) (models.Attendance, Mirror, error) {
	c.mu.Lock()
	i := slices.IndexFunc(c.attendance, rec.SameDay)
	exists := i >= 0

	var out models.Attendance
	if exists {
		out = c.attendance[i]
		out.Status = rec.Status
		out.Note = rec.Note
		if rec.CheckIn != "" {
			out.CheckIn = rec.CheckIn
		}
		if rec.CheckOut != "" {
			out.CheckOut = rec.CheckOut
		}
		c.attendance[i] = out
	} else {
		out = rec
		out.ID = c.newID()
		out.RemoteID = ""
		c.attendance = append(c.attendance, out)
	}

	err := c.persister.SaveAttendance(ctx, clone(c.attendance))
	connected := c.connected()
	employees := clone(c.employees)
	c.mu.Unlock()

	if err != nil {
		return out, skipped, fmt.Errorf("save attendance: %w", err)
	}
	if !connected {
		return out, skipped, nil
	}

	var (
		res *models.Attendance
		op  string
	)
	if exists {
		if !out.Mirrored() {
			return out, skipped, nil
		}
		op = "update attendance"
		res, err = c.remote.UpdateAttendance(ctx, out.RemoteID, out)
	} else {
		op = "create attendance"
		res, err = c.remote.CreateAttendance(ctx, out, employees)
	}
	if err != nil {
		return out, c.mirrorFailed(ctx, op, err), nil
	}
	if res == nil {
		return out, skipped, nil
	}

	c.refetch(ctx, refetchAttendance|refetchStats)
	return out, Mirror{Status: MirrorApplied}, nil
}

// UpdateAttendance applies patch to the record with the given id. Moving a
// record onto a pair already held by another record fails with
// ErrDuplicateAttendance.
func (c *Coordinator) UpdateAttendance(ctx context.Context, id string, patch models.AttendancePatch) (models.Attendance, Mirror, error) {
	c.mu.Lock()
	i := c.attendanceIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return models.Attendance{}, skipped, fmt.Errorf("attendance %s: %w", id, ErrNotFound)
	}

	out := patch.Apply(c.attendance[i])
	for j, other := range c.attendance {
		if j != i && other.SameDay(out) {
			c.mu.Unlock()
			return c.attendance[i], skipped, fmt.Errorf("attendance %s: %w", id, ErrDuplicateAttendance)
		}
	}

	c.attendance[i] = out
	err := c.persister.SaveAttendance(ctx, clone(c.attendance))
	connected := c.connected()
	c.mu.Unlock()

	if err != nil {
		return out, skipped, fmt.Errorf("save attendance: %w", err)
	}
	if !connected || !out.Mirrored() {
		return out, skipped, nil
	}

	res, err := c.remote.UpdateAttendance(ctx, out.RemoteID, out)
	if err != nil {
		return out, c.mirrorFailed(ctx, "update attendance", err), nil
	}
	if res == nil {
		return out, skipped, nil
	}

	c.refetch(ctx, refetchAttendance|refetchStats)
	return out, Mirror{Status: MirrorApplied}, nil
}

func (c *Coordinator) DeleteAttendance(ctx context.Context, id string) (Mirror, error) {
	c.mu.Lock()
	i := c.attendanceIndex(id)
	if i < 0 {
		c.mu.Unlock()
		return skipped, fmt.Errorf("attendance %s: %w", id, ErrNotFound)
	}

	rec := c.attendance[i]
	c.attendance = slices.Delete(c.attendance, i, i+1)
	err := c.persister.SaveAttendance(ctx, clone(c.attendance))
	connected := c.connected()
	c.mu.Unlock()

	if err != nil {
		return skipped, fmt.Errorf("save attendance: %w", err)
	}
	if !connected || !rec.Mirrored() {
		return skipped, nil
	}

	ok, err := c.remote.DeleteAttendance(ctx, rec.RemoteID)
	if err != nil {
		return c.mirrorFailed(ctx, "delete attendance", err), nil
	}
	if !ok {
		return skipped, nil
	}

	c.refetch(ctx, refetchAttendance|refetchStats)
	return Mirror{Status: MirrorApplied}, nil
}

func (c *Coordinator) attendanceIndex(id string) int {
	return slices.IndexFunc(c.attendance, func(a models.Attendance) bool { return a.ID == id })
}
