package services

import (
	"cmp"
	"slices"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

// AttendanceQuery selects attendance records; empty fields match anything.
type AttendanceQuery struct {
	EmployeeID string
	Status     models.AttendanceStatus
	From       string
	To         string
}

func (q AttendanceQuery) match(a models.Attendance) bool {
	return (q.EmployeeID == "" || a.EmployeeID == q.EmployeeID) &&
		(q.Status == "" || a.Status == q.Status) &&
		(q.From == "" || a.Date >= q.From) &&
		(q.To == "" || a.Date <= q.To)
}

// FilterAttendance returns matching records, newest date first.
func (c *Coordinator) FilterAttendance(q AttendanceQuery) []models.Attendance {
	out := c.selectAttendance(q.match)
	slices.SortStableFunc(out, func(a, b models.Attendance) int {
		return cmp.Compare(b.Date, a.Date)
	})
	return out
}

type LeaveQuery struct {
	Status     models.LeaveStatus
	EmployeeID string
	LeaveType  string
	From       string
	To         string
}

func (q LeaveQuery) match(l models.LeaveRequest) bool {
	return (q.Status == "" || l.Status == q.Status) &&
		(q.EmployeeID == "" || l.EmployeeID == q.EmployeeID) &&
		(q.LeaveType == "" || l.LeaveType == q.LeaveType) &&
		(q.From == "" || l.StartDate >= q.From) &&
		(q.To == "" || l.StartDate <= q.To)
}

// FilterLeaves returns matching requests, latest start date first.
func (c *Coordinator) FilterLeaves(q LeaveQuery) []models.LeaveRequest {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := []models.LeaveRequest{}
	for _, l := range c.leaves {
		if q.match(l) {
			out = append(out, l)
		}
	}
	slices.SortStableFunc(out, func(a, b models.LeaveRequest) int {
		return cmp.Compare(b.StartDate, a.StartDate)
	})
	return out
}

// LeaveCounts returns the number of requests per status.
func (c *Coordinator) LeaveCounts() map[models.LeaveStatus]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	counts := map[models.LeaveStatus]int{
		models.LeavePending:  0,
		models.LeaveApproved: 0,
		models.LeaveRejected: 0,
	}
	for _, l := range c.leaves {
		counts[l.Status]++
	}
	return counts
}
