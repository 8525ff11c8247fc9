package store

import "github.com/dmitrijs2005/hrmsync/internal/client/models"

// Default* return the seed data used when a slot is empty. Each call returns
// a fresh copy.

func DefaultEmployees() []models.Employee {
	type seed struct {
		n                      string
		dept, role, joined, ph string
	}
	seeds := []seed{
		{"1", "Engineering", "Python Developer", "2026-02-25", "+1 555-0101"},
		{"2", "Engineering", "Frontend Developer", "2026-01-15", "+1 555-0102"},
		{"3", "Design", "UI/UX Designer", "2025-11-20", "+1 555-0103"},
		{"4", "Marketing", "Marketing Manager", "2025-10-05", "+1 555-0104"},
		{"5", "HR", "HR Specialist", "2026-02-01", "+1 555-0105"},
	}

	out := make([]models.Employee, 0, len(seeds))
	for _, s := range seeds {
		out = append(out, models.Employee{
			ID:         "EMP00" + s.n,
			FirstName:  "EMP " + s.n,
			Email:      "emp" + s.n + "@company.com",
			Phone:      s.ph,
			Department: s.dept,
			Position:   s.role,
			Role:       s.role,
			JoinDate:   s.joined,
			Status:     models.EmployeeActive,
		})
	}
	return out
}

func DefaultAttendance() []models.Attendance {
	return []models.Attendance{
		{ID: "1", EmployeeID: "EMP001", Date: "2026-02-26", Status: models.Present},
		{ID: "2", EmployeeID: "EMP002", Date: "2026-02-26", Status: models.Present},
		{ID: "3", EmployeeID: "EMP003", Date: "2026-02-26", Status: models.Absent, Note: "Sick leave"},
		{ID: "4", EmployeeID: "EMP004", Date: "2026-02-26", Status: models.Late, Note: "Traffic delay"},
		{ID: "5", EmployeeID: "EMP005", Date: "2026-02-26", Status: models.Present},
		{ID: "6", EmployeeID: "EMP001", Date: "2026-02-25", Status: models.Present},
		{ID: "7", EmployeeID: "EMP002", Date: "2026-02-25", Status: models.Present},
		{ID: "8", EmployeeID: "EMP003", Date: "2026-02-25", Status: models.Present},
		{ID: "9", EmployeeID: "EMP004", Date: "2026-02-25", Status: models.Present},
		{ID: "10", EmployeeID: "EMP005", Date: "2026-02-25", Status: models.HalfDay, Note: "Left early"},
		{ID: "11", EmployeeID: "EMP001", Date: "2026-02-27", Status: models.Present},
		{ID: "12", EmployeeID: "EMP002", Date: "2026-02-27", Status: models.Late, Note: "Overslept"},
		{ID: "13", EmployeeID: "EMP003", Date: "2026-02-27", Status: models.Present},
		{ID: "14", EmployeeID: "EMP005", Date: "2026-02-27", Status: models.Present},
	}
}

func DefaultLeaveRequests() []models.LeaveRequest {
	return []models.LeaveRequest{
		{ID: "1", EmployeeID: "EMP003", LeaveType: "Sick Leave", StartDate: "2026-02-26", EndDate: "2026-02-26", Reason: "Not feeling well", Status: models.LeaveApproved},
		{ID: "2", EmployeeID: "EMP001", LeaveType: "Casual Leave", StartDate: "2026-03-01", EndDate: "2026-03-02", Reason: "Family function", Status: models.LeavePending},
		{ID: "3", EmployeeID: "EMP004", LeaveType: "Vacation", StartDate: "2026-03-10", EndDate: "2026-03-15", Reason: "Annual vacation", Status: models.LeavePending},
	}
}

func DefaultSettings() models.Settings {
	return models.Settings{
		Timezone:   "Asia/Kolkata",
		DateFormat: "DD/MM/YYYY",
		WeekStart:  "Monday",
	}
}
