package models

// Attendance statuses as spelled on the wire.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLate    = "Late"
	StatusHalfDay = "Half Day"
)

var Statuses = []string{StatusPresent, StatusAbsent, StatusLate, StatusHalfDay}

func ValidStatus(s string) bool {
	for _, v := range Statuses {
		if v == s {
			return true
		}
	}
	return false
}

// Attendance carries the employee's code and name for display.
type Attendance struct {
	ID           int64   `json:"id"`
	EmployeeID   int64   `json:"employee_id"`
	EmployeeCode string  `json:"employee_code"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	Note         *string `json:"note"`
}

type AttendanceCreate struct {
	EmployeeID int64   `json:"employee_id"`
	Date       string  `json:"date"`
	Status     string  `json:"status"`
	Note       *string `json:"note"`
}

type AttendanceUpdate struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}

type AttendanceFilter struct {
	DateFrom string
	DateTo   string
	Status   string
}
