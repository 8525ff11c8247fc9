package models

type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	HalfDay AttendanceStatus = "half-day"
)

// AttendanceStatuses lists the known statuses in display order.
var AttendanceStatuses = []AttendanceStatus{Present, Absent, Late, HalfDay}

func (s AttendanceStatus) Valid() bool {
	for _, v := range AttendanceStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Attendance is one employee's record for one calendar day.
type Attendance struct {
	// ID is either the backend id (as a string) or a locally generated
	// token for records not yet seen by the backend.
	ID       string `json:"id"`
	RemoteID string `json:"remoteId,omitempty"`

	EmployeeID string `json:"employeeId"`

	// EmployeeName is filled from the backend only.
	EmployeeName string `json:"employeeName,omitempty"`

	Date   string           `json:"date"`
	Status AttendanceStatus `json:"status"`
	Note   string           `json:"note"`

	// CheckIn and CheckOut are local-only time-of-day values.
	CheckIn  string `json:"checkIn,omitempty"`
	CheckOut string `json:"checkOut,omitempty"`
}

func (a Attendance) Mirrored() bool {
	return a.RemoteID != ""
}

// SameDay reports whether both records belong to the same (employee, date) pair.
func (a Attendance) SameDay(b Attendance) bool {
	return a.EmployeeID == b.EmployeeID && a.Date == b.Date
}

type AttendancePatch struct {
	EmployeeID *string
	Date       *string
	Status     *AttendanceStatus
	Note       *string
	CheckIn    *string
	CheckOut   *string
}

func (p AttendancePatch) Apply(a Attendance) Attendance {
	setIf(&a.EmployeeID, p.EmployeeID)
	setIf(&a.Date, p.Date)
	setIf(&a.Status, p.Status)
	setIf(&a.Note, p.Note)
	setIf(&a.CheckIn, p.CheckIn)
	setIf(&a.CheckOut, p.CheckOut)
	return a
}
