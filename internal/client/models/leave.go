package models

type LeaveStatus string

const (
	LeavePending  LeaveStatus = "pending"
	LeaveApproved LeaveStatus = "approved"
	LeaveRejected LeaveStatus = "rejected"
)

// LeaveTypes are the types offered when filing a request. Other values are
// accepted as-is.
var LeaveTypes = []string{
	"Sick Leave",
	"Casual Leave",
	"Annual Leave",
	"Maternity Leave",
	"Paternity Leave",
	"Unpaid Leave",
	"Other",
}

// DefaultLeaveType is used when a stored record has no type at all.
const DefaultLeaveType = "Other"

// LeaveRequest exists only locally; it is never mirrored to the backend.
type LeaveRequest struct {
	ID          string      `json:"id"`
	EmployeeID  string      `json:"employeeId"`
	LeaveType   string      `json:"leaveType"`
	StartDate   string      `json:"startDate"`
	EndDate     string      `json:"endDate"`
	Reason      string      `json:"reason"`
	Status      LeaveStatus `json:"status"`
	AppliedDate string      `json:"appliedDate,omitempty"`
}

type LeavePatch struct {
	LeaveType *string
	StartDate *string
	EndDate   *string
	Reason    *string
	Status    *LeaveStatus
}

func (p LeavePatch) Apply(l LeaveRequest) LeaveRequest {
	setIf(&l.LeaveType, p.LeaveType)
	setIf(&l.StartDate, p.StartDate)
	setIf(&l.EndDate, p.EndDate)
	setIf(&l.Reason, p.Reason)
	setIf(&l.Status, p.Status)
	return l
}
