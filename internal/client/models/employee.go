// Package models defines the local-shape records held by the sync
// coordinator, persisted in the slot store and written to backups.
package models

type EmployeeStatus string

const (
	EmployeeActive   EmployeeStatus = "active"
	EmployeeInactive EmployeeStatus = "inactive"
)

// Employee is the local shape of an employee.
type Employee struct {
	// ID is the human-readable code (e.g. "EMP001"); unique and the join key
	// for attendance and leave records.
	ID string `json:"id"`

	// RemoteID is the backend primary key. Empty for records that were never
	// mirrored; such records can only be changed locally.
	RemoteID string `json:"remoteId,omitempty"`

	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Position   string `json:"position"`

	// Role is an alias of Position kept for records created by older clients.
	Role string `json:"role,omitempty"`

	Phone    string         `json:"phone"`
	JoinDate string         `json:"joinDate"`
	Status   EmployeeStatus `json:"status"`

	// TotalPresentDays is a backend aggregate; zero for local-only records.
	TotalPresentDays int `json:"totalPresentDays"`
}

func (e Employee) FullName() string {
	switch {
	case e.LastName == "":
		return e.FirstName
	case e.FirstName == "":
		return e.LastName
	default:
		return e.FirstName + " " + e.LastName
	}
}

// Title returns Position, falling back to Role.
func (e Employee) Title() string {
	if e.Position != "" {
		return e.Position
	}
	return e.Role
}

func (e Employee) Mirrored() bool {
	return e.RemoteID != ""
}

// EmployeePatch is a partial update; nil fields are left unchanged.
type EmployeePatch struct {
	FirstName  *string
	LastName   *string
	Email      *string
	Department *string
	Position   *string
	Phone      *string
	JoinDate   *string
	Status     *EmployeeStatus
}

func (p EmployeePatch) Apply(e Employee) Employee {
	setIf(&e.FirstName, p.FirstName)
	setIf(&e.LastName, p.LastName)
	setIf(&e.Email, p.Email)
	setIf(&e.Department, p.Department)
	if p.Position != nil {
		e.Position = *p.Position
		e.Role = *p.Position
	}
	setIf(&e.Phone, p.Phone)
	setIf(&e.JoinDate, p.JoinDate)
	setIf(&e.Status, p.Status)
	return e
}

func setIf[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Ptr returns a pointer to v. Handy for building patches.
func Ptr[T any](v T) *T {
	return &v
}
