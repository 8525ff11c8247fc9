// Package normalize converts records between the backend's shape and the
// local shape. Every function is pure and total: absent optional fields
// become empty strings locally and nil remotely.
package normalize

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// RemoteID is a backend primary key. It decodes from a JSON number or string
// and encodes back as a number whenever it is numeric.
type RemoteID string

func (id RemoteID) String() string { return string(id) }

func (id RemoteID) MarshalJSON() ([]byte, error) {
	// Only canonical integers go out as numbers; "007" or "+7" keep their text.
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}

func (id *RemoteID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = RemoteID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("remote id: %w", err)
	}
	*id = RemoteID(n.String())
	return nil
}

// RemoteEmployee is an employee as returned by GET/POST/PUT /api/employees.
type RemoteEmployee struct {
	ID               RemoteID `json:"id"`
	EmployeeID       *string  `json:"employee_id"`
	FullName         *string  `json:"full_name"`
	Email            *string  `json:"email"`
	Department       *string  `json:"department"`
	Position         *string  `json:"position"`
	Phone            *string  `json:"phone"`
	CreatedAt        *string  `json:"created_at"`
	TotalPresentDays *int     `json:"total_present_days"`
}

// EmployeeCreate is the body of POST /api/employees.
type EmployeeCreate struct {
	EmployeeID string  `json:"employee_id"`
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
}

// EmployeeUpdate is the body of PUT /api/employees/{id}. The target is
// addressed by the path, never by the body.
type EmployeeUpdate struct {
	FullName   string  `json:"full_name"`
	Email      string  `json:"email"`
	Department string  `json:"department"`
	Position   *string `json:"position"`
	Phone      *string `json:"phone"`
}

// RemoteAttendance is an attendance record as returned by /api/attendance.
// The backend denormalizes the employee's code and name into each record.
type RemoteAttendance struct {
	ID           RemoteID `json:"id"`
	EmployeeID   RemoteID `json:"employee_id"`
	EmployeeCode *string  `json:"employee_code"`
	EmployeeName *string  `json:"employee_name"`
	Date         string   `json:"date"`
	Status       string   `json:"status"`
	Note         *string  `json:"note"`
}

// AttendanceCreate is the body of POST /api/attendance; EmployeeID is the
// employee's backend primary key.
type AttendanceCreate struct {
	EmployeeID RemoteID `json:"employee_id"`
	Date       string   `json:"date"`
	Status     string   `json:"status"`
	Note       *string  `json:"note"`
}

// AttendanceUpdate is the body of PUT /api/attendance/{id}.
type AttendanceUpdate struct {
	Status string  `json:"status"`
	Note   *string `json:"note"`
}
