package normalize

import (
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

func EmployeeFromRemote(r RemoteEmployee) models.Employee {
	first, last := splitName(value(r.FullName))
	position := value(r.Position)

	e := models.Employee{
		ID:         value(r.EmployeeID),
		RemoteID:   r.ID.String(),
		FirstName:  first,
		LastName:   last,
		Email:      value(r.Email),
		Department: value(r.Department),
		Position:   position,
		Role:       position,
		Phone:      value(r.Phone),
		JoinDate:   datePrefix(value(r.CreatedAt)),
		Status:     models.EmployeeActive,
	}
	if r.TotalPresentDays != nil {
		e.TotalPresentDays = *r.TotalPresentDays
	}
	return e
}

// EmployeeToCreate builds the create payload. A record without a code gets
// "EMP" followed by now in epoch milliseconds.
func EmployeeToCreate(e models.Employee, now time.Time) EmployeeCreate {
	code := e.ID
	if code == "" {
		code = "EMP" + strconv.FormatInt(now.UnixMilli(), 10)
	}
	u := EmployeeToUpdate(e)
	return EmployeeCreate{
		EmployeeID: code,
		FullName:   u.FullName,
		Email:      u.Email,
		Department: u.Department,
		Position:   u.Position,
		Phone:      u.Phone,
	}
}

func EmployeeToUpdate(e models.Employee) EmployeeUpdate {
	return EmployeeUpdate{
		FullName:   strings.TrimSpace(e.FirstName + " " + e.LastName),
		Email:      e.Email,
		Department: e.Department,
		Position:   optional(e.Title()),
		Phone:      optional(e.Phone),
	}
}

func splitName(full string) (first, last string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// datePrefix keeps the YYYY-MM-DD prefix of an ISO-8601 timestamp.
func datePrefix(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}

func value(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
