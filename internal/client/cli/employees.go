package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/services"
)

func (a *App) listEmployees(_ context.Context, args []string) error {
	dept := arg(args, 0)

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tDEPARTMENT\tPOSITION\tSTATUS\tPRESENT")
	n := 0
	for _, e := range a.coord.Employees() {
		if dept != "" && e.Department != dept {
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n", e.ID, e.FullName(), e.Department, e.Title(), e.Status, a.presentDays(e))
		n++
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d employee(s)\n", n)
	return nil
}

// presentDays prefers the backend aggregate for mirrored employees.
func (a *App) presentDays(e models.Employee) int {
	if e.Mirrored() {
		return e.TotalPresentDays
	}
	return a.coord.PresentDays(e.ID)
}

func (a *App) showEmployee(_ context.Context, args []string) error {
	id, err := requireArg(args, "show <employee id>")
	if err != nil {
		return err
	}
	e, ok := a.coord.Employee(id)
	if !ok {
		return fmt.Errorf("employee %s: %w", id, services.ErrNotFound)
	}

	fmt.Fprintf(a.out, "%s  %s\n", e.ID, e.FullName())
	fmt.Fprintf(a.out, "  Email:      %s\n", e.Email)
	fmt.Fprintf(a.out, "  Phone:      %s\n", e.Phone)
	fmt.Fprintf(a.out, "  Department: %s\n", e.Department)
	fmt.Fprintf(a.out, "  Position:   %s\n", e.Title())
	fmt.Fprintf(a.out, "  Joined:     %s\n", e.JoinDate)
	fmt.Fprintf(a.out, "  Status:     %s\n", e.Status)
	if e.Mirrored() {
		fmt.Fprintf(a.out, "  Backend id: %s\n", e.RemoteID)
	}

	records := a.coord.FilterAttendance(services.AttendanceQuery{EmployeeID: e.ID})
	if len(records) == 0 {
		return nil
	}
	fmt.Fprintln(a.out, "Attendance:")
	return a.printAttendance(records)
}

func (a *App) addEmployee(ctx context.Context, _ []string) error {
	var e models.Employee
	fields := []struct {
		prompt string
		dst    *string
		def    string
	}{
		{"First name", &e.FirstName, ""},
		{"Last name", &e.LastName, ""},
		{"Email", &e.Email, ""},
		{"Department", &e.Department, ""},
		{"Position", &e.Position, ""},
		{"Phone", &e.Phone, ""},
		{"Join date (YYYY-MM-DD)", &e.JoinDate, a.now().Format(time.DateOnly)},
	}
	for _, f := range fields {
		v, err := GetWithDefault(a.reader, f.prompt, f.def, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	if e.FirstName == "" {
		return fmt.Errorf("first name is required")
	}

	created, m, err := a.coord.AddEmployee(ctx, e)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Added %s (%s)\n", created.ID, created.FullName())
	a.printMirror(m)
	return nil
}

func (a *App) editEmployee(ctx context.Context, args []string) error {
	id, err := requireArg(args, "editemp <employee id>")
	if err != nil {
		return err
	}
	e, ok := a.coord.Employee(id)
	if !ok {
		return fmt.Errorf("employee %s: %w", id, services.ErrNotFound)
	}

	var p models.EmployeePatch
	fields := []struct {
		prompt  string
		current string
		dst     **string
	}{
		{"First name", e.FirstName, &p.FirstName},
		{"Last name", e.LastName, &p.LastName},
		{"Email", e.Email, &p.Email},
		{"Department", e.Department, &p.Department},
		{"Position", e.Title(), &p.Position},
		{"Phone", e.Phone, &p.Phone},
		{"Join date", e.JoinDate, &p.JoinDate},
	}
	for _, f := range fields {
		v, err := GetOptional(a.reader, f.prompt, f.current, a.out)
		if err != nil {
			return err
		}
		*f.dst = v
	}
	status, err := GetOptional(a.reader, "Status (active/inactive)", string(e.Status), a.out)
	if err != nil {
		return err
	}
	if status != nil {
		p.Status = models.Ptr(models.EmployeeStatus(*status))
	}

	updated, m, err := a.coord.UpdateEmployee(ctx, id, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated %s (%s)\n", updated.ID, updated.FullName())
	a.printMirror(m)
	return nil
}

func (a *App) deleteEmployee(ctx context.Context, args []string) error {
	id, err := requireArg(args, "delemp <employee id>")
	if err != nil {
		return err
	}
	m, err := a.coord.DeleteEmployee(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted %s and their attendance\n", id)
	a.printMirror(m)
	return nil
}

// departments prefers the backend's list while connected and falls back to
// the names derived from local employees.
func (a *App) departments(ctx context.Context, _ []string) error {
	names := a.coord.Departments()
	if a.remote != nil && a.coord.Status() == models.StatusConnected {
		remote, err := a.remote.Departments(ctx)
		switch {
		case err != nil:
			a.logger.Warn(ctx, "departments fetch failed", "error", err)
		case remote != nil:
			names = remote
		}
	}
	for _, d := range names {
		fmt.Fprintln(a.out, d)
	}
	return nil
}
