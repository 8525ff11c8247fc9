package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/services"
)

func parseStatus(s string) (models.AttendanceStatus, error) {
	st := models.AttendanceStatus(strings.ToLower(strings.TrimSpace(s)))
	if !st.Valid() {
		return "", fmt.Errorf("unknown status %q, want one of %v", s, models.AttendanceStatuses)
	}
	return st, nil
}

func (a *App) printAttendance(records []models.Attendance) error {
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tDATE\tEMPLOYEE\tNAME\tSTATUS\tIN\tOUT\tNOTE")
	for _, r := range records {
		name := r.EmployeeName
		if e, ok := a.coord.Employee(r.EmployeeID); ok {
			name = e.FullName()
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.Date, r.EmployeeID, name, r.Status, r.CheckIn, r.CheckOut, r.Note)
	}
	return tw.Flush()
}

func (a *App) listAttendance(_ context.Context, args []string) error {
	q := services.AttendanceQuery{
		EmployeeID: arg(args, 0),
		From:       arg(args, 2),
		To:         arg(args, 3),
	}
	if s := arg(args, 1); s != "" {
		st, err := parseStatus(s)
		if err != nil {
			return err
		}
		q.Status = st
	}

	records := a.coord.FilterAttendance(q)
	if err := a.printAttendance(records); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%d record(s)\n", len(records))
	return nil
}

func (a *App) markAttendance(ctx context.Context, _ []string) error {
	employeeID, err := GetSimpleText(a.reader, "Employee ID", a.out)
	if err != nil {
		return err
	}
	if _, ok := a.coord.Employee(employeeID); !ok {
		return fmt.Errorf("employee %s: %w", employeeID, services.ErrNotFound)
	}
	date, err := GetWithDefault(a.reader, "Date (YYYY-MM-DD)", a.now().Format(time.DateOnly), a.out)
	if err != nil {
		return err
	}
	rawStatus, err := GetWithDefault(a.reader, "Status (present/absent/late/half-day)", string(models.Present), a.out)
	if err != nil {
		return err
	}
	status, err := parseStatus(rawStatus)
	if err != nil {
		return err
	}
	checkIn, err := GetSimpleText(a.reader, "Check in (HH:MM, optional)", a.out)
	if err != nil {
		return err
	}
	checkOut, err := GetSimpleText(a.reader, "Check out (HH:MM, optional)", a.out)
	if err != nil {
		return err
	}
	note, err := GetSimpleText(a.reader, "Note (optional)", a.out)
	if err != nil {
		return err
	}

	rec, m, err := a.coord.MarkAttendance(ctx, models.Attendance{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		Note:       note,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Marked %s %s on %s (record %s)\n", rec.EmployeeID, rec.Status, rec.Date, rec.ID)
	a.printMirror(m)
	return nil
}

func (a *App) editAttendance(ctx context.Context, args []string) error {
	id, err := requireArg(args, "editatt <record id>")
	if err != nil {
		return err
	}
	rec, ok := a.coord.AttendanceRecord(id)
	if !ok {
		return fmt.Errorf("attendance %s: %w", id, services.ErrNotFound)
	}

	var p models.AttendancePatch
	if p.Date, err = GetOptional(a.reader, "Date", rec.Date, a.out); err != nil {
		return err
	}
	rawStatus, err := GetOptional(a.reader, "Status", string(rec.Status), a.out)
	if err != nil {
		return err
	}
	if rawStatus != nil {
		st, err := parseStatus(*rawStatus)
		if err != nil {
			return err
		}
		p.Status = &st
	}
	if p.CheckIn, err = GetOptional(a.reader, "Check in", rec.CheckIn, a.out); err != nil {
		return err
	}
	if p.CheckOut, err = GetOptional(a.reader, "Check out", rec.CheckOut, a.out); err != nil {
		return err
	}
	if p.Note, err = GetOptional(a.reader, "Note", rec.Note, a.out); err != nil {
		return err
	}

	updated, m, err := a.coord.UpdateAttendance(ctx, id, p)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Updated record %s: %s %s\n", updated.ID, updated.Date, updated.Status)
	a.printMirror(m)
	return nil
}

func (a *App) deleteAttendance(ctx context.Context, args []string) error {
	id, err := requireArg(args, "delatt <record id>")
	if err != nil {
		return err
	}
	m, err := a.coord.DeleteAttendance(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted record %s\n", id)
	a.printMirror(m)
	return nil
}
