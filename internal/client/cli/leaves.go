package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
	"github.com/dmitrijs2005/hrmsync/internal/client/services"
)

func (a *App) listLeaves(_ context.Context, args []string) error {
	q := services.LeaveQuery{Status: models.LeaveStatus(strings.ToLower(arg(args, 0)))}
	leaves := a.coord.FilterLeaves(q)

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tEMPLOYEE\tTYPE\tFROM\tTO\tSTATUS\tREASON")
	for _, l := range leaves {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			l.ID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.Status, l.Reason)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	c := a.coord.LeaveCounts()
	fmt.Fprintf(a.out, "pending: %d, approved: %d, rejected: %d\n",
		c[models.LeavePending], c[models.LeaveApproved], c[models.LeaveRejected])
	return nil
}

func (a *App) addLeave(ctx context.Context, _ []string) error {
	employeeID, err := GetSimpleText(a.reader, "Employee ID", a.out)
	if err != nil {
		return err
	}
	if _, ok := a.coord.Employee(employeeID); !ok {
		return fmt.Errorf("employee %s: %w", employeeID, services.ErrNotFound)
	}
	leaveType, err := GetWithDefault(a.reader, "Leave type "+strings.Join(models.LeaveTypes, ", "), models.DefaultLeaveType, a.out)
	if err != nil {
		return err
	}
	start, err := GetSimpleText(a.reader, "Start date (YYYY-MM-DD)", a.out)
	if err != nil {
		return err
	}
	end, err := GetWithDefault(a.reader, "End date (YYYY-MM-DD)", start, a.out)
	if err != nil {
		return err
	}
	if start == "" || end < start {
		return fmt.Errorf("invalid date range %q..%q", start, end)
	}
	reason, err := GetMultiline(a.reader, "Reason", a.out)
	if err != nil {
		return err
	}

	req, err := a.coord.AddLeaveRequest(ctx, models.LeaveRequest{
		EmployeeID: employeeID,
		LeaveType:  leaveType,
		StartDate:  start,
		EndDate:    end,
		Reason:     reason,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Leave request %s filed\n", req.ID)
	return nil
}

func (a *App) approveLeave(ctx context.Context, args []string) error {
	return a.setLeaveStatus(ctx, args, "approve", models.LeaveApproved)
}

func (a *App) rejectLeave(ctx context.Context, args []string) error {
	return a.setLeaveStatus(ctx, args, "reject", models.LeaveRejected)
}

func (a *App) setLeaveStatus(ctx context.Context, args []string, cmd string, status models.LeaveStatus) error {
	id, err := requireArg(args, cmd+" <leave id>")
	if err != nil {
		return err
	}
	l, err := a.coord.SetLeaveStatus(ctx, id, status)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Leave request %s is %s\n", l.ID, l.Status)
	return nil
}

func (a *App) deleteLeave(ctx context.Context, args []string) error {
	id, err := requireArg(args, "delleave <leave id>")
	if err != nil {
		return err
	}
	if err := a.coord.DeleteLeaveRequest(ctx, id); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Deleted leave request %s\n", id)
	return nil
}
