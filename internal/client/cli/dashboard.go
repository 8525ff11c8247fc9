package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/client/services"
)

func (a *App) showStatus(_ context.Context, _ []string) error {
	endpoint := a.config.APIURL
	if endpoint == "" {
		endpoint = a.coord.Settings().APIURL
	}
	if endpoint == "" {
		endpoint = "(not configured)"
	}

	fmt.Fprintf(a.out, "Backend:       %s\n", a.coord.Status())
	fmt.Fprintf(a.out, "Endpoint:      %s\n", endpoint)
	fmt.Fprintf(a.out, "Employees:     %d\n", len(a.coord.Employees()))
	fmt.Fprintf(a.out, "Attendance:    %d\n", len(a.coord.Attendance()))
	fmt.Fprintf(a.out, "Leaves:        %d\n", len(a.coord.LeaveRequests()))
	fmt.Fprintf(a.out, "Notifications: %d unread\n", a.coord.UnreadNotifications())
	return nil
}

func (a *App) sync(ctx context.Context, _ []string) error {
	status := a.coord.Resync(ctx)
	fmt.Fprintln(a.out, "Backend:", status)
	return nil
}

func (a *App) stats(_ context.Context, args []string) error {
	period := services.Period(arg(args, 0))
	if period == "" {
		period = services.PeriodToday
	}
	q := services.SummaryQuery{
		Period:     period,
		Range:      services.PeriodRange(period, a.now(), arg(args, 2), arg(args, 3)),
		Department: arg(args, 1),
	}
	s := a.coord.Summarize(q)

	scope := "all departments"
	if q.Department != "" {
		scope = q.Department
	}
	fmt.Fprintf(a.out, "%s .. %s, %s", q.Range.From, q.Range.To, scope)
	if s.FromBackend {
		fmt.Fprint(a.out, " (backend)")
	}
	fmt.Fprintln(a.out)

	tw := newTable(a.out)
	fmt.Fprintf(tw, "Employees\t%d\n", s.Employees)
	fmt.Fprintf(tw, "Departments\t%d\n", s.Departments)
	fmt.Fprintf(tw, "Present\t%d\n", s.Present)
	fmt.Fprintf(tw, "Absent\t%d\n", s.Absent)
	fmt.Fprintf(tw, "Late\t%d\n", s.Late)
	fmt.Fprintf(tw, "Half day\t%d\n", s.HalfDay)
	fmt.Fprintf(tw, "Attendance rate\t%d%%\n", s.Rate)
	fmt.Fprintf(tw, "Pending leaves\t%d\n", s.PendingLeaves)
	return tw.Flush()
}
