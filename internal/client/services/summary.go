package services

import (
	"math"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/client/models"
)

type Period string

const (
	PeriodToday     Period = "today"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodLastMonth Period = "last-month"
	PeriodCustom    Period = "custom"
)

// DateRange is an inclusive range of YYYY-MM-DD dates.
type DateRange struct {
	From string
	To   string
}

func (r DateRange) Contains(date string) bool {
	if len(date) < len(time.DateOnly) {
		return false
	}
	date = date[:len(time.DateOnly)]
	return date >= r.From && date <= r.To
}

// PeriodRange resolves p relative to today. Weeks start on Monday. A custom
// period uses from and to, each defaulting to today; unknown periods mean
// today.
func PeriodRange(p Period, today time.Time, from, to string) DateRange {
	day := func(t time.Time) string { return t.Format(time.DateOnly) }
	y, m, d := today.Date()
	loc := today.Location()

	switch p {
	case PeriodWeek:
		offset := (int(today.Weekday()) + 6) % 7
		start := time.Date(y, m, d-offset, 0, 0, 0, 0, loc)
		return DateRange{From: day(start), To: day(start.AddDate(0, 0, 6))}
	case PeriodMonth:
		start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
		return DateRange{From: day(start), To: day(start.AddDate(0, 1, -1))}
	case PeriodLastMonth:
		start := time.Date(y, m-1, 1, 0, 0, 0, 0, loc)
		return DateRange{From: day(start), To: day(start.AddDate(0, 1, -1))}
	case PeriodCustom:
		r := DateRange{From: from, To: to}
		if r.From == "" {
			r.From = day(today)
		}
		if r.To == "" {
			r.To = day(today)
		}
		return r
	default:
		return DateRange{From: day(today), To: day(today)}
	}
}

type SummaryQuery struct {
	Period     Period
	Range      DateRange
	Department string
}

// Summary is the dashboard view over a period.
type Summary struct {
	Employees     int
	Departments   int
	Present       int
	Absent        int
	Late          int
	HalfDay       int
	Rate          int
	PendingLeaves int

	// FromBackend is set when the headline numbers come from the backend's
	// dashboard stats rather than local records.
	FromBackend bool
}

// Summarize counts attendance within q.Range, optionally restricted to one
// department. The rate is present records over head-count. When connected,
// looking at today and not filtering by department, the backend's stats are
// used for the headline numbers.
func (c *Coordinator) Summarize(q SummaryQuery) Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	var s Summary

	members := map[string]bool{}
	for _, e := range c.employees {
		if q.Department == "" || e.Department == q.Department {
			members[e.ID] = true
		}
	}

	for _, a := range c.attendance {
		if !q.Range.Contains(a.Date) {
			continue
		}
		if q.Department != "" && !members[a.EmployeeID] {
			continue
		}
		switch a.Status {
		case models.Present:
			s.Present++
		case models.Absent:
			s.Absent++
		case models.Late:
			s.Late++
		case models.HalfDay:
			s.HalfDay++
		}
	}

	for _, l := range c.leaves {
		if l.Status == models.LeavePending {
			s.PendingLeaves++
		}
	}

	s.Employees = len(c.employees)
	s.Departments = len(departments(c.employees))
	denominator := s.Employees
	if q.Department != "" {
		denominator = len(members)
	}
	s.Rate = rate(s.Present, denominator)

	if c.connected() && c.stats != nil && q.Period == PeriodToday && q.Department == "" {
		s.Employees = c.stats.TotalEmployees
		s.Departments = c.stats.TotalDepartments
		s.Present = c.stats.PresentToday
		s.Absent = c.stats.AbsentToday
		s.Late = c.stats.LateToday
		s.Rate = int(math.Round(c.stats.AttendanceRateToday))
		s.FromBackend = true
	}

	return s
}

func rate(present, denominator int) int {
	return int(math.Round(float64(present) / float64(max(denominator, 1)) * 100))
}
