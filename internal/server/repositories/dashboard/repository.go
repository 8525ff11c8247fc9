package dashboard

import (
	"context"
	"time"
)

// Counts are the raw numbers behind the dashboard; the rate is derived by the service.
type Counts struct {
	Employees   int
	Departments int
	Present     int
	Absent      int
	Late        int
}

type Repository interface {
	Counts(ctx context.Context, day time.Time) (*Counts, error)
}
