package services

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/repomanager"
)

type DashboardService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewDashboardService(db *sql.DB, m repomanager.RepositoryManager) *DashboardService {
	return &DashboardService{db: db, repomanager: m, now: time.Now}
}

// Stats aggregates today's attendance. The rate is the share of employees
// marked present, in percent with one decimal.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	c, err := s.repomanager.Dashboard(s.db).Counts(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("error loading dashboard: %w", err)
	}

	var rate float64
	if c.Employees > 0 {
		rate = math.Round(float64(c.Present)/float64(c.Employees)*1000) / 10
	}
	return &models.DashboardStats{
		TotalEmployees:      c.Employees,
		TotalDepartments:    c.Departments,
		PresentToday:        c.Present,
		AbsentToday:         c.Absent,
		LateToday:           c.Late,
		AttendanceRateToday: rate,
	}, nil
}
