package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/hrmsync/internal/dbx"
	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/repomanager"
)

type AttendanceService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewAttendanceService(db *sql.DB, m repomanager.RepositoryManager) *AttendanceService {
	return &AttendanceService{db: db, repomanager: m}
}

func (s *AttendanceService) List(ctx context.Context, f models.AttendanceFilter) ([]models.Attendance, error) {
	if err := optionalDate("date_from", f.DateFrom); err != nil {
		return nil, err
	}
	if err := optionalDate("date_to", f.DateTo); err != nil {
		return nil, err
	}
	if f.Status != "" && !models.ValidStatus(f.Status) {
		return nil, invalid("unknown status %q", f.Status)
	}
	return s.repomanager.Attendance(s.db).List(ctx, f)
}

// Mark records one day for an employee. The employee lookup and the insert
// share a transaction so a concurrent delete surfaces as not found.
func (s *AttendanceService) Mark(ctx context.Context, in models.AttendanceCreate) (*models.Attendance, error) {
	if err := required("date", in.Date); err != nil {
		return nil, err
	}
	if err := optionalDate("date", in.Date); err != nil {
		return nil, err
	}
	if !models.ValidStatus(in.Status) {
		return nil, invalid("unknown status %q", in.Status)
	}
	in.Note = trimmed(in.Note)

	var out *models.Attendance
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := s.repomanager.Employees(tx).Get(ctx, in.EmployeeID); err != nil {
			return fmt.Errorf("employee %d: %w", in.EmployeeID, err)
		}
		a, err := s.repomanager.Attendance(tx).Create(ctx, in)
		if err != nil {
			return err
		}
		out = a
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error marking attendance: %w", err)
	}
	return out, nil
}

func (s *AttendanceService) Update(ctx context.Context, id int64, in models.AttendanceUpdate) (*models.Attendance, error) {
	if !models.ValidStatus(in.Status) {
		return nil, invalid("unknown status %q", in.Status)
	}
	in.Note = trimmed(in.Note)
	a, err := s.repomanager.Attendance(s.db).Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating attendance %d: %w", id, err)
	}
	return a, nil
}

func (s *AttendanceService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Attendance(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting attendance %d: %w", id, err)
	}
	return nil
}
