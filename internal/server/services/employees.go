package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/dmitrijs2005/hrmsync/internal/server/repositories/repomanager"
)

type EmployeeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewEmployeeService(db *sql.DB, m repomanager.RepositoryManager) *EmployeeService {
	return &EmployeeService{db: db, repomanager: m}
}

func (s *EmployeeService) List(ctx context.Context, f models.EmployeeFilter) ([]models.Employee, error) {
	f.Search = strings.TrimSpace(f.Search)
	return s.repomanager.Employees(s.db).List(ctx, f)
}

func (s *EmployeeService) Departments(ctx context.Context) ([]string, error) {
	return s.repomanager.Employees(s.db).Departments(ctx)
}

func (s *EmployeeService) Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error) {
	in = normalizeEmployee(in)
	if err := required("employee_id", in.EmployeeID); err != nil {
		return nil, err
	}
	if err := validateEmployee(in); err != nil {
		return nil, err
	}
	e, err := s.repomanager.Employees(s.db).Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("error creating employee: %w", err)
	}
	return e, nil
}

// Update replaces the mutable fields; the employee code never changes.
func (s *EmployeeService) Update(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error) {
	in = normalizeEmployee(in)
	if err := validateEmployee(in); err != nil {
		return nil, err
	}
	e, err := s.repomanager.Employees(s.db).Update(ctx, id, in)
	if err != nil {
		return nil, fmt.Errorf("error updating employee %d: %w", id, err)
	}
	return e, nil
}

func (s *EmployeeService) Delete(ctx context.Context, id int64) error {
	if err := s.repomanager.Employees(s.db).Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting employee %d: %w", id, err)
	}
	return nil
}

func normalizeEmployee(in models.EmployeeInput) models.EmployeeInput {
	in.EmployeeID = strings.TrimSpace(in.EmployeeID)
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(in.Email)
	in.Department = strings.TrimSpace(in.Department)
	in.Position = trimmed(in.Position)
	in.Phone = trimmed(in.Phone)
	return in
}

func validateEmployee(in models.EmployeeInput) error {
	if err := required("full_name", in.FullName); err != nil {
		return err
	}
	if err := required("email", in.Email); err != nil {
		return err
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return invalid("email %q is not a valid address", in.Email)
	}
	return required("department", in.Department)
}
