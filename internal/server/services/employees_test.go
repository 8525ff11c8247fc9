package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/hrmsync/internal/common"
	"github.com/dmitrijs2005/hrmsync/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmployeeService_CreateValidation(t *testing.T) {
	valid := models.EmployeeInput{EmployeeID: "EMP001", FullName: "Jane Doe", Email: "jane@company.com", Department: "HR"}

	tests := []struct {
		name   string
		mutate func(in *models.EmployeeInput)
		msg    string
	}{
		{"missing code", func(in *models.EmployeeInput) { in.EmployeeID = " " }, "employee_id is required"},
		{"missing name", func(in *models.EmployeeInput) { in.FullName = "" }, "full_name is required"},
		{"missing email", func(in *models.EmployeeInput) { in.Email = "" }, "email is required"},
		{"bad email", func(in *models.EmployeeInput) { in.Email = "jane" }, "not a valid address"},
		{"missing department", func(in *models.EmployeeInput) { in.Department = "\t" }, "department is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeEmployees()
			s := NewEmployeeService(nil, &fakeManager{employees: repo})

			in := valid
			tt.mutate(&in)
			_, err := s.Create(context.Background(), in)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, err.Error(), tt.msg)
			assert.Empty(t, repo.created)
		})
	}
}

func TestEmployeeService_CreateTrimsInput(t *testing.T) {
	repo := newFakeEmployees()
	s := NewEmployeeService(nil, &fakeManager{employees: repo})

	blank := "  "
	pos := " Recruiter "
	e, err := s.Create(context.Background(), models.EmployeeInput{
		EmployeeID: " EMP001 ", FullName: " Jane Doe", Email: "jane@company.com ", Department: "HR",
		Position: &pos, Phone: &blank,
	})
	require.NoError(t, err)
	assert.Equal(t, "EMP001", e.EmployeeID)
	assert.Equal(t, "Jane Doe", e.FullName)
	assert.Equal(t, "Recruiter", *e.Position)
	assert.Nil(t, e.Phone)
}

func TestEmployeeService_CreateWrapsRepoError(t *testing.T) {
	repo := newFakeEmployees()
	repo.err = common.ErrAlreadyExists
	s := NewEmployeeService(nil, &fakeManager{employees: repo})

	_, err := s.Create(context.Background(), models.EmployeeInput{EmployeeID: "EMP001", FullName: "Jane", Email: "j@x.io", Department: "HR"})
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestEmployeeService_UpdateIgnoresCode(t *testing.T) {
	repo := newFakeEmployees(models.Employee{ID: 1, EmployeeID: "EMP001", FullName: "Jane"})
	s := NewEmployeeService(nil, &fakeManager{employees: repo})

	e, err := s.Update(context.Background(), 1, models.EmployeeInput{FullName: "Jane Roe", Email: "jane@x.io", Department: "Design"})
	require.NoError(t, err)
	assert.Equal(t, "EMP001", e.EmployeeID)
	assert.Equal(t, "Jane Roe", e.FullName)

	_, err = s.Update(context.Background(), 9, models.EmployeeInput{FullName: "X", Email: "x@x.io", Department: "D"})
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestEmployeeService_ListTrimsSearch(t *testing.T) {
	repo := newFakeEmployees()
	s := NewEmployeeService(nil, &fakeManager{employees: repo})

	_, err := s.List(context.Background(), models.EmployeeFilter{Search: "  jane ", Department: "HR"})
	require.NoError(t, err)
	assert.Equal(t, models.EmployeeFilter{Search: "jane", Department: "HR"}, repo.lastF)
}

func TestEmployeeService_Delete(t *testing.T) {
	repo := newFakeEmployees(models.Employee{ID: 1})
	s := NewEmployeeService(nil, &fakeManager{employees: repo})

	require.NoError(t, s.Delete(context.Background(), 1))
	err := s.Delete(context.Background(), 1)
	require.True(t, errors.Is(err, common.ErrNotFound))
}
