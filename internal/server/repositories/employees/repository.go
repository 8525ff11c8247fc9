package employees

import (
	"context"

	"github.com/dmitrijs2005/hrmsync/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, f models.EmployeeFilter) ([]models.Employee, error)
	Departments(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id int64) (*models.Employee, error)
	Create(ctx context.Context, in models.EmployeeInput) (*models.Employee, error)
	Update(ctx context.Context, id int64, in models.EmployeeInput) (*models.Employee, error)
	Delete(ctx context.Context, id int64) error
}
