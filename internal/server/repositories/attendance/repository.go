package attendance

import (
	"context"

	"github.com/dmitrijs2005/hrmsync/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, f models.AttendanceFilter) ([]models.Attendance, error)
	Create(ctx context.Context, in models.AttendanceCreate) (*models.Attendance, error)
	Update(ctx context.Context, id int64, in models.AttendanceUpdate) (*models.Attendance, error)
	Delete(ctx context.Context, id int64) error
}
