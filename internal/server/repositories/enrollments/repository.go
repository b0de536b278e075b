package enrollments

import (
	"context"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

type Repository interface {
	Create(ctx context.Context, e *models.Enrollment) error
	// List returns all enrollments in submission order.
	List(ctx context.Context) ([]models.Enrollment, error)
	ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error)
	Clear(ctx context.Context) error
}
