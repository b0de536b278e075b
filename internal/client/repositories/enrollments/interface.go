package enrollments

import (
	"context"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Repository describes the enrollment operations the facade needs.
type Repository interface {
	// Create appends an enrollment.
	Create(ctx context.Context, e *models.Enrollment) error

	// List returns every enrollment in insertion order.
	List(ctx context.Context) ([]models.Enrollment, error)

	// ListByEmail returns the enrollments submitted with the given email.
	ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error)

	// ReplaceAll drops every enrollment and stores list instead.
	ReplaceAll(ctx context.Context, list []models.Enrollment) error

	// Clear removes every enrollment.
	Clear(ctx context.Context) error
}
