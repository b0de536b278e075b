package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

type Repository interface {
	// Create inserts u. A taken email yields common.ErrDuplicateEmail.
	Create(ctx context.Context, u *models.User) error
	// GetByEmail returns the user or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// List returns all users in registration order.
	List(ctx context.Context) ([]models.User, error)
	// RecordLogin stamps a login and returns the updated user, or
	// common.ErrNotFound.
	RecordLogin(ctx context.Context, email string, at time.Time) (*models.User, error)
	Clear(ctx context.Context) error
}
