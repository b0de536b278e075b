package users

import (
	"context"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Repository describes the user operations the facade needs.
type Repository interface {
	// Create inserts u. A taken email yields common.ErrDuplicateEmail.
	Create(ctx context.Context, u *models.User) error

	// GetByEmail returns the user or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all users in insertion order.
	List(ctx context.Context) ([]models.User, error)

	// RecordLogin sets last_login to at and increments login_count.
	// It returns the updated user, or common.ErrNotFound.
	RecordLogin(ctx context.Context, email string, at time.Time) (*models.User, error)

	// ReplaceAll drops every user and stores list instead.
	ReplaceAll(ctx context.Context, list []models.User) error

	// Clear removes every user.
	Clear(ctx context.Context) error
}
