package client

import (
	"context"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Client is the remote API contract used by the facade.
type Client interface {
	// Ping performs the lightweight reachability read (GET /users).
	Ping(ctx context.Context) error

	Register(ctx context.Context, u models.NewUser) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	GetUser(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)

	Enroll(ctx context.Context, e models.NewEnrollment) (*models.Enrollment, error)
	ListEnrollmentsByEmail(ctx context.Context, email string) ([]models.Enrollment, error)
	ListEnrollments(ctx context.Context) ([]models.Enrollment, error)

	// AdminLogin reports whether the server accepted the admin credential
	// and the token it issued.
	AdminLogin(ctx context.Context, email, password string) (bool, string, error)

	// Export returns the dataset document exactly as the server sent it.
	Export(ctx context.Context) ([]byte, error)
	Clear(ctx context.Context) error
}
