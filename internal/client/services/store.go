// Package services contains the application services of the coachdesk
// client: authentication, enrollment, admin analytics, the user profile and
// settings. They hold the rules (validation, hashing, session handling) and
// leave persistence to a Store, normally a *facade.Facade.
package services

import (
	"context"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Store is the persistence surface the services rely on.
type Store interface {
	AddUser(ctx context.Context, in models.NewUser) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateUserLogin(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	VerifyUser(ctx context.Context, email, password string) (*models.User, error)

	AddEnrollment(ctx context.Context, in models.NewEnrollment) (*models.Enrollment, error)
	GetEnrollmentsByEmail(ctx context.Context, email string) ([]models.Enrollment, error)
	GetAllEnrollments(ctx context.Context) ([]models.Enrollment, error)

	CreateSession(ctx context.Context, email string) *models.Session
	CurrentSession(ctx context.Context) (*models.Session, error)
	ClearSession(ctx context.Context, email string) error

	VerifyAdmin(ctx context.Context, email, password string) (*models.Admin, error)
	SetAdminLoggedIn(ctx context.Context, loggedIn bool)
	IsAdminLoggedIn(ctx context.Context) bool

	LoadSettings(ctx context.Context) models.Settings
	SaveSettings(ctx context.Context, s models.Settings)
}
