package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/cryptox"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// AuthService defines the account operations of the CLI.
//
// Contract:
//   - Register: validate, reject a taken email, hash the password, store the
//     user and start a session.
//   - Login: verify the credential, record the login and start a session.
//   - Logout: drop every session of the current user.
//   - CurrentUser: the user behind the first valid session, or nil.
//   - AdminLogin/AdminLogout/IsAdmin: the installation-wide admin flag.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, error)
	Logout(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)
	AdminLogin(ctx context.Context, email, password string) (*models.Admin, error)
	AdminLogout(ctx context.Context)
	IsAdmin(ctx context.Context) bool
}

// RegisterInput is what a user types on registration. Password is plain text.
type RegisterInput struct {
	Name     string
	Email    string
	Mobile   string
	Password string
}

type authService struct {
	store Store
}

func NewAuthService(store Store) AuthService {
	return &authService{store: store}
}

func (a *authService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	mobile := strings.TrimSpace(in.Mobile)
	password := strings.TrimSpace(in.Password)
	if name == "" || email == "" || mobile == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	existing, err := a.store.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, common.ErrDuplicateEmail
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)

	u, err := a.store.AddUser(ctx, models.NewUser{
		Name:          name,
		Email:         email,
		Password:      cryptox.HashPassword(pw),
		CompactMobile: models.CompactMobile(mobile),
	})
	if err != nil {
		return nil, err
	}
	a.store.CreateSession(ctx, email)
	return u, nil
}

func (a *authService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	password = strings.TrimSpace(password)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	u, err := a.store.VerifyUser(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("verify user: %w", err)
	}
	if u == nil {
		return nil, common.ErrInvalidCredentials
	}

	updated, err := a.store.UpdateUserLogin(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("record login: %w", err)
	}
	if updated != nil {
		u = updated
	}
	a.store.CreateSession(ctx, email)
	return u, nil
}

func (a *authService) Logout(ctx context.Context) error {
	s, err := a.store.CurrentSession(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		return common.ErrNotLoggedIn
	}
	return a.store.ClearSession(ctx, s.Email)
}

// CurrentUser clears a session whose user no longer exists.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, error) {
	s, err := a.store.CurrentSession(ctx)
	if err != nil || s == nil {
		return nil, err
	}

	u, err := a.store.GetUserByEmail(ctx, s.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		if err := a.store.ClearSession(ctx, s.Email); err != nil {
			return nil, err
		}
		return nil, nil
	}
	return u, nil
}

func (a *authService) AdminLogin(ctx context.Context, email, password string) (*models.Admin, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	admin, err := a.store.VerifyAdmin(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("verify admin: %w", err)
	}
	if admin == nil {
		return nil, common.ErrInvalidCredentials
	}
	a.store.SetAdminLoggedIn(ctx, true)
	return admin, nil
}

func (a *authService) AdminLogout(ctx context.Context) {
	a.store.SetAdminLoggedIn(ctx, false)
}

func (a *authService) IsAdmin(ctx context.Context) bool {
	return a.store.IsAdminLoggedIn(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
