// Package services contains server-side business logic: accounts,
// enrollments, administrator login and whole-dataset operations.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/cryptox"
	"github.com/dmitrijs2005/coachdesk/internal/models"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/repomanager"
)

const argon2Prefix = "$argon2id$"

// UserService handles registration, login and user lookups.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

// NewUserService constructs a UserService. A nil now uses time.Now.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, now func() time.Time) *UserService {
	if now == nil {
		now = time.Now
	}
	return &UserService{db: db, repomanager: m, now: now}
}

// Register creates an account. The password may arrive already hashed by
// the client (argon2id encoding), in which case it is stored as is.
func (s *UserService) Register(ctx context.Context, in models.NewUser) (*models.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	if name == "" || email == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: name, email and password are required", common.ErrValidation)
	}

	hash := in.Password
	if !strings.HasPrefix(hash, argon2Prefix) {
		pw := []byte(in.Password)
		hash = cryptox.HashPassword(pw)
		common.WipeByteArray(pw)
	}

	u := &models.User{
		ID:            models.NewID(),
		Name:          name,
		Email:         email,
		Password:      hash,
		CompactMobile: models.CompactMobile(in.CompactMobile),
		CreatedAt:     s.now().UTC(),
	}
	if err := s.repomanager.Users(s.db).Create(ctx, u); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return nil, common.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}
	return u, nil
}

// Login checks the password and records the login. Unknown emails and wrong
// passwords both yield common.ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	email = normalizeEmail(email)
	repo := s.repomanager.Users(s.db)

	u, err := repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)
	ok, err := cryptox.VerifyPassword(pw, u.Password)
	if err != nil || !ok {
		return nil, common.ErrInvalidCredentials
	}

	updated, err := repo.RecordLogin(ctx, email, s.now().UTC())
	if err != nil {
		return nil, fmt.Errorf("error recording login: %w", err)
	}
	return updated, nil
}

// Get returns the user or common.ErrNotFound.
func (s *UserService) Get(ctx context.Context, email string) (*models.User, error) {
	return s.repomanager.Users(s.db).GetByEmail(ctx, normalizeEmail(email))
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.repomanager.Users(s.db).List(ctx)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
