package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/cryptox"
	"github.com/dmitrijs2005/coachdesk/internal/server/auth"
	"github.com/dmitrijs2005/coachdesk/internal/server/config"
	"github.com/dmitrijs2005/coachdesk/internal/server/models"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/repomanager"
)

// AdminService authenticates administrators and issues their tokens.
type AdminService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	jwtSecret   []byte
	tokenTTL    time.Duration
	now         func() time.Time
}

func NewAdminService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config, now func() time.Time) *AdminService {
	if now == nil {
		now = time.Now
	}
	return &AdminService{
		db:          db,
		repomanager: m,
		jwtSecret:   []byte(cfg.SecretKey),
		tokenTTL:    cfg.AdminTokenTTL,
		now:         now,
	}
}

// Seed creates or resets the administrator account.
func (s *AdminService) Seed(ctx context.Context, email, password string) error {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return fmt.Errorf("%w: admin email and password are required", common.ErrValidation)
	}
	account := &models.AdminAccount{Email: email, PasswordHash: cryptox.HashPassword([]byte(password))}
	if err := s.repomanager.Admins(s.db).Upsert(ctx, account); err != nil {
		return fmt.Errorf("error seeding admin: %w", err)
	}
	return nil
}

// Login verifies the credentials and returns a signed admin token.
func (s *AdminService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	account, err := s.repomanager.Admins(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", common.ErrInvalidCredentials
		}
		return "", fmt.Errorf("error fetching admin: %w", err)
	}

	pw := []byte(password)
	defer common.WipeByteArray(pw)
	if ok, err := cryptox.VerifyPassword(pw, account.PasswordHash); err != nil || !ok {
		return "", common.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(account.Email, auth.RoleAdmin, s.jwtSecret, s.now(), s.tokenTTL)
	if err != nil {
		return "", common.ErrInternal
	}
	return token, nil
}

// Authorize returns the admin email carried by a valid admin token.
func (s *AdminService) Authorize(token string) (string, error) {
	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		return "", err
	}
	if claims.Role != auth.RoleAdmin {
		return "", common.ErrNotAdmin
	}
	return claims.Subject, nil
}
