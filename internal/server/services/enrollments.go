package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/repomanager"
)

type EnrollmentService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	now         func() time.Time
}

func NewEnrollmentService(db *sql.DB, m repomanager.RepositoryManager, now func() time.Time) *EnrollmentService {
	if now == nil {
		now = time.Now
	}
	return &EnrollmentService{db: db, repomanager: m, now: now}
}

// Enroll stores an application stamped with the server time.
func (s *EnrollmentService) Enroll(ctx context.Context, in models.NewEnrollment) (*models.Enrollment, error) {
	e := &models.Enrollment{
		ID:            models.NewID(),
		FullName:      strings.TrimSpace(in.FullName),
		Email:         normalizeEmail(in.Email),
		Mobile:        strings.TrimSpace(in.Mobile),
		CompactMobile: models.CompactMobile(in.Mobile),
		Course:        strings.TrimSpace(in.Course),
		Timestamp:     s.now().UTC(),
	}
	if e.FullName == "" || e.Email == "" || e.Course == "" {
		return nil, fmt.Errorf("%w: fullName, email and course are required", common.ErrValidation)
	}
	if err := s.repomanager.Enrollments(s.db).Create(ctx, e); err != nil {
		return nil, fmt.Errorf("error creating enrollment: %w", err)
	}
	return e, nil
}

func (s *EnrollmentService) ListByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	return s.repomanager.Enrollments(s.db).ListByEmail(ctx, normalizeEmail(email))
}

func (s *EnrollmentService) List(ctx context.Context) ([]models.Enrollment, error) {
	return s.repomanager.Enrollments(s.db).List(ctx)
}
