package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

type EnrollmentService interface {
	// Submit validates and stores a course application.
	Submit(ctx context.Context, in models.NewEnrollment) (*models.Enrollment, error)
	// ForUser lists the applications submitted with email.
	ForUser(ctx context.Context, email string) ([]models.Enrollment, error)
}

type enrollmentService struct {
	store Store
}

func NewEnrollmentService(store Store) EnrollmentService {
	return &enrollmentService{store: store}
}

func (s *enrollmentService) Submit(ctx context.Context, in models.NewEnrollment) (*models.Enrollment, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = normalizeEmail(in.Email)
	in.Mobile = strings.TrimSpace(in.Mobile)
	in.Course = strings.TrimSpace(in.Course)

	if in.FullName == "" || in.Email == "" || in.Course == "" || models.CompactMobile(in.Mobile) == "" {
		return nil, fmt.Errorf("%w: please complete all fields correctly", common.ErrValidation)
	}

	e, err := s.store.AddEnrollment(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("save enrollment: %w", err)
	}
	return e, nil
}

func (s *enrollmentService) ForUser(ctx context.Context, email string) ([]models.Enrollment, error) {
	return s.store.GetEnrollmentsByEmail(ctx, normalizeEmail(email))
}
