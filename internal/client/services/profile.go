package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Profile is the summary shown to a logged-in user.
type Profile struct {
	User        models.User
	Enrollments []models.Enrollment
	MemberDays  int
	LoginCount  int
	LastLogin   *time.Time
}

type ProfileService interface {
	// Current returns the profile of the logged-in user or
	// common.ErrNotLoggedIn.
	Current(ctx context.Context) (*Profile, error)
}

type profileService struct {
	auth  AuthService
	store Store
	now   func() time.Time
}

func NewProfileService(auth AuthService, store Store, now func() time.Time) ProfileService {
	if now == nil {
		now = time.Now
	}
	return &profileService{auth: auth, store: store, now: now}
}

func (s *profileService) Current(ctx context.Context) (*Profile, error) {
	u, err := s.auth.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, common.ErrNotLoggedIn
	}

	enrollments, err := s.store.GetEnrollmentsByEmail(ctx, u.Email)
	if err != nil {
		return nil, err
	}

	days := 0
	if !u.CreatedAt.IsZero() {
		days = int(s.now().Sub(u.CreatedAt) / (24 * time.Hour))
	}
	return &Profile{
		User:        *u,
		Enrollments: enrollments,
		MemberDays:  max(0, days),
		LoginCount:  u.LoginCount,
		LastLogin:   u.LastLogin,
	}, nil
}
