package facade

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// AddEnrollment stores a course application. The compact mobile is derived
// from in.Mobile.
func (f *Facade) AddEnrollment(ctx context.Context, in models.NewEnrollment) (*models.Enrollment, error) {
	if f.useRemote() {
		e, err := f.remote.Enroll(ctx, in)
		if err == nil {
			return e, nil
		}
		f.degrade(ctx, "add_enrollment", err)
	}

	e := models.Enrollment{
		ID:            models.NewID(),
		FullName:      in.FullName,
		Email:         in.Email,
		Mobile:        in.Mobile,
		CompactMobile: models.CompactMobile(in.Mobile),
		Course:        in.Course,
		Timestamp:     f.now(),
	}
	if err := f.enrollmentRepo(f.db).Create(ctx, &e); err != nil {
		return nil, fmt.Errorf("add enrollment: %w", err)
	}
	return &e, nil
}

// GetEnrollmentsByEmail returns the enrollments submitted with email.
func (f *Facade) GetEnrollmentsByEmail(ctx context.Context, email string) ([]models.Enrollment, error) {
	if f.useRemote() {
		list, err := f.remote.ListEnrollmentsByEmail(ctx, email)
		if err == nil {
			return list, nil
		}
		f.degrade(ctx, "get_enrollments_by_email", err)
	}

	list, err := f.enrollmentRepo(f.db).ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return list, nil
}

// GetAllEnrollments returns every enrollment in insertion order.
func (f *Facade) GetAllEnrollments(ctx context.Context) ([]models.Enrollment, error) {
	if f.useRemote() {
		list, err := f.remote.ListEnrollments(ctx)
		if err == nil {
			return list, nil
		}
		f.degrade(ctx, "get_all_enrollments", err)
	}

	list, err := f.enrollmentRepo(f.db).List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	return list, nil
}
