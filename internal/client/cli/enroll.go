package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Enroll prompts for an application. The email prompt defaults to the
// logged-in user's address.
func (a *App) Enroll(ctx context.Context) error {
	var in models.NewEnrollment
	var err error

	current, _ := a.auth.CurrentUser(ctx)

	if in.FullName, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}
	emailPrompt := "Enter email"
	if current != nil {
		emailPrompt += " (empty for " + current.Email + ")"
	}
	if in.Email, err = getSimpleText(a.reader, emailPrompt, a.out); err != nil {
		return err
	}
	if in.Email == "" && current != nil {
		in.Email = current.Email
	}
	if in.Mobile, err = getSimpleText(a.reader, "Enter mobile", a.out); err != nil {
		return err
	}
	if in.Course, err = getSimpleText(a.reader, "Enter course", a.out); err != nil {
		return err
	}

	if _, err := a.enrollments.Submit(ctx, in); err != nil {
		if errors.Is(err, common.ErrValidation) {
			a.println("Please complete all fields correctly.")
		} else {
			a.log.Error(ctx, "enrollment failed", "err", err)
			a.println("Submission failed. Please try again.")
		}
		return err
	}
	a.println("Submitted! We will contact you soon.")
	return nil
}

func (a *App) MyEnrollments(ctx context.Context) error {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if u == nil {
		a.println("Not logged in")
		return common.ErrNotLoggedIn
	}

	list, err := a.enrollments.ForUser(ctx, u.Email)
	if err != nil {
		a.log.Error(ctx, "listing enrollments failed", "err", err)
		a.println("Could not load enrollments")
		return err
	}
	if len(list) == 0 {
		a.println("No enrollments yet")
		return nil
	}
	a.printEnrollments(list)
	return nil
}
