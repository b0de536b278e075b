package cli

import (
	"context"
	"errors"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/client/services"
	"github.com/dmitrijs2005/coachdesk/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

func (a *App) isLoggedIn(ctx context.Context) bool {
	u, err := a.auth.CurrentUser(ctx)
	return err == nil && u != nil
}

func (a *App) isAdmin(ctx context.Context) bool {
	return a.auth.IsAdmin(ctx)
}

// Register prompts for name, email, mobile and password and creates the
// account. The password buffer is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	var in services.RegisterInput
	var err error
	if in.Name, err = getSimpleText(a.reader, "Enter full name", a.out); err != nil {
		return err
	}
	if in.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if in.Mobile, err = getSimpleText(a.reader, "Enter mobile", a.out); err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	in.Password = string(password)

	u, err := a.auth.Register(ctx, in)
	switch {
	case errors.Is(err, common.ErrValidation):
		a.println("All fields are required")
		return err
	case errors.Is(err, common.ErrDuplicateEmail):
		a.println("Email already registered")
		return err
	case err != nil:
		a.log.Error(ctx, "registration failed", "err", err)
		a.println("Registration failed. Please try again.")
		return err
	}

	a.printf("Welcome, %s! You are now logged in.\n", u.Name)
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	u, err := a.auth.Login(ctx, email, string(password))
	switch {
	case errors.Is(err, common.ErrValidation):
		a.println("All fields are required")
		return err
	case errors.Is(err, common.ErrInvalidCredentials):
		a.println("Invalid email or password")
		return err
	case err != nil:
		a.log.Error(ctx, "login failed", "err", err)
		a.println("Login failed. Please try again.")
		return err
	}

	a.printf("Welcome back, %s!\n", u.Name)
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			a.println("Not logged in")
		} else {
			a.log.Error(ctx, "logout failed", "err", err)
			a.println("Logout failed")
		}
		return err
	}
	a.println("Logged out")
	return nil
}

func (a *App) WhoAmI(ctx context.Context) error {
	u, err := a.auth.CurrentUser(ctx)
	if err != nil {
		a.log.Error(ctx, "current user lookup failed", "err", err)
		return err
	}
	if u == nil {
		a.println("Not logged in")
		return nil
	}
	a.printf("%s <%s>\n", u.Name, u.Email)
	return nil
}

func (a *App) Profile(ctx context.Context) error {
	p, err := a.profile.Current(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotLoggedIn) {
			a.println("Not logged in")
		} else {
			a.log.Error(ctx, "profile failed", "err", err)
			a.println("Could not load profile")
		}
		return err
	}

	mobile := p.User.CompactMobile
	if mobile == "" {
		mobile = "Not provided"
	}
	lastLogin := "Never"
	if p.LastLogin != nil {
		lastLogin = p.LastLogin.Local().Format(time.DateTime)
	}

	a.printf("Name:            %s\n", p.User.Name)
	a.printf("Email:           %s\n", p.User.Email)
	a.printf("Mobile:          %s\n", mobile)
	a.printf("Enrollments:     %d\n", len(p.Enrollments))
	a.printf("Member for:      %d days\n", p.MemberDays)
	a.printf("Logins:          %d\n", p.LoginCount)
	a.printf("Last login:      %s\n", lastLogin)
	a.printf("Account created: %s\n", p.User.CreatedAt.Local().Format(time.DateOnly))
	return nil
}
