package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/filex"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

const maxImportSize = 10 << 20

func (a *App) AdminLogin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter admin email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.auth.AdminLogin(ctx, email, string(password)); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			a.println("All fields are required")
		case errors.Is(err, common.ErrInvalidCredentials):
			a.println("Invalid email or password")
		default:
			a.log.Error(ctx, "admin login failed", "err", err)
			a.println("Login failed. Please try again.")
		}
		return err
	}
	a.println("Admin mode enabled")
	return nil
}

func (a *App) AdminLogout(ctx context.Context) error {
	a.auth.AdminLogout(ctx)
	a.println("Admin mode disabled")
	return nil
}

// requireAdmin prints a hint and returns ErrNotAdmin unless the admin flag
// is set.
func (a *App) requireAdmin(ctx context.Context) error {
	if a.auth.IsAdmin(ctx) {
		return nil
	}
	a.println("Admin login required (type 'admin')")
	return common.ErrNotAdmin
}

// Stats prints the dashboard: totals, conversion, two-week trends and the
// most recent records.
func (a *App) Stats(ctx context.Context) error {
	r, err := a.analytics.Report(ctx)
	if err != nil {
		if errors.Is(err, common.ErrNotAdmin) {
			a.println("Admin login required (type 'admin')")
		} else {
			a.log.Error(ctx, "analytics failed", "err", err)
			a.println("Could not load statistics")
		}
		return err
	}

	a.printf("Users:       %d\n", r.Users)
	a.printf("Enrollments: %d\n", r.Enrollments)
	a.printf("Conversion:  %d%%\n", r.Conversion)

	a.println()
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DAY\tUSERS\tENROLLMENTS")
	for i := range r.UsersByDay {
		fmt.Fprintf(w, "%s\t%d\t%d\n", r.UsersByDay[i].Day.Format("01-02"),
			r.UsersByDay[i].Count, r.EnrollmentsByDay[i].Count)
	}
	_ = w.Flush()

	if len(r.LatestEnrollments) > 0 {
		a.println()
		a.println("Latest enrollments:")
		a.printEnrollments(r.LatestEnrollments)
	}
	if len(r.LatestUsers) > 0 {
		a.println()
		a.println("Latest users:")
		a.printUsers(r.LatestUsers)
	}
	return nil
}

func (a *App) Users(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	list, err := a.store.GetAllUsers(ctx)
	if err != nil {
		a.log.Error(ctx, "listing users failed", "err", err)
		a.println("Could not load users")
		return err
	}
	if len(list) == 0 {
		a.println("No users")
		return nil
	}
	a.printUsers(list)
	return nil
}

func (a *App) Enrollments(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	list, err := a.store.GetAllEnrollments(ctx)
	if err != nil {
		a.log.Error(ctx, "listing enrollments failed", "err", err)
		a.println("Could not load enrollments")
		return err
	}
	if len(list) == 0 {
		a.println("No enrollments")
		return nil
	}
	a.printEnrollments(list)
	return nil
}

// Export archives the full dataset document.
func (a *App) Export(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	doc, err := a.store.ExportDatabase(ctx)
	if err == nil {
		var where string
		if where, err = a.archiver.SaveDatabase(ctx, doc); err == nil {
			a.printf("Exported to %s\n", where)
			return nil
		}
	}
	a.log.Error(ctx, "export failed", "err", err)
	a.println("Export failed")
	return err
}

// ExportUsers archives the user list without password hashes.
func (a *App) ExportUsers(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	list, err := a.store.GetAllUsers(ctx)
	if err == nil {
		var where string
		if where, err = a.archiver.SaveUsers(ctx, list); err == nil {
			a.printf("Exported %d users to %s\n", len(list), where)
			return nil
		}
	}
	a.log.Error(ctx, "user export failed", "err", err)
	a.println("Export failed")
	return err
}

// Import replaces local data with an export document read from args[0].
func (a *App) Import(ctx context.Context, args []string) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	if len(args) != 1 {
		a.println("Usage: import <file>")
		return common.ErrValidation
	}

	data, err := filex.ReadFileLimited(args[0], maxImportSize)
	if err == nil {
		err = a.store.ImportDatabase(ctx, string(data))
	}
	if err != nil {
		a.log.Error(ctx, "import failed", "file", args[0], "err", err)
		a.println("Import failed")
		return err
	}
	a.println("Import completed")
	return nil
}

func (a *App) Clear(ctx context.Context) error {
	if err := a.requireAdmin(ctx); err != nil {
		return err
	}
	if !Confirm(a.reader, "Delete all users and enrollments?", a.out) {
		a.println("Cancelled")
		return nil
	}
	if err := a.store.ClearDatabase(ctx); err != nil {
		a.log.Error(ctx, "clear failed", "err", err)
		a.println("Clear failed")
		return err
	}
	a.println("All data cleared")
	return nil
}

func (a *App) printUsers(list []models.User) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tMOBILE\tLOGINS\tCREATED")
	for _, u := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n", u.Name, u.Email, dash(u.CompactMobile),
			u.LoginCount, u.CreatedAt.Local().Format(time.DateOnly))
	}
	_ = w.Flush()
}

func (a *App) printEnrollments(list []models.Enrollment) {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tEMAIL\tMOBILE\tCOURSE\tDATE")
	for _, e := range list {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.FullName, e.Email, dash(e.CompactMobile),
			e.Course, e.Timestamp.Local().Format(time.DateTime))
	}
	_ = w.Flush()
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
