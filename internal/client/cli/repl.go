package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	isAdmin(ctx context.Context) bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	Enroll(ctx context.Context) error
	MyEnrollments(ctx context.Context) error

	AdminLogin(ctx context.Context) error
	AdminLogout(ctx context.Context) error
	Stats(ctx context.Context) error
	Users(ctx context.Context) error
	Enrollments(ctx context.Context) error
	Export(ctx context.Context) error
	ExportUsers(ctx context.Context) error
	Import(ctx context.Context, args []string) error
	Clear(ctx context.Context) error

	Settings(ctx context.Context, args []string) error
	Mode(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, enroll, admin, settings, mode, exit"
	helpUser  = "Available commands: whoami, profile, enroll, myenrollments, logout, settings, mode, exit"
	helpAdmin = "Admin commands: stats, users, enrollments, export, exportusers, import <file>, clear, adminlogout"
)

// runREPL reads one command per line from reader and dispatches it to a.
// The loop ends on EOF or when the user types "exit" or "quit".
//
// Errors returned by handlers are ignored here; handlers print their own
// user-facing messages, which keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, out io.Writer) {
	for {
		fmt.Fprintf(out, "coachdesk %s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			fmt.Fprintln(out)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				fmt.Fprintln(out, helpUser)
			} else {
				fmt.Fprintln(out, helpGuest)
			}
			if a.isAdmin(ctx) {
				fmt.Fprintln(out, helpAdmin)
			}

		case "register":
			_ = a.Register(ctx)
		case "login":
			_ = a.Login(ctx)
		case "logout":
			_ = a.Logout(ctx)
		case "whoami":
			_ = a.WhoAmI(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "enroll":
			_ = a.Enroll(ctx)
		case "myenrollments":
			_ = a.MyEnrollments(ctx)

		case "admin":
			_ = a.AdminLogin(ctx)
		case "adminlogout":
			_ = a.AdminLogout(ctx)
		case "stats":
			_ = a.Stats(ctx)
		case "users":
			_ = a.Users(ctx)
		case "enrollments":
			_ = a.Enrollments(ctx)
		case "export":
			_ = a.Export(ctx)
		case "exportusers":
			_ = a.ExportUsers(ctx)
		case "import":
			_ = a.Import(ctx, args)
		case "clear":
			_ = a.Clear(ctx)

		case "settings":
			_ = a.Settings(ctx, args)
		case "mode":
			_ = a.Mode(ctx)

		case "exit", "quit":
			fmt.Fprintln(out, "Bye!")
			return

		default:
			fmt.Fprintln(out, "Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
