package cli

import (
	"context"
	"fmt"
	"strings"
)

// getStatus renders the prompt decoration: the logged-in email, an admin
// marker and the current mode.
func (a *App) getStatus(ctx context.Context) string {
	parts := make([]string, 0, 3)
	if u, err := a.auth.CurrentUser(ctx); err == nil && u != nil {
		parts = append(parts, u.Email)
	}
	if a.auth.IsAdmin(ctx) {
		parts = append(parts, "admin")
	}
	parts = append(parts, a.store.Mode().String())
	return fmt.Sprintf("(%s)", strings.Join(parts, " "))
}

func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to coachdesk (%s mode, type 'help' for commands)\n", a.store.Mode())
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, a.reader, a.out)
}
