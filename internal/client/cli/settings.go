package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/coachdesk/internal/common"
	"github.com/dmitrijs2005/coachdesk/internal/models"
)

// Settings prints the preferences, or flips one: "settings toggle sms".
func (a *App) Settings(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printSettings(a.settings.Load(ctx))
		return nil
	}
	if len(args) != 2 || strings.ToLower(args[0]) != "toggle" {
		a.println("Usage: settings [toggle email|sms|motion]")
		return common.ErrValidation
	}

	s, ok := a.settings.Toggle(ctx, strings.ToLower(args[1]))
	if !ok {
		a.printf("Unknown setting: %s\n", args[1])
		return common.ErrValidation
	}
	a.printSettings(s)
	return nil
}

func (a *App) printSettings(s models.Settings) {
	a.printf("email  %s\n", onOff(s.EmailNotifications))
	a.printf("sms    %s\n", onOff(s.SMSNotifications))
	a.printf("motion %s\n", onOff(s.MotionToggle))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Mode reports whether the remote API or the local store is in use.
func (a *App) Mode(_ context.Context) error {
	a.printf("Storage mode: %s\n", a.store.Mode())
	return nil
}
