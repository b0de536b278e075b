package facade

import (
	"context"
	"encoding/json"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

const (
	adminLoggedInKey = "ncc_admin_logged_in_v1"
	settingsKey      = "ncc_user_settings"
)

// SetAdminLoggedIn records whether an admin is logged in on this
// installation. Write failures are logged.
func (f *Facade) SetAdminLoggedIn(ctx context.Context, loggedIn bool) {
	value := []byte("0")
	if loggedIn {
		value = []byte("1")
	}
	if err := f.metadataRepo(f.db).Set(ctx, adminLoggedInKey, value); err != nil {
		f.log.Warn(ctx, "failed to store admin flag", "err", err)
	}
}

func (f *Facade) IsAdminLoggedIn(ctx context.Context) bool {
	v, ok, err := f.metadataRepo(f.db).Get(ctx, adminLoggedInKey)
	if err != nil {
		f.log.Warn(ctx, "failed to read admin flag", "err", err)
		return false
	}
	return ok && string(v) == "1"
}

// LoadSettings returns the stored settings. Missing fields, a missing blob
// and a corrupt blob all fall back to the defaults.
func (f *Facade) LoadSettings(ctx context.Context) models.Settings {
	s := models.DefaultSettings()
	v, ok, err := f.metadataRepo(f.db).Get(ctx, settingsKey)
	if err != nil {
		f.log.Warn(ctx, "failed to read settings", "err", err)
		return s
	}
	if !ok {
		return s
	}
	if err := json.Unmarshal(v, &s); err != nil {
		f.log.Warn(ctx, "stored settings are corrupt, using defaults", "err", err)
		return models.DefaultSettings()
	}
	return s
}

// SaveSettings stores s. Write failures are logged.
func (f *Facade) SaveSettings(ctx context.Context, s models.Settings) {
	v, err := json.Marshal(s)
	if err != nil {
		f.log.Warn(ctx, "failed to encode settings", "err", err)
		return
	}
	if err := f.metadataRepo(f.db).Set(ctx, settingsKey, v); err != nil {
		f.log.Warn(ctx, "failed to store settings", "err", err)
	}
}
