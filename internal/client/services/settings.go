package services

import (
	"context"

	"github.com/dmitrijs2005/coachdesk/internal/models"
)

type SettingsService interface {
	Load(ctx context.Context) models.Settings
	Save(ctx context.Context, s models.Settings)
	// Toggle flips one named setting and returns the saved result. It
	// reports false for an unknown name.
	Toggle(ctx context.Context, name string) (models.Settings, bool)
}

type settingsService struct {
	store Store
}

func NewSettingsService(store Store) SettingsService {
	return &settingsService{store: store}
}

func (s *settingsService) Load(ctx context.Context) models.Settings {
	return s.store.LoadSettings(ctx)
}

func (s *settingsService) Save(ctx context.Context, settings models.Settings) {
	s.store.SaveSettings(ctx, settings)
}

func (s *settingsService) Toggle(ctx context.Context, name string) (models.Settings, bool) {
	settings := s.store.LoadSettings(ctx)
	switch name {
	case "email":
		settings.EmailNotifications = !settings.EmailNotifications
	case "sms":
		settings.SMSNotifications = !settings.SMSNotifications
	case "motion":
		settings.MotionToggle = !settings.MotionToggle
	default:
		return settings, false
	}
	s.store.SaveSettings(ctx, settings)
	return settings, true
}
