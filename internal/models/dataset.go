package models

import "time"

// Dataset is the export document: everything an installation holds.
type Dataset struct {
	Users       []User       `json:"users"`
	Enrollments []Enrollment `json:"enrollments"`
	Admins      []Admin      `json:"admins"`
	ExportDate  time.Time    `json:"export_date"`
}

// Settings are per-installation preferences kept next to the local store.
type Settings struct {
	EmailNotifications bool `json:"emailNotifications"`
	SMSNotifications   bool `json:"smsNotifications"`
	MotionToggle       bool `json:"motionToggle"`
}

// DefaultSettings is used when nothing was saved yet: email on, SMS off,
// motion on.
func DefaultSettings() Settings {
	return Settings{EmailNotifications: true, SMSNotifications: false, MotionToggle: true}
}
