package config

import (
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/client/archive"
)

// Config holds runtime settings for the coachdesk CLI.
//
// An empty APIBaseURL disables the remote: the facade then starts in local
// mode without probing. An empty AdminEmail disables the local admin
// fallback credential. Exports go to S3 when S3.Bucket is set, else to
// ArchiveURL when set, else to ArchiveDir.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DatabasePath   string
	SessionTTL     time.Duration

	AdminEmail    string
	AdminPassword string

	LogLevel  string
	LogFormat string

	ArchiveDir string
	ArchiveURL string
	S3         archive.S3Config
}

// LoadDefaults populates c with development defaults. The admin pair is a
// placeholder matching the seeded credential of a fresh installation.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5000/api"
	c.RequestTimeout = 5 * time.Second
	c.DatabasePath = "coachdesk.db"
	c.SessionTTL = 24 * time.Hour
	c.AdminEmail = "admin@gmail.com"
	c.AdminPassword = "Admin@123"
	c.LogLevel = "warn"
	c.LogFormat = "text"
	c.ArchiveDir = "exports"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if -c/-config is given) and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJson(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	return cfg, nil
}
