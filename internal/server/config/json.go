package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coachdesk/internal/flagx"
	"github.com/dmitrijs2005/coachdesk/internal/timex"
)

// JsonConfig is the on-disk shape of the server configuration. Durations
// accept strings such as "12h" as well as integer nanoseconds; absent
// fields keep their defaults.
type JsonConfig struct {
	HTTPAddr        *string         `json:"http_addr"`
	DatabaseDSN     *string         `json:"database_dsn"`
	SecretKey       *string         `json:"secret_key"`
	AdminTokenTTL   *timex.Duration `json:"admin_token_ttl"`
	AdminEmail      *string         `json:"admin_email"`
	AdminPassword   *string         `json:"admin_password"`
	CORSOrigins     []string        `json:"cors_origins"`
	ShutdownTimeout *timex.Duration `json:"shutdown_timeout"`
	LogLevel        *string         `json:"log_level"`
	LogFormat       *string         `json:"log_format"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
func parseJson(cfg *Config, args []string) error {
	path := flagx.ConfigFile(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&cfg.HTTPAddr, jc.HTTPAddr)
	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.SecretKey, jc.SecretKey)
	setString(&cfg.AdminEmail, jc.AdminEmail)
	setString(&cfg.AdminPassword, jc.AdminPassword)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	if jc.AdminTokenTTL != nil {
		cfg.AdminTokenTTL = jc.AdminTokenTTL.Duration
	}
	if jc.ShutdownTimeout != nil {
		cfg.ShutdownTimeout = jc.ShutdownTimeout.Duration
	}
	if jc.CORSOrigins != nil {
		cfg.CORSOrigins = jc.CORSOrigins
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
