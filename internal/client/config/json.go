package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coachdesk/internal/flagx"
	"github.com/dmitrijs2005/coachdesk/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty", so a file can disable the remote
// with "api_base_url": "" while leaving other defaults alone.
type JsonConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DatabasePath   *string         `json:"database_path"`
	SessionTTL     *timex.Duration `json:"session_ttl"`
	AdminEmail     *string         `json:"admin_email"`
	AdminPassword  *string         `json:"admin_password"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
	ArchiveDir     *string         `json:"archive_dir"`
	ArchiveURL     *string         `json:"archive_url"`

	S3 *struct {
		Bucket    string `json:"bucket"`
		Prefix    string `json:"prefix"`
		Region    string `json:"region"`
		Endpoint  string `json:"endpoint"`
		AccessKey string `json:"access_key"`
		SecretKey string `json:"secret_key"`
	} `json:"s3"`
}

// parseJson overlays cfg with the JSON file named by -c/-config in args.
// Without such a flag it does nothing.
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

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.AdminEmail, jc.AdminEmail)
	setString(&cfg.AdminPassword, jc.AdminPassword)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogFormat, jc.LogFormat)
	setString(&cfg.ArchiveDir, jc.ArchiveDir)
	setString(&cfg.ArchiveURL, jc.ArchiveURL)
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SessionTTL != nil {
		cfg.SessionTTL = jc.SessionTTL.Duration
	}
	if jc.S3 != nil {
		cfg.S3.Bucket = jc.S3.Bucket
		cfg.S3.Prefix = jc.S3.Prefix
		cfg.S3.Region = jc.S3.Region
		cfg.S3.Endpoint = jc.S3.Endpoint
		cfg.S3.AccessKey = jc.S3.AccessKey
		cfg.S3.SecretKey = jc.S3.SecretKey
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
