// Package config loads runtime configuration for the coachdesk CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   remote API base URL ("" disables the remote)
//	-t int      remote request timeout (seconds)
//	-d string   local SQLite database path
//	-l string   log level
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "5s"
// or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:5000/api",
//	  "request_timeout": "5s",
//	  "database_path": "coachdesk.db",
//	  "session_ttl": "24h",
//	  "admin_email": "admin@gmail.com",
//	  "admin_password": "Admin@123",
//	  "log_level": "info",
//	  "log_format": "json",
//	  "archive_dir": "exports",
//	  "s3": {"bucket": "backups", "region": "us-east-1", "endpoint": "http://localhost:9000"}
//	}
//
// When s3.bucket is set, exports go to the bucket instead of archive_dir.
package config
