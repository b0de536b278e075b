package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":5000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      admin token validity, minutes
//	-o string   comma-separated CORS origins
//	-l string   log level
//
// Duration flags are accepted as integers in minutes.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-d", "-s", "-t", "-o", "-l"})

	fs := flag.NewFlagSet("coachdesk-server", flag.ContinueOnError)

	fs.StringVar(&cfg.HTTPAddr, "a", cfg.HTTPAddr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	tokenTTL := fs.Int("t", int(cfg.AdminTokenTTL.Minutes()), "admin token validity (in minutes)")
	origins := fs.String("o", strings.Join(cfg.CORSOrigins, ","), "allowed CORS origins")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}
	if *tokenTTL <= 0 {
		return fmt.Errorf("parse flags: token validity must be positive, got %d", *tokenTTL)
	}

	cfg.AdminTokenTTL = time.Duration(*tokenTTL) * time.Minute
	cfg.CORSOrigins = splitOrigins(*origins)
	return nil
}

func splitOrigins(s string) []string {
	out := []string{}
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
