package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dmitrijs2005/coachdesk/internal/client/archive"
	"github.com/dmitrijs2005/coachdesk/internal/client/client"
	"github.com/dmitrijs2005/coachdesk/internal/client/config"
	"github.com/dmitrijs2005/coachdesk/internal/client/facade"
	"github.com/dmitrijs2005/coachdesk/internal/client/services"
	"github.com/dmitrijs2005/coachdesk/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	store       *facade.Facade
	auth        services.AuthService
	enrollments services.EnrollmentService
	analytics   services.AnalyticsService
	profile     services.ProfileService
	settings    services.SettingsService
	archiver    *archive.Archiver

	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database, probes the remote and wires the services.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	var remote client.Client
	if cfg.APIBaseURL != "" {
		remote = client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout)
	}

	store := facade.New(ctx, remote, db, facade.Options{
		ProbeTimeout:  cfg.RequestTimeout,
		SessionTTL:    cfg.SessionTTL,
		AdminEmail:    cfg.AdminEmail,
		AdminPassword: cfg.AdminPassword,
		Logger:        logger,
	})

	sink, err := newSink(ctx, cfg)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := newApp(cfg, store, archive.New(sink, nil), logger, os.Stdin, os.Stdout, nil)
	a.db = db
	return a, nil
}

func newSink(ctx context.Context, cfg *config.Config) (archive.Sink, error) {
	if cfg.S3.Bucket != "" {
		return archive.NewS3Sink(ctx, cfg.S3)
	}
	if cfg.ArchiveURL != "" {
		return archive.NewHTTPSink(cfg.ArchiveURL, &http.Client{Timeout: cfg.RequestTimeout}), nil
	}
	return archive.NewDirSink(cfg.ArchiveDir), nil
}

func newApp(cfg *config.Config, store *facade.Facade, archiver *archive.Archiver, logger logging.Logger,
	in io.Reader, out io.Writer, now func() time.Time) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	auth := services.NewAuthService(store)
	return &App{
		config:      cfg,
		log:         logger.With("module", "cli"),
		store:       store,
		auth:        auth,
		enrollments: services.NewEnrollmentService(store),
		analytics:   services.NewAnalyticsService(store, now),
		profile:     services.NewProfileService(auth, store, now),
		settings:    services.NewSettingsService(store),
		archiver:    archiver,
		reader:      bufio.NewReader(in),
		out:         out,
	}
}

// Run starts the REPL and blocks until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}
