// Package server wires the coachdesk reference API: PostgreSQL storage,
// services, the HTTP router and graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/coachdesk/internal/logging"
	"github.com/dmitrijs2005/coachdesk/internal/server/config"
	"github.com/dmitrijs2005/coachdesk/internal/server/httpserver"
	"github.com/dmitrijs2005/coachdesk/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/coachdesk/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpserver.HTTPServer
}

// NewApp opens the database, applies migrations, seeds the administrator
// and builds the HTTP server.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	db, err := repomanager.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	m := repomanager.NewPostgresRepositoryManager()
	if err := m.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	now := time.Now
	us := services.NewUserService(db, m, now)
	es := services.NewEnrollmentService(db, m, now)
	as := services.NewAdminService(db, m, c, now)
	ds := services.NewDatasetService(db, m, now)

	if c.AdminEmail != "" {
		if err := as.Seed(ctx, c.AdminEmail, c.AdminPassword); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed admin: %w", err)
		}
		logger.Info(ctx, "admin account ready", "email", c.AdminEmail)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpserver.NewMetrics(reg)

	h := httpserver.NewHandler(us, es, as, ds, metrics, logger.With("module", "api"))
	router := httpserver.NewRouter(h, c.CORSOrigins, reg)

	return &App{
		config: c,
		logger: logger,
		db:     db,
		server: httpserver.NewHTTPServer(c.HTTPAddr, router, c.ShutdownTimeout, logger),
	}, nil
}

// Run blocks until SIGINT, SIGTERM or SIGQUIT, or until the server fails.
func (app *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	app.logger.Info(ctx, "Starting app...")
	defer func() {
		if err := app.db.Close(); err != nil {
			app.logger.Warn(context.Background(), "db close", "err", err)
		}
	}()

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, "server stopped", "err", err)
		return err
	}
	app.logger.Info(context.Background(), "App stopped")
	return nil
}
