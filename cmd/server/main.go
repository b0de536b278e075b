package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coachdesk/internal/buildinfo"
	"github.com/dmitrijs2005/coachdesk/internal/logging"
	"github.com/dmitrijs2005/coachdesk/internal/server"
	"github.com/dmitrijs2005/coachdesk/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "init failed", "err", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}
}
