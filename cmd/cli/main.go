package main

import (
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/coachdesk/internal/buildinfo"
	"github.com/dmitrijs2005/coachdesk/internal/client/cli"
	"github.com/dmitrijs2005/coachdesk/internal/client/config"
	"github.com/dmitrijs2005/coachdesk/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "err", err)
		os.Exit(1)
	}

	app.Run(ctx)

}
