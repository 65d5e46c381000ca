package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pranayk/reflections/internal/buildinfo"
	"github.com/pranayk/reflections/internal/client/cli"
	"github.com/pranayk/reflections/internal/client/config"
	"github.com/pranayk/reflections/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
