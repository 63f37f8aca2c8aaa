package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/ispolnov/spendcli/internal/buildinfo"
	"github.com/ispolnov/spendcli/internal/cli"
	"github.com/ispolnov/spendcli/internal/config"
	"github.com/ispolnov/spendcli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	app.Run(ctx)
}
