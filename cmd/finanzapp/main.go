package main

import (
	"context"
	"os"

	"github.com/dcastano/finanzapp/internal/buildinfo"
	"github.com/dcastano/finanzapp/internal/cli"
	"github.com/dcastano/finanzapp/internal/config"
	"github.com/dcastano/finanzapp/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewDefault()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
