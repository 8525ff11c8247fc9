package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/hrmsync/internal/buildinfo"
	"github.com/dmitrijs2005/hrmsync/internal/client/cli"
	"github.com/dmitrijs2005/hrmsync/internal/client/config"
	"github.com/dmitrijs2005/hrmsync/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel, logging.FormatText)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
