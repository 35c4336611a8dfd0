package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/akushwaha/studentms/internal/app/services"
	"github.com/akushwaha/studentms/internal/bootstrap"
	"github.com/akushwaha/studentms/internal/pkg/logger"
	"github.com/akushwaha/studentms/internal/ui"
)

func main() {
	configPath := flag.String("config", filepath.Join("configs", "config.yaml"), "path to the configuration file")
	flag.Parse()

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize application")
		os.Exit(1)
	}

	// Ctrl-C cancels in-flight repository calls; the menu itself ends with
	// the Exit option or end of input.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, cleanup, err := bootstrap.SetupRepository(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to set up storage backend")
		os.Exit(1)
	}
	defer cleanup()

	service := services.NewStudentService(repo)
	menu := ui.NewMenu(service, os.Stdin, os.Stdout, logger.With("ui"))

	if err := menu.Run(ctx); err != nil {
		lgr.Error().Err(err).Msg("Console session ended with an error")
		os.Exit(1)
	}

	lgr.Info().Msg("Application finished.")
}
