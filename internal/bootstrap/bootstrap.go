// Package bootstrap wires the application together: configuration, logging
// and the storage backend selected by the configuration.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appMigrations "github.com/akushwaha/studentms/internal/app/migrations"
	appRepos "github.com/akushwaha/studentms/internal/app/repositories"
	"github.com/akushwaha/studentms/internal/config"
	"github.com/akushwaha/studentms/internal/db"
	"github.com/akushwaha/studentms/internal/pkg/logger"
	"github.com/akushwaha/studentms/internal/storage"
)

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) != "json"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupRepository builds the student repository for the configured backend.
// The returned cleanup function releases whatever the backend holds open and
// is safe to call exactly once.
func SetupRepository(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.StudentRepository, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		return setupPostgresRepository(ctx, cfg, lgr)
	case config.BackendJSON:
		return setupJSONRepository(cfg, lgr)
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

func setupPostgresRepository(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (appRepos.StudentRepository, func(), error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool, logger.With("migrations"))
	if err := migrator.Apply(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database ready.")
	return appRepos.NewPostgresStudentRepository(database.Pool), database.Close, nil
}

func setupJSONRepository(cfg *config.Config, lgr zerolog.Logger) (appRepos.StudentRepository, func(), error) {
	lgr.Info().Str("path", cfg.Storage.SnapshotPath).Msg("Using file-backed storage")

	store := storage.NewSnapshotStore(cfg.Storage.SnapshotPath, logger.With("storage"))
	repo := appRepos.NewMemoryStudentRepository(store, logger.With("repository"))
	return repo, func() {}, nil
}
