package main

import (
	"context"
	"fmt"

	"github.com/coinsguard/coinsguard-api/config"
	"github.com/coinsguard/coinsguard-api/internal/database/mongo"
	"github.com/coinsguard/coinsguard-api/internal/database/postgres"
	"github.com/coinsguard/coinsguard-api/internal/database/sqlite"
	"github.com/coinsguard/coinsguard-api/internal/diagnostics"
	"github.com/coinsguard/coinsguard-api/internal/repository"
	"github.com/coinsguard/coinsguard-api/pkg/circuitbreaker"
	"github.com/coinsguard/coinsguard-api/pkg/db"
	"github.com/coinsguard/coinsguard-api/pkg/logger"
	"go.uber.org/zap"
)

// loadConfig loads the optional env file and the configuration, then
// initializes the logger
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(envFile); err != nil {
		return nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
		ServiceName: cfg.Observability.ServiceName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// openStore connects the configured backend. A missing or unreachable
// database leaves the store unavailable instead of failing startup.
func openStore(ctx context.Context, cfg config.DatabaseConfig) *repository.DocumentStore {
	opts := repository.StoreOptions{OperationTimeout: cfg.OperationTimeout}
	if cfg.BreakerEnabled {
		opts.Breaker = circuitbreaker.NewCircuitBreaker(circuitbreaker.DefaultConfig("document-store"))
	}

	if !cfg.URLConfigured() {
		logger.Warn("DATABASE_URL not set, document store unavailable")
		return repository.NewDocumentStore(nil, opts)
	}

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Error("Failed to connect document store, continuing without it",
			zap.String("url", db.MaskURL(cfg.URL)),
			zap.Error(err),
		)
		return repository.NewDocumentStore(nil, opts)
	}

	return repository.NewDocumentStore(backend, opts)
}

func openBackend(ctx context.Context, cfg config.DatabaseConfig) (repository.DocumentBackend, error) {
	driver, err := db.DriverFromURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	switch driver {
	case db.DriverMongo:
		client, err := mongo.NewClient(ctx, mongo.Config{
			URI:            cfg.URL,
			Database:       cfg.Name,
			MaxPoolSize:    uint64(cfg.MaxConns),
			ConnectTimeout: cfg.ConnectTimeout,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case db.DriverPostgres:
		client, err := postgres.NewClient(ctx, postgres.Config{
			URL:        cfg.URL,
			Database:   cfg.Name,
			CACertPath: cfg.CACertPath,
			MaxConns:   cfg.MaxConns,
		})
		if err != nil {
			return nil, err
		}
		return client, nil
	case db.DriverSQLite:
		client, err := sqlite.NewClient(ctx, cfg.URL, cfg.Name)
		if err != nil {
			return nil, err
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
}

// newProbe builds the diagnostics probe for store
func newProbe(store *repository.DocumentStore, cfg config.DatabaseConfig) *diagnostics.Probe {
	return diagnostics.NewProbe(store, diagnostics.Settings{
		URLConfigured:  cfg.URLConfigured(),
		NameConfigured: cfg.NameConfigured(),
	}, cfg.OperationTimeout)
}
