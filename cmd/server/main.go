// Package main implements the entry point for the askloop API server,
// a Q&A forum REST API with token-based authentication and
// ownership-enforced CRUD over accounts, questions, and answers.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/askloop/askloop-api/internal/config"
	"github.com/askloop/askloop-api/internal/platform/logger"
	"github.com/askloop/askloop-api/internal/platform/postgres"
	"github.com/askloop/askloop-api/internal/redact"
)

func main() {
	if err := run(); err != nil {
		// Startup errors can carry the database URL; never log it raw.
		log.Fatalf("Failed to start application: %s", redact.Error(err))
	}
}

// run loads configuration, wires dependencies, applies migrations, and
// serves until interrupted.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to set up database: %w", err)
	}

	ctx := context.Background()

	if err := postgres.MigrateUp(ctx, db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	appLogger.Info("database schema up to date")

	app, err := newApplication(cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
