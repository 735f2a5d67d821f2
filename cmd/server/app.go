package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/askloop/askloop-api/internal/config"
	"github.com/askloop/askloop-api/internal/platform/postgres"
	"github.com/askloop/askloop-api/internal/service/auth"
	"github.com/askloop/askloop-api/internal/store"
)

// application holds the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	// Stores (using interfaces for proper abstraction)
	accountStore  store.AccountStore
	questionStore store.QuestionStore
	answerStore   store.AnswerStore

	// Auth services
	tokenService     auth.TokenService
	passwordHasher   auth.PasswordHasher
	passwordVerifier auth.PasswordVerifier
}

// newApplication creates a new application instance with all dependencies
// initialized. It accepts the core dependencies that must be established
// before application wiring: configuration, logger, and database connection.
func newApplication(cfg *config.Config, logger *slog.Logger, db *sql.DB) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	var err error
	app.tokenService, err = auth.NewTokenService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token service: %w", err)
	}
	logger.Info("token service initialized")

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	app.passwordVerifier = auth.NewBcryptVerifier()

	app.accountStore = postgres.NewPostgresAccountStore(db, logger)
	app.questionStore = postgres.NewPostgresQuestionStore(db, logger)
	app.answerStore = postgres.NewPostgresAnswerStore(db, logger)

	return app, nil
}

// cleanup releases the application's resources. Called after the HTTP
// server has stopped accepting requests.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}
