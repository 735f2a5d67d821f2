// Package testdb provides helpers for integration tests that need a real
// PostgreSQL instance. Tests that call Open skip automatically when no test
// database is configured, so the unit suite stays runnable without one.
package testdb

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/stretchr/testify/require"

	"github.com/askloop/askloop-api/internal/platform/postgres"
)

// EnvDatabaseURL names the environment variable that points integration
// tests at a disposable database. Migrations run against it and Reset
// truncates its tables, so never point it at real data.
const EnvDatabaseURL = "ASKLOOP_TEST_DATABASE_URL"

const connectTimeout = 5 * time.Second

// Open connects to the test database and brings its schema up to date,
// skipping the test when EnvDatabaseURL is unset. The connection is closed
// automatically when the test finishes.
func Open(t *testing.T) *sql.DB {
	t.Helper()

	url := os.Getenv(EnvDatabaseURL)
	if url == "" {
		t.Skipf("integration test skipped: %s is not set", EnvDatabaseURL)
	}

	db, err := sql.Open("pgx", url)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { _ = db.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	require.NoError(t, postgres.MigrateUp(ctx, db), "failed to migrate test database")
	return db
}

// Reset truncates all application tables and restarts their ID sequences,
// giving each test a clean slate.
func Reset(t *testing.T, db *sql.DB) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	_, err := db.ExecContext(ctx, "TRUNCATE accounts, questions, answers RESTART IDENTITY CASCADE")
	require.NoError(t, err, "failed to reset test database")
}
