package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/platform/logger"
	"github.com/askloop/askloop-api/internal/store"
)

// PostgresAccountStore implements the store.AccountStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAccountStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAccountStore creates a new PostgreSQL implementation of the
// AccountStore interface. If logger is nil, the default logger is used.
func NewPostgresAccountStore(db store.DBTX, logger *slog.Logger) *PostgresAccountStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAccountStore{
		db:     db,
		logger: logger.With(slog.String("component", "account_store")),
	}
}

// Ensure PostgresAccountStore implements store.AccountStore interface
var _ store.AccountStore = (*PostgresAccountStore)(nil)

// Create implements store.AccountStore.Create.
// Returns store.ErrUsernameTaken when the unique constraint rejects the row.
func (s *PostgresAccountStore) Create(ctx context.Context, account *domain.Account) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO accounts (username, password, name)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(ctx, query, account.Username, account.HashedPassword, account.Name).Scan(&id)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("username already taken", slog.String("username", account.Username))
			return 0, fmt.Errorf("%w: %v", store.ErrUsernameTaken, err)
		}
		log.Error("failed to create account",
			slog.String("error", err.Error()),
			slog.String("username", account.Username))
		return 0, MapError(err)
	}

	account.ID = id
	log.Info("account created", slog.Int64("account_id", id))
	return id, nil
}

// GetAll implements store.AccountStore.GetAll.
func (s *PostgresAccountStore) GetAll(ctx context.Context) ([]domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, username, password, name
		FROM accounts
		ORDER BY id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list accounts", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	accounts := []domain.Account{}
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Username, &account.HashedPassword, &account.Name); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("account row iteration failed: %w", err)
	}

	return accounts, nil
}

// GetByID implements store.AccountStore.GetByID.
func (s *PostgresAccountStore) GetByID(ctx context.Context, id int64) (*domain.Account, error) {
	return s.getOne(ctx, `SELECT id, username, password, name FROM accounts WHERE id = $1`, id)
}

// GetByUsername implements store.AccountStore.GetByUsername.
func (s *PostgresAccountStore) GetByUsername(ctx context.Context, username string) (*domain.Account, error) {
	return s.getOne(ctx, `SELECT id, username, password, name FROM accounts WHERE username = $1`, username)
}

func (s *PostgresAccountStore) getOne(ctx context.Context, query string, arg any) (*domain.Account, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var account domain.Account
	err := s.db.QueryRowContext(ctx, query, arg).Scan(
		&account.ID,
		&account.Username,
		&account.HashedPassword,
		&account.Name,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAccountNotFound
		}
		log.Error("failed to get account", slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &account, nil
}

// UpdateName implements store.AccountStore.UpdateName.
func (s *PostgresAccountStore) UpdateName(ctx context.Context, id int64, name string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE accounts SET name = $1 WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, name, id)
	if err != nil {
		log.Error("failed to update account name",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrAccountNotFound)
}

// Delete implements store.AccountStore.Delete.
// The ON DELETE CASCADE constraints remove the account's questions and
// answers in the same statement.
func (s *PostgresAccountStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM accounts WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete account",
			slog.String("error", err.Error()),
			slog.Int64("account_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAccountNotFound); err != nil {
		return err
	}

	log.Info("account deleted", slog.Int64("account_id", id))
	return nil
}
