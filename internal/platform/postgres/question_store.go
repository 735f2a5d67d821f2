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

// PostgresQuestionStore implements the store.QuestionStore interface
// using a PostgreSQL database as the storage backend.
type PostgresQuestionStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresQuestionStore creates a new PostgreSQL implementation of the
// QuestionStore interface. If logger is nil, the default logger is used.
func NewPostgresQuestionStore(db store.DBTX, logger *slog.Logger) *PostgresQuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresQuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure PostgresQuestionStore implements store.QuestionStore interface
var _ store.QuestionStore = (*PostgresQuestionStore)(nil)

// Create implements store.QuestionStore.Create.
// Returns store.ErrInvalidReference if the owning account vanished between
// the caller's authentication and this write.
func (s *PostgresQuestionStore) Create(ctx context.Context, question *domain.Question) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO questions (account_id, title, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		question.AccountID,
		question.Title,
		question.Description,
		question.CreatedAt,
	).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("question references missing account",
				slog.Int64("account_id", question.AccountID))
			return 0, fmt.Errorf("%w: account %d: %v", store.ErrInvalidReference, question.AccountID, err)
		}
		log.Error("failed to create question",
			slog.String("error", err.Error()),
			slog.Int64("account_id", question.AccountID))
		return 0, MapError(err)
	}

	question.ID = id
	log.Info("question created",
		slog.Int64("question_id", id),
		slog.Int64("account_id", question.AccountID))
	return id, nil
}

// GetAll implements store.QuestionStore.GetAll.
func (s *PostgresQuestionStore) GetAll(ctx context.Context) ([]domain.Question, error) {
	query := `
		SELECT id, account_id, title, description, created_at
		FROM questions
		ORDER BY created_at
	`
	return s.queryMany(ctx, query)
}

// GetByAccountID implements store.QuestionStore.GetByAccountID.
func (s *PostgresQuestionStore) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Question, error) {
	query := `
		SELECT id, account_id, title, description, created_at
		FROM questions
		WHERE account_id = $1
		ORDER BY created_at
	`
	return s.queryMany(ctx, query, accountID)
}

func (s *PostgresQuestionStore) queryMany(ctx context.Context, query string, args ...any) ([]domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list questions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	questions := []domain.Question{}
	for rows.Next() {
		var q domain.Question
		if err := rows.Scan(&q.ID, &q.AccountID, &q.Title, &q.Description, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("question row iteration failed: %w", err)
	}

	return questions, nil
}

// GetByID implements store.QuestionStore.GetByID.
func (s *PostgresQuestionStore) GetByID(ctx context.Context, id int64) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, account_id, title, description, created_at
		FROM questions
		WHERE id = $1
	`

	var q domain.Question
	err := s.db.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.AccountID, &q.Title, &q.Description, &q.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return nil, MapError(err)
	}

	return &q, nil
}

// Update implements store.QuestionStore.Update.
func (s *PostgresQuestionStore) Update(ctx context.Context, id int64, title, description string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE questions SET title = $1, description = $2 WHERE id = $3`

	result, err := s.db.ExecContext(ctx, query, title, description, id)
	if err != nil {
		log.Error("failed to update question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrQuestionNotFound)
}

// Delete implements store.QuestionStore.Delete.
// The ON DELETE CASCADE constraint removes the question's answers in the
// same statement.
func (s *PostgresQuestionStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM questions WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrQuestionNotFound); err != nil {
		return err
	}

	log.Info("question deleted", slog.Int64("question_id", id))
	return nil
}
