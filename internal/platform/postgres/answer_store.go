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

// PostgresAnswerStore implements the store.AnswerStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAnswerStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAnswerStore creates a new PostgreSQL implementation of the
// AnswerStore interface. If logger is nil, the default logger is used.
func NewPostgresAnswerStore(db store.DBTX, logger *slog.Logger) *PostgresAnswerStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAnswerStore{
		db:     db,
		logger: logger.With(slog.String("component", "answer_store")),
	}
}

// Ensure PostgresAnswerStore implements store.AnswerStore interface
var _ store.AnswerStore = (*PostgresAnswerStore)(nil)

// Create implements store.AnswerStore.Create.
// Returns store.ErrInvalidReference when either foreign key is rejected; the
// caller cannot tell from the error which of the account or question is
// missing, and reports both possibilities.
func (s *PostgresAnswerStore) Create(ctx context.Context, answer *domain.Answer) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO answers (question_id, account_id, description, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err := s.db.QueryRowContext(
		ctx,
		query,
		answer.QuestionID,
		answer.AccountID,
		answer.Description,
		answer.CreatedAt,
	).Scan(&id)
	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Debug("answer references missing account or question",
				slog.Int64("account_id", answer.AccountID),
				slog.Int64("question_id", answer.QuestionID))
			return 0, fmt.Errorf("%w: %v", store.ErrInvalidReference, err)
		}
		log.Error("failed to create answer",
			slog.String("error", err.Error()),
			slog.Int64("account_id", answer.AccountID),
			slog.Int64("question_id", answer.QuestionID))
		return 0, MapError(err)
	}

	answer.ID = id
	log.Info("answer created",
		slog.Int64("answer_id", id),
		slog.Int64("question_id", answer.QuestionID))
	return id, nil
}

// GetAll implements store.AnswerStore.GetAll.
func (s *PostgresAnswerStore) GetAll(ctx context.Context) ([]domain.Answer, error) {
	query := `
		SELECT id, question_id, account_id, description, created_at
		FROM answers
		ORDER BY created_at
	`
	return s.queryMany(ctx, query)
}

// GetByQuestionID implements store.AnswerStore.GetByQuestionID.
func (s *PostgresAnswerStore) GetByQuestionID(ctx context.Context, questionID int64) ([]domain.Answer, error) {
	query := `
		SELECT id, question_id, account_id, description, created_at
		FROM answers
		WHERE question_id = $1
		ORDER BY created_at
	`
	return s.queryMany(ctx, query, questionID)
}

// GetByAccountID implements store.AnswerStore.GetByAccountID.
func (s *PostgresAnswerStore) GetByAccountID(ctx context.Context, accountID int64) ([]domain.Answer, error) {
	query := `
		SELECT id, question_id, account_id, description, created_at
		FROM answers
		WHERE account_id = $1
		ORDER BY created_at
	`
	return s.queryMany(ctx, query, accountID)
}

func (s *PostgresAnswerStore) queryMany(ctx context.Context, query string, args ...any) ([]domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to list answers", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	answers := []domain.Answer{}
	for rows.Next() {
		var a domain.Answer
		if err := rows.Scan(&a.ID, &a.QuestionID, &a.AccountID, &a.Description, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer row: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("answer row iteration failed: %w", err)
	}

	return answers, nil
}

// GetByID implements store.AnswerStore.GetByID.
func (s *PostgresAnswerStore) GetByID(ctx context.Context, id int64) (*domain.Answer, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, question_id, account_id, description, created_at
		FROM answers
		WHERE id = $1
	`

	var a domain.Answer
	err := s.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.QuestionID, &a.AccountID, &a.Description, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAnswerNotFound
		}
		log.Error("failed to get answer",
			slog.String("error", err.Error()),
			slog.Int64("answer_id", id))
		return nil, MapError(err)
	}

	return &a, nil
}

// Update implements store.AnswerStore.Update.
func (s *PostgresAnswerStore) Update(ctx context.Context, id int64, description string) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `UPDATE answers SET description = $1 WHERE id = $2`

	result, err := s.db.ExecContext(ctx, query, description, id)
	if err != nil {
		log.Error("failed to update answer",
			slog.String("error", err.Error()),
			slog.Int64("answer_id", id))
		return MapError(err)
	}

	return CheckRowsAffected(result, store.ErrAnswerNotFound)
}

// Delete implements store.AnswerStore.Delete.
func (s *PostgresAnswerStore) Delete(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM answers WHERE id = $1`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete answer",
			slog.String("error", err.Error()),
			slog.Int64("answer_id", id))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, store.ErrAnswerNotFound); err != nil {
		return err
	}

	log.Info("answer deleted", slog.Int64("answer_id", id))
	return nil
}
