package store

import (
	"context"

	"github.com/askloop/askloop-api/internal/domain"
)

// AnswerStore defines the interface for answer persistence.
type AnswerStore interface {
	// Create saves a new answer and returns its generated ID.
	// Returns ErrInvalidReference if the answering account or the target
	// question no longer exists.
	Create(ctx context.Context, answer *domain.Answer) (int64, error)

	// GetAll returns every answer ordered by creation time.
	GetAll(ctx context.Context) ([]domain.Answer, error)

	// GetByID retrieves an answer by its ID.
	// Returns ErrAnswerNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Answer, error)

	// GetByQuestionID returns the answers to a question, ordered by creation
	// time.
	GetByQuestionID(ctx context.Context, questionID int64) ([]domain.Answer, error)

	// GetByAccountID returns the answers written by an account, ordered by
	// creation time.
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.Answer, error)

	// Update replaces the description of an answer.
	// Returns ErrAnswerNotFound if the row no longer exists.
	Update(ctx context.Context, id int64, description string) error

	// Delete removes an answer.
	// Returns ErrAnswerNotFound if the row did not exist.
	Delete(ctx context.Context, id int64) error
}
