package store

import (
	"context"

	"github.com/askloop/askloop-api/internal/domain"
)

// QuestionStore defines the interface for question persistence.
type QuestionStore interface {
	// Create saves a new question and returns its generated ID.
	// Returns ErrInvalidReference if the owning account no longer exists.
	Create(ctx context.Context, question *domain.Question) (int64, error)

	// GetAll returns every question ordered by creation time.
	GetAll(ctx context.Context) ([]domain.Question, error)

	// GetByID retrieves a question by its ID.
	// Returns ErrQuestionNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Question, error)

	// GetByAccountID returns the questions owned by an account,
	// ordered by creation time.
	GetByAccountID(ctx context.Context, accountID int64) ([]domain.Question, error)

	// Update replaces the title and description of a question.
	// Returns ErrQuestionNotFound if the row no longer exists.
	Update(ctx context.Context, id int64, title, description string) error

	// Delete removes a question. The database cascades the delete to its
	// answers. Returns ErrQuestionNotFound if the row did not exist.
	Delete(ctx context.Context, id int64) error
}
