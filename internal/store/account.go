package store

import (
	"context"

	"github.com/askloop/askloop-api/internal/domain"
)

// AccountStore defines the interface for account persistence.
type AccountStore interface {
	// Create saves a new account and returns its generated ID.
	// The account must already carry a hashed password.
	// Returns ErrUsernameTaken if the username is already in use.
	Create(ctx context.Context, account *domain.Account) (int64, error)

	// GetAll returns every account ordered by ID.
	GetAll(ctx context.Context) ([]domain.Account, error)

	// GetByID retrieves an account by its ID.
	// Returns ErrAccountNotFound if it does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Account, error)

	// GetByUsername retrieves an account by its unique username.
	// Returns ErrAccountNotFound if it does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.Account, error)

	// UpdateName replaces the display name of an account.
	// Returns ErrAccountNotFound if the row no longer exists; a concurrent
	// delete between a caller's load and this write surfaces here.
	UpdateName(ctx context.Context, id int64, name string) error

	// Delete removes an account. The database cascades the delete to the
	// account's questions and answers.
	// Returns ErrAccountNotFound if the row did not exist.
	Delete(ctx context.Context, id int64) error
}
