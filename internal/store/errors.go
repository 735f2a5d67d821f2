package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. This is the generic version of the entity-specific not found
	// errors (e.g. ErrAccountNotFound).
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate of
	// a unique entity (e.g. an account with the same username).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidReference is returned when a write references an entity that
	// does not exist (foreign key violation). Callers surface this as a
	// validation failure, never as an internal error.
	ErrInvalidReference = errors.New("referenced entity does not exist")

	// Entity-specific "not found" errors

	// ErrAccountNotFound indicates the requested account does not exist.
	ErrAccountNotFound = fmt.Errorf("%w: account", ErrNotFound)

	// ErrQuestionNotFound indicates the requested question does not exist.
	ErrQuestionNotFound = fmt.Errorf("%w: question", ErrNotFound)

	// ErrAnswerNotFound indicates the requested answer does not exist.
	ErrAnswerNotFound = fmt.Errorf("%w: answer", ErrNotFound)

	// ErrUsernameTaken indicates an account with the given username already
	// exists.
	ErrUsernameTaken = fmt.Errorf("%w: username", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
