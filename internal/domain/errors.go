// Package domain defines the core business entities and their validation rules.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrAuthRequired is returned when an operation needs an authenticated
	// account but no identity was attached to the request.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNotOwner is returned when the attached identity does not own the
	// resource it is trying to mutate.
	ErrNotOwner = errors.New("account does not own this resource")
)

// Identity is the account identity resolved from a request credential.
// Attached reports whether a verified credential was present at all.
type Identity struct {
	AccountID int64
	Attached  bool
}

// RequireOwner checks that the identity is allowed to mutate a resource owned
// by ownerID. It returns ErrAuthRequired when no identity is attached and
// ErrNotOwner on a mismatch. Callers run this before field validation so that
// authorization failures always take precedence over validation failures.
func (id Identity) RequireOwner(ownerID int64) error {
	if !id.Attached {
		return ErrAuthRequired
	}
	if id.AccountID != ownerID {
		return ErrNotOwner
	}
	return nil
}

// Require checks only that an identity is attached, for operations that need
// authentication but no ownership check (creating questions and answers).
func (id Identity) Require() error {
	if !id.Attached {
		return ErrAuthRequired
	}
	return nil
}
