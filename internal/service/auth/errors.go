package auth

import "errors"

// Common authentication service errors
var (
	// ErrInvalidToken indicates the token format is invalid or the signature
	// doesn't match
	ErrInvalidToken = errors.New("invalid authentication token")

	// Credential issuance errors, reported to clients as OAuth-style error
	// codes on the token endpoint.

	// ErrInvalidRequest indicates a required grant field was missing
	ErrInvalidRequest = errors.New("invalid_request")

	// ErrUnsupportedGrantType indicates a grant_type other than "password"
	ErrUnsupportedGrantType = errors.New("unsupported_grant_type")

	// ErrInvalidClient indicates an unknown username or a password mismatch
	ErrInvalidClient = errors.New("invalid_client")
)
