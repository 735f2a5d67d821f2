// Package auth provides credential issuing and verification services.
package auth

import (
	"context"

	"github.com/askloop/askloop-api/internal/domain"
)

// TokenService defines operations for signing and verifying the two
// credentials the API issues: the access credential that authorizes
// mutations, and the identity-claim credential clients use for display.
type TokenService interface {
	// IssueAccessToken creates a signed access credential carrying the
	// account ID. Returns the token string or an error if signing fails.
	IssueAccessToken(ctx context.Context, accountID int64) (string, error)

	// IssueIDToken creates a signed identity-claim credential carrying the
	// account's subject, name, and username. It is issued alongside the
	// access credential and is never accepted for authorization.
	IssueIDToken(ctx context.Context, account *domain.Account) (string, error)

	// VerifyAccessToken checks the signature of an access credential and
	// extracts the account ID. Returns ErrInvalidToken if the token is
	// malformed, unsigned, or signed with the wrong key.
	VerifyAccessToken(ctx context.Context, tokenString string) (int64, error)
}
