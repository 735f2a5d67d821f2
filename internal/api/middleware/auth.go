// Package middleware provides HTTP middleware for the API.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/askloop/askloop-api/internal/api/shared"
	"github.com/askloop/askloop-api/internal/service/auth"
)

// IdentityMiddleware resolves the bearer credential on each request and
// attaches the account identity to the context when verification succeeds.
//
// It never halts a request: a missing, malformed, or badly signed token just
// means the request proceeds anonymously. Handlers decide whether an
// operation requires an attached identity.
type IdentityMiddleware struct {
	tokens auth.TokenService
}

// NewIdentityMiddleware creates a new IdentityMiddleware with the given
// token service.
func NewIdentityMiddleware(tokens auth.TokenService) *IdentityMiddleware {
	return &IdentityMiddleware{tokens: tokens}
}

// Attach extracts and verifies a "Bearer <token>" Authorization header,
// placing the resolved account ID in the request context if valid.
func (m *IdentityMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			next.ServeHTTP(w, r)
			return
		}

		accountID, err := m.tokens.VerifyAccessToken(r.Context(), token)
		if err != nil {
			// Invalid credential: proceed anonymously.
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), shared.AccountIDContextKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccountID extracts the attached account ID from the request context.
// Returns the account ID and a boolean indicating whether one was attached.
func GetAccountID(r *http.Request) (int64, bool) {
	accountID, ok := r.Context().Value(shared.AccountIDContextKey).(int64)
	return accountID, ok
}
