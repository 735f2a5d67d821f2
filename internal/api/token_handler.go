package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/askloop/askloop-api/internal/api/shared"
	"github.com/askloop/askloop-api/internal/platform/logger"
	"github.com/askloop/askloop-api/internal/service/auth"
	"github.com/askloop/askloop-api/internal/store"
)

// TokenHandler implements the credential issuer: it validates a password
// grant and signs the access and identity credentials.
type TokenHandler struct {
	accounts store.AccountStore
	tokens   auth.TokenService
	verifier auth.PasswordVerifier
	logger   *slog.Logger
}

// NewTokenHandler creates a new TokenHandler with the given dependencies.
func NewTokenHandler(
	accounts store.AccountStore,
	tokens auth.TokenService,
	verifier auth.PasswordVerifier,
	logger *slog.Logger,
) *TokenHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &TokenHandler{
		accounts: accounts,
		tokens:   tokens,
		verifier: verifier,
		logger:   logger.With(slog.String("component", "token_handler")),
	}
}

// Issue handles POST /tokens.
//
// Failures use OAuth-style error codes: invalid_request for missing fields,
// unsupported_grant_type for anything but the password grant, and
// invalid_client for an unknown username or wrong password. The last two are
// deliberately indistinguishable to the client.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req TokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithErrorCode(w, r, http.StatusBadRequest, auth.ErrInvalidRequest.Error())
		return
	}

	if req.GrantType == "" || req.Username == "" || req.Password == "" {
		shared.RespondWithErrorCode(w, r, http.StatusBadRequest, auth.ErrInvalidRequest.Error())
		return
	}

	if req.GrantType != "password" {
		shared.RespondWithErrorCode(w, r, http.StatusBadRequest, auth.ErrUnsupportedGrantType.Error())
		return
	}

	account, err := h.accounts.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			shared.RespondWithErrorCode(w, r, http.StatusBadRequest, auth.ErrInvalidClient.Error())
			return
		}
		shared.RespondWithInternalError(w, r, err)
		return
	}

	if err := h.verifier.Compare(account.HashedPassword, req.Password); err != nil {
		log.Debug("password mismatch", slog.String("username", req.Username))
		shared.RespondWithErrorCode(w, r, http.StatusBadRequest, auth.ErrInvalidClient.Error())
		return
	}

	accessToken, err := h.tokens.IssueAccessToken(r.Context(), account.ID)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	idToken, err := h.tokens.IssueIDToken(r.Context(), account)
	if err != nil {
		shared.RespondWithInternalError(w, r, err)
		return
	}

	log.Info("credentials issued", slog.Int64("account_id", account.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, TokenResponse{
		TokenType:   "Bearer",
		AccessToken: accessToken,
		IDToken:     idToken,
	})
}
