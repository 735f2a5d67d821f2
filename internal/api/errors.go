package api

import (
	"errors"
	"net/http"

	"github.com/askloop/askloop-api/internal/api/shared"
	"github.com/askloop/askloop-api/internal/domain"
	"github.com/askloop/askloop-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes.
// Anything unrecognized is an internal error; its message never reaches the
// client.
func MapErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrAuthRequired),
		errors.Is(err, domain.ErrNotOwner):
		return http.StatusUnauthorized

	case errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, store.ErrInvalidReference):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// respondError translates a domain or store error into the response the
// contract defines: bare 401 and 404 with no body, opaque logged 500 for
// anything unexpected. Duplicate and broken-reference errors carry
// endpoint-specific validation messages, so handlers intercept those before
// landing here.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch status := MapErrorToStatusCode(err); status {
	case http.StatusUnauthorized, http.StatusNotFound:
		shared.RespondWithStatus(w, status)
	default:
		shared.RespondWithInternalError(w, r, err)
	}
}
