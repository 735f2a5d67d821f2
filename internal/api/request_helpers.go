package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/askloop/askloop-api/internal/api/middleware"
	"github.com/askloop/askloop-api/internal/domain"
)

// identityFromRequest builds the request's identity from whatever the
// identity middleware attached. An unattached identity is a valid state;
// handlers decide whether the operation needs one.
func identityFromRequest(r *http.Request) domain.Identity {
	accountID, ok := middleware.GetAccountID(r)
	return domain.Identity{AccountID: accountID, Attached: ok}
}

// pathID extracts a numeric resource ID from the URL path. A non-numeric
// value can never match a row, so callers treat an error as not found.
func pathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}
