package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/askloop/askloop-api/internal/redact"
)

// ErrorResponse defines the error body for endpoints that return structured
// error codes (the token endpoint's invalid_request family).
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// RespondWithErrorCode writes a structured {"error": code} body with the
// given status.
func RespondWithErrorCode(w http.ResponseWriter, r *http.Request, status int, code string) {
	slog.LogAttrs(r.Context(), slog.LevelDebug, "sending error response",
		slog.Int("status_code", status),
		slog.String("error_code", code),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, status, ErrorResponse{Error: code})
}

// RespondWithValidationErrors writes the accumulated field-validation
// messages as a 400 with a JSON array body, preserving field order.
func RespondWithValidationErrors(w http.ResponseWriter, r *http.Request, problems []string) {
	slog.LogAttrs(r.Context(), slog.LevelDebug, "request failed validation",
		slog.Any("problems", problems),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	RespondWithJSON(w, r, http.StatusBadRequest, problems)
}

// RespondWithStatus writes a bare status code with no body. Used for 401,
// 404, 204 and opaque 500 responses.
func RespondWithStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// RespondWithInternalError logs the underlying error server-side with the
// request's trace ID and sends an opaque 500 with no body. The error message
// is redacted before logging; driver errors can embed connection strings.
func RespondWithInternalError(w http.ResponseWriter, r *http.Request, err error) {
	slog.LogAttrs(r.Context(), slog.LevelError, "internal error",
		slog.String("error", redact.Error(err)),
		slog.String("trace_id", GetTraceID(r.Context())),
		slog.String("path", r.URL.Path),
		slog.String("method", r.Method))

	w.WriteHeader(http.StatusInternalServerError)
}
