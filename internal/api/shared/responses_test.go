package shared_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/askloop/askloop-api/internal/api/shared"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	shared.RespondWithJSON(rec, req, http.StatusOK, map[string]int{"id": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":1}`, rec.Body.String())
}

func TestRespondWithValidationErrors(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/accounts", nil)
	shared.RespondWithValidationErrors(rec, req, []string{"username is required", "name is too short"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `["username is required","name is too short"]`, rec.Body.String())
}

func TestRespondWithErrorCode(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/tokens", nil)
	shared.RespondWithErrorCode(rec, req, http.StatusBadRequest, "invalid_client")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid_client"}`, rec.Body.String())
}

func TestRespondWithStatus_NoBody(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	shared.RespondWithStatus(rec, http.StatusUnauthorized)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	assert.Empty(t, shared.GetTraceID(ctx))

	ctx = shared.SetTraceID(ctx)
	traceID := shared.GetTraceID(ctx)
	assert.Len(t, traceID, 32)

	other := shared.SetTraceID(context.Background())
	assert.NotEqual(t, traceID, shared.GetTraceID(other))
}
