package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/askloop/askloop-api/internal/api/shared"
)

// jsonRequest builds a request with the given JSON body.
func jsonRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	if body == nil {
		return httptest.NewRequest(method, target, nil)
	}
	buf := new(bytes.Buffer)
	require.NoError(t, json.NewEncoder(buf).Encode(body))
	req := httptest.NewRequest(method, target, buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// rawRequest builds a request with a literal body, for malformed payloads.
func rawRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// asAccount attaches an authenticated account identity to the request, the
// way the identity middleware would.
func asAccount(req *http.Request, accountID int64) *http.Request {
	ctx := context.WithValue(req.Context(), shared.AccountIDContextKey, accountID)
	return req.WithContext(ctx)
}

// decodeStringArray decodes a validation-error response body.
func decodeStringArray(t *testing.T, rec *httptest.ResponseRecorder) []string {
	t.Helper()
	var problems []string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&problems))
	return problems
}
