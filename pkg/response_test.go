package pkg

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestError_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"unauthenticated", ErrUnauthenticated, http.StatusUnauthorized, "Not authenticated"},
		{"missing code", ErrMissingCode, http.StatusBadRequest, "No code provided"},
		{"token exchange", ErrTokenExchangeFailed, http.StatusBadRequest, "Failed to get access token"},
		{"identity fetch", ErrIdentityFetchFailed, http.StatusBadRequest, "Failed to get user info"},
		{"guild fetch", ErrUpstreamGuilds, http.StatusBadRequest, "Failed to get servers"},
		{"server not found", ErrServerNotFound, http.StatusNotFound, "Server not found"},
		{"missing user id", ErrMissingUserID, http.StatusBadRequest, "User ID required"},
		{"not configured", ErrServerNotConfigured, http.StatusBadRequest, "Server not configured for verification"},
		{"wrapped domain error", fmt.Errorf("discord: %w", ErrTokenExchangeFailed), http.StatusBadRequest, "Failed to get access token"},
		{"plain kind", ErrNotFound, http.StatusNotFound, "not found"},
		{"rate limited", NewError(ErrTooManyRequests, "slow down"), http.StatusTooManyRequests, "slow down"},
		{"unknown error hides detail", errors.New("database is locked"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			Error(rec, tc.err)

			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, tc.message, decodeError(t, rec))
		})
	}
}

func TestJSON_WritesBareValue(t *testing.T) {
	rec := httptest.NewRecorder()
	JSON(rec, http.StatusOK, []map[string]string{{"id": "1"}})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"1"}]`, rec.Body.String())
}

func TestDomainError_Unwrap(t *testing.T) {
	assert.True(t, errors.Is(ErrMissingCode, ErrBadRequest))
	assert.True(t, errors.Is(ErrUnauthenticated, ErrUnauthorized))
	assert.False(t, errors.Is(ErrMissingCode, ErrNotFound))
	assert.True(t, errors.Is(fmt.Errorf("x: %w", ErrServerNotConfigured), ErrServerNotConfigured))
}
