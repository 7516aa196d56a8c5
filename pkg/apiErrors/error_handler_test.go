package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := map[string]int{
		ErrMissingColumn:         http.StatusBadRequest,
		ErrInvalidFileType:       http.StatusBadRequest,
		ErrInvalidCredentials:    http.StatusUnauthorized,
		ErrUnauthenticated:       http.StatusUnauthorized,
		ErrInsufficientPrivilege: http.StatusForbidden,
		ErrUserAlreadyExists:     http.StatusConflict,
		ErrDatabaseOperation:     http.StatusInternalServerError,
		ErrRouteNotFound:         http.StatusNotFound,
		ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
		"UNKNOWN":                http.StatusInternalServerError,
	}

	for code, want := range tests {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrUserAlreadyExists, "Username already exists", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrUserAlreadyExists, body.Code)
	assert.Equal(t, "Username already exists", body.Message)
	assert.Nil(t, body.Details)
}
