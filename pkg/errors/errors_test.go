package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusCodes(t *testing.T) {
	tests := []struct {
		err    *AppError
		status int
	}{
		{Validation("bad input"), http.StatusBadRequest},
		{Unauthorized("invalid token"), http.StatusUnauthorized},
		{NotFound("patient"), http.StatusNotFound},
		{Conflict("duplicate email"), http.StatusConflict},
		{Internal(errors.New("boom")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.status, tt.err.StatusCode())
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestAs(t *testing.T) {
	wrapped := fmt.Errorf("handling request: %w", NotFound("treatment"))

	appErr, ok := As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, ErrNotFound, appErr.Code)

	_, ok = As(errors.New("plain"))
	assert.False(t, ok)
}
