package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "machinery"}
		assert.Equal(t, "machinery not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "machinery"}
		err2 := &NotFoundError{Entity: "machinery"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "machinery"}
		err2 := &NotFoundError{Entity: "part"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("loading order: %w", ErrServiceOrderNotFound)
		assert.True(t, errors.Is(wrapped, ErrServiceOrderNotFound))
		assert.False(t, errors.Is(wrapped, ErrTaskNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrCompanyNotFound))
		assert.False(t, IsNotFound(ErrCompanyExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "part", Context: "in the company"}
		assert.Equal(t, "part already exists in the company", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "part"}
		assert.Equal(t, "part already exists", err.Error())
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrUserExists))
		assert.False(t, IsAlreadyExists(ErrUserNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "email", Message: "invalid format"}
		assert.Equal(t, "validation error: email - invalid format", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("email", "invalid")))
		assert.True(t, IsValidation(fmt.Errorf("adjusting stock: %w", ErrInsufficientStock)))
		assert.False(t, IsValidation(ErrPartNotFound))
	})

	t.Run("NewValidationFailure keeps the underlying message", func(t *testing.T) {
		err := NewValidationFailure(errors.New("Key: 'Name' failed on the 'required' tag"))
		assert.True(t, IsValidation(err))
		assert.Contains(t, err.Error(), "required")
	})
}

func TestAuthErrors(t *testing.T) {
	assert.True(t, IsAuthentication(ErrInvalidCredentials))
	assert.False(t, IsAuthorization(ErrInvalidCredentials))
	assert.True(t, IsAuthorization(ErrForbidden))
	assert.True(t, IsAuthorization(fmt.Errorf("deleting user: %w", ErrCannotDeleteSelf)))
	assert.True(t, IsConfiguration(ErrStorageNotConfigured))
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewAuthorizationError", func(t *testing.T) {
		err := NewAuthorizationError("nope")
		assert.Equal(t, "nope", err.Error())
		assert.True(t, IsAuthorization(err))
	})
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("loading: %w", ErrMachineryNotFound), http.StatusNotFound},
		{"already exists", ErrPartExists, http.StatusConflict},
		{"validation", ErrInvalidStatus, http.StatusBadRequest},
		{"pagination", ErrInvalidPaginationParams, http.StatusBadRequest},
		{"authentication", ErrInvalidRefreshToken, http.StatusUnauthorized},
		{"authorization", ErrCrossCompanyAccess, http.StatusForbidden},
		{"configuration", ErrStorageNotConfigured, http.StatusServiceUnavailable},
		{"unknown", errors.New("connection reset"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
