package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_Error(t *testing.T) {
	t.Run("without wrapped error", func(t *testing.T) {
		err := NewDomainError(ErrorTypeNotFound, "booking not found", nil)
		assert.Equal(t, "not_found: booking not found", err.Error())
	})

	t.Run("with wrapped error", func(t *testing.T) {
		err := NewDomainError(ErrorTypeInternal, "database error", errors.New("connection refused"))
		assert.Equal(t, "internal: database error (connection refused)", err.Error())
	})
}

func TestDomainError_Is(t *testing.T) {
	wrapped := fmt.Errorf("fetching booking: %w", ErrBookingNotFound)

	assert.True(t, errors.Is(wrapped, ErrBookingNotFound))
	assert.False(t, errors.Is(wrapped, ErrMenuItemNotFound))
	assert.False(t, errors.Is(wrapped, errors.New("booking not found")))
}

func TestDomainError_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewDomainError(ErrorTypeInternal, "database error", cause)

	assert.True(t, errors.Is(err, cause))
}

func TestErrorTypeCheckers(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
		want  bool
	}{
		{"not found", ErrMenuItemNotFound, IsNotFoundError, true},
		{"validation", ErrInvalidInput, IsValidationError, true},
		{"unauthorized", ErrInvalidCredentials, IsUnauthorizedError, true},
		{"forbidden", ErrForbidden, IsForbiddenError, true},
		{"conflict", ErrDuplicateUsername, IsConflictError, true},
		{"internal", ErrDatabaseError, IsInternalError, true},
		{"wrapped still matches", fmt.Errorf("ctx: %w", ErrForbidden), IsForbiddenError, true},
		{"plain error never matches", errors.New("boom"), IsNotFoundError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.check(tt.err))
		})
	}
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, ErrorTypeConflict, GetErrorType(ErrDuplicateUsername))
	assert.Equal(t, ErrorType(""), GetErrorType(errors.New("boom")))
}

func TestWithDetail(t *testing.T) {
	err := NewDomainError(ErrorTypeValidation, "invalid input", nil).
		WithDetail("price", "price must not be negative")

	details := GetErrorDetails(err)
	assert.Equal(t, "price must not be negative", details["price"])

	assert.Nil(t, GetErrorDetails(ErrInternal))
}
