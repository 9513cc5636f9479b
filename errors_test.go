package wayfinder

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name      string
		err       *Error
		category  ErrorCategory
		retryable bool
	}{
		{
			name:      "transient error",
			err:       NewTransientError("rate limited", 429, nil),
			category:  ErrorTransient,
			retryable: true,
		},
		{
			name:      "permanent error",
			err:       NewPermanentError("invalid API key", 401, nil),
			category:  ErrorPermanent,
			retryable: false,
		},
		{
			name:      "user input error",
			err:       NewUserInputError("bad request", 400, nil),
			category:  ErrorUserInput,
			retryable: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category())
			assert.Equal(t, tt.retryable, tt.err.Retryable())
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewPermanentError("model not found", 404, nil)
		assert.Equal(t, "model not found", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := NewTransientError("request failed", 0, cause)
		assert.Equal(t, "request failed: connection reset", err.Error())
		assert.True(t, errors.Is(err, cause))
	})
}

func TestErrorHelpers(t *testing.T) {
	t.Run("IsTransient finds wrapped categorized errors", func(t *testing.T) {
		inner := NewTransientError("overloaded", 503, nil)
		wrapped := fmt.Errorf("chat failed: %w", inner)

		assert.True(t, IsTransient(wrapped))
		assert.False(t, IsPermanent(wrapped))
		assert.Equal(t, 503, StatusCodeOf(wrapped))
	})

	t.Run("IsTransient is false for plain errors", func(t *testing.T) {
		assert.False(t, IsTransient(errors.New("plain")))
		assert.Zero(t, StatusCodeOf(errors.New("plain")))
	})

	t.Run("RetryAfterOf returns server suggested delay", func(t *testing.T) {
		err := NewTransientErrorWithRetry("rate limited", 429, 5*time.Second, nil)
		assert.Equal(t, 5*time.Second, RetryAfterOf(err))
	})
}
