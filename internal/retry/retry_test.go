package retry

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wayfinder-ai/wayfinder"
)

func fastConfig(attempts int) Config {
	return Config{
		MaxAttempts:  attempts,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
}

func TestDo(t *testing.T) {
	t.Run("returns result on first success", func(t *testing.T) {
		calls := 0
		result, err := Do(context.Background(), fastConfig(3), func() (string, error) {
			calls++
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient errors until success", func(t *testing.T) {
		calls := 0
		result, err := Do(context.Background(), fastConfig(5), func() (string, error) {
			calls++
			if calls < 3 {
				return "", wayfinder.NewTransientError("overloaded", 503, nil)
			}
			return "ok", nil
		})
		require.NoError(t, err)
		assert.Equal(t, "ok", result)
		assert.Equal(t, 3, calls)
	})

	t.Run("stops immediately on permanent errors", func(t *testing.T) {
		calls := 0
		_, err := Do(context.Background(), fastConfig(5), func() (string, error) {
			calls++
			return "", wayfinder.NewPermanentError("invalid key", 401, nil)
		})
		assert.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		calls := 0
		_, err := Do(context.Background(), fastConfig(3), func() (string, error) {
			calls++
			return "", wayfinder.NewTransientError("rate limited", 429, nil)
		})
		assert.Error(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("respects context cancellation during backoff", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cfg := Config{MaxAttempts: 3, InitialDelay: time.Minute, MaxDelay: time.Minute, Multiplier: 1}

		done := make(chan error, 1)
		go func() {
			_, err := Do(ctx, cfg, func() (string, error) {
				return "", wayfinder.NewTransientError("overloaded", 503, nil)
			})
			done <- err
		}()

		cancel()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(time.Second):
			t.Fatal("Do did not return after cancellation")
		}
	})
}

func TestDoStream(t *testing.T) {
	t.Run("retries stream setup", func(t *testing.T) {
		calls := 0
		ch, err := DoStream(context.Background(), fastConfig(3), func() (<-chan int, error) {
			calls++
			if calls == 1 {
				return nil, wayfinder.NewTransientError("overloaded", 503, nil)
			}
			out := make(chan int)
			close(out)
			return out, nil
		})
		require.NoError(t, err)
		assert.NotNil(t, ch)
		assert.Equal(t, 2, calls)
	})
}

func TestIsTransient(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"categorized transient", wayfinder.NewTransientError("x", 429, nil), true},
		{"categorized permanent", wayfinder.NewPermanentError("x", 401, nil), false},
		{"googleapi 429", errors.New("googleapi: Error 429: quota exceeded"), true},
		{"googleapi 503", errors.New("googleapi: Error 503: unavailable"), true},
		{"dns temporary", &net.DNSError{IsTemporary: true}, true},
		{"message pattern", errors.New("dial tcp: connection refused"), true},
		{"plain error", errors.New("invalid argument"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTransient(tt.err))
		})
	}
}

func TestConfigDelay(t *testing.T) {
	cfg := Config{
		InitialDelay: time.Second,
		MaxDelay:     10 * time.Second,
		Multiplier:   2.0,
	}

	assert.Equal(t, time.Second, cfg.Delay(0))
	assert.Equal(t, 2*time.Second, cfg.Delay(1))
	assert.Equal(t, 4*time.Second, cfg.Delay(2))
	// Capped at MaxDelay.
	assert.Equal(t, 10*time.Second, cfg.Delay(10))
	// Negative attempts clamp to the initial delay.
	assert.Equal(t, time.Second, cfg.Delay(-1))
}

func TestEffectiveDelay(t *testing.T) {
	t.Run("server retry-after wins when larger", func(t *testing.T) {
		err := wayfinder.NewTransientErrorWithRetry("rate limited", 429, 30*time.Second, nil)
		assert.Equal(t, 30*time.Second, effectiveDelay(time.Second, err))
	})

	t.Run("configured delay wins when larger", func(t *testing.T) {
		err := wayfinder.NewTransientErrorWithRetry("rate limited", 429, time.Millisecond, nil)
		assert.Equal(t, time.Second, effectiveDelay(time.Second, err))
	})
}
