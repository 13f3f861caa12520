package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/retry"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// fast is Default with near-zero delays so tests don't sleep.
var fast = retry.Policy{Base: time.Microsecond, Cap: time.Millisecond, MaxAttempts: 5, Jitter: 0.25}

func TestDo_SucceedsFirstTry(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fast, func(ctx context.Context) error {
		calls++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_RetriesTransientUpToMaxAttempts(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fast, func(ctx context.Context) error {
		calls++
		return sibylerr.Wrap(sibylerr.Transient, "graph timeout", nil)
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, sibylerr.Transient))
	assert.Equal(t, 5, calls)
}

func TestDo_TransientThenSuccess(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fast, func(ctx context.Context) error {
		calls++
		if calls < 3 {
			return sibylerr.Wrap(sibylerr.Transient, "not yet", nil)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestDo_PermanentFailsImmediately(t *testing.T) {
	calls := 0
	err := retry.Do(context.Background(), fast, func(ctx context.Context) error {
		calls++
		return sibylerr.Wrap(sibylerr.Permanent, "validation failed", nil)
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestDo_CancelledContextStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	slow := retry.Policy{Base: time.Hour, Cap: time.Hour, MaxAttempts: 5, Jitter: 0}

	calls := 0
	done := make(chan error, 1)
	go func() {
		done <- retry.Do(ctx, slow, func(ctx context.Context) error {
			calls++
			return sibylerr.Wrap(sibylerr.Transient, "always", nil)
		})
	}()
	cancel()

	select {
	case err := <-done:
		assert.True(t, errors.Is(err, context.Canceled))
		assert.Equal(t, 1, calls)
	case <-time.After(5 * time.Second):
		t.Fatal("Do did not return after context cancellation")
	}
}

func TestDelay_GrowsAndCaps(t *testing.T) {
	p := retry.Policy{Base: 500 * time.Millisecond, Cap: 30 * time.Second, MaxAttempts: 5, Jitter: 0}

	assert.Equal(t, 500*time.Millisecond, p.Delay(1))
	assert.Equal(t, time.Second, p.Delay(2))
	assert.Equal(t, 2*time.Second, p.Delay(3))
	// Far past the doubling horizon the cap holds.
	assert.Equal(t, 30*time.Second, p.Delay(10))
	assert.Equal(t, time.Duration(0), p.Delay(0))
}

func TestDelay_JitterStaysWithinBand(t *testing.T) {
	p := retry.Policy{Base: time.Second, Cap: 30 * time.Second, MaxAttempts: 5, Jitter: 0.25}
	for i := 0; i < 100; i++ {
		d := p.Delay(1)
		assert.GreaterOrEqual(t, d, 750*time.Millisecond)
		assert.LessOrEqual(t, d, 1250*time.Millisecond)
	}
}
