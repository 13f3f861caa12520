// Package retry implements the exponential backoff + jitter policy used
// throughout the runtime: base 0.5s, cap 30s, up to 5 attempts, ±25% jitter.
// It is the single implementation backing the Entity Store async creation
// pipeline, Message Bus polling fallbacks, and Sandbox dispatch send-failure
// handling — every place spec.md calls for "exponential backoff + jitter".
package retry

import (
	"context"
	"math/rand"
	"time"

	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// Policy configures a backoff sequence.
type Policy struct {
	Base       time.Duration
	Cap        time.Duration
	MaxAttempts int
	Jitter      float64 // fraction, e.g. 0.25 for ±25%
}

// Default is the policy named throughout spec.md: base 0.5s, cap 30s, 5
// attempts, ±25% jitter.
var Default = Policy{
	Base:        500 * time.Millisecond,
	Cap:         30 * time.Second,
	MaxAttempts: 5,
	Jitter:      0.25,
}

// Delay returns the backoff delay before attempt n (1-indexed: the delay
// before the *second* attempt is Delay(1)).
func (p Policy) Delay(attempt int) time.Duration {
	if attempt < 1 {
		return 0
	}
	d := float64(p.Base) * float64(int64(1)<<uint(attempt-1))
	if cap := float64(p.Cap); d > cap {
		d = cap
	}
	jitter := d * p.Jitter
	d += (rand.Float64()*2 - 1) * jitter
	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// Do runs fn, retrying on sibylerr.Transient errors per the policy. Non-
// transient errors (including sibylerr.Permanent) return immediately — the
// caller's failure path, not this helper, decides what happens next.
func Do(ctx context.Context, p Policy, fn func(ctx context.Context) error) error {
	var lastErr error
	for attempt := 1; attempt <= p.MaxAttempts; attempt++ {
		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !sibylerr.Retryable(lastErr) {
			return lastErr
		}
		if attempt == p.MaxAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(p.Delay(attempt)):
		}
	}
	return lastErr
}
