// Package bus implements the K/V + pub/sub contract of spec.md §6.3: GET,
// SETEX, DEL, SCAN_ITER, PUBLISH, SUBSCRIBE, PING. It is the substrate for
// the Approval Queue's pending/response mirrors (§4.5), the Message Bus's
// fan-out events (§4.6), and the Agent Runner's stop-signal key (§4.2).
package bus

import "context"

// Subscription is a live channel subscription. Messages arrive on Receive
// until the context passed to Subscribe is cancelled or Close is called.
type Subscription interface {
	Receive(ctx context.Context) (payload string, ok bool)
	Close() error
}

// Bus is the minimal operation surface spec.md §6.3 requires. Both the
// production Redis-backed implementation and the miniredis-backed test
// double in bus_test.go satisfy it.
type Bus interface {
	// Get returns (value, found, error). found is false and error nil on a
	// cache miss.
	Get(ctx context.Context, key string) (string, bool, error)
	// SetEx sets key=value with an expiry.
	SetEx(ctx context.Context, key, value string, ttlSeconds int64) error
	// Del removes a key; it is not an error if the key is already absent.
	Del(ctx context.Context, key string) error
	// ScanKeys returns every key matching pattern (SCAN_ITER semantics — no
	// single-call limit, cursor-driven under the hood).
	ScanKeys(ctx context.Context, pattern string) ([]string, error)
	// Publish fans payload out to every current subscriber of channel. It is
	// fire-and-forget: no subscriber is not an error.
	Publish(ctx context.Context, channel, payload string) error
	// Subscribe opens a subscription to channel.
	Subscribe(ctx context.Context, channel string) (Subscription, error)
	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
