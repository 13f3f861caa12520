package bus_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/bus"
)

func newTestBus(t *testing.T) bus.Bus {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return bus.NewFromClient(client)
}

func TestRedisBus_GetSetExDel(t *testing.T) {
	ctx := context.Background()
	b := newTestBus(t)

	_, found, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	require.False(t, found)

	require.NoError(t, b.SetEx(ctx, "k", "v", 60))
	v, found, err := b.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "v", v)

	require.NoError(t, b.Del(ctx, "k"))
	_, found, err = b.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, found)
}

func TestRedisBus_ScanKeys(t *testing.T) {
	ctx := context.Background()
	b := newTestBus(t)

	require.NoError(t, b.SetEx(ctx, "sibyl:pending_approvals:agent-1:appr-1", "{}", 60))
	require.NoError(t, b.SetEx(ctx, "sibyl:pending_approvals:agent-1:appr-2", "{}", 60))
	require.NoError(t, b.SetEx(ctx, "sibyl:pending_approvals:agent-2:appr-3", "{}", 60))

	keys, err := b.ScanKeys(ctx, "sibyl:pending_approvals:agent-1:*")
	require.NoError(t, err)
	require.Len(t, keys, 2)
}

func TestRedisBus_PublishSubscribe(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	b := newTestBus(t)

	sub, err := b.Subscribe(ctx, "approval_response:appr-1")
	require.NoError(t, err)
	defer sub.Close()

	// miniredis publishes synchronously once a subscriber is registered.
	go func() {
		time.Sleep(50 * time.Millisecond)
		_ = b.Publish(ctx, "approval_response:appr-1", `{"approved":true,"by":"alice"}`)
	}()

	payload, ok := sub.Receive(ctx)
	require.True(t, ok)
	require.Contains(t, payload, "alice")
}
