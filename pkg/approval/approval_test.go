package approval_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

func newTestBus(t *testing.T) bus.Bus {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return bus.NewFromClient(client)
}

func newTestQueue(t *testing.T) *approval.Queue {
	t.Helper()
	client := testdb.NewTestClient(t)
	return approval.New(client.Client, newTestBus(t), nil, 24*time.Hour, 48*time.Hour)
}

func TestQueue_EnqueueAndRespond(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	rec, err := q.Enqueue(ctx, approval.EnqueueInput{
		OrgID: "org-1", ProjectID: "proj-1", AgentID: "agent-1",
		ApprovalType: "question", Title: "Needs review", Summary: "please review",
	})
	require.NoError(t, err)

	require.NoError(t, q.Respond(ctx, rec.ID, true, "looks good", "alice"))

	// Responding twice is a conflict — P3 monotonicity.
	err = q.Respond(ctx, rec.ID, false, "too late", "bob")
	require.Error(t, err)
	assert.True(t, sibylerr.Is(err, sibylerr.Conflict))
}

func TestQueue_WaitForResponseSeesExistingResponse(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	rec, err := q.Enqueue(ctx, approval.EnqueueInput{
		OrgID: "org-1", ProjectID: "proj-1", AgentID: "agent-1",
		Title: "t", Summary: "s",
	})
	require.NoError(t, err)
	require.NoError(t, q.Respond(ctx, rec.ID, true, "ok", "alice"))

	result, err := q.WaitForResponse(ctx, rec.ID, 2*time.Second)
	require.NoError(t, err)
	assert.True(t, result.Approved)
	assert.Equal(t, "alice", result.By)
}

func TestQueue_WaitForResponseTimesOut(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	rec, err := q.Enqueue(ctx, approval.EnqueueInput{
		OrgID: "org-1", ProjectID: "proj-1", AgentID: "agent-1",
		Title: "t", Summary: "s",
	})
	require.NoError(t, err)

	result, err := q.WaitForResponse(ctx, rec.ID, 100*time.Millisecond)
	require.NoError(t, err)
	assert.False(t, result.Approved)
	assert.True(t, result.TimedOut)
	assert.Equal(t, "system", result.By)
	assert.Equal(t, "Approval request timed out", result.Message)
}

// TestQueue_ReattachWaiterSeesResponseAfterCrash covers S3: a waiter crashes
// before the response arrives; a reattached waiter on a fresh process must
// observe the same payload (P10).
func TestQueue_ReattachWaiterSeesResponseAfterCrash(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	rec, err := q.Enqueue(ctx, approval.EnqueueInput{
		OrgID: "org-1", ProjectID: "proj-1", AgentID: "agent-1",
		Title: "t", Summary: "s",
	})
	require.NoError(t, err)

	require.NoError(t, q.Respond(ctx, rec.ID, true, "approved late", "alice"))

	result, err := q.ReattachWaiter(ctx, rec.ID, 300*time.Second)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Approved)
	assert.Equal(t, "alice", result.By)
}

func TestQueue_ReattachWaiterReturnsNilWhenNeverWaiting(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	result, err := q.ReattachWaiter(ctx, "never-enqueued", 300*time.Second)
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestQueue_ExpireStale(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	rec, err := q.Enqueue(ctx, approval.EnqueueInput{
		OrgID: "org-1", ProjectID: "proj-1", AgentID: "agent-1",
		Title: "t", Summary: "s", Expiry: 1 * time.Millisecond,
	})
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	n, err := q.ExpireStale(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	result, err := q.WaitForResponse(ctx, rec.ID, 10*time.Millisecond)
	require.NoError(t, err)
	assert.True(t, result.TimedOut)
}

func TestQueue_CancelAll(t *testing.T) {
	ctx := context.Background()
	q := newTestQueue(t)

	_, err := q.Enqueue(ctx, approval.EnqueueInput{OrgID: "org-1", ProjectID: "p", AgentID: "a1", Title: "t1", Summary: "s"})
	require.NoError(t, err)
	_, err = q.Enqueue(ctx, approval.EnqueueInput{OrgID: "org-1", ProjectID: "p", AgentID: "a2", Title: "t2", Summary: "s"})
	require.NoError(t, err)

	n, err := q.CancelAll(ctx, "org-1", "tenant rollback")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
