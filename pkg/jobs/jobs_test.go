package jobs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/jobs"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

func newTestQueue(t *testing.T) *jobs.Queue {
	t.Helper()
	client := testdb.NewTestClient(t)
	return jobs.NewQueue(client.DB(), nil)
}

func TestQueue_EnqueueThenClaimReturnsRunnableJob(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	id, err := q.Enqueue(ctx, "org-1", jobs.KindGenerateStatusHint, map[string]any{"agent_id": "a1"})
	require.NoError(t, err)

	claimed, err := q.Claim(ctx, "worker-1", 10)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	assert.Equal(t, id, claimed[0].ID)
	assert.Equal(t, jobs.StatusClaimed, claimed[0].Status)
}

func TestQueue_ClaimIsExclusiveAcrossConcurrentWorkers(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, "org-1", jobs.KindGenerateStatusHint, map[string]any{})
	require.NoError(t, err)

	first, err := q.Claim(ctx, "worker-1", 10)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := q.Claim(ctx, "worker-2", 10)
	require.NoError(t, err)
	assert.Empty(t, second, "an already-claimed job must not be claimed twice")
}

func TestQueue_CompleteSuccessMarksCompleted(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, "org-1", jobs.KindGenerateStatusHint, map[string]any{})
	require.NoError(t, err)
	claimed, err := q.Claim(ctx, "worker-1", 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	require.NoError(t, q.Complete(ctx, claimed[0].ID, nil))

	depth, err := q.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestQueue_CompleteFailureRetriesUntilMaxAttempts(t *testing.T) {
	q := newTestQueue(t)
	ctx := context.Background()

	_, err := q.Enqueue(ctx, "org-1", jobs.KindGenerateStatusHint, map[string]any{})
	require.NoError(t, err)

	claimed, err := q.Claim(ctx, "worker-1", 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	require.NoError(t, q.Complete(ctx, claimed[0].ID, errors.New("boom")))

	depth, err := q.QueueDepth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth, "a retryable failure leaves the job runnable")
}
