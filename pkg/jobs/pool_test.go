package jobs_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/jobs"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

func TestPool_ProcessesQueuedJobAndMarksCompleted(t *testing.T) {
	q := newTestQueue(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var processed int32
	handlers := map[jobs.Kind]jobs.Handler{
		jobs.KindGenerateStatusHint: func(ctx context.Context, job *jobs.Job) error {
			atomic.AddInt32(&processed, 1)
			return nil
		},
	}

	pool := jobs.NewPool("test-pool", q, handlers, nil, jobs.PoolConfig{
		WorkerCount:  2,
		BatchSize:    4,
		PollInterval: 10 * time.Millisecond,
	})
	pool.Start(ctx)
	defer pool.Stop()

	_, err := q.Enqueue(context.Background(), "org-1", jobs.KindGenerateStatusHint, map[string]any{})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&processed) == 1
	}, 2*time.Second, 10*time.Millisecond)

	depth, err := q.QueueDepth(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, depth)
}

func TestPool_UnregisteredKindFailsTheJobWithoutPanicking(t *testing.T) {
	client := testdb.NewTestClient(t)
	q := jobs.NewQueue(client.DB(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool := jobs.NewPool("test-pool", q, map[jobs.Kind]jobs.Handler{}, nil, jobs.PoolConfig{
		WorkerCount:  1,
		PollInterval: 10 * time.Millisecond,
	})
	pool.Start(ctx)
	defer pool.Stop()

	jobID, err := q.Enqueue(context.Background(), "org-1", jobs.KindRunBackup, map[string]any{})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		var attempts int
		scanErr := client.DB().QueryRowContext(context.Background(),
			`SELECT attempt_count FROM jobs WHERE id = $1`, jobID).Scan(&attempts)
		return scanErr == nil && attempts >= 1
	}, 2*time.Second, 10*time.Millisecond, "job with no handler should still be claimed and attempted")
}
