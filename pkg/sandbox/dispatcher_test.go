package sandbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/sandbox"
	"github.com/sibyl-run/sibyl/pkg/sandbox/podruntime"
	"github.com/sibyl-run/sibyl/pkg/sqlmodels"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

func newTestDispatcher(t *testing.T) (*sandbox.Dispatcher, *sandbox.Controller, string) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	cfg := config.DefaultSandboxConfig()
	cfg.Enabled = true
	ctrl := sandbox.NewController(dbClient.DB(), cfg, podruntime.NewFake())
	sb, err := ctrl.Create(context.Background(), "org-1", "user-1", nil)
	require.NoError(t, err)
	return sandbox.NewDispatcher(dbClient.DB(), cfg), ctrl, sb.ID
}

func TestDispatcher_EnqueueIsIdempotentOnKey(t *testing.T) {
	disp, _, sandboxID := newTestDispatcher(t)
	ctx := context.Background()
	key := "run-once"

	first, err := disp.Enqueue(ctx, sandbox.EnqueueInput{
		OrgID: "org-1", SandboxID: sandboxID, TaskType: "run_tests",
		IdempotencyKey: &key,
	})
	require.NoError(t, err)

	second, err := disp.Enqueue(ctx, sandbox.EnqueueInput{
		OrgID: "org-1", SandboxID: sandboxID, TaskType: "run_tests",
		IdempotencyKey: &key,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestDispatcher_DispatchOrdersByCreatedAtAndRespectsLimit(t *testing.T) {
	disp, _, sandboxID := newTestDispatcher(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := disp.Enqueue(ctx, sandbox.EnqueueInput{
			OrgID: "org-1", SandboxID: sandboxID, TaskType: "run_tests",
		})
		require.NoError(t, err)
		time.Sleep(5 * time.Millisecond)
	}

	var sent []*sqlmodels.SandboxTask
	n, err := disp.Dispatch(ctx, sandboxID, 2, func(ctx context.Context, task *sqlmodels.SandboxTask) error {
		sent = append(sent, task)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, sent, 2)
}

func TestDispatcher_AckThenCompleteSuccess(t *testing.T) {
	disp, _, sandboxID := newTestDispatcher(t)
	ctx := context.Background()

	task, err := disp.Enqueue(ctx, sandbox.EnqueueInput{OrgID: "org-1", SandboxID: sandboxID, TaskType: "run_tests"})
	require.NoError(t, err)

	_, err = disp.Dispatch(ctx, sandboxID, 10, func(ctx context.Context, task *sqlmodels.SandboxTask) error {
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, disp.Ack(ctx, task.ID))
	require.NoError(t, disp.Complete(ctx, task.ID, true, false, map[string]any{"ok": true}, ""))
}

func TestDispatcher_CompleteRetryableRequeuesUntilMaxAttempts(t *testing.T) {
	disp, _, sandboxID := newTestDispatcher(t)
	ctx := context.Background()

	task, err := disp.Enqueue(ctx, sandbox.EnqueueInput{
		OrgID: "org-1", SandboxID: sandboxID, TaskType: "run_tests", MaxAttempts: 2,
	})
	require.NoError(t, err)

	_, err = disp.Dispatch(ctx, sandboxID, 10, func(ctx context.Context, task *sqlmodels.SandboxTask) error { return nil })
	require.NoError(t, err)
	require.NoError(t, disp.Ack(ctx, task.ID))
	require.NoError(t, disp.Complete(ctx, task.ID, false, true, nil, "flaky"))

	// attempt_count is 1 < max_attempts 2: retried, dispatchable again.
	var redispatched bool
	_, err = disp.Dispatch(ctx, sandboxID, 10, func(ctx context.Context, dispatched *sqlmodels.SandboxTask) error {
		if dispatched.ID == task.ID {
			redispatched = true
		}
		return nil
	})
	require.NoError(t, err)
	assert.True(t, redispatched)

	require.NoError(t, disp.Ack(ctx, task.ID))
	require.NoError(t, disp.Complete(ctx, task.ID, false, true, nil, "flaky again"))

	// attempt_count is now 2 == max_attempts: fails instead of retrying.
	var refailedRedispatch bool
	_, err = disp.Dispatch(ctx, sandboxID, 10, func(ctx context.Context, dispatched *sqlmodels.SandboxTask) error {
		if dispatched.ID == task.ID {
			refailedRedispatch = true
		}
		return nil
	})
	require.NoError(t, err)
	assert.False(t, refailedRedispatch, "failed task must not be redispatched")
}

func TestDispatcher_SendFailureAtMaxAttemptsFailsWithDispatchError(t *testing.T) {
	ctx := context.Background()
	dbClient := testdb.NewTestClient(t)
	cfg := config.DefaultSandboxConfig()
	cfg.Enabled = true
	ctrl := sandbox.NewController(dbClient.DB(), cfg, podruntime.NewFake())
	sb, err := ctrl.Create(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	disp := sandbox.NewDispatcher(dbClient.DB(), cfg)

	task, err := disp.Enqueue(ctx, sandbox.EnqueueInput{
		OrgID: "org-1", SandboxID: sb.ID, TaskType: "run_tests", MaxAttempts: 1,
	})
	require.NoError(t, err)

	sent, err := disp.Dispatch(ctx, sb.ID, 10, func(ctx context.Context, task *sqlmodels.SandboxTask) error {
		return errors.New("runner unreachable")
	})
	require.NoError(t, err)
	assert.Zero(t, sent)

	var status, errMsg string
	var attempts int
	require.NoError(t, dbClient.DB().QueryRowContext(ctx,
		`SELECT status, error_message, attempt_count FROM sandbox_tasks WHERE id = $1`, task.ID,
	).Scan(&status, &errMsg, &attempts))
	assert.Equal(t, "failed", status)
	assert.Equal(t, "dispatch_failed_max_attempts", errMsg)
	assert.Equal(t, 1, attempts)
}

func TestDispatcher_FailAllPendingDrainsOrgQueue(t *testing.T) {
	disp, _, sandboxID := newTestDispatcher(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := disp.Enqueue(ctx, sandbox.EnqueueInput{OrgID: "org-1", SandboxID: sandboxID, TaskType: "run_tests"})
		require.NoError(t, err)
	}

	n, err := disp.FailAllPending(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	sent, err := disp.Dispatch(ctx, sandboxID, 10, func(ctx context.Context, task *sqlmodels.SandboxTask) error { return nil })
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}

func TestDispatcher_ReapStaleTasksRequeuesDispatched(t *testing.T) {
	disp, _, sandboxID := newTestDispatcher(t)
	ctx := context.Background()

	task, err := disp.Enqueue(ctx, sandbox.EnqueueInput{OrgID: "org-1", SandboxID: sandboxID, TaskType: "run_tests"})
	require.NoError(t, err)

	_, err = disp.Dispatch(ctx, sandboxID, 10, func(ctx context.Context, task *sqlmodels.SandboxTask) error { return nil })
	require.NoError(t, err)

	result, err := disp.ReapStaleTasks(ctx, -1*time.Second, sandbox.DefaultAckTTL)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Requeued)

	var redispatched bool
	_, err = disp.Dispatch(ctx, sandboxID, 10, func(ctx context.Context, dispatched *sqlmodels.SandboxTask) error {
		if dispatched.ID == task.ID {
			redispatched = true
		}
		return nil
	})
	require.NoError(t, err)
	assert.True(t, redispatched)
}
