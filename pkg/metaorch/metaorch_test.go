package metaorch_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/metaorchestratorrecord"
	"github.com/sibyl-run/sibyl/ent/task"
	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/metaorch"
	"github.com/sibyl-run/sibyl/pkg/taskorch"
	"github.com/sibyl-run/sibyl/pkg/taskorch/gates"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

func newTestBus(t *testing.T) bus.Bus {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return bus.NewFromClient(client)
}

type fakeSubprocess struct{}

func (f *fakeSubprocess) Start(ctx context.Context, opts agentrunner.SpawnOptions) (<-chan agentrunner.Message, error) {
	out := make(chan agentrunner.Message)
	close(out)
	return out, nil
}

func (f *fakeSubprocess) Send(ctx context.Context, agentID, content string) error { return nil }

type fixture struct {
	sched   *metaorch.Scheduler
	client  *ent.Client
	orgID   string
	project *ent.Project
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	b := newTestBus(t)
	ctx := context.Background()

	orgID := "org-1"
	project, err := client.Project.Create().SetID("proj-1").SetOrganizationID(orgID).Save(ctx)
	require.NoError(t, err)

	approvals := approval.New(client, b, nil, 24*time.Hour, 48*time.Hour)
	agents := agentrunner.New(client, dbClient.DB(), b, approvals, &fakeSubprocess{}, nil, 50*time.Millisecond, 20*time.Millisecond, time.Minute)
	gr := &gates.Runner{Exec: func(ctx context.Context, command, dir string) (string, string, int, error) {
		return "", "", 0, nil
	}}
	to := taskorch.New(client, agents, approvals, gr, nil, nil, nil, time.Second)

	sched := metaorch.New(client, b, to, nil)
	return &fixture{sched: sched, client: client, orgID: orgID, project: project}
}

func (f *fixture) newTask(t *testing.T, ctx context.Context, id, priority string) *ent.Task {
	t.Helper()
	tsk, err := f.client.Task.Create().
		SetID(id).SetOrganizationID(f.orgID).SetProjectID(f.project.ID).
		SetName(id).SetPriority(task.Priority(priority)).Save(ctx)
	require.NoError(t, err)
	return tsk
}

func TestScheduler_SequentialAdmitsOneAtATime(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	meta, err := f.sched.Create(ctx, metaorch.CreateInput{OrgID: f.orgID, ProjectID: f.project.ID})
	require.NoError(t, err)
	require.NoError(t, f.sched.SetBudget(ctx, meta.ID, 100, 0.8))

	f.newTask(t, ctx, "task-a", "medium")
	f.newTask(t, ctx, "task-b", "medium")
	require.NoError(t, f.sched.QueueTasks(ctx, meta.ID, "task-a", "task-b"))

	require.NoError(t, f.sched.Start(ctx, meta.ID))

	status, err := f.sched.GetStatus(ctx, meta.ID)
	require.NoError(t, err)
	assert.Len(t, status.ActiveOrchestrators, 1)
	assert.Len(t, status.TaskQueue, 1)
}

func TestScheduler_PausesOnBudgetExhaustion(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	meta, err := f.sched.Create(ctx, metaorch.CreateInput{OrgID: f.orgID, ProjectID: f.project.ID})
	require.NoError(t, err)
	require.NoError(t, f.sched.SetBudget(ctx, meta.ID, 0, 0.8))

	f.newTask(t, ctx, "task-a", "high")
	require.NoError(t, f.sched.QueueTasks(ctx, meta.ID, "task-a"))

	require.NoError(t, f.sched.Start(ctx, meta.ID))

	status, err := f.sched.GetStatus(ctx, meta.ID)
	require.NoError(t, err)
	assert.Equal(t, metaorchestratorrecord.StatusPaused, status.Status)
	require.NotNil(t, status.PauseReason)
	assert.Equal(t, "Budget exhausted", *status.PauseReason)
	assert.Len(t, status.TaskQueue, 1)
}

func TestScheduler_ParallelAdmitsUpToMaxConcurrent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	meta, err := f.sched.Create(ctx, metaorch.CreateInput{OrgID: f.orgID, ProjectID: f.project.ID})
	require.NoError(t, err)
	require.NoError(t, f.sched.SetBudget(ctx, meta.ID, 100, 0.8))
	require.NoError(t, f.sched.SetStrategy(ctx, meta.ID, metaorchestratorrecord.StrategyParallel, 2))

	f.newTask(t, ctx, "task-a", "medium")
	f.newTask(t, ctx, "task-b", "medium")
	f.newTask(t, ctx, "task-c", "medium")
	require.NoError(t, f.sched.QueueTasks(ctx, meta.ID, "task-a", "task-b", "task-c"))

	require.NoError(t, f.sched.Start(ctx, meta.ID))

	status, err := f.sched.GetStatus(ctx, meta.ID)
	require.NoError(t, err)
	assert.Len(t, status.ActiveOrchestrators, 2)
	assert.Len(t, status.TaskQueue, 1)
}

func TestScheduler_OnTaskCompleteFreesSlotAndReschedules(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	meta, err := f.sched.Create(ctx, metaorch.CreateInput{OrgID: f.orgID, ProjectID: f.project.ID})
	require.NoError(t, err)
	require.NoError(t, f.sched.SetBudget(ctx, meta.ID, 100, 0.8))

	f.newTask(t, ctx, "task-a", "medium")
	f.newTask(t, ctx, "task-b", "medium")
	require.NoError(t, f.sched.QueueTasks(ctx, meta.ID, "task-a", "task-b"))
	require.NoError(t, f.sched.Start(ctx, meta.ID))

	before, err := f.sched.GetStatus(ctx, meta.ID)
	require.NoError(t, err)
	require.Len(t, before.ActiveOrchestrators, 1)
	firstOrch := before.ActiveOrchestrators[0]

	require.NoError(t, f.sched.OnTaskComplete(ctx, meta.ID, firstOrch, true, 1.5, 0))

	after, err := f.sched.GetStatus(ctx, meta.ID)
	require.NoError(t, err)
	assert.Len(t, after.ActiveOrchestrators, 1)
	assert.NotEqual(t, firstOrch, after.ActiveOrchestrators[0])
	assert.Equal(t, 1.5, after.SpentUsd)
	assert.Equal(t, 1, after.TasksCompleted)
}
