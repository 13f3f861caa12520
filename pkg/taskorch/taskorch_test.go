package taskorch_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/config"
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

// fixture wires an Orchestrator against real ent/postgres + miniredis. The
// gate runner's Exec is stubbed so tests control pass/fail outcomes without
// shelling out to real lint/test tools; DetectProject still runs for real,
// so the test worktree's path is repointed at this module's checkout (it
// has a go.mod) once a worker has been spawned.
type fixture struct {
	orch    *taskorch.Orchestrator
	client  *ent.Client
	orgID   string
	project *ent.Project
	task    *ent.Task
}

func newFixture(t *testing.T, exec func(ctx context.Context, command, dir string) (string, string, int, error)) *fixture {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	client := dbClient.Client
	b := newTestBus(t)
	ctx := context.Background()

	orgID := "org-1"
	project, err := client.Project.Create().SetID("proj-1").SetOrganizationID(orgID).Save(ctx)
	require.NoError(t, err)
	tsk, err := client.Task.Create().SetID("task-1").SetOrganizationID(orgID).SetProjectID(project.ID).SetName("ship it").Save(ctx)
	require.NoError(t, err)

	approvals := approval.New(client, b, nil, 24*time.Hour, 48*time.Hour)
	agents := agentrunner.New(client, dbClient.DB(), b, approvals, &fakeSubprocess{}, nil, 50*time.Millisecond, 20*time.Millisecond, time.Minute)

	if exec == nil {
		exec = func(ctx context.Context, command, dir string) (string, string, int, error) {
			return "", "", 0, nil
		}
	}
	gr := &gates.Runner{Exec: exec}

	orch := taskorch.New(client, agents, approvals, gr, nil, nil, nil, time.Second)

	return &fixture{orch: orch, client: client, orgID: orgID, project: project, task: tsk}
}

// startAndRepoint spawns the worker, then repoints the allocated worktree at
// this module's real checkout so gate project-autodetection finds a go.mod.
func (f *fixture) startAndRepoint(t *testing.T, ctx context.Context, orchID string) {
	t.Helper()
	require.NoError(t, f.orch.Start(ctx, orchID))
	rec, err := f.client.TaskOrchestratorRecord.Get(ctx, orchID)
	require.NoError(t, err)
	require.NotNil(t, rec.WorktreeID)
	require.NoError(t, f.client.WorktreeRecord.UpdateOneID(*rec.WorktreeID).SetPath("../..").Exec(ctx))
}

func TestOrchestrator_CreateDefaultsGatesAndReworkLimit(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	rec, err := f.orch.Create(ctx, taskorch.CreateInput{OrgID: f.orgID, TaskID: f.task.ID})
	require.NoError(t, err)
	assert.Equal(t, 3, rec.MaxReworkAttempts)
	assert.ElementsMatch(t, []string{"LINT", "TYPECHECK", "TEST", "AI_REVIEW"}, rec.GateConfig)
}

func TestOrchestrator_StartClaimsTaskAndSpawnsWorker(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	rec, err := f.orch.Create(ctx, taskorch.CreateInput{OrgID: f.orgID, TaskID: f.task.ID})
	require.NoError(t, err)

	require.NoError(t, f.orch.Start(ctx, rec.ID))

	updated, err := f.client.TaskOrchestratorRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.WorkerID)
	assert.Equal(t, "implementing", string(updated.CurrentPhase))

	tsk, err := f.client.Task.Get(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, "doing", string(tsk.Status))
	require.NotNil(t, tsk.AssignedAgent)
	assert.Equal(t, *updated.WorkerID, *tsk.AssignedAgent)
}

func TestOrchestrator_OnWorkerCompleteAllPassNoHumanGateCompletes(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	rec, err := f.orch.Create(ctx, taskorch.CreateInput{OrgID: f.orgID, TaskID: f.task.ID, GateConfig: []config.GateKind{config.GateLint}})
	require.NoError(t, err)
	f.startAndRepoint(t, ctx, rec.ID)

	require.NoError(t, f.orch.OnWorkerComplete(ctx, rec.ID))

	updated, err := f.client.TaskOrchestratorRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(updated.Status))
	assert.Equal(t, "complete", string(updated.CurrentPhase))

	tsk, err := f.client.Task.Get(ctx, f.task.ID)
	require.NoError(t, err)
	assert.Equal(t, "review", string(tsk.Status))
}

func TestOrchestrator_ReworkThenEscalateOnRepeatedFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, func(ctx context.Context, command, dir string) (string, string, int, error) {
		return "error: lint failed\n", "", 1, nil
	})

	rec, err := f.orch.Create(ctx, taskorch.CreateInput{
		OrgID: f.orgID, TaskID: f.task.ID,
		GateConfig:        []config.GateKind{config.GateLint},
		MaxReworkAttempts: 2,
	})
	require.NoError(t, err)
	f.startAndRepoint(t, ctx, rec.ID)

	require.NoError(t, f.orch.OnWorkerComplete(ctx, rec.ID))
	afterFirst, err := f.client.TaskOrchestratorRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, afterFirst.ReworkCount)
	assert.Equal(t, "reworking", string(afterFirst.CurrentPhase))

	require.NoError(t, f.orch.OnWorkerComplete(ctx, rec.ID))
	afterSecond, err := f.client.TaskOrchestratorRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "failed", string(afterSecond.Status))
	assert.Equal(t, "failed", string(afterSecond.CurrentPhase))
	require.NotNil(t, afterSecond.PendingApprovalID)
	assert.Equal(t, "max_rework_exceeded", afterSecond.Metadata["failure_reason"])
}

func TestOrchestrator_HumanReviewApprovalCompletesTask(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, nil)

	rec, err := f.orch.Create(ctx, taskorch.CreateInput{
		OrgID: f.orgID, TaskID: f.task.ID,
		GateConfig: []config.GateKind{config.GateLint, config.GateHumanReview},
	})
	require.NoError(t, err)
	f.startAndRepoint(t, ctx, rec.ID)

	require.NoError(t, f.orch.OnWorkerComplete(ctx, rec.ID))
	afterGates, err := f.client.TaskOrchestratorRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "human_review", string(afterGates.CurrentPhase))
	require.NotNil(t, afterGates.PendingApprovalID)

	require.NoError(t, f.orch.OnHumanApproval(ctx, rec.ID, true, "ship it"))
	final, err := f.client.TaskOrchestratorRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "completed", string(final.Status))
}
