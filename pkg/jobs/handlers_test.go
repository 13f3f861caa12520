package jobs_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/database"
	"github.com/sibyl-run/sibyl/pkg/entity"
	"github.com/sibyl-run/sibyl/pkg/jobs"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

type fakeSubprocess struct {
	messages []agentrunner.Message

	mu   sync.Mutex
	sent []string
}

func (f *fakeSubprocess) Start(ctx context.Context, opts agentrunner.SpawnOptions) (<-chan agentrunner.Message, error) {
	out := make(chan agentrunner.Message, len(f.messages))
	for _, m := range f.messages {
		out <- m
	}
	close(out)
	return out, nil
}

func (f *fakeSubprocess) Send(ctx context.Context, agentID, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, content)
	return nil
}

func (f *fakeSubprocess) sentMessages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string{}, f.sent...)
}

func newTestBus(t *testing.T) bus.Bus {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return bus.NewFromClient(client)
}

func newHandlersFixture(t *testing.T, sp agentrunner.Subprocess) (*jobs.Handlers, *agentrunner.Runner, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	b := newTestBus(t)
	runner := agentrunner.New(client.Client, client.DB(), b, nil, sp, nil, 50*time.Millisecond, 20*time.Millisecond, time.Minute)
	store := entity.NewStore(client.Client, b, nil)
	h := jobs.NewHandlers(client.Client, client.DB(), runner, store, nil, nil, nil, nil)
	return h, runner, client
}

func TestHandlers_RunAgentExecutionPersistsSummariesAndMarksComplete(t *testing.T) {
	ctx := context.Background()
	sp := &fakeSubprocess{messages: []agentrunner.Message{
		{Type: agentrunner.MessageAssistant, Content: "looking at the failing test"},
		{Type: agentrunner.MessageToolUse, ToolName: "run_tests"},
		{Type: agentrunner.MessageToolResult, ToolResultFor: "run_tests", ToolError: false},
		{Type: agentrunner.MessageResult, SessionID: "sess-1", InputTokens: 10, OutputTokens: 5, TotalCostUSD: 0.01},
	}}
	h, runner, client := newHandlersFixture(t, sp)

	in := agentrunner.SpawnInput{OrgID: "org-1", ProjectID: "proj-1", TaskID: "task-1", AgentType: "coder", SpawnSource: "api"}
	rec, err := runner.Spawn(ctx, in)
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]any{"agent_id": rec.ID, "spawn": in})
	require.NoError(t, err)

	err = h.RunAgentExecution(ctx, &jobs.Job{ID: "job-1", Kind: jobs.KindRunAgentExecution, Payload: payload})
	require.NoError(t, err)

	var count int
	require.NoError(t, client.DB().QueryRowContext(ctx, `SELECT count(*) FROM agent_messages WHERE agent_id = $1`, rec.ID).Scan(&count))
	assert.Equal(t, 4, count)

	assert.Eventually(t, func() bool {
		return !runner.IsActive(rec.ID)
	}, time.Second, 10*time.Millisecond)
}

func TestHandlers_RunAgentExecutionSendsWorkflowNudge(t *testing.T) {
	ctx := context.Background()
	sp := &fakeSubprocess{messages: []agentrunner.Message{
		{Type: agentrunner.MessageAssistant, Content: "starting"},
		{Type: agentrunner.MessageToolResult, ToolResultFor: "run_tests"},
		{Type: agentrunner.MessageToolResult, ToolResultFor: "run_tests"},
		{Type: agentrunner.MessageResult, SessionID: "sess-1"},
	}}
	client := testdb.NewTestClient(t)
	b := newTestBus(t)
	runner := agentrunner.New(client.Client, client.DB(), b, nil, sp, nil, 50*time.Millisecond, 20*time.Millisecond, time.Minute)
	store := entity.NewStore(client.Client, b, nil)
	// Zero idle window + two-message floor: the stretch of tool_results
	// after the first assistant message counts as gone-quiet immediately.
	tracker := jobs.NewWorkflowTracker(0, 2)
	h := jobs.NewHandlers(client.Client, client.DB(), runner, store, nil, nil, tracker, nil)

	in := agentrunner.SpawnInput{OrgID: "org-1", ProjectID: "proj-1", TaskID: "task-1", AgentType: "coder", SpawnSource: "api"}
	rec, err := runner.Spawn(ctx, in)
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]any{"agent_id": rec.ID, "spawn": in})
	require.NoError(t, err)
	require.NoError(t, h.RunAgentExecution(ctx, &jobs.Job{ID: "job-1", Kind: jobs.KindRunAgentExecution, Payload: payload}))

	sent := sp.sentMessages()
	require.Len(t, sent, 1, "one nudge per idle window, never more")
	assert.Contains(t, sent[0], "summarize")
}

func TestHandlers_CreateLearningEpisodeInsertsRow(t *testing.T) {
	ctx := context.Background()
	h, _, client := newHandlersFixture(t, &fakeSubprocess{})

	payload, err := json.Marshal(map[string]any{
		"org_id":  "org-1",
		"summary": "discovered flaky retry in the dispatcher test",
		"tags":    []string{"testing", "flaky"},
	})
	require.NoError(t, err)

	require.NoError(t, h.CreateLearningEpisode(ctx, &jobs.Job{ID: "job-1", Kind: jobs.KindCreateLearningEpisode, Payload: payload}))

	var summary string
	require.NoError(t, client.DB().QueryRowContext(ctx, `SELECT summary FROM learning_episodes WHERE org_id = $1`, "org-1").Scan(&summary))
	assert.Equal(t, "discovered flaky retry in the dispatcher test", summary)
}

func TestHandlers_GenerateStatusHintIsNoOpWithoutHinter(t *testing.T) {
	ctx := context.Background()
	h, _, _ := newHandlersFixture(t, &fakeSubprocess{})

	payload, err := json.Marshal(map[string]any{"agent_id": "missing", "agent_type": "coder"})
	require.NoError(t, err)

	err = h.GenerateStatusHint(ctx, &jobs.Job{ID: "job-1", Kind: jobs.KindGenerateStatusHint, Payload: payload})
	assert.NoError(t, err, "generate_status_hint is always best-effort, never a hard failure")
}

func TestHandlers_UpdateEntityAppliesPatchThroughStore(t *testing.T) {
	ctx := context.Background()
	h, _, client := newHandlersFixture(t, &fakeSubprocess{})
	store := entity.NewStore(client.Client, newTestBus(t), nil)

	_, err := store.CreateSync(ctx, entity.Entity{
		ID: "project-1", Type: entity.TypeProject, OrganizationID: "org-1", Name: "sibyl",
	})
	require.NoError(t, err)

	id, err := store.CreateSync(ctx, entity.Entity{
		ID: "task-1", Type: entity.TypeTask, OrganizationID: "org-1", ProjectID: "project-1", Name: "fix flaky test", Status: "todo",
	})
	require.NoError(t, err)

	payload, err := json.Marshal(map[string]any{
		"org_id": "org-1",
		"id":     id,
		"patch":  map[string]any{"status": "doing"},
	})
	require.NoError(t, err)

	require.NoError(t, h.UpdateEntity(ctx, &jobs.Job{ID: "job-1", Kind: jobs.KindUpdateEntity, Payload: payload}))

	got, err := store.Get(ctx, "org-1", id)
	require.NoError(t, err)
	assert.Equal(t, "doing", got.Status)
}
