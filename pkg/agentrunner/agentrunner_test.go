package agentrunner_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/ent/agentrecord"
	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/database"
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

func newTestRunner(t *testing.T, sp agentrunner.Subprocess) (*agentrunner.Runner, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)
	r := agentrunner.New(client.Client, client.DB(), newTestBus(t), nil, sp, nil, 50*time.Millisecond, 20*time.Millisecond, time.Minute)
	return r, client
}

func TestRunner_SpawnRejectsDuplicateTaskSpawn(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t, &fakeSubprocess{})

	in := agentrunner.SpawnInput{OrgID: "org-1", ProjectID: "proj-1", TaskID: "task-1", AgentType: "coder", SpawnSource: "api"}

	_, err := r.Spawn(ctx, in)
	require.NoError(t, err)

	_, err = r.Spawn(ctx, in)
	require.Error(t, err)
	assert.True(t, sibylerr.Is(err, sibylerr.Conflict))
}

func TestRunner_ExecuteAccumulatesUsageAndCompletes(t *testing.T) {
	ctx := context.Background()
	sp := &fakeSubprocess{messages: []agentrunner.Message{
		{Type: agentrunner.MessageAssistant, Content: "working"},
		{Type: agentrunner.MessageResult, SessionID: "sess-1", InputTokens: 10, OutputTokens: 5, TotalCostUSD: 0.02},
	}}
	r, _ := newTestRunner(t, sp)

	in := agentrunner.SpawnInput{OrgID: "org-1", ProjectID: "proj-1", TaskID: "task-1", AgentType: "coder", SpawnSource: "api"}
	rec, err := r.Spawn(ctx, in)
	require.NoError(t, err)

	stream, err := r.Execute(ctx, rec.ID, in)
	require.NoError(t, err)

	var got []agentrunner.Message
	for m := range stream {
		got = append(got, m)
	}
	require.Len(t, got, 2)
	assert.Equal(t, agentrunner.MessageResult, got[1].Type)

	assert.Eventually(t, func() bool {
		return !r.IsActive(rec.ID)
	}, time.Second, 10*time.Millisecond)
}

func TestRunner_ReapStaleAgentsMarksFailedAndCheckpoints(t *testing.T) {
	ctx := context.Background()
	r, client := newTestRunner(t, &fakeSubprocess{})

	in := agentrunner.SpawnInput{OrgID: "org-1", ProjectID: "proj-1", TaskID: "task-1", AgentType: "coder", SpawnSource: "api"}
	rec, err := r.Spawn(ctx, in)
	require.NoError(t, err)

	stale := time.Now().Add(-time.Hour)
	_, err = client.Client.AgentRecord.UpdateOneID(rec.ID).SetLastHeartbeat(stale).Save(ctx)
	require.NoError(t, err)

	require.NoError(t, r.ReapStaleAgents(ctx))

	got, err := client.Client.AgentRecord.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, agentrecord.StatusFailed, got.Status)
	assert.False(t, r.IsActive(rec.ID))
}

func TestRunner_AdoptAgentFlipsStandalone(t *testing.T) {
	ctx := context.Background()
	r, _ := newTestRunner(t, &fakeSubprocess{})

	in := agentrunner.SpawnInput{OrgID: "org-1", ProjectID: "proj-1", TaskID: "task-1", AgentType: "coder", SpawnSource: "api"}
	rec, err := r.Spawn(ctx, in)
	require.NoError(t, err)
	assert.True(t, rec.Standalone)

	require.NoError(t, r.AdoptAgent(ctx, rec.ID, "orch-1"))

	// Adopting twice is a conflict.
	err = r.AdoptAgent(ctx, rec.ID, "orch-2")
	require.Error(t, err)
	assert.True(t, sibylerr.Is(err, sibylerr.Conflict))
}
