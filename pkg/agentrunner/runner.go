// Package agentrunner implements the Agent Runner (C2): it owns the
// lifecycle of one agent instance, defined by spec.md §4.2 as the pairing
// (AgentRecord, subprocess session, worktree, approval service, workflow
// tracker). Grounded on the teacher's pkg/agent/orchestrator.SubAgentRunner
// — goroutine-per-execution, buffered result channel, context-cancellation
// lifecycle, mutex-protected registry — generalized from "N sub-agents per
// orchestrator iteration" to "one long-lived agent instance per task,
// resumable across process restarts".
package agentrunner

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/agentrecord"
	"github.com/sibyl-run/sibyl/ent/worktreerecord"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

func spawnLockKey(taskID string) string {
	return fmt.Sprintf("sibyl:lock:spawn:task:%s", taskID)
}

func stopKey(agentID string) string {
	return fmt.Sprintf("agent:stop:%s", agentID)
}

// Runner implements the Agent Runner (C2).
type Runner struct {
	mu     sync.Mutex
	active map[string]*instance // agent_id -> instance, the sole authority per §5

	client     *ent.Client
	db         *sql.DB // operational store for agent_states heartbeat rows (§4.2)
	bus        bus.Bus
	approvals  *approval.Queue
	subprocess Subprocess
	tagDeriver TagDeriver

	heartbeatInterval time.Duration
	stopPollInterval  time.Duration
	staleThreshold    time.Duration

	// onSpawned, if set, fires after Spawn registers an instance — the Job
	// Runtime's wiring point for enqueueing the run_agent_execution job
	// that actually drives the returned instance's subprocess stream. Left
	// nil it's a no-op, which is what every existing orchestrator test
	// relies on: those tests call Start/Spawn and drive completion
	// themselves via OnWorkerComplete, without a live job queue.
	onSpawned func(ctx context.Context, agentID string, in SpawnInput)

	logger *slog.Logger
}

// SetOnSpawned installs the post-spawn hook described above. Not part of
// New's constructor so wiring it stays opt-in for callers (cmd/sibylapi,
// cmd/sibylworker) without touching every existing call site.
func (r *Runner) SetOnSpawned(hook func(ctx context.Context, agentID string, in SpawnInput)) {
	r.onSpawned = hook
}

// New constructs a Runner. tagDeriver may be nil (falls back to a
// deterministic heuristic).
func New(client *ent.Client, db *sql.DB, b bus.Bus, approvals *approval.Queue, subprocess Subprocess, tagDeriver TagDeriver, heartbeatInterval, stopPollInterval, staleThreshold time.Duration) *Runner {
	return &Runner{
		active:            make(map[string]*instance),
		client:            client,
		db:                db,
		bus:               b,
		approvals:         approvals,
		subprocess:        subprocess,
		tagDeriver:        tagDeriver,
		heartbeatInterval: heartbeatInterval,
		stopPollInterval:  stopPollInterval,
		staleThreshold:    staleThreshold,
		logger:            slog.Default().With("component", "agent-runner"),
	}
}

// SpawnInput describes a new agent instance.
type SpawnInput struct {
	OrgID              string
	ProjectID          string
	TaskID             string
	AgentID            string // optional caller-supplied id
	AgentType          string
	SpawnSource        string // orchestrator | api | cli | standalone
	CreateWorktree     bool
	CustomInstructions string
	TaskContext        string // free text fed to the tag deriver and system prompt
}

// Spawn implements the spawn contract of §4.2. Returns the upserted
// AgentRecord; the subprocess itself is not started here — callers invoke
// Execute to begin streaming once Spawn has registered the instance.
func (r *Runner) Spawn(ctx context.Context, in SpawnInput) (*ent.AgentRecord, error) {
	agentID := in.AgentID
	if agentID == "" {
		agentID = deriveAgentID(in.OrgID, in.ProjectID)
	}

	unlock, err := r.acquireSpawnLock(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	r.mu.Lock()
	for _, inst := range r.active {
		if inst.taskID == in.TaskID {
			r.mu.Unlock()
			return nil, sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("task %s already has a live in-memory agent instance", in.TaskID), nil)
		}
	}
	r.mu.Unlock()

	rec, err := r.upsertAgentRecord(ctx, in, agentID)
	if err != nil {
		return nil, err
	}

	if in.CreateWorktree && rec.WorktreeID == nil {
		wt, err := r.allocateWorktree(ctx, in, rec.ID)
		if err != nil {
			return nil, err
		}
		rec, err = r.client.AgentRecord.UpdateOneID(rec.ID).
			SetWorktreeID(wt.ID).
			Save(ctx)
		if err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "persist worktree id on agent record failed", err)
		}
	}

	rec, err = r.client.AgentRecord.UpdateOneID(rec.ID).
		SetStatus(agentrecord.StatusWorking).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "mark agent record working failed", err)
	}

	r.mu.Lock()
	r.active[rec.ID] = &instance{
		agentID:   rec.ID,
		taskID:    in.TaskID,
		orgID:     in.OrgID,
		status:    string(agentrecord.StatusWorking),
		startedAt: time.Now(),
	}
	r.mu.Unlock()

	if r.onSpawned != nil {
		r.onSpawned(ctx, rec.ID, in)
	}

	return rec, nil
}

// acquireSpawnLock implements the non-blocking spawn:task:<task_id> lock of
// invariant #3 / §5: a single check-and-set, no retry loop — losers reject
// immediately rather than wait.
func (r *Runner) acquireSpawnLock(ctx context.Context, taskID string) (release func(), err error) {
	key := spawnLockKey(taskID)
	_, found, err := r.bus.Get(ctx, key)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "spawn lock check failed", err)
	}
	if found {
		return nil, sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("spawn already in flight for task %s", taskID), nil)
	}
	token := uuid.New().String()
	if err := r.bus.SetEx(ctx, key, token, 30); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "spawn lock acquire failed", err)
	}
	return func() { _ = r.bus.Del(ctx, key) }, nil
}

// upsertAgentRecord merges into a pre-created AgentRecord (e.g. one an API
// handler created ahead of the spawn) or creates a fresh one, per §4.2 step
//3.
func (r *Runner) upsertAgentRecord(ctx context.Context, in SpawnInput, agentID string) (*ent.AgentRecord, error) {
	tags := r.deriveTags(ctx, in)

	existing, err := r.client.AgentRecord.Query().
		Where(agentrecord.TaskID(in.TaskID)).
		Where(agentrecord.StatusNotIn(agentrecord.StatusCompleted, agentrecord.StatusFailed, agentrecord.StatusTerminated)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, sibylerr.Wrap(sibylerr.Transient, "query existing agent record failed", err)
	}

	standalone := in.SpawnSource != "orchestrator"

	if existing != nil {
		meta := existing.Metadata
		if meta == nil {
			meta = map[string]any{}
		}
		meta["tags"] = mergeTags(metaTags(meta), tags)
		updated, err := r.client.AgentRecord.UpdateOneID(existing.ID).
			SetAgentType(in.AgentType).
			SetMetadata(meta).
			Save(ctx)
		if err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "merge existing agent record failed", err)
		}
		return updated, nil
	}

	b := r.client.AgentRecord.Create().
		SetID(agentID).
		SetOrganizationID(in.OrgID).
		SetAgentType(in.AgentType).
		SetTaskID(in.TaskID).
		SetStandalone(standalone).
		SetMetadata(map[string]any{"tags": tags})
	if in.SpawnSource != "" {
		b = b.SetSpawnSource(agentrecord.SpawnSource(in.SpawnSource))
	}

	rec, err := b.Save(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "create agent record failed", err)
	}
	return rec, nil
}

// deriveTags is best-effort: failures (including a nil TagDeriver) fall
// back to agent-type + task tags per §4.2 step 3, never block the spawn.
func (r *Runner) deriveTags(ctx context.Context, in SpawnInput) []string {
	if r.tagDeriver != nil {
		tags, err := r.tagDeriver.DeriveTags(ctx, in.AgentType, in.TaskContext)
		if err == nil && len(tags) > 0 {
			if len(tags) > 8 {
				tags = tags[:8]
			}
			return tags
		}
		r.logger.Warn("tag derivation failed, falling back to heuristic", "error", err)
	}
	return fallbackTags(in)
}

func fallbackTags(in SpawnInput) []string {
	tags := []string{in.AgentType}
	for _, word := range strings.Fields(in.TaskContext) {
		word = strings.ToLower(strings.Trim(word, ".,:;!?"))
		if len(word) < 3 {
			continue
		}
		tags = append(tags, word)
		if len(tags) >= 8 {
			break
		}
	}
	return tags
}

func metaTags(meta map[string]any) []string {
	raw, ok := meta["tags"].([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func mergeTags(existing, incoming []string) []string {
	seen := make(map[string]bool, len(existing))
	out := make([]string, 0, len(existing)+len(incoming))
	for _, t := range existing {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	for _, t := range incoming {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
		if len(out) >= 8 {
			break
		}
	}
	return out
}

// allocateWorktree persists a WorktreeRecord named per §4.2 step 4; the
// physical checkout is the agent subprocess's concern (§1 Non-goals), not
// the Runner's.
func (r *Runner) allocateWorktree(ctx context.Context, in SpawnInput, agentID string) (*ent.WorktreeRecord, error) {
	shortID := agentID
	if len(shortID) > 8 {
		shortID = shortID[:8]
	}
	branch := fmt.Sprintf("agent/%s", shortID)
	wt, err := r.client.WorktreeRecord.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(in.OrgID).
		SetTaskID(in.TaskID).
		SetAgentID(agentID).
		SetPath(fmt.Sprintf("/workspaces/%s", branch)).
		SetBranch(branch).
		SetBaseCommit("HEAD").
		SetStatus(worktreerecord.StatusActive).
		SetLastUsed(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "allocate worktree failed", err)
	}
	return wt, nil
}

func deriveAgentID(orgID, projectID string) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", orgID, projectID, time.Now().UnixNano())))
	return fmt.Sprintf("%x", sum)[:32]
}

// AdoptAgent implements the supplemented worker-promotion feature
// (SPEC_FULL.md §3, original_source's agents/worker_promotion.py): attaches
// a standalone agent to a TaskOrchestrator without interrupting its running
// subprocess.
func (r *Runner) AdoptAgent(ctx context.Context, agentID, orchestratorID string) error {
	rec, err := r.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return sibylerr.Wrap(sibylerr.NotFound, "agent record not found", err)
		}
		return sibylerr.Wrap(sibylerr.Transient, "get agent record failed", err)
	}
	if !rec.Standalone {
		return sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("agent %s is already managed by orchestrator %s", agentID, valueOrEmpty(rec.TaskOrchestratorID)), nil)
	}
	_, err = r.client.AgentRecord.UpdateOneID(agentID).
		SetStandalone(false).
		SetTaskOrchestratorID(orchestratorID).
		Save(ctx)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "adopt agent failed", err)
	}
	return nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// IsActive reports whether agentID has a live in-memory instance in this
// process (§5's active_agents registry).
func (r *Runner) IsActive(agentID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.active[agentID]
	return ok
}
