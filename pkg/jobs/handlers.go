package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/entity"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// reworkFeedbackMetaKey mirrors pkg/taskorch's private reworkFeedbackKey —
// duplicated here rather than imported since taskorch keeps it unexported,
// and the two packages must agree on the literal string by convention, not
// by a shared constant reference, to avoid giving pkg/jobs reach into
// taskorch's internals.
const reworkFeedbackMetaKey = "rework_feedback"

// workflowReminderPrompt is the single follow-up nudge run_agent_execution
// injects when the workflow tracker reports an agent has gone quiet after
// substantive work. One per idle window; a substantive message re-arms it.
const workflowReminderPrompt = "You have been working for a while without a progress update. " +
	"Briefly summarize where you are, then continue with the task — or state exactly what is blocking you."

// TaskOrchestrator is the narrow seam into pkg/taskorch that run_agent_
// execution/resume_agent_execution need once a subprocess stream ends —
// just the build-loop continuation callback, never the full Orchestrator
// construction surface, so pkg/jobs never imports pkg/taskorch directly.
type TaskOrchestrator interface {
	OnWorkerComplete(ctx context.Context, orchestratorID string) error
}

// StatusHinter is the best-effort decorative status-hint generator
// generate_status_hint calls; a nil Handlers.hints makes that job a no-op.
type StatusHinter interface {
	GenerateStatusHint(ctx context.Context, agentType, lastAction string) string
}

// BackupRunner is the narrow seam into the backup service the run_backup
// family of jobs delegates to.
type BackupRunner interface {
	Create(ctx context.Context, orgID string) (string, error)
	Cleanup(ctx context.Context, orgID string) error
	RunScheduled(ctx context.Context) error
}

// Handlers wires every job Kind to its dependencies and exposes Register
// to build the Kind -> Handler map Pool drains against.
type Handlers struct {
	client   *ent.Client
	db       *sql.DB
	agents   *agentrunner.Runner
	store    *entity.Store
	taskOrch TaskOrchestrator
	hints    StatusHinter
	tracker  *WorkflowTracker
	backups  BackupRunner
	logger   *slog.Logger
}

// NewHandlers constructs Handlers. taskOrch, hints, and backups may all be
// nil — every handler that depends on one degrades to a skip or no-op
// rather than failing the job, since none of those integrations are on the
// critical path of agent execution itself.
func NewHandlers(client *ent.Client, db *sql.DB, agents *agentrunner.Runner, store *entity.Store, taskOrch TaskOrchestrator, hints StatusHinter, tracker *WorkflowTracker, backups BackupRunner) *Handlers {
	if tracker == nil {
		tracker = NewWorkflowTracker(15*time.Minute, 5)
	}
	return &Handlers{
		client:   client,
		db:       db,
		agents:   agents,
		store:    store,
		taskOrch: taskOrch,
		hints:    hints,
		tracker:  tracker,
		backups:  backups,
		logger:   slog.Default().With("component", "job-handlers"),
	}
}

// Register builds the Kind -> Handler map Pool drains against.
func (h *Handlers) Register() map[Kind]Handler {
	return map[Kind]Handler{
		KindRunAgentExecution:     h.RunAgentExecution,
		KindResumeAgentExecution:  h.ResumeAgentExecution,
		KindUpdateEntity:          h.UpdateEntity,
		KindUpdateTask:            h.UpdateEntity,
		KindCreateEntity:          h.CreateEntity,
		KindCreateLearningEpisode: h.CreateLearningEpisode,
		KindGenerateStatusHint:    h.GenerateStatusHint,
		KindRunBackup:             h.RunBackup,
		KindCleanupOldBackups:     h.CleanupOldBackups,
		KindRunScheduledBackups:   h.RunScheduledBackups,
	}
}

// executionPayload is the run_agent_execution/resume_agent_execution job
// payload shape: the agent to drive and the SpawnInput that produced it.
type executionPayload struct {
	AgentID string                `json:"agent_id"`
	Spawn   agentrunner.SpawnInput `json:"spawn"`
}

// RunAgentExecution drains a fresh subprocess stream for an already-spawned
// agent (§4.2/§9: the Job Runtime, not the Agent Runner, owns the
// long-running stream).
func (h *Handlers) RunAgentExecution(ctx context.Context, job *Job) error {
	var p executionPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "unmarshal run_agent_execution payload failed", err)
	}
	ch, err := h.agents.Execute(ctx, p.AgentID, p.Spawn)
	if err != nil {
		return err
	}
	return h.drainExecution(ctx, p.AgentID, p.Spawn, ch)
}

// ResumeAgentExecution re-enters a paused or reworking agent, layering any
// rework feedback from its TaskOrchestratorRecord onto the resumed custom
// instructions before starting the stream.
func (h *Handlers) ResumeAgentExecution(ctx context.Context, job *Job) error {
	var p executionPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "unmarshal resume_agent_execution payload failed", err)
	}
	p.Spawn.CustomInstructions = h.reworkInstructions(ctx, p.AgentID, p.Spawn.CustomInstructions)
	ch, err := h.agents.Resume(ctx, p.AgentID, p.Spawn)
	if err != nil {
		return err
	}
	return h.drainExecution(ctx, p.AgentID, p.Spawn, ch)
}

// reworkInstructions looks up the agent's TaskOrchestratorRecord (if any)
// and prepends its stored rework feedback ahead of the caller-supplied
// fallback instructions, so a reworked agent sees exactly what failed gate
// review last time.
func (h *Handlers) reworkInstructions(ctx context.Context, agentID, fallback string) string {
	rec, err := h.client.AgentRecord.Get(ctx, agentID)
	if err != nil || rec.TaskOrchestratorID == nil {
		return fallback
	}
	orch, err := h.client.TaskOrchestratorRecord.Get(ctx, *rec.TaskOrchestratorID)
	if err != nil {
		return fallback
	}
	feedback, _ := orch.Metadata[reworkFeedbackMetaKey].(string)
	if feedback == "" {
		return fallback
	}
	if fallback == "" {
		return feedback
	}
	return feedback + "\n\n" + fallback
}

// drainExecution relays a subprocess message stream into the durable
// per-agent transcript log (§6.2's agent_message table), feeds the
// workflow tracker, and continues the build loop once the stream ends.
func (h *Handlers) drainExecution(ctx context.Context, agentID string, spawn agentrunner.SpawnInput, ch <-chan agentrunner.Message) error {
	next, err := h.nextMessageNum(ctx, agentID)
	if err != nil {
		return err
	}
	defer h.tracker.Clear(agentID)

	for m := range ch {
		if perr := h.persistMessage(ctx, agentID, spawn.OrgID, next, m); perr != nil {
			h.logger.Warn("persist agent message failed", "agent_id", agentID, "error", perr)
		} else {
			next++
		}

		h.tracker.RecordMessage(agentID, m)
		if m.Type != agentrunner.MessageResult && h.tracker.ShouldRemind(agentID) {
			if err := h.agents.SendMessage(ctx, agentID, workflowReminderPrompt); err != nil {
				h.logger.Warn("workflow nudge send failed", "agent_id", agentID, "error", err)
			} else {
				h.logger.Info("workflow nudge sent", "agent_id", agentID)
				h.tracker.MarkReminded(agentID)
			}
		}
	}

	return h.onExecutionComplete(ctx, agentID)
}

// nextMessageNum computes the first message_num to use for agentID,
// continuing monotonically across resumes per P6.
func (h *Handlers) nextMessageNum(ctx context.Context, agentID string) (int, error) {
	var max int
	err := h.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(message_num), 0) FROM agent_messages WHERE agent_id = $1`, agentID).Scan(&max)
	if err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "read agent message high-water mark failed", err)
	}
	return max + 1, nil
}

// persistMessage writes one transcript row. Only a summary is persisted,
// never raw tool input/output (§6.2): full tool payloads can carry
// arbitrary-size blobs and secrets the job runtime has no business storing
// twice.
func (h *Handlers) persistMessage(ctx context.Context, agentID, orgID string, num int, m agentrunner.Message) error {
	_, err := h.db.ExecContext(ctx, `
		INSERT INTO agent_messages (id, agent_id, org_id, message_num, kind, summary, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (agent_id, message_num) DO NOTHING`,
		uuid.New().String(), agentID, orgID, num, string(m.Type), summarizeMessage(m), time.Now())
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "insert agent message failed", err)
	}
	return nil
}

// summarizeMessage renders a Message down to the text worth keeping in the
// transcript log.
func summarizeMessage(m agentrunner.Message) string {
	switch m.Type {
	case agentrunner.MessageToolUse:
		return fmt.Sprintf("tool_use: %s", m.ToolName)
	case agentrunner.MessageToolResult:
		status := "ok"
		if m.ToolError {
			status = "error"
		}
		return fmt.Sprintf("tool_result: %s (%s)", m.ToolResultFor, status)
	case agentrunner.MessageResult:
		return fmt.Sprintf("result: %s duration_ms=%d cost_usd=%.4f tokens=%d/%d",
			m.Subtype, m.DurationMs, m.TotalCostUSD, m.InputTokens, m.OutputTokens)
	default:
		return truncateSummary(m.Content, 2000)
	}
}

func truncateSummary(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}

// onExecutionComplete continues the Task Orchestrator build loop once a
// stream ends, if this agent was spawned under one.
func (h *Handlers) onExecutionComplete(ctx context.Context, agentID string) error {
	if h.taskOrch == nil {
		return nil
	}
	rec, err := h.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil
		}
		return sibylerr.Wrap(sibylerr.Transient, "get agent record after execution failed", err)
	}
	if rec.TaskOrchestratorID == nil {
		return nil
	}
	return h.taskOrch.OnWorkerComplete(ctx, *rec.TaskOrchestratorID)
}

// updateEntityPayload is the update_entity/update_task job payload shape.
type updateEntityPayload struct {
	OrgID string         `json:"org_id"`
	ID    string         `json:"id"`
	Patch map[string]any `json:"patch"`
}

// UpdateEntity applies a partial patch through the Entity Store. Shared by
// update_entity and update_task — both route through entity.Store.Update,
// kept as distinct job kinds because callers outside the entity API
// (sandbox reconciliation, gate review) enqueue task-only patches without
// constructing a full entity.Entity.
func (h *Handlers) UpdateEntity(ctx context.Context, job *Job) error {
	var p updateEntityPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "unmarshal update payload failed", err)
	}
	_, err := h.store.Update(ctx, p.OrgID, p.ID, p.Patch)
	return err
}

// CreateEntity completes the async creation pipeline's second half (§4.1's
// create_async/complete_create_async split): the node itself was already
// written synchronously; this job adds relationships and similarity-based
// auto-linking.
func (h *Handlers) CreateEntity(ctx context.Context, job *Job) error {
	var p createEntityPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "unmarshal create_entity payload failed", err)
	}
	return h.store.CompleteCreateAsync(ctx, p.Entity.OrganizationID, p.PendingID, p.Entity, p.Relationships, p.AutoLink)
}

// createLearningEpisodePayload is the create_learning_episode job payload.
type createLearningEpisodePayload struct {
	OrgID    string         `json:"org_id"`
	TaskID   *string        `json:"task_id,omitempty"`
	AgentID  *string        `json:"agent_id,omitempty"`
	Summary  string         `json:"summary"`
	Tags     []string       `json:"tags,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// CreateLearningEpisode inserts a write-once retrospective row (§4.1's
// get(id): "tries node-as-Entity, then node-as-Episode").
func (h *Handlers) CreateLearningEpisode(ctx context.Context, job *Job) error {
	var p createLearningEpisodePayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "unmarshal create_learning_episode payload failed", err)
	}
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	meta := p.Metadata
	if meta == nil {
		meta = map[string]any{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "marshal episode tags failed", err)
	}
	metaJSON, err := json.Marshal(meta)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "marshal episode metadata failed", err)
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO learning_episodes (id, org_id, task_id, agent_id, summary, tags, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		uuid.New().String(), p.OrgID, p.TaskID, p.AgentID, p.Summary, tagsJSON, metaJSON, time.Now())
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "insert learning episode failed", err)
	}
	return nil
}

// statusHintPayload is the generate_status_hint job payload.
type statusHintPayload struct {
	AgentID    string `json:"agent_id"`
	AgentType  string `json:"agent_type"`
	LastAction string `json:"last_action"`
}

// GenerateStatusHint produces a short decorative status line for the UI
// and stores it on the AgentRecord's metadata; any failure is swallowed
// per §4.8/§7, since a missing hint never blocks the build loop.
func (h *Handlers) GenerateStatusHint(ctx context.Context, job *Job) error {
	if h.hints == nil {
		return nil
	}
	var p statusHintPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "unmarshal generate_status_hint payload failed", err)
	}

	hint := h.hints.GenerateStatusHint(ctx, p.AgentType, p.LastAction)
	if hint == "" {
		return nil
	}

	rec, err := h.client.AgentRecord.Get(ctx, p.AgentID)
	if err != nil {
		return nil
	}
	meta := rec.Metadata
	if meta == nil {
		meta = map[string]any{}
	} else {
		cloned := make(map[string]any, len(meta)+1)
		for k, v := range meta {
			cloned[k] = v
		}
		meta = cloned
	}
	meta["status_hint"] = hint
	if err := h.client.AgentRecord.UpdateOneID(p.AgentID).SetMetadata(meta).Exec(ctx); err != nil {
		h.logger.Warn("persist status hint failed", "agent_id", p.AgentID, "error", err)
	}
	return nil
}

// runBackupPayload is the run_backup/cleanup_old_backups job payload;
// OrgID is empty for cleanup_old_backups runs that scan every org.
type runBackupPayload struct {
	OrgID string `json:"org_id"`
}

// RunBackup creates one backup archive for an org.
func (h *Handlers) RunBackup(ctx context.Context, job *Job) error {
	if h.backups == nil {
		return sibylerr.Wrap(sibylerr.Permanent, "no backup service configured", nil)
	}
	var p runBackupPayload
	if err := json.Unmarshal(job.Payload, &p); err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "unmarshal run_backup payload failed", err)
	}
	_, err := h.backups.Create(ctx, p.OrgID)
	return err
}

// CleanupOldBackups deletes archives past their retention window.
func (h *Handlers) CleanupOldBackups(ctx context.Context, job *Job) error {
	if h.backups == nil {
		return nil
	}
	var p runBackupPayload
	_ = json.Unmarshal(job.Payload, &p)
	return h.backups.Cleanup(ctx, p.OrgID)
}

// RunScheduledBackups evaluates every org's backup_settings.schedule_cron
// and fires a backup for any org that's due.
func (h *Handlers) RunScheduledBackups(ctx context.Context, job *Job) error {
	if h.backups == nil {
		return nil
	}
	return h.backups.RunScheduled(ctx)
}
