// Package taskorch implements the Task Orchestrator (C3): the per-task
// build-loop state machine of spec.md §4.3 — implement -> review -> rework
// with a bounded rework counter (the "Ralph Loop"), escalating to a human
// QUESTION approval when the bound is reached. Grounded on the teacher's
// pkg/agent/orchestrator package: a long-lived record driving a subordinate
// agent through a fixed phase sequence, persisting every transition before
// acting on it (§9's "two-phase broadcast" design note applied to phase
// changes instead of pub/sub events).
package taskorch

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/approvalrecord"
	"github.com/sibyl-run/sibyl/ent/task"
	"github.com/sibyl-run/sibyl/ent/taskorchestratorrecord"
	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/slackops"
	"github.com/sibyl-run/sibyl/pkg/taskorch/gates"
)

// defaultGates is spec.md §4.3's default gate list: LINT, TYPECHECK, TEST,
// AI_REVIEW.
var defaultGates = []string{
	string(config.GateLint), string(config.GateTypecheck),
	string(config.GateTest), string(config.GateAIReview),
}

// MetaNotifier is the narrow callback surface the Task Orchestrator uses to
// report completion back to its owning Meta Orchestrator (C4), without
// pkg/taskorch importing pkg/metaorch directly (pkg/metaorch imports
// pkg/taskorch to spawn one).
type MetaNotifier interface {
	OnTaskComplete(ctx context.Context, metaOrchestratorID, taskOrchestratorID string, success bool, costUSD float64, reworkCount int) error
}

// AIReviewer runs the AI_REVIEW gate by spawning a reviewer agent (or
// calling an LLM directly). Nil-safe: a nil AIReviewer makes AI_REVIEW
// always pass, matching spec.md §4.3's "placeholder-safe" requirement for a
// gate whose implementation lives outside the critical core.
type AIReviewer interface {
	Review(ctx context.Context, orgID, taskID, worktreePath string) (gates.Result, error)
}

// Notifier is the best-effort escalation broadcast surface (mirrors
// approval.Notifier's nil-safety contract).
type Notifier interface {
	NotifyEscalation(ctx context.Context, input slackops.EscalationInput)
}

// Orchestrator implements the Task Orchestrator (C3).
type Orchestrator struct {
	client      *ent.Client
	agents      *agentrunner.Runner
	approvals   *approval.Queue
	gateRunner  *gates.Runner
	aiReviewer  AIReviewer
	notifier    Notifier
	metaNotify  MetaNotifier
	gateTimeout time.Duration
}

// New constructs an Orchestrator. aiReviewer, notifier, and metaNotify may
// all be nil.
func New(client *ent.Client, agents *agentrunner.Runner, approvals *approval.Queue, gateRunner *gates.Runner, aiReviewer AIReviewer, notifier Notifier, metaNotify MetaNotifier, gateTimeout time.Duration) *Orchestrator {
	if gateRunner == nil {
		gateRunner = gates.New()
	}
	return &Orchestrator{
		client:      client,
		agents:      agents,
		approvals:   approvals,
		gateRunner:  gateRunner,
		aiReviewer:  aiReviewer,
		notifier:    notifier,
		metaNotify:  metaNotify,
		gateTimeout: gateTimeout,
	}
}

// CreateInput describes a new TaskOrchestratorRecord.
type CreateInput struct {
	OrgID              string
	TaskID             string
	MetaOrchestratorID string
	GateConfig         []config.GateKind
	MaxReworkAttempts  int
}

// Create inserts the orchestrator record and links it to the task, per
// §4.3's create contract. Default gates are LINT, TYPECHECK, TEST,
// AI_REVIEW; default max_rework_attempts is 3.
func (o *Orchestrator) Create(ctx context.Context, in CreateInput) (*ent.TaskOrchestratorRecord, error) {
	gateStrs := defaultGates
	if len(in.GateConfig) > 0 {
		gateStrs = make([]string, len(in.GateConfig))
		for i, g := range in.GateConfig {
			gateStrs[i] = string(g)
		}
	}
	maxRework := in.MaxReworkAttempts
	if maxRework <= 0 {
		maxRework = 3
	}

	b := o.client.TaskOrchestratorRecord.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(in.OrgID).
		SetTaskID(in.TaskID).
		SetMaxReworkAttempts(maxRework).
		SetGateConfig(gateStrs)
	if in.MetaOrchestratorID != "" {
		b = b.SetMetaOrchestratorID(in.MetaOrchestratorID)
	}

	rec, err := b.Save(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "create task orchestrator record failed", err)
	}
	return rec, nil
}

// taskContext renders the task's fields into the free text fed to the
// worker agent's system prompt and tag deriver.
func taskContext(t *ent.Task) string {
	s := fmt.Sprintf("Task: %s\nStatus: %s\nPriority: %s", t.Name, t.Status, t.Priority)
	if t.Feature != nil {
		s += fmt.Sprintf("\nFeature: %s", *t.Feature)
	}
	if len(t.Technologies) > 0 {
		s += fmt.Sprintf("\nTechnologies: %v", t.Technologies)
	}
	return s
}

// Start spawns a worker agent on the attached task, links the orchestrator
// to it, and marks the worker as managed (§4.3 start contract): the worker
// is no longer standalone and carries this orchestrator's id.
func (o *Orchestrator) Start(ctx context.Context, orchID string) error {
	rec, err := o.get(ctx, orchID)
	if err != nil {
		return err
	}

	t, err := o.client.Task.Get(ctx, rec.TaskID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "get task failed", err)
	}

	agentRec, err := o.agents.Spawn(ctx, agentrunner.SpawnInput{
		OrgID:          rec.OrganizationID,
		ProjectID:      t.ProjectID,
		TaskID:         rec.TaskID,
		AgentType:      "worker",
		SpawnSource:    "orchestrator",
		CreateWorktree: true,
		TaskContext:    taskContext(t),
	})
	if err != nil {
		return err
	}

	if _, err := o.client.AgentRecord.UpdateOneID(agentRec.ID).
		SetTaskOrchestratorID(orchID).
		Save(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "link worker to orchestrator failed", err)
	}

	upd := o.client.TaskOrchestratorRecord.UpdateOneID(orchID).
		SetWorkerID(agentRec.ID).
		SetCurrentPhase(taskorchestratorrecord.CurrentPhaseImplementing)
	if agentRec.WorktreeID != nil {
		upd = upd.SetWorktreeID(*agentRec.WorktreeID)
	}
	if _, err := upd.Save(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "transition to implementing failed", err)
	}

	if _, err := o.client.Task.UpdateOneID(rec.TaskID).
		SetStatus(task.StatusDoing).
		SetAssignedAgent(agentRec.ID).
		SetClaimedAt(time.Now()).
		Save(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "claim task failed", err)
	}

	return nil
}

func (o *Orchestrator) get(ctx context.Context, orchID string) (*ent.TaskOrchestratorRecord, error) {
	rec, err := o.client.TaskOrchestratorRecord.Get(ctx, orchID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, sibylerr.Wrap(sibylerr.NotFound, "task orchestrator record not found", err)
		}
		return nil, sibylerr.Wrap(sibylerr.Transient, "get task orchestrator record failed", err)
	}
	return rec, nil
}

// Pause cascades to the worker agent (§4.3: "pause/resume cascades to the
// worker").
func (o *Orchestrator) Pause(ctx context.Context, orchID, reason string) error {
	rec, err := o.get(ctx, orchID)
	if err != nil {
		return err
	}
	if rec.WorkerID != nil {
		if err := o.agents.Pause(ctx, *rec.WorkerID, reason); err != nil {
			return err
		}
	}
	if err := o.client.TaskOrchestratorRecord.UpdateOneID(orchID).
		SetStatus(taskorchestratorrecord.StatusPaused).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "pause task orchestrator failed", err)
	}
	return nil
}

// Resume flips the orchestrator back to active; re-entering the worker's
// message stream is the Job Runtime's concern (it owns long-running
// streams per §9's cross-process design note), not this package's.
func (o *Orchestrator) Resume(ctx context.Context, orchID string) error {
	rec, err := o.get(ctx, orchID)
	if err != nil {
		return err
	}
	if rec.Status != taskorchestratorrecord.StatusPaused {
		return sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("task orchestrator %s is not paused", orchID), nil)
	}
	if err := o.client.TaskOrchestratorRecord.UpdateOneID(orchID).
		SetStatus(taskorchestratorrecord.StatusActive).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "resume task orchestrator failed", err)
	}
	return nil
}

// AdoptAgent attaches a pre-existing standalone agent to this orchestrator
// in place of spawning a fresh one — the supplemented worker-promotion
// feature (SPEC_FULL.md §3), delegated to the Agent Runner which owns the
// AgentRecord mutation.
func (o *Orchestrator) AdoptAgent(ctx context.Context, orchID, agentID string) error {
	if err := o.agents.AdoptAgent(ctx, agentID, orchID); err != nil {
		return err
	}
	rec, err := o.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "get adopted agent failed", err)
	}
	upd := o.client.TaskOrchestratorRecord.UpdateOneID(orchID).SetWorkerID(agentID)
	if rec.WorktreeID != nil {
		upd = upd.SetWorktreeID(*rec.WorktreeID)
	}
	if err := upd.Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "link adopted agent to orchestrator failed", err)
	}
	return nil
}

// agentCostUSD returns the cost accumulated so far on the orchestrator's
// worker agent, for the MetaNotifier callback. Zero if no worker is linked.
func (o *Orchestrator) agentCostUSD(ctx context.Context, rec *ent.TaskOrchestratorRecord) float64 {
	if rec.WorkerID == nil {
		return 0
	}
	w, err := o.client.AgentRecord.Get(ctx, *rec.WorkerID)
	if err != nil {
		return 0
	}
	return w.CostUsd
}

// PendingApprovalFor returns the orchestrator's currently pending
// ApprovalRecord, if any — used by HTTP handlers that only know the
// orchestrator id, not the approval id, when rendering a review/escalation
// detail view.
func (o *Orchestrator) PendingApprovalFor(ctx context.Context, orchID string) (*ent.ApprovalRecord, error) {
	rec, err := o.get(ctx, orchID)
	if err != nil {
		return nil, err
	}
	if rec.PendingApprovalID == nil {
		return nil, sibylerr.Wrap(sibylerr.NotFound, "no pending approval for task orchestrator", nil)
	}
	appr, err := o.client.ApprovalRecord.Get(ctx, *rec.PendingApprovalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, sibylerr.Wrap(sibylerr.NotFound, "pending approval record not found", err)
		}
		return nil, sibylerr.Wrap(sibylerr.Transient, "get pending approval record failed", err)
	}
	if appr.Status != approvalrecord.StatusPending {
		return nil, sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("approval %s is no longer pending", appr.ID), nil)
	}
	return appr, nil
}
