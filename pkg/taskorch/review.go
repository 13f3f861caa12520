package taskorch

import (
	"context"
	"time"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/task"
	"github.com/sibyl-run/sibyl/ent/taskorchestratorrecord"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/slackops"
	"github.com/sibyl-run/sibyl/pkg/taskorch/gates"
)

// defaultGateTimeout is the per-gate budget when the orchestrator was not
// constructed with one (spec.md §4.3: 300s).
const defaultGateTimeout = 300 * time.Second

// Metadata keys the Job Runtime (C8) reads back to build the worker's next
// resume prompt.
const (
	reworkFeedbackKey = "rework_feedback"
	failedGatesKey    = "failed_gates"
)

// OnWorkerComplete runs the configured quality gates against the worker's
// worktree and routes the result: all-pass -> human review or completion,
// any-fail -> rework (if budget remains) or escalation (if not). §4.3.
func (o *Orchestrator) OnWorkerComplete(ctx context.Context, orchID string) error {
	rec, err := o.get(ctx, orchID)
	if err != nil {
		return err
	}

	if err := o.client.TaskOrchestratorRecord.UpdateOneID(orchID).
		SetCurrentPhase(taskorchestratorrecord.CurrentPhaseReviewing).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "transition to reviewing failed", err)
	}

	var worktreePath string
	if rec.WorktreeID != nil {
		wt, err := o.client.WorktreeRecord.Get(ctx, *rec.WorktreeID)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "get worktree record failed", err)
		}
		worktreePath = wt.Path
	}

	timeout := o.gateTimeout
	if timeout <= 0 {
		timeout = defaultGateTimeout
	}

	results := make([]gates.Result, 0, len(rec.GateConfig))
	for _, g := range rec.GateConfig {
		kind := config.GateKind(g)
		switch kind {
		case config.GateHumanReview:
			continue // human review is handled after gates pass, not run here
		case config.GateAIReview:
			results = append(results, o.runAIReview(ctx, rec, worktreePath))
		default:
			results = append(results, o.gateRunner.Run(ctx, kind, worktreePath, timeout))
		}
	}

	gateResults := make([]map[string]interface{}, 0, len(results))
	for _, r := range results {
		gateResults = append(gateResults, map[string]interface{}{
			"gate":        string(r.Gate),
			"passed":      r.Passed,
			"errors":      r.Errors,
			"warnings":    r.Warnings,
			"duration_ms": r.DurationMs,
		})
	}
	if err := o.client.TaskOrchestratorRecord.UpdateOneID(orchID).
		SetGateResults(gateResults).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "persist gate results failed", err)
	}

	if gates.AllPassed(results) {
		return o.onGatesPassed(ctx, rec)
	}
	return o.onGatesFailed(ctx, rec, results)
}

// runAIReview delegates to the configured AIReviewer, defaulting to a pass
// when none is wired — the AI_REVIEW gate is placeholder-safe by design
// (spec.md §4.3), never a hard dependency of the build loop.
func (o *Orchestrator) runAIReview(ctx context.Context, rec *ent.TaskOrchestratorRecord, worktreePath string) gates.Result {
	if o.aiReviewer == nil {
		return gates.Result{Gate: config.GateAIReview, Passed: true, Output: "no AI reviewer configured"}
	}
	result, err := o.aiReviewer.Review(ctx, rec.OrganizationID, rec.TaskID, worktreePath)
	if err != nil {
		return gates.Result{Gate: config.GateAIReview, Passed: false, Errors: []string{err.Error()}}
	}
	return result
}

func (o *Orchestrator) onGatesPassed(ctx context.Context, rec *ent.TaskOrchestratorRecord) error {
	if hasGate(rec.GateConfig, config.GateHumanReview) {
		appr, err := o.approvals.Enqueue(ctx, approval.EnqueueInput{
			OrgID:        rec.OrganizationID,
			ProjectID:    o.projectIDFor(ctx, rec.TaskID),
			AgentID:      derefOr(rec.WorkerID, ""),
			TaskID:       rec.TaskID,
			ApprovalType: "review_phase",
			Priority:     5,
			Title:        "Review required",
			Summary:      "All automated quality gates passed; human sign-off requested before merge.",
		})
		if err != nil {
			return err
		}
		return o.client.TaskOrchestratorRecord.UpdateOneID(rec.ID).
			SetCurrentPhase(taskorchestratorrecord.CurrentPhaseHumanReview).
			SetPendingApprovalID(appr.ID).
			Exec(ctx)
	}
	return o.complete(ctx, rec, true)
}

func (o *Orchestrator) onGatesFailed(ctx context.Context, rec *ent.TaskOrchestratorRecord, results []gates.Result) error {
	nextRework := rec.ReworkCount + 1
	if nextRework < rec.MaxReworkAttempts {
		feedback := gates.CompileFeedback(results)
		meta := rec.Metadata
		if meta == nil {
			meta = map[string]interface{}{}
		}
		meta[reworkFeedbackKey] = feedback
		meta[failedGatesKey] = gates.FailedGates(results)
		return o.client.TaskOrchestratorRecord.UpdateOneID(rec.ID).
			SetReworkCount(nextRework).
			SetCurrentPhase(taskorchestratorrecord.CurrentPhaseReworking).
			SetMetadata(meta).
			Exec(ctx)
	}
	return o.escalate(ctx, rec, results)
}

// escalate implements the Ralph Loop's bound: rework_count has reached
// max_rework_attempts, so the loop stops retrying and hands the decision to
// a human via a QUESTION ApprovalRecord (§4.3, state transition rather than
// a thrown error).
func (o *Orchestrator) escalate(ctx context.Context, rec *ent.TaskOrchestratorRecord, results []gates.Result) error {
	failed := gates.FailedGates(results)
	appr, err := o.approvals.Enqueue(ctx, approval.EnqueueInput{
		OrgID:        rec.OrganizationID,
		ProjectID:    o.projectIDFor(ctx, rec.TaskID),
		AgentID:      derefOr(rec.WorkerID, ""),
		TaskID:       rec.TaskID,
		ApprovalType: "question",
		Priority:     8,
		Title:        "Rework limit reached",
		Summary:      "Quality gates still failing after the maximum number of rework attempts: " + joinNames(failed),
		Actions:      []map[string]any{{"failed_gates": failed}},
	})
	if err != nil {
		return err
	}

	meta := rec.Metadata
	if meta == nil {
		meta = map[string]interface{}{}
	}
	meta["failure_reason"] = "max_rework_exceeded"
	meta[failedGatesKey] = failed

	if err := o.client.TaskOrchestratorRecord.UpdateOneID(rec.ID).
		SetStatus(taskorchestratorrecord.StatusFailed).
		SetCurrentPhase(taskorchestratorrecord.CurrentPhaseFailed).
		SetPendingApprovalID(appr.ID).
		SetMetadata(meta).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "persist escalation failed", err)
	}

	if o.notifier != nil {
		o.notifier.NotifyEscalation(ctx, slackops.EscalationInput{
			ApprovalID:  appr.ID,
			TaskID:      rec.TaskID,
			ReworkCount: rec.ReworkCount,
			MaxRework:   rec.MaxReworkAttempts,
			FailedGates: failed,
		})
	}

	if o.metaNotify != nil && rec.MetaOrchestratorID != nil {
		_ = o.metaNotify.OnTaskComplete(ctx, *rec.MetaOrchestratorID, rec.ID, false, o.agentCostUSD(ctx, rec), rec.ReworkCount)
	}
	return nil
}

// OnHumanApproval resolves a pending HUMAN_REVIEW approval: approved closes
// the task out, denied re-enters the rework/escalation path as if a gate
// had failed (§4.3).
func (o *Orchestrator) OnHumanApproval(ctx context.Context, orchID string, approved bool, feedback string) error {
	rec, err := o.get(ctx, orchID)
	if err != nil {
		return err
	}
	if approved {
		return o.complete(ctx, rec, true)
	}
	return o.onGatesFailed(ctx, rec, []gates.Result{{
		Gate:   config.GateHumanReview,
		Passed: false,
		Errors: []string{feedback},
	}})
}

func (o *Orchestrator) complete(ctx context.Context, rec *ent.TaskOrchestratorRecord, success bool) error {
	status := taskorchestratorrecord.StatusCompleted
	phase := taskorchestratorrecord.CurrentPhaseComplete
	if !success {
		status = taskorchestratorrecord.StatusFailed
		phase = taskorchestratorrecord.CurrentPhaseFailed
	}
	if err := o.client.TaskOrchestratorRecord.UpdateOneID(rec.ID).
		SetStatus(status).
		SetCurrentPhase(phase).
		ClearPendingApprovalID().
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "persist completion failed", err)
	}

	// §4.3: a COMPLETE orchestrator moves its task to review (ready for merge
	// review), not done — done is a separate, external merge decision.
	taskStatus := task.StatusReview
	if !success {
		taskStatus = task.StatusBlocked
	}
	if err := o.client.Task.UpdateOneID(rec.TaskID).
		SetStatus(taskStatus).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "update task status on completion failed", err)
	}

	if o.metaNotify != nil && rec.MetaOrchestratorID != nil {
		cost := o.agentCostUSD(ctx, rec)
		if err := o.metaNotify.OnTaskComplete(ctx, *rec.MetaOrchestratorID, rec.ID, success, cost, rec.ReworkCount); err != nil {
			return err
		}
	}
	return nil
}

func hasGate(configured []string, target config.GateKind) bool {
	for _, g := range configured {
		if g == string(target) {
			return true
		}
	}
	return false
}

func joinNames(names []string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}

func (o *Orchestrator) projectIDFor(ctx context.Context, taskID string) string {
	t, err := o.client.Task.Get(ctx, taskID)
	if err != nil {
		return ""
	}
	return t.ProjectID
}
