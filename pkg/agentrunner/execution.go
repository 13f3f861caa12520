package agentrunner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/agentrecord"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

const basePreamble = "You are operating inside the Sibyl orchestration runtime. " +
	"Tool-use requests are subject to approval; a stop signal may cancel this " +
	"session at any point between messages."

// Execute implements the execution contract of §4.2: it builds the layered
// system prompt, starts the subprocess (fresh session), and returns the
// message stream while internally running the heartbeat loop and the stop
// watcher concurrently for the duration of the stream. The caller (the Job
// Runtime, which owns long-running streams per §9's cross-process design
// note) drains the returned channel.
func (r *Runner) Execute(ctx context.Context, agentID string, in SpawnInput) (<-chan Message, error) {
	return r.start(ctx, agentID, in, "")
}

// Resume re-enters the subprocess with its session id if the AgentRecord
// has one; otherwise it restarts with a continuation prompt on the same
// record, per §4.2's resume contract ("same record, fresh session" — an
// explicitly lossy but legitimate path, per the Open Questions in §9).
func (r *Runner) Resume(ctx context.Context, agentID string, in SpawnInput) (<-chan Message, error) {
	rec, err := r.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, sibylerr.Wrap(sibylerr.NotFound, "agent record not found", err)
		}
		return nil, sibylerr.Wrap(sibylerr.Transient, "get agent record failed", err)
	}

	session := ""
	if rec.SessionID != nil {
		session = *rec.SessionID
	}
	return r.start(ctx, agentID, in, session)
}

func (r *Runner) start(ctx context.Context, agentID string, in SpawnInput, sessionID string) (<-chan Message, error) {
	r.mu.Lock()
	inst, ok := r.active[agentID]
	r.mu.Unlock()
	if !ok {
		return nil, sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("agent %s has no registered in-memory instance; call Spawn first", agentID), nil)
	}

	execCtx, cancel := context.WithCancel(ctx)
	inst.mu.Lock()
	inst.cancelExec = cancel
	inst.done = make(chan struct{})
	inst.mu.Unlock()

	opts := SpawnOptions{
		AgentID:      agentID,
		SessionID:    sessionID,
		SystemPrompt: r.buildSystemPrompt(in),
		Permission:   r.permissionCallback(agentID, in),
	}

	raw, err := r.subprocess.Start(execCtx, opts)
	if err != nil {
		cancel()
		return nil, sibylerr.Wrap(sibylerr.Transient, "subprocess start failed", err)
	}

	go r.runStopWatcher(execCtx, cancel, agentID)
	go r.runHeartbeat(execCtx, inst)

	out := make(chan Message)
	go r.pump(execCtx, cancel, inst, raw, out)

	return out, nil
}

// SendMessage injects a follow-up user prompt into a live agent session —
// the send_message side of §4.2's execution contract. The continuation
// streams back on the channel the original Execute/Resume call returned, so
// the consumer's drain loop sees one ordered stream. Fails with Conflict
// when no execution is live in this process.
func (r *Runner) SendMessage(ctx context.Context, agentID, content string) error {
	r.mu.Lock()
	_, ok := r.active[agentID]
	r.mu.Unlock()
	if !ok {
		return sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("agent %s has no live execution in this process", agentID), nil)
	}
	if err := r.subprocess.Send(ctx, agentID, content); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "send follow-up to subprocess failed", err)
	}
	return nil
}

// pump relays the subprocess stream to out, accumulating usage on every
// result message (§4.2) and finalizing the AgentRecord when the stream
// ends, whichever way it ends.
func (r *Runner) pump(ctx context.Context, cancel context.CancelFunc, inst *instance, raw <-chan Message, out chan<- Message) {
	defer cancel()
	defer close(out)
	defer close(inst.done)

	var lastMsg Message
	for {
		select {
		case m, ok := <-raw:
			if !ok {
				r.finalize(context.Background(), inst, lastMsg)
				return
			}
			if m.Type == MessageResult {
				inst.recordResult(m)
				lastMsg = m
			}
			select {
			case out <- m:
			case <-ctx.Done():
				r.finalize(context.Background(), inst, lastMsg)
				return
			}
		case <-ctx.Done():
			r.finalize(context.Background(), inst, lastMsg)
			return
		}
	}
}

func (r *Runner) finalize(ctx context.Context, inst *instance, last Message) {
	session, tokens, cost := inst.snapshotUsage()
	upd := r.client.AgentRecord.UpdateOneID(inst.agentID).
		SetStatus(agentrecord.StatusCompleted).
		SetTokensUsed(tokens).
		SetCostUsd(cost).
		SetCompletedAt(time.Now())
	if session != "" {
		upd = upd.SetSessionID(session)
	}
	if _, err := upd.Save(ctx); err != nil {
		r.logger.Error("failed to finalize agent record", "agent_id", inst.agentID, "error", err)
	}

	r.mu.Lock()
	delete(r.active, inst.agentID)
	r.mu.Unlock()
}

// runHeartbeat writes last_heartbeat/tokens_used/cost_usd to the
// operational agent_states table every HeartbeatInterval while the stream
// is active (§4.2) — deliberately never the graph, which is reserved for
// meaningful state transitions.
func (r *Runner) runHeartbeat(ctx context.Context, inst *instance) {
	ticker := time.NewTicker(r.heartbeatInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, tokens, cost := inst.snapshotUsage()
			if r.db == nil {
				continue
			}
			_, err := r.db.ExecContext(ctx, `
				INSERT INTO agent_states (agent_id, last_heartbeat, tokens_used, cost_usd, updated_at)
				VALUES ($1, $2, $3, $4, $5)
				ON CONFLICT (agent_id) DO UPDATE SET
					last_heartbeat = EXCLUDED.last_heartbeat,
					tokens_used = EXCLUDED.tokens_used,
					cost_usd = EXCLUDED.cost_usd,
					updated_at = EXCLUDED.updated_at`,
				inst.agentID, time.Now(), tokens, cost, time.Now())
			if err != nil {
				r.logger.Warn("heartbeat write failed", "agent_id", inst.agentID, "error", err)
			}
		}
	}
}

// runStopWatcher polls agent:stop:<agent_id> every StopPollInterval
// concurrently with message streaming (§4.2). It is the only allowed
// external termination path once execution has begun.
func (r *Runner) runStopWatcher(ctx context.Context, cancel context.CancelFunc, agentID string) {
	ticker := time.NewTicker(r.stopPollInterval)
	defer ticker.Stop()
	key := stopKey(agentID)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_, found, err := r.bus.Get(ctx, key)
			if err != nil {
				continue
			}
			if found {
				cancel()
				_ = r.bus.Del(ctx, key)
				return
			}
		}
	}
}

// Stop cancels the running execution (if any), cancels any pending
// approvals on this agent's behalf, and writes a terminal status
// transition. Subprocess cancel-scope faults are the subprocess's concern,
// not this package's (§1 Non-goals) — Stop only signals via the stop key
// and local context cancellation, both idempotent.
func (r *Runner) Stop(ctx context.Context, agentID, reason string) error {
	if err := r.bus.SetEx(ctx, stopKey(agentID), "1", 60); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "write stop signal failed", err)
	}

	r.mu.Lock()
	inst, ok := r.active[agentID]
	r.mu.Unlock()
	if ok {
		inst.mu.Lock()
		if inst.cancelExec != nil {
			inst.cancelExec()
		}
		inst.mu.Unlock()
	}

	rec, err := r.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return sibylerr.Wrap(sibylerr.NotFound, "agent record not found", err)
		}
		return sibylerr.Wrap(sibylerr.Transient, "get agent record failed", err)
	}

	if r.approvals != nil && rec.Status == agentrecord.StatusWaitingApproval {
		_, _ = r.approvals.CancelAll(ctx, rec.OrganizationID, reason)
	}

	_, err = r.client.AgentRecord.UpdateOneID(agentID).
		SetStatus(agentrecord.StatusTerminated).
		SetCompletedAt(time.Now()).
		SetMetadata(mergedMeta(rec.Metadata, "stop_reason", reason)).
		Save(ctx)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "mark agent terminated failed", err)
	}
	return r.Checkpoint(ctx, agentID, "stopped", nil, nil)
}

// Pause cancels the running execution like Stop but leaves pending
// approvals intact (§4.2) and transitions to paused rather than
// terminated, so Resume can re-enter the same session later.
func (r *Runner) Pause(ctx context.Context, agentID, reason string) error {
	if err := r.bus.SetEx(ctx, stopKey(agentID), "1", 60); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "write stop signal failed", err)
	}

	r.mu.Lock()
	inst, ok := r.active[agentID]
	r.mu.Unlock()
	if ok {
		inst.mu.Lock()
		if inst.cancelExec != nil {
			inst.cancelExec()
		}
		inst.mu.Unlock()
	}

	rec, err := r.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return sibylerr.Wrap(sibylerr.NotFound, "agent record not found", err)
		}
		return sibylerr.Wrap(sibylerr.Transient, "get agent record failed", err)
	}
	if _, err := r.client.AgentRecord.UpdateOneID(agentID).
		SetStatus(agentrecord.StatusPaused).
		SetMetadata(mergedMeta(rec.Metadata, "pause_reason", reason)).
		Save(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "mark agent paused failed", err)
	}
	return r.Checkpoint(ctx, agentID, "paused", nil, nil)
}

// Checkpoint writes an AgentCheckpoint containing only a summary, per
// §4.2: session_id, an optional current_step, and an optional
// pending_approval_id. Never the full message history.
func (r *Runner) Checkpoint(ctx context.Context, agentID, currentStep string, pendingApprovalID, waitingForTaskID *string) error {
	rec, err := r.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return sibylerr.Wrap(sibylerr.NotFound, "agent record not found", err)
		}
		return sibylerr.Wrap(sibylerr.Transient, "get agent record failed", err)
	}

	b := r.client.AgentCheckpoint.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(rec.OrganizationID).
		SetAgentID(agentID)
	if rec.SessionID != nil {
		b = b.SetSessionID(*rec.SessionID)
	}
	if currentStep != "" {
		b = b.SetCurrentStep(currentStep)
	}
	if pendingApprovalID != nil {
		b = b.SetPendingApprovalID(*pendingApprovalID)
	}
	if waitingForTaskID != nil {
		b = b.SetWaitingForTaskID(*waitingForTaskID)
	}
	if _, err := b.Save(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "write checkpoint failed", err)
	}
	return nil
}

// permissionCallback routes a tool-use request through the Approval Queue
// (§6.5): every tool call becomes an approval enqueue + blocking wait.
func (r *Runner) permissionCallback(agentID string, in SpawnInput) PermissionFunc {
	return func(ctx context.Context, toolName string, input map[string]any) (bool, string, error) {
		if r.approvals == nil {
			return true, "no approval queue configured", nil
		}
		rec, err := r.approvals.Enqueue(ctx, approvalEnqueueInput(in, agentID, toolName, input))
		if err != nil {
			return false, "", err
		}
		result, err := r.approvals.WaitForResponse(ctx, rec.ID, 300*time.Second)
		if err != nil {
			return false, "", err
		}
		return result.Approved, result.Message, nil
	}
}

// buildSystemPrompt layers the fixed runtime preamble, the agent-type role,
// task context, and optional custom instructions (§4.2 step 5).
func (r *Runner) buildSystemPrompt(in SpawnInput) string {
	var b strings.Builder
	b.WriteString(basePreamble)
	b.WriteString("\n\nRole: ")
	b.WriteString(in.AgentType)
	if in.TaskContext != "" {
		b.WriteString("\n\nTask:\n")
		b.WriteString(in.TaskContext)
	}
	if in.CustomInstructions != "" {
		b.WriteString("\n\nAdditional instructions:\n")
		b.WriteString(in.CustomInstructions)
	}
	return b.String()
}

// approvalEnqueueInput translates a tool-use request into an ApprovalQueue
// enqueue call (approval_type=tool_use, §4.5/§6.5).
func approvalEnqueueInput(in SpawnInput, agentID, toolName string, toolInput map[string]any) approval.EnqueueInput {
	return approval.EnqueueInput{
		OrgID:        in.OrgID,
		ProjectID:    in.ProjectID,
		AgentID:      agentID,
		TaskID:       in.TaskID,
		ApprovalType: "tool_use",
		Title:        fmt.Sprintf("Tool use: %s", toolName),
		Summary:      fmt.Sprintf("Agent %s requests to run %s", agentID, toolName),
		Actions:      []map[string]any{{"tool": toolName, "input": toolInput}},
	}
}

func mergedMeta(meta map[string]any, key string, value string) map[string]any {
	out := make(map[string]any, len(meta)+1)
	for k, v := range meta {
		out[k] = v
	}
	out[key] = value
	return out
}
