package agentrunner

import (
	"context"
	"fmt"
	"time"

	"github.com/sibyl-run/sibyl/ent/agentrecord"
)

// RunHealthLoop is the background health loop of §5 — "every 60s in the API
// process" — that marks agents with a stale heartbeat failed and checkpoints
// them under current_step="stale_heartbeat". Grounded on the teacher's
// WorkerPool.runOrphanDetection/detectAndRecoverOrphans (pkg/queue/orphan.go):
// ticker-driven scan, idempotent across pods, terminal-state transition plus
// a recovery record.
func (r *Runner) RunHealthLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.ReapStaleAgents(ctx); err != nil {
				r.logger.Error("stale agent reap failed", "error", err)
			}
		}
	}
}

// ReapStaleAgents marks non-terminal AgentRecords whose last_heartbeat is
// older than staleThreshold as failed. A record with no last_heartbeat but a
// started_at older than the threshold (subprocess died before its first
// heartbeat tick) counts too.
func (r *Runner) ReapStaleAgents(ctx context.Context) error {
	cutoff := time.Now().Add(-r.staleThreshold)

	stale, err := r.client.AgentRecord.Query().
		Where(
			agentrecord.StatusIn(
				agentrecord.StatusInitializing,
				agentrecord.StatusWorking,
				agentrecord.StatusWaitingApproval,
				agentrecord.StatusWaitingDependency,
			),
			agentrecord.Or(
				agentrecord.LastHeartbeatLT(cutoff),
				agentrecord.And(agentrecord.LastHeartbeatIsNil(), agentrecord.StartedAtLT(cutoff)),
			),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("query stale agent records: %w", err)
	}

	for _, rec := range stale {
		if err := r.reapOne(ctx, rec.ID); err != nil {
			r.logger.Error("failed to reap stale agent", "agent_id", rec.ID, "error", err)
			continue
		}
		r.logger.Warn("reaped stale agent", "agent_id", rec.ID)
	}
	return nil
}

func (r *Runner) reapOne(ctx context.Context, agentID string) error {
	r.mu.Lock()
	inst, ok := r.active[agentID]
	r.mu.Unlock()
	if ok {
		inst.mu.Lock()
		if inst.cancelExec != nil {
			inst.cancelExec()
		}
		inst.mu.Unlock()
		r.mu.Lock()
		delete(r.active, agentID)
		r.mu.Unlock()
	}

	if _, err := r.client.AgentRecord.UpdateOneID(agentID).
		SetStatus(agentrecord.StatusFailed).
		SetCompletedAt(time.Now()).
		Save(ctx); err != nil {
		return fmt.Errorf("mark agent record failed: %w", err)
	}
	return r.Checkpoint(ctx, agentID, "stale_heartbeat", nil, nil)
}
