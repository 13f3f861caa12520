package sandbox

import (
	"context"
	"time"

	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// DefaultDispatchTTL and DefaultAckTTL are the §4.7 lease windows:
// reap_stale_tasks(dispatch_ttl=300, ack_ttl=1800).
const (
	DefaultDispatchTTL = 300 * time.Second
	DefaultAckTTL      = 1800 * time.Second
)

// ReapResult tallies what ReapStaleTasks did, for logging/metrics.
type ReapResult struct {
	Requeued int
	Failed   int
}

// ReapStaleTasks requeues or fails tasks whose lease has expired: a
// dispatched row stuck past dispatchTTL, or an acked row stuck past
// ackTTL, is requeued if attempt budget remains, else failed (§4.7,
// boundary behavior B4). Grounded on the teacher's orphan detection
// (pkg/queue/orphan.go's detectAndRecoverOrphans/markSessionTimedOut).
func (d *Dispatcher) ReapStaleTasks(ctx context.Context, dispatchTTL, ackTTL time.Duration) (ReapResult, error) {
	if dispatchTTL <= 0 {
		dispatchTTL = DefaultDispatchTTL
	}
	if ackTTL <= 0 {
		ackTTL = DefaultAckTTL
	}

	var result ReapResult
	now := time.Now()

	dispatchedStale, err := d.staleTasks(ctx, "dispatched", "last_dispatch_at", now.Add(-dispatchTTL))
	if err != nil {
		return result, err
	}
	acked, err := d.staleTasks(ctx, "acked", "acked_at", now.Add(-ackTTL))
	if err != nil {
		return result, err
	}
	stale := append(dispatchedStale, acked...)

	for _, task := range stale {
		if task.AttemptCount >= task.MaxAttempts {
			if err := d.markFailed(ctx, task.ID, "lease expired, max_attempts reached"); err != nil {
				return result, err
			}
			result.Failed++
			continue
		}
		if _, err := d.db.ExecContext(ctx, `
			UPDATE sandbox_tasks SET status = 'retry', error_message = 'lease expired', updated_at = $1
			WHERE id = $2`, now, task.ID); err != nil {
			return result, sibylerr.Wrap(sibylerr.Transient, "requeue stale task failed", err)
		}
		result.Requeued++
	}
	return result, nil
}

func (d *Dispatcher) staleTasks(ctx context.Context, status, leaseColumn string, cutoff time.Time) ([]*sqlTaskRef, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT id, attempt_count, max_attempts FROM sandbox_tasks
		WHERE status = $1 AND `+leaseColumn+` IS NOT NULL AND `+leaseColumn+` < $2`, status, cutoff)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "query stale tasks failed", err)
	}
	defer rows.Close()

	var out []*sqlTaskRef
	for rows.Next() {
		var ref sqlTaskRef
		if err := rows.Scan(&ref.ID, &ref.AttemptCount, &ref.MaxAttempts); err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "scan stale task failed", err)
		}
		out = append(out, &ref)
	}
	if err := rows.Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "rows iteration failed", err)
	}
	return out, nil
}

// sqlTaskRef is the narrow projection ReapStaleTasks needs; avoids paying
// for a full scanTask (payload/result JSON) on every reap pass.
type sqlTaskRef struct {
	ID           string
	AttemptCount int
	MaxAttempts  int
}
