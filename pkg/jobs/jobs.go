// Package jobs implements the Job Runtime (C8): the worker-process side of
// spec.md §4.8 that drains a durable job queue and performs every
// long-running operation the API process must not block on — agent
// execution, resume, entity mutation, and backup.
//
// The bus contract (§6.3) exposes GET/SETEX/DEL/SCAN_ITER/PUBLISH/SUBSCRIBE
// but no list/queue primitive, so the queue itself is a Postgres table
// (jobs) claimed with SELECT ... FOR UPDATE SKIP LOCKED — the same durable-
// dispatch idiom pkg/sandbox's Dispatcher already uses for sandbox_tasks,
// itself grounded on the teacher's pkg/queue.Worker.claimNextSession.
// PUBLISH on a wake channel only shortens poll latency; the table is the
// durable source of truth, so a missed publish just falls back to the next
// poll tick, matching the teacher's ticker-driven Worker.run loop.
package jobs

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/pkg/entity"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
)

// Kind enumerates the job kinds spec.md §4.8 names.
type Kind string

const (
	KindRunAgentExecution    Kind = "run_agent_execution"
	KindResumeAgentExecution Kind = "resume_agent_execution"
	KindUpdateEntity         Kind = "update_entity"
	KindUpdateTask           Kind = "update_task"
	KindCreateEntity         Kind = "create_entity"
	KindCreateLearningEpisode Kind = "create_learning_episode"
	KindGenerateStatusHint   Kind = "generate_status_hint"
	KindRunBackup            Kind = "run_backup"
	KindCleanupOldBackups    Kind = "cleanup_old_backups"
	KindRunScheduledBackups  Kind = "run_scheduled_backups"
)

// WakeChannel is the bus pub/sub channel a fresh Enqueue publishes on, so an
// idle worker can wake immediately instead of waiting for its next poll
// tick.
const WakeChannel = "jobs:wake"

// Status mirrors the jobs.status column domain.
type Status string

const (
	StatusQueued    Status = "queued"
	StatusClaimed   Status = "claimed"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusRetry     Status = "retry"
)

// Job is a row in the durable queue.
type Job struct {
	ID           string
	OrgID        string
	Kind         Kind
	Payload      json.RawMessage
	Status       Status
	AttemptCount int
	MaxAttempts  int
	RunAfter     time.Time
	ClaimedBy    *string
	ClaimedAt    *time.Time
	ErrorMessage string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// publisher is the narrow bus seam Queue needs — just enough to wake idle
// workers on enqueue, never a correctness requirement.
type publisher interface {
	Publish(ctx context.Context, channel, payload string) error
}

// Queue is the durable, SKIP-LOCKED-claimed job queue.
type Queue struct {
	db  *sql.DB
	bus publisher
}

// NewQueue constructs a Queue. bus may be nil — Enqueue then simply skips
// the wake publish, relying on the worker's poll ticker (fire-and-forget
// per §4.8: "failures in the pub/sub publisher never fail the job").
func NewQueue(db *sql.DB, b publisher) *Queue {
	return &Queue{db: db, bus: b}
}

// Enqueue inserts a new job, defaulting MaxAttempts to 5 per the runner's
// general retry posture, and best-effort publishes a wake signal.
func (q *Queue) Enqueue(ctx context.Context, orgID string, kind Kind, payload any) (string, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return "", sibylerr.Wrap(sibylerr.Permanent, "marshal job payload failed", err)
	}

	id := uuid.New().String()
	now := time.Now()
	_, err = q.db.ExecContext(ctx, `
		INSERT INTO jobs (id, org_id, kind, payload, status, max_attempts, run_after, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 'queued', 5, $5, $5, $5)`,
		id, orgID, string(kind), raw, now)
	if err != nil {
		return "", sibylerr.Wrap(sibylerr.Transient, "enqueue job failed", err)
	}

	if q.bus != nil {
		_ = q.bus.Publish(ctx, WakeChannel, string(kind))
	}
	return id, nil
}

// createEntityPayload is the create_entity job's JSON payload shape,
// deserialized back into the same types by the handler in handlers.go.
type createEntityPayload struct {
	PendingID     string                `json:"pending_id"`
	Entity        entity.Entity         `json:"entity"`
	Relationships []entity.Relationship `json:"relationships,omitempty"`
	AutoLink      *entity.AutoLinkParams `json:"auto_link,omitempty"`
}

// EnqueueCreateEntity implements entity.Enqueuer, wiring pkg/entity's
// CreateAsync to this queue without pkg/entity importing pkg/jobs.
func (q *Queue) EnqueueCreateEntity(ctx context.Context, orgID, pendingID string, e entity.Entity, rels []entity.Relationship, link *entity.AutoLinkParams) error {
	_, err := q.Enqueue(ctx, orgID, KindCreateEntity, createEntityPayload{
		PendingID:     pendingID,
		Entity:        e,
		Relationships: rels,
		AutoLink:      link,
	})
	return err
}

const jobColumns = `id, org_id, kind, payload, status, attempt_count, max_attempts, run_after, claimed_by, claimed_at, completed_at, failed_at, error_message, created_at, updated_at`

// Claim atomically claims up to limit runnable jobs (status in queued/retry,
// run_after <= now) for claimedBy, ordered oldest first. Grounded on
// pkg/sandbox.Dispatcher.Dispatch's transactional claim-then-update shape.
func (q *Queue) Claim(ctx context.Context, claimedBy string, limit int) ([]*Job, error) {
	tx, err := q.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "begin claim tx failed", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now()
	rows, err := tx.QueryContext(ctx, `
		SELECT id, org_id, kind, payload, status, attempt_count, max_attempts, run_after, created_at, updated_at
		FROM jobs
		WHERE status IN ('queued', 'retry') AND run_after <= $1
		ORDER BY created_at ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED`, now, limit)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "claim query failed", err)
	}

	var claimed []*Job
	for rows.Next() {
		var j Job
		var kind string
		if err := rows.Scan(&j.ID, &j.OrgID, &kind, &j.Payload, &j.Status, &j.AttemptCount, &j.MaxAttempts, &j.RunAfter, &j.CreatedAt, &j.UpdatedAt); err != nil {
			rows.Close()
			return nil, sibylerr.Wrap(sibylerr.Transient, "scan claimed job failed", err)
		}
		j.Kind = Kind(kind)
		claimed = append(claimed, &j)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "claim rows iteration failed", err)
	}

	for _, j := range claimed {
		j.AttemptCount++
		if _, err := tx.ExecContext(ctx, `
			UPDATE jobs SET status = 'claimed', attempt_count = $1, claimed_by = $2, claimed_at = $3, updated_at = $3
			WHERE id = $4`, j.AttemptCount, claimedBy, now, j.ID); err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "mark claimed failed", err)
		}
		j.Status = StatusClaimed
		j.ClaimedBy = &claimedBy
		j.ClaimedAt = &now
	}

	if err := tx.Commit(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "commit claim tx failed", err)
	}
	return claimed, nil
}

// Complete marks a job terminal: completed on success, retry (if attempts
// remain) or failed otherwise.
func (q *Queue) Complete(ctx context.Context, jobID string, jobErr error) error {
	now := time.Now()
	if jobErr == nil {
		_, err := q.db.ExecContext(ctx, `
			UPDATE jobs SET status = 'completed', completed_at = $1, updated_at = $1 WHERE id = $2`, now, jobID)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "mark job completed failed", err)
		}
		return nil
	}

	var attempt, maxAttempts int
	if err := q.db.QueryRowContext(ctx, `SELECT attempt_count, max_attempts FROM jobs WHERE id = $1`, jobID).
		Scan(&attempt, &maxAttempts); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "read job attempt count failed", err)
	}

	if attempt >= maxAttempts {
		_, err := q.db.ExecContext(ctx, `
			UPDATE jobs SET status = 'failed', failed_at = $1, error_message = $2, updated_at = $1 WHERE id = $3`,
			now, jobErr.Error(), jobID)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "mark job failed failed", err)
		}
		return nil
	}

	backoff := retryBackoff(attempt)
	_, err := q.db.ExecContext(ctx, `
		UPDATE jobs SET status = 'retry', run_after = $1, error_message = $2, updated_at = $3 WHERE id = $4`,
		now.Add(backoff), jobErr.Error(), now, jobID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "mark job retry failed", err)
	}
	return nil
}

// retryBackoff mirrors pkg/retry's exponential-with-cap shape (0.5s base,
// 30s cap), reused here rather than pkg/retry.Do itself since a job retry is
// scheduled forward in time across worker restarts, not looped in-process.
func retryBackoff(attempt int) time.Duration {
	d := 500 * time.Millisecond
	for i := 0; i < attempt; i++ {
		d *= 2
		if d > 30*time.Second {
			return 30 * time.Second
		}
	}
	return d
}

// QueueDepth returns the number of runnable (queued/retry) jobs, used by
// Health.
func (q *Queue) QueueDepth(ctx context.Context) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, `SELECT count(*) FROM jobs WHERE status IN ('queued', 'retry')`).Scan(&n)
	if err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "query queue depth failed", err)
	}
	return n, nil
}
