package sandbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/sqlmodels"
)

// Dispatcher implements the Sandbox Dispatcher half of C7: a durable task
// queue against a sandbox, state machine per §4.7.
type Dispatcher struct {
	db  *sql.DB
	cfg *config.SandboxConfig
}

// NewDispatcher constructs a Dispatcher.
func NewDispatcher(db *sql.DB, cfg *config.SandboxConfig) *Dispatcher {
	return &Dispatcher{db: db, cfg: cfg}
}

// EnqueueInput describes a new SandboxTask.
type EnqueueInput struct {
	OrgID          string
	SandboxID      string
	TaskType       string
	Payload        map[string]any
	IdempotencyKey *string
	MaxAttempts    int
}

// Enqueue is idempotent on (org, sandbox, idempotency_key) across active
// states — a duplicate enqueue with the same key returns the existing row
// instead of inserting a second one (§4.7; backed by the partial unique
// index on sandbox_tasks).
func (d *Dispatcher) Enqueue(ctx context.Context, in EnqueueInput) (*sqlmodels.SandboxTask, error) {
	if in.MaxAttempts <= 0 {
		in.MaxAttempts = d.cfg.DefaultMaxAttempts
	}
	if in.MaxAttempts <= 0 {
		in.MaxAttempts = 3
	}

	payloadJSON, err := json.Marshal(in.Payload)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Permanent, "marshal task payload failed", err)
	}

	task := &sqlmodels.SandboxTask{
		ID:           uuid.New().String(),
		OrgID:        in.OrgID,
		SandboxID:    in.SandboxID,
		TaskType:     in.TaskType,
		Status:       sqlmodels.SandboxTaskQueued,
		Payload:      in.Payload,
		MaxAttempts:  in.MaxAttempts,
		IdempotencyKey: in.IdempotencyKey,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	_, err = d.db.ExecContext(ctx, `
		INSERT INTO sandbox_tasks (id, org_id, sandbox_id, task_type, status, payload, max_attempts, idempotency_key, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		ON CONFLICT (org_id, sandbox_id, idempotency_key) WHERE idempotency_key IS NOT NULL AND status NOT IN ('completed', 'failed', 'canceled') DO NOTHING`,
		task.ID, task.OrgID, task.SandboxID, task.TaskType, string(task.Status), payloadJSON,
		task.MaxAttempts, task.IdempotencyKey, task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "insert sandbox task failed", err)
	}

	if in.IdempotencyKey != nil {
		existing, err := d.findByIdempotencyKey(ctx, in.OrgID, in.SandboxID, *in.IdempotencyKey)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
	}
	return task, nil
}

func (d *Dispatcher) findByIdempotencyKey(ctx context.Context, orgID, sandboxID, key string) (*sqlmodels.SandboxTask, error) {
	row := d.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+`
		FROM sandbox_tasks
		WHERE org_id = $1 AND sandbox_id = $2 AND idempotency_key = $3
		ORDER BY created_at DESC LIMIT 1`, orgID, sandboxID, key)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "lookup idempotent task failed", err)
	}
	return task, nil
}

// SendFunc delivers a dispatched task to its sandbox's runner. A non-nil
// error routes the task to retry|failed per attempt budget.
type SendFunc func(ctx context.Context, task *sqlmodels.SandboxTask) error

// Dispatch claims up to limit queued|retry tasks for a sandbox via a
// transactional SELECT ... FOR UPDATE SKIP LOCKED ordered by created_at
// asc, then calls send for each. Grounded on the teacher's
// Worker.claimNextSession. Returns the count successfully sent.
func (d *Dispatcher) Dispatch(ctx context.Context, sandboxID string, limit int, send SendFunc) (int, error) {
	tx, err := d.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "begin dispatch tx failed", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx, `
		SELECT `+taskColumns+`
		FROM sandbox_tasks
		WHERE sandbox_id = $1 AND status IN ('queued', 'retry')
		ORDER BY created_at ASC
		LIMIT $2
		FOR UPDATE SKIP LOCKED`, sandboxID, limit)
	if err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "dispatch query failed", err)
	}
	claimed, err := scanTasks(rows)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, task := range claimed {
		nextAttempt := task.AttemptCount + 1
		if nextAttempt > task.MaxAttempts {
			if err := markFailedTx(ctx, tx, task.ID, "max_attempts exceeded before dispatch"); err != nil {
				return sent, err
			}
			continue
		}

		now := time.Now()
		if _, err := tx.ExecContext(ctx, `
			UPDATE sandbox_tasks SET status = 'dispatched', attempt_count = $1, last_dispatch_at = $2, updated_at = $2
			WHERE id = $3`, nextAttempt, now, task.ID); err != nil {
			return sent, sibylerr.Wrap(sibylerr.Transient, "mark dispatched failed", err)
		}
		task.Status = sqlmodels.SandboxTaskDispatched
		task.AttemptCount = nextAttempt
		task.LastDispatchAt = &now
	}

	if err := tx.Commit(); err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "commit dispatch tx failed", err)
	}

	for _, task := range claimed {
		if task.Status != sqlmodels.SandboxTaskDispatched {
			continue // already marked failed above, for-loop below must skip
		}
		if err := send(ctx, task); err != nil {
			_ = d.transitionAfterSendFailure(ctx, task)
			continue
		}
		sent++
	}
	return sent, nil
}

func (d *Dispatcher) transitionAfterSendFailure(ctx context.Context, task *sqlmodels.SandboxTask) error {
	if task.AttemptCount >= task.MaxAttempts {
		return d.markFailed(ctx, task.ID, "dispatch_failed_max_attempts")
	}
	_, err := d.db.ExecContext(ctx, `UPDATE sandbox_tasks SET status = 'retry', updated_at = $1 WHERE id = $2`, time.Now(), task.ID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "mark retry after send failure failed", err)
	}
	return nil
}

// Ack records that the runner has taken ownership of a dispatched task.
func (d *Dispatcher) Ack(ctx context.Context, taskID string) error {
	now := time.Now()
	res, err := d.db.ExecContext(ctx, `
		UPDATE sandbox_tasks SET status = 'acked', acked_at = $1, updated_at = $1
		WHERE id = $2 AND status = 'dispatched'`, now, taskID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "ack task failed", err)
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return sibylerr.Wrap(sibylerr.Conflict, "task not in dispatched state", nil)
	}
	return nil
}

// Complete resolves an acked task: success is always terminal; failure
// retries while attempt budget remains and retryable is true, else fails.
func (d *Dispatcher) Complete(ctx context.Context, taskID string, success, retryable bool, result map[string]any, errMsg string) error {
	task, err := d.get(ctx, taskID)
	if err != nil {
		return err
	}

	if success {
		resultJSON, err := json.Marshal(result)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Permanent, "marshal task result failed", err)
		}
		now := time.Now()
		_, err = d.db.ExecContext(ctx, `
			UPDATE sandbox_tasks SET status = 'completed', result = $1, completed_at = $2, updated_at = $2
			WHERE id = $3`, resultJSON, now, taskID)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "complete task failed", err)
		}
		return nil
	}

	if retryable && task.AttemptCount < task.MaxAttempts {
		_, err := d.db.ExecContext(ctx, `UPDATE sandbox_tasks SET status = 'retry', error_message = $1, updated_at = $2 WHERE id = $3`,
			errMsg, time.Now(), taskID)
		if err != nil {
			return sibylerr.Wrap(sibylerr.Transient, "retry task failed", err)
		}
		return nil
	}
	return d.markFailed(ctx, taskID, errMsg)
}

// Cancel moves any non-terminal task straight to canceled.
func (d *Dispatcher) Cancel(ctx context.Context, taskID string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE sandbox_tasks SET status = 'canceled', updated_at = $1
		WHERE id = $2 AND status NOT IN ('completed', 'failed', 'canceled')`, time.Now(), taskID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "cancel task failed", err)
	}
	return nil
}

// FailAllPending drains every non-terminal task for org to failed — used by
// the admin rollback endpoint to tear down a tenant's in-flight work.
func (d *Dispatcher) FailAllPending(ctx context.Context, orgID string) (int, error) {
	res, err := d.db.ExecContext(ctx, `
		UPDATE sandbox_tasks SET status = 'failed', failed_at = $1, error_message = 'tenant rollback', updated_at = $1
		WHERE org_id = $2 AND status NOT IN ('completed', 'failed', 'canceled')`, time.Now(), orgID)
	if err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "fail_all_pending failed", err)
	}
	n, _ := res.RowsAffected()
	return int(n), nil
}

func (d *Dispatcher) markFailed(ctx context.Context, taskID, errMsg string) error {
	_, err := d.db.ExecContext(ctx, `
		UPDATE sandbox_tasks SET status = 'failed', failed_at = $1, error_message = $2, updated_at = $1
		WHERE id = $3`, time.Now(), errMsg, taskID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "mark failed failed", err)
	}
	return nil
}

func markFailedTx(ctx context.Context, tx *sql.Tx, taskID, errMsg string) error {
	_, err := tx.ExecContext(ctx, `
		UPDATE sandbox_tasks SET status = 'failed', failed_at = $1, error_message = $2, updated_at = $1
		WHERE id = $3`, time.Now(), errMsg, taskID)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "mark failed (tx) failed", err)
	}
	return nil
}

func (d *Dispatcher) get(ctx context.Context, taskID string) (*sqlmodels.SandboxTask, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+taskColumns+` FROM sandbox_tasks WHERE id = $1`, taskID)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, sibylerr.Wrap(sibylerr.NotFound, fmt.Sprintf("sandbox task %s not found", taskID), nil)
	}
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get sandbox task failed", err)
	}
	return task, nil
}

const taskColumns = `id, org_id, sandbox_id, task_type, status, payload, attempt_count, max_attempts,
	idempotency_key, runner_id, last_dispatch_at, acked_at, completed_at, failed_at, result, error_message,
	created_at, updated_at`

func scanTask(row scanner) (*sqlmodels.SandboxTask, error) {
	var t sqlmodels.SandboxTask
	var status string
	var payloadJSON, resultJSON []byte
	err := row.Scan(&t.ID, &t.OrgID, &t.SandboxID, &t.TaskType, &status, &payloadJSON, &t.AttemptCount, &t.MaxAttempts,
		&t.IdempotencyKey, &t.RunnerID, &t.LastDispatchAt, &t.AckedAt, &t.CompletedAt, &t.FailedAt, &resultJSON,
		&t.ErrorMessage, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Status = sqlmodels.SandboxTaskStatus(status)
	if len(payloadJSON) > 0 {
		if err := json.Unmarshal(payloadJSON, &t.Payload); err != nil {
			return nil, fmt.Errorf("unmarshal task payload: %w", err)
		}
	}
	if len(resultJSON) > 0 {
		if err := json.Unmarshal(resultJSON, &t.Result); err != nil {
			return nil, fmt.Errorf("unmarshal task result: %w", err)
		}
	}
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*sqlmodels.SandboxTask, error) {
	defer rows.Close()
	var out []*sqlmodels.SandboxTask
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "scan sandbox task failed", err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "rows iteration failed", err)
	}
	return out, nil
}
