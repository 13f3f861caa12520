// Package sandbox implements the Sandbox Plane (C7): the Controller
// (pod-backed execution environment lifecycle) and the Dispatcher (a
// durable task queue against a sandbox). Both talk to their tables via
// database/sql directly — sqlmodels.Sandbox/SandboxTask are relational-only
// per spec.md §6.2, grounded the same way pkg/messagebus talks to
// inter_agent_messages — and the Dispatcher's skip-locked claim loop is
// grounded on the teacher's pkg/queue.Worker.claimNextSession (transactional
// SELECT ... FOR UPDATE SKIP LOCKED, ordered by created_at).
package sandbox

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/sandbox/podruntime"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/sqlmodels"
)

// Controller implements the Sandbox Controller half of C7.
type Controller struct {
	db      *sql.DB
	cfg     *config.SandboxConfig
	runtime podruntime.Runtime
	logger  *slog.Logger
}

// NewController constructs a Controller. runtime may be nil only when
// cfg.Enabled is false (the feature gate rejects every mutating call before
// the runtime would be touched).
func NewController(db *sql.DB, cfg *config.SandboxConfig, runtime podruntime.Runtime) *Controller {
	return &Controller{db: db, cfg: cfg, runtime: runtime, logger: slog.With("component", "sandbox.controller")}
}

func (c *Controller) checkEnabled() error {
	if !c.cfg.Enabled {
		return sibylerr.Wrap(sibylerr.Permanent, "sandbox plane disabled", nil)
	}
	return nil
}

func (c *Controller) podName(sandboxID string) string {
	return "sibyl-sandbox-" + sandboxID
}

// Ensure returns the most-recently-updated non-terminal sandbox for
// (org,user), resuming it if suspended, or creates a fresh one (§4.7).
func (c *Controller) Ensure(ctx context.Context, orgID, userID string, sbCtx map[string]any) (*sqlmodels.Sandbox, error) {
	if err := c.checkEnabled(); err != nil {
		return nil, err
	}

	existing, err := c.latestNonTerminal(ctx, orgID, userID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return c.Create(ctx, orgID, userID, sbCtx)
	}
	if existing.Status == sqlmodels.SandboxSuspended {
		return c.Resume(ctx, existing.ID)
	}
	return existing, nil
}

func (c *Controller) latestNonTerminal(ctx context.Context, orgID, userID string) (*sqlmodels.Sandbox, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, org_id, user_id, status, runner_id, pod_name, context, last_error, created_at, updated_at
		FROM sandboxes
		WHERE org_id = $1 AND user_id = $2 AND status != 'destroyed'
		ORDER BY updated_at DESC
		LIMIT 1`, orgID, userID)
	sb, err := scanSandbox(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "query latest sandbox failed", err)
	}
	return sb, nil
}

// Create provisions a brand new sandbox row and its runtime pod.
func (c *Controller) Create(ctx context.Context, orgID, userID string, sbCtx map[string]any) (*sqlmodels.Sandbox, error) {
	if err := c.checkEnabled(); err != nil {
		return nil, err
	}

	sb := &sqlmodels.Sandbox{
		ID:        uuid.New().String(),
		OrgID:     orgID,
		UserID:    userID,
		Status:    sqlmodels.SandboxCreating,
		Context:   sbCtx,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := c.insert(ctx, sb); err != nil {
		return nil, err
	}

	podName := c.podName(sb.ID)
	if err := c.runtime.CreatePod(ctx, podruntime.Spec{
		Namespace: c.cfg.Namespace,
		Name:      podName,
		Image:     c.cfg.RunnerImage,
		Labels:    map[string]string{"sibyl.run/sandbox": sb.ID, "sibyl.run/org": orgID},
	}); err != nil {
		return c.handleRuntimeFailure(ctx, sb, err)
	}

	sb.PodName = &podName
	sb.Status = sqlmodels.SandboxRunning
	if err := c.updateStatus(ctx, sb.ID, sqlmodels.SandboxRunning, &podName, nil, nil); err != nil {
		return nil, err
	}
	return sb, nil
}

// handleRuntimeFailure implements §4.7's k8s_required branch: fail hard, or
// degrade the row to status=error and continue.
func (c *Controller) handleRuntimeFailure(ctx context.Context, sb *sqlmodels.Sandbox, cause error) (*sqlmodels.Sandbox, error) {
	if c.cfg.K8sRequired {
		return nil, sibylerr.Wrap(sibylerr.Transient, "sandbox runtime unavailable", cause)
	}
	msg := cause.Error()
	if err := c.updateStatus(ctx, sb.ID, sqlmodels.SandboxError, nil, nil, &msg); err != nil {
		return nil, err
	}
	sb.Status = sqlmodels.SandboxError
	sb.LastError = &msg
	return sb, nil
}

// Resume moves a suspended sandbox back to running, recreating its pod.
func (c *Controller) Resume(ctx context.Context, id string) (*sqlmodels.Sandbox, error) {
	if err := c.checkEnabled(); err != nil {
		return nil, err
	}
	sb, err := c.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := c.updateStatus(ctx, id, sqlmodels.SandboxResuming, nil, nil, nil); err != nil {
		return nil, err
	}

	podName := c.podName(id)
	if err := c.runtime.CreatePod(ctx, podruntime.Spec{
		Namespace: c.cfg.Namespace,
		Name:      podName,
		Image:     c.cfg.RunnerImage,
		Labels:    map[string]string{"sibyl.run/sandbox": id, "sibyl.run/org": sb.OrgID},
	}); err != nil {
		return c.handleRuntimeFailure(ctx, sb, err)
	}

	if err := c.updateStatus(ctx, id, sqlmodels.SandboxRunning, &podName, nil, nil); err != nil {
		return nil, err
	}
	sb.Status = sqlmodels.SandboxRunning
	sb.PodName = &podName
	return sb, nil
}

// Suspend tears down the runtime pod but keeps the sandbox row resumable.
func (c *Controller) Suspend(ctx context.Context, id string) error {
	if err := c.checkEnabled(); err != nil {
		return err
	}
	sb, err := c.get(ctx, id)
	if err != nil {
		return err
	}
	if sb.PodName != nil {
		if err := c.runtime.DeletePod(ctx, c.cfg.Namespace, *sb.PodName); err != nil && c.cfg.K8sRequired {
			return sibylerr.Wrap(sibylerr.Transient, "suspend: delete pod failed", err)
		}
	}
	return c.updateStatus(ctx, id, sqlmodels.SandboxSuspended, nil, nil, nil)
}

// Destroy is terminal: the sandbox row never leaves status=destroyed.
func (c *Controller) Destroy(ctx context.Context, id string) error {
	if err := c.checkEnabled(); err != nil {
		return err
	}
	sb, err := c.get(ctx, id)
	if err != nil {
		return err
	}
	if sb.PodName != nil {
		if err := c.runtime.DeletePod(ctx, c.cfg.Namespace, *sb.PodName); err != nil && c.cfg.K8sRequired {
			return sibylerr.Wrap(sibylerr.Transient, "destroy: delete pod failed", err)
		}
	}
	return c.updateStatus(ctx, id, sqlmodels.SandboxDestroyed, nil, nil, nil)
}

// SyncRunnerConnection records which runner process currently owns this
// sandbox's pod connection (e.g. the job worker that attached a stream).
func (c *Controller) SyncRunnerConnection(ctx context.Context, id, runnerID string) error {
	if err := c.checkEnabled(); err != nil {
		return err
	}
	_, err := c.db.ExecContext(ctx, `UPDATE sandboxes SET runner_id = $1, updated_at = $2 WHERE id = $3`,
		runnerID, time.Now(), id)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "sync runner connection failed", err)
	}
	return nil
}

// GetLogs reads the runtime pod's tail, failing with a specific error when
// no pod has been provisioned yet (§4.7).
func (c *Controller) GetLogs(ctx context.Context, id string, tailLines int64) (string, error) {
	if err := c.checkEnabled(); err != nil {
		return "", err
	}
	sb, err := c.get(ctx, id)
	if err != nil {
		return "", err
	}
	if sb.PodName == nil {
		return "", sibylerr.Wrap(sibylerr.Permanent, "no runtime pod provisioned for sandbox", nil)
	}
	logs, err := c.runtime.GetLogs(ctx, c.cfg.Namespace, *sb.PodName, tailLines)
	if err != nil {
		if err == podruntime.ErrPodNotFound {
			return "", sibylerr.Wrap(sibylerr.NotFound, "runtime pod not found", err)
		}
		return "", sibylerr.Wrap(sibylerr.Transient, "get logs failed", err)
	}
	return logs, nil
}

// Reconcile runs one pass: enumerate active/error sandboxes, read pod
// phase, realign DB status (§4.7). Every pod in a "should-have-one" state
// (creating/resuming/running) whose pod is missing transitions to error.
func (c *Controller) Reconcile(ctx context.Context) error {
	if !c.cfg.Enabled {
		return nil
	}
	rows, err := c.db.QueryContext(ctx, `
		SELECT id, org_id, user_id, status, runner_id, pod_name, context, last_error, created_at, updated_at
		FROM sandboxes
		WHERE status IN ('creating', 'resuming', 'running', 'error')`)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "reconcile query failed", err)
	}
	sandboxes, err := scanSandboxes(rows)
	if err != nil {
		return err
	}

	for _, sb := range sandboxes {
		if err := c.reconcileOne(ctx, sb); err != nil {
			c.logger.Error("reconcile sandbox failed", "sandbox_id", sb.ID, "error", err)
		}
	}
	return nil
}

func (c *Controller) reconcileOne(ctx context.Context, sb *sqlmodels.Sandbox) error {
	shouldHavePod := sb.Status == sqlmodels.SandboxCreating || sb.Status == sqlmodels.SandboxResuming || sb.Status == sqlmodels.SandboxRunning

	if sb.PodName == nil {
		if shouldHavePod {
			msg := "sandbox has no pod_name recorded"
			return c.updateStatus(ctx, sb.ID, sqlmodels.SandboxError, nil, nil, &msg)
		}
		return nil
	}

	status, err := c.runtime.GetStatus(ctx, c.cfg.Namespace, *sb.PodName)
	if err != nil {
		if err == podruntime.ErrPodNotFound && shouldHavePod {
			msg := "runtime pod missing"
			return c.updateStatus(ctx, sb.ID, sqlmodels.SandboxError, nil, nil, &msg)
		}
		return nil
	}

	var newStatus sqlmodels.SandboxStatus
	switch status.Phase {
	case podruntime.PhaseRunning:
		newStatus = sqlmodels.SandboxRunning
	case podruntime.PhasePending:
		newStatus = sqlmodels.SandboxCreating
	case podruntime.PhaseFailed, podruntime.PhaseUnknown:
		newStatus = sqlmodels.SandboxError
	default:
		return nil
	}
	if newStatus == sb.Status {
		return nil
	}
	return c.updateStatus(ctx, sb.ID, newStatus, nil, nil, nil)
}

func (c *Controller) get(ctx context.Context, id string) (*sqlmodels.Sandbox, error) {
	row := c.db.QueryRowContext(ctx, `
		SELECT id, org_id, user_id, status, runner_id, pod_name, context, last_error, created_at, updated_at
		FROM sandboxes WHERE id = $1`, id)
	sb, err := scanSandbox(row)
	if err == sql.ErrNoRows {
		return nil, sibylerr.Wrap(sibylerr.NotFound, fmt.Sprintf("sandbox %s not found", id), nil)
	}
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "get sandbox failed", err)
	}
	return sb, nil
}

func (c *Controller) insert(ctx context.Context, sb *sqlmodels.Sandbox) error {
	ctxJSON, err := json.Marshal(sb.Context)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Permanent, "marshal sandbox context failed", err)
	}
	_, err = c.db.ExecContext(ctx, `
		INSERT INTO sandboxes (id, org_id, user_id, status, context, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)`,
		sb.ID, sb.OrgID, sb.UserID, string(sb.Status), ctxJSON, sb.CreatedAt, sb.UpdatedAt)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "insert sandbox failed", err)
	}
	return nil
}

func (c *Controller) updateStatus(ctx context.Context, id string, status sqlmodels.SandboxStatus, podName, runnerID, lastError *string) error {
	_, err := c.db.ExecContext(ctx, `
		UPDATE sandboxes SET
			status = $1,
			pod_name = COALESCE($2, pod_name),
			runner_id = COALESCE($3, runner_id),
			last_error = $4,
			updated_at = $5
		WHERE id = $6`,
		string(status), podName, runnerID, lastError, time.Now(), id)
	if err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "update sandbox status failed", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSandbox(row scanner) (*sqlmodels.Sandbox, error) {
	var sb sqlmodels.Sandbox
	var status string
	var ctxJSON []byte
	err := row.Scan(&sb.ID, &sb.OrgID, &sb.UserID, &status, &sb.RunnerID, &sb.PodName, &ctxJSON, &sb.LastError, &sb.CreatedAt, &sb.UpdatedAt)
	if err != nil {
		return nil, err
	}
	sb.Status = sqlmodels.SandboxStatus(status)
	if len(ctxJSON) > 0 {
		if err := json.Unmarshal(ctxJSON, &sb.Context); err != nil {
			return nil, fmt.Errorf("unmarshal sandbox context: %w", err)
		}
	}
	return &sb, nil
}

func scanSandboxes(rows *sql.Rows) ([]*sqlmodels.Sandbox, error) {
	defer rows.Close()
	var out []*sqlmodels.Sandbox
	for rows.Next() {
		sb, err := scanSandbox(rows)
		if err != nil {
			return nil, sibylerr.Wrap(sibylerr.Transient, "scan sandbox failed", err)
		}
		out = append(out, sb)
	}
	if err := rows.Err(); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "rows iteration failed", err)
	}
	return out, nil
}
