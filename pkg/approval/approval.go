// Package approval implements the Approval Queue (C5): a durable,
// recovery-safe rendezvous between an agent and a human reviewer. Grounded
// on spec.md §4.5's three-way rendezvous design note — graph record as
// authoritative status, a K/V mirror as the ground truth on the recovery
// path, pub/sub as an optimization only — and on the teacher's
// pkg/services session-status idiom for the ent writes.
package approval

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sibyl-run/sibyl/ent"
	"github.com/sibyl-run/sibyl/ent/approvalrecord"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/slackops"
)

// Notifier is the best-effort UI/Slack broadcast surface enqueue/respond
// call into. Nil-safe implementations (slackops.Service) are accepted
// directly; this narrow interface keeps pkg/approval from depending on any
// one notification backend.
type Notifier interface {
	NotifyApprovalRequested(ctx context.Context, input slackops.ApprovalRequestedInput) string
	NotifyApprovalResolved(ctx context.Context, input slackops.ApprovalResolvedInput)
}

// Queue implements the Approval Queue (C5).
type Queue struct {
	client   *ent.Client
	bus      bus.Bus
	notifier Notifier
	logger   *slog.Logger

	defaultExpiry time.Duration
	mirrorTTL     time.Duration
}

// New constructs a Queue. notifier may be nil (e.g. in tests); every call
// into it is nil-safe.
func New(client *ent.Client, b bus.Bus, notifier Notifier, defaultExpiry, mirrorTTL time.Duration) *Queue {
	return &Queue{
		client:        client,
		bus:           b,
		notifier:      notifier,
		logger:        slog.Default().With("component", "approval-queue"),
		defaultExpiry: defaultExpiry,
		mirrorTTL:     mirrorTTL,
	}
}

func pendingKey(agentID, approvalID string) string {
	return fmt.Sprintf("sibyl:pending_approvals:%s:%s", agentID, approvalID)
}

func responseKey(approvalID string) string {
	return fmt.Sprintf("sibyl:approval_response:%s", approvalID)
}

func responseChannel(approvalID string) string {
	return fmt.Sprintf("approval_response:%s", approvalID)
}

// EnqueueInput describes a new ApprovalRecord.
type EnqueueInput struct {
	OrgID        string
	ProjectID    string
	AgentID      string
	TaskID       string
	ApprovalType string // tool_use | review_phase | question | deploy
	Priority     int
	Title        string
	Summary      string
	Actions      []map[string]any
	Expiry       time.Duration // zero uses Queue.defaultExpiry
}

// responsePayload is the JSON shape stored in the response mirror and
// published on the response channel (§6.3).
type responsePayload struct {
	Approved bool   `json:"approved"`
	Message  string `json:"message"`
	By       string `json:"by"`
}

// Enqueue creates the ApprovalRecord, writes the pending mirror, broadcasts
// a best-effort UI message, and (the caller's responsibility, since the
// Agent Runner owns AgentRecord) signals status=waiting_approval.
func (q *Queue) Enqueue(ctx context.Context, in EnqueueInput) (*ent.ApprovalRecord, error) {
	if in.Expiry <= 0 {
		in.Expiry = q.defaultExpiry
	}
	expiresAt := time.Now().Add(in.Expiry)

	b := q.client.ApprovalRecord.Create().
		SetID(uuid.New().String()).
		SetOrganizationID(in.OrgID).
		SetProjectID(in.ProjectID).
		SetAgentID(in.AgentID).
		SetTitle(in.Title).
		SetSummary(in.Summary).
		SetExpiresAt(expiresAt).
		SetStatus(approvalrecord.StatusPending)
	if in.TaskID != "" {
		b = b.SetTaskID(in.TaskID)
	}
	if in.ApprovalType != "" {
		b = b.SetApprovalType(approvalrecord.ApprovalType(in.ApprovalType))
	}
	if in.Priority != 0 {
		b = b.SetPriority(in.Priority)
	}
	if len(in.Actions) > 0 {
		b = b.SetActions(in.Actions)
	}

	rec, err := b.Save(ctx)
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "create approval record failed", err)
	}

	pending := map[string]any{
		"approval_id": rec.ID,
		"agent_id":    in.AgentID,
		"expires_at":  expiresAt,
	}
	payload, _ := json.Marshal(pending)
	if err := q.bus.SetEx(ctx, pendingKey(in.AgentID, rec.ID), string(payload), int64(q.mirrorTTL.Seconds())); err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "write pending mirror failed", err)
	}

	if q.notifier != nil {
		q.notifier.NotifyApprovalRequested(ctx, slackops.ApprovalRequestedInput{
			ApprovalID:  rec.ID,
			Title:       in.Title,
			Summary:     in.Summary,
			Fingerprint: slackops.ApprovalFingerprint(in.AgentID, in.ApprovalType, in.Title),
		})
	}

	return rec, nil
}

// WaitResult is what WaitForResponse / ReattachWaiter return.
type WaitResult struct {
	Approved bool
	Message  string
	By       string
	TimedOut bool
}

// WaitForResponse blocks for up to waitSeconds for a response to
// approvalID, per spec.md §4.5: subscribe first, then check for an
// already-existing response (mirror, then graph record), then wait on the
// subscription with a deadline. On timeout, marks the record expired and
// publishes a synthetic denial.
func (q *Queue) WaitForResponse(ctx context.Context, approvalID string, wait time.Duration) (WaitResult, error) {
	sub, err := q.bus.Subscribe(ctx, responseChannel(approvalID))
	if err != nil {
		return WaitResult{}, sibylerr.Wrap(sibylerr.Transient, "subscribe to response channel failed", err)
	}
	defer sub.Close()

	if res, found, err := q.existingResponse(ctx, approvalID); err != nil {
		return WaitResult{}, err
	} else if found {
		return res, nil
	}

	deadline := time.Now().Add(wait)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return q.timeoutResponse(ctx, approvalID)
		}
		waitCtx, cancel := context.WithTimeout(ctx, remaining)
		payload, ok := sub.Receive(waitCtx)
		cancel()
		if !ok {
			if ctx.Err() != nil {
				return WaitResult{}, ctx.Err()
			}
			continue
		}
		var rp responsePayload
		if err := json.Unmarshal([]byte(payload), &rp); err != nil {
			continue
		}
		return WaitResult{Approved: rp.Approved, Message: rp.Message, By: rp.By}, nil
	}
}

// ReattachWaiter is called after a process restart to resume waiting on an
// approval whose original waiter never returned (spec.md §4.5 / P10 / S3).
// Returns (nil, nil) if no pending mirror exists for approvalID — the
// caller was never waiting on it.
func (q *Queue) ReattachWaiter(ctx context.Context, approvalID string, wait time.Duration) (*WaitResult, error) {
	// The pending mirror key is scoped by agent id (§6.3), which the caller
	// doesn't necessarily know on the recovery path — find it via
	// ScanKeys (SCAN_ITER semantics) rather than requiring it as a param.
	keys, err := q.bus.ScanKeys(ctx, fmt.Sprintf("sibyl:pending_approvals:*:%s", approvalID))
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "scan pending mirrors failed", err)
	}
	if len(keys) == 0 {
		return nil, nil
	}
	raw, found, err := q.bus.Get(ctx, keys[0])
	if err != nil {
		return nil, sibylerr.Wrap(sibylerr.Transient, "read pending mirror failed", err)
	}
	if !found {
		return nil, nil
	}

	var pending struct {
		ExpiresAt time.Time `json:"expires_at"`
	}
	_ = json.Unmarshal([]byte(raw), &pending)

	if res, found, err := q.existingResponse(ctx, approvalID); err != nil {
		return nil, err
	} else if found {
		return &res, nil
	}

	if !pending.ExpiresAt.IsZero() && time.Now().After(pending.ExpiresAt) {
		res, err := q.timeoutResponse(ctx, approvalID)
		if err != nil {
			return nil, err
		}
		return &res, nil
	}

	remaining := wait
	if !pending.ExpiresAt.IsZero() {
		untilExpiry := time.Until(pending.ExpiresAt)
		if untilExpiry < remaining {
			remaining = untilExpiry
		}
	}
	res, err := q.WaitForResponse(ctx, approvalID, remaining)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (q *Queue) existingResponse(ctx context.Context, approvalID string) (WaitResult, bool, error) {
	raw, found, err := q.bus.Get(ctx, responseKey(approvalID))
	if err != nil {
		return WaitResult{}, false, sibylerr.Wrap(sibylerr.Transient, "read response mirror failed", err)
	}
	if found {
		var rp responsePayload
		if err := json.Unmarshal([]byte(raw), &rp); err == nil {
			return WaitResult{Approved: rp.Approved, Message: rp.Message, By: rp.By}, true, nil
		}
	}

	rec, err := q.client.ApprovalRecord.Get(ctx, approvalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return WaitResult{}, false, nil
		}
		return WaitResult{}, false, sibylerr.Wrap(sibylerr.Transient, "get approval record failed", err)
	}
	switch rec.Status {
	case approvalrecord.StatusApproved:
		return WaitResult{Approved: true, Message: valueOrEmpty(rec.ResponseMessage), By: valueOrEmpty(rec.ResponseBy)}, true, nil
	case approvalrecord.StatusDenied:
		return WaitResult{Approved: false, Message: valueOrEmpty(rec.ResponseMessage), By: valueOrEmpty(rec.ResponseBy)}, true, nil
	case approvalrecord.StatusExpired:
		return WaitResult{Approved: false, Message: "Approval request timed out", By: "system", TimedOut: true}, true, nil
	default:
		return WaitResult{}, false, nil
	}
}

// timeoutResponse marks approvalID expired and publishes the synthetic
// denial spec.md §7 requires verbatim: {by:"system",
// message:"Approval request timed out"}, identical whether the timeout was
// local (B1) or discovered on the recovery path.
func (q *Queue) timeoutResponse(ctx context.Context, approvalID string) (WaitResult, error) {
	rec, err := q.client.ApprovalRecord.Get(ctx, approvalID)
	if err != nil {
		return WaitResult{}, sibylerr.Wrap(sibylerr.Transient, "get approval record failed", err)
	}
	// P3: monotonic lifecycle — a record already terminal is left alone.
	if rec.Status == approvalrecord.StatusPending {
		now := time.Now()
		if err := q.client.ApprovalRecord.UpdateOneID(approvalID).
			SetStatus(approvalrecord.StatusExpired).
			SetRespondedAt(now).
			SetResponseBy("system").
			SetResponseMessage("Approval request timed out").
			Exec(ctx); err != nil {
			return WaitResult{}, sibylerr.Wrap(sibylerr.Transient, "mark approval expired failed", err)
		}
	}

	result := WaitResult{Approved: false, Message: "Approval request timed out", By: "system", TimedOut: true}
	q.publishResponse(ctx, approvalID, result)
	_ = q.bus.Del(ctx, pendingKey(rec.AgentID, approvalID))

	if q.notifier != nil {
		q.notifier.NotifyApprovalResolved(ctx, slackops.ApprovalResolvedInput{
			ApprovalID: approvalID, Status: "expired", ResponseMessage: result.Message, ResponseBy: result.By,
		})
	}
	return result, nil
}

// Respond records a human decision: updates the graph record, writes the
// response mirror (before publishing, per spec.md §5's ordering guarantee),
// publishes the response event, and clears the pending mirror.
func (q *Queue) Respond(ctx context.Context, approvalID string, approved bool, message, by string) error {
	rec, err := q.client.ApprovalRecord.Get(ctx, approvalID)
	if err != nil {
		if ent.IsNotFound(err) {
			return sibylerr.Wrap(sibylerr.NotFound, "approval record not found", err)
		}
		return sibylerr.Wrap(sibylerr.Transient, "get approval record failed", err)
	}
	if rec.Status != approvalrecord.StatusPending {
		return sibylerr.Wrap(sibylerr.Conflict, fmt.Sprintf("approval %s is already %s", approvalID, rec.Status), nil)
	}

	status := approvalrecord.StatusDenied
	if approved {
		status = approvalrecord.StatusApproved
	}
	now := time.Now()
	if err := q.client.ApprovalRecord.UpdateOneID(approvalID).
		SetStatus(status).
		SetRespondedAt(now).
		SetResponseBy(by).
		SetResponseMessage(message).
		Exec(ctx); err != nil {
		return sibylerr.Wrap(sibylerr.Transient, "update approval record failed", err)
	}

	result := WaitResult{Approved: approved, Message: message, By: by}
	q.publishResponse(ctx, approvalID, result)
	_ = q.bus.Del(ctx, pendingKey(rec.AgentID, approvalID))

	if q.notifier != nil {
		statusStr := "denied"
		if approved {
			statusStr = "approved"
		}
		q.notifier.NotifyApprovalResolved(ctx, slackops.ApprovalResolvedInput{
			ApprovalID: approvalID, Status: statusStr, ResponseMessage: message, ResponseBy: by,
		})
	}
	return nil
}

// publishResponse writes the response mirror then publishes — two-phase
// broadcast per SPEC_FULL.md's design notes: the mirror is ground truth,
// the channel only an optimization a crashed-and-restarted waiter never
// needs.
func (q *Queue) publishResponse(ctx context.Context, approvalID string, result WaitResult) {
	payload, err := json.Marshal(responsePayload{Approved: result.Approved, Message: result.Message, By: result.By})
	if err != nil {
		return
	}
	if err := q.bus.SetEx(ctx, responseKey(approvalID), string(payload), int64(q.mirrorTTL.Seconds())); err != nil {
		q.logger.Error("failed to write response mirror", "approval_id", approvalID, "error", err)
		return
	}
	if err := q.bus.Publish(ctx, responseChannel(approvalID), string(payload)); err != nil {
		q.logger.Warn("failed to publish response event", "approval_id", approvalID, "error", err)
	}
}

// ExpireStale scans pending ApprovalRecords whose expires_at has elapsed
// and expires each one (the periodic sweep referenced by spec.md §4.5 and
// config.RetentionConfig.ApprovalSweepInterval).
func (q *Queue) ExpireStale(ctx context.Context) (int, error) {
	stale, err := q.client.ApprovalRecord.Query().
		Where(approvalrecord.StatusEQ(approvalrecord.StatusPending), approvalrecord.ExpiresAtLT(time.Now())).
		All(ctx)
	if err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "query stale approvals failed", err)
	}
	count := 0
	for _, rec := range stale {
		if _, err := q.timeoutResponse(ctx, rec.ID); err != nil {
			q.logger.Error("failed to expire stale approval", "approval_id", rec.ID, "error", err)
			continue
		}
		count++
	}
	return count, nil
}

// CancelAll denies every pending approval for an org (tenant rollback /
// teardown helper named in spec.md §4.5).
func (q *Queue) CancelAll(ctx context.Context, orgID, reason string) (int, error) {
	pending, err := q.client.ApprovalRecord.Query().
		Where(approvalrecord.OrganizationID(orgID), approvalrecord.StatusEQ(approvalrecord.StatusPending)).
		All(ctx)
	if err != nil {
		return 0, sibylerr.Wrap(sibylerr.Transient, "query pending approvals failed", err)
	}
	for _, rec := range pending {
		if err := q.Respond(ctx, rec.ID, false, reason, "system"); err != nil {
			q.logger.Error("failed to cancel approval", "approval_id", rec.ID, "error", err)
		}
	}
	return len(pending), nil
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
