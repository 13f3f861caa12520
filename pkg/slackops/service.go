package slackops

import (
	"context"
	"log/slog"
	"time"
)

// ServiceConfig holds the parameters needed to construct a Service.
type ServiceConfig struct {
	Token        string
	Channel      string
	DashboardURL string
}

// ApprovalRequestedInput contains data for a newly enqueued ApprovalRecord
// notification (§4.5 enqueue).
type ApprovalRequestedInput struct {
	ApprovalID  string
	Title       string
	Summary     string
	Fingerprint string
}

// ApprovalResolvedInput contains data for an approval's terminal outcome
// (approved, denied, or expired).
type ApprovalResolvedInput struct {
	ApprovalID      string
	Status          string // approved, denied, expired
	ResponseMessage string
	ResponseBy      string
	ThreadTS        string // cached from the request notification
}

// EscalationInput contains data for a Ralph Loop escalation (§4.3: rework
// limit reached, a QUESTION ApprovalRecord was created tagged with the
// failed gate names).
type EscalationInput struct {
	ApprovalID  string
	TaskID      string
	ReworkCount int
	MaxRework   int
	FailedGates []string
}

// Service handles Slack notification delivery for the Approval Queue (C5)
// and Task Orchestrator (C3) escalations.
// Nil-safe: all methods are no-ops when service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg ServiceConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.Token, cfg.Channel),
		dashboardURL: cfg.DashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "slack-service"),
	}
}

// NotifyApprovalRequested sends a "needs a decision" notification for a
// newly enqueued ApprovalRecord. Only searches for an existing thread when
// a fingerprint is present. Returns the resolved threadTS for reuse by the
// resolution notification.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyApprovalRequested(ctx context.Context, input ApprovalRequestedInput) string {
	if s == nil {
		return ""
	}

	var threadTS string
	if input.Fingerprint != "" {
		var err error
		threadTS, err = s.client.FindMessageByFingerprint(ctx, input.Fingerprint)
		if err != nil {
			s.logger.Warn("Failed to find Slack thread for fingerprint",
				"approval_id", input.ApprovalID,
				"fingerprint", input.Fingerprint,
				"error", err)
		}
	}

	blocks := BuildApprovalRequestMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, threadTS, 5*time.Second); err != nil {
		s.logger.Error("Failed to send Slack approval-requested notification",
			"approval_id", input.ApprovalID,
			"error", err)
	}

	return threadTS
}

// NotifyApprovalResolved sends a terminal-status notification for an
// ApprovalRecord (approved, denied, or expired).
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyApprovalResolved(ctx context.Context, input ApprovalResolvedInput) {
	if s == nil {
		return
	}

	blocks := BuildApprovalResolvedMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, input.ThreadTS, 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack approval-resolved notification",
			"approval_id", input.ApprovalID,
			"status", input.Status,
			"error", err)
	}
}

// NotifyEscalation sends an escalation notification when a task has
// exhausted its rework budget and been routed to HUMAN_REVIEW.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyEscalation(ctx context.Context, input EscalationInput) {
	if s == nil {
		return
	}

	blocks := BuildEscalationMessage(input, s.dashboardURL)
	if err := s.client.PostMessage(ctx, blocks, "", 10*time.Second); err != nil {
		s.logger.Error("Failed to send Slack escalation notification",
			"approval_id", input.ApprovalID,
			"task_id", input.TaskID,
			"error", err)
	}
}
