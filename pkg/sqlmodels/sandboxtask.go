package sqlmodels

import "time"

// SandboxTaskStatus enumerates §3's SandboxTask.status domain and §4.7's
// dispatcher state machine.
type SandboxTaskStatus string

const (
	SandboxTaskQueued     SandboxTaskStatus = "queued"
	SandboxTaskRetry      SandboxTaskStatus = "retry"
	SandboxTaskDispatched SandboxTaskStatus = "dispatched"
	SandboxTaskAcked      SandboxTaskStatus = "acked"
	SandboxTaskCompleted  SandboxTaskStatus = "completed"
	SandboxTaskFailed     SandboxTaskStatus = "failed"
	SandboxTaskCanceled   SandboxTaskStatus = "canceled"
)

// PendingStatuses are the statuses dispatch_pending_for_sandbox selects
// from, ordered created_at asc under SELECT ... FOR UPDATE SKIP LOCKED.
var PendingStatuses = map[SandboxTaskStatus]bool{
	SandboxTaskQueued: true,
	SandboxTaskRetry:  true,
}

// TerminalSandboxTaskStatuses are one-shot sinks per invariant #8 / P7:
// completed|failed|canceled never revert.
var TerminalSandboxTaskStatuses = map[SandboxTaskStatus]bool{
	SandboxTaskCompleted: true,
	SandboxTaskFailed:    true,
	SandboxTaskCanceled:  true,
}

// SandboxTask is a unit of dispatcher-queued work against a Sandbox.
type SandboxTask struct {
	ID              string
	OrgID           string
	SandboxID       string
	TaskType        string
	Status          SandboxTaskStatus
	Payload         map[string]any
	AttemptCount    int
	MaxAttempts     int
	IdempotencyKey  *string
	RunnerID        *string
	LastDispatchAt  *time.Time
	AckedAt         *time.Time
	CompletedAt     *time.Time
	FailedAt        *time.Time
	Result          map[string]any
	ErrorMessage    *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
