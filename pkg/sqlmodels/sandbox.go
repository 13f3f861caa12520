// Package sqlmodels holds the relational-only entities spec.md §3 calls out
// as "SQL only, not in the graph": Sandbox, SandboxTask, InterAgentMessage,
// plus the operational AgentMessage log and AgentState heartbeat mirror
// (§4.2's "operational SQL store, never the graph"). These are plain
// structs scanned by hand over database/sql, mirroring how the teacher's
// pkg/models wraps rows distinct from its ent-managed aggregates, and
// grounded in original_source's sandbox_controller.py / sandbox_dispatcher.py
// / message_bus.py, which are raw-SQL components in the Python source too.
package sqlmodels

import "time"

// SandboxStatus enumerates §3's Sandbox.status domain.
type SandboxStatus string

const (
	SandboxCreating  SandboxStatus = "creating"
	SandboxResuming  SandboxStatus = "resuming"
	SandboxRunning   SandboxStatus = "running"
	SandboxReady     SandboxStatus = "ready"
	SandboxSuspended SandboxStatus = "suspended"
	SandboxError     SandboxStatus = "error"
	SandboxDestroyed SandboxStatus = "destroyed"
)

// ActiveStatuses are the non-terminal Sandbox states the reconcile loop and
// ensure() consider live.
var ActiveStatuses = map[SandboxStatus]bool{
	SandboxCreating:  true,
	SandboxResuming:  true,
	SandboxRunning:   true,
	SandboxReady:     true,
	SandboxSuspended: true,
	SandboxError:     true,
}

// TerminalSandboxStatuses are sinks — ensure() never returns a sandbox in
// one of these states; it creates a fresh one instead.
var TerminalSandboxStatuses = map[SandboxStatus]bool{
	SandboxDestroyed: true,
}

// Sandbox is a tenant-scoped, pod-backed execution environment (§4.7, GLOSSARY).
type Sandbox struct {
	ID        string
	OrgID     string
	UserID    string
	Status    SandboxStatus
	RunnerID  *string
	PodName   *string
	Context   map[string]any
	LastError *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
