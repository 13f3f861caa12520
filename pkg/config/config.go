// Package config loads and validates the Sibyl runtime's configuration:
// per-project gate defaults, budget defaults, sandbox feature gating, the
// K/V bus address, and the timing constants named throughout spec.md §5
// (heartbeat interval, stop-signal poll interval, message-bus poll
// interval, reconcile interval). It follows the same load/merge/validate
// shape as the teacher's pkg/config, adapted from a multi-registry
// (agents/chains/MCP servers/LLM providers) config to Sibyl's orchestration
// concerns.
package config

// Config is the umbrella configuration object returned by Initialize and
// threaded through every long-lived component (Job Runtime, Sandbox Plane,
// Meta/Task Orchestrators).
type Config struct {
	configDir string

	// Runtime holds the suspension-point timing constants spec.md §5 names.
	Runtime *RuntimeConfig

	// Budget holds system-wide budget defaults applied when a project does
	// not set its own MetaOrchestratorRecord.budget_usd.
	Budget *BudgetDefaults

	// Gates is the per-project default gate list + timeouts registry.
	Gates *GateRegistry

	// Sandbox holds the Sandbox Plane's feature gate, k8s requirement, and
	// reconcile interval.
	Sandbox *SandboxConfig

	// Bus holds the K/V + pub/sub bus connection settings.
	Bus *BusConfig

	// Retention holds backup archive retention settings.
	Retention *RetentionConfig

	// Jobs holds the Job Runtime's worker pool sizing.
	Jobs *JobsConfig

	// LLM holds the best-effort anthropic-sdk-go integration settings (tag
	// enrichment, AI_REVIEW gate, status hints).
	LLM *LLMConfig
}

// ConfigDir returns the configuration directory path the config was loaded
// from.
func (c *Config) ConfigDir() string {
	return c.configDir
}

// GateConfigFor returns the gate configuration for a project, falling back
// to the registry default when the project has no override.
func (c *Config) GateConfigFor(projectID string) ProjectGateConfig {
	return c.Gates.For(projectID)
}
