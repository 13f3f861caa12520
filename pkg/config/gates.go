package config

import "time"

// GateKind enumerates the quality gates a Task Orchestrator can run (§4.3).
type GateKind string

const (
	GateLint        GateKind = "LINT"
	GateTypecheck   GateKind = "TYPECHECK"
	GateTest        GateKind = "TEST"
	GateSecurity    GateKind = "SECURITY"
	GateAIReview    GateKind = "AI_REVIEW"
	GateHumanReview GateKind = "HUMAN_REVIEW"
)

// IsValid reports whether k is one of the six gate kinds spec.md names.
func (k GateKind) IsValid() bool {
	switch k {
	case GateLint, GateTypecheck, GateTest, GateSecurity, GateAIReview, GateHumanReview:
		return true
	default:
		return false
	}
}

// ProjectGateConfig is the resolved gate configuration for one project:
// which gates run, in what order, and under what timeout.
type ProjectGateConfig struct {
	Gates          []GateKind    `yaml:"gates"`
	CommandTimeout time.Duration `yaml:"command_timeout"`
	MaxRework      int           `yaml:"max_rework"`
}

// DefaultGateConfig is spec.md §4.3's default: LINT, TYPECHECK, TEST,
// AI_REVIEW, with a 300s command timeout and 3 rework attempts.
func DefaultGateConfig() ProjectGateConfig {
	return ProjectGateConfig{
		Gates:          []GateKind{GateLint, GateTypecheck, GateTest, GateAIReview},
		CommandTimeout: 300 * time.Second,
		MaxRework:      3,
	}
}

// GateRegistry holds per-project gate overrides layered over a single
// built-in default, mirroring the teacher's registry pattern (Get-by-key
// over a map, falling back to a built-in) minus the agent/chain/MCP domain.
type GateRegistry struct {
	defaultConfig ProjectGateConfig
	overrides     map[string]ProjectGateConfig
}

// NewGateRegistry builds a registry from per-project overrides loaded from
// YAML, layered over the built-in default.
func NewGateRegistry(overrides map[string]ProjectGateConfig) *GateRegistry {
	if overrides == nil {
		overrides = map[string]ProjectGateConfig{}
	}
	return &GateRegistry{defaultConfig: DefaultGateConfig(), overrides: overrides}
}

// For returns the gate configuration for projectID, or the built-in default
// if the project has no override.
func (r *GateRegistry) For(projectID string) ProjectGateConfig {
	if cfg, ok := r.overrides[projectID]; ok {
		return cfg
	}
	return r.defaultConfig
}

// Set installs (or replaces) a project's gate override — used by the
// settings service (SPEC_FULL.md §3) for runtime-tunable gate config
// without a redeploy.
func (r *GateRegistry) Set(projectID string, cfg ProjectGateConfig) {
	r.overrides[projectID] = cfg
}
