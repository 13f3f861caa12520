package config

import "time"

// SandboxConfig drives the Sandbox Plane's feature gating and reconcile
// cadence (§4.7).
type SandboxConfig struct {
	// Enabled feature-gates every mutating Controller/Dispatcher operation;
	// when false, ensure/create/resume/suspend/destroy/enqueue all fail
	// cleanly with sibylerr.Permanent.
	Enabled bool `yaml:"enabled"`

	// K8sRequired controls behavior when the pod runtime is unreachable: if
	// true, operations fail hard; if false, they write
	// status=error,last_error=<> and continue (§4.7).
	K8sRequired bool `yaml:"k8s_required"`

	// ReconcileIntervalSeconds overrides RuntimeConfig.ReconcileInterval
	// for the Sandbox Controller specifically, when non-zero.
	ReconcileIntervalSeconds int `yaml:"reconcile_interval_seconds"`

	// RunnerImage is the container image used in the pod manifest (§6.4).
	RunnerImage string `yaml:"runner_image"`

	// Namespace is the k8s namespace sandboxes are created in.
	Namespace string `yaml:"namespace"`

	// DefaultMaxAttempts seeds SandboxTask.max_attempts when the caller
	// doesn't specify one (§4.7 default 3).
	DefaultMaxAttempts int `yaml:"default_max_attempts"`
}

// ReconcileInterval resolves the effective reconcile interval, falling back
// to rc.ReconcileInterval when unset.
func (s *SandboxConfig) ReconcileInterval(rc *RuntimeConfig) time.Duration {
	if s.ReconcileIntervalSeconds > 0 {
		return time.Duration(s.ReconcileIntervalSeconds) * time.Second
	}
	return rc.ReconcileInterval
}

// DefaultSandboxConfig returns the built-in sandbox defaults: disabled by
// default (feature-gated per §4.7) and not requiring k8s until an operator
// opts in.
func DefaultSandboxConfig() *SandboxConfig {
	return &SandboxConfig{
		Enabled:            false,
		K8sRequired:        false,
		RunnerImage:        "ghcr.io/sibyl-run/sandbox-runner:latest",
		Namespace:          "sibyl-sandboxes",
		DefaultMaxAttempts: 3,
	}
}
