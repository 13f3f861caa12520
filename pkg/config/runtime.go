package config

import "time"

// RuntimeConfig names every suspension-point timing constant spec.md §5
// calls out. Every interval below is overridable via sibyl.yaml; the zero
// value is never used directly — DefaultRuntimeConfig seeds sane defaults
// before YAML overrides are merged in.
type RuntimeConfig struct {
	// HeartbeatInterval is how often the Agent Runner writes
	// last_heartbeat/tokens_used/cost_usd to the operational store (§4.2).
	HeartbeatInterval time.Duration `yaml:"heartbeat_interval"`

	// HeartbeatStaleThreshold is the age beyond which a background health
	// loop marks an agent failed and checkpoints it (§5).
	HeartbeatStaleThreshold time.Duration `yaml:"heartbeat_stale_threshold"`

	// HealthLoopInterval is how often the API process's health loop scans
	// for stale heartbeats (§5: "every 60s in the API process").
	HealthLoopInterval time.Duration `yaml:"health_loop_interval"`

	// StopPollInterval is how often the Agent Runner's stop watcher polls
	// agent:stop:<agent_id> (§4.2).
	StopPollInterval time.Duration `yaml:"stop_poll_interval"`

	// MessageBusPollInterval is the Message Bus query() polling cadence
	// (§4.6).
	MessageBusPollInterval time.Duration `yaml:"message_bus_poll_interval"`

	// ReconcileInterval is the Sandbox Controller's default reconcile loop
	// period (§4.7); overridable per-org via the settings service.
	ReconcileInterval time.Duration `yaml:"reconcile_interval"`

	// DispatchTTL and AckTTL are the Dispatcher reaper's two lease
	// timeouts (§4.7 / B4): dispatched-but-not-acked is short,
	// acked-but-not-completed is long.
	DispatchTTL time.Duration `yaml:"dispatch_ttl"`
	AckTTL      time.Duration `yaml:"ack_ttl"`

	// ApprovalDefaultWait is wait_for_response's default deadline (§4.5).
	ApprovalDefaultWait time.Duration `yaml:"approval_default_wait"`

	// ApprovalDefaultExpiry is enqueue's default expiry (§4.5).
	ApprovalDefaultExpiry time.Duration `yaml:"approval_default_expiry"`

	// ApprovalMirrorTTL is the TTL on the pending/response bus mirrors
	// (§4.5: 48h).
	ApprovalMirrorTTL time.Duration `yaml:"approval_mirror_ttl"`

	// GateTimeout bounds every quality-gate command (§4.3: 300s).
	GateTimeout time.Duration `yaml:"gate_timeout"`
}

// DefaultRuntimeConfig returns the built-in timing defaults named in
// spec.md.
func DefaultRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		HeartbeatInterval:       30 * time.Second,
		HeartbeatStaleThreshold: 120 * time.Second,
		HealthLoopInterval:      60 * time.Second,
		StopPollInterval:        200 * time.Millisecond,
		MessageBusPollInterval:  500 * time.Millisecond,
		ReconcileInterval:       20 * time.Second,
		DispatchTTL:             300 * time.Second,
		AckTTL:                  1800 * time.Second,
		ApprovalDefaultWait:     300 * time.Second,
		ApprovalDefaultExpiry:   24 * time.Hour,
		ApprovalMirrorTTL:       48 * time.Hour,
		GateTimeout:             300 * time.Second,
	}
}
