package config

import "fmt"

// validate performs the same shape of validation pass the teacher's
// validator.go runs, scoped to Sibyl's much smaller configuration surface:
// numeric sanity on budget/runtime/sandbox settings.
func validate(cfg *Config) error {
	if cfg.Budget.DefaultBudgetUSD < 0 {
		return NewValidationError("budget", "default_budget_usd", fmt.Errorf("must be >= 0"))
	}
	if cfg.Budget.CostAlertThreshold <= 0 || cfg.Budget.CostAlertThreshold > 1 {
		return NewValidationError("budget", "cost_alert_threshold", fmt.Errorf("must be in (0, 1]"))
	}
	if cfg.Budget.DefaultMaxConcurrent < 1 {
		return NewValidationError("budget", "default_max_concurrent", fmt.Errorf("must be >= 1"))
	}
	if cfg.Runtime.HeartbeatInterval <= 0 {
		return NewValidationError("runtime", "heartbeat_interval", fmt.Errorf("must be > 0"))
	}
	if cfg.Runtime.HeartbeatStaleThreshold <= cfg.Runtime.HeartbeatInterval {
		return NewValidationError("runtime", "heartbeat_stale_threshold", fmt.Errorf("must exceed heartbeat_interval"))
	}
	if cfg.Runtime.DispatchTTL <= 0 || cfg.Runtime.AckTTL <= 0 {
		return NewValidationError("runtime", "dispatch_ttl/ack_ttl", fmt.Errorf("must be > 0"))
	}
	if cfg.Runtime.AckTTL <= cfg.Runtime.DispatchTTL {
		return NewValidationError("runtime", "ack_ttl", fmt.Errorf("must exceed dispatch_ttl (B4)"))
	}
	def := cfg.Gates.For("")
	if len(def.Gates) == 0 {
		return NewValidationError("gates", "gates", fmt.Errorf("default gate list must not be empty"))
	}
	for _, g := range def.Gates {
		if !g.IsValid() {
			return NewValidationError("gates", "gates", fmt.Errorf("unknown gate kind %q", g))
		}
	}
	if def.MaxRework < 1 {
		return NewValidationError("gates", "max_rework", fmt.Errorf("must be >= 1"))
	}
	if cfg.Sandbox.Enabled && cfg.Sandbox.RunnerImage == "" {
		return NewValidationError("sandbox", "runner_image", fmt.Errorf("required when sandbox is enabled"))
	}
	if cfg.Bus.Addr == "" {
		return NewValidationError("bus", "addr", fmt.Errorf("required"))
	}
	if cfg.LLM.Enabled && cfg.LLM.APIKeyEnv == "" {
		return NewValidationError("llm", "api_key_env", fmt.Errorf("required when llm is enabled"))
	}
	if cfg.LLM.MaxTokens <= 0 {
		return NewValidationError("llm", "max_tokens", fmt.Errorf("must be > 0"))
	}
	return nil
}
