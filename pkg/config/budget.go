package config

// BudgetDefaults seeds a new MetaOrchestratorRecord when a project does not
// specify its own budget via set_budget (§4.4).
type BudgetDefaults struct {
	// DefaultBudgetUSD is applied when a project's MetaOrchestrator is
	// created without an explicit budget.
	DefaultBudgetUSD float64 `yaml:"default_budget_usd"`

	// CostAlertThreshold is the fraction of budget_usd at which an alert is
	// emitted (§4.4 default 0.8).
	CostAlertThreshold float64 `yaml:"cost_alert_threshold"`

	// DefaultMaxConcurrent is the max_concurrent seeded for the PARALLEL
	// strategy when unset.
	DefaultMaxConcurrent int `yaml:"default_max_concurrent"`
}

// DefaultBudgetDefaults returns the built-in budget defaults.
func DefaultBudgetDefaults() *BudgetDefaults {
	return &BudgetDefaults{
		DefaultBudgetUSD:     50.0,
		CostAlertThreshold:   0.8,
		DefaultMaxConcurrent: 3,
	}
}
