package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDefaultsWithoutYAML(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 50.0, cfg.Budget.DefaultBudgetUSD)
	assert.Equal(t, 0.8, cfg.Budget.CostAlertThreshold)
	assert.Equal(t, 30*time.Second, cfg.Runtime.HeartbeatInterval)
	assert.False(t, cfg.Sandbox.Enabled)
	assert.Equal(t, "localhost:6379", cfg.Bus.Addr)

	def := cfg.GateConfigFor("unknown-project")
	assert.Equal(t, []GateKind{GateLint, GateTypecheck, GateTest, GateAIReview}, def.Gates)
	assert.Equal(t, 3, def.MaxRework)
}

func TestInitializeMergesYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `
budget:
  default_budget_usd: 100
sandbox:
  enabled: true
  k8s_required: true
gates:
  proj-1:
    gates: ["LINT", "TEST"]
    max_rework: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sibyl.yaml"), []byte(yaml), 0o644))

	cfg, err := Initialize(context.Background(), dir)
	require.NoError(t, err)

	assert.Equal(t, 100.0, cfg.Budget.DefaultBudgetUSD)
	assert.True(t, cfg.Sandbox.Enabled)
	assert.True(t, cfg.Sandbox.K8sRequired)

	override := cfg.GateConfigFor("proj-1")
	assert.Equal(t, []GateKind{GateLint, GateTest}, override.Gates)
	assert.Equal(t, 1, override.MaxRework)

	// Untouched projects still see the built-in default.
	assert.Equal(t, DefaultGateConfig().Gates, cfg.GateConfigFor("proj-2").Gates)
}

func TestInitializeRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	yaml := `
budget:
  cost_alert_threshold: 2.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sibyl.yaml"), []byte(yaml), 0o644))

	_, err := Initialize(context.Background(), dir)
	require.Error(t, err)
}

func TestGateRegistrySetOverride(t *testing.T) {
	r := NewGateRegistry(nil)
	r.Set("proj-x", ProjectGateConfig{Gates: []GateKind{GateSecurity}, MaxRework: 5})

	cfg := r.For("proj-x")
	assert.Equal(t, []GateKind{GateSecurity}, cfg.Gates)
	assert.Equal(t, 5, cfg.MaxRework)

	// Other projects remain on the default.
	assert.Equal(t, DefaultGateConfig().Gates, r.For("proj-y").Gates)
}
