package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// SibylYAMLConfig represents the complete sibyl.yaml file structure.
type SibylYAMLConfig struct {
	Runtime  *RuntimeConfig                 `yaml:"runtime"`
	Budget   *BudgetDefaults                `yaml:"budget"`
	Gates    map[string]ProjectGateConfig   `yaml:"gates"`
	Sandbox  *SandboxConfig                 `yaml:"sandbox"`
	Bus      *BusConfig                     `yaml:"bus"`
	Retention *RetentionConfig              `yaml:"retention"`
	Jobs      *JobsConfig                   `yaml:"jobs"`
	LLM       *LLMConfig                    `yaml:"llm"`
}

// Initialize loads, validates, and returns ready-to-use configuration. This
// is the primary entry point for configuration loading, mirroring the
// teacher's Initialize(ctx, configDir) shape.
//
// Steps performed:
//  1. Load sibyl.yaml from configDir (tolerating its absence — every field
//     has a built-in default).
//  2. Expand environment variables.
//  3. Merge user-provided values over built-in defaults.
//  4. Validate.
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"default_budget_usd", cfg.Budget.DefaultBudgetUSD,
		"sandbox_enabled", cfg.Sandbox.Enabled,
		"bus_addr", cfg.Bus.Addr)

	return cfg, nil
}

func load(_ context.Context, configDir string) (*Config, error) {
	yamlCfg, err := loadSibylYAML(configDir)
	if err != nil {
		return nil, NewLoadError("sibyl.yaml", err)
	}

	runtime := DefaultRuntimeConfig()
	if yamlCfg.Runtime != nil {
		if err := mergo.Merge(runtime, yamlCfg.Runtime, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge runtime config: %w", err)
		}
	}

	budget := DefaultBudgetDefaults()
	if yamlCfg.Budget != nil {
		if err := mergo.Merge(budget, yamlCfg.Budget, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge budget config: %w", err)
		}
	}

	gateOverrides := make(map[string]ProjectGateConfig, len(yamlCfg.Gates))
	for k, v := range yamlCfg.Gates {
		merged := DefaultGateConfig()
		if err := mergo.Merge(&merged, v, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge gate config for %q: %w", k, err)
		}
		gateOverrides[k] = merged
	}
	gates := NewGateRegistry(gateOverrides)

	sandbox := DefaultSandboxConfig()
	if yamlCfg.Sandbox != nil {
		if err := mergo.Merge(sandbox, yamlCfg.Sandbox, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge sandbox config: %w", err)
		}
	}

	bus := DefaultBusConfig()
	if yamlCfg.Bus != nil {
		if err := mergo.Merge(bus, yamlCfg.Bus, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge bus config: %w", err)
		}
	}

	retention := DefaultRetentionConfig()
	if yamlCfg.Retention != nil {
		if err := mergo.Merge(retention, yamlCfg.Retention, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge retention config: %w", err)
		}
	}

	jobs := DefaultJobsConfig()
	if yamlCfg.Jobs != nil {
		if err := mergo.Merge(jobs, yamlCfg.Jobs, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge jobs config: %w", err)
		}
	}

	llm := DefaultLLMConfig()
	if yamlCfg.LLM != nil {
		if err := mergo.Merge(llm, yamlCfg.LLM, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("failed to merge llm config: %w", err)
		}
	}

	return &Config{
		configDir: configDir,
		Runtime:   runtime,
		Budget:    budget,
		Gates:     gates,
		Sandbox:   sandbox,
		Bus:       bus,
		Retention: retention,
		Jobs:      jobs,
		LLM:       llm,
	}, nil
}

func loadSibylYAML(configDir string) (*SibylYAMLConfig, error) {
	cfg := &SibylYAMLConfig{Gates: make(map[string]ProjectGateConfig)}

	path := filepath.Join(configDir, "sibyl.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Every field has a built-in default; an absent file is not an
			// error, matching the teacher's tolerance for an empty
			// tarsy.yaml (all registries optional).
			return cfg, nil
		}
		return nil, err
	}

	data = ExpandEnv(data)
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if cfg.Gates == nil {
		cfg.Gates = make(map[string]ProjectGateConfig)
	}
	return cfg, nil
}
