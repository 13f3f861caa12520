package config

// LLMConfig drives the best-effort anthropic-sdk-go integrations named in
// spec.md §2: tag enrichment, the AI_REVIEW gate, and status-hint
// decoration. None of these sit on the critical path — Enabled=false (or a
// missing API key) makes every pkg/llmclient call a clean no-op rather than
// an error, per §7's "best-effort paths... never fail their caller".
type LLMConfig struct {
	// Enabled feature-gates the Anthropic client construction entirely.
	Enabled bool `yaml:"enabled"`

	// APIKeyEnv names the environment variable holding the API key (never
	// the key itself, to keep secrets out of sibyl.yaml).
	APIKeyEnv string `yaml:"api_key_env"`

	// Model is the model id used for tag derivation, AI review, and status
	// hints alike — this integration has no latency-sensitive path that
	// would justify a cheaper/faster model split.
	Model string `yaml:"model"`

	// MaxTokens bounds a single completion.
	MaxTokens int64 `yaml:"max_tokens"`
}

// DefaultLLMConfig returns the built-in LLM integration defaults: disabled
// until an operator opts in with a real API key.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		Enabled:   false,
		APIKeyEnv: "ANTHROPIC_API_KEY",
		Model:     "claude-sonnet-4-5-20250929",
		MaxTokens: 1024,
	}
}
