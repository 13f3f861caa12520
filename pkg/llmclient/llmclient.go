// Package llmclient wraps anthropic-sdk-go for the three best-effort,
// never-critical-path integrations spec.md §2 names: tag enrichment (the
// Agent Runner's TagDeriver, §4.2 step 3), the AI_REVIEW quality gate (the
// Task Orchestrator's AIReviewer, §4.3), and status-hint decoration (the Job
// Runtime's generate_status_hint, §4.8). No file in the retrieval pack
// actually calls the Anthropic SDK from Go (every repo that lists it in
// go.mod never imports it from a .go file), so this package is hand-written
// against the SDK's own published client/option/MessageNewParams
// conventions rather than adapted from an in-pack example — noted in
// DESIGN.md.
package llmclient

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/taskorch/gates"
)

// Client is the best-effort Anthropic wrapper. A Client constructed with
// Enabled=false (or a missing API key) is a valid, inert value — every
// method degrades to its documented fallback rather than erroring, per
// spec.md §7's "best-effort paths... never fail their caller".
type Client struct {
	client    *anthropic.Client
	model     anthropic.Model
	maxTokens int64
	enabled   bool
	logger    *slog.Logger
}

// New constructs a Client from LLMConfig. Returns a disabled Client (every
// call falls back) if cfg.Enabled is false or the configured environment
// variable holds no API key.
func New(cfg *config.LLMConfig) *Client {
	logger := slog.Default().With("component", "llmclient")
	if cfg == nil || !cfg.Enabled {
		return &Client{enabled: false, logger: logger}
	}
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		logger.Warn("llm enabled but api key env var is empty, disabling", "env", cfg.APIKeyEnv)
		return &Client{enabled: false, logger: logger}
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Client{
		client:    &c,
		model:     anthropic.Model(cfg.Model),
		maxTokens: cfg.MaxTokens,
		enabled:   true,
		logger:    logger,
	}
}

// complete runs one single-turn completion and returns the concatenated
// text blocks. Every caller treats a non-nil error as "fall back", never as
// a propagated failure.
func (c *Client) complete(ctx context.Context, system, prompt string) (string, error) {
	if !c.enabled {
		return "", fmt.Errorf("llm client disabled")
	}
	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic completion failed: %w", err)
	}
	var sb strings.Builder
	for _, block := range msg.Content {
		if text := block.Text; text != "" {
			sb.WriteString(text)
		}
	}
	return sb.String(), nil
}

// DeriveTags implements agentrunner.TagDeriver: best-effort derivation of up
// to 8 short tags from the agent's type and task context (§4.2 step 3).
func (c *Client) DeriveTags(ctx context.Context, agentType, taskContext string) ([]string, error) {
	if !c.enabled {
		return nil, fmt.Errorf("llm client disabled")
	}
	system := "You label coding-agent tasks with short lowercase tags. " +
		"Reply with nothing but a JSON array of up to 8 short (1-3 word) tags."
	prompt := fmt.Sprintf("agent type: %s\ntask:\n%s", agentType, taskContext)

	out, err := c.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}
	var tags []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &tags); err != nil {
		return nil, fmt.Errorf("parse tag derivation output: %w", err)
	}
	if len(tags) > 8 {
		tags = tags[:8]
	}
	return tags, nil
}

// reviewVerdict is the strict JSON shape Review asks the model to reply
// with, so the AI_REVIEW gate can parse a pass/fail verdict the same way
// the other gates return config.GateAIReview results.
type reviewVerdict struct {
	Passed   bool     `json:"passed"`
	Summary  string   `json:"summary"`
	Findings []string `json:"findings"`
}

// Review implements taskorch.AIReviewer: spends one completion asking the
// model to review a worktree's current diff-adjacent state and returns a
// gates.Result shaped like every other quality gate (§4.3: "AI_REVIEW ...
// handled by the orchestrator ... via a separately-spawned reviewer agent —
// placeholder-safe"). A disabled client always passes, matching the nil-
// AIReviewer fallback in pkg/taskorch.
func (c *Client) Review(ctx context.Context, orgID, taskID, worktreePath string) (gates.Result, error) {
	start := time.Now()
	if !c.enabled {
		return gates.Result{
			Gate:   config.GateAIReview,
			Passed: true,
			Output: "AI review disabled; treated as pass",
		}, nil
	}

	system := "You are a terse senior code reviewer for an autonomous coding agent. " +
		"Reply with nothing but JSON: {\"passed\": bool, \"summary\": string, \"findings\": [string]}. " +
		"Fail only on correctness bugs, not style."
	prompt := fmt.Sprintf("org: %s\ntask: %s\nworktree: %s\n"+
		"Review the changes currently checked out in this worktree.", orgID, taskID, worktreePath)

	out, err := c.complete(ctx, system, prompt)
	duration := time.Since(start).Milliseconds()
	if err != nil {
		c.logger.Warn("ai review completion failed, treating as pass", "task_id", taskID, "error", err)
		return gates.Result{
			Gate:       config.GateAIReview,
			Passed:     true,
			Output:     "AI review call failed; treated as pass (best-effort, never critical path)",
			DurationMs: duration,
		}, nil
	}

	var verdict reviewVerdict
	if err := json.Unmarshal([]byte(strings.TrimSpace(out)), &verdict); err != nil {
		c.logger.Warn("ai review output unparseable, treating as pass", "task_id", taskID, "error", err)
		return gates.Result{
			Gate:       config.GateAIReview,
			Passed:     true,
			Output:     out,
			DurationMs: duration,
		}, nil
	}

	return gates.Result{
		Gate:       config.GateAIReview,
		Passed:     verdict.Passed,
		Output:     verdict.Summary,
		Errors:     verdict.Findings,
		DurationMs: duration,
	}, nil
}

// GenerateStatusHint implements the Job Runtime's generate_status_hint job
// (§4.8): a short, decorative, never-critical-path status line. Any failure
// is logged and an empty string returned, never raised (§7).
func (c *Client) GenerateStatusHint(ctx context.Context, agentType, lastAction string) string {
	if !c.enabled {
		return ""
	}
	system := "Reply with a single short (<12 words) present-tense status phrase for a UI, no punctuation at the end."
	prompt := fmt.Sprintf("agent type: %s\nlast action: %s", agentType, lastAction)
	out, err := c.complete(ctx, system, prompt)
	if err != nil {
		c.logger.Debug("status hint generation failed", "error", err)
		return ""
	}
	return strings.TrimSpace(out)
}
