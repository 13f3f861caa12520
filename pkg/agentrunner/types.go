package agentrunner

import (
	"context"
	"sync"
	"time"
)

// MessageType enumerates the typed agent-subprocess message kinds of
// spec.md §6.5.
type MessageType string

const (
	MessageUser        MessageType = "user"
	MessageAssistant    MessageType = "assistant"
	MessageToolUse      MessageType = "tool_use"
	MessageToolResult   MessageType = "tool_result"
	MessageResult       MessageType = "result"
	MessageStreamEvent  MessageType = "stream_event"
)

// Message is one item of the lazy, ordered stream a subprocess produces.
// The stream is finite and always ends with a MessageResult message, but
// may be cancelled externally before that (§4.2).
type Message struct {
	Type MessageType
	// Content carries UserMessage/AssistantMessage text, or a rendering of
	// a tool_use/tool_result block.
	Content string
	Model   string

	// ToolUse fields, set when Type == MessageToolUse.
	ToolName  string
	ToolInput map[string]any
	ToolUseID string

	// ToolResult fields, set when Type == MessageToolResult.
	ToolResultFor string
	ToolError     bool

	// ResultMessage fields, set when Type == MessageResult.
	Subtype      string
	DurationMs   int64
	TotalCostUSD float64
	SessionID    string
	InputTokens  int
	OutputTokens int
}

// PermissionFunc routes a tool-use request through the Approval Queue (or
// any other gate); returns whether the tool call may proceed.
type PermissionFunc func(ctx context.Context, toolName string, input map[string]any) (approved bool, reason string, err error)

// SpawnOptions is what the Agent Runner hands the subprocess implementation
// to start or resume a session. The subprocess itself is a black box
// (spec.md §1 Non-goals) — Subprocess is the only contract this package
// depends on.
type SpawnOptions struct {
	AgentID    string
	SessionID  string // non-empty selects resume over restart (§4.2 resume contract)
	Cwd        string
	SystemPrompt string
	Hooks      map[string]any
	Permission PermissionFunc
}

// Subprocess is the external collaborator of §6.5: it turns SpawnOptions
// into a typed, ordered message stream. Implementations outlive a single
// call to Start only through the channel; Start must close the channel
// after emitting the terminal MessageResult, or sooner if ctx is cancelled.
//
// Send injects a follow-up user prompt into the session previously opened
// by Start for agentID — the send_message side of the execution contract.
// The continuation arrives on the same channel Start returned, so the
// consumer's drain loop sees one ordered stream. Send fails when no live
// session exists for agentID.
type Subprocess interface {
	Start(ctx context.Context, opts SpawnOptions) (<-chan Message, error)
	Send(ctx context.Context, agentID, content string) error
}

// TagDeriver is the best-effort "auto-derive up to 8 short tags" hook of
// the spawn contract (§4.2 step 3). Nil is a valid Runner field — DeriveTags
// is never on the critical path and Spawn falls back to a deterministic
// heuristic on any error or absence.
type TagDeriver interface {
	DeriveTags(ctx context.Context, agentType, taskContext string) ([]string, error)
}

// instance is the Agent Runner's bookkeeping for one in-memory, currently
// running agent. active_agents[agent_id] in spec.md §5 — "the only
// authority for is an instance alive in this process".
type instance struct {
	mu sync.Mutex

	agentID   string
	taskID    string
	orgID     string
	sessionID string
	status    string // mirrors AgentRecord.status for fast in-process checks

	tokensUsed int
	costUSD    float64

	cancelExec  context.CancelFunc
	done        chan struct{}
	startedAt   time.Time
}

func (i *instance) snapshotUsage() (session string, tokens int, cost float64) {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.sessionID, i.tokensUsed, i.costUSD
}

func (i *instance) recordResult(m Message) {
	i.mu.Lock()
	defer i.mu.Unlock()
	if m.SessionID != "" {
		i.sessionID = m.SessionID
	}
	i.tokensUsed += m.InputTokens + m.OutputTokens
	i.costUSD += m.TotalCostUSD
}
