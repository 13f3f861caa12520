package sqlmodels

import "time"

// InterAgentMessage is a row in the Message Bus's persisted audit log
// (§4.6). Every send is both a pub/sub event and a row here; rows outlive
// subscribers, which is why query() polls this table rather than pub/sub.
type InterAgentMessage struct {
	ID               string
	OrgID            string
	FromAgentID      string
	ToAgentID        *string
	Type             string // progress | blocker | query | delegation | review_request | response
	Subject          string
	Content          string
	Priority         int
	RequiresResponse bool
	ResponseToID     *string
	ReadAt           *time.Time
	RespondedAt      *time.Time
	Context          map[string]any
	CreatedAt        time.Time
}

// AgentMessage is a row in the Job Runtime's per-agent transcript log
// (§6.2's agent_message table). message_num is strictly monotonic per
// agent_id across resumes (P6).
type AgentMessage struct {
	ID         string
	AgentID    string
	OrgID      string
	MessageNum int
	Kind       string // user | assistant | tool_use | tool_result | result | stream_event
	Summary    string
	CreatedAt  time.Time
}

// AgentState is the *operational* mirror of fast-changing agent fields —
// last_heartbeat, tokens_used, cost_usd — written every 30s while an agent
// streams. Kept out of the graph deliberately (§4.2): the graph (AgentRecord)
// is reserved for meaningful state transitions, not heartbeat noise.
type AgentState struct {
	AgentID       string
	LastHeartbeat time.Time
	TokensUsed    int
	CostUSD       float64
	UpdatedAt     time.Time
}
