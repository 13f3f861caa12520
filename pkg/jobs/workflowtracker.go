package jobs

import (
	"sync"
	"time"

	"github.com/sibyl-run/sibyl/pkg/agentrunner"
)

// substantiveTypes are the Message.Type values that count as "real work"
// for reminder purposes — a tool_result or stream_event alone never resets
// the clock, only the agent actually doing something does.
var substantiveTypes = map[agentrunner.MessageType]bool{
	agentrunner.MessageAssistant: true,
	agentrunner.MessageToolUse:   true,
}

// agentTrackerState is one running agent's nudge bookkeeping.
type agentTrackerState struct {
	lastSubstantive time.Time
	messageCount    int
	reminded        bool
}

// WorkflowTracker implements the supplemented workflow_tracker.should_remind()
// feature named in SPEC_FULL.md §3 (grounded on original_source's
// workflow_tracker.py): run_agent_execution asks it, after every persisted
// message, whether the agent has gone quiet long enough to deserve one
// follow-up nudge prompt. State is process-local and per-agent-instance —
// an agent only exists as a live subprocess stream in one worker process at
// a time, so there's nothing to share across processes here, unlike the
// durable state the rest of the Job Runtime persists.
type WorkflowTracker struct {
	mu               sync.Mutex
	state            map[string]*agentTrackerState
	reminderInterval time.Duration
	minMessages      int
}

// NewWorkflowTracker constructs a tracker. reminderInterval is how long an
// agent may go without a substantive message before should_remind starts
// returning true; minMessages is the minimum message count before the
// first reminder is considered (a very short session never gets nudged).
func NewWorkflowTracker(reminderInterval time.Duration, minMessages int) *WorkflowTracker {
	return &WorkflowTracker{
		state:            make(map[string]*agentTrackerState),
		reminderInterval: reminderInterval,
		minMessages:      minMessages,
	}
}

// RecordMessage updates an agent's bookkeeping as each message is persisted.
func (t *WorkflowTracker) RecordMessage(agentID string, m agentrunner.Message) {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.state[agentID]
	if !ok {
		s = &agentTrackerState{lastSubstantive: time.Now()}
		t.state[agentID] = s
	}
	s.messageCount++
	if substantiveTypes[m.Type] {
		s.lastSubstantive = time.Now()
		s.reminded = false
	}
}

// ShouldRemind reports whether agentID has gone quiet long enough, after
// enough accumulated messages, to deserve one follow-up nudge — and never
// twice in a row without an intervening substantive message.
func (t *WorkflowTracker) ShouldRemind(agentID string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	s, ok := t.state[agentID]
	if !ok || s.reminded || s.messageCount < t.minMessages {
		return false
	}
	return time.Since(s.lastSubstantive) >= t.reminderInterval
}

// MarkReminded records that a nudge was just sent, so ShouldRemind won't
// fire again until another substantive message resets it.
func (t *WorkflowTracker) MarkReminded(agentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.state[agentID]; ok {
		s.reminded = true
	}
}

// Clear drops an agent's bookkeeping once its execution finalizes.
func (t *WorkflowTracker) Clear(agentID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.state, agentID)
}
