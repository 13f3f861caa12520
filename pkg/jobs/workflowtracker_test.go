package jobs_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/jobs"
)

func TestWorkflowTracker_ShouldRemindRequiresQuietPeriodAndMinMessages(t *testing.T) {
	tr := jobs.NewWorkflowTracker(10*time.Millisecond, 3)

	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageAssistant})
	assert.False(t, tr.ShouldRemind("agent-1"), "should not remind before min message count")

	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageToolUse})
	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageToolResult})
	require.False(t, tr.ShouldRemind("agent-1"), "should not remind before the quiet interval elapses")

	time.Sleep(20 * time.Millisecond)
	assert.True(t, tr.ShouldRemind("agent-1"))
}

func TestWorkflowTracker_SubstantiveMessageResetsReminder(t *testing.T) {
	tr := jobs.NewWorkflowTracker(10*time.Millisecond, 1)

	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageAssistant})
	time.Sleep(20 * time.Millisecond)
	require.True(t, tr.ShouldRemind("agent-1"))

	tr.MarkReminded("agent-1")
	assert.False(t, tr.ShouldRemind("agent-1"), "should not remind twice without an intervening substantive message")

	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageAssistant})
	assert.False(t, tr.ShouldRemind("agent-1"), "a fresh substantive message resets the quiet clock")
}

func TestWorkflowTracker_ClearDropsState(t *testing.T) {
	tr := jobs.NewWorkflowTracker(time.Millisecond, 1)
	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageAssistant})
	time.Sleep(5 * time.Millisecond)
	require.True(t, tr.ShouldRemind("agent-1"))

	tr.Clear("agent-1")
	assert.False(t, tr.ShouldRemind("agent-1"), "cleared agent has no bookkeeping left to remind from")
}

func TestWorkflowTracker_NonSubstantiveMessagesDoNotResetClock(t *testing.T) {
	tr := jobs.NewWorkflowTracker(10*time.Millisecond, 1)
	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageAssistant})
	time.Sleep(15 * time.Millisecond)
	tr.RecordMessage("agent-1", agentrunner.Message{Type: agentrunner.MessageStreamEvent})
	assert.True(t, tr.ShouldRemind("agent-1"), "a stream_event alone must not postpone the reminder")
}
