package slackops

import (
	"strings"
	"testing"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildApprovalRequestMessage(t *testing.T) {
	input := ApprovalRequestedInput{
		ApprovalID: "appr-123",
		Title:      "Rework budget exhausted",
		Summary:    "Task task-9 failed TEST and LINT three times.",
	}
	blocks := BuildApprovalRequestMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":raised_hand:")
	assert.Contains(t, section.Text.Text, "Rework budget exhausted")
	assert.Contains(t, section.Text.Text, "Task task-9 failed TEST and LINT three times.")
	assert.Contains(t, section.Text.Text, "https://dash.example.com/approvals/appr-123")
}

func TestBuildApprovalRequestMessage_EmbedsFingerprintContext(t *testing.T) {
	input := ApprovalRequestedInput{
		ApprovalID:  "appr-123",
		Title:       "Rework budget exhausted",
		Summary:     "Task task-9 failed TEST and LINT three times.",
		Fingerprint: "apf-abc123def456",
	}
	blocks := BuildApprovalRequestMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 2)
	ctxBlock, ok := blocks[1].(*goslack.ContextBlock)
	require.True(t, ok)
	require.Len(t, ctxBlock.ContextElements.Elements, 1)
	tb, ok := ctxBlock.ContextElements.Elements[0].(*goslack.TextBlockObject)
	require.True(t, ok)
	assert.Equal(t, "apf-abc123def456", tb.Text)
}

func TestBuildApprovalResolvedMessage_Approved(t *testing.T) {
	input := ApprovalResolvedInput{
		ApprovalID:      "appr-1",
		Status:          "approved",
		ResponseMessage: "Looks fine, ship it.",
		ResponseBy:      "alice",
	}
	blocks := BuildApprovalResolvedMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 2)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":white_check_mark:")
	assert.Contains(t, header.Text.Text, "Approved")
	assert.Contains(t, header.Text.Text, "Looks fine, ship it.")
	assert.Contains(t, header.Text.Text, "alice")

	action := blocks[1].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Contains(t, btn.URL, "https://dash.example.com/approvals/appr-1")
}

func TestBuildApprovalResolvedMessage_Denied(t *testing.T) {
	input := ApprovalResolvedInput{
		ApprovalID: "appr-2",
		Status:     "denied",
	}
	blocks := BuildApprovalResolvedMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":x:")
	assert.Contains(t, header.Text.Text, "Denied")
}

func TestBuildApprovalResolvedMessage_Expired(t *testing.T) {
	input := ApprovalResolvedInput{
		ApprovalID: "appr-3",
		Status:     "expired",
	}
	blocks := BuildApprovalResolvedMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":alarm_clock:")
	assert.Contains(t, header.Text.Text, "Expired")
}

func TestBuildApprovalResolvedMessage_UnknownStatus(t *testing.T) {
	input := ApprovalResolvedInput{
		ApprovalID: "appr-4",
		Status:     "mystery",
	}
	blocks := BuildApprovalResolvedMessage(input, "https://dash.example.com")

	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, ":question:")
	assert.Contains(t, header.Text.Text, "Approval mystery")
}

func TestBuildEscalationMessage(t *testing.T) {
	input := EscalationInput{
		ApprovalID:  "appr-5",
		TaskID:      "task-9",
		ReworkCount: 3,
		MaxRework:   3,
		FailedGates: []string{"TEST", "LINT"},
	}
	blocks := BuildEscalationMessage(input, "https://dash.example.com")

	require.Len(t, blocks, 1)
	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":rotating_light:")
	assert.Contains(t, section.Text.Text, "task-9")
	assert.Contains(t, section.Text.Text, "(3/3 attempts)")
	assert.Contains(t, section.Text.Text, "TEST, LINT")
	assert.Contains(t, section.Text.Text, "https://dash.example.com/approvals/appr-5")
}

func TestFormatGateList(t *testing.T) {
	assert.Equal(t, "(none reported)", formatGateList(nil))
	assert.Equal(t, "TEST", formatGateList([]string{"TEST"}))
	assert.Equal(t, "TEST, LINT, SECURITY", formatGateList([]string{"TEST", "LINT", "SECURITY"}))
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
