package slackops

import (
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "Pod CRASHED in namespace",
			expected: "pod crashed in namespace",
		},
		{
			name:     "collapse whitespace",
			input:    "pod   crashed\t\tin\n\nnamespace",
			expected: "pod crashed in namespace",
		},
		{
			name:     "trim",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "mixed case and whitespace",
			input:    "  ALERT:   Pod   nginx-abc   OOMKilled  ",
			expected: "alert: pod nginx-abc oomkilled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name: "text only",
			msg: goslack.Message{
				Msg: goslack.Msg{Text: "hello world"},
			},
			expected: "hello world",
		},
		{
			name: "text with attachment text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "alert",
					Attachments: []goslack.Attachment{
						{Text: "pod crashed"},
					},
				},
			},
			expected: "alert pod crashed",
		},
		{
			name: "text with attachment fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "alert",
					Attachments: []goslack.Attachment{
						{Fallback: "pod crashed fallback"},
					},
				},
			},
			expected: "alert pod crashed fallback",
		},
		{
			name: "attachment with both text and fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Attachments: []goslack.Attachment{
						{Text: "att text", Fallback: "att fallback"},
					},
				},
			},
			expected: "att text att fallback",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
		{
			name: "block kit message with section and context blocks",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Blocks: goslack.Blocks{BlockSet: []goslack.Block{
						goslack.NewSectionBlock(
							goslack.NewTextBlockObject(goslack.MarkdownType, "needs a decision", false, false),
							nil, nil),
						goslack.NewContextBlock("",
							goslack.NewTextBlockObject(goslack.MarkdownType, "apf-deadbeef0123", false, false)),
					}},
				},
			},
			expected: "needs a decision apf-deadbeef0123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}

func TestApprovalFingerprint(t *testing.T) {
	fp := ApprovalFingerprint("agent-1", "question", "Rework budget exhausted")

	assert.True(t, strings.HasPrefix(fp, "apf-"))
	assert.Len(t, fp, len("apf-")+12)

	// Stable across calls and across cosmetic title rewording.
	assert.Equal(t, fp, ApprovalFingerprint("agent-1", "question", "  rework   Budget exhausted "))

	// Any identity or decision-kind change breaks the thread on purpose.
	assert.NotEqual(t, fp, ApprovalFingerprint("agent-2", "question", "Rework budget exhausted"))
	assert.NotEqual(t, fp, ApprovalFingerprint("agent-1", "tool_use", "Rework budget exhausted"))
	assert.NotEqual(t, fp, ApprovalFingerprint("agent-1", "question", "A different question"))
}
