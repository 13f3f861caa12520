package slackops

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ApprovalFingerprint derives the deduplication token embedded in
// approval-request notices: repeat requests from the same agent for the
// same kind of decision hash identically, so a re-ask threads under the
// first notice instead of posting a fresh top-level message. The title is
// normalized first so cosmetic rewording of the same question keeps the
// thread.
func ApprovalFingerprint(agentID, approvalType, title string) string {
	sum := sha256.Sum256([]byte(agentID + "\x00" + approvalType + "\x00" + normalizeText(title)))
	return "apf-" + hex.EncodeToString(sum[:6])
}

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// collectMessageText flattens a history message down to searchable text.
// Our own notices are Block Kit messages with no fallback text, so the
// section and context blocks (where the fingerprint token lives) are
// walked alongside the legacy text/attachment fields.
func collectMessageText(msg goslack.Message) string {
	var parts []string
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	for _, block := range msg.Blocks.BlockSet {
		switch b := block.(type) {
		case *goslack.SectionBlock:
			if b.Text != nil && b.Text.Text != "" {
				parts = append(parts, b.Text.Text)
			}
		case *goslack.ContextBlock:
			for _, el := range b.ContextElements.Elements {
				if tb, ok := el.(*goslack.TextBlockObject); ok && tb.Text != "" {
					parts = append(parts, tb.Text)
				}
			}
		}
	}
	return strings.Join(parts, " ")
}
