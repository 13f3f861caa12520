package slackops

import (
	"fmt"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var approvalEmoji = map[string]string{
	"pending":  ":hourglass_flowing_sand:",
	"approved": ":white_check_mark:",
	"denied":   ":x:",
	"expired":  ":alarm_clock:",
}

var approvalLabel = map[string]string{
	"pending":  "Awaiting Approval",
	"approved": "Approved",
	"denied":   "Denied",
	"expired":  "Expired",
}

func approvalURL(approvalID, dashboardURL string) string {
	return fmt.Sprintf("%s/approvals/%s", dashboardURL, approvalID)
}

// BuildApprovalRequestMessage creates Block Kit blocks announcing a new
// ApprovalRecord (§4.5 enqueue's "broadcasts a UI message, best-effort").
func BuildApprovalRequestMessage(input ApprovalRequestedInput, dashboardURL string) []goslack.Block {
	url := approvalURL(input.ApprovalID, dashboardURL)
	text := fmt.Sprintf(":raised_hand: *%s* needs a decision\n%s\n<%s|Respond in Dashboard>",
		input.Title, truncateForSlack(input.Summary), url)

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
	// The fingerprint token rides along in a context block so
	// FindMessageByFingerprint can locate this message in channel history
	// when the same decision comes up again.
	if input.Fingerprint != "" {
		blocks = append(blocks, goslack.NewContextBlock("",
			goslack.NewTextBlockObject(goslack.MarkdownType, input.Fingerprint, false, false)))
	}
	return blocks
}

// BuildApprovalResolvedMessage creates Block Kit blocks for an approval's
// terminal outcome (approved, denied, or expired).
func BuildApprovalResolvedMessage(input ApprovalResolvedInput, dashboardURL string) []goslack.Block {
	emoji := approvalEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := approvalLabel[input.Status]
	if label == "" {
		label = "Approval " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s*", emoji, label)
	if input.ResponseMessage != "" {
		headerText += fmt.Sprintf("\n\n*Response:*\n%s", truncateForSlack(input.ResponseMessage))
	}
	if input.ResponseBy != "" {
		headerText += fmt.Sprintf("\n_by %s_", input.ResponseBy)
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
	}

	url := approvalURL(input.ApprovalID, dashboardURL)
	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View in Dashboard", false, false))
	btn.URL = url
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildEscalationMessage creates Block Kit blocks for a Ralph Loop
// escalation (§4.3: rework limit reached, a QUESTION ApprovalRecord was
// created tagged with the failed gate names).
func BuildEscalationMessage(input EscalationInput, dashboardURL string) []goslack.Block {
	url := approvalURL(input.ApprovalID, dashboardURL)
	text := fmt.Sprintf(
		":rotating_light: *Task %s exhausted its rework budget* (%d/%d attempts)\nFailed gates: %s\n<%s|Review in Dashboard>",
		input.TaskID, input.ReworkCount, input.MaxRework, truncateForSlack(formatGateList(input.FailedGates)), url,
	)

	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

func formatGateList(gates []string) string {
	if len(gates) == 0 {
		return "(none reported)"
	}
	out := gates[0]
	for _, g := range gates[1:] {
		out += ", " + g
	}
	return out
}

func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — view full details in dashboard)_"
}
