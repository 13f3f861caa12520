package gates

import (
	"fmt"
	"strings"
)

// CompileFeedback renders a set of gate Results into the structured
// rework-feedback message the Task Orchestrator sends to the worker agent
// (spec.md §4.3): a ❌/✅ marker per gate, failing gates' errors listed
// (truncated to 10 with a "...and N more" marker).
func CompileFeedback(results []Result) string {
	var b strings.Builder
	b.WriteString("Quality gate results:\n\n")
	for _, r := range results {
		marker := "✅"
		if !r.Passed {
			marker = "❌"
		}
		fmt.Fprintf(&b, "%s %s\n", marker, r.Gate)
		if r.Passed {
			continue
		}
		shown := r.Errors
		extra := 0
		if len(shown) > 10 {
			extra = len(shown) - 10
			shown = shown[:10]
		}
		for _, e := range shown {
			fmt.Fprintf(&b, "  - %s\n", e)
		}
		if extra > 0 {
			fmt.Fprintf(&b, "  ...and %d more\n", extra)
		}
	}
	return b.String()
}

// FailedGates returns the names of every gate that did not pass, in the
// order they were run — used both for rework feedback headers and for the
// escalation ApprovalRecord's tags when the rework limit is reached.
func FailedGates(results []Result) []string {
	var out []string
	for _, r := range results {
		if !r.Passed {
			out = append(out, string(r.Gate))
		}
	}
	return out
}

// AllPassed reports whether every result passed.
func AllPassed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return false
		}
	}
	return true
}
