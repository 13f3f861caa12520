// Package gates implements the quality-gate runner embedded with the Task
// Orchestrator (spec.md §4.3): project autodetection, command resolution,
// timeout-bounded execution, and output/error parsing. Grounded on the
// retrieval pack's Executor pattern for sandboxed command execution
// (zkoranges-go-claw's internal/tools.HostExecutor: exec.CommandContext,
// buffered stdout/stderr, truncation) generalized from "one shell tool call"
// to "one quality-gate command per project kind".
package gates

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/sibyl-run/sibyl/pkg/config"
)

// ProjectKind is the autodetected project toolchain, checked in the strict
// order spec.md §4.3 names: Python, then TypeScript, then Rust, then Go.
type ProjectKind string

const (
	ProjectPython     ProjectKind = "python"
	ProjectTypeScript ProjectKind = "typescript"
	ProjectRust       ProjectKind = "rust"
	ProjectGo         ProjectKind = "go"
	ProjectUnknown    ProjectKind = "unknown"
)

// manifestsInOrder pairs each project kind with its marker manifest file,
// in the detection order the spec requires.
var manifestsInOrder = []struct {
	kind     ProjectKind
	manifest string
}{
	{ProjectPython, "pyproject.toml"},
	{ProjectTypeScript, "package.json"},
	{ProjectRust, "Cargo.toml"},
	{ProjectGo, "go.mod"},
}

// DetectProject inspects dir for the first manifest file present, in
// spec.md's strict order.
func DetectProject(dir string) ProjectKind {
	for _, m := range manifestsInOrder {
		if _, err := os.Stat(filepath.Join(dir, m.manifest)); err == nil {
			return m.kind
		}
	}
	return ProjectUnknown
}

// Result is the outcome of one gate run (spec.md §4.3).
type Result struct {
	Gate       config.GateKind
	Passed     bool
	Output     string
	Errors     []string
	Warnings   []string
	Metrics    map[string]any
	DurationMs int64
}

// Runner executes the non-human, non-AI quality gates for one project
// checkout. AI_REVIEW and HUMAN_REVIEW are handled by the Task Orchestrator
// directly (they spawn an agent or wait on the Approval Queue respectively)
// and never reach Runner.
type Runner struct {
	// Exec abstracts process execution for testability; defaults to running
	// commands through the host shell.
	Exec func(ctx context.Context, command, dir string) (stdout, stderr string, exitCode int, err error)
}

// New builds a Runner with the default host-shell executor.
func New() *Runner {
	return &Runner{Exec: hostExec}
}

func hostExec(ctx context.Context, command, dir string) (string, string, int, error) {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	if dir != "" {
		cmd.Dir = dir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
			err = nil
		}
	}
	return stdout.String(), stderr.String(), exitCode, err
}

const (
	maxOutputLines  = 100
	truncateMarker  = "\n... (output truncated)"
	maxParseErrors  = 50
	maxSecTestError = 20
)

// commandsByProject resolves the lint/typecheck/test/security command for a
// project kind, preferring project-declared scripts (TS: package.json
// "scripts"), then falling back to the conventional locally available tool.
func commandFor(kind ProjectKind, gate config.GateKind, dir string) string {
	switch kind {
	case ProjectPython:
		switch gate {
		case config.GateLint:
			return "ruff check ."
		case config.GateTypecheck:
			return "mypy ."
		case config.GateTest:
			return "pytest -q"
		case config.GateSecurity:
			return "bandit -r . -q"
		}
	case ProjectTypeScript:
		if hasPackageScript(dir, gateScriptName(gate)) {
			return "npm run " + gateScriptName(gate)
		}
		switch gate {
		case config.GateLint:
			return "npx eslint ."
		case config.GateTypecheck:
			return "npx tsc --noEmit"
		case config.GateTest:
			return "npm test --silent"
		case config.GateSecurity:
			return "npm audit --audit-level=high"
		}
	case ProjectRust:
		switch gate {
		case config.GateLint:
			return "cargo clippy --all-targets -- -D warnings"
		case config.GateTypecheck:
			return "cargo check --all-targets"
		case config.GateTest:
			return "cargo test --quiet"
		case config.GateSecurity:
			return "cargo audit"
		}
	case ProjectGo:
		switch gate {
		case config.GateLint:
			return "golangci-lint run ./..."
		case config.GateTypecheck:
			return "go vet ./..."
		case config.GateTest:
			return "go test ./..."
		case config.GateSecurity:
			return "gosec ./..."
		}
	}
	return ""
}

func gateScriptName(gate config.GateKind) string {
	switch gate {
	case config.GateLint:
		return "lint"
	case config.GateTypecheck:
		return "typecheck"
	case config.GateTest:
		return "test"
	case config.GateSecurity:
		return "audit"
	default:
		return ""
	}
}

func hasPackageScript(dir, script string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return false
	}
	// Cheap containment check avoids pulling in a JSON dependency just for
	// this probe; the resolved npm command re-validates at execution time.
	return strings.Contains(string(data), `"`+script+`"`)
}

// Run executes gate against dir under timeout, parsing output into errors
// and warnings. Exit code 0 is pass, except SECURITY where pass means no
// high/critical finding was parsed out of the output.
func (r *Runner) Run(ctx context.Context, gate config.GateKind, dir string, timeout time.Duration) Result {
	start := time.Now()
	kind := DetectProject(dir)
	command := commandFor(kind, gate, dir)
	if command == "" {
		return Result{
			Gate:   gate,
			Passed: false,
			Output: "no resolvable command for project kind " + string(kind),
			Errors: []string{"unsupported project/gate combination"},
		}
	}

	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	stdout, stderr, exitCode, err := r.Exec(runCtx, command, dir)
	duration := time.Since(start).Milliseconds()

	combined := stdout
	if stderr != "" {
		combined = combined + "\n" + stderr
	}
	output := truncateLines(combined, maxOutputLines)

	if err != nil {
		return Result{Gate: gate, Passed: false, Output: output, Errors: []string{err.Error()}, DurationMs: duration}
	}

	errs, warns := parseOutput(gate, combined)
	passed := exitCode == 0
	if gate == config.GateSecurity {
		passed = len(errs) == 0
	}

	return Result{
		Gate:       gate,
		Passed:     passed,
		Output:     output,
		Errors:     errs,
		Warnings:   warns,
		Metrics:    map[string]any{"exit_code": exitCode},
		DurationMs: duration,
	}
}

func truncateLines(s string, max int) string {
	lines := strings.Split(s, "\n")
	if len(lines) <= max {
		return s
	}
	return strings.Join(lines[:max], "\n") + truncateMarker
}

// parseOutput extracts error/warning lines with a gate-specific error cap:
// 50 for lint/typecheck, 20 for test/security (spec.md §4.3).
func parseOutput(gate config.GateKind, output string) (errs, warns []string) {
	limit := maxParseErrors
	if gate == config.GateTest || gate == config.GateSecurity {
		limit = maxSecTestError
	}
	for _, line := range strings.Split(output, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		switch {
		case strings.Contains(lower, "error") || strings.Contains(lower, "fail"):
			if len(errs) < limit {
				errs = append(errs, trimmed)
			}
		case strings.Contains(lower, "warn"):
			if len(warns) < limit {
				warns = append(warns, trimmed)
			}
		}
	}
	return errs, warns
}
