// Package sibylerr defines the error-kind taxonomy shared across every
// orchestration component. Callers classify failures with errors.Is against
// the sentinel Kind values rather than matching on concrete types, mirroring
// how pkg/services/errors.go classifies service failures in the teacher
// codebase.
package sibylerr

import (
	"errors"
	"fmt"
)

// Kind is a coarse failure category. It drives retry and escalation policy,
// not presentation.
type Kind error

var (
	// NotFound: a referenced entity, sandbox, or task does not exist (or is
	// not visible in the caller's org).
	NotFound Kind = errors.New("not found")

	// Conflict: lock contention on spawn, duplicate task assignment, or an
	// operation attempted against a record in the wrong state (e.g. resuming
	// a meta-orchestrator that isn't paused).
	Conflict Kind = errors.New("conflict")

	// Transient: graph/SQL/K-V timeouts and disconnects. Safe to retry with
	// backoff.
	Transient Kind = errors.New("transient failure")

	// GateFailure: a quality gate did not pass. Carried as data inside the
	// Task Orchestrator loop; only wrapped as an error at its boundary.
	GateFailure Kind = errors.New("gate failure")

	// ApprovalTimeout: a wait_for_response deadline elapsed with no human
	// response.
	ApprovalTimeout Kind = errors.New("approval timed out")

	// ApprovalCancelled: a pending approval was cancelled out from under its
	// waiter (e.g. tenant rollback).
	ApprovalCancelled Kind = errors.New("approval cancelled")

	// ResourceExhausted: budget exceeded, or a runner/dispatcher is at
	// capacity.
	ResourceExhausted Kind = errors.New("resource exhausted")

	// Permanent: validation errors or missing required dependencies. Never
	// retried.
	Permanent Kind = errors.New("permanent failure")
)

// wrapped pairs a Kind with a caller-supplied message and optional cause,
// while remaining unwrappable to both.
type wrapped struct {
	kind  Kind
	msg   string
	cause error
}

func (w *wrapped) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%s: %v", w.msg, w.cause)
	}
	return w.msg
}

func (w *wrapped) Unwrap() []error {
	if w.cause != nil {
		return []error{w.kind, w.cause}
	}
	return []error{w.kind}
}

// Wrap produces an error classified as kind, carrying msg and an optional
// cause. errors.Is(err, kind) and errors.Is(err, cause) both succeed.
func Wrap(kind Kind, msg string, cause error) error {
	return &wrapped{kind: kind, msg: msg, cause: cause}
}

// Wrapf is Wrap with fmt.Sprintf-style message formatting.
func Wrapf(kind Kind, cause error, format string, args ...any) error {
	return Wrap(kind, fmt.Sprintf(format, args...), cause)
}

// Is reports whether err was produced by Wrap/Wrapf with the given kind, or
// is the kind sentinel itself.
func Is(err error, kind Kind) bool {
	return errors.Is(err, kind)
}

// Retryable reports whether err's kind is normally safe to retry
// automatically (Transient only — every other kind requires a state
// transition or caller decision, per spec.md §7's propagation policy).
func Retryable(err error) bool {
	return errors.Is(err, Transient)
}
