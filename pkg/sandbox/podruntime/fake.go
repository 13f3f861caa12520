package podruntime

import (
	"context"
	"fmt"
	"sync"
)

// Fake is an in-memory Runtime double for controller tests, following the
// same "swap the I/O seam" idiom as pkg/taskorch/gates.Runner.Exec and
// pkg/agentrunner.Subprocess.
type Fake struct {
	mu    sync.Mutex
	pods  map[string]Status // namespace/name -> status
	Logs  string
	Fail  bool // CreatePod/GetStatus/DeletePod all fail when true
}

// NewFake returns a Fake with no pods registered.
func NewFake() *Fake {
	return &Fake{pods: map[string]Status{}}
}

func podKey(namespace, name string) string {
	return namespace + "/" + name
}

func (f *Fake) CreatePod(ctx context.Context, spec Spec) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail {
		return fmt.Errorf("fake runtime: create failed")
	}
	f.pods[podKey(spec.Namespace, spec.Name)] = Status{Phase: PhasePending}
	return nil
}

func (f *Fake) GetStatus(ctx context.Context, namespace, name string) (Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail {
		return Status{}, fmt.Errorf("fake runtime: get status failed")
	}
	s, ok := f.pods[podKey(namespace, name)]
	if !ok {
		return Status{}, ErrPodNotFound
	}
	return s, nil
}

func (f *Fake) DeletePod(ctx context.Context, namespace, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Fail {
		return fmt.Errorf("fake runtime: delete failed")
	}
	delete(f.pods, podKey(namespace, name))
	return nil
}

func (f *Fake) GetLogs(ctx context.Context, namespace, name string, tailLines int64) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.pods[podKey(namespace, name)]; !ok {
		return "", ErrPodNotFound
	}
	return f.Logs, nil
}

// SetPhase lets tests drive the reconcile loop by moving a registered pod
// to an arbitrary phase.
func (f *Fake) SetPhase(namespace, name string, phase Phase) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pods[podKey(namespace, name)] = Status{Phase: phase}
}

// RemovePod simulates the pod disappearing (e.g. node eviction) without a
// DeletePod call having been made.
func (f *Fake) RemovePod(namespace, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.pods, podKey(namespace, name))
}
