package podruntime

import "context"

// Unavailable is the Runtime installed when the sandbox plane is enabled
// but no API server connection could be established and k8s_required is
// false. Every call fails with the original bootstrap error, which the
// Controller degrades to status=error, last_error=<> per its runtime-failure
// handling instead of crashing the process.
type Unavailable struct {
	Err error
}

func (u Unavailable) CreatePod(context.Context, Spec) error { return u.Err }

func (u Unavailable) GetStatus(context.Context, string, string) (Status, error) {
	return Status{}, u.Err
}

func (u Unavailable) DeletePod(context.Context, string, string) error { return u.Err }

func (u Unavailable) GetLogs(context.Context, string, string, int64) (string, error) {
	return "", u.Err
}
