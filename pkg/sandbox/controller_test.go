package sandbox_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/sandbox"
	"github.com/sibyl-run/sibyl/pkg/sandbox/podruntime"
	"github.com/sibyl-run/sibyl/pkg/sibylerr"
	"github.com/sibyl-run/sibyl/pkg/sqlmodels"
	testdb "github.com/sibyl-run/sibyl/test/database"
)

func newEnabledController(t *testing.T) (*sandbox.Controller, *podruntime.Fake) {
	t.Helper()
	dbClient := testdb.NewTestClient(t)
	cfg := config.DefaultSandboxConfig()
	cfg.Enabled = true
	rt := podruntime.NewFake()
	return sandbox.NewController(dbClient.DB(), cfg, rt), rt
}

func TestController_CreateProvisionsPodAndMarksRunning(t *testing.T) {
	ctrl, _ := newEnabledController(t)
	ctx := context.Background()

	sb, err := ctrl.Create(ctx, "org-1", "user-1", map[string]any{"foo": "bar"})
	require.NoError(t, err)
	assert.Equal(t, sqlmodels.SandboxRunning, sb.Status)
	require.NotNil(t, sb.PodName)
}

func TestController_CreateDisabledFeatureGate(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	cfg := config.DefaultSandboxConfig() // Enabled: false
	ctrl := sandbox.NewController(dbClient.DB(), cfg, nil)

	_, err := ctrl.Create(context.Background(), "org-1", "user-1", nil)
	require.Error(t, err)
	assert.True(t, sibylerr.Is(err, sibylerr.Permanent))
}

func TestController_CreateRuntimeFailureDegradesWhenK8sNotRequired(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	cfg := config.DefaultSandboxConfig()
	cfg.Enabled = true
	cfg.K8sRequired = false
	rt := podruntime.NewFake()
	rt.Fail = true
	ctrl := sandbox.NewController(dbClient.DB(), cfg, rt)

	sb, err := ctrl.Create(context.Background(), "org-1", "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, sqlmodels.SandboxError, sb.Status)
	require.NotNil(t, sb.LastError)
}

func TestController_CreateRuntimeFailureFailsHardWhenK8sRequired(t *testing.T) {
	dbClient := testdb.NewTestClient(t)
	cfg := config.DefaultSandboxConfig()
	cfg.Enabled = true
	cfg.K8sRequired = true
	rt := podruntime.NewFake()
	rt.Fail = true
	ctrl := sandbox.NewController(dbClient.DB(), cfg, rt)

	_, err := ctrl.Create(context.Background(), "org-1", "user-1", nil)
	require.Error(t, err)
	assert.True(t, sibylerr.Is(err, sibylerr.Transient))
}

func TestController_EnsureReusesNonTerminalSandbox(t *testing.T) {
	ctrl, _ := newEnabledController(t)
	ctx := context.Background()

	first, err := ctrl.Ensure(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)

	second, err := ctrl.Ensure(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestController_EnsureResumesSuspendedSandbox(t *testing.T) {
	ctrl, _ := newEnabledController(t)
	ctx := context.Background()

	sb, err := ctrl.Create(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	require.NoError(t, ctrl.Suspend(ctx, sb.ID))

	resumed, err := ctrl.Ensure(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, sb.ID, resumed.ID)
	assert.Equal(t, sqlmodels.SandboxRunning, resumed.Status)
}

func TestController_EnsureCreatesFreshAfterDestroy(t *testing.T) {
	ctrl, _ := newEnabledController(t)
	ctx := context.Background()

	sb, err := ctrl.Create(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	require.NoError(t, ctrl.Destroy(ctx, sb.ID))

	fresh, err := ctrl.Ensure(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	assert.NotEqual(t, sb.ID, fresh.ID)
}

func TestController_GetLogsFailsWithoutProvisionedPod(t *testing.T) {
	ctrl, rt := newEnabledController(t)
	ctx := context.Background()

	sb, err := ctrl.Create(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	rt.RemovePod(config.DefaultSandboxConfig().Namespace, "sibyl-sandbox-"+sb.ID)

	_, err = ctrl.GetLogs(ctx, sb.ID, 100)
	require.Error(t, err)
	assert.True(t, sibylerr.Is(err, sibylerr.NotFound))
}

func TestController_GetLogsReturnsTail(t *testing.T) {
	ctrl, rt := newEnabledController(t)
	ctx := context.Background()

	sb, err := ctrl.Create(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	rt.Logs = "line1\nline2\n"

	logs, err := ctrl.GetLogs(ctx, sb.ID, 200)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2\n", logs)
}

func TestController_ReconcileMarksErrorWhenPodMissing(t *testing.T) {
	ctrl, rt := newEnabledController(t)
	ctx := context.Background()

	sb, err := ctrl.Create(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	rt.RemovePod(config.DefaultSandboxConfig().Namespace, "sibyl-sandbox-"+sb.ID)

	require.NoError(t, ctrl.Reconcile(ctx))

	reconciled, err := ctrl.Ensure(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, sqlmodels.SandboxError, reconciled.Status)
}

func TestController_ReconcileRealignsPhaseToStatus(t *testing.T) {
	ctrl, rt := newEnabledController(t)
	ctx := context.Background()

	sb, err := ctrl.Create(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	rt.SetPhase(config.DefaultSandboxConfig().Namespace, "sibyl-sandbox-"+sb.ID, podruntime.PhaseFailed)

	require.NoError(t, ctrl.Reconcile(ctx))

	reconciled, err := ctrl.Ensure(ctx, "org-1", "user-1", nil)
	require.NoError(t, err)
	assert.Equal(t, sqlmodels.SandboxError, reconciled.Status)
}
