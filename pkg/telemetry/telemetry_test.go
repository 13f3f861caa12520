package telemetry

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_Disabled_NoopTracer(t *testing.T) {
	p, err := Init(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)
	assert.NotNil(t, p.Tracer)
	assert.Nil(t, p.TracerProvider)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestInit_NilConfig_DefaultsToDisabled(t *testing.T) {
	p, err := Init(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, p.TracerProvider)
}

func TestInit_UnknownExporter_Errors(t *testing.T) {
	_, err := Init(context.Background(), &Config{Enabled: true, Exporter: "carrier-pigeon"})
	assert.Error(t, err)
}

func TestInit_StdoutExporter_BuildsTracerProvider(t *testing.T) {
	p, err := Init(context.Background(), &Config{Enabled: true, Exporter: "stdout", ServiceName: "sibyl-test"})
	require.NoError(t, err)
	require.NotNil(t, p.TracerProvider)
	assert.NoError(t, p.Shutdown(context.Background()))
}

func TestMetrics_JobsQueued_Observable(t *testing.T) {
	p, err := Init(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	p.Metrics.JobsQueued.Set(3)
	assert.Equal(t, float64(3), testutil.ToFloat64(p.Metrics.JobsQueued))
}

func TestMetrics_JobsProcessed_LabeledByKindAndOutcome(t *testing.T) {
	p, err := Init(context.Background(), &Config{Enabled: false})
	require.NoError(t, err)

	p.Metrics.JobsProcessed.WithLabelValues("run_agent_execution", "success").Inc()
	p.Metrics.JobsProcessed.WithLabelValues("run_agent_execution", "success").Inc()
	p.Metrics.JobsProcessed.WithLabelValues("run_agent_execution", "failed").Inc()

	assert.Equal(t, float64(2), testutil.ToFloat64(p.Metrics.JobsProcessed.WithLabelValues("run_agent_execution", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(p.Metrics.JobsProcessed.WithLabelValues("run_agent_execution", "failed")))
}

func TestTwoProviders_IndependentRegistries_NoDuplicatePanic(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err1 := Init(context.Background(), &Config{Enabled: false})
		_, err2 := Init(context.Background(), &Config{Enabled: false})
		require.NoError(t, err1)
		require.NoError(t, err2)
	})
}
