// Package telemetry wires together the two observability stacks named in
// SPEC_FULL.md's domain-stack table: an OpenTelemetry tracer for spans
// around agent execution, gate runs, and job processing (C2, C3, C8), and a
// Prometheus registry for worker-pool and job-queue health gauges (C8).
//
// The tracer setup is grounded on go-claw's internal/otel package
// (Config/Provider/Init, the enabled-vs-noop split, the otlp-http/stdout/
// none exporter switch) — the nearest in-pack production example of wiring
// go.opentelemetry.io/otel end to end. The Prometheus side has no in-pack
// production-code grounding: prometheus/client_golang appears only in test
// files across the retrieval pack (e.g. jordigilh-kubernaut's
// effectivenessmonitor tests), so the Metrics type below is hand-written
// directly against client_golang's own promauto conventions, noted in
// DESIGN.md alongside the same disclaimer already carried for pkg/llmclient.
package telemetry

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation scope name for every span Sibyl emits.
const TracerName = "sibyl"

// Config drives the tracer provider. Disabled (the default) yields a
// zero-overhead no-op tracer, matching go-claw's Init(cfg.Enabled=false)
// branch.
type Config struct {
	Enabled     bool    `yaml:"enabled"`
	Exporter    string  `yaml:"exporter"` // "otlp-http" | "stdout" | "none"
	Endpoint    string  `yaml:"endpoint"`
	ServiceName string  `yaml:"service_name"`
	SampleRate  float64 `yaml:"sample_rate"`
}

// DefaultConfig returns telemetry disabled, as it is for every teacher
// config that ships without an explicit opt-in.
func DefaultConfig() *Config {
	return &Config{Enabled: false, Exporter: "none", ServiceName: "sibyl", SampleRate: 1.0}
}

// Provider wraps the OTel tracer provider with cleanup, and the process's
// Prometheus registry.
type Provider struct {
	TracerProvider *sdktrace.TracerProvider
	Tracer         trace.Tracer
	Registry       *prometheus.Registry
	Metrics        *Metrics
	shutdown       func(context.Context) error
}

// Init sets up tracing and the Prometheus registry for one process
// (cmd/sibylapi or cmd/sibylworker each call this once). Returns a Provider
// that must be Shutdown() on exit.
func Init(ctx context.Context, cfg *Config) (*Provider, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	registry := prometheus.NewRegistry()
	metrics := newMetrics(registry)

	if !cfg.Enabled {
		return &Provider{
			Tracer:   nooptrace.NewTracerProvider().Tracer(TracerName),
			Registry: registry,
			Metrics:  metrics,
			shutdown: func(context.Context) error { return nil },
		}, nil
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "sibyl"
	}

	res, err := sdkresource.New(ctx,
		sdkresource.WithAttributes(semconv.ServiceName(serviceName)),
	)
	if err != nil {
		return nil, fmt.Errorf("create resource: %w", err)
	}

	exporter, err := createExporter(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create exporter: %w", err)
	}

	sampleRate := cfg.SampleRate
	if sampleRate <= 0 {
		sampleRate = 1.0
	}
	sampler := sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampleRate))

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)
	otel.SetTracerProvider(tp)

	return &Provider{
		TracerProvider: tp,
		Tracer:         tp.Tracer(TracerName),
		Registry:       registry,
		Metrics:        metrics,
		shutdown:       tp.Shutdown,
	}, nil
}

// Shutdown flushes and shuts down the tracer provider.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p.shutdown == nil {
		return nil
	}
	return p.shutdown(ctx)
}

func createExporter(ctx context.Context, cfg *Config) (sdktrace.SpanExporter, error) {
	switch cfg.Exporter {
	case "otlp-http", "":
		endpoint := cfg.Endpoint
		if endpoint == "" {
			endpoint = "localhost:4318"
		}
		return otlptracehttp.New(ctx,
			otlptracehttp.WithEndpoint(endpoint),
			otlptracehttp.WithInsecure(),
		)
	case "stdout":
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	case "none":
		return &noopExporter{}, nil
	default:
		return nil, fmt.Errorf("unknown exporter: %s (supported: otlp-http, stdout, none)", cfg.Exporter)
	}
}

type noopExporter struct{}

func (e *noopExporter) ExportSpans(_ context.Context, _ []sdktrace.ReadOnlySpan) error { return nil }
func (e *noopExporter) Shutdown(_ context.Context) error                              { return nil }

// Standard span attribute keys, named after what they carry rather than
// which component sets them, matching go-claw's otel.AttrX naming.
var (
	AttrOrgID       = attribute.Key("sibyl.org.id")
	AttrTaskID      = attribute.Key("sibyl.task.id")
	AttrAgentID     = attribute.Key("sibyl.agent.id")
	AttrGate        = attribute.Key("sibyl.gate.kind")
	AttrJobKind     = attribute.Key("sibyl.job.kind")
	AttrApprovalID  = attribute.Key("sibyl.approval.id")
	AttrSandboxID   = attribute.Key("sibyl.sandbox.id")
)

// StartSpan starts an internal span with common attributes.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartConsumerSpan starts a span for one job-queue item being processed.
func StartConsumerSpan(ctx context.Context, tracer trace.Tracer, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return tracer.Start(ctx, name,
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindConsumer),
	)
}

// Metrics holds every Prometheus instrument Sibyl's two processes publish.
// Field grouping mirrors the components named in the domain-stack table:
// job runtime health first, then agent/gate/approval counters.
type Metrics struct {
	JobsQueued      prometheus.Gauge
	JobsInFlight    prometheus.Gauge
	JobsProcessed   *prometheus.CounterVec
	JobDuration     *prometheus.HistogramVec
	JobRetries      *prometheus.CounterVec

	AgentsActive    prometheus.Gauge
	GateRuns        *prometheus.CounterVec
	GateDuration    *prometheus.HistogramVec
	ApprovalsPending prometheus.Gauge
	ApprovalWait    prometheus.Histogram
}

// newMetrics registers every instrument against registry. Called once per
// process in Init; a second Provider in the same process (tests spin up
// many) must use its own *prometheus.Registry to avoid a duplicate-
// registration panic, which is why Init always builds a fresh one rather
// than using the global default registry.
func newMetrics(registry *prometheus.Registry) *Metrics {
	factory := promauto.With(registry)
	return &Metrics{
		JobsQueued: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sibyl_jobs_queued",
			Help: "Number of jobs currently waiting in the queue.",
		}),
		JobsInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sibyl_jobs_in_flight",
			Help: "Number of jobs currently being processed by a worker.",
		}),
		JobsProcessed: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sibyl_jobs_processed_total",
			Help: "Total jobs processed, by kind and outcome.",
		}, []string{"kind", "outcome"}),
		JobDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sibyl_job_duration_seconds",
			Help:    "Job processing duration in seconds, by kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind"}),
		JobRetries: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sibyl_job_retries_total",
			Help: "Total job retry attempts, by kind.",
		}, []string{"kind"}),
		AgentsActive: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sibyl_agents_active",
			Help: "Number of agent subprocesses currently tracked as active.",
		}),
		GateRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sibyl_gate_runs_total",
			Help: "Total quality gate runs, by gate kind and pass/fail.",
		}, []string{"gate", "outcome"}),
		GateDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sibyl_gate_duration_seconds",
			Help:    "Quality gate run duration in seconds, by gate kind.",
			Buckets: prometheus.DefBuckets,
		}, []string{"gate"}),
		ApprovalsPending: factory.NewGauge(prometheus.GaugeOpts{
			Name: "sibyl_approvals_pending",
			Help: "Number of approval requests currently awaiting a decision.",
		}),
		ApprovalWait: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "sibyl_approval_wait_seconds",
			Help:    "Time an approval request waited before being decided.",
			Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600, 1800, 3600},
		}),
	}
}
