package jobs

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/sibyl-run/sibyl/pkg/telemetry"
)

// Handler processes one claimed job. A returned error marks the job for
// retry (or terminal failure once MaxAttempts is exhausted); a nil error
// marks it completed.
type Handler func(ctx context.Context, job *Job) error

// Pool is a fixed-size group of worker goroutines draining Queue, grounded
// on the teacher's pkg/queue.Worker: each worker polls, claims a batch
// under SELECT ... FOR UPDATE SKIP LOCKED, and runs one job at a time.
// Unlike the teacher's one-session-per-worker shape, a Sibyl worker claims
// up to BatchSize jobs per tick and runs them sequentially — job handlers
// here are short relative to the teacher's session executions, except for
// run_agent_execution, which blocks for the lifetime of a subprocess
// stream and so dominates whichever worker claims it.
type Pool struct {
	id        string
	queue     *Queue
	handlers  map[Kind]Handler
	metrics   *telemetry.Metrics
	logger    *slog.Logger

	workerCount int
	batchSize   int
	pollBase    time.Duration
	pollJitter  time.Duration

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// PoolConfig configures NewPool. Metrics may be nil (tests).
type PoolConfig struct {
	WorkerCount        int
	BatchSize          int
	PollInterval       time.Duration
	PollIntervalJitter time.Duration
}

// NewPool constructs a worker pool draining queue with handlers.
func NewPool(id string, queue *Queue, handlers map[Kind]Handler, metrics *telemetry.Metrics, cfg PoolConfig) *Pool {
	workers := cfg.WorkerCount
	if workers <= 0 {
		workers = 1
	}
	batch := cfg.BatchSize
	if batch <= 0 {
		batch = 1
	}
	poll := cfg.PollInterval
	if poll <= 0 {
		poll = 2 * time.Second
	}
	return &Pool{
		id:          id,
		queue:       queue,
		handlers:    handlers,
		metrics:     metrics,
		logger:      slog.Default().With("component", "job-pool", "pool_id", id),
		workerCount: workers,
		batchSize:   batch,
		pollBase:    poll,
		pollJitter:  cfg.PollIntervalJitter,
		stopCh:      make(chan struct{}),
	}
}

// Start launches every worker goroutine.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.workerCount; i++ {
		p.wg.Add(1)
		workerID := workerName(p.id, i)
		go p.run(ctx, workerID)
	}
	p.logger.Info("job pool started", "workers", p.workerCount)
}

// Stop signals every worker to exit and waits for them to drain their
// current job. Safe to call multiple times.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()
	p.logger.Info("job pool stopped")
}

func workerName(poolID string, i int) string {
	return poolID + "-w" + strconv.Itoa(i)
}

func (p *Pool) run(ctx context.Context, workerID string) {
	defer p.wg.Done()
	log := p.logger.With("worker_id", workerID)
	log.Info("worker started")

	for {
		select {
		case <-p.stopCh:
			log.Info("worker shutting down")
			return
		case <-ctx.Done():
			log.Info("context cancelled, worker shutting down")
			return
		default:
			n, err := p.pollAndProcess(ctx, workerID)
			if err != nil {
				log.Error("poll failed", "error", err)
				p.sleep(time.Second)
				continue
			}
			if n == 0 {
				p.sleep(p.pollInterval())
			}
		}
	}
}

// pollAndProcess claims up to batchSize jobs and runs each to completion,
// returning how many were claimed so run() knows whether to skip the next
// sleep (a full batch means more work is likely already queued).
func (p *Pool) pollAndProcess(ctx context.Context, workerID string) (int, error) {
	claimed, err := p.queue.Claim(ctx, workerID, p.batchSize)
	if err != nil {
		return 0, err
	}
	for _, job := range claimed {
		p.process(ctx, job)
	}
	return len(claimed), nil
}

func (p *Pool) process(ctx context.Context, job *Job) {
	log := p.logger.With("job_id", job.ID, "kind", job.Kind)

	handler, ok := p.handlers[job.Kind]
	if !ok {
		log.Error("no handler registered for job kind")
		_ = p.queue.Complete(ctx, job.ID, errUnregisteredKind(job.Kind))
		return
	}

	if p.metrics != nil {
		p.metrics.JobsInFlight.Inc()
		defer p.metrics.JobsInFlight.Dec()
	}

	start := time.Now()
	err := handler(ctx, job)
	elapsed := time.Since(start)

	if p.metrics != nil {
		p.metrics.JobDuration.WithLabelValues(string(job.Kind)).Observe(elapsed.Seconds())
		outcome := "success"
		if err != nil {
			outcome = "failure"
			if job.AttemptCount < job.MaxAttempts {
				p.metrics.JobRetries.WithLabelValues(string(job.Kind)).Inc()
			}
		}
		p.metrics.JobsProcessed.WithLabelValues(string(job.Kind), outcome).Inc()
	}

	if err != nil {
		log.Warn("job failed", "error", err, "attempt", job.AttemptCount, "max_attempts", job.MaxAttempts)
	}
	if cerr := p.queue.Complete(ctx, job.ID, err); cerr != nil {
		log.Error("failed to record job completion", "error", cerr)
	}
}

func (p *Pool) sleep(d time.Duration) {
	select {
	case <-p.stopCh:
	case <-time.After(d):
	}
}

// pollInterval returns the poll duration with jitter, mirroring the
// teacher's Worker.pollInterval.
func (p *Pool) pollInterval() time.Duration {
	if p.pollJitter <= 0 {
		return p.pollBase
	}
	offset := time.Duration(rand.Int64N(int64(2 * p.pollJitter)))
	return p.pollBase - p.pollJitter + offset
}

type unregisteredKindError struct{ kind Kind }

func (e unregisteredKindError) Error() string {
	return "no handler registered for job kind " + string(e.kind)
}

func errUnregisteredKind(k Kind) error {
	return unregisteredKindError{kind: k}
}
