package config

import "time"

// JobsConfig drives the Job Runtime's worker pool (§4.8, §5 "pool of
// worker processes behind a shared job queue"), adapted from the teacher's
// QueueConfig.
type JobsConfig struct {
	// WorkerCount is the number of worker goroutines draining the job
	// queue per process.
	WorkerCount int `yaml:"worker_count"`

	// QueueDepth bounds the in-process job channel; Enqueue blocks (or
	// fails under a caller-supplied deadline) once full.
	QueueDepth int `yaml:"queue_depth"`

	// JobTimeout bounds a single job invocation; zero means no timeout
	// (run_agent_execution legitimately runs for the lifetime of a
	// subprocess stream).
	JobTimeout time.Duration `yaml:"job_timeout"`

	// PollInterval and PollIntervalJitter drive the worker pool's claim
	// ticker when WakeChannel publishes are missed, mirroring the
	// teacher's QueueConfig.PollInterval/PollIntervalJitter.
	PollInterval       time.Duration `yaml:"poll_interval"`
	PollIntervalJitter time.Duration `yaml:"poll_interval_jitter"`

	// ReminderInterval and ReminderMinMessages drive workflow_tracker's
	// should_remind(): a running agent that has gone this long without a
	// substantive message, after at least this many messages, gets one
	// follow-up nudge prompt (SPEC_FULL.md §3's supplemented feature).
	ReminderInterval    time.Duration `yaml:"reminder_interval"`
	ReminderMinMessages int           `yaml:"reminder_min_messages"`
}

// DefaultJobsConfig returns the built-in worker-pool defaults.
func DefaultJobsConfig() *JobsConfig {
	return &JobsConfig{
		WorkerCount:         5,
		QueueDepth:          256,
		JobTimeout:          0,
		PollInterval:        2 * time.Second,
		PollIntervalJitter:  500 * time.Millisecond,
		ReminderInterval:    15 * time.Minute,
		ReminderMinMessages: 5,
	}
}
