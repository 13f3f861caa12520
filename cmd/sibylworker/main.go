// Sibyl worker - the Job Runtime process. Drains the durable job queue
// (agent execution, resume, entity mutation, backup), reaps stale sandbox
// task leases, and runs scheduled backups. Lifecycle decisions stay with
// cmd/sibylapi; the two processes communicate only via the SQL store, the
// K/V bus, and pub/sub.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/database"
	"github.com/sibyl-run/sibyl/pkg/entity"
	"github.com/sibyl-run/sibyl/pkg/jobs"
	"github.com/sibyl-run/sibyl/pkg/llmclient"
	"github.com/sibyl-run/sibyl/pkg/metaorch"
	"github.com/sibyl-run/sibyl/pkg/sandbox"
	"github.com/sibyl-run/sibyl/pkg/slackops"
	"github.com/sibyl-run/sibyl/pkg/taskorch"
	"github.com/sibyl-run/sibyl/pkg/taskorch/gates"
	"github.com/sibyl-run/sibyl/pkg/telemetry"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// metaNotify breaks the taskorch/metaorch construction cycle, same as in
// cmd/sibylapi.
type metaNotify struct {
	sched *metaorch.Scheduler
}

func (m *metaNotify) OnTaskComplete(ctx context.Context, metaID, taskOrchID string, success bool, costUSD float64, reworkCount int) error {
	return m.sched.OnTaskComplete(ctx, metaID, taskOrchID, success, costUSD, reworkCount)
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	flag.Parse()

	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		log.Printf("Warning: Could not load %s file: %v", envPath, err)
		log.Printf("Continuing with existing environment variables...")
	} else {
		log.Printf("Loaded environment from %s", envPath)
	}

	log.Printf("Starting Sibyl worker")
	log.Printf("Config Directory: %s", *configDir)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		log.Fatalf("Failed to initialize configuration: %v", err)
	}

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		log.Fatalf("Failed to load database config: %v", err)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			log.Printf("Error closing database client: %v", err)
		}
	}()
	log.Println("✓ Connected to PostgreSQL database")

	sharedBus, err := bus.NewRedisBus(ctx, bus.Config{
		Addr:     cfg.Bus.Addr,
		Password: cfg.Bus.Password,
		DB:       cfg.Bus.DB,
	})
	if err != nil {
		log.Fatalf("Failed to connect to bus: %v", err)
	}
	log.Println("✓ Connected to K/V bus")

	telemetryProvider, err := telemetry.Init(ctx, &telemetry.Config{
		Enabled:     getEnv("SIBYL_TRACING_ENABLED", "") == "true",
		Exporter:    getEnv("SIBYL_TRACING_EXPORTER", "none"),
		Endpoint:    os.Getenv("SIBYL_TRACING_ENDPOINT"),
		ServiceName: "sibyl-worker",
	})
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer func() { _ = telemetryProvider.Shutdown(context.Background()) }()

	slackService := slackops.NewService(slackops.ServiceConfig{
		Token:        os.Getenv("SLACK_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
	})

	approvals := approval.New(dbClient.Client, sharedBus, slackService,
		cfg.Runtime.ApprovalDefaultExpiry, cfg.Runtime.ApprovalMirrorTTL)

	llm := llmclient.New(cfg.LLM)

	subprocess := &agentrunner.CLISubprocess{
		Command: getEnv("AGENT_COMMAND", "claude"),
		Args:    strings.Fields(os.Getenv("AGENT_ARGS")),
	}
	agents := agentrunner.New(dbClient.Client, dbClient.DB(), sharedBus, approvals,
		subprocess, llm,
		cfg.Runtime.HeartbeatInterval, cfg.Runtime.StopPollInterval,
		cfg.Runtime.HeartbeatStaleThreshold)

	jobQueue := jobs.NewQueue(dbClient.DB(), sharedBus)
	agents.SetOnSpawned(func(ctx context.Context, agentID string, in agentrunner.SpawnInput) {
		payload := map[string]any{"agent_id": agentID, "spawn": in}
		if _, err := jobQueue.Enqueue(ctx, in.OrgID, jobs.KindRunAgentExecution, payload); err != nil {
			log.Printf("Failed to enqueue agent execution job for %s: %v", agentID, err)
		}
	})

	store := entity.NewStore(dbClient.Client, sharedBus, jobQueue)

	gateRunner := gates.New()
	notify := &metaNotify{}
	orchestrator := taskorch.New(dbClient.Client, agents, approvals, gateRunner,
		llm, slackService, notify, cfg.Runtime.GateTimeout)
	scheduler := metaorch.New(dbClient.Client, sharedBus, orchestrator,
		func(_ context.Context, metaID string, spentUSD, budgetUSD float64) {
			log.Printf("Budget alert: meta orchestrator %s spent $%.2f of $%.2f", metaID, spentUSD, budgetUSD)
		})
	notify.sched = scheduler

	tracker := jobs.NewWorkflowTracker(cfg.Jobs.ReminderInterval, cfg.Jobs.ReminderMinMessages)
	backups := jobs.NewBackupService(dbClient.DB(), store, jobs.BackupConfig{
		DB:                   dbConfig,
		ArchiveDir:           getEnv("BACKUP_DIR", "./backups"),
		DefaultRetentionDays: cfg.Retention.BackupRetentionDays,
	})

	handlers := jobs.NewHandlers(dbClient.Client, dbClient.DB(), agents, store,
		orchestrator, llm, tracker, backups)

	hostname, _ := os.Hostname()
	if hostname == "" {
		hostname = "sibyl-worker"
	}
	pool := jobs.NewPool(hostname, jobQueue, handlers.Register(),
		telemetryProvider.Metrics, jobs.PoolConfig{
			WorkerCount:        cfg.Jobs.WorkerCount,
			BatchSize:          1,
			PollInterval:       cfg.Jobs.PollInterval,
			PollIntervalJitter: cfg.Jobs.PollIntervalJitter,
		})
	pool.Start(ctx)
	log.Printf("✓ Job pool started (%d workers)", cfg.Jobs.WorkerCount)

	dispatcher := sandbox.NewDispatcher(dbClient.DB(), cfg.Sandbox)

	scheduledLoops := cron.New()
	_, err = scheduledLoops.AddFunc("@every 1m", func() {
		result, err := dispatcher.ReapStaleTasks(ctx, cfg.Runtime.DispatchTTL, cfg.Runtime.AckTTL)
		if err != nil {
			log.Printf("Sandbox task reaper failed: %v", err)
			return
		}
		if result.Requeued > 0 || result.Failed > 0 {
			log.Printf("Reaper requeued %d and failed %d stale sandbox tasks", result.Requeued, result.Failed)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule sandbox task reaper: %v", err)
	}
	_, err = scheduledLoops.AddFunc("@every 1m", func() {
		if err := backups.RunScheduled(ctx); err != nil {
			log.Printf("Scheduled backup pass failed: %v", err)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule backup pass: %v", err)
	}
	scheduledLoops.Start()
	defer scheduledLoops.Stop()

	metricsPort := getEnv("WORKER_METRICS_PORT", "8081")
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(telemetryProvider.Registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := sharedBus.Ping(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	go func() {
		log.Printf("Metrics listening on :%s", metricsPort)
		if err := http.ListenAndServe(":"+metricsPort, mux); err != nil {
			log.Printf("Metrics server stopped: %v", err)
		}
	}()

	log.Println("✓ Worker running")
	<-ctx.Done()

	log.Println("Shutting down, draining job pool...")
	pool.Stop()
	log.Println("Worker stopped")
}
