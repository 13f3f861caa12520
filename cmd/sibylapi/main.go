// Sibyl API server - owns orchestrator lifecycle decisions, the approval
// surface, and sandbox lifecycle; long-running agent streams belong to
// cmd/sibylworker.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"

	"github.com/sibyl-run/sibyl/pkg/agentrunner"
	"github.com/sibyl-run/sibyl/pkg/approval"
	"github.com/sibyl-run/sibyl/pkg/bus"
	"github.com/sibyl-run/sibyl/pkg/config"
	"github.com/sibyl-run/sibyl/pkg/database"
	"github.com/sibyl-run/sibyl/pkg/entity"
	"github.com/sibyl-run/sibyl/pkg/events"
	"github.com/sibyl-run/sibyl/pkg/jobs"
	"github.com/sibyl-run/sibyl/pkg/llmclient"
	"github.com/sibyl-run/sibyl/pkg/messagebus"
	"github.com/sibyl-run/sibyl/pkg/metaorch"
	"github.com/sibyl-run/sibyl/pkg/sandbox"
	"github.com/sibyl-run/sibyl/pkg/sandbox/podruntime"
	"github.com/sibyl-run/sibyl/pkg/settings"
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

// metaNotify breaks the taskorch/metaorch construction cycle: the Task
// Orchestrator needs a MetaNotifier at construction time, and the Meta
// Orchestrator needs the Task Orchestrator instance to spawn from.
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

	httpPort := getEnv("HTTP_PORT", "8080")
	ginMode := getEnv("GIN_MODE", "debug")
	gin.SetMode(ginMode)

	log.Printf("Starting Sibyl API")
	log.Printf("HTTP Port: %s", httpPort)
	log.Printf("Config Directory: %s", *configDir)

	ctx := context.Background()

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
		ServiceName: "sibyl-api",
	})
	if err != nil {
		log.Fatalf("Failed to initialize telemetry: %v", err)
	}
	defer func() { _ = telemetryProvider.Shutdown(ctx) }()

	slackService := slackops.NewService(slackops.ServiceConfig{
		Token:        os.Getenv("SLACK_TOKEN"),
		Channel:      os.Getenv("SLACK_CHANNEL"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
	})
	if slackService != nil {
		log.Println("✓ Slack notifications enabled")
	}

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

	interAgent := messagebus.New(dbClient.DB(), sharedBus)
	settingsService := settings.New(dbClient.DB())

	// Passed to the full route handlers as they land; the operational
	// surface below is the only routing this process owns today.
	_ = store
	_ = interAgent
	_ = settingsService

	var runtime podruntime.Runtime
	if cfg.Sandbox.Enabled {
		k8s, err := podruntime.NewK8sRuntime()
		if err != nil {
			if cfg.Sandbox.K8sRequired {
				log.Fatalf("Failed to initialize pod runtime: %v", err)
			}
			log.Printf("Warning: pod runtime unavailable, sandboxes will surface errors: %v", err)
			runtime = podruntime.Unavailable{Err: err}
		} else {
			runtime = k8s
		}
	}
	controller := sandbox.NewController(dbClient.DB(), cfg.Sandbox, runtime)
	dispatcher := sandbox.NewDispatcher(dbClient.DB(), cfg.Sandbox)

	eventManager := events.NewManager(10 * time.Second)
	feeder := events.NewFeeder(sharedBus, eventManager)
	go feeder.Run(ctx, "inter_agent_message")

	go agents.RunHealthLoop(ctx, cfg.Runtime.HealthLoopInterval)

	scheduledLoops := cron.New()
	if cfg.Sandbox.Enabled {
		reconcileEvery := cfg.Sandbox.ReconcileInterval(cfg.Runtime)
		_, err = scheduledLoops.AddFunc("@every "+reconcileEvery.String(), func() {
			if err := controller.Reconcile(ctx); err != nil {
				log.Printf("Sandbox reconcile failed: %v", err)
			}
		})
		if err != nil {
			log.Fatalf("Failed to schedule sandbox reconcile loop: %v", err)
		}
	}
	_, err = scheduledLoops.AddFunc("@every "+cfg.Retention.ApprovalSweepInterval.String(), func() {
		if n, err := approvals.ExpireStale(ctx); err != nil {
			log.Printf("Approval sweep failed: %v", err)
		} else if n > 0 {
			log.Printf("Expired %d stale approvals", n)
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule approval sweep: %v", err)
	}
	scheduledLoops.Start()
	defer scheduledLoops.Stop()

	log.Println("✓ Services initialized")

	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(reqCtx, dbClient.DB())
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": dbHealth,
				"error":    err.Error(),
			})
			return
		}
		if err := sharedBus.Ping(reqCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": dbHealth,
				"bus":      "unreachable",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"database": dbHealth,
			"bus":      "connected",
			"services": gin.H{
				"approvals":     "ready",
				"agents":        "ready",
				"orchestrators": "ready",
				"sandboxes":     cfg.Sandbox.Enabled,
			},
		})
	})

	router.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	router.GET("/debug/stats", func(c *gin.Context) {
		depth, err := jobQueue.QueueDepth(c.Request.Context())
		if err != nil {
			depth = -1
		}
		c.JSON(http.StatusOK, gin.H{
			"websocket_connections": eventManager.ActiveConnections(),
			"job_queue_depth":       depth,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(
		telemetryProvider.Registry, promhttp.HandlerOpts{})))

	router.GET("/ws", func(c *gin.Context) {
		conn, err := websocket.Accept(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		eventManager.HandleConnection(c.Request.Context(), conn)
	})

	router.POST("/internal/sandboxes/:org/rollback", func(c *gin.Context) {
		n, err := dispatcher.FailAllPending(c.Request.Context(), c.Param("org"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"failed_tasks": n})
	})

	log.Printf("HTTP server listening on :%s", httpPort)
	log.Printf("Health check available at: http://localhost:%s/health", httpPort)
	if err := router.Run(":" + httpPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
