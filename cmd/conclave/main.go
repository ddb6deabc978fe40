// Conclave orchestrator server: HTTP API, WebSocket event stream, and the
// agent-tree runtime behind them.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/agent"
	"github.com/conclave-run/conclave/pkg/api"
	"github.com/conclave-run/conclave/pkg/config"
	"github.com/conclave-run/conclave/pkg/consensus"
	"github.com/conclave-run/conclave/pkg/database"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/lifecycle"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/masking"
	"github.com/conclave-run/conclave/pkg/mcp"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/registry"
	"github.com/conclave-run/conclave/pkg/router"
	"github.com/conclave-run/conclave/pkg/secrets"
	"github.com/conclave-run/conclave/pkg/shell"
	"github.com/conclave-run/conclave/pkg/skills"
	"github.com/conclave-run/conclave/pkg/store"
	"github.com/conclave-run/conclave/pkg/store/entstore"
	"github.com/conclave-run/conclave/pkg/store/memstore"
	"github.com/conclave-run/conclave/pkg/version"
	"github.com/conclave-run/conclave/pkg/web"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// profileSource adapts the config registry to the lifecycle's interface.
type profileSource struct {
	reg *config.ProfileRegistry
}

func (p profileSource) Profile(name string) (lifecycle.Profile, bool) {
	cp, ok := p.reg.Get(name)
	if !ok {
		return lifecycle.Profile{}, false
	}
	return lifecycle.Profile{Name: cp.Name, ModelPool: cp.Models, CapabilityGroups: cp.Capabilities}, true
}

func (p profileSource) Default() lifecycle.Profile {
	cp := p.reg.Default()
	return lifecycle.Profile{Name: cp.Name, ModelPool: cp.Models, CapabilityGroups: cp.Capabilities}
}

func main() {
	configPath := flag.String("config",
		getEnv("CONCLAVE_CONFIG", config.ConfigFileName),
		"Path to conclave.yaml")
	memoryStore := flag.Bool("memory-store",
		os.Getenv("CONCLAVE_MEMORY_STORE") == "1",
		"Run on the in-memory store instead of PostgreSQL (development only)")
	flag.Parse()

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env")
	}

	slog.Info("Starting conclave", "version", version.Full(), "config", *configPath)

	ctx := context.Background()

	cfg, err := config.Initialize(ctx, *configPath)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// Storage: ent/Postgres in production, in-memory for development.
	var (
		st       store.Store
		dbClient *database.Client
	)
	if *memoryStore {
		slog.Warn("Using in-memory store, all state is lost on exit")
		st = memstore.New()
	} else {
		dbConfig, err := database.LoadConfigFromEnv()
		if err != nil {
			slog.Error("Failed to load database config", "error", err)
			os.Exit(1)
		}
		dbClient, err = database.NewClient(ctx, dbConfig)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		st = entstore.New(dbClient.Client)
		slog.Info("Connected to PostgreSQL database")
	}

	logger := slog.Default()

	// Event infrastructure.
	bus := events.NewBus(st, logger)
	connManager := events.NewConnectionManager(bus, cfg.Server.WSWriteTimeout.Std(), logger)

	// LLM providers. Missing keys disable a provider; the multiplexer
	// rejects calls routed to an absent backend.
	pricing := cfg.PricingTable()
	var (
		anthropicClient llm.Client
		openaiClient    llm.Client
		embedder        llm.EmbeddingClient
	)
	if key := os.Getenv(cfg.LLM.AnthropicKeyEnv); key != "" {
		client, err := llm.NewAnthropicClient(key, pricing, logger)
		if err != nil {
			slog.Error("Failed to initialize Anthropic client", "error", err)
			os.Exit(1)
		}
		anthropicClient = client
	}
	if key := os.Getenv(cfg.LLM.OpenAIKeyEnv); key != "" {
		client, err := llm.NewOpenAIClient(key, cfg.LLM.EmbeddingModel, pricing, logger)
		if err != nil {
			slog.Error("Failed to initialize OpenAI client", "error", err)
			os.Exit(1)
		}
		openaiClient = client
		embedder = client
	}
	if anthropicClient == nil && openaiClient == nil {
		slog.Error("No LLM provider configured",
			"anthropic_key_env", cfg.LLM.AnthropicKeyEnv,
			"openai_key_env", cfg.LLM.OpenAIKeyEnv)
		os.Exit(1)
	}
	mux := llm.NewMultiplexer(anthropicClient, openaiClient, embedder, logger)

	// Action machinery.
	actionRegistry := actions.NewRegistry()
	validator := actions.NewValidator(actionRegistry)
	engine := consensus.NewEngine(actionRegistry, mux, logger)

	// Agent registry and supporting services.
	agentRegistry := registry.New()
	scrubber := masking.NewScrubber(logger)
	secretStore := secrets.NewStore(scrubber, logger)
	skillLibrary, err := skills.NewLibrary(cfg.Skills.Dir, logger)
	if err != nil {
		slog.Error("Failed to open skill library", "dir", cfg.Skills.Dir, "error", err)
		os.Exit(1)
	}
	mcpService := mcp.NewService(logger)
	defer mcpService.Shutdown()

	// Shell completions route back to the owning agent as a message, and go
	// out on the transient event stream for observers.
	shellService := shell.NewService(cfg.Shell.SmartWait.Std(), func(ev shell.Event) {
		bus.PublishTransient("", events.ShellEventsTopic(ev.OwnerID), map[string]any{
			"type":      events.TypeShellFinished,
			"check_id":  ev.CheckID,
			"status":    string(ev.Status),
			"exit_code": ev.ExitCode,
		})
		handle, err := agentRegistry.Get(ev.OwnerID)
		if err != nil {
			return
		}
		if owner, ok := handle.(*agent.Actor); ok {
			owner.PostUserMessage(fmt.Sprintf(
				"Background command %s finished with status %s (exit code %d).",
				ev.CheckID, ev.Status, ev.ExitCode))
		}
	}, logger)
	defer shellService.Shutdown()

	// The actor factory and the router reference each other through the
	// lifecycle manager: the router's tree operations land on the manager,
	// and the manager builds actors around the router. The router pointer is
	// set before any actor starts.
	var actionRouter *router.Router

	agentCfg := agent.Config{
		MailboxSize:  cfg.Agent.MailboxSize,
		MaxTokens:    cfg.Agent.MaxTokens,
		Temperature:  cfg.Agent.Temperature,
		LLMAttempts:  cfg.LLM.Attempts,
		RetryBackoff: cfg.LLM.RetryBackoff.Std(),
	}
	manager := lifecycle.NewManager(lifecycle.Deps{
		Store:    st,
		Registry: agentRegistry,
		Bus:      bus,
		Skills:   skillLibrary,
		Profiles: profileSource{reg: cfg.ProfileRegistry},
		Factory: func(snap *models.AgentSnapshot) lifecycle.Agent {
			return agent.New(snap, agent.Deps{
				LLM:       mux,
				Consensus: engine,
				Validator: validator,
				Actions:   actionRegistry,
				Router:    actionRouter,
				Store:     st,
				Bus:       bus,
				Logger:    logger,
			}, agentCfg)
		},
		Logger: logger,
	}, lifecycle.Config{
		SpawnAttempts: cfg.Lifecycle.SpawnAttempts,
		RetryBackoff:  cfg.Lifecycle.RetryBackoff.Std(),
		PauseGrace:    cfg.Lifecycle.PauseGrace.Std(),
		StopTimeout:   cfg.Lifecycle.StopTimeout.Std(),
	})
	defer manager.Shutdown()

	actionRouter = router.New(router.Deps{
		Actions:  actionRegistry,
		Agents:   agentRegistry,
		Tree:     manager,
		Shell:    shellService,
		MCP:      mcpService,
		Fetcher:  web.NewFetcher(cfg.Actions.Timeout.Std(), logger),
		API:      web.NewAPIClient(cfg.Actions.Timeout.Std(), int64(cfg.Actions.MaxResultBytes), logger),
		Secrets:  secretStore,
		Skills:   skillLibrary,
		Scrubber: scrubber,
		LLM:      mux,
		Store:    st,
		Bus:      bus,
	}, router.Config{
		ActionTimeout:  cfg.Actions.Timeout.Std(),
		MaxResultBytes: cfg.Actions.MaxResultBytes,
		AnswerModel:    cfg.Actions.AnswerModel,
	}, logger)

	// Revive trees interrupted by the previous process before serving.
	manager.ReviveAll(ctx)

	server := api.NewServer(manager, st, connManager, dbClient, cfg.Server.AllowedWSOrigins, logger)
	httpServer := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           server.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.Server.ListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
