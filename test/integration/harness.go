// Package integration boots the full agent runtime — real actors, consensus,
// router, and lifecycle manager — against the in-memory store and a scripted
// model pool, and drives it through complete task flows.
package integration

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/agent"
	"github.com/conclave-run/conclave/pkg/consensus"
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
	"github.com/conclave-run/conclave/pkg/store/memstore"
	"github.com/conclave-run/conclave/pkg/web"
)

const waitTrueReply = `{"action": "wait", "params": {"wait": true}, "reasoning": "nothing to do"}`

// reply produces one model turn. Static text covers most scripts; function
// replies derive their output from the request when the script needs runtime
// values, such as a child ID the agent only learns mid-task.
type reply func(req llm.CompletionRequest) string

func text(s string) reply {
	return func(llm.CompletionRequest) string { return s }
}

// route binds a reply queue to one agent, identified by a substring of its
// system prompt (the task description works well).
type route struct {
	match   string
	replies []reply
}

// ScriptedLLM serves pre-scripted completions. Agents whose script has run
// out, and agents with no script at all, get a wait so they park instead of
// spinning.
type ScriptedLLM struct {
	mu     sync.Mutex
	routes []*route
}

func NewScriptedLLM() *ScriptedLLM {
	return &ScriptedLLM{}
}

// Script registers a reply queue for the agent whose system prompt contains
// match.
func (s *ScriptedLLM) Script(match string, replies ...reply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.routes {
		if r.match == match {
			r.replies = append(r.replies, replies...)
			return
		}
	}
	s.routes = append(s.routes, &route{match: match, replies: replies})
}

func (s *ScriptedLLM) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.mu.Lock()
	var next reply
	for _, r := range s.routes {
		if len(r.replies) > 0 && strings.Contains(req.System, r.match) {
			next = r.replies[0]
			r.replies = r.replies[1:]
			break
		}
	}
	s.mu.Unlock()

	txt := waitTrueReply
	if next != nil {
		txt = next(req)
	}
	return &llm.CompletionResponse{
		Text:  txt,
		Model: req.Model,
		Cost:  decimal.RequireFromString("0.001"),
	}, nil
}

func (s *ScriptedLLM) Provider() string { return "scripted" }

// spawnResult is one completed background spawn.
type spawnResult struct {
	parentID string
	childID  string
	err      error
}

// Harness is a complete runtime instance on the in-memory store.
type Harness struct {
	Manager  *lifecycle.Manager
	Store    *memstore.Store
	Registry *registry.Registry
	Bus      *events.Bus
	LLM      *ScriptedLLM

	spawns chan spawnResult
	t      *testing.T
}

func (h *Harness) SpawnFinished(parentID, childID string, err error) {
	h.spawns <- spawnResult{parentID: parentID, childID: childID, err: err}
}

// testProfiles serves one fixed profile with a single-model pool, so every
// consensus round has exactly one candidate and merges trivially.
type testProfiles struct{}

func (testProfiles) Profile(name string) (lifecycle.Profile, bool) {
	if name == "default" {
		return testProfiles{}.Default(), true
	}
	return lifecycle.Profile{}, false
}

func (testProfiles) Default() lifecycle.Profile {
	return lifecycle.Profile{
		Name:             "default",
		ModelPool:        []string{"model-a"},
		CapabilityGroups: []string{"core", "delegation", "system", "secrets", "skills"},
	}
}

// NewHarness wires the runtime the way main does, substituting the scripted
// model pool and the in-memory store.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	logger := slog.Default()

	st := memstore.New()
	bus := events.NewBus(st, logger)
	agentRegistry := registry.New()
	scrubber := masking.NewScrubber(logger)
	secretStore := secrets.NewStore(scrubber, logger)
	library, err := skills.NewLibrary(t.TempDir(), logger)
	require.NoError(t, err)
	mcpService := mcp.NewService(logger)
	t.Cleanup(mcpService.Shutdown)
	shellService := shell.NewService(10*time.Millisecond, nil, logger)
	t.Cleanup(shellService.Shutdown)

	scripted := NewScriptedLLM()
	actionRegistry := actions.NewRegistry()
	engine := consensus.NewEngine(actionRegistry, nil, logger)
	validator := actions.NewValidator(actionRegistry)

	h := &Harness{
		Store:    st,
		Registry: agentRegistry,
		Bus:      bus,
		LLM:      scripted,
		spawns:   make(chan spawnResult, 16),
		t:        t,
	}

	var actionRouter *router.Router
	h.Manager = lifecycle.NewManager(lifecycle.Deps{
		Store:    st,
		Registry: agentRegistry,
		Bus:      bus,
		Skills:   library,
		Profiles: testProfiles{},
		Observer: h,
		Factory: func(snap *models.AgentSnapshot) lifecycle.Agent {
			return agent.New(snap, agent.Deps{
				LLM:       scripted,
				Consensus: engine,
				Validator: validator,
				Actions:   actionRegistry,
				Router:    actionRouter,
				Store:     st,
				Bus:       bus,
				Logger:    logger,
			}, agent.Config{RetryBackoff: 5 * time.Millisecond})
		},
		Logger: logger,
	}, lifecycle.Config{
		RetryBackoff: 5 * time.Millisecond,
		PauseGrace:   20 * time.Millisecond,
		PausePoll:    5 * time.Millisecond,
		StopTimeout:  2 * time.Second,
	})
	t.Cleanup(h.Manager.Shutdown)

	actionRouter = router.New(router.Deps{
		Actions:  actionRegistry,
		Agents:   agentRegistry,
		Tree:     h.Manager,
		Shell:    shellService,
		MCP:      mcpService,
		Fetcher:  web.NewFetcher(time.Second, logger),
		API:      web.NewAPIClient(time.Second, 1<<16, logger),
		Secrets:  secretStore,
		Skills:   library,
		Scrubber: scrubber,
		LLM:      scripted,
		Store:    st,
		Bus:      bus,
	}, router.Config{ActionTimeout: time.Second}, logger)

	return h
}

// AwaitSpawn blocks until one background spawn finishes and returns the child
// ID, failing the test on spawn error or timeout.
func (h *Harness) AwaitSpawn() string {
	h.t.Helper()
	select {
	case res := <-h.spawns:
		require.NoError(h.t, res.err)
		return res.childID
	case <-time.After(5 * time.Second):
		h.t.Fatal("spawn did not finish in time")
		return ""
	}
}

// WaitFor polls cond until it holds or the deadline passes.
func (h *Harness) WaitFor(cond func() bool) {
	h.t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	h.t.Fatal("condition not met in time")
}

// Agent fetches the persisted snapshot for one agent.
func (h *Harness) Agent(agentID string) *models.AgentSnapshot {
	h.t.Helper()
	snap, err := h.Store.GetAgent(context.Background(), agentID)
	require.NoError(h.t, err)
	return snap
}
