package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/consensus"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/router"
	"github.com/conclave-run/conclave/pkg/store/memstore"
)

const waitTrueReply = `{"action": "wait", "params": {"wait": true}, "reasoning": "nothing to do"}`

// scriptLLM returns scripted replies per model, falling back to a wait so
// actors park instead of spinning when a script runs out.
type scriptLLM struct {
	mu      sync.Mutex
	replies map[string][]string
	err     error
	calls   int
	called  chan struct{}
	gate    chan struct{}
}

func newScriptLLM() *scriptLLM {
	return &scriptLLM{
		replies: make(map[string][]string),
		called:  make(chan struct{}, 64),
	}
}

func (s *scriptLLM) script(model string, replies ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[model] = append(s.replies[model], replies...)
}

func (s *scriptLLM) Complete(_ context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	s.mu.Lock()
	s.calls++
	gate := s.gate
	s.mu.Unlock()

	select {
	case s.called <- struct{}{}:
	default:
	}
	if gate != nil {
		<-gate
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	text := waitTrueReply
	if queue := s.replies[req.Model]; len(queue) > 0 {
		text = queue[0]
		s.replies[req.Model] = queue[1:]
	}
	return &llm.CompletionResponse{
		Text:  text,
		Model: req.Model,
		Cost:  decimal.RequireFromString("0.001"),
	}, nil
}

func (s *scriptLLM) Provider() string { return "script" }

func (s *scriptLLM) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

// fakeDispatch echoes actions back as successes, mimicking the router's
// wait acknowledgement shape.
type fakeDispatch struct {
	mu          sync.Mutex
	invocations []router.Invocation
}

func (f *fakeDispatch) Dispatch(_ context.Context, inv router.Invocation) router.ActionResult {
	f.mu.Lock()
	f.invocations = append(f.invocations, inv)
	f.mu.Unlock()

	outcome := map[string]any{"ok": true}
	if inv.Action.Type == actions.TypeWait {
		outcome = map[string]any{"wait": inv.Action.Params["wait"]}
	}
	return router.ActionResult{
		ActionID:   "act-1",
		ActionType: inv.Action.Type,
		Outcome:    outcome,
	}
}

func (f *fakeDispatch) dispatched() []router.Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]router.Invocation(nil), f.invocations...)
}

type actorEnv struct {
	actor    *Actor
	llm      *scriptLLM
	dispatch *fakeDispatch
	store    *memstore.Store
}

func newActorEnv(t *testing.T, pool []string, mutate func(*models.AgentSnapshot)) *actorEnv {
	t.Helper()
	logger := slog.Default()

	registry := actions.NewRegistry()
	st := memstore.New()
	script := newScriptLLM()
	dispatch := &fakeDispatch{}

	snap := &models.AgentSnapshot{
		AgentID:          "ag-1",
		TaskID:           "task-1",
		ModelPool:        pool,
		CapabilityGroups: []string{"core", "delegation", "system"},
		Status:           models.AgentStatusIdle,
		PromptFields: models.PromptFields{
			Provided: models.ProvidedFields{TaskDescription: "test the actor"},
		},
		BudgetData: budget.Unlimited(),
		InsertedAt: time.Now(),
	}
	if mutate != nil {
		mutate(snap)
	}

	a := New(snap, Deps{
		LLM:       script,
		Consensus: consensus.NewEngine(registry, nil, logger),
		Validator: actions.NewValidator(registry),
		Actions:   registry,
		Router:    dispatch,
		Store:     st,
		Bus:       events.NewBus(st, logger),
		Logger:    logger,
	}, Config{RetryBackoff: 5 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	a.Start(ctx)
	t.Cleanup(a.Stop)

	return &actorEnv{actor: a, llm: script, dispatch: dispatch, store: st}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met in time")
}

func TestCycleDispatchesAgreedAction(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)
	env.llm.script("model-a",
		`{"action": "send_message", "params": {"content": "hello"}, "reasoning": "report in"}`,
		waitTrueReply)

	env.actor.PostUserMessage("introduce yourself")

	waitFor(t, func() bool { return len(env.dispatch.dispatched()) >= 2 })
	invs := env.dispatch.dispatched()
	assert.Equal(t, actions.TypeSendMessage, invs[0].Action.Type)
	assert.Equal(t, "hello", invs[0].Action.Params["content"])
	assert.Equal(t, actions.TypeWait, invs[1].Action.Type)

	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && snap.Status == models.AgentStatusIdle
	})

	snap, err := env.actor.State(context.Background())
	require.NoError(t, err)
	history := snap.ModelHistories["model-a"]
	require.NotEmpty(t, history)
	assert.Equal(t, models.HistoryUser, history[0].Type)
	assert.Contains(t, history[0].Content, "introduce yourself")
}

func TestQueuedTriggersCollapseIntoOneCycle(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)
	gate := make(chan struct{})
	env.llm.gate = gate

	env.actor.TriggerConsensus()
	<-env.llm.called // cycle one is in flight

	for i := 0; i < 5; i++ {
		env.actor.TriggerConsensus()
	}
	close(gate)

	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && snap.Status == models.AgentStatusIdle && env.llm.callCount() >= 2
	})
	// Burst of five triggers collapses into the single follow-up cycle.
	assert.Equal(t, 2, env.llm.callCount())
}

func TestStopDrainsQueuedTriggersWithoutRunningThem(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)
	gate := make(chan struct{})
	env.llm.gate = gate

	env.actor.TriggerConsensus()
	<-env.llm.called

	for i := 0; i < 3; i++ {
		env.actor.TriggerConsensus()
	}
	env.actor.Stop()
	close(gate)

	select {
	case <-env.actor.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("actor did not stop")
	}
	assert.Equal(t, 1, env.llm.callCount())

	snap, err := env.actor.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusStopped, snap.Status)

	stored, err := env.store.GetAgent(context.Background(), "ag-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusStopped, stored.Status)
}

func TestChildTrackingIsIdempotent(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)

	env.actor.NotifyChildSpawned("ag-child")
	env.actor.NotifyChildSpawned("ag-child")

	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && len(snap.Children) > 0
	})
	snap, err := env.actor.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"ag-child"}, snap.Children)

	env.actor.NotifyChildDismissed("ag-child")
	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && len(snap.Children) == 0
	})
}

func TestDisagreementFeedsBackAndRetriesOnce(t *testing.T) {
	env := newActorEnv(t, []string{"model-a", "model-b"}, nil)
	// Same action type, exact-match param conflict: no consensus.
	env.llm.script("model-a", `{"action": "dismiss_child", "params": {"child_id": "ag-x"}}`)
	env.llm.script("model-b", `{"action": "dismiss_child", "params": {"child_id": "ag-y"}}`)

	env.actor.TriggerConsensus()

	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && snap.Status == models.AgentStatusIdle && env.llm.callCount() >= 4
	})

	snap, err := env.actor.State(context.Background())
	require.NoError(t, err)
	var sawFeedback bool
	for _, e := range snap.ModelHistories["model-a"] {
		if e.Type == models.HistoryUser && strings.Contains(e.Content, "Consensus failed") {
			sawFeedback = true
		}
	}
	assert.True(t, sawFeedback, "expected disagreement feedback in history")

	// Recovery cycle agreed on wait; the conflicting dismissal never ran.
	for _, inv := range env.dispatch.dispatched() {
		assert.NotEqual(t, actions.TypeDismissChild, inv.Action.Type)
	}
}

func TestTotalModelFailureRetriesThenIdles(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)
	env.llm.mu.Lock()
	env.llm.err = llm.ErrUnavailable
	env.llm.mu.Unlock()

	env.actor.TriggerConsensus()

	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && snap.Status == models.AgentStatusIdle && env.llm.callCount() >= DefaultLLMAttempts
	})
	assert.Equal(t, DefaultLLMAttempts, env.llm.callCount())
	assert.Empty(t, env.dispatch.dispatched())
}

func TestTimedWaitRetriggersOnExpiry(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)
	env.llm.script("model-a",
		`{"action": "wait", "params": {"wait": 0.02}, "reasoning": "brief pause"}`,
		waitTrueReply)

	env.actor.TriggerConsensus()

	waitFor(t, func() bool { return env.llm.callCount() >= 2 })
	snap, err := env.actor.State(context.Background())
	require.NoError(t, err)
	var expired bool
	for _, e := range snap.ModelHistories["model-a"] {
		if strings.Contains(e.Content, "Wait period expired") {
			expired = true
		}
	}
	assert.True(t, expired)
}

func TestBudgetMessagesApplyWithoutCycling(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, func(s *models.AgentSnapshot) {
		s.BudgetData = budget.Root(decimal.NewFromInt(100))
	})

	env.actor.CommitBudget(decimal.NewFromInt(30))
	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && snap.BudgetData.Committed.Equal(decimal.NewFromInt(30))
	})

	// Child allocated 30, spent 10: escrow drops to zero and the unspent 20
	// comes back as a negative absorbed ledger row.
	env.actor.ReleaseBudget(decimal.NewFromInt(30), decimal.NewFromInt(10))
	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && snap.BudgetData.Committed.IsZero()
	})

	sum, err := env.store.SumAgentCosts(context.Background(), "task-1", "ag-1")
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(-20)), sum.String())
	assert.Zero(t, env.llm.callCount())
}

func TestAsyncActionResultUpdatesTodos(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)

	env.actor.PostActionResult(router.ActionResult{
		ActionID:   "act-9",
		ActionType: actions.TypeTodo,
		Outcome: map[string]any{
			"items": []any{
				map[string]any{"content": "write tests", "state": "pending"},
				map[string]any{"content": "ship", "state": "todo"},
			},
		},
	})

	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && len(snap.Todos) == 2
	})
	snap, err := env.actor.State(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "write tests", snap.Todos[0].Content)
	assert.Equal(t, models.TodoStatePending, snap.Todos[0].State)
}

func TestBatchSubResultsNeverTriggerCycles(t *testing.T) {
	env := newActorEnv(t, []string{"model-a"}, nil)

	for i := 0; i < 3; i++ {
		env.actor.PostBatchSubResult(router.BatchSubResult{
			ParentActionID: "batch-1",
			SubActionID:    fmt.Sprintf("sub-%d", i),
			ActionType:     actions.TypeShell,
		})
	}

	waitFor(t, func() bool {
		snap, err := env.actor.State(context.Background())
		return err == nil && len(snap.ModelHistories["model-a"]) == 3
	})
	assert.Zero(t, env.llm.callCount())
}
