// Package agent implements the agent actor: a single goroutine that owns one
// agent's state and processes its mailbox in FIFO order. Everything another
// component wants from an agent goes through a mailbox message; the actor
// goroutine is the only writer of its snapshot while it is alive.
package agent

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/consensus"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/router"
	"github.com/conclave-run/conclave/pkg/store"
)

// Defaults applied when Config leaves fields zero.
const (
	DefaultMailboxSize  = 1024
	DefaultLLMAttempts  = 3
	DefaultRetryBackoff = 100 * time.Millisecond
	persistTimeout      = 5 * time.Second
)

// Dispatcher executes one consensus-selected action. Satisfied by
// *router.Router.
type Dispatcher interface {
	Dispatch(ctx context.Context, inv router.Invocation) router.ActionResult
}

// Deps are the collaborators an actor works through.
type Deps struct {
	LLM       llm.Client
	Consensus *consensus.Engine
	Validator *actions.Validator
	Actions   *actions.Registry
	Router    Dispatcher
	Store     store.Store
	Bus       *events.Bus
	Logger    *slog.Logger
}

// Config tunes actor behavior.
type Config struct {
	MailboxSize  int
	MaxTokens    int
	Temperature  float64
	LLMAttempts  int           // consecutive all-model failures before giving up
	RetryBackoff time.Duration // scaled by the attempt number, plus jitter
}

// Actor is one live agent. Create with New, drive with Start, observe
// termination through Done.
type Actor struct {
	state *models.AgentSnapshot
	deps  Deps
	cfg   Config
	log   *slog.Logger

	mailbox chan message
	done    chan struct{}
	runCtx  context.Context

	// Below are owned by the actor goroutine.
	waitTimer   *time.Timer
	llmFailures int
	recovering  bool
	finalStatus models.AgentStatus

	startOnce sync.Once
}

// New builds an actor around a snapshot. The snapshot is taken over by the
// actor; callers must not retain it.
func New(snap *models.AgentSnapshot, deps Deps, cfg Config) *Actor {
	if cfg.MailboxSize <= 0 {
		cfg.MailboxSize = DefaultMailboxSize
	}
	if cfg.LLMAttempts <= 0 {
		cfg.LLMAttempts = DefaultLLMAttempts
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = DefaultRetryBackoff
	}
	if snap.ModelHistories == nil {
		snap.ModelHistories = make(map[string][]models.HistoryEntry)
	}
	return &Actor{
		state:       snap,
		deps:        deps,
		cfg:         cfg,
		log:         deps.Logger.With(slog.String("component", "agent"), slog.String("agent_id", snap.AgentID)),
		mailbox:     make(chan message, cfg.MailboxSize),
		done:        make(chan struct{}),
		finalStatus: models.AgentStatusStopped,
	}
}

// Handle surface used by the registry and the router.

func (a *Actor) AgentID() string  { return a.state.AgentID }
func (a *Actor) TaskID() string   { return a.state.TaskID }
func (a *Actor) ParentID() string { return a.state.ParentID }

// Start launches the actor goroutine. The context bounds the actor's whole
// life: cancelling it behaves like a stop request.
func (a *Actor) Start(ctx context.Context) {
	a.startOnce.Do(func() {
		a.runCtx = ctx
		go a.run(ctx)
	})
}

// Done closes when the actor goroutine has exited and the final snapshot has
// been persisted.
func (a *Actor) Done() <-chan struct{} { return a.done }

// PostUserMessage delivers a user message into the mailbox.
func (a *Actor) PostUserMessage(content string) {
	a.post(message{kind: msgUserMessage, content: content})
}

// DeliverMessage implements the router's message sink for agent-to-agent
// sends.
func (a *Actor) DeliverMessage(fromAgentID, content string) {
	a.post(message{kind: msgAgentMessage, from: fromAgentID, content: content})
}

// TriggerConsensus requests a consensus cycle. Queued triggers collapse:
// many pending requests produce one cycle over the union of pending inputs.
func (a *Actor) TriggerConsensus() {
	a.post(message{kind: msgTrigger})
}

// PostActionResult delivers an async action completion.
func (a *Actor) PostActionResult(res router.ActionResult) {
	a.post(message{kind: msgActionResult, result: res})
}

// PostBatchSubResult delivers per-sub-action batch bookkeeping. It never
// triggers a cycle.
func (a *Actor) PostBatchSubResult(sub router.BatchSubResult) {
	a.post(message{kind: msgBatchSubResult, subResult: sub})
}

// NotifyChildSpawned records a child as live. Idempotent: duplicate
// notifications for the same child are absorbed.
func (a *Actor) NotifyChildSpawned(childID string) {
	a.post(message{kind: msgChildSpawned, childID: childID})
}

// NotifyChildDismissed removes a child from the live set.
func (a *Actor) NotifyChildDismissed(childID string) {
	a.post(message{kind: msgChildDismissed, childID: childID})
}

// NotifySpawnFailed reports that a spawn acknowledged earlier never came up.
func (a *Actor) NotifySpawnFailed(childID, reason string) {
	a.post(message{kind: msgSpawnFailed, childID: childID, reason: reason})
}

// SetBudget replaces the agent's own budget record (parent adjusted this
// agent's allocation, or restore rebuilt it).
func (a *Actor) SetBudget(b budget.Budget) {
	a.post(message{kind: msgSetBudget, budget: b})
}

// CommitBudget moves amount into the committed column. Negative amounts
// shrink it. The lifecycle validates before posting; the actor just applies.
func (a *Actor) CommitBudget(amount decimal.Decimal) {
	a.post(message{kind: msgCommitBudget, amount: amount})
}

// ReleaseBudget returns a dismissed child's escrow.
func (a *Actor) ReleaseBudget(childAllocated, childSpent decimal.Decimal) {
	a.post(message{kind: msgReleaseBudget, childAllocated: childAllocated, childSpent: childSpent})
}

// BeginDismissing marks the agent as dismissing, which blocks further
// spawns under it.
func (a *Actor) BeginDismissing() {
	a.post(message{kind: msgSetDismissing})
}

// Stop requests termination. Messages already queued are processed first;
// queued consensus triggers are drained without running.
func (a *Actor) Stop() {
	a.post(message{kind: msgStop, finalStatus: models.AgentStatusStopped})
}

// StopForPause is Stop with a paused terminal status, so a later restore
// can tell paused agents from dismissed ones.
func (a *Actor) StopForPause() {
	a.post(message{kind: msgStop, finalStatus: models.AgentStatusPaused})
}

// State returns a deep copy of the current snapshot. Served through the
// mailbox while the actor is alive; directly once it has stopped.
func (a *Actor) State(ctx context.Context) (*models.AgentSnapshot, error) {
	reply := make(chan *models.AgentSnapshot, 1)
	select {
	case <-a.done:
		return a.state.Clone(), nil
	case a.mailbox <- message{kind: msgGetState, reply: reply}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	select {
	case snap := <-reply:
		return snap, nil
	case <-a.done:
		return a.state.Clone(), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// post enqueues a message unless the actor has already exited.
func (a *Actor) post(m message) {
	select {
	case <-a.done:
		return
	default:
	}
	select {
	case a.mailbox <- m:
	case <-a.done:
	}
}

// run is the actor loop. One message at a time, FIFO; when any processed
// message asked for a consensus cycle, the cycle runs only after the queue
// is empty, so a burst of triggers produces a single cycle over all of its
// inputs.
func (a *Actor) run(ctx context.Context) {
	defer close(a.done)

	wantCycle := a.state.Status == models.AgentStatusStarting
	for {
		var msg message
		if wantCycle {
			select {
			case msg = <-a.mailbox:
			case <-ctx.Done():
				a.finalize()
				return
			default:
				wantCycle = a.runCycle(ctx)
				continue
			}
		} else {
			select {
			case msg = <-a.mailbox:
			case <-ctx.Done():
				a.finalize()
				return
			}
		}

		want, stop := a.apply(ctx, msg)
		if stop {
			a.finalize()
			return
		}
		wantCycle = wantCycle || want
	}
}

// apply processes one message and reports whether it wants a cycle and
// whether the actor should stop.
func (a *Actor) apply(ctx context.Context, m message) (wantCycle, stop bool) {
	switch m.kind {
	case msgUserMessage:
		a.appendHistory(models.HistoryUser, "User: "+m.content)
		return true, false

	case msgAgentMessage:
		a.appendHistory(models.HistoryUser, fmt.Sprintf("Message from agent %s: %s", m.from, m.content))
		return true, false

	case msgTrigger, msgContinue:
		return true, false

	case msgActionResult:
		a.incorporateResult(m.result)
		a.persist(ctx)
		return true, false

	case msgBatchSubResult:
		a.appendHistory(models.HistoryUser, formatBatchSubResult(m.subResult))
		return false, false

	case msgChildSpawned:
		if !containsID(a.state.Children, m.childID) {
			a.state.Children = append(a.state.Children, m.childID)
		}
		a.appendHistory(models.HistoryUser, "Child agent "+m.childID+" is now running.")
		a.persist(ctx)
		return true, false

	case msgChildDismissed:
		a.state.Children = removeID(a.state.Children, m.childID)
		a.appendHistory(models.HistoryUser, "Child agent "+m.childID+" has been dismissed.")
		a.persist(ctx)
		return true, false

	case msgSpawnFailed:
		a.state.Children = removeID(a.state.Children, m.childID)
		a.appendHistory(models.HistoryUser,
			fmt.Sprintf("Spawning child %s failed: %s", m.childID, m.reason))
		a.persist(ctx)
		return true, false

	case msgSetBudget:
		a.state.BudgetData = m.budget
		a.persist(ctx)
		return false, false

	case msgCommitBudget:
		if a.state.BudgetData.Capped() {
			a.state.BudgetData.Committed = a.state.BudgetData.Committed.Add(m.amount)
			if a.state.BudgetData.Committed.IsNegative() {
				a.state.BudgetData.Committed = decimal.Zero
			}
		}
		a.persist(ctx)
		return false, false

	case msgReleaseBudget:
		released, unspent := budget.ReleaseAllocation(a.state.BudgetData, m.childAllocated, m.childSpent)
		a.state.BudgetData = released
		if unspent.IsPositive() {
			a.recordAbsorbedCost(ctx, unspent)
		}
		a.persist(ctx)
		return false, false

	case msgSetDismissing:
		a.state.Dismissing = true
		a.persist(ctx)
		return false, false

	case msgWaitExpired:
		a.appendHistory(models.HistoryUser, "Wait period expired.")
		a.deps.Bus.PublishTransient(a.state.TaskID, events.WaitEventsTopic(a.state.AgentID), map[string]any{
			"type":     events.TypeWaitExpired,
			"agent_id": a.state.AgentID,
		})
		return true, false

	case msgStop:
		a.finalStatus = m.finalStatus
		return false, true

	case msgGetState:
		m.reply <- a.state.Clone()
		return false, false
	}
	return false, false
}

// finalize cancels timers, stamps the terminal status, and persists the
// final snapshot. Best-effort: a failed write is logged, not fatal.
func (a *Actor) finalize() {
	a.cancelWaitTimer()
	a.state.Status = a.finalStatus
	a.persist(context.Background())
	a.log.Info("agent stopped", slog.String("status", string(a.finalStatus)))
}

// persist is the write-through: the snapshot goes to the store after every
// state change, so a crash loses at most the in-flight cycle.
func (a *Actor) persist(ctx context.Context) {
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
	defer cancel()
	if err := a.deps.Store.SaveAgent(pctx, a.state.Clone()); err != nil {
		a.log.Warn("snapshot write failed", slog.Any("error", err))
	}
}

// appendHistory appends one entry to every model's history. Inputs are
// shared; only assistant turns diverge per model.
func (a *Actor) appendHistory(entryType models.HistoryEntryType, content string) {
	entry := models.HistoryEntry{Type: entryType, Content: content, Timestamp: time.Now()}
	for _, model := range a.state.ModelPool {
		a.state.ModelHistories[model] = append(a.state.ModelHistories[model], entry)
	}
}

func (a *Actor) appendModelHistory(model string, entryType models.HistoryEntryType, content string) {
	entry := models.HistoryEntry{Type: entryType, Content: content, Timestamp: time.Now()}
	a.state.ModelHistories[model] = append(a.state.ModelHistories[model], entry)
}

func (a *Actor) recordAbsorbedCost(ctx context.Context, unspent decimal.Decimal) {
	cost := &models.CostRecord{
		ID:          newID(),
		TaskID:      a.state.TaskID,
		AgentID:     a.state.AgentID,
		Kind:        models.CostKindAbsorbed,
		Amount:      unspent.Neg(),
		Description: "unspent child allocation returned",
		CreatedAt:   time.Now(),
	}
	if err := a.deps.Store.AddCost(ctx, cost); err != nil {
		a.log.Warn("absorbed cost record failed", slog.Any("error", err))
	}
}

func (a *Actor) scheduleWait(seconds float64) {
	a.cancelWaitTimer()
	d := time.Duration(seconds * float64(time.Second))
	a.waitTimer = time.AfterFunc(d, func() {
		a.post(message{kind: msgWaitExpired})
	})
}

func (a *Actor) cancelWaitTimer() {
	if a.waitTimer != nil {
		a.waitTimer.Stop()
		a.waitTimer = nil
	}
}

// scheduleRetry re-queues a cycle after a backoff that grows with the
// attempt number, jittered so sibling agents do not retry in lockstep.
func (a *Actor) scheduleRetry(attempt int) {
	backoff := time.Duration(attempt)*a.cfg.RetryBackoff +
		time.Duration(rand.Int63n(int64(a.cfg.RetryBackoff)))
	time.AfterFunc(backoff, func() {
		a.post(message{kind: msgContinue})
	})
}

func containsID(ids []string, id string) bool {
	for _, e := range ids {
		if e == id {
			return true
		}
	}
	return false
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, e := range ids {
		if e != id {
			out = append(out, e)
		}
	}
	return out
}
