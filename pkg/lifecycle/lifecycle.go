// Package lifecycle is the tree lifecycle controller: it starts and stops
// agent actors, walks spawn and dismissal through their background workers,
// and drives whole-task transitions (create, pause, restore, delete, boot
// revival). It is the only component that registers or unregisters agents.
package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/registry"
	"github.com/conclave-run/conclave/pkg/skills"
	"github.com/conclave-run/conclave/pkg/store"
)

var (
	// ErrAllAgentsFailed reports a restore in which not a single persisted
	// agent came back up.
	ErrAllAgentsFailed = errors.New("all_agents_failed")

	// ErrUnknownProfile reports a profile name with no configuration entry.
	ErrUnknownProfile = errors.New("unknown profile")

	// ErrNoRootAgent reports a task with no live root to deliver to.
	ErrNoRootAgent = errors.New("no live root agent")
)

// Defaults applied when Config leaves fields zero.
const (
	DefaultSpawnAttempts = 3
	DefaultRetryBackoff  = 100 * time.Millisecond
	DefaultPauseGrace    = 250 * time.Millisecond
	DefaultStopTimeout   = 5 * time.Second
	DefaultPausePoll     = 50 * time.Millisecond
)

// Agent is the lifecycle's view of a live actor. *agent.Actor satisfies it.
type Agent interface {
	AgentID() string
	TaskID() string
	ParentID() string

	Start(ctx context.Context)
	Stop()
	StopForPause()
	Done() <-chan struct{}
	State(ctx context.Context) (*models.AgentSnapshot, error)

	PostUserMessage(content string)
	TriggerConsensus()
	NotifyChildSpawned(childID string)
	NotifyChildDismissed(childID string)
	NotifySpawnFailed(childID, reason string)
	SetBudget(b budget.Budget)
	CommitBudget(amount decimal.Decimal)
	ReleaseBudget(childAllocated, childSpent decimal.Decimal)
	BeginDismissing()
}

// ActorFactory builds a live actor around a snapshot. Wired in main so the
// lifecycle does not depend on the actor's collaborator set.
type ActorFactory func(snap *models.AgentSnapshot) Agent

// Profile names a model pool and capability set agents run under.
type Profile struct {
	Name             string
	ModelPool        []string
	CapabilityGroups []string
}

// ProfileSource resolves profile names. Implemented by the config layer.
type ProfileSource interface {
	Profile(name string) (Profile, bool)
	Default() Profile
}

// SpawnObserver is notified when a background spawn finishes, success or
// not. Optional; used by tests that must not poll.
type SpawnObserver interface {
	SpawnFinished(parentID, childID string, err error)
}

// Deps are the manager's collaborators.
type Deps struct {
	Store    store.Store
	Registry *registry.Registry
	Bus      *events.Bus
	Skills   *skills.Library
	Profiles ProfileSource
	Factory  ActorFactory
	Observer SpawnObserver // optional
	Logger   *slog.Logger
}

// Config tunes worker behavior.
type Config struct {
	SpawnAttempts int
	RetryBackoff  time.Duration
	PauseGrace    time.Duration
	StopTimeout   time.Duration
	PausePoll     time.Duration
}

// Manager is the tree lifecycle controller. It implements router.TreeOps.
type Manager struct {
	deps Deps
	cfg  Config
	log  *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu         sync.Mutex
	dismissing map[string]bool

	workers sync.WaitGroup
}

func NewManager(deps Deps, cfg Config) *Manager {
	if cfg.SpawnAttempts <= 0 {
		cfg.SpawnAttempts = DefaultSpawnAttempts
	}
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = DefaultRetryBackoff
	}
	if cfg.PauseGrace <= 0 {
		cfg.PauseGrace = DefaultPauseGrace
	}
	if cfg.StopTimeout <= 0 {
		cfg.StopTimeout = DefaultStopTimeout
	}
	if cfg.PausePoll <= 0 {
		cfg.PausePoll = DefaultPausePoll
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Manager{
		deps:       deps,
		cfg:        cfg,
		log:        deps.Logger.With(slog.String("component", "lifecycle")),
		ctx:        ctx,
		cancel:     cancel,
		dismissing: make(map[string]bool),
	}
}

// Shutdown stops background workers. Live actors are not terminated; callers
// pause tasks first when a clean drain matters.
func (m *Manager) Shutdown() {
	m.cancel()
	m.workers.Wait()
}

// startAgent builds, registers, and starts one actor, and arranges for its
// registry entry to disappear when it terminates. The initial message is
// queued before the actor goroutine launches so it precedes everything else
// in the mailbox.
func (m *Manager) startAgent(snap *models.AgentSnapshot, initialMessage string) Agent {
	actor := m.deps.Factory(snap)
	m.deps.Registry.Register(actor)
	if initialMessage != "" {
		actor.PostUserMessage(initialMessage)
	}
	actor.Start(m.ctx)

	go func() {
		<-actor.Done()
		m.deps.Registry.UnregisterHandle(actor)
	}()
	return actor
}

// confirmBoot performs the initial synchronous state read that proves the
// actor loop is serving its mailbox.
func (m *Manager) confirmBoot(a Agent) error {
	ctx, cancel := context.WithTimeout(m.ctx, m.cfg.StopTimeout)
	defer cancel()
	_, err := a.State(ctx)
	return err
}

// liveAgent fetches a registered handle as an Agent.
func (m *Manager) liveAgent(agentID string) (Agent, bool) {
	handle, err := m.deps.Registry.Get(agentID)
	if err != nil {
		return nil, false
	}
	a, ok := handle.(Agent)
	return a, ok
}

// stopAndWait stops one agent and waits for its goroutine to exit, bounded
// by the stop timeout.
func (m *Manager) stopAndWait(a Agent, forPause bool) {
	if forPause {
		a.StopForPause()
	} else {
		a.Stop()
	}
	select {
	case <-a.Done():
	case <-time.After(m.cfg.StopTimeout):
		m.log.Warn("agent did not stop in time", slog.String("agent_id", a.AgentID()))
	}
	m.deps.Registry.UnregisterHandle(a)
}

func (m *Manager) setDismissing(agentID string, v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v {
		m.dismissing[agentID] = true
	} else {
		delete(m.dismissing, agentID)
	}
}

func (m *Manager) isDismissing(agentID string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dismissing[agentID]
}

func (m *Manager) notifyObserver(parentID, childID string, err error) {
	if m.deps.Observer != nil {
		m.deps.Observer.SpawnFinished(parentID, childID, err)
	}
}
