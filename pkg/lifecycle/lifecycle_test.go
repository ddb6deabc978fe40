package lifecycle

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/registry"
	"github.com/conclave-run/conclave/pkg/router"
	"github.com/conclave-run/conclave/pkg/skills"
	"github.com/conclave-run/conclave/pkg/store/memstore"
)

// fakeAgent is a scripted Agent implementation so lifecycle logic can be
// tested without real actors.
type fakeAgent struct {
	env  *testEnv
	snap *models.AgentSnapshot

	mu           sync.Mutex
	done         chan struct{}
	stopOnce     sync.Once
	stopDelay    time.Duration
	bootFailures int

	messages   []string
	spawned    []string
	dismissed  []string
	spawnFails map[string]string
	committed  []decimal.Decimal
	released   [][2]decimal.Decimal
	setBudgets []budget.Budget
	dismissing bool
}

func (f *fakeAgent) AgentID() string  { return f.snap.AgentID }
func (f *fakeAgent) TaskID() string   { return f.snap.TaskID }
func (f *fakeAgent) ParentID() string { return f.snap.ParentID }

func (f *fakeAgent) Start(context.Context)   {}
func (f *fakeAgent) Done() <-chan struct{}   { return f.done }
func (f *fakeAgent) Stop()                   { f.terminate() }
func (f *fakeAgent) StopForPause()           { f.terminate() }
func (f *fakeAgent) TriggerConsensus()       {}
func (f *fakeAgent) BeginDismissing()        { f.withLock(func() { f.dismissing = true }) }

func (f *fakeAgent) terminate() {
	f.stopOnce.Do(func() {
		delay := f.stopDelay
		go func() {
			if delay > 0 {
				time.Sleep(delay)
			}
			f.env.recordStop(f.snap.AgentID)
			// Real actors leave the registry when their goroutine exits.
			f.env.registry.UnregisterHandle(f)
			close(f.done)
		}()
	})
}

func (f *fakeAgent) State(context.Context) (*models.AgentSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.bootFailures > 0 {
		f.bootFailures--
		return nil, errors.New("mailbox not serving")
	}
	return f.snap.Clone(), nil
}

func (f *fakeAgent) PostUserMessage(content string) {
	f.withLock(func() { f.messages = append(f.messages, content) })
}

func (f *fakeAgent) NotifyChildSpawned(childID string) {
	f.withLock(func() { f.spawned = append(f.spawned, childID) })
}

func (f *fakeAgent) NotifyChildDismissed(childID string) {
	f.withLock(func() { f.dismissed = append(f.dismissed, childID) })
}

func (f *fakeAgent) NotifySpawnFailed(childID, reason string) {
	f.withLock(func() {
		if f.spawnFails == nil {
			f.spawnFails = make(map[string]string)
		}
		f.spawnFails[childID] = reason
	})
}

func (f *fakeAgent) SetBudget(b budget.Budget) {
	f.withLock(func() { f.setBudgets = append(f.setBudgets, b) })
}

func (f *fakeAgent) CommitBudget(amount decimal.Decimal) {
	f.withLock(func() { f.committed = append(f.committed, amount) })
}

func (f *fakeAgent) ReleaseBudget(childAllocated, childSpent decimal.Decimal) {
	f.withLock(func() { f.released = append(f.released, [2]decimal.Decimal{childAllocated, childSpent}) })
}

func (f *fakeAgent) withLock(fn func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	fn()
}

type spawnResult struct {
	parentID, childID string
	err               error
}

type testEnv struct {
	manager  *Manager
	store    *memstore.Store
	registry *registry.Registry
	results  chan spawnResult

	mu        sync.Mutex
	created   []*fakeAgent
	stopOrder []string
	bootFail  map[string]int
}

func (e *testEnv) SpawnFinished(parentID, childID string, err error) {
	e.results <- spawnResult{parentID: parentID, childID: childID, err: err}
}

func (e *testEnv) recordStop(agentID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopOrder = append(e.stopOrder, agentID)
}

func (e *testEnv) newAgent(snap *models.AgentSnapshot) Agent {
	e.mu.Lock()
	defer e.mu.Unlock()
	f := &fakeAgent{env: e, snap: snap, done: make(chan struct{})}
	if e.bootFail != nil {
		f.bootFailures = e.bootFail[snap.AgentID]
	}
	e.created = append(e.created, f)
	return f
}

func (e *testEnv) createdAgents() []*fakeAgent {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*fakeAgent(nil), e.created...)
}

func (e *testEnv) stops() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.stopOrder...)
}

type staticProfiles struct{}

func (staticProfiles) Profile(name string) (Profile, bool) {
	if name == "default" || name == "deep" {
		return Profile{Name: name, ModelPool: []string{"model-a"}, CapabilityGroups: []string{"core", "delegation"}}, true
	}
	return Profile{}, false
}

func (staticProfiles) Default() Profile {
	return Profile{Name: "default", ModelPool: []string{"model-a"}, CapabilityGroups: []string{"core", "delegation"}}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	logger := slog.Default()

	env := &testEnv{
		store:    memstore.New(),
		registry: registry.New(),
		results:  make(chan spawnResult, 16),
		bootFail: make(map[string]int),
	}
	library, err := skills.NewLibrary(t.TempDir(), logger)
	require.NoError(t, err)

	env.manager = NewManager(Deps{
		Store:    env.store,
		Registry: env.registry,
		Bus:      events.NewBus(env.store, logger),
		Skills:   library,
		Profiles: staticProfiles{},
		Factory:  env.newAgent,
		Observer: env,
		Logger:   logger,
	}, Config{
		RetryBackoff: 5 * time.Millisecond,
		PauseGrace:   20 * time.Millisecond,
		PausePoll:    5 * time.Millisecond,
		StopTimeout:  time.Second,
	})
	t.Cleanup(env.manager.Shutdown)
	return env
}

// seedTask inserts a task and returns it.
func (e *testEnv) seedTask(t *testing.T, status models.TaskStatus) *models.Task {
	t.Helper()
	task := &models.Task{
		ID:          "task-1",
		Prompt:      "investigate the outage",
		Status:      status,
		ProfileName: "default",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, e.store.CreateTask(context.Background(), task))
	return task
}

// seedLive registers a live fake agent and persists its snapshot.
func (e *testEnv) seedLive(t *testing.T, agentID, parentID string, b budget.Budget) *fakeAgent {
	t.Helper()
	snap := &models.AgentSnapshot{
		AgentID:     agentID,
		TaskID:      "task-1",
		ParentID:    parentID,
		ProfileName: "default",
		ModelPool:   []string{"model-a"},
		Status:      models.AgentStatusIdle,
		BudgetData:  b,
		InsertedAt:  time.Now(),
	}
	require.NoError(t, e.store.SaveAgent(context.Background(), snap))
	f := e.newAgent(snap.Clone()).(*fakeAgent)
	e.registry.Register(f)
	return f
}

func (e *testEnv) addCost(t *testing.T, agentID string, amount int64) {
	t.Helper()
	require.NoError(t, e.store.AddCost(context.Background(), &models.CostRecord{
		ID:        agentID + "-cost-" + time.Now().Format("150405.000000000"),
		TaskID:    "task-1",
		AgentID:   agentID,
		Kind:      models.CostKindLLM,
		Amount:    decimal.NewFromInt(amount),
		CreatedAt: time.Now(),
	}))
}

func awaitSpawn(t *testing.T, env *testEnv) spawnResult {
	t.Helper()
	select {
	case res := <-env.results:
		return res
	case <-time.After(2 * time.Second):
		t.Fatal("spawn worker did not finish")
		return spawnResult{}
	}
}

func TestSpawnChildStartsAndSettlesEscrow(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	parent := env.seedLive(t, "ag-root", "", budget.Root(decimal.NewFromInt(100)))

	childID, err := env.manager.SpawnChild(context.Background(), router.SpawnRequest{
		TaskID:       "task-1",
		ParentID:     "ag-root",
		ParentBudget: parent.snap.BudgetData,
		Params: map[string]any{
			"task_description": "dig into the logs",
			"role":             "investigator",
			"budget":           10.0,
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, childID)

	res := awaitSpawn(t, env)
	require.NoError(t, res.err)
	assert.Equal(t, childID, res.childID)

	handle, err := env.registry.Get(childID)
	require.NoError(t, err)
	child := handle.(*fakeAgent)
	assert.Equal(t, []string{"dig into the logs"}, child.messages)
	assert.Equal(t, "investigator", child.snap.PromptFields.Provided.Role)
	assert.Equal(t, budget.ModeAllocated, child.snap.BudgetData.Mode)

	assert.Equal(t, []string{childID}, parent.spawned)
	require.Len(t, parent.committed, 1)
	assert.True(t, parent.committed[0].Equal(decimal.NewFromInt(10)))

	stored, err := env.store.GetAgent(context.Background(), childID)
	require.NoError(t, err)
	assert.Equal(t, "ag-root", stored.ParentID)

	evts, err := env.store.ListEvents(context.Background(), "task-1", events.AgentTreeTopic("ag-root"), 0)
	require.NoError(t, err)
	require.Len(t, evts, 1)
	assert.Equal(t, events.TypeAgentSpawned, evts[0].Payload["type"])
}

func TestSpawnRequiresBudgetUnderCap(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	parent := env.seedLive(t, "ag-root", "", budget.Root(decimal.NewFromInt(50)))

	_, err := env.manager.SpawnChild(context.Background(), router.SpawnRequest{
		TaskID:       "task-1",
		ParentID:     "ag-root",
		ParentBudget: parent.snap.BudgetData,
		Params:       map[string]any{"task_description": "x"},
	})
	assert.ErrorIs(t, err, budget.ErrBudgetRequired)
}

func TestSpawnFailsWithoutEscrowRoom(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	parent := env.seedLive(t, "ag-root", "", budget.Root(decimal.NewFromInt(10)))
	env.addCost(t, "ag-root", 8)

	_, err := env.manager.SpawnChild(context.Background(), router.SpawnRequest{
		TaskID:       "task-1",
		ParentID:     "ag-root",
		ParentBudget: parent.snap.BudgetData,
		Params:       map[string]any{"task_description": "x", "budget": 5.0},
	})
	assert.ErrorIs(t, err, budget.ErrInsufficientBudget)
}

func TestSpawnWhileDismissingFails(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	env.seedLive(t, "ag-root", "", budget.Unlimited())
	mid := env.seedLive(t, "ag-mid", "ag-root", budget.Unlimited())
	mid.stopDelay = 100 * time.Millisecond

	require.NoError(t, env.manager.DismissChild(context.Background(), "ag-root", "ag-mid"))

	_, err := env.manager.SpawnChild(context.Background(), router.SpawnRequest{
		TaskID:       "task-1",
		ParentID:     "ag-mid",
		ParentBudget: budget.Unlimited(),
		Params:       map[string]any{"task_description": "x"},
	})
	assert.ErrorIs(t, err, router.ErrParentDismissing)
}

func TestDismissRequiresDirectParent(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	env.seedLive(t, "ag-c", "", budget.Unlimited())
	child := env.seedLive(t, "ag-b", "ag-c", budget.Unlimited())

	err := env.manager.DismissChild(context.Background(), "ag-a", "ag-b")
	assert.ErrorIs(t, err, router.ErrNotParent)

	select {
	case <-child.done:
		t.Fatal("unauthorized dismissal terminated the child")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDismissAbsentChildIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	assert.NoError(t, env.manager.DismissChild(context.Background(), "ag-root", "ag-gone"))
}

func TestDismissTerminatesLeavesFirstAndReleasesEscrow(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	parent := env.seedLive(t, "ag-root", "", budget.Root(decimal.NewFromInt(100)))
	env.seedLive(t, "ag-mid", "ag-root", budget.Allocated(decimal.NewFromInt(30)))
	env.seedLive(t, "ag-leaf", "ag-mid", budget.Allocated(decimal.NewFromInt(5)))
	env.addCost(t, "ag-mid", 4)
	env.addCost(t, "ag-leaf", 6)

	require.NoError(t, env.manager.DismissChild(context.Background(), "ag-root", "ag-mid"))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		parent.mu.Lock()
		done := len(parent.dismissed) > 0
		parent.mu.Unlock()
		if done {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	assert.Equal(t, []string{"ag-leaf", "ag-mid"}, env.stops())
	assert.Equal(t, []string{"ag-mid"}, parent.dismissed)
	require.Len(t, parent.released, 1)
	assert.True(t, parent.released[0][0].Equal(decimal.NewFromInt(30)), "allocated")
	assert.True(t, parent.released[0][1].Equal(decimal.NewFromInt(10)), "subtree spend")

	_, err := env.registry.Get("ag-mid")
	assert.ErrorIs(t, err, registry.ErrAgentNotFound)
}

func TestPauseTaskDrainsAllAgents(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	env.seedLive(t, "ag-root", "", budget.Unlimited())
	env.seedLive(t, "ag-child", "ag-root", budget.Unlimited())

	require.NoError(t, env.manager.PauseTask(context.Background(), "task-1"))

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		task, err := env.store.GetTask(context.Background(), "task-1")
		require.NoError(t, err)
		if task.Status == models.TaskStatusPaused {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	task, err := env.store.GetTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPaused, task.Status)
	assert.Empty(t, env.registry.ListByTask("task-1"))
}

func TestPauseTaskStopsLateRegistrations(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	root := env.seedLive(t, "ag-root", "", budget.Unlimited())
	root.stopDelay = 50 * time.Millisecond // keeps the drain loop alive

	require.NoError(t, env.manager.PauseTask(context.Background(), "task-1"))

	// A spawn worker finishing mid-pause registers its agent well after the
	// initial stop requests went out; the drain loop must still stop it.
	time.Sleep(env.manager.cfg.PauseGrace + 10*time.Millisecond)
	late := env.seedLive(t, "ag-late", "ag-root", budget.Unlimited())

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		task, err := env.store.GetTask(context.Background(), "task-1")
		require.NoError(t, err)
		if task.Status == models.TaskStatusPaused {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	task, err := env.store.GetTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPaused, task.Status)
	assert.Empty(t, env.registry.ListByTask("task-1"))
	select {
	case <-late.done:
	default:
		t.Fatal("late registration was never stopped")
	}
}

func TestPauseTaskWithoutAgentsPausesDirectly(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)

	require.NoError(t, env.manager.PauseTask(context.Background(), "task-1"))

	task, err := env.store.GetTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPaused, task.Status)
}

func seedPersisted(t *testing.T, env *testEnv, agentID, parentID string, status models.AgentStatus, at time.Time) {
	t.Helper()
	require.NoError(t, env.store.SaveAgent(context.Background(), &models.AgentSnapshot{
		AgentID:     agentID,
		TaskID:      "task-1",
		ParentID:    parentID,
		ProfileName: "default",
		ModelPool:   []string{"model-a"},
		Status:      status,
		BudgetData:  budget.Unlimited(),
		InsertedAt:  at,
	}))
}

func TestRestoreRebuildsTreeParentsFirst(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusPaused)
	base := time.Now()
	seedPersisted(t, env, "ag-root", "", models.AgentStatusPaused, base)
	seedPersisted(t, env, "ag-c1", "ag-root", models.AgentStatusPaused, base.Add(time.Second))
	seedPersisted(t, env, "ag-c2", "ag-root", models.AgentStatusPaused, base.Add(2*time.Second))

	require.NoError(t, env.manager.RestoreTask(context.Background(), "task-1"))

	created := env.createdAgents()
	require.Len(t, created, 3)
	assert.Equal(t, "ag-root", created[0].AgentID())
	assert.Len(t, env.registry.ListByTask("task-1"), 3)

	task, err := env.store.GetTask(context.Background(), "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, task.Status)
}

func TestRestoreSkipsChildrenOfFailedParents(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusPaused)
	base := time.Now()
	seedPersisted(t, env, "ag-root", "", models.AgentStatusPaused, base)
	seedPersisted(t, env, "ag-mid", "ag-root", models.AgentStatusPaused, base.Add(time.Second))
	seedPersisted(t, env, "ag-leaf", "ag-mid", models.AgentStatusPaused, base.Add(2*time.Second))
	env.bootFail["ag-mid"] = 2 // initial start and the retry both fail

	require.NoError(t, env.manager.RestoreTask(context.Background(), "task-1"))

	live := env.registry.ListByTask("task-1")
	require.Len(t, live, 1)
	assert.Equal(t, "ag-root", live[0].AgentID())

	for _, f := range env.createdAgents() {
		assert.NotEqual(t, "ag-leaf", f.AgentID(), "child of failed parent must be skipped")
	}
}

func TestRestoreAllFailed(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusPaused)
	seedPersisted(t, env, "ag-root", "", models.AgentStatusPaused, time.Now())
	env.bootFail["ag-root"] = 2

	err := env.manager.RestoreTask(context.Background(), "task-1")
	assert.ErrorIs(t, err, ErrAllAgentsFailed)
}

func TestRestoreTerminatesOrphanUnderSameID(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusPaused)
	seedPersisted(t, env, "ag-x", "", models.AgentStatusPaused, time.Now())
	orphan := env.seedLive(t, "ag-x", "", budget.Unlimited())

	require.NoError(t, env.manager.RestoreTask(context.Background(), "task-1"))

	select {
	case <-orphan.done:
	default:
		t.Fatal("orphan was not terminated")
	}
	handle, err := env.registry.Get("ag-x")
	require.NoError(t, err)
	assert.NotSame(t, orphan, handle)
}

func TestRestoreCleansUpStrayRegistryEntries(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusPaused)
	seedPersisted(t, env, "ag-root", "", models.AgentStatusPaused, time.Now())
	stray := env.seedLive(t, "ag-stray", "ag-root", budget.Unlimited())
	// The stray's own record is terminal, so it is not restoration-eligible.
	seedPersisted(t, env, "ag-stray", "ag-root", models.AgentStatusStopped, time.Now().Add(time.Second))

	require.NoError(t, env.manager.RestoreTask(context.Background(), "task-1"))

	select {
	case <-stray.done:
	default:
		t.Fatal("stray registry entry survived restore")
	}
	live := env.registry.ListByTask("task-1")
	require.Len(t, live, 1)
	assert.Equal(t, "ag-root", live[0].AgentID())
}

func TestReviveAllSettlesInterruptedPause(t *testing.T) {
	env := newTestEnv(t)
	task := env.seedTask(t, models.TaskStatusPausing)

	env.manager.ReviveAll(context.Background())

	got, err := env.store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPaused, got.Status)
}

func TestAdjustBudgetDecrease(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	parent := env.seedLive(t, "ag-root", "", budget.Budget{
		Mode:      budget.ModeRoot,
		Allocated: decimal.NewFromInt(100),
		Committed: decimal.NewFromInt(50),
	})
	env.addCost(t, "ag-root", 20)
	child := env.seedLive(t, "ag-child", "ag-root", budget.Allocated(decimal.NewFromInt(40)))

	err := env.manager.AdjustBudget(context.Background(), router.AdjustRequest{
		TaskID:        "task-1",
		ParentID:      "ag-root",
		ParentBudget:  parent.snap.BudgetData,
		ChildID:       "ag-child",
		NewAllocation: decimal.NewFromInt(25),
	})
	require.NoError(t, err)

	require.Len(t, parent.committed, 1)
	assert.True(t, parent.committed[0].Equal(decimal.NewFromInt(-15)))
	require.Len(t, child.setBudgets, 1)
	assert.True(t, child.setBudgets[0].Allocated.Equal(decimal.NewFromInt(25)))
}

func TestAdjustBudgetRejectsNonChild(t *testing.T) {
	env := newTestEnv(t)
	env.seedTask(t, models.TaskStatusRunning)
	env.seedLive(t, "ag-other", "ag-elsewhere", budget.Unlimited())

	err := env.manager.AdjustBudget(context.Background(), router.AdjustRequest{
		TaskID:        "task-1",
		ParentID:      "ag-root",
		ChildID:       "ag-other",
		NewAllocation: decimal.NewFromInt(5),
	})
	assert.ErrorIs(t, err, router.ErrNotDirectChild)
}

func TestCreateTaskStartsRoot(t *testing.T) {
	env := newTestEnv(t)
	cap := decimal.NewFromInt(200)

	task, err := env.manager.CreateTask(context.Background(), TaskRequest{
		Prompt:        "summarize the incident",
		GlobalContext: "production cluster",
		MaxBudget:     &cap,
	})
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, task.Status)

	created := env.createdAgents()
	require.Len(t, created, 1)
	root := created[0]
	assert.Equal(t, task.ID, root.TaskID())
	assert.Equal(t, "", root.ParentID())
	assert.Equal(t, budget.ModeRoot, root.snap.BudgetData.Mode)
	assert.Equal(t, []string{"summarize the incident"}, root.messages)

	agents, err := env.store.ListAgentsByTask(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, "production cluster", agents[0].PromptFields.Injected.GlobalContext)
}

func TestCreateTaskRootBootFailureMarksTaskFailed(t *testing.T) {
	env := newTestEnv(t)
	origFactory := env.manager.deps.Factory
	env.manager.deps.Factory = func(snap *models.AgentSnapshot) Agent {
		a := origFactory(snap).(*fakeAgent)
		a.bootFailures = 1 << 20 // never comes up
		return a
	}

	_, err := env.manager.CreateTask(context.Background(), TaskRequest{Prompt: "doomed"})
	require.Error(t, err)

	tasks, lerr := env.store.ListTasksByStatus(context.Background(), models.TaskStatusFailed)
	require.NoError(t, lerr)
	require.Len(t, tasks, 1)
	assert.Contains(t, tasks[0].ErrorMessage, "root agent failed to start")
}
