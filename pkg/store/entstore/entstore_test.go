package entstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/store"
	"github.com/conclave-run/conclave/pkg/store/entstore"
	testdb "github.com/conclave-run/conclave/test/database"
)

func newStore(t *testing.T) *entstore.Store {
	t.Helper()
	client := testdb.NewTestClient(t)
	return entstore.New(client.Client)
}

func seedTask(t *testing.T, s *entstore.Store, id string) *models.Task {
	t.Helper()
	task := &models.Task{
		ID:          id,
		Prompt:      "map the dependency graph",
		Status:      models.TaskStatusRunning,
		ProfileName: "default",
		CreatedAt:   time.Now(),
	}
	require.NoError(t, s.CreateTask(context.Background(), task))
	return task
}

func TestTaskRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	task := seedTask(t, s, "task-1")
	task.GlobalContext = "staging environment"
	task.InitialConstraints = []string{"read-only"}

	got, err := s.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, task.Prompt, got.Prompt)
	assert.Equal(t, models.TaskStatusRunning, got.Status)

	got.Status = models.TaskStatusPaused
	got.Result = "done early"
	require.NoError(t, s.UpdateTask(ctx, got))

	again, err := s.GetTask(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusPaused, again.Status)
	assert.Equal(t, "done early", again.Result)

	_, err = s.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTasksByStatus(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()

	seedTask(t, s, "task-a")
	taskB := seedTask(t, s, "task-b")
	taskB.Status = models.TaskStatusPausing
	require.NoError(t, s.UpdateTask(ctx, taskB))

	tasks, err := s.ListTasksByStatus(ctx, models.TaskStatusRunning, models.TaskStatusPausing)
	require.NoError(t, err)
	assert.Len(t, tasks, 2)

	tasks, err = s.ListTasksByStatus(ctx, models.TaskStatusPausing)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "task-b", tasks[0].ID)
}

func TestAgentSnapshotRoundTrip(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	seedTask(t, s, "task-1")

	snap := &models.AgentSnapshot{
		AgentID:          "ag-1",
		TaskID:           "task-1",
		ProfileName:      "default",
		ModelPool:        []string{"claude-sonnet-4-5", "gpt-5"},
		CapabilityGroups: []string{"core", "delegation"},
		Status:           models.AgentStatusIdle,
		PromptFields: models.PromptFields{
			Provided: models.ProvidedFields{TaskDescription: "inspect the cache layer", Role: "investigator"},
		},
		BudgetData: budget.Allocated(decimal.NewFromInt(25)),
		Children:   []string{"ag-2"},
		InsertedAt: time.Now(),
	}
	require.NoError(t, s.SaveAgent(ctx, snap))

	got, err := s.GetAgent(ctx, "ag-1")
	require.NoError(t, err)
	assert.Equal(t, snap.ModelPool, got.ModelPool)
	assert.Equal(t, "investigator", got.PromptFields.Provided.Role)
	assert.Equal(t, budget.ModeAllocated, got.BudgetData.Mode)
	assert.True(t, got.BudgetData.Allocated.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, []string{"ag-2"}, got.Children)

	// SaveAgent upserts: a second save overwrites.
	snap.Status = models.AgentStatusPaused
	require.NoError(t, s.SaveAgent(ctx, snap))
	got, err = s.GetAgent(ctx, "ag-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusPaused, got.Status)
}

func TestListAgentsByTaskKeepsInsertionOrder(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	seedTask(t, s, "task-1")

	base := time.Now()
	for i, id := range []string{"ag-root", "ag-mid", "ag-leaf"} {
		require.NoError(t, s.SaveAgent(ctx, &models.AgentSnapshot{
			AgentID:     id,
			TaskID:      "task-1",
			ProfileName: "default",
			ModelPool:   []string{"gpt-5"},
			Status:      models.AgentStatusIdle,
			BudgetData:  budget.Unlimited(),
			InsertedAt:  base.Add(time.Duration(i) * time.Second),
		}))
	}

	agents, err := s.ListAgentsByTask(ctx, "task-1")
	require.NoError(t, err)
	require.Len(t, agents, 3)
	assert.Equal(t, "ag-root", agents[0].AgentID)
	assert.Equal(t, "ag-leaf", agents[2].AgentID)
}

func TestActionAuditLifecycle(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	seedTask(t, s, "task-1")

	audit := &models.ActionAudit{
		ID:         "act-1",
		TaskID:     "task-1",
		AgentID:    "ag-1",
		ActionType: "send_message",
		Params:     map[string]any{"target": "ag-2"},
		Status:     models.ActionStatusRunning,
		StartedAt:  time.Now(),
	}
	require.NoError(t, s.RecordAction(ctx, audit))

	require.NoError(t, s.FinishAction(ctx, "act-1", models.ActionStatusCompleted,
		map[string]any{"delivered": true}, ""))

	err := s.FinishAction(ctx, "act-2", models.ActionStatusFailed, nil, "boom")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCostLedgerSums(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	seedTask(t, s, "task-1")

	add := func(id, agentID string, amount string, kind models.CostKind) {
		amt, err := decimal.NewFromString(amount)
		require.NoError(t, err)
		require.NoError(t, s.AddCost(ctx, &models.CostRecord{
			ID:        id,
			TaskID:    "task-1",
			AgentID:   agentID,
			Kind:      kind,
			Amount:    amt,
			CreatedAt: time.Now(),
		}))
	}
	add("c1", "ag-1", "0.015", models.CostKindLLM)
	add("c2", "ag-1", "0.005", models.CostKindEmbedding)
	add("c3", "ag-2", "1.25", models.CostKindRecorded)
	// Absorption rows are negative and must net out in sums.
	add("c4", "ag-1", "-0.01", models.CostKindAbsorbed)

	total, err := s.SumCosts(ctx, "task-1")
	require.NoError(t, err)
	assert.Equal(t, "1.26", total.String())

	agent1, err := s.SumAgentCosts(ctx, "task-1", "ag-1")
	require.NoError(t, err)
	assert.Equal(t, "0.01", agent1.String())

	both, err := s.SumAgentCosts(ctx, "task-1", "ag-1", "ag-2")
	require.NoError(t, err)
	assert.Equal(t, "1.26", both.String())

	none, err := s.SumAgentCosts(ctx, "task-1")
	require.NoError(t, err)
	assert.True(t, none.IsZero())
}

func TestEventAppendAndCatchUp(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	seedTask(t, s, "task-1")

	var lastID int64
	for _, topic := range []string{"tasks:task-1:messages", "tasks:task-1:messages", "tasks:task-1:status"} {
		ev := &models.Event{
			TaskID:  "task-1",
			Topic:   topic,
			Payload: map[string]any{"type": "test"},
		}
		require.NoError(t, s.AppendEvent(ctx, ev))
		assert.Greater(t, ev.ID, lastID, "IDs must be assigned ascending")
		lastID = ev.ID
	}

	messages, err := s.ListEvents(ctx, "task-1", "tasks:task-1:messages", 0)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	after, err := s.ListEvents(ctx, "task-1", "", messages[0].ID)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestDeleteTaskCascades(t *testing.T) {
	s := newStore(t)
	ctx := context.Background()
	seedTask(t, s, "task-1")

	require.NoError(t, s.SaveAgent(ctx, &models.AgentSnapshot{
		AgentID:     "ag-1",
		TaskID:      "task-1",
		ProfileName: "default",
		ModelPool:   []string{"gpt-5"},
		Status:      models.AgentStatusIdle,
		BudgetData:  budget.Unlimited(),
		InsertedAt:  time.Now(),
	}))
	require.NoError(t, s.AppendLog(ctx, &models.LogEntry{
		TaskID:  "task-1",
		Level:   "info",
		Content: "working",
	}))

	require.NoError(t, s.DeleteTask(ctx, "task-1"))

	_, err := s.GetTask(ctx, "task-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetAgent(ctx, "ag-1")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
