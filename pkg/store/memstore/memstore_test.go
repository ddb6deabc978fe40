package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/store"
)

func newTask(id string, status models.TaskStatus) *models.Task {
	return &models.Task{
		ID:          id,
		Prompt:      "do the thing",
		Status:      status,
		ProfileName: "default",
	}
}

func TestTaskLifecycle(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateTask(ctx, newTask("t1", models.TaskStatusRunning)))
	assert.Error(t, s.CreateTask(ctx, newTask("t1", models.TaskStatusRunning)))

	got, err := s.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, got.Status)
	assert.False(t, got.CreatedAt.IsZero())

	got.Status = models.TaskStatusCompleted
	got.Result = "done"
	require.NoError(t, s.UpdateTask(ctx, got))

	got, err = s.GetTask(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusCompleted, got.Status)
	assert.Equal(t, "done", got.Result)

	_, err = s.GetTask(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestListTasksByStatus(t *testing.T) {
	s := New()
	ctx := context.Background()

	for i, st := range []models.TaskStatus{
		models.TaskStatusRunning,
		models.TaskStatusPaused,
		models.TaskStatusCompleted,
	} {
		task := newTask(string(rune('a'+i)), st)
		task.CreatedAt = time.Now().Add(time.Duration(i) * time.Second)
		require.NoError(t, s.CreateTask(ctx, task))
	}

	active, err := s.ListTasksByStatus(ctx, models.TaskStatusRunning, models.TaskStatusPaused)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "a", active[0].ID)
	assert.Equal(t, "b", active[1].ID)

	all, err := s.ListTasksByStatus(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestAgentUpsertPreservesInsertion(t *testing.T) {
	s := New()
	ctx := context.Background()

	snap := &models.AgentSnapshot{
		AgentID: "ag-1",
		TaskID:  "t1",
		Status:  models.AgentStatusStarting,
	}
	require.NoError(t, s.SaveAgent(ctx, snap))

	first, err := s.GetAgent(ctx, "ag-1")
	require.NoError(t, err)
	require.False(t, first.InsertedAt.IsZero())

	snap.Status = models.AgentStatusRunning
	snap.Children = []string{"ag-2"}
	require.NoError(t, s.SaveAgent(ctx, snap))

	second, err := s.GetAgent(ctx, "ag-1")
	require.NoError(t, err)
	assert.Equal(t, models.AgentStatusRunning, second.Status)
	assert.Equal(t, []string{"ag-2"}, second.Children)
	assert.Equal(t, first.InsertedAt, second.InsertedAt)
}

func TestListAgentsByTaskOrder(t *testing.T) {
	s := New()
	ctx := context.Background()

	base := time.Now()
	for i, id := range []string{"root", "child", "grandchild"} {
		require.NoError(t, s.SaveAgent(ctx, &models.AgentSnapshot{
			AgentID:    id,
			TaskID:     "t1",
			InsertedAt: base.Add(time.Duration(i) * time.Millisecond),
		}))
	}
	require.NoError(t, s.SaveAgent(ctx, &models.AgentSnapshot{AgentID: "other", TaskID: "t2"}))

	agents, err := s.ListAgentsByTask(ctx, "t1")
	require.NoError(t, err)
	require.Len(t, agents, 3)
	assert.Equal(t, "root", agents[0].AgentID)
	assert.Equal(t, "grandchild", agents[2].AgentID)
}

func TestGetAgentReturnsClone(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.SaveAgent(ctx, &models.AgentSnapshot{
		AgentID:  "ag-1",
		TaskID:   "t1",
		Children: []string{"ag-2"},
	}))

	got, err := s.GetAgent(ctx, "ag-1")
	require.NoError(t, err)
	got.Children[0] = "mutated"
	got.Status = models.AgentStatusFailed

	again, err := s.GetAgent(ctx, "ag-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"ag-2"}, again.Children)
	assert.NotEqual(t, models.AgentStatusFailed, again.Status)
}

func TestActionAudit(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.RecordAction(ctx, &models.ActionAudit{
		ID:         "act-1",
		TaskID:     "t1",
		AgentID:    "ag-1",
		ActionType: "shell",
		Status:     models.ActionStatusRunning,
	}))

	require.NoError(t, s.FinishAction(ctx, "act-1", models.ActionStatusCompleted,
		map[string]any{"exit_code": 0}, ""))

	err := s.FinishAction(ctx, "missing", models.ActionStatusFailed, nil, "boom")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestCostSums(t *testing.T) {
	s := New()
	ctx := context.Background()

	add := func(id, agentID, amount string) {
		require.NoError(t, s.AddCost(ctx, &models.CostRecord{
			ID:      id,
			TaskID:  "t1",
			AgentID: agentID,
			Kind:    models.CostKindLLM,
			Amount:  decimal.RequireFromString(amount),
		}))
	}
	add("c1", "root", "0.10")
	add("c2", "child", "0.25")
	add("c3", "child", "0.05")
	require.NoError(t, s.AddCost(ctx, &models.CostRecord{
		ID:      "c4",
		TaskID:  "t2",
		AgentID: "root",
		Kind:    models.CostKindLLM,
		Amount:  decimal.RequireFromString("99"),
	}))

	total, err := s.SumCosts(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, total.Equal(decimal.RequireFromString("0.40")), total.String())

	childOnly, err := s.SumAgentCosts(ctx, "t1", "child")
	require.NoError(t, err)
	assert.True(t, childOnly.Equal(decimal.RequireFromString("0.30")), childOnly.String())

	none, err := s.SumAgentCosts(ctx, "t1", "nobody")
	require.NoError(t, err)
	assert.True(t, none.IsZero())
}

func TestEventsCatchUp(t *testing.T) {
	s := New()
	ctx := context.Background()

	emit := func(topic string) int64 {
		ev := &models.Event{TaskID: "t1", Topic: topic, Payload: map[string]any{"n": topic}}
		require.NoError(t, s.AppendEvent(ctx, ev))
		return ev.ID
	}
	first := emit("tasks:t1:messages")
	emit("agents:ag-1:logs")
	emit("tasks:t1:messages")

	all, err := s.ListEvents(ctx, "t1", "", 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Less(t, all[0].ID, all[1].ID)

	messages, err := s.ListEvents(ctx, "t1", "tasks:t1:messages", 0)
	require.NoError(t, err)
	assert.Len(t, messages, 2)

	after, err := s.ListEvents(ctx, "t1", "", first)
	require.NoError(t, err)
	assert.Len(t, after, 2)
}

func TestDeleteTaskCascades(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.CreateTask(ctx, newTask("t1", models.TaskStatusRunning)))
	require.NoError(t, s.SaveAgent(ctx, &models.AgentSnapshot{AgentID: "ag-1", TaskID: "t1"}))
	require.NoError(t, s.RecordAction(ctx, &models.ActionAudit{ID: "act-1", TaskID: "t1", AgentID: "ag-1"}))
	require.NoError(t, s.AddCost(ctx, &models.CostRecord{
		ID: "c1", TaskID: "t1", AgentID: "ag-1", Amount: decimal.NewFromInt(1),
	}))
	require.NoError(t, s.AppendEvent(ctx, &models.Event{TaskID: "t1", Topic: "tasks:t1:messages"}))

	require.NoError(t, s.DeleteTask(ctx, "t1"))

	_, err := s.GetTask(ctx, "t1")
	assert.ErrorIs(t, err, store.ErrNotFound)
	_, err = s.GetAgent(ctx, "ag-1")
	assert.ErrorIs(t, err, store.ErrNotFound)

	total, err := s.SumCosts(ctx, "t1")
	require.NoError(t, err)
	assert.True(t, total.IsZero())

	events, err := s.ListEvents(ctx, "t1", "", 0)
	require.NoError(t, err)
	assert.Empty(t, events)
}
