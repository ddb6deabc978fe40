package integration

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/lifecycle"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/models"
)

// rootHistory flattens one agent's history into a single searchable string.
func rootHistory(h *Harness, agentID string) string {
	var b strings.Builder
	for _, entry := range h.Agent(agentID).ModelHistories["model-a"] {
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}
	return b.String()
}

func createTask(t *testing.T, h *Harness, prompt string, maxBudget *decimal.Decimal) (*models.Task, string) {
	t.Helper()
	task, err := h.Manager.CreateTask(context.Background(), lifecycle.TaskRequest{
		Prompt:    prompt,
		MaxBudget: maxBudget,
	})
	require.NoError(t, err)

	agents, err := h.Store.ListAgentsByTask(context.Background(), task.ID)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	return task, agents[0].AgentID
}

func TestDelegationRoundTrip(t *testing.T) {
	h := NewHarness(t)
	budget := decimal.NewFromInt(100)

	h.LLM.Script("Summarize the quarterly report",
		text(`{"action": "spawn_child", "params": {"task_description": "Collect the raw figures", "role": "analyst", "budget": 20}, "reasoning": "delegate data collection"}`))
	h.LLM.Script("Collect the raw figures",
		text(`{"action": "send_message", "params": {"content": "figures ready: 42"}, "reasoning": "report to parent"}`))

	task, rootID := createTask(t, h, "Summarize the quarterly report", &budget)
	childID := h.AwaitSpawn()

	// The child runs under the escrowed allocation, parented to the root.
	h.WaitFor(func() bool {
		child := h.Agent(childID)
		return child.ParentID == rootID
	})
	child := h.Agent(childID)
	assert.Equal(t, task.ID, child.TaskID)
	assert.Equal(t, "analyst", child.PromptFields.Provided.Role)
	assert.True(t, child.BudgetData.Allocated.Equal(decimal.NewFromInt(20)), child.BudgetData.Allocated.String())

	// The parent's escrow reflects the allocation once the spawn lands.
	h.WaitFor(func() bool {
		return h.Agent(rootID).BudgetData.Committed.Equal(decimal.NewFromInt(20))
	})

	// The child's report travels back through the router into the parent's
	// history.
	h.WaitFor(func() bool {
		return strings.Contains(rootHistory(h, rootID), "figures ready: 42")
	})
	assert.Contains(t, rootHistory(h, rootID), "Child agent "+childID+" is now running.")

	// The spawn is announced on the parent's replayable tree topic.
	evs, err := h.Bus.CatchUp(context.Background(), events.AgentTreeTopic(rootID), 0)
	require.NoError(t, err)
	require.NotEmpty(t, evs)
	assert.Equal(t, events.TypeAgentSpawned, evs[0].Payload["type"])
	assert.Equal(t, childID, evs[0].Payload["agent_id"])
}

func TestDismissalReturnsEscrow(t *testing.T) {
	h := NewHarness(t)
	budget := decimal.NewFromInt(100)

	h.LLM.Script("Audit the invoices",
		text(`{"action": "spawn_child", "params": {"task_description": "Cross-check invoice totals", "budget": 30}, "reasoning": "delegate the cross-check"}`))

	task, rootID := createTask(t, h, "Audit the invoices", &budget)
	childID := h.AwaitSpawn()

	h.WaitFor(func() bool {
		return h.Agent(rootID).BudgetData.Committed.Equal(decimal.NewFromInt(30))
	})

	// The dismissal is proposed by the model once the user asks for it; the
	// child ID comes out of the agent's own history.
	h.LLM.Script("Audit the invoices", func(req llm.CompletionRequest) string {
		for i := len(req.Messages) - 1; i >= 0; i-- {
			content := req.Messages[i].Content
			if strings.HasPrefix(content, "Child agent ") && strings.Contains(content, "is now running") {
				id := strings.Fields(content)[2]
				return `{"action": "dismiss_child", "params": {"child_id": "` + id + `"}, "reasoning": "work is covered"}`
			}
		}
		return waitTrueReply
	})
	require.NoError(t, h.Manager.SendUserMessage(context.Background(), task.ID, "The cross-check is no longer needed."))

	// Child terminates, escrow drains back to zero.
	h.WaitFor(func() bool {
		return h.Agent(childID).Status == models.AgentStatusStopped
	})
	h.WaitFor(func() bool {
		return h.Agent(rootID).BudgetData.Committed.IsZero()
	})
	h.WaitFor(func() bool {
		return strings.Contains(rootHistory(h, rootID), "Child agent "+childID+" has been dismissed.")
	})

	// The unspent remainder of the child's allocation comes back as a
	// negative absorbed row, so the tree total only charges real spend.
	total, err := h.Store.SumCosts(context.Background(), task.ID)
	require.NoError(t, err)
	assert.True(t, total.LessThan(decimal.NewFromInt(1)), total.String())
}

func TestPauseAndRestoreRebuildsTree(t *testing.T) {
	h := NewHarness(t)

	h.LLM.Script("Monitor the deployment",
		text(`{"action": "spawn_child", "params": {"task_description": "Watch the error rate"}, "reasoning": "split the watching"}`))

	task, rootID := createTask(t, h, "Monitor the deployment", nil)
	childID := h.AwaitSpawn()
	h.WaitFor(func() bool { return h.Registry.Len() == 2 })

	require.NoError(t, h.Manager.PauseTask(context.Background(), task.ID))
	h.WaitFor(func() bool {
		stored, err := h.Store.GetTask(context.Background(), task.ID)
		return err == nil && stored.Status == models.TaskStatusPaused && h.Registry.Len() == 0
	})
	assert.Equal(t, models.AgentStatusPaused, h.Agent(rootID).Status)
	assert.Equal(t, models.AgentStatusPaused, h.Agent(childID).Status)

	require.NoError(t, h.Manager.RestoreTask(context.Background(), task.ID))
	h.WaitFor(func() bool { return h.Registry.Len() == 2 })

	stored, err := h.Store.GetTask(context.Background(), task.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TaskStatusRunning, stored.Status)

	// Both agents are addressable again under their original IDs.
	_, err = h.Registry.Get(rootID)
	assert.NoError(t, err)
	_, err = h.Registry.Get(childID)
	assert.NoError(t, err)
}

func TestRootMessageReachesUser(t *testing.T) {
	h := NewHarness(t)

	h.LLM.Script("Confirm the rollout finished",
		text(`{"action": "send_message", "params": {"content": "Rollout complete, all checks green."}, "reasoning": "report back"}`))

	task, _ := createTask(t, h, "Confirm the rollout finished", nil)

	// A root send with no target publishes to the task's message stream.
	h.WaitFor(func() bool {
		evs, err := h.Bus.CatchUp(context.Background(), events.TaskMessagesTopic(task.ID), 0)
		return err == nil && len(evs) > 0
	})
	evs, err := h.Bus.CatchUp(context.Background(), events.TaskMessagesTopic(task.ID), 0)
	require.NoError(t, err)
	assert.Equal(t, events.TypeTaskMessage, evs[0].Payload["type"])
	assert.Equal(t, "Rollout complete, all checks green.", evs[0].Payload["content"])
}
