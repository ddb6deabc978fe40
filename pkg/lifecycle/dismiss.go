package lifecycle

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/router"
)

// DismissChild authorizes the dismissal and hands the subtree teardown to a
// background worker. Only the direct parent may dismiss; dismissing an agent
// that is not alive succeeds as a no-op.
func (m *Manager) DismissChild(ctx context.Context, parentID, childID string) error {
	child, ok := m.liveAgent(childID)
	if !ok {
		return nil
	}
	if child.ParentID() != parentID {
		return router.ErrNotParent
	}
	if m.isDismissing(childID) {
		return nil
	}

	// The flag blocks spawns under the doomed subtree before teardown
	// starts, so the worker never races a concurrent spawn_child.
	m.setDismissing(childID, true)
	child.BeginDismissing()

	m.workers.Add(1)
	go m.runDismiss(parentID, childID, child.TaskID())
	return nil
}

// runDismiss terminates the subtree leaves-first, then settles the escrow:
// the parent's committed column drops by the child's full allocation and the
// unspent remainder is attributed back through an absorbed cost record.
func (m *Manager) runDismiss(parentID, childID, taskID string) {
	defer m.workers.Done()
	defer m.setDismissing(childID, false)
	ctx, cancel := context.WithCancel(m.ctx)
	defer cancel()

	subtree := m.subtreePostOrder(taskID, childID)
	for _, id := range subtree {
		if a, ok := m.liveAgent(id); ok {
			m.stopAndWait(a, false)
		}
	}

	childAllocated := decimal.Zero
	if snap, err := m.deps.Store.GetAgent(ctx, childID); err == nil {
		childAllocated = snap.BudgetData.Allocated
	} else {
		m.log.Warn("dismissed child snapshot missing", slog.String("child_id", childID), slog.Any("error", err))
	}
	subtreeSpent, err := m.deps.Store.SumAgentCosts(ctx, taskID, subtree...)
	if err != nil {
		m.log.Warn("subtree spend query failed", slog.Any("error", err))
		subtreeSpent = decimal.Zero
	}

	if parent, ok := m.liveAgent(parentID); ok {
		parent.ReleaseBudget(childAllocated, subtreeSpent)
		parent.NotifyChildDismissed(childID)
	}

	if err := m.deps.Bus.Publish(ctx, taskID, events.AgentTreeTopic(parentID), map[string]any{
		"type":      events.TypeAgentDismissed,
		"agent_id":  childID,
		"parent_id": parentID,
	}); err != nil {
		m.log.Warn("dismissed event publish failed", slog.Any("error", err))
	}
}

// subtreePostOrder lists the live subtree rooted at rootID, leaves before
// parents, root last.
func (m *Manager) subtreePostOrder(taskID, rootID string) []string {
	children := make(map[string][]string)
	for _, h := range m.deps.Registry.ListByTask(taskID) {
		children[h.ParentID()] = append(children[h.ParentID()], h.AgentID())
	}

	var out []string
	var walk func(id string)
	walk = func(id string) {
		for _, c := range children[id] {
			walk(c)
		}
		out = append(out, id)
	}
	walk(rootID)
	return out
}
