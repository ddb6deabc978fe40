package lifecycle

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/conclave-run/conclave/pkg/models"
)

// RestoreTask rebuilds a task's agent tree from persisted snapshots,
// insertion order, so every parent is live before its children start.
// Single-agent failures do not halt the restore; children of a failed
// parent are skipped rather than started orphaned.
func (m *Manager) RestoreTask(ctx context.Context, taskID string) error {
	snaps, err := m.deps.Store.ListAgentsByTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("loading agents: %w", err)
	}

	restored := make(map[string]bool)
	var eligible, succeeded, failed, skipped int

	for _, snap := range snaps {
		if snap.Status == models.AgentStatusStopped || snap.Status == models.AgentStatusFailed {
			continue
		}
		eligible++

		if snap.ParentID != "" && !restored[snap.ParentID] {
			skipped++
			continue
		}

		// A stale registry entry under this id is an orphan from a previous
		// incarnation; terminate it and take its place.
		if orphan, ok := m.liveAgent(snap.AgentID); ok {
			m.stopAndWait(orphan, false)
		}

		if m.restoreAgent(snap) {
			restored[snap.AgentID] = true
			succeeded++
		} else {
			failed++
		}
	}

	if eligible > 0 && succeeded == 0 {
		return ErrAllAgentsFailed
	}
	if failed > 0 {
		m.log.Warn("partial restore",
			slog.String("task_id", taskID),
			slog.Int("failed", failed),
			slog.Int("skipped", skipped))
	}

	// Orphan cleanup: nothing may stay registered for this task outside the
	// restored set.
	for _, h := range m.deps.Registry.ListByTask(taskID) {
		if restored[h.AgentID()] {
			continue
		}
		if a, ok := h.(Agent); ok {
			m.stopAndWait(a, false)
			m.markStopped(ctx, a.AgentID())
		}
	}

	task, err := m.deps.Store.GetTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("loading task: %w", err)
	}
	task.Status = models.TaskStatusRunning
	return m.updateTaskStatus(ctx, task)
}

// restoreAgent starts one persisted agent, retrying once when the first
// start does not come up.
func (m *Manager) restoreAgent(snap *models.AgentSnapshot) bool {
	for attempt := 0; attempt < 2; attempt++ {
		fresh := snap.Clone()
		fresh.Status = models.AgentStatusIdle
		actor := m.startAgent(fresh, "")
		if err := m.confirmBoot(actor); err == nil {
			return true
		}
		m.stopAndWait(actor, false)
	}
	m.log.Error("agent restore failed", slog.String("agent_id", snap.AgentID))
	return false
}

func (m *Manager) markStopped(ctx context.Context, agentID string) {
	snap, err := m.deps.Store.GetAgent(ctx, agentID)
	if err != nil {
		return
	}
	snap.Status = models.AgentStatusStopped
	if err := m.deps.Store.SaveAgent(ctx, snap); err != nil {
		m.log.Warn("marking orphan stopped", slog.String("agent_id", agentID), slog.Any("error", err))
	}
}

// ReviveAll restores every task left running by a previous incarnation of
// the process. Per-task failures are logged and isolated; boot always
// proceeds.
func (m *Manager) ReviveAll(ctx context.Context) {
	tasks, err := m.deps.Store.ListTasksByStatus(ctx, models.TaskStatusRunning, models.TaskStatusPausing)
	if err != nil {
		m.log.Error("boot revival query failed", slog.Any("error", err))
		return
	}

	for _, task := range tasks {
		switch task.Status {
		case models.TaskStatusPausing:
			// The drain was interrupted by shutdown; its agents are gone.
			task.Status = models.TaskStatusPaused
			if err := m.updateTaskStatus(ctx, task); err != nil {
				m.log.Warn("settling interrupted pause", slog.String("task_id", task.ID), slog.Any("error", err))
			}
		default:
			if err := m.RestoreTask(ctx, task.ID); err != nil {
				m.log.Error("boot revival failed",
					slog.String("task_id", task.ID), slog.Any("error", err))
				task.Status = models.TaskStatusFailed
				task.ErrorMessage = "revival failed: " + err.Error()
				if uerr := m.deps.Store.UpdateTask(ctx, task); uerr != nil {
					m.log.Warn("marking unrevivable task failed", slog.Any("error", uerr))
				}
			}
		}
	}
}
