package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/models"
)

// TaskRequest is the input to CreateTask.
type TaskRequest struct {
	Prompt        string
	GlobalContext string
	Constraints   []string
	ProfileName   string
	// MaxBudget caps the whole tree's spend; nil runs uncapped.
	MaxBudget *decimal.Decimal
}

// CreateTask persists the task and its root agent, then starts the root
// actor. The task row and root snapshot are committed before the actor
// runs, so every later write references existing rows.
func (m *Manager) CreateTask(ctx context.Context, req TaskRequest) (*models.Task, error) {
	profile := m.deps.Profiles.Default()
	if req.ProfileName != "" {
		named, ok := m.deps.Profiles.Profile(req.ProfileName)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownProfile, req.ProfileName)
		}
		profile = named
	}

	task := &models.Task{
		ID:                 uuid.New().String(),
		Prompt:             req.Prompt,
		Status:             models.TaskStatusRunning,
		GlobalContext:      req.GlobalContext,
		InitialConstraints: req.Constraints,
		ProfileName:        profile.Name,
		CreatedAt:          time.Now(),
	}
	if err := m.deps.Store.CreateTask(ctx, task); err != nil {
		return nil, fmt.Errorf("creating task: %w", err)
	}

	rootBudget := budget.Unlimited()
	if req.MaxBudget != nil {
		rootBudget = budget.Root(*req.MaxBudget)
	}
	snap := &models.AgentSnapshot{
		AgentID:          uuid.New().String(),
		TaskID:           task.ID,
		ProfileName:      profile.Name,
		ModelPool:        profile.ModelPool,
		CapabilityGroups: profile.CapabilityGroups,
		Status:           models.AgentStatusStarting,
		PromptFields: models.PromptFields{
			Injected: models.InjectedFields{
				GlobalContext:     req.GlobalContext,
				GlobalConstraints: req.Constraints,
			},
			Provided: models.ProvidedFields{TaskDescription: req.Prompt},
		},
		BudgetData: rootBudget,
		InsertedAt: time.Now(),
	}
	if err := m.deps.Store.SaveAgent(ctx, snap); err != nil {
		return nil, fmt.Errorf("persisting root agent: %w", err)
	}

	actor := m.startAgent(snap.Clone(), req.Prompt)
	if err := m.confirmBoot(actor); err != nil {
		m.stopAndWait(actor, false)
		task.Status = models.TaskStatusFailed
		task.ErrorMessage = "root agent failed to start: " + err.Error()
		if uerr := m.deps.Store.UpdateTask(ctx, task); uerr != nil {
			m.log.Warn("marking task failed", slog.Any("error", uerr))
		}
		return nil, fmt.Errorf("starting root agent: %w", err)
	}
	return task, nil
}

// SendUserMessage delivers a user message to the task's root agent.
func (m *Manager) SendUserMessage(ctx context.Context, taskID, content string) error {
	for _, h := range m.deps.Registry.ListByTask(taskID) {
		if h.ParentID() != "" {
			continue
		}
		if a, ok := h.(Agent); ok {
			a.PostUserMessage(content)
			return nil
		}
	}
	return fmt.Errorf("task %s: %w", taskID, ErrNoRootAgent)
}

// PauseTask drains the task's agents gracefully. Stop requests go directly
// into each mailbox, so they land behind any in-flight triggers; the drain
// loop keeps stopping agents that register mid-pause. The task turns paused
// when the last agent is gone.
func (m *Manager) PauseTask(ctx context.Context, taskID string) error {
	task, err := m.deps.Store.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	live := m.deps.Registry.ListByTask(taskID)
	if len(live) == 0 {
		task.Status = models.TaskStatusPaused
		return m.updateTaskStatus(ctx, task)
	}

	task.Status = models.TaskStatusPausing
	if err := m.updateTaskStatus(ctx, task); err != nil {
		return err
	}

	sent := make(map[string]bool, len(live))
	for _, h := range live {
		if a, ok := h.(Agent); ok {
			a.StopForPause()
			sent[a.AgentID()] = true
		}
	}

	m.workers.Add(1)
	go m.finishPause(taskID, sent)
	return nil
}

func (m *Manager) finishPause(taskID string, sent map[string]bool) {
	defer m.workers.Done()

	select {
	case <-time.After(m.cfg.PauseGrace):
	case <-m.ctx.Done():
		return
	}
	for {
		live := m.deps.Registry.ListByTask(taskID)
		if len(live) == 0 {
			break
		}
		// Spawn workers can register agents at any point mid-pause, so each
		// poll stops anything the initial send missed.
		for _, h := range live {
			if sent[h.AgentID()] {
				continue
			}
			if a, ok := h.(Agent); ok {
				a.StopForPause()
				sent[a.AgentID()] = true
			}
		}
		select {
		case <-time.After(m.cfg.PausePoll):
		case <-m.ctx.Done():
			return
		}
	}

	ctx, cancel := context.WithTimeout(m.ctx, 10*time.Second)
	defer cancel()
	task, err := m.deps.Store.GetTask(ctx, taskID)
	if err != nil {
		m.log.Warn("pause completion load failed", slog.String("task_id", taskID), slog.Any("error", err))
		return
	}
	task.Status = models.TaskStatusPaused
	if err := m.updateTaskStatus(ctx, task); err != nil {
		m.log.Warn("pause completion update failed", slog.String("task_id", taskID), slog.Any("error", err))
	}
}

// DeleteTask terminates every live agent and removes the task with all of
// its dependents.
func (m *Manager) DeleteTask(ctx context.Context, taskID string) error {
	for _, h := range m.deps.Registry.ListByTask(taskID) {
		if h.ParentID() != "" {
			continue
		}
		for _, id := range m.subtreePostOrder(taskID, h.AgentID()) {
			if a, ok := m.liveAgent(id); ok {
				m.stopAndWait(a, false)
			}
		}
	}
	// Stragglers with no live root.
	for _, h := range m.deps.Registry.ListByTask(taskID) {
		if a, ok := h.(Agent); ok {
			m.stopAndWait(a, false)
		}
	}
	return m.deps.Store.DeleteTask(ctx, taskID)
}

func (m *Manager) updateTaskStatus(ctx context.Context, task *models.Task) error {
	if err := m.deps.Store.UpdateTask(ctx, task); err != nil {
		return fmt.Errorf("updating task %s: %w", task.ID, err)
	}
	if err := m.deps.Bus.Publish(ctx, task.ID, events.TaskStatusTopic(task.ID), map[string]any{
		"type":   events.TypeTaskStatus,
		"status": string(task.Status),
	}); err != nil {
		m.log.Warn("status event publish failed", slog.Any("error", err))
	}
	return nil
}
