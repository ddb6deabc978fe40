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
	"github.com/conclave-run/conclave/pkg/router"
)

// SpawnChild validates what can be validated synchronously (dismissing flag,
// escrow headroom) and hands the rest to a background worker. The returned
// child ID is usable immediately: the parent can address the child before
// the worker finishes, because messages queue in the child's mailbox.
func (m *Manager) SpawnChild(ctx context.Context, req router.SpawnRequest) (string, error) {
	if m.isDismissing(req.ParentID) {
		return "", router.ErrParentDismissing
	}

	alloc, hasBudget := decimal.Zero, false
	if f, ok := req.Params["budget"].(float64); ok {
		alloc, hasBudget = decimal.NewFromFloat(f), true
	}
	if req.ParentBudget.Capped() {
		if !hasBudget {
			return "", budget.ErrBudgetRequired
		}
		spent, err := m.deps.Store.SumAgentCosts(ctx, req.TaskID, req.ParentID)
		if err != nil {
			return "", fmt.Errorf("querying parent spend: %w", err)
		}
		if err := budget.ValidateAllocation(req.ParentBudget, spent, alloc); err != nil {
			return "", err
		}
	}

	childID := uuid.New().String()
	m.workers.Add(1)
	go m.runSpawn(req, childID, alloc, hasBudget)
	return childID, nil
}

// runSpawn is the background spawn worker: build the child snapshot, persist
// it, start the actor with bounded retries, then notify the parent and the
// event bus. Failures are reported to the parent as spawn_failed, never as a
// panic or a silent drop.
func (m *Manager) runSpawn(req router.SpawnRequest, childID string, alloc decimal.Decimal, hasBudget bool) {
	defer m.workers.Done()
	ctx, cancel := context.WithTimeout(m.ctx, 30*time.Second)
	defer cancel()

	snap, err := m.buildChildSnapshot(ctx, req, childID, alloc, hasBudget)
	if err != nil {
		m.reportSpawnFailure(ctx, req.ParentID, childID, nil, err)
		return
	}
	if err := m.deps.Store.SaveAgent(ctx, snap); err != nil {
		m.reportSpawnFailure(ctx, req.ParentID, childID, nil, fmt.Errorf("persisting child: %w", err))
		return
	}

	var actor Agent
	for attempt := 1; ; attempt++ {
		actor = m.startAgent(snap.Clone(), snap.PromptFields.Provided.TaskDescription)
		if err = m.confirmBoot(actor); err == nil {
			break
		}
		m.stopAndWait(actor, false)
		if attempt >= m.cfg.SpawnAttempts {
			m.reportSpawnFailure(ctx, req.ParentID, childID, snap, fmt.Errorf("starting child: %w", err))
			return
		}
		time.Sleep(time.Duration(attempt) * m.cfg.RetryBackoff)
	}

	if err := m.deps.Bus.Publish(ctx, req.TaskID, events.AgentTreeTopic(req.ParentID), map[string]any{
		"type":      events.TypeAgentSpawned,
		"agent_id":  childID,
		"parent_id": req.ParentID,
	}); err != nil {
		m.log.Warn("spawned event publish failed", slog.Any("error", err))
	}

	if parent, ok := m.liveAgent(req.ParentID); ok {
		parent.NotifyChildSpawned(childID)
		if hasBudget && req.ParentBudget.Capped() {
			parent.CommitBudget(alloc)
		}
	}
	m.notifyObserver(req.ParentID, childID, nil)
}

func (m *Manager) buildChildSnapshot(ctx context.Context, req router.SpawnRequest, childID string, alloc decimal.Decimal, hasBudget bool) (*models.AgentSnapshot, error) {
	task, err := m.deps.Store.GetTask(ctx, req.TaskID)
	if err != nil {
		return nil, fmt.Errorf("loading task: %w", err)
	}

	profile, err := m.resolveProfile(ctx, req)
	if err != nil {
		return nil, err
	}

	var active []models.Skill
	if names, ok := req.Params["skills"].([]string); ok && len(names) > 0 {
		loaded, err := m.deps.Skills.Get(names)
		if err != nil {
			return nil, fmt.Errorf("loading skills: %w", err)
		}
		for _, s := range loaded {
			active = append(active, models.Skill{
				Name:        s.Name,
				Description: s.Description,
				Content:     s.Content,
				Permanent:   s.Permanent,
			})
		}
	}

	childBudget := budget.Unlimited()
	if hasBudget {
		childBudget = budget.Allocated(alloc)
	}

	return &models.AgentSnapshot{
		AgentID:          childID,
		TaskID:           req.TaskID,
		ParentID:         req.ParentID,
		ProfileName:      profile.Name,
		ModelPool:        profile.ModelPool,
		CapabilityGroups: profile.CapabilityGroups,
		Status:           models.AgentStatusStarting,
		PromptFields: models.PromptFields{
			Injected: models.InjectedFields{
				GlobalContext:     task.GlobalContext,
				GlobalConstraints: task.InitialConstraints,
			},
			Provided: providedFields(req.Params),
		},
		BudgetData:   childBudget,
		ActiveSkills: active,
		InsertedAt:   time.Now(),
	}, nil
}

// resolveProfile uses the requested profile, falling back to the parent's
// and then the default.
func (m *Manager) resolveProfile(ctx context.Context, req router.SpawnRequest) (Profile, error) {
	if name, ok := req.Params["profile"].(string); ok && name != "" {
		profile, found := m.deps.Profiles.Profile(name)
		if !found {
			return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
		}
		return profile, nil
	}
	if parentSnap, err := m.deps.Store.GetAgent(ctx, req.ParentID); err == nil {
		if profile, found := m.deps.Profiles.Profile(parentSnap.ProfileName); found {
			return profile, nil
		}
	}
	return m.deps.Profiles.Default(), nil
}

func providedFields(params map[string]any) models.ProvidedFields {
	str := func(name string) string {
		s, _ := params[name].(string)
		return s
	}
	return models.ProvidedFields{
		TaskDescription:       str("task_description"),
		SuccessCriteria:       str("success_criteria"),
		ImmediateContext:      str("immediate_context"),
		ApproachGuidance:      str("approach_guidance"),
		Role:                  str("role"),
		CognitiveStyle:        str("cognitive_style"),
		OutputStyle:           str("output_style"),
		DelegationStrategy:    str("delegation_strategy"),
		DownstreamConstraints: str("downstream_constraints"),
	}
}

// reportSpawnFailure tells the parent its acknowledged child never came up
// and marks any persisted record failed.
func (m *Manager) reportSpawnFailure(ctx context.Context, parentID, childID string, snap *models.AgentSnapshot, cause error) {
	m.log.Error("spawn failed",
		slog.String("parent_id", parentID),
		slog.String("child_id", childID),
		slog.Any("error", cause))

	if snap != nil {
		failed := snap.Clone()
		failed.Status = models.AgentStatusFailed
		if err := m.deps.Store.SaveAgent(ctx, failed); err != nil {
			m.log.Warn("marking failed child failed", slog.Any("error", err))
		}
	}
	if parent, ok := m.liveAgent(parentID); ok {
		parent.NotifySpawnFailed(childID, cause.Error())
	}
	m.notifyObserver(parentID, childID, cause)
}

// AdjustBudget re-allocates a direct child's budget. Decreases are refused
// when they would strand what the child has already spent or promised to its
// own children; increases are refused without parent headroom.
func (m *Manager) AdjustBudget(ctx context.Context, req router.AdjustRequest) error {
	child, ok := m.liveAgent(req.ChildID)
	if !ok || child.ParentID() != req.ParentID {
		return router.ErrNotDirectChild
	}

	childSnap, err := child.State(ctx)
	if err != nil {
		return fmt.Errorf("reading child state: %w", err)
	}
	current := childSnap.BudgetData.Allocated

	childSpent, err := m.deps.Store.SumAgentCosts(ctx, req.TaskID, req.ChildID)
	if err != nil {
		return fmt.Errorf("querying child spend: %w", err)
	}
	if req.NewAllocation.LessThan(current) {
		if err := budget.ValidateShrink(childSnap.BudgetData, childSpent, req.NewAllocation); err != nil {
			return err
		}
	}

	parentSpent, err := m.deps.Store.SumAgentCosts(ctx, req.TaskID, req.ParentID)
	if err != nil {
		return fmt.Errorf("querying parent spend: %w", err)
	}
	if _, err := budget.AdjustChildAllocation(req.ParentBudget, current, req.NewAllocation, parentSpent); err != nil {
		return err
	}

	if parent, ok := m.liveAgent(req.ParentID); ok {
		parent.CommitBudget(req.NewAllocation.Sub(current))
	}
	updated := childSnap.BudgetData
	updated.Mode = budget.ModeAllocated
	updated.Allocated = req.NewAllocation
	child.SetBudget(updated)
	return nil
}
