package router

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/secrets"
	"github.com/conclave-run/conclave/pkg/skills"
)

func (r *Router) handleSpawnChild(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	childID, err := r.deps.Tree.SpawnChild(ctx, SpawnRequest{
		TaskID:       inv.TaskID,
		ParentID:     inv.AgentID,
		ParentBudget: inv.Budget,
		Params:       params,
	})
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"child_id": childID,
		"status":   "spawning",
	}, nil
}

func (r *Router) handleDismissChild(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	childID := stringParam(params, "child_id")
	if err := r.deps.Tree.DismissChild(ctx, inv.AgentID, childID); err != nil {
		return nil, err
	}
	return map[string]any{
		"child_id": childID,
		"status":   "dismissing",
	}, nil
}

func (r *Router) handleAdjustBudget(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	childID := stringParam(params, "child_id")
	amount, _ := numberParam(params, "new_allocation")
	newAllocation := decimal.NewFromFloat(amount)
	if err := r.deps.Tree.AdjustBudget(ctx, AdjustRequest{
		TaskID:        inv.TaskID,
		ParentID:      inv.AgentID,
		ParentBudget:  inv.Budget,
		ChildID:       childID,
		NewAllocation: newAllocation,
	}); err != nil {
		return nil, err
	}
	return map[string]any{
		"child_id":       childID,
		"new_allocation": newAllocation.String(),
	}, nil
}

// handleSendMessage routes content by explicit target. A root agent with no
// target addresses the user; a child with no target addresses its parent. A
// named target that is not alive fails with agent_not_found — it is never
// silently re-routed to the user.
func (r *Router) handleSendMessage(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	content := stringParam(params, "content")
	target := stringParam(params, "target_id")

	if target == "" {
		if inv.ParentID == "" {
			if err := r.publishUserMessage(ctx, inv, content); err != nil {
				return nil, err
			}
			return map[string]any{"delivered_to": "user"}, nil
		}
		target = inv.ParentID
	}

	handle, err := r.deps.Agents.Get(target)
	if err != nil {
		return nil, fmt.Errorf("delivering to %s: %w", target, err)
	}
	sink, ok := handle.(MessageSink)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no mailbox", ErrRouterExit, target)
	}
	sink.DeliverMessage(inv.AgentID, r.deps.Scrubber.Scrub(content))
	return map[string]any{"delivered_to": target}, nil
}

func (r *Router) publishUserMessage(ctx context.Context, inv Invocation, content string) error {
	content = r.deps.Scrubber.Scrub(content)
	entry := &models.LogEntry{
		TaskID:  inv.TaskID,
		AgentID: inv.AgentID,
		Level:   "message",
		Content: content,
	}
	if err := r.deps.Store.AppendLog(ctx, entry); err != nil {
		return fmt.Errorf("persisting user message: %w", err)
	}
	return r.deps.Bus.Publish(ctx, inv.TaskID, events.TaskMessagesTopic(inv.TaskID), map[string]any{
		"type":     events.TypeTaskMessage,
		"agent_id": inv.AgentID,
		"content":  content,
	})
}

// handleWait acknowledges the wait; the agent schedules its own timer from
// the echoed value so the expiry lands in its mailbox, not in a router
// goroutine.
func (r *Router) handleWait(params map[string]any) (map[string]any, error) {
	switch wait := params["wait"].(type) {
	case bool:
		return map[string]any{"wait": wait}, nil
	case float64:
		return map[string]any{"wait": wait}, nil
	default:
		return nil, fmt.Errorf("%w: wait", ErrInvalidMode)
	}
}

func (r *Router) handleOrient(params map[string]any) (map[string]any, error) {
	outcome := map[string]any{
		"reflection": stringParam(params, "reflection"),
	}
	if narrative := stringParam(params, "narrative_update"); narrative != "" {
		outcome["narrative_update"] = narrative
	}
	return outcome, nil
}

func (r *Router) handleTodo(params map[string]any) (map[string]any, error) {
	return map[string]any{"items": params["items"]}, nil
}

func (r *Router) handleRecordCost(ctx context.Context, inv Invocation, params map[string]any) (map[string]any, error) {
	amount, _ := numberParam(params, "amount")
	cost := &models.CostRecord{
		ID:          uuid.New().String(),
		TaskID:      inv.TaskID,
		AgentID:     inv.AgentID,
		Kind:        models.CostKindRecorded,
		Amount:      decimal.NewFromFloat(amount),
		Description: stringParam(params, "description"),
		CreatedAt:   time.Now(),
	}
	if err := r.deps.Store.AddCost(ctx, cost); err != nil {
		return nil, fmt.Errorf("recording cost: %w", err)
	}
	return map[string]any{"amount": cost.Amount.String()}, nil
}

func (r *Router) handleGenerateSecret(params map[string]any) (map[string]any, error) {
	name := stringParam(params, "name")
	length := secrets.DefaultLength
	if f, ok := numberParam(params, "length"); ok {
		length = int(f)
	}
	if err := r.deps.Secrets.Generate(name, length); err != nil {
		return nil, fmt.Errorf("generating secret %s: %w", name, err)
	}
	return map[string]any{
		"name":        name,
		"placeholder": "{{secret:" + name + "}}",
	}, nil
}

func (r *Router) handleSearchSecrets(params map[string]any) (map[string]any, error) {
	names := r.deps.Secrets.Search(stringParam(params, "query"))
	out := make([]any, len(names))
	for i, n := range names {
		out[i] = n
	}
	return map[string]any{"names": out}, nil
}

func (r *Router) handleLearnSkills(params map[string]any) (map[string]any, error) {
	loaded, err := r.deps.Skills.Get(stringListParam(params, "names"))
	if err != nil {
		return nil, fmt.Errorf("loading skills: %w", err)
	}
	out := make([]map[string]any, len(loaded))
	for i, s := range loaded {
		out[i] = map[string]any{
			"name":        s.Name,
			"description": s.Description,
			"content":     s.Content,
			"permanent":   s.Permanent,
		}
	}
	return map[string]any{"skills": out}, nil
}

func (r *Router) handleCreateSkill(params map[string]any) (map[string]any, error) {
	skill := skills.Skill{
		Name:        stringParam(params, "name"),
		Description: stringParam(params, "description"),
		Content:     stringParam(params, "content"),
		Permanent:   boolParam(params, "permanent"),
	}
	if err := r.deps.Skills.Create(skill); err != nil {
		return nil, fmt.Errorf("creating skill %s: %w", skill.Name, err)
	}
	return map[string]any{
		"name":      skill.Name,
		"permanent": skill.Permanent,
	}, nil
}
