package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/router"
)

// modelReply is one model's contribution to a cycle.
type modelReply struct {
	model string
	text  string
	cost  decimal.Decimal
	err   error
}

// runCycle runs one consensus cycle: fan the prompt out to the model pool,
// merge the proposals, dispatch the agreed action, and fold the result back
// into state. The return value reports whether another cycle should follow
// immediately.
func (a *Actor) runCycle(ctx context.Context) bool {
	a.cancelWaitTimer()
	a.state.Status = models.AgentStatusRunning

	spent := a.currentSpend(ctx)
	replies := a.collectReplies(ctx, spent)

	candidates := make([]actions.Action, 0, len(replies))
	for _, r := range replies {
		if r.err != nil {
			a.log.Warn("model call failed", slog.String("model", r.model), slog.Any("error", r.err))
			continue
		}
		a.appendModelHistory(r.model, models.HistoryAgent, r.text)

		cand, err := parseCandidate(r.text)
		if err != nil {
			a.log.Warn("unparseable proposal dropped", slog.String("model", r.model), slog.Any("error", err))
			continue
		}
		if err := a.deps.Validator.Validate(&cand); err != nil {
			a.log.Warn("invalid proposal dropped", slog.String("model", r.model), slog.Any("error", err))
			continue
		}
		candidates = append(candidates, cand)
	}

	allFailed := true
	for _, r := range replies {
		if r.err == nil {
			allFailed = false
			break
		}
	}
	if allFailed {
		a.llmFailures++
		if a.llmFailures < a.cfg.LLMAttempts {
			a.log.Warn("all models failed, retrying", slog.Int("attempt", a.llmFailures))
			a.scheduleRetry(a.llmFailures)
			return false
		}
		a.log.Error("model pool unavailable, going idle", slog.Int("attempts", a.llmFailures))
		a.llmFailures = 0
		a.goIdle(ctx)
		return false
	}
	a.llmFailures = 0

	if len(candidates) == 0 {
		return a.recoverFrom(ctx, "none of the proposals was a valid action")
	}

	decision, err := a.deps.Consensus.Decide(ctx, candidates)
	if err != nil {
		a.log.Error("consensus engine failed", slog.Any("error", err))
		a.goIdle(ctx)
		return false
	}
	if decision.EmbeddingCost.GreaterThan(decimal.Zero) {
		a.recordCost(ctx, models.CostKindEmbedding, decision.EmbeddingCost, "consensus embeddings")
	}
	if decision.Action == nil {
		return a.recoverFrom(ctx, "the model pool disagreed: "+decision.Disagreement)
	}
	a.recovering = false

	// Merged parameters can lose a required value when the pool split; the
	// validator is idempotent, so re-checking the merged action is cheap.
	if err := a.deps.Validator.Validate(decision.Action); err != nil {
		return a.recoverFrom(ctx, "the merged action was invalid: "+err.Error())
	}

	a.recordDecision(decision.Action)

	result := a.deps.Router.Dispatch(ctx, router.Invocation{
		TaskID:           a.state.TaskID,
		AgentID:          a.state.AgentID,
		ParentID:         a.state.ParentID,
		CapabilityGroups: a.state.CapabilityGroups,
		Budget:           a.state.BudgetData,
		Action:           *decision.Action,
		Poster:           a,
	})
	a.incorporateResult(result)
	a.persist(ctx)

	return a.afterAction(ctx, result)
}

// collectReplies fans the prompt out to every model in the pool in parallel
// and records each call's cost.
func (a *Actor) collectReplies(ctx context.Context, spent decimal.Decimal) []modelReply {
	system := a.buildSystemPrompt(spent)

	replies := make([]modelReply, len(a.state.ModelPool))
	var wg sync.WaitGroup
	for i, model := range a.state.ModelPool {
		wg.Add(1)
		go func(i int, model string) {
			defer wg.Done()
			resp, err := a.deps.LLM.Complete(ctx, llm.CompletionRequest{
				Model:       model,
				System:      system,
				Messages:    historyMessages(a.state.ModelHistories[model]),
				MaxTokens:   a.cfg.MaxTokens,
				Temperature: a.cfg.Temperature,
			})
			if err != nil {
				replies[i] = modelReply{model: model, err: err}
				return
			}
			replies[i] = modelReply{model: model, text: resp.Text, cost: resp.Cost}
		}(i, model)
	}
	wg.Wait()

	for _, r := range replies {
		if r.err == nil && r.cost.GreaterThan(decimal.Zero) {
			a.recordCost(ctx, models.CostKindLLM, r.cost, r.model)
		}
	}
	return replies
}

// recoverFrom feeds a consensus failure back to the pool and retries once.
// A second failure in a row goes idle instead of looping.
func (a *Actor) recoverFrom(ctx context.Context, feedback string) bool {
	a.appendHistory(models.HistoryUser,
		"Consensus failed: "+feedback+". Propose again, favoring the simplest viable action.")
	if a.recovering {
		a.log.Warn("consensus failed twice, going idle", slog.String("feedback", feedback))
		a.recovering = false
		a.goIdle(ctx)
		return false
	}
	a.recovering = true
	return true
}

func (a *Actor) goIdle(ctx context.Context) {
	a.state.Status = models.AgentStatusIdle
	a.persist(ctx)
}

// recordDecision writes the agreed action into every history and announces
// it on the agent's log topic.
func (a *Actor) recordDecision(action *actions.Action) {
	summary := string(action.Type)
	if action.Reasoning != "" {
		summary += ": " + action.Reasoning
	}
	a.appendHistory(models.HistoryDecision, summary)

	a.deps.Bus.PublishTransient(a.state.TaskID, events.AgentLogsTopic(a.state.AgentID), map[string]any{
		"type":      events.TypeAgentLog,
		"agent_id":  a.state.AgentID,
		"action":    string(action.Type),
		"reasoning": action.Reasoning,
	})
}

// incorporateResult folds an action result into agent state and history.
// Called inline for sync dispatches and from the mailbox for async
// completions.
func (a *Actor) incorporateResult(res router.ActionResult) {
	a.appendHistory(models.HistoryUser, formatResult(res))
	if res.Failed() {
		return
	}

	switch res.ActionType {
	case actions.TypeTodo:
		a.state.Todos = todosFromOutcome(res.Outcome["items"])
	case actions.TypeLearnSkills:
		a.addSkills(res.Outcome["skills"])
	case actions.TypeOrient:
		if narrative, ok := res.Outcome["narrative_update"].(string); ok && narrative != "" {
			a.state.PromptFields.Transformed.Narrative = narrative
		}
	}
}

// afterAction decides whether the loop should cycle again. Waits are the
// only actions that park the agent; everything else re-triggers so the
// agent keeps working until it chooses to stop.
func (a *Actor) afterAction(ctx context.Context, res router.ActionResult) bool {
	if res.ActionType != actions.TypeWait || res.Failed() {
		return true
	}
	switch wait := res.Outcome["wait"].(type) {
	case bool:
		if !wait {
			return true
		}
		a.goIdle(ctx)
		return false
	case float64:
		a.scheduleWait(wait)
		a.goIdle(ctx)
		return false
	}
	return true
}

func (a *Actor) addSkills(raw any) {
	list, ok := raw.([]any)
	if !ok {
		return
	}
	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		name, _ := m["name"].(string)
		if name == "" || hasSkill(a.state.ActiveSkills, name) {
			continue
		}
		desc, _ := m["description"].(string)
		content, _ := m["content"].(string)
		permanent, _ := m["permanent"].(bool)
		a.state.ActiveSkills = append(a.state.ActiveSkills, models.Skill{
			Name:        name,
			Description: desc,
			Content:     content,
			Permanent:   permanent,
		})
	}
}

func (a *Actor) currentSpend(ctx context.Context) decimal.Decimal {
	spent, err := a.deps.Store.SumAgentCosts(ctx, a.state.TaskID, a.state.AgentID)
	if err != nil {
		a.log.Warn("spend query failed", slog.Any("error", err))
		return decimal.Zero
	}
	return spent
}

func (a *Actor) recordCost(ctx context.Context, kind models.CostKind, amount decimal.Decimal, description string) {
	cost := &models.CostRecord{
		ID:          newID(),
		TaskID:      a.state.TaskID,
		AgentID:     a.state.AgentID,
		Kind:        kind,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now(),
	}
	if err := a.deps.Store.AddCost(ctx, cost); err != nil {
		a.log.Warn("cost record failed", slog.Any("error", err))
	}
}

// parseCandidate extracts the action object from a model reply. Models wrap
// JSON in prose and code fences despite instructions; everything outside the
// outermost braces is ignored.
func parseCandidate(text string) (actions.Action, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return actions.Action{}, fmt.Errorf("no JSON object in reply")
	}

	var proposal struct {
		Action    string         `json:"action"`
		Params    map[string]any `json:"params"`
		Reasoning string         `json:"reasoning"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &proposal); err != nil {
		return actions.Action{}, fmt.Errorf("parsing proposal: %w", err)
	}
	if proposal.Action == "" {
		return actions.Action{}, fmt.Errorf("proposal has no action field")
	}
	return actions.Action{
		Type:      actions.Type(proposal.Action),
		Params:    proposal.Params,
		Reasoning: proposal.Reasoning,
	}, nil
}

func formatResult(res router.ActionResult) string {
	if res.Failed() {
		detail, _ := res.Outcome["detail"].(string)
		if detail == "" {
			detail = res.Reason
		}
		return fmt.Sprintf("Action %s failed (%s): %s", res.ActionType, res.Reason, detail)
	}
	outcome, err := json.Marshal(res.Outcome)
	if err != nil {
		return fmt.Sprintf("Action %s completed.", res.ActionType)
	}
	return fmt.Sprintf("Action %s completed: %s", res.ActionType, outcome)
}

func formatBatchSubResult(sub router.BatchSubResult) string {
	if sub.Reason != "" {
		return fmt.Sprintf("Batch step %s failed (%s).", sub.ActionType, sub.Reason)
	}
	return fmt.Sprintf("Batch step %s completed.", sub.ActionType)
}

func todosFromOutcome(raw any) []models.Todo {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	out := make([]models.Todo, 0, len(items))
	for _, e := range items {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		content, _ := m["content"].(string)
		state, _ := m["state"].(string)
		if state == "" {
			state = string(models.TodoStateTodo)
		}
		out = append(out, models.Todo{Content: content, State: models.TodoState(state)})
	}
	return out
}

func hasSkill(skills []models.Skill, name string) bool {
	for _, s := range skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

func newID() string { return uuid.New().String() }
