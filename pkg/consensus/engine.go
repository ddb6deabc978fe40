// Package consensus reduces the action candidates proposed by an agent's
// model pool to a single agreed action, or reports that no agreement exists.
// Candidate grouping is by action type with count-then-priority selection;
// parameter merging dispatches on the per-parameter rule declared in the
// action schema.
package consensus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/actions"
)

// Embedder produces embeddings for semantic-similarity merging and reports
// the cost of doing so. Implementations live in pkg/llm.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float64, decimal.Decimal, error)
}

// ErrNoConsensus marks a merge failure: candidates disagreed under a rule
// that requires agreement.
var ErrNoConsensus = errors.New("no consensus")

// Result is the outcome of one consensus round. Action is nil when the pool
// failed to agree; Disagreement then explains why in a form suitable for
// feeding back to the agent.
type Result struct {
	Action       *actions.Action
	Disagreement string

	// EmbeddingCost accumulates the cost of any embedding calls made while
	// merging; the caller charges it against the agent's budget.
	EmbeddingCost decimal.Decimal
}

// Engine merges candidate actions. Safe for concurrent use.
type Engine struct {
	registry *actions.Registry
	embedder Embedder
	logger   *slog.Logger
}

func NewEngine(registry *actions.Registry, embedder Embedder, logger *slog.Logger) *Engine {
	return &Engine{
		registry: registry,
		embedder: embedder,
		logger:   logger.With(slog.String("component", "consensus")),
	}
}

// Decide reduces validated candidates to one action. Candidates must be
// non-empty and already schema-validated. The decision is deterministic for
// a fixed candidate order and embedder.
func (e *Engine) Decide(ctx context.Context, candidates []actions.Action) (*Result, error) {
	if len(candidates) == 0 {
		return nil, fmt.Errorf("consensus over zero candidates")
	}

	res := &Result{EmbeddingCost: decimal.Zero}

	chosen, group := e.selectType(candidates)
	schema, ok := e.registry.Get(chosen)
	if !ok {
		return nil, fmt.Errorf("no schema for selected type %q", chosen)
	}

	if len(group) < len(candidates) {
		e.logger.Debug("candidate pool split on action type",
			slog.String("selected", string(chosen)),
			slog.Int("agreeing", len(group)),
			slog.Int("total", len(candidates)))
	}

	merged, err := e.mergeParams(ctx, schema, group, res)
	if err != nil {
		if errors.Is(err, ErrNoConsensus) {
			res.Disagreement = err.Error()
			return res, nil
		}
		return nil, err
	}

	res.Action = &actions.Action{
		Type:      chosen,
		Params:    merged,
		Reasoning: group[0].Reasoning,
	}
	return res, nil
}

// selectType picks the action type with the most candidates; on a count tie
// the lowest-priority (most conservative) type wins.
func (e *Engine) selectType(candidates []actions.Action) (actions.Type, []actions.Action) {
	groups := make(map[actions.Type][]actions.Action)
	var order []actions.Type
	for _, c := range candidates {
		if _, seen := groups[c.Type]; !seen {
			order = append(order, c.Type)
		}
		groups[c.Type] = append(groups[c.Type], c)
	}

	best := order[0]
	for _, t := range order[1:] {
		switch {
		case len(groups[t]) > len(groups[best]):
			best = t
		case len(groups[t]) == len(groups[best]) && e.priority(t) < e.priority(best):
			best = t
		}
	}
	return best, groups[best]
}

func (e *Engine) priority(t actions.Type) int {
	if s, ok := e.registry.Get(t); ok {
		return s.Priority
	}
	return int(^uint(0) >> 1)
}

// mergeParams merges every parameter present in at least one candidate of
// the agreeing group, applying that parameter's declared rule over the
// values of the candidates that supplied it.
func (e *Engine) mergeParams(ctx context.Context, schema *actions.Schema, group []actions.Action, res *Result) (map[string]any, error) {
	merged := make(map[string]any)
	for _, spec := range schema.Params {
		var values []any
		for _, c := range group {
			if v, present := c.Params[spec.Name]; present {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			continue
		}
		out, err := e.mergeValues(ctx, schema, &spec, values, res)
		if err != nil {
			if errors.Is(err, ErrNoConsensus) {
				return nil, fmt.Errorf("parameter %q: %w", spec.Name, err)
			}
			return nil, err
		}
		merged[spec.Name] = out
	}
	return merged, nil
}
