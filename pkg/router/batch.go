package router

import (
	"context"
	"fmt"

	"github.com/conclave-run/conclave/pkg/actions"
)

// errBatchSubFailed wraps a sub-action failure so the batch container fails
// with the sub-action's own taxonomy code.
type errBatchSubFailed struct {
	index  int
	reason string
}

func (e *errBatchSubFailed) Error() string {
	return fmt.Sprintf("sub-action %d failed: %s", e.index, e.reason)
}

// handleBatchSync runs sub-actions in order, stopping at the first failure.
// Preceding successes are preserved in the outcome; later actions never
// run.
func (r *Router) handleBatchSync(ctx context.Context, actionID string, inv Invocation, params map[string]any) (map[string]any, error) {
	results, failed := r.runBatch(ctx, actionID, inv, params)
	outcome := map[string]any{"results": results}
	if failed != nil {
		outcome["failed_at"] = failed.index
		outcome["detail"] = failed.Error()
		return outcome, failed
	}
	return outcome, nil
}

// handleBatchAsync acknowledges immediately and completes through the
// poster: per-sub bookkeeping via batch sub results (never a consensus
// trigger) and one final action result when the batch ends.
func (r *Router) handleBatchAsync(ctx context.Context, actionID string, inv Invocation, params map[string]any) (map[string]any, error) {
	if inv.Poster == nil {
		return nil, fmt.Errorf("%w: batch_async without a result poster", ErrRouterExit)
	}

	go func() {
		// The ack already returned; the batch must not die with the
		// dispatch call's deadline.
		results, failed := r.runBatch(context.WithoutCancel(ctx), actionID, inv, params)
		final := ActionResult{
			ActionID:   actionID,
			ActionType: actions.TypeBatchAsync,
			Outcome:    r.sanitize(map[string]any{"results": results}),
		}
		if failed != nil {
			final.Reason = failed.reason
			final.Outcome["failed_at"] = failed.index
			final.Outcome["detail"] = failed.Error()
		}
		inv.Poster.PostActionResult(final)
	}()

	return map[string]any{
		"batch_id": actionID,
		"status":   "running",
	}, nil
}

// runBatch executes the container's sub-actions sequentially. Every
// sub-action gets its own audit row linked to the container, and its result
// is posted as bookkeeping when a poster is attached.
func (r *Router) runBatch(ctx context.Context, parentActionID string, inv Invocation, params map[string]any) ([]map[string]any, *errBatchSubFailed) {
	subs, _ := params["actions"].([]actions.Action)

	var results []map[string]any
	for i, sub := range subs {
		subInv := Invocation{
			TaskID:           inv.TaskID,
			AgentID:          inv.AgentID,
			ParentID:         inv.ParentID,
			CapabilityGroups: inv.CapabilityGroups,
			Action:           sub,
			Poster:           inv.Poster,
			parentActionID:   parentActionID,
		}
		res := r.Dispatch(ctx, subInv)

		if inv.Poster != nil {
			inv.Poster.PostBatchSubResult(BatchSubResult{
				ParentActionID: parentActionID,
				SubActionID:    res.ActionID,
				ActionType:     sub.Type,
				Outcome:        res.Outcome,
				Reason:         res.Reason,
			})
		}

		if res.Failed() {
			return results, &errBatchSubFailed{index: i, reason: res.Reason}
		}
		entry := map[string]any{
			"action":  string(sub.Type),
			"outcome": res.Outcome,
		}
		results = append(results, entry)
	}
	return results, nil
}
