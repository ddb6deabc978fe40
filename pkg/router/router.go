// Package router executes consensus-selected actions. A Router call is one
// short-lived coordination: it owns the action_id, runs the handler with a
// bounded timeout, scrubs secrets and truncates oversized output, writes the
// audit trail, and returns the outcome. Long-lived state (the shell command
// table, MCP connections) lives in the process-wide services, so check and
// terminate continuations never need the router instance that started them.
package router

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/actions"
	"github.com/conclave-run/conclave/pkg/budget"
	"github.com/conclave-run/conclave/pkg/events"
	"github.com/conclave-run/conclave/pkg/llm"
	"github.com/conclave-run/conclave/pkg/masking"
	"github.com/conclave-run/conclave/pkg/mcp"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/registry"
	"github.com/conclave-run/conclave/pkg/secrets"
	"github.com/conclave-run/conclave/pkg/shell"
	"github.com/conclave-run/conclave/pkg/skills"
	"github.com/conclave-run/conclave/pkg/store"
	"github.com/conclave-run/conclave/pkg/web"
)

// Defaults applied when Config leaves fields zero.
const (
	DefaultActionTimeout  = 30 * time.Second
	DefaultMaxResultBytes = 32 * 1024
)

// truncationMarker is appended to any string the byte cap cut short.
const truncationMarker = "\n... [output truncated]"

// ActionResult is the completion notice for one action. Sync dispatches
// return it directly; async dispatches post it to the agent mailbox later.
type ActionResult struct {
	ActionID   string
	ActionType actions.Type
	Outcome    map[string]any
	Reason     string // taxonomy code, empty on success
}

// Failed reports whether the result carries a failure.
func (r ActionResult) Failed() bool { return r.Reason != "" }

// BatchSubResult is per-sub-action bookkeeping for batches. It never
// triggers a consensus cycle.
type BatchSubResult struct {
	ParentActionID string
	SubActionID    string
	ActionType     actions.Type
	Outcome        map[string]any
	Reason         string
}

// ResultPoster is the back-channel into the dispatching agent's mailbox.
type ResultPoster interface {
	PostActionResult(ActionResult)
	PostBatchSubResult(BatchSubResult)
}

// MessageSink receives inter-agent messages. Live agent handles implement
// it; the router discovers it through the registry.
type MessageSink interface {
	DeliverMessage(fromAgentID, content string)
}

// SpawnRequest carries a spawn_child dispatch into the lifecycle layer.
// The parent's budget snapshot travels with the request because the parent
// actor is blocked in this dispatch: the lifecycle must not call back into
// it.
type SpawnRequest struct {
	TaskID       string
	ParentID     string
	ParentBudget budget.Budget
	Params       map[string]any
}

// AdjustRequest carries an adjust_budget dispatch.
type AdjustRequest struct {
	TaskID        string
	ParentID      string
	ParentBudget  budget.Budget
	ChildID       string
	NewAllocation decimal.Decimal
}

// TreeOps is the lifecycle surface the tree actions delegate to.
// Implemented by the lifecycle manager.
type TreeOps interface {
	// SpawnChild validates the escrow, reserves a child ID, and starts the
	// spawn worker. Returns the pre-generated child ID immediately.
	SpawnChild(ctx context.Context, req SpawnRequest) (string, error)
	// DismissChild verifies parenthood and starts the dismissal worker.
	DismissChild(ctx context.Context, parentID, childID string) error
	// AdjustBudget re-allocates a direct child's budget.
	AdjustBudget(ctx context.Context, req AdjustRequest) error
}

// Invocation is one dispatch request from an agent.
type Invocation struct {
	TaskID           string
	AgentID          string
	ParentID         string   // empty for roots
	CapabilityGroups []string // gates which actions may dispatch
	Budget           budget.Budget
	Action           actions.Action
	Poster           ResultPoster // required for async actions

	// parentActionID links batch sub-actions to their container's audit row.
	parentActionID string
}

// Deps are the collaborators a Router dispatches into.
type Deps struct {
	Actions  *actions.Registry
	Agents   *registry.Registry
	Tree     TreeOps
	Shell    *shell.Service
	MCP      *mcp.Service
	Fetcher  *web.Fetcher
	API      *web.APIClient
	Secrets  *secrets.Store
	Skills   *skills.Library
	Scrubber *masking.Scrubber
	LLM      llm.Client
	Store    store.Store
	Bus      *events.Bus
}

// Config tunes dispatch behavior.
type Config struct {
	ActionTimeout  time.Duration // network/MCP handler cap
	MaxResultBytes int           // per-string byte cap on outcomes
	AnswerModel    string        // model the answer_engine action queries
}

// Router dispatches actions. Stateless between calls; safe for concurrent
// use by many agents.
type Router struct {
	deps   Deps
	cfg    Config
	logger *slog.Logger
}

func New(deps Deps, cfg Config, logger *slog.Logger) *Router {
	if cfg.ActionTimeout <= 0 {
		cfg.ActionTimeout = DefaultActionTimeout
	}
	if cfg.MaxResultBytes <= 0 {
		cfg.MaxResultBytes = DefaultMaxResultBytes
	}
	return &Router{
		deps:   deps,
		cfg:    cfg,
		logger: logger.With("component", "router"),
	}
}

// Dispatch runs one action to its sync boundary: sync actions to
// completion, async actions to their acknowledgement. The returned result
// is already scrubbed and truncated.
func (r *Router) Dispatch(ctx context.Context, inv Invocation) ActionResult {
	actionID := uuid.New().String()
	result := ActionResult{ActionID: actionID, ActionType: inv.Action.Type}

	if _, ok := r.deps.Actions.Get(inv.Action.Type); !ok {
		result.Reason = Reason(ErrUnknownAction)
		result.Outcome = map[string]any{"detail": string(inv.Action.Type)}
		return result
	}
	if !r.deps.Actions.Allowed(inv.Action.Type, inv.CapabilityGroups) {
		result.Reason = Reason(actions.ErrCapabilityDenied)
		result.Outcome = map[string]any{"detail": string(inv.Action.Type)}
		return result
	}

	audit := &models.ActionAudit{
		ID:             actionID,
		TaskID:         inv.TaskID,
		AgentID:        inv.AgentID,
		ActionType:     string(inv.Action.Type),
		Params:         inv.Action.Params,
		Status:         models.ActionStatusRunning,
		ParentActionID: inv.parentActionID,
		StartedAt:      time.Now(),
	}
	if err := r.deps.Store.RecordAction(ctx, audit); err != nil {
		r.logger.Warn("action audit insert failed",
			"action_id", actionID, "action", inv.Action.Type, "error", err)
	}

	outcome, err := r.execute(ctx, actionID, inv)
	result.Outcome = r.sanitize(outcome)

	if err != nil {
		err = r.deps.Scrubber.ScrubErr(err)
		result.Reason = Reason(err)
		if result.Outcome == nil {
			result.Outcome = map[string]any{}
		}
		if _, exists := result.Outcome["detail"]; !exists {
			result.Outcome["detail"] = err.Error()
		}
		r.finishAudit(ctx, actionID, models.ActionStatusFailed, result.Outcome, err.Error())
		return result
	}

	r.finishAudit(ctx, actionID, models.ActionStatusCompleted, result.Outcome, "")
	return result
}

func (r *Router) execute(ctx context.Context, actionID string, inv Invocation) (map[string]any, error) {
	params := inv.Action.Params

	switch inv.Action.Type {
	case actions.TypeSpawnChild:
		return r.handleSpawnChild(ctx, inv, params)
	case actions.TypeDismissChild:
		return r.handleDismissChild(ctx, inv, params)
	case actions.TypeAdjustBudget:
		return r.handleAdjustBudget(ctx, inv, params)
	case actions.TypeSendMessage:
		return r.handleSendMessage(ctx, inv, params)
	case actions.TypeWait:
		return r.handleWait(params)
	case actions.TypeOrient:
		return r.handleOrient(params)
	case actions.TypeTodo:
		return r.handleTodo(params)
	case actions.TypeRecordCost:
		return r.handleRecordCost(ctx, inv, params)
	case actions.TypeGenerateSecret:
		return r.handleGenerateSecret(params)
	case actions.TypeSearchSecrets:
		return r.handleSearchSecrets(params)
	case actions.TypeLearnSkills:
		return r.handleLearnSkills(params)
	case actions.TypeCreateSkill:
		return r.handleCreateSkill(params)
	case actions.TypeFileRead:
		return r.handleFileRead(params)
	case actions.TypeFileWrite:
		return r.handleFileWrite(params)
	case actions.TypeShell:
		return r.handleShell(ctx, inv, params)
	case actions.TypeFetchWeb:
		return r.withTimeout(ctx, func(ctx context.Context) (map[string]any, error) {
			return r.handleFetchWeb(ctx, params)
		})
	case actions.TypeCallAPI:
		return r.withTimeout(ctx, func(ctx context.Context) (map[string]any, error) {
			return r.handleCallAPI(ctx, params)
		})
	case actions.TypeCallMCP:
		return r.withTimeout(ctx, func(ctx context.Context) (map[string]any, error) {
			return r.handleCallMCP(ctx, inv, params)
		})
	case actions.TypeAnswerEngine:
		return r.withTimeout(ctx, func(ctx context.Context) (map[string]any, error) {
			return r.handleAnswerEngine(ctx, inv, params)
		})
	case actions.TypeBatchSync:
		return r.handleBatchSync(ctx, actionID, inv, params)
	case actions.TypeBatchAsync:
		return r.handleBatchAsync(ctx, actionID, inv, params)
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownAction, inv.Action.Type)
}

func (r *Router) withTimeout(ctx context.Context, fn func(context.Context) (map[string]any, error)) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.ActionTimeout)
	defer cancel()
	return fn(ctx)
}

func (r *Router) finishAudit(ctx context.Context, actionID string, status models.ActionStatus, outcome map[string]any, errMsg string) {
	if err := r.deps.Store.FinishAction(ctx, actionID, status, outcome, errMsg); err != nil {
		r.logger.Warn("action audit update failed", "action_id", actionID, "error", err)
	}
}

// sanitize scrubs secret bytes and truncates oversized strings throughout
// the outcome tree. Scrubbing is total: the agent and the store only ever
// see the sanitized form.
func (r *Router) sanitize(outcome map[string]any) map[string]any {
	if outcome == nil {
		return nil
	}
	return r.sanitizeMap(outcome)
}

func (r *Router) sanitizeMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = r.sanitizeValue(v)
	}
	return out
}

func (r *Router) sanitizeValue(v any) any {
	switch t := v.(type) {
	case string:
		s := r.deps.Scrubber.Scrub(t)
		if len(s) > r.cfg.MaxResultBytes {
			s = s[:r.cfg.MaxResultBytes] + truncationMarker
		}
		return s
	case map[string]any:
		return r.sanitizeMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = r.sanitizeValue(e)
		}
		return out
	case []map[string]any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = r.sanitizeMap(e)
		}
		return out
	default:
		return v
	}
}

// Param readers. Validated params carry canonical types (string, float64,
// bool, []string, map[string]any); absent optional params read as zero.

func stringParam(params map[string]any, name string) string {
	s, _ := params[name].(string)
	return s
}

func numberParam(params map[string]any, name string) (float64, bool) {
	f, ok := params[name].(float64)
	return f, ok
}

func boolParam(params map[string]any, name string) bool {
	b, _ := params[name].(bool)
	return b
}

func stringListParam(params map[string]any, name string) []string {
	switch t := params[name].(type) {
	case []string:
		return t
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
