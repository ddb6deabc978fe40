package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CostKind classifies cost ledger rows.
type CostKind string

// Cost kinds.
const (
	CostKindLLM       CostKind = "llm"
	CostKindEmbedding CostKind = "embedding"
	CostKindAction    CostKind = "action"
	CostKindRecorded  CostKind = "recorded"
	// CostKindAbsorbed attributes a dismissed child's unspent allocation back
	// to the parent so subtree spend stays conserved.
	CostKindAbsorbed CostKind = "absorbed"
)

// CostRecord is one append-only cost ledger row.
type CostRecord struct {
	ID          string          `json:"id"`
	TaskID      string          `json:"task_id"`
	AgentID     string          `json:"agent_id"`
	Kind        CostKind        `json:"kind"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}

// ActionStatus is the audit status of a dispatched action.
type ActionStatus string

// Action audit statuses. Legal transitions: pending → running → {completed,
// failed}, and pending → failed.
const (
	ActionStatusPending   ActionStatus = "pending"
	ActionStatusRunning   ActionStatus = "running"
	ActionStatusCompleted ActionStatus = "completed"
	ActionStatusFailed    ActionStatus = "failed"
)

// ActionAudit is the append-only audit row for one dispatched action.
type ActionAudit struct {
	ID             string         `json:"id"`
	TaskID         string         `json:"task_id"`
	AgentID        string         `json:"agent_id"`
	ActionType     string         `json:"action_type"`
	Params         map[string]any `json:"params,omitempty"`
	Result         map[string]any `json:"result,omitempty"`
	Status         ActionStatus   `json:"status"`
	ParentActionID string         `json:"parent_action_id,omitempty"`
	StartedAt      time.Time      `json:"started_at"`
	CompletedAt    *time.Time     `json:"completed_at,omitempty"`
	ErrorMessage   string         `json:"error_message,omitempty"`
}
