// Package store defines the persistence boundary for tasks, agent
// snapshots, the action audit trail, the cost ledger, logs, and replayable
// events. Two implementations exist: the ent/Postgres store used in
// production and an in-memory store for tests.
package store

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/models"
)

// ErrNotFound is returned for lookups of rows that do not exist.
var ErrNotFound = errors.New("not found")

// Store is the persistence surface. All methods are safe for concurrent
// use.
type Store interface {
	// CreateTask inserts a new task.
	CreateTask(ctx context.Context, task *models.Task) error
	// GetTask fetches one task.
	GetTask(ctx context.Context, id string) (*models.Task, error)
	// UpdateTask persists status, result, error message, and completion time.
	UpdateTask(ctx context.Context, task *models.Task) error
	// ListTasksByStatus returns tasks in any of the given statuses.
	ListTasksByStatus(ctx context.Context, statuses ...models.TaskStatus) ([]*models.Task, error)
	// DeleteTask removes a task and everything cascading from it.
	DeleteTask(ctx context.Context, id string) error

	// SaveAgent upserts an agent snapshot (the actor's write-through).
	SaveAgent(ctx context.Context, snap *models.AgentSnapshot) error
	// GetAgent fetches one agent snapshot.
	GetAgent(ctx context.Context, agentID string) (*models.AgentSnapshot, error)
	// ListAgentsByTask returns a task's agents ordered by insertion, so
	// parents always precede their children.
	ListAgentsByTask(ctx context.Context, taskID string) ([]*models.AgentSnapshot, error)
	// DeleteAgent removes one agent snapshot.
	DeleteAgent(ctx context.Context, agentID string) error

	// RecordAction inserts an audit row.
	RecordAction(ctx context.Context, audit *models.ActionAudit) error
	// FinishAction closes an audit row with its terminal status.
	FinishAction(ctx context.Context, id string, status models.ActionStatus, result map[string]any, errMsg string) error

	// AddCost appends a cost ledger row.
	AddCost(ctx context.Context, cost *models.CostRecord) error
	// SumCosts totals a task's ledger.
	SumCosts(ctx context.Context, taskID string) (decimal.Decimal, error)
	// SumAgentCosts totals the ledger rows attributed to the given agents.
	SumAgentCosts(ctx context.Context, taskID string, agentIDs ...string) (decimal.Decimal, error)

	// AppendLog appends a log row.
	AppendLog(ctx context.Context, entry *models.LogEntry) error

	// AppendEvent persists a replayable event, assigning its ID.
	AppendEvent(ctx context.Context, event *models.Event) error
	// ListEvents returns events with ID greater than afterID, ascending.
	// taskID and topic filter when non-empty; at least one must be set.
	ListEvents(ctx context.Context, taskID, topic string, afterID int64) ([]*models.Event, error)

	// Close releases the store's resources.
	Close() error
}
