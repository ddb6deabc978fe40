// Package memstore is the in-memory Store used by unit tests and by
// single-process runs that opt out of Postgres.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/store"
)

// Store keeps everything in maps guarded by one mutex.
type Store struct {
	mu sync.RWMutex

	tasks   map[string]*models.Task
	agents  map[string]*models.AgentSnapshot
	actions map[string]*models.ActionAudit
	costs   []*models.CostRecord
	logs    []*models.LogEntry
	events  []*models.Event

	nextEventID int64
	nextLogID   int64
}

var _ store.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		tasks:   make(map[string]*models.Task),
		agents:  make(map[string]*models.AgentSnapshot),
		actions: make(map[string]*models.ActionAudit),
	}
}

func (s *Store) CreateTask(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tasks[task.ID]; exists {
		return fmt.Errorf("task %s already exists", task.ID)
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	clone := *task
	s.tasks[task.ID] = &clone
	return nil
}

func (s *Store) GetTask(_ context.Context, id string) (*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	task, ok := s.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}
	clone := *task
	return &clone, nil
}

func (s *Store) UpdateTask(_ context.Context, task *models.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[task.ID]; !ok {
		return fmt.Errorf("task %s: %w", task.ID, store.ErrNotFound)
	}
	clone := *task
	s.tasks[task.ID] = &clone
	return nil
}

func (s *Store) ListTasksByStatus(_ context.Context, statuses ...models.TaskStatus) ([]*models.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[models.TaskStatus]bool, len(statuses))
	for _, st := range statuses {
		want[st] = true
	}

	var out []*models.Task
	for _, task := range s.tasks {
		if len(want) == 0 || want[task.Status] {
			clone := *task
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (s *Store) DeleteTask(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.tasks[id]; !ok {
		return fmt.Errorf("task %s: %w", id, store.ErrNotFound)
	}
	delete(s.tasks, id)

	// Cascade, matching the SQL schema's ON DELETE CASCADE.
	for agentID, snap := range s.agents {
		if snap.TaskID == id {
			delete(s.agents, agentID)
		}
	}
	for actionID, audit := range s.actions {
		if audit.TaskID == id {
			delete(s.actions, actionID)
		}
	}
	s.costs = filterSlice(s.costs, func(c *models.CostRecord) bool { return c.TaskID != id })
	s.logs = filterSlice(s.logs, func(l *models.LogEntry) bool { return l.TaskID != id })
	s.events = filterSlice(s.events, func(e *models.Event) bool { return e.TaskID != id })
	return nil
}

func (s *Store) SaveAgent(_ context.Context, snap *models.AgentSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := snap.Clone()
	if existing, ok := s.agents[snap.AgentID]; ok {
		clone.InsertedAt = existing.InsertedAt
	} else if clone.InsertedAt.IsZero() {
		clone.InsertedAt = time.Now()
	}
	s.agents[snap.AgentID] = clone
	return nil
}

func (s *Store) GetAgent(_ context.Context, agentID string) (*models.AgentSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap, ok := s.agents[agentID]
	if !ok {
		return nil, fmt.Errorf("agent %s: %w", agentID, store.ErrNotFound)
	}
	return snap.Clone(), nil
}

func (s *Store) ListAgentsByTask(_ context.Context, taskID string) ([]*models.AgentSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.AgentSnapshot
	for _, snap := range s.agents {
		if snap.TaskID == taskID {
			out = append(out, snap.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].InsertedAt.Before(out[j].InsertedAt) })
	return out, nil
}

func (s *Store) DeleteAgent(_ context.Context, agentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.agents[agentID]; !ok {
		return fmt.Errorf("agent %s: %w", agentID, store.ErrNotFound)
	}
	delete(s.agents, agentID)
	return nil
}

func (s *Store) RecordAction(_ context.Context, audit *models.ActionAudit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *audit
	if clone.StartedAt.IsZero() {
		clone.StartedAt = time.Now()
	}
	s.actions[audit.ID] = &clone
	return nil
}

func (s *Store) FinishAction(_ context.Context, id string, status models.ActionStatus, result map[string]any, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	audit, ok := s.actions[id]
	if !ok {
		return fmt.Errorf("action %s: %w", id, store.ErrNotFound)
	}
	now := time.Now()
	audit.Status = status
	audit.Result = result
	audit.ErrorMessage = errMsg
	audit.CompletedAt = &now
	return nil
}

func (s *Store) AddCost(_ context.Context, cost *models.CostRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *cost
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now()
	}
	s.costs = append(s.costs, &clone)
	return nil
}

func (s *Store) SumCosts(_ context.Context, taskID string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, c := range s.costs {
		if c.TaskID == taskID {
			total = total.Add(c.Amount)
		}
	}
	return total, nil
}

func (s *Store) SumAgentCosts(_ context.Context, taskID string, agentIDs ...string) (decimal.Decimal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	want := make(map[string]bool, len(agentIDs))
	for _, id := range agentIDs {
		want[id] = true
	}

	total := decimal.Zero
	for _, c := range s.costs {
		if c.TaskID == taskID && want[c.AgentID] {
			total = total.Add(c.Amount)
		}
	}
	return total, nil
}

func (s *Store) AppendLog(_ context.Context, entry *models.LogEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *entry
	s.nextLogID++
	clone.ID = s.nextLogID
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now()
	}
	s.logs = append(s.logs, &clone)
	entry.ID = clone.ID
	return nil
}

func (s *Store) AppendEvent(_ context.Context, event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *event
	s.nextEventID++
	clone.ID = s.nextEventID
	if clone.CreatedAt.IsZero() {
		clone.CreatedAt = time.Now()
	}
	s.events = append(s.events, &clone)
	event.ID = clone.ID
	return nil
}

func (s *Store) ListEvents(_ context.Context, taskID, topic string, afterID int64) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*models.Event
	for _, e := range s.events {
		if e.ID <= afterID {
			continue
		}
		if taskID != "" && e.TaskID != taskID {
			continue
		}
		if topic != "" && e.Topic != topic {
			continue
		}
		clone := *e
		out = append(out, &clone)
	}
	return out, nil
}

func (s *Store) Close() error { return nil }

func filterSlice[T any](in []*T, keep func(*T) bool) []*T {
	out := in[:0]
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
