// Package entstore is the ent/Postgres-backed Store.
package entstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/conclave-run/conclave/ent"
	entaction "github.com/conclave-run/conclave/ent/actionrecord"
	entagent "github.com/conclave-run/conclave/ent/agentrecord"
	entcost "github.com/conclave-run/conclave/ent/costrecord"
	entevent "github.com/conclave-run/conclave/ent/event"
	enttask "github.com/conclave-run/conclave/ent/task"
	"github.com/conclave-run/conclave/pkg/models"
	"github.com/conclave-run/conclave/pkg/store"
)

// Store implements store.Store on an ent client.
type Store struct {
	client *ent.Client
}

var _ store.Store = (*Store)(nil)

var nowFunc = time.Now

func New(client *ent.Client) *Store {
	return &Store{client: client}
}

func (s *Store) CreateTask(ctx context.Context, task *models.Task) error {
	create := s.client.Task.Create().
		SetID(task.ID).
		SetPrompt(task.Prompt).
		SetStatus(enttask.Status(task.Status)).
		SetProfileName(task.ProfileName).
		SetInitialConstraints(task.InitialConstraints)
	if task.GlobalContext != "" {
		create.SetGlobalContext(task.GlobalContext)
	}
	if !task.CreatedAt.IsZero() {
		create.SetCreatedAt(task.CreatedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("creating task %s: %w", task.ID, err)
	}
	return nil
}

func (s *Store) GetTask(ctx context.Context, id string) (*models.Task, error) {
	row, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("task %s: %w", id, store.ErrNotFound)
		}
		return nil, fmt.Errorf("getting task %s: %w", id, err)
	}
	return taskFromRow(row), nil
}

func (s *Store) UpdateTask(ctx context.Context, task *models.Task) error {
	update := s.client.Task.UpdateOneID(task.ID).
		SetStatus(enttask.Status(task.Status))
	if task.Result != "" {
		update.SetResult(task.Result)
	}
	if task.ErrorMessage != "" {
		update.SetErrorMessage(task.ErrorMessage)
	}
	if task.CompletedAt != nil {
		update.SetCompletedAt(*task.CompletedAt)
	}
	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("task %s: %w", task.ID, store.ErrNotFound)
		}
		return fmt.Errorf("updating task %s: %w", task.ID, err)
	}
	return nil
}

func (s *Store) ListTasksByStatus(ctx context.Context, statuses ...models.TaskStatus) ([]*models.Task, error) {
	query := s.client.Task.Query().Order(ent.Asc(enttask.FieldCreatedAt))
	if len(statuses) > 0 {
		converted := make([]enttask.Status, len(statuses))
		for i, st := range statuses {
			converted[i] = enttask.Status(st)
		}
		query.Where(enttask.StatusIn(converted...))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	out := make([]*models.Task, len(rows))
	for i, row := range rows {
		out[i] = taskFromRow(row)
	}
	return out, nil
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if err := s.client.Task.DeleteOneID(id).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("task %s: %w", id, store.ErrNotFound)
		}
		return fmt.Errorf("deleting task %s: %w", id, err)
	}
	return nil
}

func (s *Store) SaveAgent(ctx context.Context, snap *models.AgentSnapshot) error {
	exists, err := s.client.AgentRecord.Query().
		Where(entagent.ID(snap.AgentID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("checking agent %s: %w", snap.AgentID, err)
	}

	promptFields, err := toJSONMap(snap.PromptFields)
	if err != nil {
		return fmt.Errorf("encoding prompt fields: %w", err)
	}
	histories, err := toJSONMap(snap.ModelHistories)
	if err != nil {
		return fmt.Errorf("encoding model histories: %w", err)
	}
	budgetData, err := toJSONMap(snap.BudgetData)
	if err != nil {
		return fmt.Errorf("encoding budget: %w", err)
	}
	skills, err := toJSONMapSlice(snap.ActiveSkills)
	if err != nil {
		return fmt.Errorf("encoding skills: %w", err)
	}
	todos, err := toJSONMapSlice(snap.Todos)
	if err != nil {
		return fmt.Errorf("encoding todos: %w", err)
	}

	if exists {
		_, err = s.client.AgentRecord.UpdateOneID(snap.AgentID).
			SetStatus(entagent.Status(snap.Status)).
			SetPromptFields(promptFields).
			SetModelHistories(histories).
			SetBudgetData(budgetData).
			SetActiveSkills(skills).
			SetTodos(todos).
			SetChildren(snap.Children).
			SetDismissing(snap.Dismissing).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("updating agent %s: %w", snap.AgentID, err)
		}
		return nil
	}

	create := s.client.AgentRecord.Create().
		SetID(snap.AgentID).
		SetTaskID(snap.TaskID).
		SetProfileName(snap.ProfileName).
		SetModelPool(snap.ModelPool).
		SetCapabilityGroups(snap.CapabilityGroups).
		SetStatus(entagent.Status(snap.Status)).
		SetPromptFields(promptFields).
		SetModelHistories(histories).
		SetBudgetData(budgetData).
		SetActiveSkills(skills).
		SetTodos(todos).
		SetChildren(snap.Children).
		SetDismissing(snap.Dismissing)
	if snap.ParentID != "" {
		create.SetParentID(snap.ParentID)
	}
	if !snap.InsertedAt.IsZero() {
		create.SetInsertedAt(snap.InsertedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("inserting agent %s: %w", snap.AgentID, err)
	}
	return nil
}

func (s *Store) GetAgent(ctx context.Context, agentID string) (*models.AgentSnapshot, error) {
	row, err := s.client.AgentRecord.Get(ctx, agentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("agent %s: %w", agentID, store.ErrNotFound)
		}
		return nil, fmt.Errorf("getting agent %s: %w", agentID, err)
	}
	return agentFromRow(row)
}

func (s *Store) ListAgentsByTask(ctx context.Context, taskID string) ([]*models.AgentSnapshot, error) {
	rows, err := s.client.AgentRecord.Query().
		Where(entagent.TaskID(taskID)).
		Order(ent.Asc(entagent.FieldInsertedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing agents for task %s: %w", taskID, err)
	}
	out := make([]*models.AgentSnapshot, 0, len(rows))
	for _, row := range rows {
		snap, err := agentFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, nil
}

func (s *Store) DeleteAgent(ctx context.Context, agentID string) error {
	if err := s.client.AgentRecord.DeleteOneID(agentID).Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("agent %s: %w", agentID, store.ErrNotFound)
		}
		return fmt.Errorf("deleting agent %s: %w", agentID, err)
	}
	return nil
}

func (s *Store) RecordAction(ctx context.Context, audit *models.ActionAudit) error {
	create := s.client.ActionRecord.Create().
		SetID(audit.ID).
		SetTaskID(audit.TaskID).
		SetAgentID(audit.AgentID).
		SetActionType(audit.ActionType).
		SetParams(audit.Params).
		SetStatus(entaction.Status(audit.Status))
	if audit.ParentActionID != "" {
		create.SetParentActionID(audit.ParentActionID)
	}
	if !audit.StartedAt.IsZero() {
		create.SetStartedAt(audit.StartedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("recording action %s: %w", audit.ID, err)
	}
	return nil
}

func (s *Store) FinishAction(ctx context.Context, id string, status models.ActionStatus, result map[string]any, errMsg string) error {
	update := s.client.ActionRecord.UpdateOneID(id).
		SetStatus(entaction.Status(status)).
		SetResult(result)
	if errMsg != "" {
		update.SetErrorMessage(errMsg)
	}
	update.SetCompletedAt(nowFunc())
	if _, err := update.Save(ctx); err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("action %s: %w", id, store.ErrNotFound)
		}
		return fmt.Errorf("finishing action %s: %w", id, err)
	}
	return nil
}

func (s *Store) AddCost(ctx context.Context, cost *models.CostRecord) error {
	create := s.client.CostRecord.Create().
		SetID(cost.ID).
		SetTaskID(cost.TaskID).
		SetAgentID(cost.AgentID).
		SetKind(entcost.Kind(cost.Kind)).
		SetAmount(cost.Amount.String()).
		SetDescription(cost.Description)
	if !cost.CreatedAt.IsZero() {
		create.SetCreatedAt(cost.CreatedAt)
	}
	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("recording cost %s: %w", cost.ID, err)
	}
	return nil
}

func (s *Store) SumCosts(ctx context.Context, taskID string) (decimal.Decimal, error) {
	amounts, err := s.client.CostRecord.Query().
		Where(entcost.TaskID(taskID)).
		Select(entcost.FieldAmount).
		Strings(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing costs for task %s: %w", taskID, err)
	}
	return sumAmounts(amounts)
}

func (s *Store) SumAgentCosts(ctx context.Context, taskID string, agentIDs ...string) (decimal.Decimal, error) {
	if len(agentIDs) == 0 {
		return decimal.Zero, nil
	}
	amounts, err := s.client.CostRecord.Query().
		Where(entcost.TaskID(taskID), entcost.AgentIDIn(agentIDs...)).
		Select(entcost.FieldAmount).
		Strings(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("summing agent costs: %w", err)
	}
	return sumAmounts(amounts)
}

func (s *Store) AppendLog(ctx context.Context, entry *models.LogEntry) error {
	create := s.client.LogEntry.Create().
		SetTaskID(entry.TaskID).
		SetLevel(entry.Level).
		SetContent(entry.Content).
		SetFields(entry.Fields)
	if entry.AgentID != "" {
		create.SetAgentID(entry.AgentID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("appending log: %w", err)
	}
	entry.ID = int64(row.ID)
	entry.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) AppendEvent(ctx context.Context, event *models.Event) error {
	row, err := s.client.Event.Create().
		SetTaskID(event.TaskID).
		SetTopic(event.Topic).
		SetPayload(event.Payload).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("appending event: %w", err)
	}
	event.ID = int64(row.ID)
	event.CreatedAt = row.CreatedAt
	return nil
}

func (s *Store) ListEvents(ctx context.Context, taskID, topic string, afterID int64) ([]*models.Event, error) {
	query := s.client.Event.Query().
		Where(entevent.IDGT(int(afterID))).
		Order(ent.Asc(entevent.FieldID))
	if taskID != "" {
		query.Where(entevent.TaskID(taskID))
	}
	if topic != "" {
		query.Where(entevent.Topic(topic))
	}
	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	out := make([]*models.Event, len(rows))
	for i, row := range rows {
		out[i] = &models.Event{
			ID:        int64(row.ID),
			TaskID:    row.TaskID,
			Topic:     row.Topic,
			Payload:   row.Payload,
			CreatedAt: row.CreatedAt,
		}
	}
	return out, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func taskFromRow(row *ent.Task) *models.Task {
	task := &models.Task{
		ID:                 row.ID,
		Prompt:             row.Prompt,
		Status:             models.TaskStatus(row.Status),
		InitialConstraints: row.InitialConstraints,
		ProfileName:        row.ProfileName,
		CreatedAt:          row.CreatedAt,
		CompletedAt:        row.CompletedAt,
	}
	if row.GlobalContext != nil {
		task.GlobalContext = *row.GlobalContext
	}
	if row.Result != nil {
		task.Result = *row.Result
	}
	if row.ErrorMessage != nil {
		task.ErrorMessage = *row.ErrorMessage
	}
	return task
}

func agentFromRow(row *ent.AgentRecord) (*models.AgentSnapshot, error) {
	snap := &models.AgentSnapshot{
		AgentID:          row.ID,
		TaskID:           row.TaskID,
		ProfileName:      row.ProfileName,
		ModelPool:        row.ModelPool,
		CapabilityGroups: row.CapabilityGroups,
		Status:           models.AgentStatus(row.Status),
		Children:         row.Children,
		Dismissing:       row.Dismissing,
		InsertedAt:       row.InsertedAt,
	}
	if row.ParentID != nil {
		snap.ParentID = *row.ParentID
	}
	if err := fromJSONMap(row.PromptFields, &snap.PromptFields); err != nil {
		return nil, fmt.Errorf("decoding prompt fields for %s: %w", row.ID, err)
	}
	if err := fromJSONMap(row.ModelHistories, &snap.ModelHistories); err != nil {
		return nil, fmt.Errorf("decoding histories for %s: %w", row.ID, err)
	}
	if err := fromJSONMap(row.BudgetData, &snap.BudgetData); err != nil {
		return nil, fmt.Errorf("decoding budget for %s: %w", row.ID, err)
	}
	if err := fromJSONSlice(row.ActiveSkills, &snap.ActiveSkills); err != nil {
		return nil, fmt.Errorf("decoding skills for %s: %w", row.ID, err)
	}
	if err := fromJSONSlice(row.Todos, &snap.Todos); err != nil {
		return nil, fmt.Errorf("decoding todos for %s: %w", row.ID, err)
	}
	return snap, nil
}

// Amounts are stored as exact decimal strings; SQL SUM over floats would
// drift.
func sumAmounts(amounts []string) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, raw := range amounts {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("bad ledger amount %q: %w", raw, err)
		}
		total = total.Add(amount)
	}
	return total, nil
}

// JSON columns store maps; these round-trip the typed models through
// encoding/json.

func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func toJSONMapSlice(v any) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func fromJSONMap(m map[string]interface{}, dst any) error {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func fromJSONSlice(m []map[string]interface{}, dst any) error {
	if m == nil {
		return nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}
