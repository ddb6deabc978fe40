// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/conclave-run/conclave/ent/actionrecord"
	"github.com/conclave-run/conclave/ent/agentrecord"
	"github.com/conclave-run/conclave/ent/costrecord"
	"github.com/conclave-run/conclave/ent/event"
	"github.com/conclave-run/conclave/ent/logentry"
	"github.com/conclave-run/conclave/ent/predicate"
	"github.com/conclave-run/conclave/ent/task"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeActionRecord = "ActionRecord"
	TypeAgentRecord  = "AgentRecord"
	TypeCostRecord   = "CostRecord"
	TypeEvent        = "Event"
	TypeLogEntry     = "LogEntry"
	TypeTask         = "Task"
)

// ActionRecordMutation represents an operation that mutates the ActionRecord nodes in the graph.
type ActionRecordMutation struct {
	config
	op               Op
	typ              string
	id               *string
	agent_id         *string
	action_type      *string
	params           *map[string]interface{}
	result           *map[string]interface{}
	status           *actionrecord.Status
	parent_action_id *string
	started_at       *time.Time
	completed_at     *time.Time
	error_message    *string
	clearedFields    map[string]struct{}
	task             *string
	clearedtask      bool
	done             bool
	oldValue         func(context.Context) (*ActionRecord, error)
	predicates       []predicate.ActionRecord
}

var _ ent.Mutation = (*ActionRecordMutation)(nil)

// actionrecordOption allows management of the mutation configuration using functional options.
type actionrecordOption func(*ActionRecordMutation)

// newActionRecordMutation creates new mutation for the ActionRecord entity.
func newActionRecordMutation(c config, op Op, opts ...actionrecordOption) *ActionRecordMutation {
	m := &ActionRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeActionRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withActionRecordID sets the ID field of the mutation.
func withActionRecordID(id string) actionrecordOption {
	return func(m *ActionRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ActionRecord
		)
		m.oldValue = func(ctx context.Context) (*ActionRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ActionRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withActionRecord sets the old ActionRecord of the mutation.
func withActionRecord(node *ActionRecord) actionrecordOption {
	return func(m *ActionRecordMutation) {
		m.oldValue = func(context.Context) (*ActionRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ActionRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ActionRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ActionRecord entities.
func (m *ActionRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ActionRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ActionRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ActionRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *ActionRecordMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *ActionRecordMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *ActionRecordMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentID sets the "agent_id" field.
func (m *ActionRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *ActionRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *ActionRecordMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetActionType sets the "action_type" field.
func (m *ActionRecordMutation) SetActionType(s string) {
	m.action_type = &s
}

// ActionType returns the value of the "action_type" field in the mutation.
func (m *ActionRecordMutation) ActionType() (r string, exists bool) {
	v := m.action_type
	if v == nil {
		return
	}
	return *v, true
}

// OldActionType returns the old "action_type" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldActionType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActionType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActionType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActionType: %w", err)
	}
	return oldValue.ActionType, nil
}

// ResetActionType resets all changes to the "action_type" field.
func (m *ActionRecordMutation) ResetActionType() {
	m.action_type = nil
}

// SetParams sets the "params" field.
func (m *ActionRecordMutation) SetParams(value map[string]interface{}) {
	m.params = &value
}

// Params returns the value of the "params" field in the mutation.
func (m *ActionRecordMutation) Params() (r map[string]interface{}, exists bool) {
	v := m.params
	if v == nil {
		return
	}
	return *v, true
}

// OldParams returns the old "params" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldParams(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParams is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParams requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParams: %w", err)
	}
	return oldValue.Params, nil
}

// ClearParams clears the value of the "params" field.
func (m *ActionRecordMutation) ClearParams() {
	m.params = nil
	m.clearedFields[actionrecord.FieldParams] = struct{}{}
}

// ParamsCleared returns if the "params" field was cleared in this mutation.
func (m *ActionRecordMutation) ParamsCleared() bool {
	_, ok := m.clearedFields[actionrecord.FieldParams]
	return ok
}

// ResetParams resets all changes to the "params" field.
func (m *ActionRecordMutation) ResetParams() {
	m.params = nil
	delete(m.clearedFields, actionrecord.FieldParams)
}

// SetResult sets the "result" field.
func (m *ActionRecordMutation) SetResult(value map[string]interface{}) {
	m.result = &value
}

// Result returns the value of the "result" field in the mutation.
func (m *ActionRecordMutation) Result() (r map[string]interface{}, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldResult(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *ActionRecordMutation) ClearResult() {
	m.result = nil
	m.clearedFields[actionrecord.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *ActionRecordMutation) ResultCleared() bool {
	_, ok := m.clearedFields[actionrecord.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *ActionRecordMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, actionrecord.FieldResult)
}

// SetStatus sets the "status" field.
func (m *ActionRecordMutation) SetStatus(a actionrecord.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ActionRecordMutation) Status() (r actionrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldStatus(ctx context.Context) (v actionrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ActionRecordMutation) ResetStatus() {
	m.status = nil
}

// SetParentActionID sets the "parent_action_id" field.
func (m *ActionRecordMutation) SetParentActionID(s string) {
	m.parent_action_id = &s
}

// ParentActionID returns the value of the "parent_action_id" field in the mutation.
func (m *ActionRecordMutation) ParentActionID() (r string, exists bool) {
	v := m.parent_action_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentActionID returns the old "parent_action_id" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldParentActionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentActionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentActionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentActionID: %w", err)
	}
	return oldValue.ParentActionID, nil
}

// ClearParentActionID clears the value of the "parent_action_id" field.
func (m *ActionRecordMutation) ClearParentActionID() {
	m.parent_action_id = nil
	m.clearedFields[actionrecord.FieldParentActionID] = struct{}{}
}

// ParentActionIDCleared returns if the "parent_action_id" field was cleared in this mutation.
func (m *ActionRecordMutation) ParentActionIDCleared() bool {
	_, ok := m.clearedFields[actionrecord.FieldParentActionID]
	return ok
}

// ResetParentActionID resets all changes to the "parent_action_id" field.
func (m *ActionRecordMutation) ResetParentActionID() {
	m.parent_action_id = nil
	delete(m.clearedFields, actionrecord.FieldParentActionID)
}

// SetStartedAt sets the "started_at" field.
func (m *ActionRecordMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ActionRecordMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ActionRecordMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ActionRecordMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ActionRecordMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ActionRecordMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[actionrecord.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ActionRecordMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[actionrecord.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ActionRecordMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, actionrecord.FieldCompletedAt)
}

// SetErrorMessage sets the "error_message" field.
func (m *ActionRecordMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ActionRecordMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ActionRecord entity.
// If the ActionRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ActionRecordMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ActionRecordMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[actionrecord.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ActionRecordMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[actionrecord.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ActionRecordMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, actionrecord.FieldErrorMessage)
}

// ClearTask clears the "task" edge to the Task entity.
func (m *ActionRecordMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[actionrecord.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *ActionRecordMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *ActionRecordMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *ActionRecordMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the ActionRecordMutation builder.
func (m *ActionRecordMutation) Where(ps ...predicate.ActionRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ActionRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ActionRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ActionRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ActionRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ActionRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ActionRecord).
func (m *ActionRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ActionRecordMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.task != nil {
		fields = append(fields, actionrecord.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, actionrecord.FieldAgentID)
	}
	if m.action_type != nil {
		fields = append(fields, actionrecord.FieldActionType)
	}
	if m.params != nil {
		fields = append(fields, actionrecord.FieldParams)
	}
	if m.result != nil {
		fields = append(fields, actionrecord.FieldResult)
	}
	if m.status != nil {
		fields = append(fields, actionrecord.FieldStatus)
	}
	if m.parent_action_id != nil {
		fields = append(fields, actionrecord.FieldParentActionID)
	}
	if m.started_at != nil {
		fields = append(fields, actionrecord.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, actionrecord.FieldCompletedAt)
	}
	if m.error_message != nil {
		fields = append(fields, actionrecord.FieldErrorMessage)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ActionRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case actionrecord.FieldTaskID:
		return m.TaskID()
	case actionrecord.FieldAgentID:
		return m.AgentID()
	case actionrecord.FieldActionType:
		return m.ActionType()
	case actionrecord.FieldParams:
		return m.Params()
	case actionrecord.FieldResult:
		return m.Result()
	case actionrecord.FieldStatus:
		return m.Status()
	case actionrecord.FieldParentActionID:
		return m.ParentActionID()
	case actionrecord.FieldStartedAt:
		return m.StartedAt()
	case actionrecord.FieldCompletedAt:
		return m.CompletedAt()
	case actionrecord.FieldErrorMessage:
		return m.ErrorMessage()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ActionRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case actionrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case actionrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case actionrecord.FieldActionType:
		return m.OldActionType(ctx)
	case actionrecord.FieldParams:
		return m.OldParams(ctx)
	case actionrecord.FieldResult:
		return m.OldResult(ctx)
	case actionrecord.FieldStatus:
		return m.OldStatus(ctx)
	case actionrecord.FieldParentActionID:
		return m.OldParentActionID(ctx)
	case actionrecord.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case actionrecord.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case actionrecord.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	}
	return nil, fmt.Errorf("unknown ActionRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case actionrecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case actionrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case actionrecord.FieldActionType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActionType(v)
		return nil
	case actionrecord.FieldParams:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParams(v)
		return nil
	case actionrecord.FieldResult:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case actionrecord.FieldStatus:
		v, ok := value.(actionrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case actionrecord.FieldParentActionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentActionID(v)
		return nil
	case actionrecord.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case actionrecord.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case actionrecord.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	}
	return fmt.Errorf("unknown ActionRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ActionRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ActionRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ActionRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ActionRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ActionRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(actionrecord.FieldParams) {
		fields = append(fields, actionrecord.FieldParams)
	}
	if m.FieldCleared(actionrecord.FieldResult) {
		fields = append(fields, actionrecord.FieldResult)
	}
	if m.FieldCleared(actionrecord.FieldParentActionID) {
		fields = append(fields, actionrecord.FieldParentActionID)
	}
	if m.FieldCleared(actionrecord.FieldCompletedAt) {
		fields = append(fields, actionrecord.FieldCompletedAt)
	}
	if m.FieldCleared(actionrecord.FieldErrorMessage) {
		fields = append(fields, actionrecord.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ActionRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ActionRecordMutation) ClearField(name string) error {
	switch name {
	case actionrecord.FieldParams:
		m.ClearParams()
		return nil
	case actionrecord.FieldResult:
		m.ClearResult()
		return nil
	case actionrecord.FieldParentActionID:
		m.ClearParentActionID()
		return nil
	case actionrecord.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	case actionrecord.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ActionRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ActionRecordMutation) ResetField(name string) error {
	switch name {
	case actionrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case actionrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case actionrecord.FieldActionType:
		m.ResetActionType()
		return nil
	case actionrecord.FieldParams:
		m.ResetParams()
		return nil
	case actionrecord.FieldResult:
		m.ResetResult()
		return nil
	case actionrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case actionrecord.FieldParentActionID:
		m.ResetParentActionID()
		return nil
	case actionrecord.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case actionrecord.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case actionrecord.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ActionRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ActionRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, actionrecord.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ActionRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case actionrecord.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ActionRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ActionRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ActionRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, actionrecord.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ActionRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case actionrecord.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ActionRecordMutation) ClearEdge(name string) error {
	switch name {
	case actionrecord.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown ActionRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ActionRecordMutation) ResetEdge(name string) error {
	switch name {
	case actionrecord.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown ActionRecord edge %s", name)
}

// AgentRecordMutation represents an operation that mutates the AgentRecord nodes in the graph.
type AgentRecordMutation struct {
	config
	op                      Op
	typ                     string
	id                      *string
	parent_id               *string
	profile_name            *string
	model_pool              *[]string
	appendmodel_pool        []string
	capability_groups       *[]string
	appendcapability_groups []string
	status                  *agentrecord.Status
	prompt_fields           *map[string]interface{}
	model_histories         *map[string]interface{}
	budget_data             *map[string]interface{}
	active_skills           *[]map[string]interface{}
	appendactive_skills     []map[string]interface{}
	todos                   *[]map[string]interface{}
	appendtodos             []map[string]interface{}
	children                *[]string
	appendchildren          []string
	dismissing              *bool
	inserted_at             *time.Time
	updated_at              *time.Time
	clearedFields           map[string]struct{}
	task                    *string
	clearedtask             bool
	done                    bool
	oldValue                func(context.Context) (*AgentRecord, error)
	predicates              []predicate.AgentRecord
}

var _ ent.Mutation = (*AgentRecordMutation)(nil)

// agentrecordOption allows management of the mutation configuration using functional options.
type agentrecordOption func(*AgentRecordMutation)

// newAgentRecordMutation creates new mutation for the AgentRecord entity.
func newAgentRecordMutation(c config, op Op, opts ...agentrecordOption) *AgentRecordMutation {
	m := &AgentRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeAgentRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAgentRecordID sets the ID field of the mutation.
func withAgentRecordID(id string) agentrecordOption {
	return func(m *AgentRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *AgentRecord
		)
		m.oldValue = func(ctx context.Context) (*AgentRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AgentRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAgentRecord sets the old AgentRecord of the mutation.
func withAgentRecord(node *AgentRecord) agentrecordOption {
	return func(m *AgentRecordMutation) {
		m.oldValue = func(context.Context) (*AgentRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AgentRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AgentRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of AgentRecord entities.
func (m *AgentRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AgentRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AgentRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AgentRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *AgentRecordMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *AgentRecordMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *AgentRecordMutation) ResetTaskID() {
	m.task = nil
}

// SetParentID sets the "parent_id" field.
func (m *AgentRecordMutation) SetParentID(s string) {
	m.parent_id = &s
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *AgentRecordMutation) ParentID() (r string, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldParentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *AgentRecordMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[agentrecord.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *AgentRecordMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *AgentRecordMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, agentrecord.FieldParentID)
}

// SetProfileName sets the "profile_name" field.
func (m *AgentRecordMutation) SetProfileName(s string) {
	m.profile_name = &s
}

// ProfileName returns the value of the "profile_name" field in the mutation.
func (m *AgentRecordMutation) ProfileName() (r string, exists bool) {
	v := m.profile_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileName returns the old "profile_name" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldProfileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileName: %w", err)
	}
	return oldValue.ProfileName, nil
}

// ResetProfileName resets all changes to the "profile_name" field.
func (m *AgentRecordMutation) ResetProfileName() {
	m.profile_name = nil
}

// SetModelPool sets the "model_pool" field.
func (m *AgentRecordMutation) SetModelPool(s []string) {
	m.model_pool = &s
	m.appendmodel_pool = nil
}

// ModelPool returns the value of the "model_pool" field in the mutation.
func (m *AgentRecordMutation) ModelPool() (r []string, exists bool) {
	v := m.model_pool
	if v == nil {
		return
	}
	return *v, true
}

// OldModelPool returns the old "model_pool" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldModelPool(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelPool is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelPool requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelPool: %w", err)
	}
	return oldValue.ModelPool, nil
}

// AppendModelPool adds s to the "model_pool" field.
func (m *AgentRecordMutation) AppendModelPool(s []string) {
	m.appendmodel_pool = append(m.appendmodel_pool, s...)
}

// AppendedModelPool returns the list of values that were appended to the "model_pool" field in this mutation.
func (m *AgentRecordMutation) AppendedModelPool() ([]string, bool) {
	if len(m.appendmodel_pool) == 0 {
		return nil, false
	}
	return m.appendmodel_pool, true
}

// ResetModelPool resets all changes to the "model_pool" field.
func (m *AgentRecordMutation) ResetModelPool() {
	m.model_pool = nil
	m.appendmodel_pool = nil
}

// SetCapabilityGroups sets the "capability_groups" field.
func (m *AgentRecordMutation) SetCapabilityGroups(s []string) {
	m.capability_groups = &s
	m.appendcapability_groups = nil
}

// CapabilityGroups returns the value of the "capability_groups" field in the mutation.
func (m *AgentRecordMutation) CapabilityGroups() (r []string, exists bool) {
	v := m.capability_groups
	if v == nil {
		return
	}
	return *v, true
}

// OldCapabilityGroups returns the old "capability_groups" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldCapabilityGroups(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapabilityGroups is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapabilityGroups requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapabilityGroups: %w", err)
	}
	return oldValue.CapabilityGroups, nil
}

// AppendCapabilityGroups adds s to the "capability_groups" field.
func (m *AgentRecordMutation) AppendCapabilityGroups(s []string) {
	m.appendcapability_groups = append(m.appendcapability_groups, s...)
}

// AppendedCapabilityGroups returns the list of values that were appended to the "capability_groups" field in this mutation.
func (m *AgentRecordMutation) AppendedCapabilityGroups() ([]string, bool) {
	if len(m.appendcapability_groups) == 0 {
		return nil, false
	}
	return m.appendcapability_groups, true
}

// ResetCapabilityGroups resets all changes to the "capability_groups" field.
func (m *AgentRecordMutation) ResetCapabilityGroups() {
	m.capability_groups = nil
	m.appendcapability_groups = nil
}

// SetStatus sets the "status" field.
func (m *AgentRecordMutation) SetStatus(a agentrecord.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AgentRecordMutation) Status() (r agentrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldStatus(ctx context.Context) (v agentrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AgentRecordMutation) ResetStatus() {
	m.status = nil
}

// SetPromptFields sets the "prompt_fields" field.
func (m *AgentRecordMutation) SetPromptFields(value map[string]interface{}) {
	m.prompt_fields = &value
}

// PromptFields returns the value of the "prompt_fields" field in the mutation.
func (m *AgentRecordMutation) PromptFields() (r map[string]interface{}, exists bool) {
	v := m.prompt_fields
	if v == nil {
		return
	}
	return *v, true
}

// OldPromptFields returns the old "prompt_fields" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldPromptFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPromptFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPromptFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPromptFields: %w", err)
	}
	return oldValue.PromptFields, nil
}

// ResetPromptFields resets all changes to the "prompt_fields" field.
func (m *AgentRecordMutation) ResetPromptFields() {
	m.prompt_fields = nil
}

// SetModelHistories sets the "model_histories" field.
func (m *AgentRecordMutation) SetModelHistories(value map[string]interface{}) {
	m.model_histories = &value
}

// ModelHistories returns the value of the "model_histories" field in the mutation.
func (m *AgentRecordMutation) ModelHistories() (r map[string]interface{}, exists bool) {
	v := m.model_histories
	if v == nil {
		return
	}
	return *v, true
}

// OldModelHistories returns the old "model_histories" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldModelHistories(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModelHistories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModelHistories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModelHistories: %w", err)
	}
	return oldValue.ModelHistories, nil
}

// ClearModelHistories clears the value of the "model_histories" field.
func (m *AgentRecordMutation) ClearModelHistories() {
	m.model_histories = nil
	m.clearedFields[agentrecord.FieldModelHistories] = struct{}{}
}

// ModelHistoriesCleared returns if the "model_histories" field was cleared in this mutation.
func (m *AgentRecordMutation) ModelHistoriesCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldModelHistories]
	return ok
}

// ResetModelHistories resets all changes to the "model_histories" field.
func (m *AgentRecordMutation) ResetModelHistories() {
	m.model_histories = nil
	delete(m.clearedFields, agentrecord.FieldModelHistories)
}

// SetBudgetData sets the "budget_data" field.
func (m *AgentRecordMutation) SetBudgetData(value map[string]interface{}) {
	m.budget_data = &value
}

// BudgetData returns the value of the "budget_data" field in the mutation.
func (m *AgentRecordMutation) BudgetData() (r map[string]interface{}, exists bool) {
	v := m.budget_data
	if v == nil {
		return
	}
	return *v, true
}

// OldBudgetData returns the old "budget_data" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldBudgetData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBudgetData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBudgetData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBudgetData: %w", err)
	}
	return oldValue.BudgetData, nil
}

// ClearBudgetData clears the value of the "budget_data" field.
func (m *AgentRecordMutation) ClearBudgetData() {
	m.budget_data = nil
	m.clearedFields[agentrecord.FieldBudgetData] = struct{}{}
}

// BudgetDataCleared returns if the "budget_data" field was cleared in this mutation.
func (m *AgentRecordMutation) BudgetDataCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldBudgetData]
	return ok
}

// ResetBudgetData resets all changes to the "budget_data" field.
func (m *AgentRecordMutation) ResetBudgetData() {
	m.budget_data = nil
	delete(m.clearedFields, agentrecord.FieldBudgetData)
}

// SetActiveSkills sets the "active_skills" field.
func (m *AgentRecordMutation) SetActiveSkills(value []map[string]interface{}) {
	m.active_skills = &value
	m.appendactive_skills = nil
}

// ActiveSkills returns the value of the "active_skills" field in the mutation.
func (m *AgentRecordMutation) ActiveSkills() (r []map[string]interface{}, exists bool) {
	v := m.active_skills
	if v == nil {
		return
	}
	return *v, true
}

// OldActiveSkills returns the old "active_skills" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldActiveSkills(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActiveSkills is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActiveSkills requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActiveSkills: %w", err)
	}
	return oldValue.ActiveSkills, nil
}

// AppendActiveSkills adds value to the "active_skills" field.
func (m *AgentRecordMutation) AppendActiveSkills(value []map[string]interface{}) {
	m.appendactive_skills = append(m.appendactive_skills, value...)
}

// AppendedActiveSkills returns the list of values that were appended to the "active_skills" field in this mutation.
func (m *AgentRecordMutation) AppendedActiveSkills() ([]map[string]interface{}, bool) {
	if len(m.appendactive_skills) == 0 {
		return nil, false
	}
	return m.appendactive_skills, true
}

// ClearActiveSkills clears the value of the "active_skills" field.
func (m *AgentRecordMutation) ClearActiveSkills() {
	m.active_skills = nil
	m.appendactive_skills = nil
	m.clearedFields[agentrecord.FieldActiveSkills] = struct{}{}
}

// ActiveSkillsCleared returns if the "active_skills" field was cleared in this mutation.
func (m *AgentRecordMutation) ActiveSkillsCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldActiveSkills]
	return ok
}

// ResetActiveSkills resets all changes to the "active_skills" field.
func (m *AgentRecordMutation) ResetActiveSkills() {
	m.active_skills = nil
	m.appendactive_skills = nil
	delete(m.clearedFields, agentrecord.FieldActiveSkills)
}

// SetTodos sets the "todos" field.
func (m *AgentRecordMutation) SetTodos(value []map[string]interface{}) {
	m.todos = &value
	m.appendtodos = nil
}

// Todos returns the value of the "todos" field in the mutation.
func (m *AgentRecordMutation) Todos() (r []map[string]interface{}, exists bool) {
	v := m.todos
	if v == nil {
		return
	}
	return *v, true
}

// OldTodos returns the old "todos" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldTodos(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTodos is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTodos requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTodos: %w", err)
	}
	return oldValue.Todos, nil
}

// AppendTodos adds value to the "todos" field.
func (m *AgentRecordMutation) AppendTodos(value []map[string]interface{}) {
	m.appendtodos = append(m.appendtodos, value...)
}

// AppendedTodos returns the list of values that were appended to the "todos" field in this mutation.
func (m *AgentRecordMutation) AppendedTodos() ([]map[string]interface{}, bool) {
	if len(m.appendtodos) == 0 {
		return nil, false
	}
	return m.appendtodos, true
}

// ClearTodos clears the value of the "todos" field.
func (m *AgentRecordMutation) ClearTodos() {
	m.todos = nil
	m.appendtodos = nil
	m.clearedFields[agentrecord.FieldTodos] = struct{}{}
}

// TodosCleared returns if the "todos" field was cleared in this mutation.
func (m *AgentRecordMutation) TodosCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldTodos]
	return ok
}

// ResetTodos resets all changes to the "todos" field.
func (m *AgentRecordMutation) ResetTodos() {
	m.todos = nil
	m.appendtodos = nil
	delete(m.clearedFields, agentrecord.FieldTodos)
}

// SetChildren sets the "children" field.
func (m *AgentRecordMutation) SetChildren(s []string) {
	m.children = &s
	m.appendchildren = nil
}

// Children returns the value of the "children" field in the mutation.
func (m *AgentRecordMutation) Children() (r []string, exists bool) {
	v := m.children
	if v == nil {
		return
	}
	return *v, true
}

// OldChildren returns the old "children" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldChildren(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChildren is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChildren requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChildren: %w", err)
	}
	return oldValue.Children, nil
}

// AppendChildren adds s to the "children" field.
func (m *AgentRecordMutation) AppendChildren(s []string) {
	m.appendchildren = append(m.appendchildren, s...)
}

// AppendedChildren returns the list of values that were appended to the "children" field in this mutation.
func (m *AgentRecordMutation) AppendedChildren() ([]string, bool) {
	if len(m.appendchildren) == 0 {
		return nil, false
	}
	return m.appendchildren, true
}

// ClearChildren clears the value of the "children" field.
func (m *AgentRecordMutation) ClearChildren() {
	m.children = nil
	m.appendchildren = nil
	m.clearedFields[agentrecord.FieldChildren] = struct{}{}
}

// ChildrenCleared returns if the "children" field was cleared in this mutation.
func (m *AgentRecordMutation) ChildrenCleared() bool {
	_, ok := m.clearedFields[agentrecord.FieldChildren]
	return ok
}

// ResetChildren resets all changes to the "children" field.
func (m *AgentRecordMutation) ResetChildren() {
	m.children = nil
	m.appendchildren = nil
	delete(m.clearedFields, agentrecord.FieldChildren)
}

// SetDismissing sets the "dismissing" field.
func (m *AgentRecordMutation) SetDismissing(b bool) {
	m.dismissing = &b
}

// Dismissing returns the value of the "dismissing" field in the mutation.
func (m *AgentRecordMutation) Dismissing() (r bool, exists bool) {
	v := m.dismissing
	if v == nil {
		return
	}
	return *v, true
}

// OldDismissing returns the old "dismissing" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldDismissing(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDismissing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDismissing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDismissing: %w", err)
	}
	return oldValue.Dismissing, nil
}

// ResetDismissing resets all changes to the "dismissing" field.
func (m *AgentRecordMutation) ResetDismissing() {
	m.dismissing = nil
}

// SetInsertedAt sets the "inserted_at" field.
func (m *AgentRecordMutation) SetInsertedAt(t time.Time) {
	m.inserted_at = &t
}

// InsertedAt returns the value of the "inserted_at" field in the mutation.
func (m *AgentRecordMutation) InsertedAt() (r time.Time, exists bool) {
	v := m.inserted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldInsertedAt returns the old "inserted_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldInsertedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInsertedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInsertedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInsertedAt: %w", err)
	}
	return oldValue.InsertedAt, nil
}

// ResetInsertedAt resets all changes to the "inserted_at" field.
func (m *AgentRecordMutation) ResetInsertedAt() {
	m.inserted_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *AgentRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *AgentRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the AgentRecord entity.
// If the AgentRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AgentRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *AgentRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *AgentRecordMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[agentrecord.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *AgentRecordMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *AgentRecordMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *AgentRecordMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the AgentRecordMutation builder.
func (m *AgentRecordMutation) Where(ps ...predicate.AgentRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AgentRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AgentRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AgentRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AgentRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AgentRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AgentRecord).
func (m *AgentRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AgentRecordMutation) Fields() []string {
	fields := make([]string, 0, 15)
	if m.task != nil {
		fields = append(fields, agentrecord.FieldTaskID)
	}
	if m.parent_id != nil {
		fields = append(fields, agentrecord.FieldParentID)
	}
	if m.profile_name != nil {
		fields = append(fields, agentrecord.FieldProfileName)
	}
	if m.model_pool != nil {
		fields = append(fields, agentrecord.FieldModelPool)
	}
	if m.capability_groups != nil {
		fields = append(fields, agentrecord.FieldCapabilityGroups)
	}
	if m.status != nil {
		fields = append(fields, agentrecord.FieldStatus)
	}
	if m.prompt_fields != nil {
		fields = append(fields, agentrecord.FieldPromptFields)
	}
	if m.model_histories != nil {
		fields = append(fields, agentrecord.FieldModelHistories)
	}
	if m.budget_data != nil {
		fields = append(fields, agentrecord.FieldBudgetData)
	}
	if m.active_skills != nil {
		fields = append(fields, agentrecord.FieldActiveSkills)
	}
	if m.todos != nil {
		fields = append(fields, agentrecord.FieldTodos)
	}
	if m.children != nil {
		fields = append(fields, agentrecord.FieldChildren)
	}
	if m.dismissing != nil {
		fields = append(fields, agentrecord.FieldDismissing)
	}
	if m.inserted_at != nil {
		fields = append(fields, agentrecord.FieldInsertedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, agentrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AgentRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case agentrecord.FieldTaskID:
		return m.TaskID()
	case agentrecord.FieldParentID:
		return m.ParentID()
	case agentrecord.FieldProfileName:
		return m.ProfileName()
	case agentrecord.FieldModelPool:
		return m.ModelPool()
	case agentrecord.FieldCapabilityGroups:
		return m.CapabilityGroups()
	case agentrecord.FieldStatus:
		return m.Status()
	case agentrecord.FieldPromptFields:
		return m.PromptFields()
	case agentrecord.FieldModelHistories:
		return m.ModelHistories()
	case agentrecord.FieldBudgetData:
		return m.BudgetData()
	case agentrecord.FieldActiveSkills:
		return m.ActiveSkills()
	case agentrecord.FieldTodos:
		return m.Todos()
	case agentrecord.FieldChildren:
		return m.Children()
	case agentrecord.FieldDismissing:
		return m.Dismissing()
	case agentrecord.FieldInsertedAt:
		return m.InsertedAt()
	case agentrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AgentRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case agentrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case agentrecord.FieldParentID:
		return m.OldParentID(ctx)
	case agentrecord.FieldProfileName:
		return m.OldProfileName(ctx)
	case agentrecord.FieldModelPool:
		return m.OldModelPool(ctx)
	case agentrecord.FieldCapabilityGroups:
		return m.OldCapabilityGroups(ctx)
	case agentrecord.FieldStatus:
		return m.OldStatus(ctx)
	case agentrecord.FieldPromptFields:
		return m.OldPromptFields(ctx)
	case agentrecord.FieldModelHistories:
		return m.OldModelHistories(ctx)
	case agentrecord.FieldBudgetData:
		return m.OldBudgetData(ctx)
	case agentrecord.FieldActiveSkills:
		return m.OldActiveSkills(ctx)
	case agentrecord.FieldTodos:
		return m.OldTodos(ctx)
	case agentrecord.FieldChildren:
		return m.OldChildren(ctx)
	case agentrecord.FieldDismissing:
		return m.OldDismissing(ctx)
	case agentrecord.FieldInsertedAt:
		return m.OldInsertedAt(ctx)
	case agentrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown AgentRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case agentrecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case agentrecord.FieldParentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case agentrecord.FieldProfileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileName(v)
		return nil
	case agentrecord.FieldModelPool:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelPool(v)
		return nil
	case agentrecord.FieldCapabilityGroups:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapabilityGroups(v)
		return nil
	case agentrecord.FieldStatus:
		v, ok := value.(agentrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case agentrecord.FieldPromptFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPromptFields(v)
		return nil
	case agentrecord.FieldModelHistories:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModelHistories(v)
		return nil
	case agentrecord.FieldBudgetData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBudgetData(v)
		return nil
	case agentrecord.FieldActiveSkills:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActiveSkills(v)
		return nil
	case agentrecord.FieldTodos:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTodos(v)
		return nil
	case agentrecord.FieldChildren:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChildren(v)
		return nil
	case agentrecord.FieldDismissing:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDismissing(v)
		return nil
	case agentrecord.FieldInsertedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInsertedAt(v)
		return nil
	case agentrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AgentRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AgentRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AgentRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AgentRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AgentRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(agentrecord.FieldParentID) {
		fields = append(fields, agentrecord.FieldParentID)
	}
	if m.FieldCleared(agentrecord.FieldModelHistories) {
		fields = append(fields, agentrecord.FieldModelHistories)
	}
	if m.FieldCleared(agentrecord.FieldBudgetData) {
		fields = append(fields, agentrecord.FieldBudgetData)
	}
	if m.FieldCleared(agentrecord.FieldActiveSkills) {
		fields = append(fields, agentrecord.FieldActiveSkills)
	}
	if m.FieldCleared(agentrecord.FieldTodos) {
		fields = append(fields, agentrecord.FieldTodos)
	}
	if m.FieldCleared(agentrecord.FieldChildren) {
		fields = append(fields, agentrecord.FieldChildren)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AgentRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AgentRecordMutation) ClearField(name string) error {
	switch name {
	case agentrecord.FieldParentID:
		m.ClearParentID()
		return nil
	case agentrecord.FieldModelHistories:
		m.ClearModelHistories()
		return nil
	case agentrecord.FieldBudgetData:
		m.ClearBudgetData()
		return nil
	case agentrecord.FieldActiveSkills:
		m.ClearActiveSkills()
		return nil
	case agentrecord.FieldTodos:
		m.ClearTodos()
		return nil
	case agentrecord.FieldChildren:
		m.ClearChildren()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AgentRecordMutation) ResetField(name string) error {
	switch name {
	case agentrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case agentrecord.FieldParentID:
		m.ResetParentID()
		return nil
	case agentrecord.FieldProfileName:
		m.ResetProfileName()
		return nil
	case agentrecord.FieldModelPool:
		m.ResetModelPool()
		return nil
	case agentrecord.FieldCapabilityGroups:
		m.ResetCapabilityGroups()
		return nil
	case agentrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case agentrecord.FieldPromptFields:
		m.ResetPromptFields()
		return nil
	case agentrecord.FieldModelHistories:
		m.ResetModelHistories()
		return nil
	case agentrecord.FieldBudgetData:
		m.ResetBudgetData()
		return nil
	case agentrecord.FieldActiveSkills:
		m.ResetActiveSkills()
		return nil
	case agentrecord.FieldTodos:
		m.ResetTodos()
		return nil
	case agentrecord.FieldChildren:
		m.ResetChildren()
		return nil
	case agentrecord.FieldDismissing:
		m.ResetDismissing()
		return nil
	case agentrecord.FieldInsertedAt:
		m.ResetInsertedAt()
		return nil
	case agentrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AgentRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, agentrecord.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AgentRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case agentrecord.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AgentRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AgentRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AgentRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, agentrecord.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AgentRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case agentrecord.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AgentRecordMutation) ClearEdge(name string) error {
	switch name {
	case agentrecord.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AgentRecordMutation) ResetEdge(name string) error {
	switch name {
	case agentrecord.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown AgentRecord edge %s", name)
}

// CostRecordMutation represents an operation that mutates the CostRecord nodes in the graph.
type CostRecordMutation struct {
	config
	op            Op
	typ           string
	id            *string
	agent_id      *string
	kind          *costrecord.Kind
	amount        *string
	description   *string
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*CostRecord, error)
	predicates    []predicate.CostRecord
}

var _ ent.Mutation = (*CostRecordMutation)(nil)

// costrecordOption allows management of the mutation configuration using functional options.
type costrecordOption func(*CostRecordMutation)

// newCostRecordMutation creates new mutation for the CostRecord entity.
func newCostRecordMutation(c config, op Op, opts ...costrecordOption) *CostRecordMutation {
	m := &CostRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCostRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCostRecordID sets the ID field of the mutation.
func withCostRecordID(id string) costrecordOption {
	return func(m *CostRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CostRecord
		)
		m.oldValue = func(ctx context.Context) (*CostRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CostRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCostRecord sets the old CostRecord of the mutation.
func withCostRecord(node *CostRecord) costrecordOption {
	return func(m *CostRecordMutation) {
		m.oldValue = func(context.Context) (*CostRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CostRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CostRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CostRecord entities.
func (m *CostRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CostRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CostRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CostRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *CostRecordMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *CostRecordMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *CostRecordMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentID sets the "agent_id" field.
func (m *CostRecordMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *CostRecordMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *CostRecordMutation) ResetAgentID() {
	m.agent_id = nil
}

// SetKind sets the "kind" field.
func (m *CostRecordMutation) SetKind(c costrecord.Kind) {
	m.kind = &c
}

// Kind returns the value of the "kind" field in the mutation.
func (m *CostRecordMutation) Kind() (r costrecord.Kind, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldKind(ctx context.Context) (v costrecord.Kind, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *CostRecordMutation) ResetKind() {
	m.kind = nil
}

// SetAmount sets the "amount" field.
func (m *CostRecordMutation) SetAmount(s string) {
	m.amount = &s
}

// Amount returns the value of the "amount" field in the mutation.
func (m *CostRecordMutation) Amount() (r string, exists bool) {
	v := m.amount
	if v == nil {
		return
	}
	return *v, true
}

// OldAmount returns the old "amount" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldAmount(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAmount: %w", err)
	}
	return oldValue.Amount, nil
}

// ResetAmount resets all changes to the "amount" field.
func (m *CostRecordMutation) ResetAmount() {
	m.amount = nil
}

// SetDescription sets the "description" field.
func (m *CostRecordMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *CostRecordMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *CostRecordMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[costrecord.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *CostRecordMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[costrecord.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *CostRecordMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, costrecord.FieldDescription)
}

// SetCreatedAt sets the "created_at" field.
func (m *CostRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CostRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CostRecord entity.
// If the CostRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CostRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CostRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *CostRecordMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[costrecord.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *CostRecordMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *CostRecordMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *CostRecordMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the CostRecordMutation builder.
func (m *CostRecordMutation) Where(ps ...predicate.CostRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CostRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CostRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CostRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CostRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CostRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CostRecord).
func (m *CostRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CostRecordMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, costrecord.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, costrecord.FieldAgentID)
	}
	if m.kind != nil {
		fields = append(fields, costrecord.FieldKind)
	}
	if m.amount != nil {
		fields = append(fields, costrecord.FieldAmount)
	}
	if m.description != nil {
		fields = append(fields, costrecord.FieldDescription)
	}
	if m.created_at != nil {
		fields = append(fields, costrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CostRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case costrecord.FieldTaskID:
		return m.TaskID()
	case costrecord.FieldAgentID:
		return m.AgentID()
	case costrecord.FieldKind:
		return m.Kind()
	case costrecord.FieldAmount:
		return m.Amount()
	case costrecord.FieldDescription:
		return m.Description()
	case costrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CostRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case costrecord.FieldTaskID:
		return m.OldTaskID(ctx)
	case costrecord.FieldAgentID:
		return m.OldAgentID(ctx)
	case costrecord.FieldKind:
		return m.OldKind(ctx)
	case costrecord.FieldAmount:
		return m.OldAmount(ctx)
	case costrecord.FieldDescription:
		return m.OldDescription(ctx)
	case costrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CostRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case costrecord.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case costrecord.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case costrecord.FieldKind:
		v, ok := value.(costrecord.Kind)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case costrecord.FieldAmount:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAmount(v)
		return nil
	case costrecord.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case costrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CostRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CostRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CostRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CostRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CostRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CostRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(costrecord.FieldDescription) {
		fields = append(fields, costrecord.FieldDescription)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CostRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CostRecordMutation) ClearField(name string) error {
	switch name {
	case costrecord.FieldDescription:
		m.ClearDescription()
		return nil
	}
	return fmt.Errorf("unknown CostRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CostRecordMutation) ResetField(name string) error {
	switch name {
	case costrecord.FieldTaskID:
		m.ResetTaskID()
		return nil
	case costrecord.FieldAgentID:
		m.ResetAgentID()
		return nil
	case costrecord.FieldKind:
		m.ResetKind()
		return nil
	case costrecord.FieldAmount:
		m.ResetAmount()
		return nil
	case costrecord.FieldDescription:
		m.ResetDescription()
		return nil
	case costrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CostRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CostRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, costrecord.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CostRecordMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case costrecord.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CostRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CostRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CostRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, costrecord.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CostRecordMutation) EdgeCleared(name string) bool {
	switch name {
	case costrecord.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CostRecordMutation) ClearEdge(name string) error {
	switch name {
	case costrecord.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown CostRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CostRecordMutation) ResetEdge(name string) error {
	switch name {
	case costrecord.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown CostRecord edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	topic         *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Event entities.
func (m *EventMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *EventMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *EventMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *EventMutation) ResetTaskID() {
	m.task = nil
}

// SetTopic sets the "topic" field.
func (m *EventMutation) SetTopic(s string) {
	m.topic = &s
}

// Topic returns the value of the "topic" field in the mutation.
func (m *EventMutation) Topic() (r string, exists bool) {
	v := m.topic
	if v == nil {
		return
	}
	return *v, true
}

// OldTopic returns the old "topic" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldTopic(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopic: %w", err)
	}
	return oldValue.Topic, nil
}

// ResetTopic resets all changes to the "topic" field.
func (m *EventMutation) ResetTopic() {
	m.topic = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *EventMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[event.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *EventMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *EventMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *EventMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.task != nil {
		fields = append(fields, event.FieldTaskID)
	}
	if m.topic != nil {
		fields = append(fields, event.FieldTopic)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldTaskID:
		return m.TaskID()
	case event.FieldTopic:
		return m.Topic()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldTaskID:
		return m.OldTaskID(ctx)
	case event.FieldTopic:
		return m.OldTopic(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case event.FieldTopic:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopic(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldTaskID:
		m.ResetTaskID()
		return nil
	case event.FieldTopic:
		m.ResetTopic()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case event.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, event.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	switch name {
	case event.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	switch name {
	case event.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown Event edge %s", name)
}

// LogEntryMutation represents an operation that mutates the LogEntry nodes in the graph.
type LogEntryMutation struct {
	config
	op            Op
	typ           string
	id            *int
	agent_id      *string
	level         *string
	content       *string
	fields        *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	task          *string
	clearedtask   bool
	done          bool
	oldValue      func(context.Context) (*LogEntry, error)
	predicates    []predicate.LogEntry
}

var _ ent.Mutation = (*LogEntryMutation)(nil)

// logentryOption allows management of the mutation configuration using functional options.
type logentryOption func(*LogEntryMutation)

// newLogEntryMutation creates new mutation for the LogEntry entity.
func newLogEntryMutation(c config, op Op, opts ...logentryOption) *LogEntryMutation {
	m := &LogEntryMutation{
		config:        c,
		op:            op,
		typ:           TypeLogEntry,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLogEntryID sets the ID field of the mutation.
func withLogEntryID(id int) logentryOption {
	return func(m *LogEntryMutation) {
		var (
			err   error
			once  sync.Once
			value *LogEntry
		)
		m.oldValue = func(ctx context.Context) (*LogEntry, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LogEntry.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLogEntry sets the old LogEntry of the mutation.
func withLogEntry(node *LogEntry) logentryOption {
	return func(m *LogEntryMutation) {
		m.oldValue = func(context.Context) (*LogEntry, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LogEntryMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LogEntryMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LogEntry entities.
func (m *LogEntryMutation) SetID(id int) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LogEntryMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LogEntryMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LogEntry.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTaskID sets the "task_id" field.
func (m *LogEntryMutation) SetTaskID(s string) {
	m.task = &s
}

// TaskID returns the value of the "task_id" field in the mutation.
func (m *LogEntryMutation) TaskID() (r string, exists bool) {
	v := m.task
	if v == nil {
		return
	}
	return *v, true
}

// OldTaskID returns the old "task_id" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldTaskID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaskID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaskID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaskID: %w", err)
	}
	return oldValue.TaskID, nil
}

// ResetTaskID resets all changes to the "task_id" field.
func (m *LogEntryMutation) ResetTaskID() {
	m.task = nil
}

// SetAgentID sets the "agent_id" field.
func (m *LogEntryMutation) SetAgentID(s string) {
	m.agent_id = &s
}

// AgentID returns the value of the "agent_id" field in the mutation.
func (m *LogEntryMutation) AgentID() (r string, exists bool) {
	v := m.agent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentID returns the old "agent_id" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldAgentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentID: %w", err)
	}
	return oldValue.AgentID, nil
}

// ClearAgentID clears the value of the "agent_id" field.
func (m *LogEntryMutation) ClearAgentID() {
	m.agent_id = nil
	m.clearedFields[logentry.FieldAgentID] = struct{}{}
}

// AgentIDCleared returns if the "agent_id" field was cleared in this mutation.
func (m *LogEntryMutation) AgentIDCleared() bool {
	_, ok := m.clearedFields[logentry.FieldAgentID]
	return ok
}

// ResetAgentID resets all changes to the "agent_id" field.
func (m *LogEntryMutation) ResetAgentID() {
	m.agent_id = nil
	delete(m.clearedFields, logentry.FieldAgentID)
}

// SetLevel sets the "level" field.
func (m *LogEntryMutation) SetLevel(s string) {
	m.level = &s
}

// Level returns the value of the "level" field in the mutation.
func (m *LogEntryMutation) Level() (r string, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldLevel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *LogEntryMutation) ResetLevel() {
	m.level = nil
}

// SetContent sets the "content" field.
func (m *LogEntryMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *LogEntryMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ResetContent resets all changes to the "content" field.
func (m *LogEntryMutation) ResetContent() {
	m.content = nil
}

// SetFields sets the "fields" field.
func (m *LogEntryMutation) SetFields(value map[string]interface{}) {
	m.fields = &value
}

// GetFields returns the value of the "fields" field in the mutation.
func (m *LogEntryMutation) GetFields() (r map[string]interface{}, exists bool) {
	v := m.fields
	if v == nil {
		return
	}
	return *v, true
}

// OldFields returns the old "fields" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldFields(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFields is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFields requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFields: %w", err)
	}
	return oldValue.Fields, nil
}

// ClearFields clears the value of the "fields" field.
func (m *LogEntryMutation) ClearFields() {
	m.fields = nil
	m.clearedFields[logentry.FieldFields] = struct{}{}
}

// FieldsCleared returns if the "fields" field was cleared in this mutation.
func (m *LogEntryMutation) FieldsCleared() bool {
	_, ok := m.clearedFields[logentry.FieldFields]
	return ok
}

// ResetFields resets all changes to the "fields" field.
func (m *LogEntryMutation) ResetFields() {
	m.fields = nil
	delete(m.clearedFields, logentry.FieldFields)
}

// SetCreatedAt sets the "created_at" field.
func (m *LogEntryMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *LogEntryMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the LogEntry entity.
// If the LogEntry object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LogEntryMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *LogEntryMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearTask clears the "task" edge to the Task entity.
func (m *LogEntryMutation) ClearTask() {
	m.clearedtask = true
	m.clearedFields[logentry.FieldTaskID] = struct{}{}
}

// TaskCleared reports if the "task" edge to the Task entity was cleared.
func (m *LogEntryMutation) TaskCleared() bool {
	return m.clearedtask
}

// TaskIDs returns the "task" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// TaskID instead. It exists only for internal usage by the builders.
func (m *LogEntryMutation) TaskIDs() (ids []string) {
	if id := m.task; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetTask resets all changes to the "task" edge.
func (m *LogEntryMutation) ResetTask() {
	m.task = nil
	m.clearedtask = false
}

// Where appends a list predicates to the LogEntryMutation builder.
func (m *LogEntryMutation) Where(ps ...predicate.LogEntry) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LogEntryMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LogEntryMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LogEntry, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LogEntryMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LogEntryMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LogEntry).
func (m *LogEntryMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LogEntryMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.task != nil {
		fields = append(fields, logentry.FieldTaskID)
	}
	if m.agent_id != nil {
		fields = append(fields, logentry.FieldAgentID)
	}
	if m.level != nil {
		fields = append(fields, logentry.FieldLevel)
	}
	if m.content != nil {
		fields = append(fields, logentry.FieldContent)
	}
	if m.fields != nil {
		fields = append(fields, logentry.FieldFields)
	}
	if m.created_at != nil {
		fields = append(fields, logentry.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LogEntryMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case logentry.FieldTaskID:
		return m.TaskID()
	case logentry.FieldAgentID:
		return m.AgentID()
	case logentry.FieldLevel:
		return m.Level()
	case logentry.FieldContent:
		return m.Content()
	case logentry.FieldFields:
		return m.GetFields()
	case logentry.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LogEntryMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case logentry.FieldTaskID:
		return m.OldTaskID(ctx)
	case logentry.FieldAgentID:
		return m.OldAgentID(ctx)
	case logentry.FieldLevel:
		return m.OldLevel(ctx)
	case logentry.FieldContent:
		return m.OldContent(ctx)
	case logentry.FieldFields:
		return m.OldFields(ctx)
	case logentry.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LogEntry field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogEntryMutation) SetField(name string, value ent.Value) error {
	switch name {
	case logentry.FieldTaskID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaskID(v)
		return nil
	case logentry.FieldAgentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentID(v)
		return nil
	case logentry.FieldLevel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case logentry.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case logentry.FieldFields:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFields(v)
		return nil
	case logentry.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LogEntry field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LogEntryMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LogEntryMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LogEntryMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown LogEntry numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LogEntryMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(logentry.FieldAgentID) {
		fields = append(fields, logentry.FieldAgentID)
	}
	if m.FieldCleared(logentry.FieldFields) {
		fields = append(fields, logentry.FieldFields)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LogEntryMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LogEntryMutation) ClearField(name string) error {
	switch name {
	case logentry.FieldAgentID:
		m.ClearAgentID()
		return nil
	case logentry.FieldFields:
		m.ClearFields()
		return nil
	}
	return fmt.Errorf("unknown LogEntry nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LogEntryMutation) ResetField(name string) error {
	switch name {
	case logentry.FieldTaskID:
		m.ResetTaskID()
		return nil
	case logentry.FieldAgentID:
		m.ResetAgentID()
		return nil
	case logentry.FieldLevel:
		m.ResetLevel()
		return nil
	case logentry.FieldContent:
		m.ResetContent()
		return nil
	case logentry.FieldFields:
		m.ResetFields()
		return nil
	case logentry.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown LogEntry field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LogEntryMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.task != nil {
		edges = append(edges, logentry.EdgeTask)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LogEntryMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case logentry.EdgeTask:
		if id := m.task; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LogEntryMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LogEntryMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LogEntryMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedtask {
		edges = append(edges, logentry.EdgeTask)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LogEntryMutation) EdgeCleared(name string) bool {
	switch name {
	case logentry.EdgeTask:
		return m.clearedtask
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LogEntryMutation) ClearEdge(name string) error {
	switch name {
	case logentry.EdgeTask:
		m.ClearTask()
		return nil
	}
	return fmt.Errorf("unknown LogEntry unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LogEntryMutation) ResetEdge(name string) error {
	switch name {
	case logentry.EdgeTask:
		m.ResetTask()
		return nil
	}
	return fmt.Errorf("unknown LogEntry edge %s", name)
}

// TaskMutation represents an operation that mutates the Task nodes in the graph.
type TaskMutation struct {
	config
	op                        Op
	typ                       string
	id                        *string
	prompt                    *string
	status                    *task.Status
	global_context            *string
	initial_constraints       *[]string
	appendinitial_constraints []string
	profile_name              *string
	result                    *string
	error_message             *string
	created_at                *time.Time
	completed_at              *time.Time
	clearedFields             map[string]struct{}
	agents                    map[string]struct{}
	removedagents             map[string]struct{}
	clearedagents             bool
	actions                   map[string]struct{}
	removedactions            map[string]struct{}
	clearedactions            bool
	costs                     map[string]struct{}
	removedcosts              map[string]struct{}
	clearedcosts              bool
	logs                      map[int]struct{}
	removedlogs               map[int]struct{}
	clearedlogs               bool
	events                    map[int]struct{}
	removedevents             map[int]struct{}
	clearedevents             bool
	done                      bool
	oldValue                  func(context.Context) (*Task, error)
	predicates                []predicate.Task
}

var _ ent.Mutation = (*TaskMutation)(nil)

// taskOption allows management of the mutation configuration using functional options.
type taskOption func(*TaskMutation)

// newTaskMutation creates new mutation for the Task entity.
func newTaskMutation(c config, op Op, opts ...taskOption) *TaskMutation {
	m := &TaskMutation{
		config:        c,
		op:            op,
		typ:           TypeTask,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTaskID sets the ID field of the mutation.
func withTaskID(id string) taskOption {
	return func(m *TaskMutation) {
		var (
			err   error
			once  sync.Once
			value *Task
		)
		m.oldValue = func(ctx context.Context) (*Task, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Task.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTask sets the old Task of the mutation.
func withTask(node *Task) taskOption {
	return func(m *TaskMutation) {
		m.oldValue = func(context.Context) (*Task, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TaskMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TaskMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Task entities.
func (m *TaskMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TaskMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TaskMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Task.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrompt sets the "prompt" field.
func (m *TaskMutation) SetPrompt(s string) {
	m.prompt = &s
}

// Prompt returns the value of the "prompt" field in the mutation.
func (m *TaskMutation) Prompt() (r string, exists bool) {
	v := m.prompt
	if v == nil {
		return
	}
	return *v, true
}

// OldPrompt returns the old "prompt" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldPrompt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrompt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrompt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrompt: %w", err)
	}
	return oldValue.Prompt, nil
}

// ResetPrompt resets all changes to the "prompt" field.
func (m *TaskMutation) ResetPrompt() {
	m.prompt = nil
}

// SetStatus sets the "status" field.
func (m *TaskMutation) SetStatus(t task.Status) {
	m.status = &t
}

// Status returns the value of the "status" field in the mutation.
func (m *TaskMutation) Status() (r task.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldStatus(ctx context.Context) (v task.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TaskMutation) ResetStatus() {
	m.status = nil
}

// SetGlobalContext sets the "global_context" field.
func (m *TaskMutation) SetGlobalContext(s string) {
	m.global_context = &s
}

// GlobalContext returns the value of the "global_context" field in the mutation.
func (m *TaskMutation) GlobalContext() (r string, exists bool) {
	v := m.global_context
	if v == nil {
		return
	}
	return *v, true
}

// OldGlobalContext returns the old "global_context" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldGlobalContext(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGlobalContext is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGlobalContext requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGlobalContext: %w", err)
	}
	return oldValue.GlobalContext, nil
}

// ClearGlobalContext clears the value of the "global_context" field.
func (m *TaskMutation) ClearGlobalContext() {
	m.global_context = nil
	m.clearedFields[task.FieldGlobalContext] = struct{}{}
}

// GlobalContextCleared returns if the "global_context" field was cleared in this mutation.
func (m *TaskMutation) GlobalContextCleared() bool {
	_, ok := m.clearedFields[task.FieldGlobalContext]
	return ok
}

// ResetGlobalContext resets all changes to the "global_context" field.
func (m *TaskMutation) ResetGlobalContext() {
	m.global_context = nil
	delete(m.clearedFields, task.FieldGlobalContext)
}

// SetInitialConstraints sets the "initial_constraints" field.
func (m *TaskMutation) SetInitialConstraints(s []string) {
	m.initial_constraints = &s
	m.appendinitial_constraints = nil
}

// InitialConstraints returns the value of the "initial_constraints" field in the mutation.
func (m *TaskMutation) InitialConstraints() (r []string, exists bool) {
	v := m.initial_constraints
	if v == nil {
		return
	}
	return *v, true
}

// OldInitialConstraints returns the old "initial_constraints" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldInitialConstraints(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInitialConstraints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInitialConstraints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInitialConstraints: %w", err)
	}
	return oldValue.InitialConstraints, nil
}

// AppendInitialConstraints adds s to the "initial_constraints" field.
func (m *TaskMutation) AppendInitialConstraints(s []string) {
	m.appendinitial_constraints = append(m.appendinitial_constraints, s...)
}

// AppendedInitialConstraints returns the list of values that were appended to the "initial_constraints" field in this mutation.
func (m *TaskMutation) AppendedInitialConstraints() ([]string, bool) {
	if len(m.appendinitial_constraints) == 0 {
		return nil, false
	}
	return m.appendinitial_constraints, true
}

// ClearInitialConstraints clears the value of the "initial_constraints" field.
func (m *TaskMutation) ClearInitialConstraints() {
	m.initial_constraints = nil
	m.appendinitial_constraints = nil
	m.clearedFields[task.FieldInitialConstraints] = struct{}{}
}

// InitialConstraintsCleared returns if the "initial_constraints" field was cleared in this mutation.
func (m *TaskMutation) InitialConstraintsCleared() bool {
	_, ok := m.clearedFields[task.FieldInitialConstraints]
	return ok
}

// ResetInitialConstraints resets all changes to the "initial_constraints" field.
func (m *TaskMutation) ResetInitialConstraints() {
	m.initial_constraints = nil
	m.appendinitial_constraints = nil
	delete(m.clearedFields, task.FieldInitialConstraints)
}

// SetProfileName sets the "profile_name" field.
func (m *TaskMutation) SetProfileName(s string) {
	m.profile_name = &s
}

// ProfileName returns the value of the "profile_name" field in the mutation.
func (m *TaskMutation) ProfileName() (r string, exists bool) {
	v := m.profile_name
	if v == nil {
		return
	}
	return *v, true
}

// OldProfileName returns the old "profile_name" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldProfileName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProfileName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProfileName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProfileName: %w", err)
	}
	return oldValue.ProfileName, nil
}

// ResetProfileName resets all changes to the "profile_name" field.
func (m *TaskMutation) ResetProfileName() {
	m.profile_name = nil
}

// SetResult sets the "result" field.
func (m *TaskMutation) SetResult(s string) {
	m.result = &s
}

// Result returns the value of the "result" field in the mutation.
func (m *TaskMutation) Result() (r string, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldResult(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// ClearResult clears the value of the "result" field.
func (m *TaskMutation) ClearResult() {
	m.result = nil
	m.clearedFields[task.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TaskMutation) ResultCleared() bool {
	_, ok := m.clearedFields[task.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TaskMutation) ResetResult() {
	m.result = nil
	delete(m.clearedFields, task.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *TaskMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TaskMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TaskMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[task.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TaskMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[task.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TaskMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, task.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *TaskMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TaskMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TaskMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *TaskMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *TaskMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the Task entity.
// If the Task object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TaskMutation) OldCompletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *TaskMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[task.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *TaskMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[task.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *TaskMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, task.FieldCompletedAt)
}

// AddAgentIDs adds the "agents" edge to the AgentRecord entity by ids.
func (m *TaskMutation) AddAgentIDs(ids ...string) {
	if m.agents == nil {
		m.agents = make(map[string]struct{})
	}
	for i := range ids {
		m.agents[ids[i]] = struct{}{}
	}
}

// ClearAgents clears the "agents" edge to the AgentRecord entity.
func (m *TaskMutation) ClearAgents() {
	m.clearedagents = true
}

// AgentsCleared reports if the "agents" edge to the AgentRecord entity was cleared.
func (m *TaskMutation) AgentsCleared() bool {
	return m.clearedagents
}

// RemoveAgentIDs removes the "agents" edge to the AgentRecord entity by IDs.
func (m *TaskMutation) RemoveAgentIDs(ids ...string) {
	if m.removedagents == nil {
		m.removedagents = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.agents, ids[i])
		m.removedagents[ids[i]] = struct{}{}
	}
}

// RemovedAgents returns the removed IDs of the "agents" edge to the AgentRecord entity.
func (m *TaskMutation) RemovedAgentsIDs() (ids []string) {
	for id := range m.removedagents {
		ids = append(ids, id)
	}
	return
}

// AgentsIDs returns the "agents" edge IDs in the mutation.
func (m *TaskMutation) AgentsIDs() (ids []string) {
	for id := range m.agents {
		ids = append(ids, id)
	}
	return
}

// ResetAgents resets all changes to the "agents" edge.
func (m *TaskMutation) ResetAgents() {
	m.agents = nil
	m.clearedagents = false
	m.removedagents = nil
}

// AddActionIDs adds the "actions" edge to the ActionRecord entity by ids.
func (m *TaskMutation) AddActionIDs(ids ...string) {
	if m.actions == nil {
		m.actions = make(map[string]struct{})
	}
	for i := range ids {
		m.actions[ids[i]] = struct{}{}
	}
}

// ClearActions clears the "actions" edge to the ActionRecord entity.
func (m *TaskMutation) ClearActions() {
	m.clearedactions = true
}

// ActionsCleared reports if the "actions" edge to the ActionRecord entity was cleared.
func (m *TaskMutation) ActionsCleared() bool {
	return m.clearedactions
}

// RemoveActionIDs removes the "actions" edge to the ActionRecord entity by IDs.
func (m *TaskMutation) RemoveActionIDs(ids ...string) {
	if m.removedactions == nil {
		m.removedactions = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.actions, ids[i])
		m.removedactions[ids[i]] = struct{}{}
	}
}

// RemovedActions returns the removed IDs of the "actions" edge to the ActionRecord entity.
func (m *TaskMutation) RemovedActionsIDs() (ids []string) {
	for id := range m.removedactions {
		ids = append(ids, id)
	}
	return
}

// ActionsIDs returns the "actions" edge IDs in the mutation.
func (m *TaskMutation) ActionsIDs() (ids []string) {
	for id := range m.actions {
		ids = append(ids, id)
	}
	return
}

// ResetActions resets all changes to the "actions" edge.
func (m *TaskMutation) ResetActions() {
	m.actions = nil
	m.clearedactions = false
	m.removedactions = nil
}

// AddCostIDs adds the "costs" edge to the CostRecord entity by ids.
func (m *TaskMutation) AddCostIDs(ids ...string) {
	if m.costs == nil {
		m.costs = make(map[string]struct{})
	}
	for i := range ids {
		m.costs[ids[i]] = struct{}{}
	}
}

// ClearCosts clears the "costs" edge to the CostRecord entity.
func (m *TaskMutation) ClearCosts() {
	m.clearedcosts = true
}

// CostsCleared reports if the "costs" edge to the CostRecord entity was cleared.
func (m *TaskMutation) CostsCleared() bool {
	return m.clearedcosts
}

// RemoveCostIDs removes the "costs" edge to the CostRecord entity by IDs.
func (m *TaskMutation) RemoveCostIDs(ids ...string) {
	if m.removedcosts == nil {
		m.removedcosts = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.costs, ids[i])
		m.removedcosts[ids[i]] = struct{}{}
	}
}

// RemovedCosts returns the removed IDs of the "costs" edge to the CostRecord entity.
func (m *TaskMutation) RemovedCostsIDs() (ids []string) {
	for id := range m.removedcosts {
		ids = append(ids, id)
	}
	return
}

// CostsIDs returns the "costs" edge IDs in the mutation.
func (m *TaskMutation) CostsIDs() (ids []string) {
	for id := range m.costs {
		ids = append(ids, id)
	}
	return
}

// ResetCosts resets all changes to the "costs" edge.
func (m *TaskMutation) ResetCosts() {
	m.costs = nil
	m.clearedcosts = false
	m.removedcosts = nil
}

// AddLogIDs adds the "logs" edge to the LogEntry entity by ids.
func (m *TaskMutation) AddLogIDs(ids ...int) {
	if m.logs == nil {
		m.logs = make(map[int]struct{})
	}
	for i := range ids {
		m.logs[ids[i]] = struct{}{}
	}
}

// ClearLogs clears the "logs" edge to the LogEntry entity.
func (m *TaskMutation) ClearLogs() {
	m.clearedlogs = true
}

// LogsCleared reports if the "logs" edge to the LogEntry entity was cleared.
func (m *TaskMutation) LogsCleared() bool {
	return m.clearedlogs
}

// RemoveLogIDs removes the "logs" edge to the LogEntry entity by IDs.
func (m *TaskMutation) RemoveLogIDs(ids ...int) {
	if m.removedlogs == nil {
		m.removedlogs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.logs, ids[i])
		m.removedlogs[ids[i]] = struct{}{}
	}
}

// RemovedLogs returns the removed IDs of the "logs" edge to the LogEntry entity.
func (m *TaskMutation) RemovedLogsIDs() (ids []int) {
	for id := range m.removedlogs {
		ids = append(ids, id)
	}
	return
}

// LogsIDs returns the "logs" edge IDs in the mutation.
func (m *TaskMutation) LogsIDs() (ids []int) {
	for id := range m.logs {
		ids = append(ids, id)
	}
	return
}

// ResetLogs resets all changes to the "logs" edge.
func (m *TaskMutation) ResetLogs() {
	m.logs = nil
	m.clearedlogs = false
	m.removedlogs = nil
}

// AddEventIDs adds the "events" edge to the Event entity by ids.
func (m *TaskMutation) AddEventIDs(ids ...int) {
	if m.events == nil {
		m.events = make(map[int]struct{})
	}
	for i := range ids {
		m.events[ids[i]] = struct{}{}
	}
}

// ClearEvents clears the "events" edge to the Event entity.
func (m *TaskMutation) ClearEvents() {
	m.clearedevents = true
}

// EventsCleared reports if the "events" edge to the Event entity was cleared.
func (m *TaskMutation) EventsCleared() bool {
	return m.clearedevents
}

// RemoveEventIDs removes the "events" edge to the Event entity by IDs.
func (m *TaskMutation) RemoveEventIDs(ids ...int) {
	if m.removedevents == nil {
		m.removedevents = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.events, ids[i])
		m.removedevents[ids[i]] = struct{}{}
	}
}

// RemovedEvents returns the removed IDs of the "events" edge to the Event entity.
func (m *TaskMutation) RemovedEventsIDs() (ids []int) {
	for id := range m.removedevents {
		ids = append(ids, id)
	}
	return
}

// EventsIDs returns the "events" edge IDs in the mutation.
func (m *TaskMutation) EventsIDs() (ids []int) {
	for id := range m.events {
		ids = append(ids, id)
	}
	return
}

// ResetEvents resets all changes to the "events" edge.
func (m *TaskMutation) ResetEvents() {
	m.events = nil
	m.clearedevents = false
	m.removedevents = nil
}

// Where appends a list predicates to the TaskMutation builder.
func (m *TaskMutation) Where(ps ...predicate.Task) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TaskMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TaskMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Task, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TaskMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TaskMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Task).
func (m *TaskMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TaskMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.prompt != nil {
		fields = append(fields, task.FieldPrompt)
	}
	if m.status != nil {
		fields = append(fields, task.FieldStatus)
	}
	if m.global_context != nil {
		fields = append(fields, task.FieldGlobalContext)
	}
	if m.initial_constraints != nil {
		fields = append(fields, task.FieldInitialConstraints)
	}
	if m.profile_name != nil {
		fields = append(fields, task.FieldProfileName)
	}
	if m.result != nil {
		fields = append(fields, task.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, task.FieldCreatedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TaskMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case task.FieldPrompt:
		return m.Prompt()
	case task.FieldStatus:
		return m.Status()
	case task.FieldGlobalContext:
		return m.GlobalContext()
	case task.FieldInitialConstraints:
		return m.InitialConstraints()
	case task.FieldProfileName:
		return m.ProfileName()
	case task.FieldResult:
		return m.Result()
	case task.FieldErrorMessage:
		return m.ErrorMessage()
	case task.FieldCreatedAt:
		return m.CreatedAt()
	case task.FieldCompletedAt:
		return m.CompletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TaskMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case task.FieldPrompt:
		return m.OldPrompt(ctx)
	case task.FieldStatus:
		return m.OldStatus(ctx)
	case task.FieldGlobalContext:
		return m.OldGlobalContext(ctx)
	case task.FieldInitialConstraints:
		return m.OldInitialConstraints(ctx)
	case task.FieldProfileName:
		return m.OldProfileName(ctx)
	case task.FieldResult:
		return m.OldResult(ctx)
	case task.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case task.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case task.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Task field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) SetField(name string, value ent.Value) error {
	switch name {
	case task.FieldPrompt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrompt(v)
		return nil
	case task.FieldStatus:
		v, ok := value.(task.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case task.FieldGlobalContext:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGlobalContext(v)
		return nil
	case task.FieldInitialConstraints:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInitialConstraints(v)
		return nil
	case task.FieldProfileName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProfileName(v)
		return nil
	case task.FieldResult:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case task.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case task.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case task.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TaskMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TaskMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TaskMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Task numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TaskMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(task.FieldGlobalContext) {
		fields = append(fields, task.FieldGlobalContext)
	}
	if m.FieldCleared(task.FieldInitialConstraints) {
		fields = append(fields, task.FieldInitialConstraints)
	}
	if m.FieldCleared(task.FieldResult) {
		fields = append(fields, task.FieldResult)
	}
	if m.FieldCleared(task.FieldErrorMessage) {
		fields = append(fields, task.FieldErrorMessage)
	}
	if m.FieldCleared(task.FieldCompletedAt) {
		fields = append(fields, task.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TaskMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TaskMutation) ClearField(name string) error {
	switch name {
	case task.FieldGlobalContext:
		m.ClearGlobalContext()
		return nil
	case task.FieldInitialConstraints:
		m.ClearInitialConstraints()
		return nil
	case task.FieldResult:
		m.ClearResult()
		return nil
	case task.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case task.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TaskMutation) ResetField(name string) error {
	switch name {
	case task.FieldPrompt:
		m.ResetPrompt()
		return nil
	case task.FieldStatus:
		m.ResetStatus()
		return nil
	case task.FieldGlobalContext:
		m.ResetGlobalContext()
		return nil
	case task.FieldInitialConstraints:
		m.ResetInitialConstraints()
		return nil
	case task.FieldProfileName:
		m.ResetProfileName()
		return nil
	case task.FieldResult:
		m.ResetResult()
		return nil
	case task.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case task.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case task.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown Task field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TaskMutation) AddedEdges() []string {
	edges := make([]string, 0, 5)
	if m.agents != nil {
		edges = append(edges, task.EdgeAgents)
	}
	if m.actions != nil {
		edges = append(edges, task.EdgeActions)
	}
	if m.costs != nil {
		edges = append(edges, task.EdgeCosts)
	}
	if m.logs != nil {
		edges = append(edges, task.EdgeLogs)
	}
	if m.events != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TaskMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.agents))
		for id := range m.agents {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeActions:
		ids := make([]ent.Value, 0, len(m.actions))
		for id := range m.actions {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCosts:
		ids := make([]ent.Value, 0, len(m.costs))
		for id := range m.costs {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.logs))
		for id := range m.logs {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.events))
		for id := range m.events {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TaskMutation) RemovedEdges() []string {
	edges := make([]string, 0, 5)
	if m.removedagents != nil {
		edges = append(edges, task.EdgeAgents)
	}
	if m.removedactions != nil {
		edges = append(edges, task.EdgeActions)
	}
	if m.removedcosts != nil {
		edges = append(edges, task.EdgeCosts)
	}
	if m.removedlogs != nil {
		edges = append(edges, task.EdgeLogs)
	}
	if m.removedevents != nil {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TaskMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case task.EdgeAgents:
		ids := make([]ent.Value, 0, len(m.removedagents))
		for id := range m.removedagents {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeActions:
		ids := make([]ent.Value, 0, len(m.removedactions))
		for id := range m.removedactions {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeCosts:
		ids := make([]ent.Value, 0, len(m.removedcosts))
		for id := range m.removedcosts {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeLogs:
		ids := make([]ent.Value, 0, len(m.removedlogs))
		for id := range m.removedlogs {
			ids = append(ids, id)
		}
		return ids
	case task.EdgeEvents:
		ids := make([]ent.Value, 0, len(m.removedevents))
		for id := range m.removedevents {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TaskMutation) ClearedEdges() []string {
	edges := make([]string, 0, 5)
	if m.clearedagents {
		edges = append(edges, task.EdgeAgents)
	}
	if m.clearedactions {
		edges = append(edges, task.EdgeActions)
	}
	if m.clearedcosts {
		edges = append(edges, task.EdgeCosts)
	}
	if m.clearedlogs {
		edges = append(edges, task.EdgeLogs)
	}
	if m.clearedevents {
		edges = append(edges, task.EdgeEvents)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TaskMutation) EdgeCleared(name string) bool {
	switch name {
	case task.EdgeAgents:
		return m.clearedagents
	case task.EdgeActions:
		return m.clearedactions
	case task.EdgeCosts:
		return m.clearedcosts
	case task.EdgeLogs:
		return m.clearedlogs
	case task.EdgeEvents:
		return m.clearedevents
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TaskMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Task unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TaskMutation) ResetEdge(name string) error {
	switch name {
	case task.EdgeAgents:
		m.ResetAgents()
		return nil
	case task.EdgeActions:
		m.ResetActions()
		return nil
	case task.EdgeCosts:
		m.ResetCosts()
		return nil
	case task.EdgeLogs:
		m.ResetLogs()
		return nil
	case task.EdgeEvents:
		m.ResetEvents()
		return nil
	}
	return fmt.Errorf("unknown Task edge %s", name)
}
