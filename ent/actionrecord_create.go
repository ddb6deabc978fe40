// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-run/conclave/ent/actionrecord"
	"github.com/conclave-run/conclave/ent/task"
)

// ActionRecordCreate is the builder for creating a ActionRecord entity.
type ActionRecordCreate struct {
	config
	mutation *ActionRecordMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *ActionRecordCreate) SetTaskID(v string) *ActionRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetAgentID sets the "agent_id" field.
func (_c *ActionRecordCreate) SetAgentID(v string) *ActionRecordCreate {
	_c.mutation.SetAgentID(v)
	return _c
}

// SetActionType sets the "action_type" field.
func (_c *ActionRecordCreate) SetActionType(v string) *ActionRecordCreate {
	_c.mutation.SetActionType(v)
	return _c
}

// SetParams sets the "params" field.
func (_c *ActionRecordCreate) SetParams(v map[string]interface{}) *ActionRecordCreate {
	_c.mutation.SetParams(v)
	return _c
}

// SetResult sets the "result" field.
func (_c *ActionRecordCreate) SetResult(v map[string]interface{}) *ActionRecordCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ActionRecordCreate) SetStatus(v actionrecord.Status) *ActionRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ActionRecordCreate) SetNillableStatus(v *actionrecord.Status) *ActionRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetParentActionID sets the "parent_action_id" field.
func (_c *ActionRecordCreate) SetParentActionID(v string) *ActionRecordCreate {
	_c.mutation.SetParentActionID(v)
	return _c
}

// SetNillableParentActionID sets the "parent_action_id" field if the given value is not nil.
func (_c *ActionRecordCreate) SetNillableParentActionID(v *string) *ActionRecordCreate {
	if v != nil {
		_c.SetParentActionID(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ActionRecordCreate) SetStartedAt(v time.Time) *ActionRecordCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *ActionRecordCreate) SetNillableStartedAt(v *time.Time) *ActionRecordCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ActionRecordCreate) SetCompletedAt(v time.Time) *ActionRecordCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ActionRecordCreate) SetNillableCompletedAt(v *time.Time) *ActionRecordCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ActionRecordCreate) SetErrorMessage(v string) *ActionRecordCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ActionRecordCreate) SetNillableErrorMessage(v *string) *ActionRecordCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ActionRecordCreate) SetID(v string) *ActionRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *ActionRecordCreate) SetTask(v *Task) *ActionRecordCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the ActionRecordMutation object of the builder.
func (_c *ActionRecordCreate) Mutation() *ActionRecordMutation {
	return _c.mutation
}

// Save creates the ActionRecord in the database.
func (_c *ActionRecordCreate) Save(ctx context.Context) (*ActionRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ActionRecordCreate) SaveX(ctx context.Context) *ActionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ActionRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := actionrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := actionrecord.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ActionRecordCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "ActionRecord.task_id"`)}
	}
	if _, ok := _c.mutation.AgentID(); !ok {
		return &ValidationError{Name: "agent_id", err: errors.New(`ent: missing required field "ActionRecord.agent_id"`)}
	}
	if _, ok := _c.mutation.ActionType(); !ok {
		return &ValidationError{Name: "action_type", err: errors.New(`ent: missing required field "ActionRecord.action_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ActionRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := actionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ActionRecord.started_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "ActionRecord.task"`)}
	}
	return nil
}

func (_c *ActionRecordCreate) sqlSave(ctx context.Context) (*ActionRecord, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ActionRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ActionRecordCreate) createSpec() (*ActionRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ActionRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(actionrecord.Table, sqlgraph.NewFieldSpec(actionrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.AgentID(); ok {
		_spec.SetField(actionrecord.FieldAgentID, field.TypeString, value)
		_node.AgentID = value
	}
	if value, ok := _c.mutation.ActionType(); ok {
		_spec.SetField(actionrecord.FieldActionType, field.TypeString, value)
		_node.ActionType = value
	}
	if value, ok := _c.mutation.Params(); ok {
		_spec.SetField(actionrecord.FieldParams, field.TypeJSON, value)
		_node.Params = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(actionrecord.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(actionrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ParentActionID(); ok {
		_spec.SetField(actionrecord.FieldParentActionID, field.TypeString, value)
		_node.ParentActionID = &value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(actionrecord.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(actionrecord.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(actionrecord.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   actionrecord.TaskTable,
			Columns: []string{actionrecord.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ActionRecordCreateBulk is the builder for creating many ActionRecord entities in bulk.
type ActionRecordCreateBulk struct {
	config
	err      error
	builders []*ActionRecordCreate
}

// Save creates the ActionRecord entities in the database.
func (_c *ActionRecordCreateBulk) Save(ctx context.Context) ([]*ActionRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ActionRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ActionRecordMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ActionRecordCreateBulk) SaveX(ctx context.Context) []*ActionRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ActionRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ActionRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
