// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-run/conclave/ent/agentrecord"
	"github.com/conclave-run/conclave/ent/task"
)

// AgentRecordCreate is the builder for creating a AgentRecord entity.
type AgentRecordCreate struct {
	config
	mutation *AgentRecordMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *AgentRecordCreate) SetTaskID(v string) *AgentRecordCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *AgentRecordCreate) SetParentID(v string) *AgentRecordCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableParentID(v *string) *AgentRecordCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetProfileName sets the "profile_name" field.
func (_c *AgentRecordCreate) SetProfileName(v string) *AgentRecordCreate {
	_c.mutation.SetProfileName(v)
	return _c
}

// SetModelPool sets the "model_pool" field.
func (_c *AgentRecordCreate) SetModelPool(v []string) *AgentRecordCreate {
	_c.mutation.SetModelPool(v)
	return _c
}

// SetCapabilityGroups sets the "capability_groups" field.
func (_c *AgentRecordCreate) SetCapabilityGroups(v []string) *AgentRecordCreate {
	_c.mutation.SetCapabilityGroups(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AgentRecordCreate) SetStatus(v agentrecord.Status) *AgentRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableStatus(v *agentrecord.Status) *AgentRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPromptFields sets the "prompt_fields" field.
func (_c *AgentRecordCreate) SetPromptFields(v map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetPromptFields(v)
	return _c
}

// SetModelHistories sets the "model_histories" field.
func (_c *AgentRecordCreate) SetModelHistories(v map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetModelHistories(v)
	return _c
}

// SetBudgetData sets the "budget_data" field.
func (_c *AgentRecordCreate) SetBudgetData(v map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetBudgetData(v)
	return _c
}

// SetActiveSkills sets the "active_skills" field.
func (_c *AgentRecordCreate) SetActiveSkills(v []map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetActiveSkills(v)
	return _c
}

// SetTodos sets the "todos" field.
func (_c *AgentRecordCreate) SetTodos(v []map[string]interface{}) *AgentRecordCreate {
	_c.mutation.SetTodos(v)
	return _c
}

// SetChildren sets the "children" field.
func (_c *AgentRecordCreate) SetChildren(v []string) *AgentRecordCreate {
	_c.mutation.SetChildren(v)
	return _c
}

// SetDismissing sets the "dismissing" field.
func (_c *AgentRecordCreate) SetDismissing(v bool) *AgentRecordCreate {
	_c.mutation.SetDismissing(v)
	return _c
}

// SetNillableDismissing sets the "dismissing" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableDismissing(v *bool) *AgentRecordCreate {
	if v != nil {
		_c.SetDismissing(*v)
	}
	return _c
}

// SetInsertedAt sets the "inserted_at" field.
func (_c *AgentRecordCreate) SetInsertedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetInsertedAt(v)
	return _c
}

// SetNillableInsertedAt sets the "inserted_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableInsertedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetInsertedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AgentRecordCreate) SetUpdatedAt(v time.Time) *AgentRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AgentRecordCreate) SetNillableUpdatedAt(v *time.Time) *AgentRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AgentRecordCreate) SetID(v string) *AgentRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *AgentRecordCreate) SetTask(v *Task) *AgentRecordCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_c *AgentRecordCreate) Mutation() *AgentRecordMutation {
	return _c.mutation
}

// Save creates the AgentRecord in the database.
func (_c *AgentRecordCreate) Save(ctx context.Context) (*AgentRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentRecordCreate) SaveX(ctx context.Context) *AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := agentrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Dismissing(); !ok {
		v := agentrecord.DefaultDismissing
		_c.mutation.SetDismissing(v)
	}
	if _, ok := _c.mutation.InsertedAt(); !ok {
		v := agentrecord.DefaultInsertedAt()
		_c.mutation.SetInsertedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := agentrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentRecordCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "AgentRecord.task_id"`)}
	}
	if _, ok := _c.mutation.ProfileName(); !ok {
		return &ValidationError{Name: "profile_name", err: errors.New(`ent: missing required field "AgentRecord.profile_name"`)}
	}
	if _, ok := _c.mutation.ModelPool(); !ok {
		return &ValidationError{Name: "model_pool", err: errors.New(`ent: missing required field "AgentRecord.model_pool"`)}
	}
	if _, ok := _c.mutation.CapabilityGroups(); !ok {
		return &ValidationError{Name: "capability_groups", err: errors.New(`ent: missing required field "AgentRecord.capability_groups"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AgentRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.PromptFields(); !ok {
		return &ValidationError{Name: "prompt_fields", err: errors.New(`ent: missing required field "AgentRecord.prompt_fields"`)}
	}
	if _, ok := _c.mutation.Dismissing(); !ok {
		return &ValidationError{Name: "dismissing", err: errors.New(`ent: missing required field "AgentRecord.dismissing"`)}
	}
	if _, ok := _c.mutation.InsertedAt(); !ok {
		return &ValidationError{Name: "inserted_at", err: errors.New(`ent: missing required field "AgentRecord.inserted_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "AgentRecord.updated_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "AgentRecord.task"`)}
	}
	return nil
}

func (_c *AgentRecordCreate) sqlSave(ctx context.Context) (*AgentRecord, error) {
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
			return nil, fmt.Errorf("unexpected AgentRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AgentRecordCreate) createSpec() (*AgentRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agentrecord.Table, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(agentrecord.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.ProfileName(); ok {
		_spec.SetField(agentrecord.FieldProfileName, field.TypeString, value)
		_node.ProfileName = value
	}
	if value, ok := _c.mutation.ModelPool(); ok {
		_spec.SetField(agentrecord.FieldModelPool, field.TypeJSON, value)
		_node.ModelPool = value
	}
	if value, ok := _c.mutation.CapabilityGroups(); ok {
		_spec.SetField(agentrecord.FieldCapabilityGroups, field.TypeJSON, value)
		_node.CapabilityGroups = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.PromptFields(); ok {
		_spec.SetField(agentrecord.FieldPromptFields, field.TypeJSON, value)
		_node.PromptFields = value
	}
	if value, ok := _c.mutation.ModelHistories(); ok {
		_spec.SetField(agentrecord.FieldModelHistories, field.TypeJSON, value)
		_node.ModelHistories = value
	}
	if value, ok := _c.mutation.BudgetData(); ok {
		_spec.SetField(agentrecord.FieldBudgetData, field.TypeJSON, value)
		_node.BudgetData = value
	}
	if value, ok := _c.mutation.ActiveSkills(); ok {
		_spec.SetField(agentrecord.FieldActiveSkills, field.TypeJSON, value)
		_node.ActiveSkills = value
	}
	if value, ok := _c.mutation.Todos(); ok {
		_spec.SetField(agentrecord.FieldTodos, field.TypeJSON, value)
		_node.Todos = value
	}
	if value, ok := _c.mutation.Children(); ok {
		_spec.SetField(agentrecord.FieldChildren, field.TypeJSON, value)
		_node.Children = value
	}
	if value, ok := _c.mutation.Dismissing(); ok {
		_spec.SetField(agentrecord.FieldDismissing, field.TypeBool, value)
		_node.Dismissing = value
	}
	if value, ok := _c.mutation.InsertedAt(); ok {
		_spec.SetField(agentrecord.FieldInsertedAt, field.TypeTime, value)
		_node.InsertedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agentrecord.TaskTable,
			Columns: []string{agentrecord.TaskColumn},
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

// AgentRecordCreateBulk is the builder for creating many AgentRecord entities in bulk.
type AgentRecordCreateBulk struct {
	config
	err      error
	builders []*AgentRecordCreate
}

// Save creates the AgentRecord entities in the database.
func (_c *AgentRecordCreateBulk) Save(ctx context.Context) ([]*AgentRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentRecordMutation)
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
func (_c *AgentRecordCreateBulk) SaveX(ctx context.Context) []*AgentRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
