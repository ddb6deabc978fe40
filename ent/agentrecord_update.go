// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/conclave-run/conclave/ent/agentrecord"
	"github.com/conclave-run/conclave/ent/predicate"
)

// AgentRecordUpdate is the builder for updating AgentRecord entities.
type AgentRecordUpdate struct {
	config
	hooks    []Hook
	mutation *AgentRecordMutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdate) Where(ps ...predicate.AgentRecord) *AgentRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileName sets the "profile_name" field.
func (_u *AgentRecordUpdate) SetProfileName(v string) *AgentRecordUpdate {
	_u.mutation.SetProfileName(v)
	return _u
}

// SetNillableProfileName sets the "profile_name" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableProfileName(v *string) *AgentRecordUpdate {
	if v != nil {
		_u.SetProfileName(*v)
	}
	return _u
}

// SetModelPool sets the "model_pool" field.
func (_u *AgentRecordUpdate) SetModelPool(v []string) *AgentRecordUpdate {
	_u.mutation.SetModelPool(v)
	return _u
}

// AppendModelPool appends value to the "model_pool" field.
func (_u *AgentRecordUpdate) AppendModelPool(v []string) *AgentRecordUpdate {
	_u.mutation.AppendModelPool(v)
	return _u
}

// SetCapabilityGroups sets the "capability_groups" field.
func (_u *AgentRecordUpdate) SetCapabilityGroups(v []string) *AgentRecordUpdate {
	_u.mutation.SetCapabilityGroups(v)
	return _u
}

// AppendCapabilityGroups appends value to the "capability_groups" field.
func (_u *AgentRecordUpdate) AppendCapabilityGroups(v []string) *AgentRecordUpdate {
	_u.mutation.AppendCapabilityGroups(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdate) SetStatus(v agentrecord.Status) *AgentRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPromptFields sets the "prompt_fields" field.
func (_u *AgentRecordUpdate) SetPromptFields(v map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetPromptFields(v)
	return _u
}

// SetModelHistories sets the "model_histories" field.
func (_u *AgentRecordUpdate) SetModelHistories(v map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetModelHistories(v)
	return _u
}

// ClearModelHistories clears the value of the "model_histories" field.
func (_u *AgentRecordUpdate) ClearModelHistories() *AgentRecordUpdate {
	_u.mutation.ClearModelHistories()
	return _u
}

// SetBudgetData sets the "budget_data" field.
func (_u *AgentRecordUpdate) SetBudgetData(v map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetBudgetData(v)
	return _u
}

// ClearBudgetData clears the value of the "budget_data" field.
func (_u *AgentRecordUpdate) ClearBudgetData() *AgentRecordUpdate {
	_u.mutation.ClearBudgetData()
	return _u
}

// SetActiveSkills sets the "active_skills" field.
func (_u *AgentRecordUpdate) SetActiveSkills(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetActiveSkills(v)
	return _u
}

// AppendActiveSkills appends value to the "active_skills" field.
func (_u *AgentRecordUpdate) AppendActiveSkills(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.AppendActiveSkills(v)
	return _u
}

// ClearActiveSkills clears the value of the "active_skills" field.
func (_u *AgentRecordUpdate) ClearActiveSkills() *AgentRecordUpdate {
	_u.mutation.ClearActiveSkills()
	return _u
}

// SetTodos sets the "todos" field.
func (_u *AgentRecordUpdate) SetTodos(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.SetTodos(v)
	return _u
}

// AppendTodos appends value to the "todos" field.
func (_u *AgentRecordUpdate) AppendTodos(v []map[string]interface{}) *AgentRecordUpdate {
	_u.mutation.AppendTodos(v)
	return _u
}

// ClearTodos clears the value of the "todos" field.
func (_u *AgentRecordUpdate) ClearTodos() *AgentRecordUpdate {
	_u.mutation.ClearTodos()
	return _u
}

// SetChildren sets the "children" field.
func (_u *AgentRecordUpdate) SetChildren(v []string) *AgentRecordUpdate {
	_u.mutation.SetChildren(v)
	return _u
}

// AppendChildren appends value to the "children" field.
func (_u *AgentRecordUpdate) AppendChildren(v []string) *AgentRecordUpdate {
	_u.mutation.AppendChildren(v)
	return _u
}

// ClearChildren clears the value of the "children" field.
func (_u *AgentRecordUpdate) ClearChildren() *AgentRecordUpdate {
	_u.mutation.ClearChildren()
	return _u
}

// SetDismissing sets the "dismissing" field.
func (_u *AgentRecordUpdate) SetDismissing(v bool) *AgentRecordUpdate {
	_u.mutation.SetDismissing(v)
	return _u
}

// SetNillableDismissing sets the "dismissing" field if the given value is not nil.
func (_u *AgentRecordUpdate) SetNillableDismissing(v *bool) *AgentRecordUpdate {
	if v != nil {
		_u.SetDismissing(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdate) SetUpdatedAt(v time.Time) *AgentRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdate) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AgentRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AgentRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.task"`)
	}
	return nil
}

func (_u *AgentRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(agentrecord.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileName(); ok {
		_spec.SetField(agentrecord.FieldProfileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelPool(); ok {
		_spec.SetField(agentrecord.FieldModelPool, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelPool(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldModelPool, value)
		})
	}
	if value, ok := _u.mutation.CapabilityGroups(); ok {
		_spec.SetField(agentrecord.FieldCapabilityGroups, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilityGroups(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldCapabilityGroups, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PromptFields(); ok {
		_spec.SetField(agentrecord.FieldPromptFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelHistories(); ok {
		_spec.SetField(agentrecord.FieldModelHistories, field.TypeJSON, value)
	}
	if _u.mutation.ModelHistoriesCleared() {
		_spec.ClearField(agentrecord.FieldModelHistories, field.TypeJSON)
	}
	if value, ok := _u.mutation.BudgetData(); ok {
		_spec.SetField(agentrecord.FieldBudgetData, field.TypeJSON, value)
	}
	if _u.mutation.BudgetDataCleared() {
		_spec.ClearField(agentrecord.FieldBudgetData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActiveSkills(); ok {
		_spec.SetField(agentrecord.FieldActiveSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActiveSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldActiveSkills, value)
		})
	}
	if _u.mutation.ActiveSkillsCleared() {
		_spec.ClearField(agentrecord.FieldActiveSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Todos(); ok {
		_spec.SetField(agentrecord.FieldTodos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTodos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldTodos, value)
		})
	}
	if _u.mutation.TodosCleared() {
		_spec.ClearField(agentrecord.FieldTodos, field.TypeJSON)
	}
	if value, ok := _u.mutation.Children(); ok {
		_spec.SetField(agentrecord.FieldChildren, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildren(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldChildren, value)
		})
	}
	if _u.mutation.ChildrenCleared() {
		_spec.ClearField(agentrecord.FieldChildren, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dismissing(); ok {
		_spec.SetField(agentrecord.FieldDismissing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AgentRecordUpdateOne is the builder for updating a single AgentRecord entity.
type AgentRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AgentRecordMutation
}

// SetProfileName sets the "profile_name" field.
func (_u *AgentRecordUpdateOne) SetProfileName(v string) *AgentRecordUpdateOne {
	_u.mutation.SetProfileName(v)
	return _u
}

// SetNillableProfileName sets the "profile_name" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableProfileName(v *string) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetProfileName(*v)
	}
	return _u
}

// SetModelPool sets the "model_pool" field.
func (_u *AgentRecordUpdateOne) SetModelPool(v []string) *AgentRecordUpdateOne {
	_u.mutation.SetModelPool(v)
	return _u
}

// AppendModelPool appends value to the "model_pool" field.
func (_u *AgentRecordUpdateOne) AppendModelPool(v []string) *AgentRecordUpdateOne {
	_u.mutation.AppendModelPool(v)
	return _u
}

// SetCapabilityGroups sets the "capability_groups" field.
func (_u *AgentRecordUpdateOne) SetCapabilityGroups(v []string) *AgentRecordUpdateOne {
	_u.mutation.SetCapabilityGroups(v)
	return _u
}

// AppendCapabilityGroups appends value to the "capability_groups" field.
func (_u *AgentRecordUpdateOne) AppendCapabilityGroups(v []string) *AgentRecordUpdateOne {
	_u.mutation.AppendCapabilityGroups(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *AgentRecordUpdateOne) SetStatus(v agentrecord.Status) *AgentRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableStatus(v *agentrecord.Status) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPromptFields sets the "prompt_fields" field.
func (_u *AgentRecordUpdateOne) SetPromptFields(v map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetPromptFields(v)
	return _u
}

// SetModelHistories sets the "model_histories" field.
func (_u *AgentRecordUpdateOne) SetModelHistories(v map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetModelHistories(v)
	return _u
}

// ClearModelHistories clears the value of the "model_histories" field.
func (_u *AgentRecordUpdateOne) ClearModelHistories() *AgentRecordUpdateOne {
	_u.mutation.ClearModelHistories()
	return _u
}

// SetBudgetData sets the "budget_data" field.
func (_u *AgentRecordUpdateOne) SetBudgetData(v map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetBudgetData(v)
	return _u
}

// ClearBudgetData clears the value of the "budget_data" field.
func (_u *AgentRecordUpdateOne) ClearBudgetData() *AgentRecordUpdateOne {
	_u.mutation.ClearBudgetData()
	return _u
}

// SetActiveSkills sets the "active_skills" field.
func (_u *AgentRecordUpdateOne) SetActiveSkills(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetActiveSkills(v)
	return _u
}

// AppendActiveSkills appends value to the "active_skills" field.
func (_u *AgentRecordUpdateOne) AppendActiveSkills(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.AppendActiveSkills(v)
	return _u
}

// ClearActiveSkills clears the value of the "active_skills" field.
func (_u *AgentRecordUpdateOne) ClearActiveSkills() *AgentRecordUpdateOne {
	_u.mutation.ClearActiveSkills()
	return _u
}

// SetTodos sets the "todos" field.
func (_u *AgentRecordUpdateOne) SetTodos(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.SetTodos(v)
	return _u
}

// AppendTodos appends value to the "todos" field.
func (_u *AgentRecordUpdateOne) AppendTodos(v []map[string]interface{}) *AgentRecordUpdateOne {
	_u.mutation.AppendTodos(v)
	return _u
}

// ClearTodos clears the value of the "todos" field.
func (_u *AgentRecordUpdateOne) ClearTodos() *AgentRecordUpdateOne {
	_u.mutation.ClearTodos()
	return _u
}

// SetChildren sets the "children" field.
func (_u *AgentRecordUpdateOne) SetChildren(v []string) *AgentRecordUpdateOne {
	_u.mutation.SetChildren(v)
	return _u
}

// AppendChildren appends value to the "children" field.
func (_u *AgentRecordUpdateOne) AppendChildren(v []string) *AgentRecordUpdateOne {
	_u.mutation.AppendChildren(v)
	return _u
}

// ClearChildren clears the value of the "children" field.
func (_u *AgentRecordUpdateOne) ClearChildren() *AgentRecordUpdateOne {
	_u.mutation.ClearChildren()
	return _u
}

// SetDismissing sets the "dismissing" field.
func (_u *AgentRecordUpdateOne) SetDismissing(v bool) *AgentRecordUpdateOne {
	_u.mutation.SetDismissing(v)
	return _u
}

// SetNillableDismissing sets the "dismissing" field if the given value is not nil.
func (_u *AgentRecordUpdateOne) SetNillableDismissing(v *bool) *AgentRecordUpdateOne {
	if v != nil {
		_u.SetDismissing(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AgentRecordUpdateOne) SetUpdatedAt(v time.Time) *AgentRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the AgentRecordMutation object of the builder.
func (_u *AgentRecordUpdateOne) Mutation() *AgentRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the AgentRecordUpdate builder.
func (_u *AgentRecordUpdateOne) Where(ps ...predicate.AgentRecord) *AgentRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AgentRecordUpdateOne) Select(field string, fields ...string) *AgentRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AgentRecord entity.
func (_u *AgentRecordUpdateOne) Save(ctx context.Context) (*AgentRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) SaveX(ctx context.Context) *AgentRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AgentRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AgentRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AgentRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := agentrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AgentRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := agentrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AgentRecord.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "AgentRecord.task"`)
	}
	return nil
}

func (_u *AgentRecordUpdateOne) sqlSave(ctx context.Context) (_node *AgentRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(agentrecord.Table, agentrecord.Columns, sqlgraph.NewFieldSpec(agentrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AgentRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, agentrecord.FieldID)
		for _, f := range fields {
			if !agentrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != agentrecord.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(agentrecord.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.ProfileName(); ok {
		_spec.SetField(agentrecord.FieldProfileName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelPool(); ok {
		_spec.SetField(agentrecord.FieldModelPool, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModelPool(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldModelPool, value)
		})
	}
	if value, ok := _u.mutation.CapabilityGroups(); ok {
		_spec.SetField(agentrecord.FieldCapabilityGroups, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCapabilityGroups(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldCapabilityGroups, value)
		})
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(agentrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.PromptFields(); ok {
		_spec.SetField(agentrecord.FieldPromptFields, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelHistories(); ok {
		_spec.SetField(agentrecord.FieldModelHistories, field.TypeJSON, value)
	}
	if _u.mutation.ModelHistoriesCleared() {
		_spec.ClearField(agentrecord.FieldModelHistories, field.TypeJSON)
	}
	if value, ok := _u.mutation.BudgetData(); ok {
		_spec.SetField(agentrecord.FieldBudgetData, field.TypeJSON, value)
	}
	if _u.mutation.BudgetDataCleared() {
		_spec.ClearField(agentrecord.FieldBudgetData, field.TypeJSON)
	}
	if value, ok := _u.mutation.ActiveSkills(); ok {
		_spec.SetField(agentrecord.FieldActiveSkills, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedActiveSkills(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldActiveSkills, value)
		})
	}
	if _u.mutation.ActiveSkillsCleared() {
		_spec.ClearField(agentrecord.FieldActiveSkills, field.TypeJSON)
	}
	if value, ok := _u.mutation.Todos(); ok {
		_spec.SetField(agentrecord.FieldTodos, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTodos(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldTodos, value)
		})
	}
	if _u.mutation.TodosCleared() {
		_spec.ClearField(agentrecord.FieldTodos, field.TypeJSON)
	}
	if value, ok := _u.mutation.Children(); ok {
		_spec.SetField(agentrecord.FieldChildren, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChildren(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, agentrecord.FieldChildren, value)
		})
	}
	if _u.mutation.ChildrenCleared() {
		_spec.ClearField(agentrecord.FieldChildren, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dismissing(); ok {
		_spec.SetField(agentrecord.FieldDismissing, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(agentrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &AgentRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{agentrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
