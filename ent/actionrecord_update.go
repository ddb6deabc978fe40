// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-run/conclave/ent/actionrecord"
	"github.com/conclave-run/conclave/ent/predicate"
)

// ActionRecordUpdate is the builder for updating ActionRecord entities.
type ActionRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ActionRecordMutation
}

// Where appends a list predicates to the ActionRecordUpdate builder.
func (_u *ActionRecordUpdate) Where(ps ...predicate.ActionRecord) *ActionRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetParams sets the "params" field.
func (_u *ActionRecordUpdate) SetParams(v map[string]interface{}) *ActionRecordUpdate {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *ActionRecordUpdate) ClearParams() *ActionRecordUpdate {
	_u.mutation.ClearParams()
	return _u
}

// SetResult sets the "result" field.
func (_u *ActionRecordUpdate) SetResult(v map[string]interface{}) *ActionRecordUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ActionRecordUpdate) ClearResult() *ActionRecordUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionRecordUpdate) SetStatus(v actionrecord.Status) *ActionRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionRecordUpdate) SetNillableStatus(v *actionrecord.Status) *ActionRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActionRecordUpdate) SetCompletedAt(v time.Time) *ActionRecordUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActionRecordUpdate) SetNillableCompletedAt(v *time.Time) *ActionRecordUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActionRecordUpdate) ClearCompletedAt() *ActionRecordUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ActionRecordUpdate) SetErrorMessage(v string) *ActionRecordUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ActionRecordUpdate) SetNillableErrorMessage(v *string) *ActionRecordUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ActionRecordUpdate) ClearErrorMessage() *ActionRecordUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ActionRecordMutation object of the builder.
func (_u *ActionRecordUpdate) Mutation() *ActionRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ActionRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ActionRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := actionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionRecord.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActionRecord.task"`)
	}
	return nil
}

func (_u *ActionRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionrecord.Table, actionrecord.Columns, sqlgraph.NewFieldSpec(actionrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(actionrecord.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(actionrecord.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(actionrecord.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(actionrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionrecord.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParentActionIDCleared() {
		_spec.ClearField(actionrecord.FieldParentActionID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(actionrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(actionrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(actionrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(actionrecord.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ActionRecordUpdateOne is the builder for updating a single ActionRecord entity.
type ActionRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ActionRecordMutation
}

// SetParams sets the "params" field.
func (_u *ActionRecordUpdateOne) SetParams(v map[string]interface{}) *ActionRecordUpdateOne {
	_u.mutation.SetParams(v)
	return _u
}

// ClearParams clears the value of the "params" field.
func (_u *ActionRecordUpdateOne) ClearParams() *ActionRecordUpdateOne {
	_u.mutation.ClearParams()
	return _u
}

// SetResult sets the "result" field.
func (_u *ActionRecordUpdateOne) SetResult(v map[string]interface{}) *ActionRecordUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *ActionRecordUpdateOne) ClearResult() *ActionRecordUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ActionRecordUpdateOne) SetStatus(v actionrecord.Status) *ActionRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ActionRecordUpdateOne) SetNillableStatus(v *actionrecord.Status) *ActionRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ActionRecordUpdateOne) SetCompletedAt(v time.Time) *ActionRecordUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ActionRecordUpdateOne) SetNillableCompletedAt(v *time.Time) *ActionRecordUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ActionRecordUpdateOne) ClearCompletedAt() *ActionRecordUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ActionRecordUpdateOne) SetErrorMessage(v string) *ActionRecordUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ActionRecordUpdateOne) SetNillableErrorMessage(v *string) *ActionRecordUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ActionRecordUpdateOne) ClearErrorMessage() *ActionRecordUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// Mutation returns the ActionRecordMutation object of the builder.
func (_u *ActionRecordUpdateOne) Mutation() *ActionRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ActionRecordUpdate builder.
func (_u *ActionRecordUpdateOne) Where(ps ...predicate.ActionRecord) *ActionRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ActionRecordUpdateOne) Select(field string, fields ...string) *ActionRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ActionRecord entity.
func (_u *ActionRecordUpdateOne) Save(ctx context.Context) (*ActionRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ActionRecordUpdateOne) SaveX(ctx context.Context) *ActionRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ActionRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ActionRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ActionRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := actionrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ActionRecord.status": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ActionRecord.task"`)
	}
	return nil
}

func (_u *ActionRecordUpdateOne) sqlSave(ctx context.Context) (_node *ActionRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(actionrecord.Table, actionrecord.Columns, sqlgraph.NewFieldSpec(actionrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ActionRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, actionrecord.FieldID)
		for _, f := range fields {
			if !actionrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != actionrecord.FieldID {
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
	if value, ok := _u.mutation.Params(); ok {
		_spec.SetField(actionrecord.FieldParams, field.TypeJSON, value)
	}
	if _u.mutation.ParamsCleared() {
		_spec.ClearField(actionrecord.FieldParams, field.TypeJSON)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(actionrecord.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(actionrecord.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(actionrecord.FieldStatus, field.TypeEnum, value)
	}
	if _u.mutation.ParentActionIDCleared() {
		_spec.ClearField(actionrecord.FieldParentActionID, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(actionrecord.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(actionrecord.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(actionrecord.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(actionrecord.FieldErrorMessage, field.TypeString)
	}
	_node = &ActionRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{actionrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
