// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/conclave-run/conclave/ent/costrecord"
	"github.com/conclave-run/conclave/ent/predicate"
)

// CostRecordUpdate is the builder for updating CostRecord entities.
type CostRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CostRecordMutation
}

// Where appends a list predicates to the CostRecordUpdate builder.
func (_u *CostRecordUpdate) Where(ps ...predicate.CostRecord) *CostRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetKind sets the "kind" field.
func (_u *CostRecordUpdate) SetKind(v costrecord.Kind) *CostRecordUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableKind(v *costrecord.Kind) *CostRecordUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CostRecordUpdate) SetAmount(v string) *CostRecordUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableAmount(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CostRecordUpdate) SetDescription(v string) *CostRecordUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CostRecordUpdate) SetNillableDescription(v *string) *CostRecordUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CostRecordUpdate) ClearDescription() *CostRecordUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the CostRecordMutation object of the builder.
func (_u *CostRecordUpdate) Mutation() *CostRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CostRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CostRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostRecordUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := costrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CostRecord.kind": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostRecord.task"`)
	}
	return nil
}

func (_u *CostRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costrecord.Table, costrecord.Columns, sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(costrecord.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(costrecord.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(costrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(costrecord.FieldDescription, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CostRecordUpdateOne is the builder for updating a single CostRecord entity.
type CostRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CostRecordMutation
}

// SetKind sets the "kind" field.
func (_u *CostRecordUpdateOne) SetKind(v costrecord.Kind) *CostRecordUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableKind(v *costrecord.Kind) *CostRecordUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *CostRecordUpdateOne) SetAmount(v string) *CostRecordUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableAmount(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *CostRecordUpdateOne) SetDescription(v string) *CostRecordUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *CostRecordUpdateOne) SetNillableDescription(v *string) *CostRecordUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *CostRecordUpdateOne) ClearDescription() *CostRecordUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// Mutation returns the CostRecordMutation object of the builder.
func (_u *CostRecordUpdateOne) Mutation() *CostRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CostRecordUpdate builder.
func (_u *CostRecordUpdateOne) Where(ps ...predicate.CostRecord) *CostRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CostRecordUpdateOne) Select(field string, fields ...string) *CostRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CostRecord entity.
func (_u *CostRecordUpdateOne) Save(ctx context.Context) (*CostRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CostRecordUpdateOne) SaveX(ctx context.Context) *CostRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CostRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CostRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CostRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := costrecord.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "CostRecord.kind": %w`, err)}
		}
	}
	if _u.mutation.TaskCleared() && len(_u.mutation.TaskIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "CostRecord.task"`)
	}
	return nil
}

func (_u *CostRecordUpdateOne) sqlSave(ctx context.Context) (_node *CostRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(costrecord.Table, costrecord.Columns, sqlgraph.NewFieldSpec(costrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CostRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, costrecord.FieldID)
		for _, f := range fields {
			if !costrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != costrecord.FieldID {
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
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(costrecord.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(costrecord.FieldAmount, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(costrecord.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(costrecord.FieldDescription, field.TypeString)
	}
	_node = &CostRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{costrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
