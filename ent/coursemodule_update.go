// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/studytrail/studytrail/ent/coursemodule"
	"github.com/studytrail/studytrail/ent/predicate"
)

// CourseModuleUpdate is the builder for updating CourseModule entities.
type CourseModuleUpdate struct {
	config
	hooks    []Hook
	mutation *CourseModuleMutation
}

// Where appends a list predicates to the CourseModuleUpdate builder.
func (_u *CourseModuleUpdate) Where(ps ...predicate.CourseModule) *CourseModuleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *CourseModuleUpdate) SetTitle(v string) *CourseModuleUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseModuleUpdate) SetNillableTitle(v *string) *CourseModuleUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMaterial sets the "material" field.
func (_u *CourseModuleUpdate) SetMaterial(v string) *CourseModuleUpdate {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *CourseModuleUpdate) SetNillableMaterial(v *string) *CourseModuleUpdate {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *CourseModuleUpdate) SetObjectives(v []string) *CourseModuleUpdate {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *CourseModuleUpdate) AppendObjectives(v []string) *CourseModuleUpdate {
	_u.mutation.AppendObjectives(v)
	return _u
}

// ClearObjectives clears the value of the "objectives" field.
func (_u *CourseModuleUpdate) ClearObjectives() *CourseModuleUpdate {
	_u.mutation.ClearObjectives()
	return _u
}

// Mutation returns the CourseModuleMutation object of the builder.
func (_u *CourseModuleUpdate) Mutation() *CourseModuleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CourseModuleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseModuleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CourseModuleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseModuleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseModuleUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := coursemodule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseModule.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseModuleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursemodule.Table, coursemodule.Columns, sqlgraph.NewFieldSpec(coursemodule.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(coursemodule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(coursemodule.FieldMaterial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(coursemodule.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coursemodule.FieldObjectives, value)
		})
	}
	if _u.mutation.ObjectivesCleared() {
		_spec.ClearField(coursemodule.FieldObjectives, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursemodule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CourseModuleUpdateOne is the builder for updating a single CourseModule entity.
type CourseModuleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CourseModuleMutation
}

// SetTitle sets the "title" field.
func (_u *CourseModuleUpdateOne) SetTitle(v string) *CourseModuleUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *CourseModuleUpdateOne) SetNillableTitle(v *string) *CourseModuleUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMaterial sets the "material" field.
func (_u *CourseModuleUpdateOne) SetMaterial(v string) *CourseModuleUpdateOne {
	_u.mutation.SetMaterial(v)
	return _u
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_u *CourseModuleUpdateOne) SetNillableMaterial(v *string) *CourseModuleUpdateOne {
	if v != nil {
		_u.SetMaterial(*v)
	}
	return _u
}

// SetObjectives sets the "objectives" field.
func (_u *CourseModuleUpdateOne) SetObjectives(v []string) *CourseModuleUpdateOne {
	_u.mutation.SetObjectives(v)
	return _u
}

// AppendObjectives appends value to the "objectives" field.
func (_u *CourseModuleUpdateOne) AppendObjectives(v []string) *CourseModuleUpdateOne {
	_u.mutation.AppendObjectives(v)
	return _u
}

// ClearObjectives clears the value of the "objectives" field.
func (_u *CourseModuleUpdateOne) ClearObjectives() *CourseModuleUpdateOne {
	_u.mutation.ClearObjectives()
	return _u
}

// Mutation returns the CourseModuleMutation object of the builder.
func (_u *CourseModuleUpdateOne) Mutation() *CourseModuleMutation {
	return _u.mutation
}

// Where appends a list predicates to the CourseModuleUpdate builder.
func (_u *CourseModuleUpdateOne) Where(ps ...predicate.CourseModule) *CourseModuleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CourseModuleUpdateOne) Select(field string, fields ...string) *CourseModuleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CourseModule entity.
func (_u *CourseModuleUpdateOne) Save(ctx context.Context) (*CourseModule, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CourseModuleUpdateOne) SaveX(ctx context.Context) *CourseModule {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CourseModuleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CourseModuleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CourseModuleUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := coursemodule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseModule.title": %w`, err)}
		}
	}
	return nil
}

func (_u *CourseModuleUpdateOne) sqlSave(ctx context.Context) (_node *CourseModule, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(coursemodule.Table, coursemodule.Columns, sqlgraph.NewFieldSpec(coursemodule.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CourseModule.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, coursemodule.FieldID)
		for _, f := range fields {
			if !coursemodule.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != coursemodule.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(coursemodule.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Material(); ok {
		_spec.SetField(coursemodule.FieldMaterial, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objectives(); ok {
		_spec.SetField(coursemodule.FieldObjectives, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedObjectives(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, coursemodule.FieldObjectives, value)
		})
	}
	if _u.mutation.ObjectivesCleared() {
		_spec.ClearField(coursemodule.FieldObjectives, field.TypeJSON)
	}
	_node = &CourseModule{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{coursemodule.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
