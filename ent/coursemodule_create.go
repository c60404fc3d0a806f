// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studytrail/studytrail/ent/coursemodule"
)

// CourseModuleCreate is the builder for creating a CourseModule entity.
type CourseModuleCreate struct {
	config
	mutation *CourseModuleMutation
	hooks    []Hook
}

// SetModuleID sets the "module_id" field.
func (_c *CourseModuleCreate) SetModuleID(v string) *CourseModuleCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *CourseModuleCreate) SetTitle(v string) *CourseModuleCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMaterial sets the "material" field.
func (_c *CourseModuleCreate) SetMaterial(v string) *CourseModuleCreate {
	_c.mutation.SetMaterial(v)
	return _c
}

// SetNillableMaterial sets the "material" field if the given value is not nil.
func (_c *CourseModuleCreate) SetNillableMaterial(v *string) *CourseModuleCreate {
	if v != nil {
		_c.SetMaterial(*v)
	}
	return _c
}

// SetObjectives sets the "objectives" field.
func (_c *CourseModuleCreate) SetObjectives(v []string) *CourseModuleCreate {
	_c.mutation.SetObjectives(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CourseModuleCreate) SetCreatedAt(v time.Time) *CourseModuleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CourseModuleCreate) SetNillableCreatedAt(v *time.Time) *CourseModuleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the CourseModuleMutation object of the builder.
func (_c *CourseModuleCreate) Mutation() *CourseModuleMutation {
	return _c.mutation
}

// Save creates the CourseModule in the database.
func (_c *CourseModuleCreate) Save(ctx context.Context) (*CourseModule, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CourseModuleCreate) SaveX(ctx context.Context) *CourseModule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseModuleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseModuleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CourseModuleCreate) defaults() {
	if _, ok := _c.mutation.Material(); !ok {
		v := coursemodule.DefaultMaterial
		_c.mutation.SetMaterial(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := coursemodule.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CourseModuleCreate) check() error {
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "CourseModule.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := coursemodule.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "CourseModule.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "CourseModule.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := coursemodule.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "CourseModule.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Material(); !ok {
		return &ValidationError{Name: "material", err: errors.New(`ent: missing required field "CourseModule.material"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CourseModule.created_at"`)}
	}
	return nil
}

func (_c *CourseModuleCreate) sqlSave(ctx context.Context) (*CourseModule, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CourseModuleCreate) createSpec() (*CourseModule, *sqlgraph.CreateSpec) {
	var (
		_node = &CourseModule{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(coursemodule.Table, sqlgraph.NewFieldSpec(coursemodule.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(coursemodule.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(coursemodule.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Material(); ok {
		_spec.SetField(coursemodule.FieldMaterial, field.TypeString, value)
		_node.Material = value
	}
	if value, ok := _c.mutation.Objectives(); ok {
		_spec.SetField(coursemodule.FieldObjectives, field.TypeJSON, value)
		_node.Objectives = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(coursemodule.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// CourseModuleCreateBulk is the builder for creating many CourseModule entities in bulk.
type CourseModuleCreateBulk struct {
	config
	err      error
	builders []*CourseModuleCreate
}

// Save creates the CourseModule entities in the database.
func (_c *CourseModuleCreateBulk) Save(ctx context.Context) ([]*CourseModule, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CourseModule, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CourseModuleMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *CourseModuleCreateBulk) SaveX(ctx context.Context) []*CourseModule {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CourseModuleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CourseModuleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
