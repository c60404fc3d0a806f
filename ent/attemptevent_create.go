// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studytrail/studytrail/ent/attemptevent"
)

// AttemptEventCreate is the builder for creating a AttemptEvent entity.
type AttemptEventCreate struct {
	config
	mutation *AttemptEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AttemptEventCreate) SetSequence(v int64) *AttemptEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AttemptEventCreate) SetTimestamp(v time.Time) *AttemptEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableTimestamp(v *time.Time) *AttemptEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetStudentID sets the "student_id" field.
func (_c *AttemptEventCreate) SetStudentID(v string) *AttemptEventCreate {
	_c.mutation.SetStudentID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *AttemptEventCreate) SetModuleID(v string) *AttemptEventCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetObjective sets the "objective" field.
func (_c *AttemptEventCreate) SetObjective(v int) *AttemptEventCreate {
	_c.mutation.SetObjective(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AttemptEventCreate) SetSessionID(v string) *AttemptEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableSessionID(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetQuestionFormat sets the "question_format" field.
func (_c *AttemptEventCreate) SetQuestionFormat(v string) *AttemptEventCreate {
	_c.mutation.SetQuestionFormat(v)
	return _c
}

// SetQuestionText sets the "question_text" field.
func (_c *AttemptEventCreate) SetQuestionText(v string) *AttemptEventCreate {
	_c.mutation.SetQuestionText(v)
	return _c
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableQuestionText(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetQuestionText(*v)
	}
	return _c
}

// SetGivenAnswer sets the "given_answer" field.
func (_c *AttemptEventCreate) SetGivenAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetGivenAnswer(v)
	return _c
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableGivenAnswer(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetGivenAnswer(*v)
	}
	return _c
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_c *AttemptEventCreate) SetCorrectAnswer(v string) *AttemptEventCreate {
	_c.mutation.SetCorrectAnswer(v)
	return _c
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableCorrectAnswer(v *string) *AttemptEventCreate {
	if v != nil {
		_c.SetCorrectAnswer(*v)
	}
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *AttemptEventCreate) SetCorrect(v bool) *AttemptEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetReviewed sets the "reviewed" field.
func (_c *AttemptEventCreate) SetReviewed(v bool) *AttemptEventCreate {
	_c.mutation.SetReviewed(v)
	return _c
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableReviewed(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetReviewed(*v)
	}
	return _c
}

// SetReasoningScore sets the "reasoning_score" field.
func (_c *AttemptEventCreate) SetReasoningScore(v int) *AttemptEventCreate {
	_c.mutation.SetReasoningScore(v)
	return _c
}

// SetNillableReasoningScore sets the "reasoning_score" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableReasoningScore(v *int) *AttemptEventCreate {
	if v != nil {
		_c.SetReasoningScore(*v)
	}
	return _c
}

// SetMajorMistake sets the "major_mistake" field.
func (_c *AttemptEventCreate) SetMajorMistake(v bool) *AttemptEventCreate {
	_c.mutation.SetMajorMistake(v)
	return _c
}

// SetNillableMajorMistake sets the "major_mistake" field if the given value is not nil.
func (_c *AttemptEventCreate) SetNillableMajorMistake(v *bool) *AttemptEventCreate {
	if v != nil {
		_c.SetMajorMistake(*v)
	}
	return _c
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_c *AttemptEventCreate) Mutation() *AttemptEventMutation {
	return _c.mutation
}

// Save creates the AttemptEvent in the database.
func (_c *AttemptEventCreate) Save(ctx context.Context) (*AttemptEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttemptEventCreate) SaveX(ctx context.Context) *AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttemptEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := attemptevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		v := attemptevent.DefaultQuestionText
		_c.mutation.SetQuestionText(v)
	}
	if _, ok := _c.mutation.GivenAnswer(); !ok {
		v := attemptevent.DefaultGivenAnswer
		_c.mutation.SetGivenAnswer(v)
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		v := attemptevent.DefaultCorrectAnswer
		_c.mutation.SetCorrectAnswer(v)
	}
	if _, ok := _c.mutation.Reviewed(); !ok {
		v := attemptevent.DefaultReviewed
		_c.mutation.SetReviewed(v)
	}
	if _, ok := _c.mutation.ReasoningScore(); !ok {
		v := attemptevent.DefaultReasoningScore
		_c.mutation.SetReasoningScore(v)
	}
	if _, ok := _c.mutation.MajorMistake(); !ok {
		v := attemptevent.DefaultMajorMistake
		_c.mutation.SetMajorMistake(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttemptEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AttemptEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AttemptEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.StudentID(); !ok {
		return &ValidationError{Name: "student_id", err: errors.New(`ent: missing required field "AttemptEvent.student_id"`)}
	}
	if v, ok := _c.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "AttemptEvent.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := attemptevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Objective(); !ok {
		return &ValidationError{Name: "objective", err: errors.New(`ent: missing required field "AttemptEvent.objective"`)}
	}
	if v, ok := _c.mutation.Objective(); ok {
		if err := attemptevent.ObjectiveValidator(v); err != nil {
			return &ValidationError{Name: "objective", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.objective": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionFormat(); !ok {
		return &ValidationError{Name: "question_format", err: errors.New(`ent: missing required field "AttemptEvent.question_format"`)}
	}
	if v, ok := _c.mutation.QuestionFormat(); ok {
		if err := attemptevent.QuestionFormatValidator(v); err != nil {
			return &ValidationError{Name: "question_format", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_format": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionText(); !ok {
		return &ValidationError{Name: "question_text", err: errors.New(`ent: missing required field "AttemptEvent.question_text"`)}
	}
	if _, ok := _c.mutation.GivenAnswer(); !ok {
		return &ValidationError{Name: "given_answer", err: errors.New(`ent: missing required field "AttemptEvent.given_answer"`)}
	}
	if _, ok := _c.mutation.CorrectAnswer(); !ok {
		return &ValidationError{Name: "correct_answer", err: errors.New(`ent: missing required field "AttemptEvent.correct_answer"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "AttemptEvent.correct"`)}
	}
	if _, ok := _c.mutation.Reviewed(); !ok {
		return &ValidationError{Name: "reviewed", err: errors.New(`ent: missing required field "AttemptEvent.reviewed"`)}
	}
	if _, ok := _c.mutation.ReasoningScore(); !ok {
		return &ValidationError{Name: "reasoning_score", err: errors.New(`ent: missing required field "AttemptEvent.reasoning_score"`)}
	}
	if _, ok := _c.mutation.MajorMistake(); !ok {
		return &ValidationError{Name: "major_mistake", err: errors.New(`ent: missing required field "AttemptEvent.major_mistake"`)}
	}
	return nil
}

func (_c *AttemptEventCreate) sqlSave(ctx context.Context) (*AttemptEvent, error) {
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

func (_c *AttemptEventCreate) createSpec() (*AttemptEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AttemptEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attemptevent.Table, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(attemptevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(attemptevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
		_node.StudentID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(attemptevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.Objective(); ok {
		_spec.SetField(attemptevent.FieldObjective, field.TypeInt, value)
		_node.Objective = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.QuestionFormat(); ok {
		_spec.SetField(attemptevent.FieldQuestionFormat, field.TypeString, value)
		_node.QuestionFormat = value
	}
	if value, ok := _c.mutation.QuestionText(); ok {
		_spec.SetField(attemptevent.FieldQuestionText, field.TypeString, value)
		_node.QuestionText = value
	}
	if value, ok := _c.mutation.GivenAnswer(); ok {
		_spec.SetField(attemptevent.FieldGivenAnswer, field.TypeString, value)
		_node.GivenAnswer = value
	}
	if value, ok := _c.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
		_node.CorrectAnswer = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Reviewed(); ok {
		_spec.SetField(attemptevent.FieldReviewed, field.TypeBool, value)
		_node.Reviewed = value
	}
	if value, ok := _c.mutation.ReasoningScore(); ok {
		_spec.SetField(attemptevent.FieldReasoningScore, field.TypeInt, value)
		_node.ReasoningScore = value
	}
	if value, ok := _c.mutation.MajorMistake(); ok {
		_spec.SetField(attemptevent.FieldMajorMistake, field.TypeBool, value)
		_node.MajorMistake = value
	}
	return _node, _spec
}

// AttemptEventCreateBulk is the builder for creating many AttemptEvent entities in bulk.
type AttemptEventCreateBulk struct {
	config
	err      error
	builders []*AttemptEventCreate
}

// Save creates the AttemptEvent entities in the database.
func (_c *AttemptEventCreateBulk) Save(ctx context.Context) ([]*AttemptEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AttemptEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttemptEventMutation)
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
func (_c *AttemptEventCreateBulk) SaveX(ctx context.Context) []*AttemptEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttemptEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttemptEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
