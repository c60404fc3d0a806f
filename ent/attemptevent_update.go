// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/studytrail/studytrail/ent/attemptevent"
	"github.com/studytrail/studytrail/ent/predicate"
)

// AttemptEventUpdate is the builder for updating AttemptEvent entities.
type AttemptEventUpdate struct {
	config
	hooks    []Hook
	mutation *AttemptEventMutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdate) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptEventUpdate) SetStudentID(v string) *AttemptEventUpdate {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableStudentID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *AttemptEventUpdate) SetModuleID(v string) *AttemptEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableModuleID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetObjective sets the "objective" field.
func (_u *AttemptEventUpdate) SetObjective(v int) *AttemptEventUpdate {
	_u.mutation.ResetObjective()
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableObjective(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// AddObjective adds value to the "objective" field.
func (_u *AttemptEventUpdate) AddObjective(v int) *AttemptEventUpdate {
	_u.mutation.AddObjective(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdate) SetSessionID(v string) *AttemptEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableSessionID(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AttemptEventUpdate) ClearSessionID() *AttemptEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetQuestionFormat sets the "question_format" field.
func (_u *AttemptEventUpdate) SetQuestionFormat(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionFormat(v)
	return _u
}

// SetNillableQuestionFormat sets the "question_format" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionFormat(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionFormat(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AttemptEventUpdate) SetQuestionText(v string) *AttemptEventUpdate {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableQuestionText(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AttemptEventUpdate) SetGivenAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableGivenAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdate) SetCorrectAnswer(v string) *AttemptEventUpdate {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrectAnswer(v *string) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdate) SetCorrect(v bool) *AttemptEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableCorrect(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetReviewed sets the "reviewed" field.
func (_u *AttemptEventUpdate) SetReviewed(v bool) *AttemptEventUpdate {
	_u.mutation.SetReviewed(v)
	return _u
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableReviewed(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetReviewed(*v)
	}
	return _u
}

// SetReasoningScore sets the "reasoning_score" field.
func (_u *AttemptEventUpdate) SetReasoningScore(v int) *AttemptEventUpdate {
	_u.mutation.ResetReasoningScore()
	_u.mutation.SetReasoningScore(v)
	return _u
}

// SetNillableReasoningScore sets the "reasoning_score" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableReasoningScore(v *int) *AttemptEventUpdate {
	if v != nil {
		_u.SetReasoningScore(*v)
	}
	return _u
}

// AddReasoningScore adds value to the "reasoning_score" field.
func (_u *AttemptEventUpdate) AddReasoningScore(v int) *AttemptEventUpdate {
	_u.mutation.AddReasoningScore(v)
	return _u
}

// SetMajorMistake sets the "major_mistake" field.
func (_u *AttemptEventUpdate) SetMajorMistake(v bool) *AttemptEventUpdate {
	_u.mutation.SetMajorMistake(v)
	return _u
}

// SetNillableMajorMistake sets the "major_mistake" field if the given value is not nil.
func (_u *AttemptEventUpdate) SetNillableMajorMistake(v *bool) *AttemptEventUpdate {
	if v != nil {
		_u.SetMajorMistake(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdate) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttemptEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttemptEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdate) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := attemptevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Objective(); ok {
		if err := attemptevent.ObjectiveValidator(v); err != nil {
			return &ValidationError{Name: "objective", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.objective": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionFormat(); ok {
		if err := attemptevent.QuestionFormatValidator(v); err != nil {
			return &ValidationError{Name: "question_format", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_format": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(attemptevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(attemptevent.FieldObjective, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjective(); ok {
		_spec.AddField(attemptevent.FieldObjective, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionFormat(); ok {
		_spec.SetField(attemptevent.FieldQuestionFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(attemptevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(attemptevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reviewed(); ok {
		_spec.SetField(attemptevent.FieldReviewed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReasoningScore(); ok {
		_spec.SetField(attemptevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningScore(); ok {
		_spec.AddField(attemptevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MajorMistake(); ok {
		_spec.SetField(attemptevent.FieldMajorMistake, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttemptEventUpdateOne is the builder for updating a single AttemptEvent entity.
type AttemptEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttemptEventMutation
}

// SetStudentID sets the "student_id" field.
func (_u *AttemptEventUpdateOne) SetStudentID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetStudentID(v)
	return _u
}

// SetNillableStudentID sets the "student_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableStudentID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetStudentID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *AttemptEventUpdateOne) SetModuleID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableModuleID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetObjective sets the "objective" field.
func (_u *AttemptEventUpdateOne) SetObjective(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetObjective()
	_u.mutation.SetObjective(v)
	return _u
}

// SetNillableObjective sets the "objective" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableObjective(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetObjective(*v)
	}
	return _u
}

// AddObjective adds value to the "objective" field.
func (_u *AttemptEventUpdateOne) AddObjective(v int) *AttemptEventUpdateOne {
	_u.mutation.AddObjective(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AttemptEventUpdateOne) SetSessionID(v string) *AttemptEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableSessionID(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *AttemptEventUpdateOne) ClearSessionID() *AttemptEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetQuestionFormat sets the "question_format" field.
func (_u *AttemptEventUpdateOne) SetQuestionFormat(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionFormat(v)
	return _u
}

// SetNillableQuestionFormat sets the "question_format" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionFormat(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionFormat(*v)
	}
	return _u
}

// SetQuestionText sets the "question_text" field.
func (_u *AttemptEventUpdateOne) SetQuestionText(v string) *AttemptEventUpdateOne {
	_u.mutation.SetQuestionText(v)
	return _u
}

// SetNillableQuestionText sets the "question_text" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableQuestionText(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetQuestionText(*v)
	}
	return _u
}

// SetGivenAnswer sets the "given_answer" field.
func (_u *AttemptEventUpdateOne) SetGivenAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetGivenAnswer(v)
	return _u
}

// SetNillableGivenAnswer sets the "given_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableGivenAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetGivenAnswer(*v)
	}
	return _u
}

// SetCorrectAnswer sets the "correct_answer" field.
func (_u *AttemptEventUpdateOne) SetCorrectAnswer(v string) *AttemptEventUpdateOne {
	_u.mutation.SetCorrectAnswer(v)
	return _u
}

// SetNillableCorrectAnswer sets the "correct_answer" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrectAnswer(v *string) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrectAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *AttemptEventUpdateOne) SetCorrect(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableCorrect(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetReviewed sets the "reviewed" field.
func (_u *AttemptEventUpdateOne) SetReviewed(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetReviewed(v)
	return _u
}

// SetNillableReviewed sets the "reviewed" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableReviewed(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetReviewed(*v)
	}
	return _u
}

// SetReasoningScore sets the "reasoning_score" field.
func (_u *AttemptEventUpdateOne) SetReasoningScore(v int) *AttemptEventUpdateOne {
	_u.mutation.ResetReasoningScore()
	_u.mutation.SetReasoningScore(v)
	return _u
}

// SetNillableReasoningScore sets the "reasoning_score" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableReasoningScore(v *int) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetReasoningScore(*v)
	}
	return _u
}

// AddReasoningScore adds value to the "reasoning_score" field.
func (_u *AttemptEventUpdateOne) AddReasoningScore(v int) *AttemptEventUpdateOne {
	_u.mutation.AddReasoningScore(v)
	return _u
}

// SetMajorMistake sets the "major_mistake" field.
func (_u *AttemptEventUpdateOne) SetMajorMistake(v bool) *AttemptEventUpdateOne {
	_u.mutation.SetMajorMistake(v)
	return _u
}

// SetNillableMajorMistake sets the "major_mistake" field if the given value is not nil.
func (_u *AttemptEventUpdateOne) SetNillableMajorMistake(v *bool) *AttemptEventUpdateOne {
	if v != nil {
		_u.SetMajorMistake(*v)
	}
	return _u
}

// Mutation returns the AttemptEventMutation object of the builder.
func (_u *AttemptEventUpdateOne) Mutation() *AttemptEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AttemptEventUpdate builder.
func (_u *AttemptEventUpdateOne) Where(ps ...predicate.AttemptEvent) *AttemptEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttemptEventUpdateOne) Select(field string, fields ...string) *AttemptEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AttemptEvent entity.
func (_u *AttemptEventUpdateOne) Save(ctx context.Context) (*AttemptEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) SaveX(ctx context.Context) *AttemptEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttemptEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttemptEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttemptEventUpdateOne) check() error {
	if v, ok := _u.mutation.StudentID(); ok {
		if err := attemptevent.StudentIDValidator(v); err != nil {
			return &ValidationError{Name: "student_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.student_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := attemptevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Objective(); ok {
		if err := attemptevent.ObjectiveValidator(v); err != nil {
			return &ValidationError{Name: "objective", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.objective": %w`, err)}
		}
	}
	if v, ok := _u.mutation.QuestionFormat(); ok {
		if err := attemptevent.QuestionFormatValidator(v); err != nil {
			return &ValidationError{Name: "question_format", err: fmt.Errorf(`ent: validator failed for field "AttemptEvent.question_format": %w`, err)}
		}
	}
	return nil
}

func (_u *AttemptEventUpdateOne) sqlSave(ctx context.Context) (_node *AttemptEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attemptevent.Table, attemptevent.Columns, sqlgraph.NewFieldSpec(attemptevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AttemptEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attemptevent.FieldID)
		for _, f := range fields {
			if !attemptevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attemptevent.FieldID {
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
	if value, ok := _u.mutation.StudentID(); ok {
		_spec.SetField(attemptevent.FieldStudentID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(attemptevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Objective(); ok {
		_spec.SetField(attemptevent.FieldObjective, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedObjective(); ok {
		_spec.AddField(attemptevent.FieldObjective, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(attemptevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(attemptevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.QuestionFormat(); ok {
		_spec.SetField(attemptevent.FieldQuestionFormat, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionText(); ok {
		_spec.SetField(attemptevent.FieldQuestionText, field.TypeString, value)
	}
	if value, ok := _u.mutation.GivenAnswer(); ok {
		_spec.SetField(attemptevent.FieldGivenAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.CorrectAnswer(); ok {
		_spec.SetField(attemptevent.FieldCorrectAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(attemptevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Reviewed(); ok {
		_spec.SetField(attemptevent.FieldReviewed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReasoningScore(); ok {
		_spec.SetField(attemptevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReasoningScore(); ok {
		_spec.AddField(attemptevent.FieldReasoningScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MajorMistake(); ok {
		_spec.SetField(attemptevent.FieldMajorMistake, field.TypeBool, value)
	}
	_node = &AttemptEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attemptevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
