// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mathevilla/server/ent/predicate"
	"github.com/mathevilla/server/ent/submission"
)

// SubmissionUpdate is the builder for updating Submission entities.
type SubmissionUpdate struct {
	config
	hooks    []Hook
	mutation *SubmissionMutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdate) Where(ps ...predicate.Submission) *SubmissionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionUpdate) SetUserID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableUserID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SubmissionUpdate) SetTaskID(v uuid.UUID) *SubmissionUpdate {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTaskID(v *uuid.UUID) *SubmissionUpdate {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SubmissionUpdate) SetGrade(v int) *SubmissionUpdate {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableGrade(v *int) *SubmissionUpdate {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SubmissionUpdate) AddGrade(v int) *SubmissionUpdate {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SubmissionUpdate) SetTopic(v string) *SubmissionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableTopic(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SubmissionUpdate) SetAnswer(v string) *SubmissionUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableAnswer(v *string) *SubmissionUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionUpdate) SetCorrect(v bool) *SubmissionUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableCorrect(v *bool) *SubmissionUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *SubmissionUpdate) SetMode(v submission.Mode) *SubmissionUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SubmissionUpdate) SetNillableMode(v *submission.Mode) *SubmissionUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdate) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubmissionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubmissionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := submission.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Submission.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := submission.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Submission.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(submission.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(submission.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(submission.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(submission.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(submission.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submission.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(submission.FieldMode, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubmissionUpdateOne is the builder for updating a single Submission entity.
type SubmissionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubmissionMutation
}

// SetUserID sets the "user_id" field.
func (_u *SubmissionUpdateOne) SetUserID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableUserID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTaskID sets the "task_id" field.
func (_u *SubmissionUpdateOne) SetTaskID(v uuid.UUID) *SubmissionUpdateOne {
	_u.mutation.SetTaskID(v)
	return _u
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTaskID(v *uuid.UUID) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTaskID(*v)
	}
	return _u
}

// SetGrade sets the "grade" field.
func (_u *SubmissionUpdateOne) SetGrade(v int) *SubmissionUpdateOne {
	_u.mutation.ResetGrade()
	_u.mutation.SetGrade(v)
	return _u
}

// SetNillableGrade sets the "grade" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableGrade(v *int) *SubmissionUpdateOne {
	if v != nil {
		_u.SetGrade(*v)
	}
	return _u
}

// AddGrade adds value to the "grade" field.
func (_u *SubmissionUpdateOne) AddGrade(v int) *SubmissionUpdateOne {
	_u.mutation.AddGrade(v)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SubmissionUpdateOne) SetTopic(v string) *SubmissionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableTopic(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *SubmissionUpdateOne) SetAnswer(v string) *SubmissionUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableAnswer(v *string) *SubmissionUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *SubmissionUpdateOne) SetCorrect(v bool) *SubmissionUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableCorrect(v *bool) *SubmissionUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetMode sets the "mode" field.
func (_u *SubmissionUpdateOne) SetMode(v submission.Mode) *SubmissionUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *SubmissionUpdateOne) SetNillableMode(v *submission.Mode) *SubmissionUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// Mutation returns the SubmissionMutation object of the builder.
func (_u *SubmissionUpdateOne) Mutation() *SubmissionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubmissionUpdate builder.
func (_u *SubmissionUpdateOne) Where(ps ...predicate.Submission) *SubmissionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubmissionUpdateOne) Select(field string, fields ...string) *SubmissionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Submission entity.
func (_u *SubmissionUpdateOne) Save(ctx context.Context) (*Submission, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubmissionUpdateOne) SaveX(ctx context.Context) *Submission {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubmissionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubmissionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubmissionUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := submission.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "Submission.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Mode(); ok {
		if err := submission.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Submission.mode": %w`, err)}
		}
	}
	return nil
}

func (_u *SubmissionUpdateOne) sqlSave(ctx context.Context) (_node *Submission, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(submission.Table, submission.Columns, sqlgraph.NewFieldSpec(submission.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Submission.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, submission.FieldID)
		for _, f := range fields {
			if !submission.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != submission.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(submission.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TaskID(); ok {
		_spec.SetField(submission.FieldTaskID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Grade(); ok {
		_spec.SetField(submission.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedGrade(); ok {
		_spec.AddField(submission.FieldGrade, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(submission.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(submission.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(submission.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(submission.FieldMode, field.TypeEnum, value)
	}
	_node = &Submission{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{submission.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
