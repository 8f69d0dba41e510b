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
	"github.com/google/uuid"
	"github.com/mathevilla/server/ent/challenge"
	"github.com/mathevilla/server/ent/predicate"
)

// ChallengeUpdate is the builder for updating Challenge entities.
type ChallengeUpdate struct {
	config
	hooks    []Hook
	mutation *ChallengeMutation
}

// Where appends a list predicates to the ChallengeUpdate builder.
func (_u *ChallengeUpdate) Where(ps ...predicate.Challenge) *ChallengeUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeUpdate) SetUserID(v uuid.UUID) *ChallengeUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableUserID(v *uuid.UUID) *ChallengeUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ChallengeUpdate) SetKind(v challenge.Kind) *ChallengeUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableKind(v *challenge.Kind) *ChallengeUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *ChallengeUpdate) SetBucket(v string) *ChallengeUpdate {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableBucket(v *string) *ChallengeUpdate {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetTaskIds sets the "task_ids" field.
func (_u *ChallengeUpdate) SetTaskIds(v []string) *ChallengeUpdate {
	_u.mutation.SetTaskIds(v)
	return _u
}

// AppendTaskIds appends value to the "task_ids" field.
func (_u *ChallengeUpdate) AppendTaskIds(v []string) *ChallengeUpdate {
	_u.mutation.AppendTaskIds(v)
	return _u
}

// SetCompletedTaskIds sets the "completed_task_ids" field.
func (_u *ChallengeUpdate) SetCompletedTaskIds(v []string) *ChallengeUpdate {
	_u.mutation.SetCompletedTaskIds(v)
	return _u
}

// AppendCompletedTaskIds appends value to the "completed_task_ids" field.
func (_u *ChallengeUpdate) AppendCompletedTaskIds(v []string) *ChallengeUpdate {
	_u.mutation.AppendCompletedTaskIds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ChallengeUpdate) SetCompleted(v bool) *ChallengeUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableCompleted(v *bool) *ChallengeUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetBonusXp sets the "bonus_xp" field.
func (_u *ChallengeUpdate) SetBonusXp(v int) *ChallengeUpdate {
	_u.mutation.ResetBonusXp()
	_u.mutation.SetBonusXp(v)
	return _u
}

// SetNillableBonusXp sets the "bonus_xp" field if the given value is not nil.
func (_u *ChallengeUpdate) SetNillableBonusXp(v *int) *ChallengeUpdate {
	if v != nil {
		_u.SetBonusXp(*v)
	}
	return _u
}

// AddBonusXp adds value to the "bonus_xp" field.
func (_u *ChallengeUpdate) AddBonusXp(v int) *ChallengeUpdate {
	_u.mutation.AddBonusXp(v)
	return _u
}

// Mutation returns the ChallengeMutation object of the builder.
func (_u *ChallengeUpdate) Mutation() *ChallengeMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ChallengeUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ChallengeUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeUpdate) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := challenge.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Challenge.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := challenge.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "Challenge.bucket": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challenge.Table, challenge.Columns, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(challenge.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(challenge.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(challenge.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskIds(); ok {
		_spec.SetField(challenge.FieldTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challenge.FieldTaskIds, value)
		})
	}
	if value, ok := _u.mutation.CompletedTaskIds(); ok {
		_spec.SetField(challenge.FieldCompletedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challenge.FieldCompletedTaskIds, value)
		})
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(challenge.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BonusXp(); ok {
		_spec.SetField(challenge.FieldBonusXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusXp(); ok {
		_spec.AddField(challenge.FieldBonusXp, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challenge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ChallengeUpdateOne is the builder for updating a single Challenge entity.
type ChallengeUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ChallengeMutation
}

// SetUserID sets the "user_id" field.
func (_u *ChallengeUpdateOne) SetUserID(v uuid.UUID) *ChallengeUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableUserID(v *uuid.UUID) *ChallengeUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *ChallengeUpdateOne) SetKind(v challenge.Kind) *ChallengeUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableKind(v *challenge.Kind) *ChallengeUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// SetBucket sets the "bucket" field.
func (_u *ChallengeUpdateOne) SetBucket(v string) *ChallengeUpdateOne {
	_u.mutation.SetBucket(v)
	return _u
}

// SetNillableBucket sets the "bucket" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableBucket(v *string) *ChallengeUpdateOne {
	if v != nil {
		_u.SetBucket(*v)
	}
	return _u
}

// SetTaskIds sets the "task_ids" field.
func (_u *ChallengeUpdateOne) SetTaskIds(v []string) *ChallengeUpdateOne {
	_u.mutation.SetTaskIds(v)
	return _u
}

// AppendTaskIds appends value to the "task_ids" field.
func (_u *ChallengeUpdateOne) AppendTaskIds(v []string) *ChallengeUpdateOne {
	_u.mutation.AppendTaskIds(v)
	return _u
}

// SetCompletedTaskIds sets the "completed_task_ids" field.
func (_u *ChallengeUpdateOne) SetCompletedTaskIds(v []string) *ChallengeUpdateOne {
	_u.mutation.SetCompletedTaskIds(v)
	return _u
}

// AppendCompletedTaskIds appends value to the "completed_task_ids" field.
func (_u *ChallengeUpdateOne) AppendCompletedTaskIds(v []string) *ChallengeUpdateOne {
	_u.mutation.AppendCompletedTaskIds(v)
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ChallengeUpdateOne) SetCompleted(v bool) *ChallengeUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableCompleted(v *bool) *ChallengeUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetBonusXp sets the "bonus_xp" field.
func (_u *ChallengeUpdateOne) SetBonusXp(v int) *ChallengeUpdateOne {
	_u.mutation.ResetBonusXp()
	_u.mutation.SetBonusXp(v)
	return _u
}

// SetNillableBonusXp sets the "bonus_xp" field if the given value is not nil.
func (_u *ChallengeUpdateOne) SetNillableBonusXp(v *int) *ChallengeUpdateOne {
	if v != nil {
		_u.SetBonusXp(*v)
	}
	return _u
}

// AddBonusXp adds value to the "bonus_xp" field.
func (_u *ChallengeUpdateOne) AddBonusXp(v int) *ChallengeUpdateOne {
	_u.mutation.AddBonusXp(v)
	return _u
}

// Mutation returns the ChallengeMutation object of the builder.
func (_u *ChallengeUpdateOne) Mutation() *ChallengeMutation {
	return _u.mutation
}

// Where appends a list predicates to the ChallengeUpdate builder.
func (_u *ChallengeUpdateOne) Where(ps ...predicate.Challenge) *ChallengeUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ChallengeUpdateOne) Select(field string, fields ...string) *ChallengeUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Challenge entity.
func (_u *ChallengeUpdateOne) Save(ctx context.Context) (*Challenge, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ChallengeUpdateOne) SaveX(ctx context.Context) *Challenge {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ChallengeUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ChallengeUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ChallengeUpdateOne) check() error {
	if v, ok := _u.mutation.Kind(); ok {
		if err := challenge.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Challenge.kind": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Bucket(); ok {
		if err := challenge.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "Challenge.bucket": %w`, err)}
		}
	}
	return nil
}

func (_u *ChallengeUpdateOne) sqlSave(ctx context.Context) (_node *Challenge, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(challenge.Table, challenge.Columns, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Challenge.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, challenge.FieldID)
		for _, f := range fields {
			if !challenge.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != challenge.FieldID {
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
		_spec.SetField(challenge.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(challenge.FieldKind, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Bucket(); ok {
		_spec.SetField(challenge.FieldBucket, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskIds(); ok {
		_spec.SetField(challenge.FieldTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challenge.FieldTaskIds, value)
		})
	}
	if value, ok := _u.mutation.CompletedTaskIds(); ok {
		_spec.SetField(challenge.FieldCompletedTaskIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedTaskIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, challenge.FieldCompletedTaskIds, value)
		})
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(challenge.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.BonusXp(); ok {
		_spec.SetField(challenge.FieldBonusXp, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusXp(); ok {
		_spec.AddField(challenge.FieldBonusXp, field.TypeInt, value)
	}
	_node = &Challenge{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{challenge.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
