// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/mathevilla/server/ent/challenge"
)

// ChallengeCreate is the builder for creating a Challenge entity.
type ChallengeCreate struct {
	config
	mutation *ChallengeMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ChallengeCreate) SetUserID(v uuid.UUID) *ChallengeCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ChallengeCreate) SetKind(v challenge.Kind) *ChallengeCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetBucket sets the "bucket" field.
func (_c *ChallengeCreate) SetBucket(v string) *ChallengeCreate {
	_c.mutation.SetBucket(v)
	return _c
}

// SetTaskIds sets the "task_ids" field.
func (_c *ChallengeCreate) SetTaskIds(v []string) *ChallengeCreate {
	_c.mutation.SetTaskIds(v)
	return _c
}

// SetCompletedTaskIds sets the "completed_task_ids" field.
func (_c *ChallengeCreate) SetCompletedTaskIds(v []string) *ChallengeCreate {
	_c.mutation.SetCompletedTaskIds(v)
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ChallengeCreate) SetCompleted(v bool) *ChallengeCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableCompleted(v *bool) *ChallengeCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetBonusXp sets the "bonus_xp" field.
func (_c *ChallengeCreate) SetBonusXp(v int) *ChallengeCreate {
	_c.mutation.SetBonusXp(v)
	return _c
}

// SetNillableBonusXp sets the "bonus_xp" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableBonusXp(v *int) *ChallengeCreate {
	if v != nil {
		_c.SetBonusXp(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ChallengeCreate) SetCreatedAt(v time.Time) *ChallengeCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableCreatedAt(v *time.Time) *ChallengeCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ChallengeCreate) SetID(v uuid.UUID) *ChallengeCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ChallengeCreate) SetNillableID(v *uuid.UUID) *ChallengeCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ChallengeMutation object of the builder.
func (_c *ChallengeCreate) Mutation() *ChallengeMutation {
	return _c.mutation
}

// Save creates the Challenge in the database.
func (_c *ChallengeCreate) Save(ctx context.Context) (*Challenge, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ChallengeCreate) SaveX(ctx context.Context) *Challenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ChallengeCreate) defaults() {
	if _, ok := _c.mutation.CompletedTaskIds(); !ok {
		v := challenge.DefaultCompletedTaskIds
		_c.mutation.SetCompletedTaskIds(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := challenge.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.BonusXp(); !ok {
		v := challenge.DefaultBonusXp
		_c.mutation.SetBonusXp(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := challenge.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := challenge.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ChallengeCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Challenge.user_id"`)}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Challenge.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := challenge.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Challenge.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Bucket(); !ok {
		return &ValidationError{Name: "bucket", err: errors.New(`ent: missing required field "Challenge.bucket"`)}
	}
	if v, ok := _c.mutation.Bucket(); ok {
		if err := challenge.BucketValidator(v); err != nil {
			return &ValidationError{Name: "bucket", err: fmt.Errorf(`ent: validator failed for field "Challenge.bucket": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TaskIds(); !ok {
		return &ValidationError{Name: "task_ids", err: errors.New(`ent: missing required field "Challenge.task_ids"`)}
	}
	if _, ok := _c.mutation.CompletedTaskIds(); !ok {
		return &ValidationError{Name: "completed_task_ids", err: errors.New(`ent: missing required field "Challenge.completed_task_ids"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "Challenge.completed"`)}
	}
	if _, ok := _c.mutation.BonusXp(); !ok {
		return &ValidationError{Name: "bonus_xp", err: errors.New(`ent: missing required field "Challenge.bonus_xp"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Challenge.created_at"`)}
	}
	return nil
}

func (_c *ChallengeCreate) sqlSave(ctx context.Context) (*Challenge, error) {
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
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ChallengeCreate) createSpec() (*Challenge, *sqlgraph.CreateSpec) {
	var (
		_node = &Challenge{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(challenge.Table, sqlgraph.NewFieldSpec(challenge.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(challenge.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(challenge.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Bucket(); ok {
		_spec.SetField(challenge.FieldBucket, field.TypeString, value)
		_node.Bucket = value
	}
	if value, ok := _c.mutation.TaskIds(); ok {
		_spec.SetField(challenge.FieldTaskIds, field.TypeJSON, value)
		_node.TaskIds = value
	}
	if value, ok := _c.mutation.CompletedTaskIds(); ok {
		_spec.SetField(challenge.FieldCompletedTaskIds, field.TypeJSON, value)
		_node.CompletedTaskIds = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(challenge.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.BonusXp(); ok {
		_spec.SetField(challenge.FieldBonusXp, field.TypeInt, value)
		_node.BonusXp = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(challenge.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ChallengeCreateBulk is the builder for creating many Challenge entities in bulk.
type ChallengeCreateBulk struct {
	config
	err      error
	builders []*ChallengeCreate
}

// Save creates the Challenge entities in the database.
func (_c *ChallengeCreateBulk) Save(ctx context.Context) ([]*Challenge, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Challenge, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ChallengeMutation)
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
func (_c *ChallengeCreateBulk) SaveX(ctx context.Context) []*Challenge {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ChallengeCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ChallengeCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
