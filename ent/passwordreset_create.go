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
	"github.com/mathevilla/server/ent/passwordreset"
)

// PasswordResetCreate is the builder for creating a PasswordReset entity.
type PasswordResetCreate struct {
	config
	mutation *PasswordResetMutation
	hooks    []Hook
}

// SetToken sets the "token" field.
func (_c *PasswordResetCreate) SetToken(v string) *PasswordResetCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *PasswordResetCreate) SetUserID(v uuid.UUID) *PasswordResetCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *PasswordResetCreate) SetEmail(v string) *PasswordResetCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetExpiresAt sets the "expires_at" field.
func (_c *PasswordResetCreate) SetExpiresAt(v time.Time) *PasswordResetCreate {
	_c.mutation.SetExpiresAt(v)
	return _c
}

// SetUsed sets the "used" field.
func (_c *PasswordResetCreate) SetUsed(v bool) *PasswordResetCreate {
	_c.mutation.SetUsed(v)
	return _c
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_c *PasswordResetCreate) SetNillableUsed(v *bool) *PasswordResetCreate {
	if v != nil {
		_c.SetUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PasswordResetCreate) SetCreatedAt(v time.Time) *PasswordResetCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PasswordResetCreate) SetNillableCreatedAt(v *time.Time) *PasswordResetCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PasswordResetCreate) SetID(v uuid.UUID) *PasswordResetCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PasswordResetCreate) SetNillableID(v *uuid.UUID) *PasswordResetCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PasswordResetMutation object of the builder.
func (_c *PasswordResetCreate) Mutation() *PasswordResetMutation {
	return _c.mutation
}

// Save creates the PasswordReset in the database.
func (_c *PasswordResetCreate) Save(ctx context.Context) (*PasswordReset, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PasswordResetCreate) SaveX(ctx context.Context) *PasswordReset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PasswordResetCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PasswordResetCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PasswordResetCreate) defaults() {
	if _, ok := _c.mutation.Used(); !ok {
		v := passwordreset.DefaultUsed
		_c.mutation.SetUsed(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := passwordreset.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := passwordreset.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PasswordResetCreate) check() error {
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "PasswordReset.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := passwordreset.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "PasswordReset.user_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "PasswordReset.email"`)}
	}
	if v, ok := _c.mutation.Email(); ok {
		if err := passwordreset.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.email": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExpiresAt(); !ok {
		return &ValidationError{Name: "expires_at", err: errors.New(`ent: missing required field "PasswordReset.expires_at"`)}
	}
	if _, ok := _c.mutation.Used(); !ok {
		return &ValidationError{Name: "used", err: errors.New(`ent: missing required field "PasswordReset.used"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PasswordReset.created_at"`)}
	}
	return nil
}

func (_c *PasswordResetCreate) sqlSave(ctx context.Context) (*PasswordReset, error) {
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

func (_c *PasswordResetCreate) createSpec() (*PasswordReset, *sqlgraph.CreateSpec) {
	var (
		_node = &PasswordReset{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(passwordreset.Table, sqlgraph.NewFieldSpec(passwordreset.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(passwordreset.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(passwordreset.FieldUserID, field.TypeUUID, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(passwordreset.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.ExpiresAt(); ok {
		_spec.SetField(passwordreset.FieldExpiresAt, field.TypeTime, value)
		_node.ExpiresAt = value
	}
	if value, ok := _c.mutation.Used(); ok {
		_spec.SetField(passwordreset.FieldUsed, field.TypeBool, value)
		_node.Used = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(passwordreset.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// PasswordResetCreateBulk is the builder for creating many PasswordReset entities in bulk.
type PasswordResetCreateBulk struct {
	config
	err      error
	builders []*PasswordResetCreate
}

// Save creates the PasswordReset entities in the database.
func (_c *PasswordResetCreateBulk) Save(ctx context.Context) ([]*PasswordReset, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PasswordReset, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PasswordResetMutation)
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
func (_c *PasswordResetCreateBulk) SaveX(ctx context.Context) []*PasswordReset {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PasswordResetCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PasswordResetCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
