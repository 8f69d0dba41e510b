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
	"github.com/google/uuid"
	"github.com/mathevilla/server/ent/passwordreset"
	"github.com/mathevilla/server/ent/predicate"
)

// PasswordResetUpdate is the builder for updating PasswordReset entities.
type PasswordResetUpdate struct {
	config
	hooks    []Hook
	mutation *PasswordResetMutation
}

// Where appends a list predicates to the PasswordResetUpdate builder.
func (_u *PasswordResetUpdate) Where(ps ...predicate.PasswordReset) *PasswordResetUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetToken sets the "token" field.
func (_u *PasswordResetUpdate) SetToken(v string) *PasswordResetUpdate {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableToken(v *string) *PasswordResetUpdate {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PasswordResetUpdate) SetUserID(v uuid.UUID) *PasswordResetUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableUserID(v *uuid.UUID) *PasswordResetUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PasswordResetUpdate) SetEmail(v string) *PasswordResetUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableEmail(v *string) *PasswordResetUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PasswordResetUpdate) SetExpiresAt(v time.Time) *PasswordResetUpdate {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableExpiresAt(v *time.Time) *PasswordResetUpdate {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsed sets the "used" field.
func (_u *PasswordResetUpdate) SetUsed(v bool) *PasswordResetUpdate {
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *PasswordResetUpdate) SetNillableUsed(v *bool) *PasswordResetUpdate {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// Mutation returns the PasswordResetMutation object of the builder.
func (_u *PasswordResetUpdate) Mutation() *PasswordResetMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PasswordResetUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PasswordResetUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PasswordResetUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PasswordResetUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PasswordResetUpdate) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := passwordreset.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := passwordreset.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.email": %w`, err)}
		}
	}
	return nil
}

func (_u *PasswordResetUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passwordreset.Table, passwordreset.Columns, sqlgraph.NewFieldSpec(passwordreset.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(passwordreset.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(passwordreset.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(passwordreset.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(passwordreset.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(passwordreset.FieldUsed, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passwordreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PasswordResetUpdateOne is the builder for updating a single PasswordReset entity.
type PasswordResetUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PasswordResetMutation
}

// SetToken sets the "token" field.
func (_u *PasswordResetUpdateOne) SetToken(v string) *PasswordResetUpdateOne {
	_u.mutation.SetToken(v)
	return _u
}

// SetNillableToken sets the "token" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableToken(v *string) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetToken(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PasswordResetUpdateOne) SetUserID(v uuid.UUID) *PasswordResetUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableUserID(v *uuid.UUID) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetEmail sets the "email" field.
func (_u *PasswordResetUpdateOne) SetEmail(v string) *PasswordResetUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableEmail(v *string) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetExpiresAt sets the "expires_at" field.
func (_u *PasswordResetUpdateOne) SetExpiresAt(v time.Time) *PasswordResetUpdateOne {
	_u.mutation.SetExpiresAt(v)
	return _u
}

// SetNillableExpiresAt sets the "expires_at" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableExpiresAt(v *time.Time) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetExpiresAt(*v)
	}
	return _u
}

// SetUsed sets the "used" field.
func (_u *PasswordResetUpdateOne) SetUsed(v bool) *PasswordResetUpdateOne {
	_u.mutation.SetUsed(v)
	return _u
}

// SetNillableUsed sets the "used" field if the given value is not nil.
func (_u *PasswordResetUpdateOne) SetNillableUsed(v *bool) *PasswordResetUpdateOne {
	if v != nil {
		_u.SetUsed(*v)
	}
	return _u
}

// Mutation returns the PasswordResetMutation object of the builder.
func (_u *PasswordResetUpdateOne) Mutation() *PasswordResetMutation {
	return _u.mutation
}

// Where appends a list predicates to the PasswordResetUpdate builder.
func (_u *PasswordResetUpdateOne) Where(ps ...predicate.PasswordReset) *PasswordResetUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PasswordResetUpdateOne) Select(field string, fields ...string) *PasswordResetUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PasswordReset entity.
func (_u *PasswordResetUpdateOne) Save(ctx context.Context) (*PasswordReset, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PasswordResetUpdateOne) SaveX(ctx context.Context) *PasswordReset {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PasswordResetUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PasswordResetUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PasswordResetUpdateOne) check() error {
	if v, ok := _u.mutation.Token(); ok {
		if err := passwordreset.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.token": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Email(); ok {
		if err := passwordreset.EmailValidator(v); err != nil {
			return &ValidationError{Name: "email", err: fmt.Errorf(`ent: validator failed for field "PasswordReset.email": %w`, err)}
		}
	}
	return nil
}

func (_u *PasswordResetUpdateOne) sqlSave(ctx context.Context) (_node *PasswordReset, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(passwordreset.Table, passwordreset.Columns, sqlgraph.NewFieldSpec(passwordreset.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PasswordReset.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, passwordreset.FieldID)
		for _, f := range fields {
			if !passwordreset.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != passwordreset.FieldID {
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
	if value, ok := _u.mutation.Token(); ok {
		_spec.SetField(passwordreset.FieldToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(passwordreset.FieldUserID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(passwordreset.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExpiresAt(); ok {
		_spec.SetField(passwordreset.FieldExpiresAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Used(); ok {
		_spec.SetField(passwordreset.FieldUsed, field.TypeBool, value)
	}
	_node = &PasswordReset{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{passwordreset.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
