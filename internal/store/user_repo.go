package store

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mathevilla/server/ent"
	entuser "github.com/mathevilla/server/ent/user"
)

// userRepo implements UserRepo using the ent client, with raw SQL for
// the atomic XP credit.
type userRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *userRepo) Create(ctx context.Context, u *User) error {
	create := r.client.User.Create().
		SetEmail(u.Email).
		SetPasswordHash(u.PasswordHash).
		SetName(u.Name).
		SetRole(entuser.Role(u.Role)).
		SetXp(u.XP).
		SetLevel(u.Level).
		SetBadges(u.Badges)
	if u.ID != uuid.Nil {
		create.SetID(u.ID)
	}
	if u.Grade != nil {
		create.SetGrade(*u.Grade)
	}
	if u.Features != nil {
		create.SetFeatures(u.Features)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	*u = *entUserToUser(created)
	return nil
}

func (r *userRepo) ByID(ctx context.Context, id uuid.UUID) (*User, error) {
	u, err := r.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return entUserToUser(u), nil
}

func (r *userRepo) ByEmail(ctx context.Context, email string) (*User, error) {
	u, err := r.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return entUserToUser(u), nil
}

// CreditXP adds amount and recomputes the level in a single statement.
// Raw SQL because ent can't express an atomic read-modify-write; the
// RETURNING clause makes increment and readback one operation, matching
// the invariant level = xp/100 + 1 without a racy read.
func (r *userRepo) CreditXP(ctx context.Context, id uuid.UUID, amount int) (int, int, error) {
	var xp, level int
	err := r.db.QueryRowContext(ctx,
		`UPDATE users SET xp = xp + ?, level = (xp + ?) / 100 + 1 WHERE id = ? RETURNING xp, level`,
		amount, amount, id,
	).Scan(&xp, &level)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, 0, ErrNotFound
		}
		return 0, 0, fmt.Errorf("credit xp: %w", err)
	}
	return xp, level, nil
}

func (r *userRepo) AddBadges(ctx context.Context, id uuid.UUID, badges []string) ([]string, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	u, err := tx.User.Get(ctx, id)
	if err != nil {
		tx.Rollback()
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	var added []string
	merged := slices.Clone(u.Badges)
	for _, b := range badges {
		if !slices.Contains(merged, b) {
			merged = append(merged, b)
			added = append(added, b)
		}
	}
	if len(added) == 0 {
		tx.Rollback()
		return nil, nil
	}

	if _, err := tx.User.UpdateOneID(id).SetBadges(merged).Save(ctx); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("update badges: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit badges: %w", err)
	}
	return added, nil
}

func (r *userRepo) UpdateGrade(ctx context.Context, id uuid.UUID, grade int) error {
	err := r.client.User.UpdateOneID(id).SetGrade(grade).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *userRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	err := r.client.User.UpdateOneID(id).SetPasswordHash(hash).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *userRepo) SetFeatures(ctx context.Context, id uuid.UUID, features map[string]bool) error {
	err := r.client.User.UpdateOneID(id).SetFeatures(features).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *userRepo) ListStudents(ctx context.Context, grade int) ([]*User, error) {
	q := r.client.User.Query().
		Where(entuser.RoleEQ(entuser.RoleStudent)).
		Order(ent.Asc(entuser.FieldName))
	if grade != 0 {
		q = q.Where(entuser.GradeEQ(grade))
	}
	users, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list students: %w", err)
	}
	out := make([]*User, len(users))
	for i, u := range users {
		out[i] = entUserToUser(u)
	}
	return out, nil
}

func (r *userRepo) Count(ctx context.Context) (int, error) {
	return r.client.User.Query().Count(ctx)
}

func entUserToUser(u *ent.User) *User {
	return &User{
		ID:           u.ID,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Name:         u.Name,
		Role:         string(u.Role),
		Grade:        u.Grade,
		XP:           u.Xp,
		Level:        u.Level,
		CorrectCount: u.CorrectCount,
		Badges:       u.Badges,
		Features:     u.Features,
		CreatedAt:    u.CreatedAt,
	}
}
