package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mathevilla/server/ent"
	entpr "github.com/mathevilla/server/ent/passwordreset"
)

// resetRepo implements PasswordResetRepo using the ent client.
type resetRepo struct {
	client *ent.Client
}

func (r *resetRepo) Create(ctx context.Context, pr *PasswordReset) error {
	created, err := r.client.PasswordReset.Create().
		SetToken(pr.Token).
		SetUserID(pr.UserID).
		SetEmail(pr.Email).
		SetExpiresAt(pr.ExpiresAt).
		SetUsed(pr.Used).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create password reset: %w", err)
	}
	pr.ID = created.ID
	return nil
}

func (r *resetRepo) ByToken(ctx context.Context, token string) (*PasswordReset, error) {
	pr, err := r.client.PasswordReset.Query().
		Where(entpr.TokenEQ(token)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get password reset: %w", err)
	}
	return &PasswordReset{
		ID:        pr.ID,
		Token:     pr.Token,
		UserID:    pr.UserID,
		Email:     pr.Email,
		ExpiresAt: pr.ExpiresAt,
		Used:      pr.Used,
	}, nil
}

func (r *resetRepo) MarkUsed(ctx context.Context, id uuid.UUID) error {
	err := r.client.PasswordReset.UpdateOneID(id).SetUsed(true).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}
