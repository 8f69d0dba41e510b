package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mathevilla/server/ent"
	entch "github.com/mathevilla/server/ent/challenge"
)

// challengeRepo implements ChallengeRepo using the ent client.
type challengeRepo struct {
	client *ent.Client
}

func (r *challengeRepo) Get(ctx context.Context, userID uuid.UUID, kind, bucket string) (*Challenge, error) {
	c, err := r.client.Challenge.Query().
		Where(
			entch.UserIDEQ(userID),
			entch.KindEQ(entch.Kind(kind)),
			entch.BucketEQ(bucket),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get challenge: %w", err)
	}
	return entChallengeToChallenge(c), nil
}

func (r *challengeRepo) Create(ctx context.Context, c *Challenge) error {
	create := r.client.Challenge.Create().
		SetUserID(c.UserID).
		SetKind(entch.Kind(c.Kind)).
		SetBucket(c.Bucket).
		SetTaskIds(c.TaskIDs).
		SetCompletedTaskIds(c.CompletedTaskIDs).
		SetCompleted(c.Completed).
		SetBonusXp(c.BonusXP)
	if c.ID != uuid.Nil {
		create.SetID(c.ID)
	}
	created, err := create.Save(ctx)
	if err != nil {
		// The unique (user, kind, bucket) index loses the race to a
		// concurrent creator; callers re-read and use the winner's row.
		if ent.IsConstraintError(err) {
			existing, gerr := r.Get(ctx, c.UserID, c.Kind, c.Bucket)
			if gerr != nil {
				return fmt.Errorf("create challenge: %w", err)
			}
			*c = *existing
			return nil
		}
		return fmt.Errorf("create challenge: %w", err)
	}
	*c = *entChallengeToChallenge(created)
	return nil
}

func (r *challengeRepo) SetProgress(ctx context.Context, id uuid.UUID, completedTaskIDs []string, completed bool) error {
	err := r.client.Challenge.UpdateOneID(id).
		SetCompletedTaskIds(completedTaskIDs).
		SetCompleted(completed).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func entChallengeToChallenge(c *ent.Challenge) *Challenge {
	return &Challenge{
		ID:               c.ID,
		UserID:           c.UserID,
		Kind:             string(c.Kind),
		Bucket:           c.Bucket,
		TaskIDs:          c.TaskIds,
		CompletedTaskIDs: c.CompletedTaskIds,
		Completed:        c.Completed,
		BonusXP:          c.BonusXp,
		CreatedAt:        c.CreatedAt,
	}
}
