package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mathevilla/server/ent"
	entasg "github.com/mathevilla/server/ent/assignment"
)

// assignmentRepo implements AssignmentRepo using the ent client.
type assignmentRepo struct {
	client *ent.Client
}

func (r *assignmentRepo) Create(ctx context.Context, a *Assignment) error {
	create := r.client.Assignment.Create().
		SetTitle(a.Title).
		SetGrade(a.Grade).
		SetTopic(a.Topic).
		SetTaskIds(a.TaskIDs).
		SetCreatedBy(a.CreatedBy)
	if a.ID != uuid.Nil {
		create.SetID(a.ID)
	}
	if !a.DueAt.IsZero() {
		create.SetDueAt(a.DueAt)
	}
	created, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	a.ID = created.ID
	a.CreatedAt = created.CreatedAt
	return nil
}

func (r *assignmentRepo) ByGrade(ctx context.Context, grade int) ([]*Assignment, error) {
	q := r.client.Assignment.Query()
	if grade != 0 {
		q = q.Where(entasg.GradeEQ(grade))
	}
	list, err := q.Order(ent.Desc(entasg.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	out := make([]*Assignment, len(list))
	for i, a := range list {
		out[i] = &Assignment{
			ID:        a.ID,
			Title:     a.Title,
			Grade:     a.Grade,
			Topic:     a.Topic,
			TaskIDs:   a.TaskIds,
			DueAt:     a.DueAt,
			CreatedBy: a.CreatedBy,
			CreatedAt: a.CreatedAt,
		}
	}
	return out, nil
}
