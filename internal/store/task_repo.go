package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/mathevilla/server/ent"
	enttask "github.com/mathevilla/server/ent/task"
)

// taskRepo implements TaskRepo using the ent client.
type taskRepo struct {
	client *ent.Client
}

func (r *taskRepo) Create(ctx context.Context, t *Task) error {
	create := r.client.Task.Create().
		SetGrade(t.Grade).
		SetTopic(t.Topic).
		SetQuestion(t.Question).
		SetType(enttask.Type(t.Type)).
		SetCorrectAnswer(t.CorrectAnswer).
		SetExplanation(t.Explanation).
		SetXpReward(t.XPReward).
		SetDifficulty(enttask.Difficulty(t.Difficulty)).
		SetCurriculum(t.Curriculum).
		SetCreatedBy(t.CreatedBy)
	if t.ID != uuid.Nil {
		create.SetID(t.ID)
	}
	if len(t.Options) > 0 {
		create.SetOptions(t.Options)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	*t = *entTaskToTask(created)
	return nil
}

func (r *taskRepo) CreateBulk(ctx context.Context, tasks []*Task) (int, error) {
	inserted := 0
	for _, t := range tasks {
		if err := r.Create(ctx, t); err != nil {
			continue
		}
		inserted++
	}
	return inserted, nil
}

func (r *taskRepo) ByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	t, err := r.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return entTaskToTask(t), nil
}

func (r *taskRepo) List(ctx context.Context, f TaskFilter) ([]*Task, error) {
	q := r.client.Task.Query()
	if f.Grade != 0 {
		q = q.Where(enttask.GradeEQ(f.Grade))
	}
	if f.Topic != "" {
		q = q.Where(enttask.TopicEQ(f.Topic))
	}
	if f.Difficulty != "" {
		q = q.Where(enttask.DifficultyEQ(enttask.Difficulty(f.Difficulty)))
	}
	if f.Curriculum != "" {
		q = q.Where(enttask.CurriculumEQ(f.Curriculum))
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	tasks, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	out := make([]*Task, len(tasks))
	for i, t := range tasks {
		out[i] = entTaskToTask(t)
	}
	return out, nil
}

func (r *taskRepo) Update(ctx context.Context, t *Task) error {
	update := r.client.Task.UpdateOneID(t.ID).
		SetGrade(t.Grade).
		SetTopic(t.Topic).
		SetQuestion(t.Question).
		SetType(enttask.Type(t.Type)).
		SetOptions(t.Options).
		SetCorrectAnswer(t.CorrectAnswer).
		SetExplanation(t.Explanation).
		SetXpReward(t.XPReward).
		SetDifficulty(enttask.Difficulty(t.Difficulty)).
		SetCurriculum(t.Curriculum)
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *taskRepo) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.client.Task.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

func (r *taskRepo) Count(ctx context.Context) (int, error) {
	return r.client.Task.Query().Count(ctx)
}

func entTaskToTask(t *ent.Task) *Task {
	return &Task{
		ID:            t.ID,
		Grade:         t.Grade,
		Topic:         t.Topic,
		Question:      t.Question,
		Type:          string(t.Type),
		Options:       t.Options,
		CorrectAnswer: t.CorrectAnswer,
		Explanation:   t.Explanation,
		XPReward:      t.XpReward,
		Difficulty:    string(t.Difficulty),
		Curriculum:    t.Curriculum,
		CreatedBy:     t.CreatedBy,
		CreatedAt:     t.CreatedAt,
	}
}
