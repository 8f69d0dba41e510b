package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mathevilla/server/ent"
	entsub "github.com/mathevilla/server/ent/submission"
)

// submissionRepo implements SubmissionRepo. Grouped aggregates go
// through raw SQL because ent cannot express conditional sums.
type submissionRepo struct {
	client *ent.Client
	db     *sql.DB
}

func (r *submissionRepo) Append(ctx context.Context, sub *Submission) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	create := tx.Submission.Create().
		SetUserID(sub.UserID).
		SetTaskID(sub.TaskID).
		SetGrade(sub.Grade).
		SetTopic(sub.Topic).
		SetAnswer(sub.Answer).
		SetCorrect(sub.Correct).
		SetMode(entsub.Mode(sub.Mode))
	if sub.ID != uuid.Nil {
		create.SetID(sub.ID)
	}
	created, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("append submission: %w", err)
	}

	// The lifetime correct counter moves in the same tx as the row it
	// counts, so the two can never diverge.
	if sub.Correct && sub.Mode == "normal" {
		if err := tx.User.UpdateOneID(sub.UserID).AddCorrectCount(1).Exec(ctx); err != nil {
			tx.Rollback()
			return fmt.Errorf("bump correct count: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit submission: %w", err)
	}
	sub.ID = created.ID
	sub.CreatedAt = created.CreatedAt
	return nil
}

func (r *submissionRepo) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*Submission, error) {
	q := r.client.Submission.Query().
		Where(entsub.UserIDEQ(userID), entsub.ModeEQ(entsub.ModeNormal)).
		Order(ent.Desc(entsub.FieldCreatedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	subs, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent submissions: %w", err)
	}
	return entSubsToSubs(subs), nil
}

func (r *submissionRepo) TopicStats(ctx context.Context, userID uuid.UUID) ([]TopicStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM submissions
		 WHERE user_id = ? AND mode = 'normal'
		 GROUP BY topic
		 ORDER BY topic`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("topic stats: %w", err)
	}
	defer rows.Close()

	var stats []TopicStat
	for rows.Next() {
		var s TopicStat
		if err := rows.Scan(&s.Topic, &s.Attempts, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan topic stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *submissionRepo) CorrectByTopic(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic, COUNT(*)
		 FROM submissions
		 WHERE user_id = ? AND correct = 1 AND mode = 'normal'
		 GROUP BY topic`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("correct by topic: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var topic string
		var n int
		if err := rows.Scan(&topic, &n); err != nil {
			return nil, fmt.Errorf("scan topic count: %w", err)
		}
		counts[topic] = n
	}
	return counts, rows.Err()
}

func (r *submissionRepo) Since(ctx context.Context, userID uuid.UUID, t time.Time) ([]*Submission, error) {
	subs, err := r.client.Submission.Query().
		Where(
			entsub.UserIDEQ(userID),
			entsub.ModeEQ(entsub.ModeNormal),
			entsub.CreatedAtGTE(t),
		).
		Order(ent.Asc(entsub.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("submissions since: %w", err)
	}
	return entSubsToSubs(subs), nil
}

func (r *submissionRepo) GlobalTopicErrors(ctx context.Context, limit int) ([]TopicStat, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT topic, COUNT(*), COALESCE(SUM(correct), 0)
		 FROM submissions
		 WHERE mode = 'normal'
		 GROUP BY topic
		 ORDER BY COUNT(*) - COALESCE(SUM(correct), 0) DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("global topic errors: %w", err)
	}
	defer rows.Close()

	var stats []TopicStat
	for rows.Next() {
		var s TopicStat
		if err := rows.Scan(&s.Topic, &s.Attempts, &s.Correct); err != nil {
			return nil, fmt.Errorf("scan topic stat: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func (r *submissionRepo) GlobalStats(ctx context.Context) (*GlobalStats, error) {
	stats := &GlobalStats{}
	var correct int
	err := r.db.QueryRowContext(ctx,
		`SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM tasks),
			COUNT(*),
			COALESCE(SUM(correct), 0)
		 FROM submissions WHERE mode = 'normal'`,
	).Scan(&stats.TotalUsers, &stats.TotalTasks, &stats.TotalSubmissions, &correct)
	if err != nil {
		return nil, fmt.Errorf("global stats: %w", err)
	}
	if stats.TotalSubmissions > 0 {
		stats.CorrectRate = float64(correct) / float64(stats.TotalSubmissions)
	}
	return stats, nil
}

func entSubsToSubs(subs []*ent.Submission) []*Submission {
	out := make([]*Submission, len(subs))
	for i, s := range subs {
		out[i] = &Submission{
			ID:        s.ID,
			UserID:    s.UserID,
			TaskID:    s.TaskID,
			Grade:     s.Grade,
			Topic:     s.Topic,
			Answer:    s.Answer,
			Correct:   s.Correct,
			Mode:      string(s.Mode),
			CreatedAt: s.CreatedAt,
		}
	}
	return out
}
