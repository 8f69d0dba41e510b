// Package challenge assigns and tracks daily and weekly task sets.
// Each is keyed by a period bucket so that re-requesting the current
// challenge returns the same set all period long.
package challenge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mathevilla/server/internal/evaluate"
	"github.com/mathevilla/server/internal/progression"
	"github.com/mathevilla/server/internal/store"
)

const (
	tasksPerChallenge = 5
	dailyBonusXP      = 50
	weeklyBonusXP     = 100

	// championBadge is granted when a weekly challenge is finished.
	championBadge = "wochen_champion"
)

// ErrAlreadyCompleted is returned when submitting to a finished
// weekly challenge.
var ErrAlreadyCompleted = errors.New("challenge already completed")

// View is a challenge together with its resolved tasks.
type View struct {
	ID               uuid.UUID     `json:"id"`
	Kind             string        `json:"kind"`
	Bucket           string        `json:"bucket"`
	Tasks            []*store.Task `json:"tasks"`
	CompletedTaskIDs []string      `json:"completed_task_ids"`
	Completed        bool          `json:"completed"`
	BonusXP          int           `json:"bonus_xp"`
}

// DailyOutcome is the response to a daily challenge submission.
type DailyOutcome struct {
	*progression.SubmitResult
	ChallengeCompleted bool `json:"challenge_completed"`
	BonusAwarded       bool `json:"bonus_xp_awarded"`
	TasksRemaining     int  `json:"tasks_remaining"`
}

// WeeklyOutcome is the response to a weekly challenge submission.
type WeeklyOutcome struct {
	Correct            bool   `json:"is_correct"`
	CorrectAnswer      string `json:"correct_answer"`
	Explanation        string `json:"explanation"`
	Progress           string `json:"progress"`
	ChallengeCompleted bool   `json:"challenge_completed"`
}

// Scheduler creates and settles challenges.
type Scheduler struct {
	tasks      store.TaskRepo
	challenges store.ChallengeRepo
	users      store.UserRepo
	ledger     *progression.Ledger
	logger     *slog.Logger

	// now is replaceable in tests to pin the bucket.
	now func() time.Time
}

// NewScheduler creates a Scheduler over the given dependencies.
func NewScheduler(tasks store.TaskRepo, challenges store.ChallengeRepo, users store.UserRepo, ledger *progression.Ledger, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		tasks:      tasks,
		challenges: challenges,
		users:      users,
		ledger:     ledger,
		logger:     logger,
		now:        time.Now,
	}
}

// DailyBucket returns the UTC date key for t.
func DailyBucket(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WeeklyBucket returns the ISO-week key for t, e.g. "2026-W35".
// ISO weeks start on Monday, so the bucket rolls over Sunday midnight UTC.
func WeeklyBucket(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// Daily returns the user's challenge for today, creating one from the
// grade's task pool on first request. Pools smaller than five tasks
// fall back to the global bank.
func (s *Scheduler) Daily(ctx context.Context, user *store.User) (*View, error) {
	bucket := DailyBucket(s.now())
	return s.getOrCreate(ctx, user, "daily", bucket, dailyBonusXP, func(ctx context.Context) ([]*store.Task, error) {
		pool, err := s.tasks.List(ctx, store.TaskFilter{Grade: userGrade(user)})
		if err != nil {
			return nil, err
		}
		if len(pool) < tasksPerChallenge {
			pool, err = s.tasks.List(ctx, store.TaskFilter{})
			if err != nil {
				return nil, err
			}
		}
		return pool, nil
	})
}

// Weekly returns the user's challenge for this ISO week, creating one
// from the grade's mittel pool, padded from the whole grade pool when
// mittel alone is too small.
func (s *Scheduler) Weekly(ctx context.Context, user *store.User) (*View, error) {
	bucket := WeeklyBucket(s.now())
	return s.getOrCreate(ctx, user, "weekly", bucket, weeklyBonusXP, func(ctx context.Context) ([]*store.Task, error) {
		pool, err := s.tasks.List(ctx, store.TaskFilter{Grade: userGrade(user), Difficulty: "mittel"})
		if err != nil {
			return nil, err
		}
		if len(pool) < tasksPerChallenge {
			more, err := s.tasks.List(ctx, store.TaskFilter{Grade: userGrade(user), Limit: 10})
			if err != nil {
				return nil, err
			}
			for _, t := range more {
				if !containsTask(pool, t.ID) {
					pool = append(pool, t)
				}
			}
		}
		return pool, nil
	})
}

func (s *Scheduler) getOrCreate(ctx context.Context, user *store.User, kind, bucket string, bonusXP int, poolFn func(context.Context) ([]*store.Task, error)) (*View, error) {
	existing, err := s.challenges.Get(ctx, user.ID, kind, bucket)
	if err == nil {
		return s.view(ctx, existing)
	}
	if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("load %s challenge: %w", kind, err)
	}

	pool, err := poolFn(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s challenge pool: %w", kind, err)
	}
	selected := sample(pool, tasksPerChallenge)
	ids := make([]string, len(selected))
	for i, t := range selected {
		ids[i] = t.ID.String()
	}

	ch := &store.Challenge{
		UserID:           user.ID,
		Kind:             kind,
		Bucket:           bucket,
		TaskIDs:          ids,
		CompletedTaskIDs: []string{},
		BonusXP:          bonusXP,
	}
	// Create resolves concurrent same-bucket races to the winner's row.
	if err := s.challenges.Create(ctx, ch); err != nil {
		return nil, fmt.Errorf("create %s challenge: %w", kind, err)
	}
	s.logger.Info("challenge created", "kind", kind, "bucket", bucket, "user", user.ID, "tasks", len(ch.TaskIDs))
	return s.view(ctx, ch)
}

// SubmitDaily records an answer for a daily challenge task. The answer
// goes through the normal submission flow (XP, milestones), then the
// challenge tracks completion. Finishing all tasks pays the bonus once.
func (s *Scheduler) SubmitDaily(ctx context.Context, user *store.User, challengeID uuid.UUID, taskID uuid.UUID, answer string) (*DailyOutcome, error) {
	ch, err := s.challenges.Get(ctx, user.ID, "daily", DailyBucket(s.now()))
	if err != nil {
		return nil, fmt.Errorf("load daily challenge: %w", err)
	}
	if ch.ID != challengeID {
		return nil, store.ErrNotFound
	}

	task, err := s.tasks.ByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}

	res, err := s.ledger.RecordAnswer(ctx, user, task, answer, "normal")
	if err != nil {
		return nil, err
	}

	completed := ch.CompletedTaskIDs
	if !slices.Contains(completed, taskID.String()) {
		completed = append(completed, taskID.String())
	}
	allDone := len(completed) >= len(ch.TaskIDs)

	// The completed flag guards the bonus. Two racing submissions can
	// in principle both pass this check; acceptable for now, the worst
	// case is one duplicate bonus.
	bonusAwarded := false
	if allDone && !ch.Completed {
		if _, _, err := s.users.CreditXP(ctx, user.ID, ch.BonusXP); err != nil {
			return nil, fmt.Errorf("daily bonus: %w", err)
		}
		bonusAwarded = true
	}
	if err := s.challenges.SetProgress(ctx, ch.ID, completed, allDone); err != nil {
		return nil, fmt.Errorf("update daily progress: %w", err)
	}

	return &DailyOutcome{
		SubmitResult:       res,
		ChallengeCompleted: allDone,
		BonusAwarded:       bonusAwarded,
		TasksRemaining:     len(ch.TaskIDs) - len(completed),
	}, nil
}

// SubmitWeekly records an answer for the current weekly challenge.
// Weekly answers are evaluated outside the normal flow: no task XP,
// only progress plus the completion bonus and the champion badge.
func (s *Scheduler) SubmitWeekly(ctx context.Context, user *store.User, taskID uuid.UUID, answer string) (*WeeklyOutcome, error) {
	ch, err := s.challenges.Get(ctx, user.ID, "weekly", WeeklyBucket(s.now()))
	if err != nil {
		return nil, fmt.Errorf("load weekly challenge: %w", err)
	}
	if ch.Completed {
		return nil, ErrAlreadyCompleted
	}

	task, err := s.tasks.ByID(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("load task: %w", err)
	}

	eval := evaluate.Check(answer, task.CorrectAnswer, task.Explanation)

	completed := ch.CompletedTaskIDs
	allDone := false
	if eval.Correct && slices.Contains(ch.TaskIDs, taskID.String()) && !slices.Contains(completed, taskID.String()) {
		completed = append(completed, taskID.String())
		allDone = len(completed) == len(ch.TaskIDs)

		if allDone {
			if _, _, err := s.users.CreditXP(ctx, user.ID, ch.BonusXP); err != nil {
				return nil, fmt.Errorf("weekly bonus: %w", err)
			}
			if err := s.ledger.Award(ctx, user.ID, championBadge); err != nil {
				return nil, fmt.Errorf("champion badge: %w", err)
			}
			s.logger.Info("weekly challenge completed", "user", user.ID, "bucket", ch.Bucket)
		}
		if err := s.challenges.SetProgress(ctx, ch.ID, completed, allDone); err != nil {
			return nil, fmt.Errorf("update weekly progress: %w", err)
		}
	}

	return &WeeklyOutcome{
		Correct:            eval.Correct,
		CorrectAnswer:      eval.CorrectAnswer,
		Explanation:        eval.Explanation,
		Progress:           fmt.Sprintf("%d/%d", len(completed), len(ch.TaskIDs)),
		ChallengeCompleted: allDone,
	}, nil
}

func (s *Scheduler) view(ctx context.Context, ch *store.Challenge) (*View, error) {
	tasks := make([]*store.Task, 0, len(ch.TaskIDs))
	for _, raw := range ch.TaskIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		task, err := s.tasks.ByID(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			continue // task deleted since assignment
		}
		if err != nil {
			return nil, fmt.Errorf("resolve challenge task: %w", err)
		}
		tasks = append(tasks, task)
	}
	return &View{
		ID:               ch.ID,
		Kind:             ch.Kind,
		Bucket:           ch.Bucket,
		Tasks:            tasks,
		CompletedTaskIDs: ch.CompletedTaskIDs,
		Completed:        ch.Completed,
		BonusXP:          ch.BonusXP,
	}, nil
}

// sample picks up to n random tasks without repetition.
func sample(pool []*store.Task, n int) []*store.Task {
	if len(pool) <= n {
		return slices.Clone(pool)
	}
	idx := rand.Perm(len(pool))[:n]
	out := make([]*store.Task, n)
	for i, j := range idx {
		out[i] = pool[j]
	}
	return out
}

func containsTask(pool []*store.Task, id uuid.UUID) bool {
	for _, t := range pool {
		if t.ID == id {
			return true
		}
	}
	return false
}

func userGrade(u *store.User) int {
	if u.Grade != nil {
		return *u.Grade
	}
	return 5
}
