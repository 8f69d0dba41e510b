// Package progression maintains the gamification state: XP, levels,
// the lifetime correct counter, and badges.
package progression

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/evaluate"
	"github.com/mathevilla/server/internal/store"
)

// Milestone badges awarded in the submission flow, by lifetime correct
// count. Ordered ascending.
var milestones = []struct {
	count int
	badge string
}{
	{10, "Anfänger"},
	{50, "Fortgeschritten"},
	{100, "Experte"},
	{500, "Mathe-Meister"},
}

// SubmitResult is the outcome of recording one answer.
type SubmitResult struct {
	Correct       bool     `json:"is_correct"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	XPEarned      int      `json:"xp_earned"`
	LevelUp       bool     `json:"level_up"`
	NewBadges     []string `json:"new_badges"`
}

// BadgeCheckResult is the outcome of a performance badge sweep.
type BadgeCheckResult struct {
	CurrentBadges []string                    `json:"current_badges"`
	NewBadges     []string                    `json:"new_badges"`
	BadgeDetails  map[string]curriculum.Badge `json:"badge_details"`
}

// Ledger applies answer outcomes to a user's gamification state.
type Ledger struct {
	users   store.UserRepo
	subs    store.SubmissionRepo
	catalog *curriculum.Catalog
	logger  *slog.Logger
}

// NewLedger creates a Ledger over the given repositories.
func NewLedger(users store.UserRepo, subs store.SubmissionRepo, catalog *curriculum.Catalog, logger *slog.Logger) *Ledger {
	if logger == nil {
		logger = slog.Default()
	}
	return &Ledger{users: users, subs: subs, catalog: catalog, logger: logger}
}

// RecordAnswer evaluates the answer, appends the submission, and, for
// correct non-practice answers, credits XP and awards any milestone
// badges crossed. Practice answers are recorded but never move XP,
// level, counter, or badges.
func (l *Ledger) RecordAnswer(ctx context.Context, user *store.User, task *store.Task, answer, mode string) (*SubmitResult, error) {
	eval := evaluate.Check(answer, task.CorrectAnswer, task.Explanation)

	sub := &store.Submission{
		UserID:  user.ID,
		TaskID:  task.ID,
		Grade:   task.Grade,
		Topic:   task.Topic,
		Answer:  answer,
		Correct: eval.Correct,
		Mode:    mode,
	}
	if err := l.subs.Append(ctx, sub); err != nil {
		return nil, fmt.Errorf("record submission: %w", err)
	}

	res := &SubmitResult{
		Correct:       eval.Correct,
		CorrectAnswer: eval.CorrectAnswer,
		Explanation:   eval.Explanation,
		NewBadges:     []string{},
	}
	if !eval.Correct || mode != "normal" {
		return res, nil
	}

	_, level, err := l.users.CreditXP(ctx, user.ID, task.XPReward)
	if err != nil {
		return nil, fmt.Errorf("credit xp: %w", err)
	}
	res.XPEarned = task.XPReward
	res.LevelUp = level > user.Level

	// Append already bumped the counter in its own tx.
	correctCount := user.CorrectCount + 1
	var earned []string
	for _, m := range milestones {
		if correctCount >= m.count {
			earned = append(earned, m.badge)
		}
	}
	if len(earned) > 0 {
		added, err := l.users.AddBadges(ctx, user.ID, earned)
		if err != nil {
			return nil, fmt.Errorf("award milestone badges: %w", err)
		}
		if len(added) > 0 {
			res.NewBadges = added
			l.logger.Info("milestone badges awarded",
				"user", user.ID, "badges", added, "correct_count", correctCount)
		}
	}

	return res, nil
}

// Award grants a single badge outside the submission flow (e.g. the
// weekly challenge champion badge). Granting a held badge is a no-op.
func (l *Ledger) Award(ctx context.Context, userID uuid.UUID, badge string) error {
	_, err := l.users.AddBadges(ctx, userID, []string{badge})
	return err
}

// CheckBadges runs the performance badge sweep: topic-keyword badges
// and total-volume badges, computed from correct answer counts. This is
// a separate path from the milestone badges in RecordAnswer; clients
// call it from the badge overview page.
func (l *Ledger) CheckBadges(ctx context.Context, user *store.User) (*BadgeCheckResult, error) {
	byTopic, err := l.subs.CorrectByTopic(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("badge check aggregates: %w", err)
	}

	totalCorrect := 0
	for _, n := range byTopic {
		totalCorrect += n
	}

	keywordCount := func(keywords ...string) int {
		n := 0
		for topic, c := range byTopic {
			for _, kw := range keywords {
				if strings.Contains(topic, kw) {
					n += c
					break
				}
			}
		}
		return n
	}

	bruch := keywordCount("Bruch")
	geo := keywordCount("Geometrie", "Fläche")
	checks := []struct {
		id     string
		earned bool
	}{
		{"bruche_starter", bruch >= 5},
		{"bruche_profi", bruch >= 20},
		{"geometrie_starter", geo >= 5},
		{"geometrie_profi", geo >= 20},
		{"prozent_meister", keywordCount("Prozent") >= 15},
		{"gleichungs_held", keywordCount("Gleichung") >= 10},
		{"fleissige_biene", totalCorrect >= 50},
		{"mathe_marathon", totalCorrect >= 100},
	}

	var earned []string
	for _, c := range checks {
		if c.earned {
			earned = append(earned, c.id)
		}
	}

	var added []string
	if len(earned) > 0 {
		added, err = l.users.AddBadges(ctx, user.ID, earned)
		if err != nil {
			return nil, fmt.Errorf("award performance badges: %w", err)
		}
	}

	current, err := l.users.ByID(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}

	res := &BadgeCheckResult{
		CurrentBadges: current.Badges,
		NewBadges:     added,
		BadgeDetails:  map[string]curriculum.Badge{},
	}
	if res.NewBadges == nil {
		res.NewBadges = []string{}
	}
	for _, id := range current.Badges {
		if b, ok := l.catalog.Badge(id); ok {
			res.BadgeDetails[id] = b
		}
	}
	return res, nil
}
