package challenge

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/progression"
	"github.com/mathevilla/server/internal/store"
)

type fakeTasks struct {
	tasks map[uuid.UUID]*store.Task
}

func (f *fakeTasks) add(t *store.Task) *store.Task {
	if f.tasks == nil {
		f.tasks = map[uuid.UUID]*store.Task{}
	}
	f.tasks[t.ID] = t
	return t
}

func (f *fakeTasks) Create(_ context.Context, t *store.Task) error { f.add(t); return nil }

func (f *fakeTasks) CreateBulk(_ context.Context, ts []*store.Task) (int, error) {
	for _, t := range ts {
		f.add(t)
	}
	return len(ts), nil
}

func (f *fakeTasks) ByID(_ context.Context, id uuid.UUID) (*store.Task, error) {
	t, ok := f.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return t, nil
}

func (f *fakeTasks) List(_ context.Context, filter store.TaskFilter) ([]*store.Task, error) {
	var out []*store.Task
	for _, t := range f.tasks {
		if filter.Grade != 0 && t.Grade != filter.Grade {
			continue
		}
		if filter.Topic != "" && t.Topic != filter.Topic {
			continue
		}
		if filter.Difficulty != "" && t.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, t)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeTasks) Update(_ context.Context, _ *store.Task) error { return nil }
func (f *fakeTasks) Delete(_ context.Context, _ uuid.UUID) error   { return nil }
func (f *fakeTasks) Count(_ context.Context) (int, error)          { return len(f.tasks), nil }

type challengeKey struct {
	user         uuid.UUID
	kind, bucket string
}

type fakeChallenges struct {
	rows map[challengeKey]*store.Challenge
}

func (f *fakeChallenges) Get(_ context.Context, userID uuid.UUID, kind, bucket string) (*store.Challenge, error) {
	ch, ok := f.rows[challengeKey{userID, kind, bucket}]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *ch
	return &cp, nil
}

func (f *fakeChallenges) Create(_ context.Context, c *store.Challenge) error {
	if f.rows == nil {
		f.rows = map[challengeKey]*store.Challenge{}
	}
	key := challengeKey{c.UserID, c.Kind, c.Bucket}
	if existing, ok := f.rows[key]; ok {
		*c = *existing
		return nil
	}
	c.ID = uuid.New()
	cp := *c
	f.rows[key] = &cp
	return nil
}

func (f *fakeChallenges) SetProgress(_ context.Context, id uuid.UUID, completedTaskIDs []string, completed bool) error {
	for _, ch := range f.rows {
		if ch.ID == id {
			ch.CompletedTaskIDs = completedTaskIDs
			ch.Completed = completed
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeUsers struct {
	users map[uuid.UUID]*store.User
}

func (f *fakeUsers) Create(_ context.Context, u *store.User) error {
	if f.users == nil {
		f.users = map[uuid.UUID]*store.User{}
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeUsers) ByID(_ context.Context, id uuid.UUID) (*store.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *u
	cp.Badges = slices.Clone(u.Badges)
	return &cp, nil
}

func (f *fakeUsers) ByEmail(_ context.Context, _ string) (*store.User, error) {
	return nil, store.ErrNotFound
}

func (f *fakeUsers) CreditXP(_ context.Context, id uuid.UUID, amount int) (int, int, error) {
	u, ok := f.users[id]
	if !ok {
		return 0, 0, store.ErrNotFound
	}
	u.XP += amount
	u.Level = u.XP/100 + 1
	return u.XP, u.Level, nil
}

func (f *fakeUsers) AddBadges(_ context.Context, id uuid.UUID, badges []string) ([]string, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	var added []string
	for _, b := range badges {
		if !slices.Contains(u.Badges, b) {
			u.Badges = append(u.Badges, b)
			added = append(added, b)
		}
	}
	return added, nil
}

func (f *fakeUsers) UpdateGrade(_ context.Context, _ uuid.UUID, _ int) error       { return nil }
func (f *fakeUsers) UpdatePassword(_ context.Context, _ uuid.UUID, _ string) error { return nil }
func (f *fakeUsers) SetFeatures(_ context.Context, _ uuid.UUID, _ map[string]bool) error {
	return nil
}
func (f *fakeUsers) ListStudents(_ context.Context, _ int) ([]*store.User, error) { return nil, nil }
func (f *fakeUsers) Count(_ context.Context) (int, error)                         { return len(f.users), nil }

type fakeSubs struct {
	users *fakeUsers
	rows  []*store.Submission
}

func (f *fakeSubs) Append(_ context.Context, s *store.Submission) error {
	f.rows = append(f.rows, s)
	if s.Correct && s.Mode == "normal" {
		if u, ok := f.users.users[s.UserID]; ok {
			u.CorrectCount++
		}
	}
	return nil
}

func (f *fakeSubs) Recent(_ context.Context, _ uuid.UUID, _ int) ([]*store.Submission, error) {
	return nil, nil
}

func (f *fakeSubs) TopicStats(_ context.Context, _ uuid.UUID) ([]store.TopicStat, error) {
	return nil, nil
}

func (f *fakeSubs) CorrectByTopic(_ context.Context, _ uuid.UUID) (map[string]int, error) {
	return map[string]int{}, nil
}

func (f *fakeSubs) Since(_ context.Context, _ uuid.UUID, _ time.Time) ([]*store.Submission, error) {
	return nil, nil
}

func (f *fakeSubs) GlobalTopicErrors(_ context.Context, _ int) ([]store.TopicStat, error) {
	return nil, nil
}

func (f *fakeSubs) GlobalStats(_ context.Context) (*store.GlobalStats, error) {
	return &store.GlobalStats{}, nil
}

type harness struct {
	sched *Scheduler
	tasks *fakeTasks
	chals *fakeChallenges
	users *fakeUsers
	user  *store.User
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	grade := 7
	user := &store.User{
		ID:     uuid.New(),
		Email:  "kid@example.com",
		Name:   "Kid",
		Role:   "student",
		Grade:  &grade,
		Level:  1,
		Badges: []string{},
	}
	users := &fakeUsers{}
	users.Create(context.Background(), user)
	subs := &fakeSubs{users: users}
	tasks := &fakeTasks{}
	chals := &fakeChallenges{}
	ledger := progression.NewLedger(users, subs, curriculum.Default(), nil)
	sched := NewScheduler(tasks, chals, users, ledger, nil)
	sched.now = func() time.Time {
		return time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC) // a Wednesday
	}
	return &harness{sched: sched, tasks: tasks, chals: chals, users: users, user: user}
}

func (h *harness) seedTasks(n int, grade int, difficulty string) []*store.Task {
	out := make([]*store.Task, n)
	for i := range out {
		out[i] = h.tasks.add(&store.Task{
			ID:            uuid.New(),
			Grade:         grade,
			Topic:         "Prozentrechnung",
			Question:      "q",
			Type:          "text_input",
			CorrectAnswer: "42",
			Explanation:   "e",
			XPReward:      10,
			Difficulty:    difficulty,
		})
	}
	return out
}

func TestBuckets(t *testing.T) {
	tests := []struct {
		at     time.Time
		daily  string
		weekly string
	}{
		// Monday starts a new ISO week.
		{time.Date(2026, 8, 23, 23, 59, 0, 0, time.UTC), "2026-08-23", "2026-W34"}, // Sunday
		{time.Date(2026, 8, 24, 0, 1, 0, 0, time.UTC), "2026-08-24", "2026-W35"},   // Monday
		{time.Date(2026, 8, 26, 12, 0, 0, 0, time.UTC), "2026-08-26", "2026-W35"},
		// Early January can belong to the previous ISO year.
		{time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), "2027-01-01", "2026-W53"},
	}
	for _, tt := range tests {
		if got := DailyBucket(tt.at); got != tt.daily {
			t.Errorf("DailyBucket(%v) = %q, want %q", tt.at, got, tt.daily)
		}
		if got := WeeklyBucket(tt.at); got != tt.weekly {
			t.Errorf("WeeklyBucket(%v) = %q, want %q", tt.at, got, tt.weekly)
		}
	}
}

func TestDailySamePeriodSameSet(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(12, 7, "mittel")
	ctx := context.Background()

	first, err := h.sched.Daily(ctx, h.user)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if len(first.Tasks) != 5 {
		t.Fatalf("tasks = %d, want 5", len(first.Tasks))
	}
	if first.BonusXP != 50 {
		t.Errorf("bonus = %d, want 50", first.BonusXP)
	}

	second, err := h.sched.Daily(ctx, h.user)
	if err != nil {
		t.Fatalf("daily again: %v", err)
	}
	if second.ID != first.ID {
		t.Error("same bucket must return the same challenge")
	}
	ids := func(v *View) []string {
		out := make([]string, len(v.Tasks))
		for i, task := range v.Tasks {
			out[i] = task.ID.String()
		}
		return out
	}
	if !slices.Equal(ids(first), ids(second)) {
		t.Error("task set changed within the period")
	}
}

func TestDailyFallsBackToGlobalPool(t *testing.T) {
	h := newHarness(t)
	// Only 2 tasks in the user's grade, plenty elsewhere.
	h.seedTasks(2, 7, "mittel")
	h.seedTasks(10, 5, "leicht")

	v, err := h.sched.Daily(context.Background(), h.user)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if len(v.Tasks) != 5 {
		t.Errorf("tasks = %d, want 5 from the global fallback", len(v.Tasks))
	}
}

func TestDailySmallBankAssignsWhatExists(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(3, 7, "mittel")

	v, err := h.sched.Daily(context.Background(), h.user)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	if len(v.Tasks) != 3 {
		t.Errorf("tasks = %d, want all 3 available", len(v.Tasks))
	}
}

func TestSubmitDailyBonusExactlyOnce(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(5, 7, "mittel")
	ctx := context.Background()

	v, err := h.sched.Daily(ctx, h.user)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}

	var last *DailyOutcome
	for i, task := range v.Tasks {
		last, err = h.sched.SubmitDaily(ctx, h.user, v.ID, task.ID, "42")
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if !last.Correct {
			t.Fatalf("submit %d marked wrong", i)
		}
		wantDone := i == len(v.Tasks)-1
		if last.ChallengeCompleted != wantDone {
			t.Errorf("submit %d completed = %v", i, last.ChallengeCompleted)
		}
	}
	if !last.BonusAwarded {
		t.Error("final submission should award the bonus")
	}

	// 5 tasks × 10 XP + 50 bonus.
	if xp := h.users.users[h.user.ID].XP; xp != 100 {
		t.Errorf("xp = %d, want 100", xp)
	}

	// Re-submitting a task of the finished challenge pays no second bonus.
	again, err := h.sched.SubmitDaily(ctx, h.user, v.ID, v.Tasks[0].ID, "42")
	if err != nil {
		t.Fatalf("resubmit: %v", err)
	}
	if again.BonusAwarded {
		t.Error("bonus awarded twice")
	}
}

func TestSubmitDailyWrongChallengeID(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(5, 7, "mittel")
	ctx := context.Background()

	v, err := h.sched.Daily(ctx, h.user)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}
	_, err = h.sched.SubmitDaily(ctx, h.user, uuid.New(), v.Tasks[0].ID, "42")
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestWeeklyPrefersMittel(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(8, 7, "mittel")
	h.seedTasks(8, 7, "schwer")

	v, err := h.sched.Weekly(context.Background(), h.user)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(v.Tasks) != 5 {
		t.Fatalf("tasks = %d, want 5", len(v.Tasks))
	}
	if v.BonusXP != 100 {
		t.Errorf("bonus = %d, want 100", v.BonusXP)
	}
	for _, task := range v.Tasks {
		if task.Difficulty != "mittel" {
			t.Errorf("task difficulty = %q, want mittel", task.Difficulty)
		}
	}
}

func TestWeeklyPadsFromGradePool(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(2, 7, "mittel")
	h.seedTasks(6, 7, "leicht")

	v, err := h.sched.Weekly(context.Background(), h.user)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if len(v.Tasks) != 5 {
		t.Errorf("tasks = %d, want 5 after padding", len(v.Tasks))
	}
}

func TestSubmitWeeklyCompletion(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(5, 7, "mittel")
	ctx := context.Background()

	v, err := h.sched.Weekly(ctx, h.user)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}

	for i, task := range v.Tasks {
		out, err := h.sched.SubmitWeekly(ctx, h.user, task.ID, "42")
		if err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if !out.Correct {
			t.Fatalf("submit %d marked wrong", i)
		}
	}

	u := h.users.users[h.user.ID]
	// Weekly tasks award no per-task XP, only the completion bonus.
	if u.XP != 100 {
		t.Errorf("xp = %d, want the 100 bonus only", u.XP)
	}
	if !slices.Contains(u.Badges, "wochen_champion") {
		t.Errorf("badges = %v, want wochen_champion", u.Badges)
	}

	// A completed weekly challenge rejects further submissions.
	_, err = h.sched.SubmitWeekly(ctx, h.user, v.Tasks[0].ID, "42")
	if !errors.Is(err, ErrAlreadyCompleted) {
		t.Errorf("err = %v, want ErrAlreadyCompleted", err)
	}
}

func TestSubmitWeeklyWrongAnswerNoProgress(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(5, 7, "mittel")
	ctx := context.Background()

	v, err := h.sched.Weekly(ctx, h.user)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	out, err := h.sched.SubmitWeekly(ctx, h.user, v.Tasks[0].ID, "wrong")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if out.Correct {
		t.Error("wrong answer marked correct")
	}
	if out.Progress != "0/5" {
		t.Errorf("progress = %q, want 0/5", out.Progress)
	}
	if out.CorrectAnswer != "42" {
		t.Errorf("feedback missing: %+v", out)
	}
}

func TestSubmitWeeklyDuplicateTaskCountsOnce(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(5, 7, "mittel")
	ctx := context.Background()

	v, err := h.sched.Weekly(ctx, h.user)
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	for i := 0; i < 2; i++ {
		if _, err := h.sched.SubmitWeekly(ctx, h.user, v.Tasks[0].ID, "42"); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	out, err := h.sched.SubmitWeekly(ctx, h.user, v.Tasks[1].ID, "42")
	if err != nil {
		t.Fatalf("submit next: %v", err)
	}
	if out.Progress != "2/5" {
		t.Errorf("progress = %q, want 2/5", out.Progress)
	}
}

func TestNewPeriodNewChallenge(t *testing.T) {
	h := newHarness(t)
	h.seedTasks(12, 7, "mittel")
	ctx := context.Background()

	first, err := h.sched.Daily(ctx, h.user)
	if err != nil {
		t.Fatalf("daily: %v", err)
	}

	h.sched.now = func() time.Time {
		return time.Date(2026, 8, 27, 0, 1, 0, 0, time.UTC)
	}
	next, err := h.sched.Daily(ctx, h.user)
	if err != nil {
		t.Fatalf("daily next period: %v", err)
	}
	if next.ID == first.ID {
		t.Error("new period must create a new challenge")
	}
}
