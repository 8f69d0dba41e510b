package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedUser(t *testing.T, s *Store, email string) *User {
	t.Helper()
	grade := 5
	u := &User{
		Email:        email,
		PasswordHash: "x",
		Name:         "Test User",
		Role:         "student",
		Grade:        &grade,
		Level:        1,
		Badges:       []string{},
	}
	if err := s.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedTask(t *testing.T, s *Store, grade int, topic string) *Task {
	t.Helper()
	task := &Task{
		Grade:         grade,
		Topic:         topic,
		Question:      "2 + 2 = ?",
		Type:          "text_input",
		CorrectAnswer: "4",
		XPReward:      10,
		Difficulty:    "leicht",
	}
	if err := s.Tasks().Create(context.Background(), task); err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestUserCreateDuplicateEmail(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "anna@example.com")

	dup := &User{Email: "anna@example.com", PasswordHash: "x", Name: "Other", Role: "student", Level: 1, Badges: []string{}}
	if err := s.Users().Create(ctx, dup); err != ErrEmailTaken {
		t.Fatalf("duplicate create err = %v, want ErrEmailTaken", err)
	}
}

func TestUserByEmailNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.Users().ByEmail(context.Background(), "ghost@example.com"); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCreditXPRecomputesLevel(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "levelup@example.com")

	tests := []struct {
		amount    int
		wantXP    int
		wantLevel int
	}{
		{30, 30, 1},
		{60, 90, 1},
		{10, 100, 2}, // crosses the 100 XP boundary
		{250, 350, 4},
	}
	for _, tt := range tests {
		xp, level, err := s.Users().CreditXP(ctx, u.ID, tt.amount)
		if err != nil {
			t.Fatalf("credit %d: %v", tt.amount, err)
		}
		if xp != tt.wantXP || level != tt.wantLevel {
			t.Errorf("after +%d: xp=%d level=%d, want xp=%d level=%d",
				tt.amount, xp, level, tt.wantXP, tt.wantLevel)
		}
	}

	// The stored row matches what RETURNING reported.
	got, err := s.Users().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.XP != 350 || got.Level != 4 {
		t.Errorf("stored xp=%d level=%d, want 350/4", got.XP, got.Level)
	}
}

func TestCreditXPUnknownUser(t *testing.T) {
	s := openTestStore(t)
	if _, _, err := s.Users().CreditXP(context.Background(), uuid.New(), 10); err != ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestAddBadgesSkipsHeld(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "badges@example.com")

	added, err := s.Users().AddBadges(ctx, u.ID, []string{"Anfänger", "Fortgeschritten"})
	if err != nil {
		t.Fatalf("add badges: %v", err)
	}
	if len(added) != 2 {
		t.Fatalf("added = %v, want 2 badges", added)
	}

	// Re-awarding is a no-op for held badges.
	added, err = s.Users().AddBadges(ctx, u.ID, []string{"Anfänger", "Experte"})
	if err != nil {
		t.Fatalf("add badges again: %v", err)
	}
	if len(added) != 1 || added[0] != "Experte" {
		t.Fatalf("added = %v, want [Experte]", added)
	}

	got, err := s.Users().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(got.Badges) != 3 {
		t.Errorf("badges = %v, want 3 entries", got.Badges)
	}
}

func TestSubmissionAppendBumpsCorrectCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "counter@example.com")
	task := seedTask(t, s, 5, "Brüche")

	subs := []struct {
		correct bool
		mode    string
	}{
		{true, "normal"},
		{false, "normal"},
		{true, "practice"}, // practice never moves the counter
		{true, "normal"},
	}
	for i, in := range subs {
		err := s.Submissions().Append(ctx, &Submission{
			UserID:  u.ID,
			TaskID:  task.ID,
			Grade:   5,
			Topic:   task.Topic,
			Answer:  "4",
			Correct: in.correct,
			Mode:    in.mode,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	got, err := s.Users().ByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got.CorrectCount != 2 {
		t.Errorf("correct_count = %d, want 2", got.CorrectCount)
	}
}

func TestTopicStatsExcludesPractice(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "stats@example.com")
	task := seedTask(t, s, 5, "Brüche")

	for _, in := range []struct {
		correct bool
		mode    string
	}{
		{true, "normal"}, {false, "normal"}, {true, "normal"}, {true, "practice"},
	} {
		if err := s.Submissions().Append(ctx, &Submission{
			UserID: u.ID, TaskID: task.ID, Grade: 5, Topic: "Brüche",
			Answer: "4", Correct: in.correct, Mode: in.mode,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := s.Submissions().TopicStats(ctx, u.ID)
	if err != nil {
		t.Fatalf("topic stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stats = %+v, want one topic", stats)
	}
	if stats[0].Attempts != 3 || stats[0].Correct != 2 {
		t.Errorf("Brüche = %d/%d, want 2/3", stats[0].Correct, stats[0].Attempts)
	}
}

func TestChallengeUniquePerBucket(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "challenge@example.com")

	first := &Challenge{
		UserID:           u.ID,
		Kind:             "daily",
		Bucket:           "2026-08-29",
		TaskIDs:          []string{"a", "b"},
		CompletedTaskIDs: []string{},
		BonusXP:          50,
	}
	if err := s.Challenges().Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}

	// A second create for the same bucket yields the existing row.
	second := &Challenge{
		UserID:           u.ID,
		Kind:             "daily",
		Bucket:           "2026-08-29",
		TaskIDs:          []string{"c"},
		CompletedTaskIDs: []string{},
		BonusXP:          50,
	}
	if err := s.Challenges().Create(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("second.ID = %s, want %s", second.ID, first.ID)
	}
	if len(second.TaskIDs) != 2 {
		t.Errorf("task ids = %v, want the winner's set", second.TaskIDs)
	}

	// A different bucket creates a fresh row.
	other := &Challenge{
		UserID: u.ID, Kind: "daily", Bucket: "2026-08-30",
		TaskIDs: []string{"c"}, CompletedTaskIDs: []string{}, BonusXP: 50,
	}
	if err := s.Challenges().Create(ctx, other); err != nil {
		t.Fatalf("create other bucket: %v", err)
	}
	if other.ID == first.ID {
		t.Error("expected distinct challenge for new bucket")
	}
}

func TestPasswordResetLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	u := seedUser(t, s, "reset@example.com")

	pr := &PasswordReset{
		Token:     "tok-123",
		UserID:    u.ID,
		Email:     u.Email,
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := s.PasswordResets().Create(ctx, pr); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.PasswordResets().ByToken(ctx, "tok-123")
	if err != nil {
		t.Fatalf("by token: %v", err)
	}
	if got.Used {
		t.Error("new token should be unused")
	}

	if err := s.PasswordResets().MarkUsed(ctx, got.ID); err != nil {
		t.Fatalf("mark used: %v", err)
	}
	got, err = s.PasswordResets().ByToken(ctx, "tok-123")
	if err != nil {
		t.Fatalf("by token after use: %v", err)
	}
	if !got.Used {
		t.Error("token should be marked used")
	}
}

func TestTaskListFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedTask(t, s, 5, "Brüche")
	seedTask(t, s, 5, "Geometrie")
	seedTask(t, s, 6, "Brüche")

	tasks, err := s.Tasks().List(ctx, TaskFilter{Grade: 5, Topic: "Brüche"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("len = %d, want 1", len(tasks))
	}
	if tasks[0].Grade != 5 || tasks[0].Topic != "Brüche" {
		t.Errorf("got %+v", tasks[0])
	}

	all, err := s.Tasks().List(ctx, TaskFilter{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("len = %d, want 3", len(all))
	}
}
