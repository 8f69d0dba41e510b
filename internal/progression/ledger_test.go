package progression

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

// fakeUsers implements store.UserRepo in memory.
type fakeUsers struct {
	users map[uuid.UUID]*store.User
}

func newFakeUsers(us ...*store.User) *fakeUsers {
	f := &fakeUsers{users: map[uuid.UUID]*store.User{}}
	for _, u := range us {
		f.put(u)
	}
	return f
}

// put keeps a detached copy, matching the real repo: mutations on the
// caller's struct never leak in, and vice versa.
func (f *fakeUsers) put(u *store.User) {
	cp := *u
	cp.Badges = slices.Clone(u.Badges)
	f.users[u.ID] = &cp
}

func (f *fakeUsers) Create(_ context.Context, u *store.User) error {
	f.put(u)
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

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*store.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			cp.Badges = slices.Clone(u.Badges)
			return &cp, nil
		}
	}
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

func (f *fakeUsers) UpdateGrade(_ context.Context, id uuid.UUID, grade int) error {
	f.users[id].Grade = &grade
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	f.users[id].PasswordHash = hash
	return nil
}

func (f *fakeUsers) SetFeatures(_ context.Context, id uuid.UUID, features map[string]bool) error {
	f.users[id].Features = features
	return nil
}

func (f *fakeUsers) ListStudents(_ context.Context, grade int) ([]*store.User, error) {
	var out []*store.User
	for _, u := range f.users {
		if u.Role == "student" && (grade == 0 || (u.Grade != nil && *u.Grade == grade)) {
			out = append(out, u)
		}
	}
	return out, nil
}

func (f *fakeUsers) Count(_ context.Context) (int, error) { return len(f.users), nil }

// fakeSubs implements store.SubmissionRepo in memory and mirrors the
// real repo's counter bump.
type fakeSubs struct {
	users *fakeUsers
	rows  []*store.Submission
}

func (f *fakeSubs) Append(_ context.Context, sub *store.Submission) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	if sub.CreatedAt.IsZero() {
		sub.CreatedAt = time.Now()
	}
	f.rows = append(f.rows, sub)
	if sub.Correct && sub.Mode == "normal" {
		if u, ok := f.users.users[sub.UserID]; ok {
			u.CorrectCount++
		}
	}
	return nil
}

func (f *fakeSubs) Recent(_ context.Context, userID uuid.UUID, limit int) ([]*store.Submission, error) {
	var out []*store.Submission
	for i := len(f.rows) - 1; i >= 0; i-- {
		s := f.rows[i]
		if s.UserID == userID && s.Mode == "normal" {
			out = append(out, s)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (f *fakeSubs) TopicStats(_ context.Context, userID uuid.UUID) ([]store.TopicStat, error) {
	agg := map[string]*store.TopicStat{}
	var order []string
	for _, s := range f.rows {
		if s.UserID != userID || s.Mode != "normal" {
			continue
		}
		st, ok := agg[s.Topic]
		if !ok {
			st = &store.TopicStat{Topic: s.Topic}
			agg[s.Topic] = st
			order = append(order, s.Topic)
		}
		st.Attempts++
		if s.Correct {
			st.Correct++
		}
	}
	out := make([]store.TopicStat, 0, len(order))
	for _, topic := range order {
		out = append(out, *agg[topic])
	}
	return out, nil
}

func (f *fakeSubs) CorrectByTopic(_ context.Context, userID uuid.UUID) (map[string]int, error) {
	out := map[string]int{}
	for _, s := range f.rows {
		if s.UserID == userID && s.Mode == "normal" && s.Correct {
			out[s.Topic]++
		}
	}
	return out, nil
}

func (f *fakeSubs) Since(_ context.Context, userID uuid.UUID, t time.Time) ([]*store.Submission, error) {
	var out []*store.Submission
	for _, s := range f.rows {
		if s.UserID == userID && s.Mode == "normal" && !s.CreatedAt.Before(t) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) GlobalTopicErrors(_ context.Context, limit int) ([]store.TopicStat, error) {
	return nil, nil
}

func (f *fakeSubs) GlobalStats(_ context.Context) (*store.GlobalStats, error) {
	return &store.GlobalStats{TotalSubmissions: len(f.rows)}, nil
}

func testUser(grade int) *store.User {
	return &store.User{
		ID:     uuid.New(),
		Email:  "kid@example.com",
		Name:   "Kid",
		Role:   "student",
		Grade:  &grade,
		XP:     0,
		Level:  1,
		Badges: []string{},
	}
}

func testTask(topic string, xp int) *store.Task {
	return &store.Task{
		ID:            uuid.New(),
		Grade:         5,
		Topic:         topic,
		Question:      "2+2?",
		Type:          "text_input",
		CorrectAnswer: "4",
		Explanation:   "weil 2+2=4",
		XPReward:      xp,
		Difficulty:    "leicht",
	}
}

func newTestLedger(u *store.User) (*Ledger, *fakeUsers, *fakeSubs) {
	users := newFakeUsers(u)
	subs := &fakeSubs{users: users}
	return NewLedger(users, subs, curriculum.Default(), nil), users, subs
}

func TestRecordAnswerCorrect(t *testing.T) {
	u := testUser(5)
	ledger, users, subs := newTestLedger(u)

	res, err := ledger.RecordAnswer(context.Background(), u, testTask("Brüche einführen", 15), "4", "normal")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !res.Correct {
		t.Error("expected correct")
	}
	if res.XPEarned != 15 {
		t.Errorf("xp earned = %d, want 15", res.XPEarned)
	}
	if res.LevelUp {
		t.Error("no level up at 15 XP")
	}
	if got := users.users[u.ID]; got.XP != 15 || got.CorrectCount != 1 {
		t.Errorf("stored xp=%d correct=%d", got.XP, got.CorrectCount)
	}
	if len(subs.rows) != 1 {
		t.Fatalf("submissions = %d, want 1", len(subs.rows))
	}
}

func TestRecordAnswerWrongAwardsNothing(t *testing.T) {
	u := testUser(5)
	ledger, users, subs := newTestLedger(u)

	res, err := ledger.RecordAnswer(context.Background(), u, testTask("Brüche einführen", 15), "5", "normal")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if res.Correct || res.XPEarned != 0 || res.LevelUp {
		t.Errorf("unexpected result %+v", res)
	}
	if res.CorrectAnswer != "4" || res.Explanation == "" {
		t.Errorf("feedback missing: %+v", res)
	}
	if got := users.users[u.ID]; got.XP != 0 || got.CorrectCount != 0 {
		t.Errorf("stored xp=%d correct=%d, want 0/0", got.XP, got.CorrectCount)
	}
	// The attempt itself is still recorded.
	if len(subs.rows) != 1 {
		t.Errorf("submissions = %d, want 1", len(subs.rows))
	}
}

func TestRecordAnswerPracticeMode(t *testing.T) {
	u := testUser(5)
	ledger, users, subs := newTestLedger(u)

	res, err := ledger.RecordAnswer(context.Background(), u, testTask("Brüche einführen", 15), "4", "practice")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !res.Correct {
		t.Error("practice answers are still evaluated")
	}
	if res.XPEarned != 0 {
		t.Errorf("xp earned = %d, want 0 in practice", res.XPEarned)
	}
	if got := users.users[u.ID]; got.XP != 0 || got.CorrectCount != 0 {
		t.Errorf("practice moved state: xp=%d correct=%d", got.XP, got.CorrectCount)
	}
	if len(subs.rows) != 1 || subs.rows[0].Mode != "practice" {
		t.Error("practice submission should be recorded as practice")
	}
}

func TestRecordAnswerLevelUp(t *testing.T) {
	u := testUser(5)
	u.XP = 95
	ledger, _, _ := newTestLedger(u)

	res, err := ledger.RecordAnswer(context.Background(), u, testTask("Brüche einführen", 10), "4", "normal")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !res.LevelUp {
		t.Error("expected level up crossing 100 XP")
	}
}

func TestRecordAnswerMilestoneBadgeOnce(t *testing.T) {
	u := testUser(5)
	u.CorrectCount = 9 // the next correct answer is number 10
	ledger, users, _ := newTestLedger(u)
	ctx := context.Background()

	res, err := ledger.RecordAnswer(ctx, u, testTask("Brüche einführen", 10), "4", "normal")
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !slices.Contains(res.NewBadges, "Anfänger") {
		t.Errorf("new badges = %v, want Anfänger", res.NewBadges)
	}

	// The next correct answer must not re-award it.
	u2, _ := users.ByID(ctx, u.ID)
	res, err = ledger.RecordAnswer(ctx, u2, testTask("Brüche einführen", 10), "4", "normal")
	if err != nil {
		t.Fatalf("record 2: %v", err)
	}
	if len(res.NewBadges) != 0 {
		t.Errorf("new badges = %v, want none", res.NewBadges)
	}
	count := 0
	for _, b := range users.users[u.ID].Badges {
		if b == "Anfänger" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("Anfänger held %d times, want exactly once", count)
	}
}

func TestCheckBadgesKeywords(t *testing.T) {
	u := testUser(6)
	ledger, _, subs := newTestLedger(u)
	ctx := context.Background()

	// 5 correct answers on topics containing the literal "Bruch",
	// 3 Geometrie. Umlaut topics ("Brüche …") do not match the keyword.
	for i := 0; i < 5; i++ {
		subs.Append(ctx, &store.Submission{UserID: u.ID, Topic: "Bruchrechnung", Correct: true, Mode: "normal"})
	}
	for i := 0; i < 2; i++ {
		subs.Append(ctx, &store.Submission{UserID: u.ID, Topic: "Brüche einführen", Correct: true, Mode: "normal"})
	}
	for i := 0; i < 3; i++ {
		subs.Append(ctx, &store.Submission{UserID: u.ID, Topic: "Geometrie Grundlagen", Correct: true, Mode: "normal"})
	}
	// Incorrect answers never count.
	subs.Append(ctx, &store.Submission{UserID: u.ID, Topic: "Geometrie Grundlagen", Correct: false, Mode: "normal"})

	res, err := ledger.CheckBadges(ctx, u)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !slices.Contains(res.NewBadges, "bruche_starter") {
		t.Errorf("new = %v, want bruche_starter", res.NewBadges)
	}
	if slices.Contains(res.NewBadges, "geometrie_starter") {
		t.Errorf("geometrie_starter needs 5 correct, have 3: %v", res.NewBadges)
	}
	if _, ok := res.BadgeDetails["bruche_starter"]; !ok {
		t.Error("badge details missing for awarded badge")
	}

	// A second sweep awards nothing new.
	res, err = ledger.CheckBadges(ctx, u)
	if err != nil {
		t.Fatalf("check 2: %v", err)
	}
	if len(res.NewBadges) != 0 {
		t.Errorf("second sweep new = %v, want none", res.NewBadges)
	}
	if !slices.Contains(res.CurrentBadges, "bruche_starter") {
		t.Errorf("current = %v", res.CurrentBadges)
	}
}

func TestCheckBadgesKeywordIsLiteral(t *testing.T) {
	u := testUser(6)
	ledger, _, subs := newTestLedger(u)
	ctx := context.Background()

	// "Brüche einführen" does not contain the substring "Bruch".
	for i := 0; i < 5; i++ {
		subs.Append(ctx, &store.Submission{UserID: u.ID, Topic: "Brüche einführen", Correct: true, Mode: "normal"})
	}

	res, err := ledger.CheckBadges(ctx, u)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if slices.Contains(res.NewBadges, "bruche_starter") {
		t.Errorf("umlaut topics must not count toward the Bruch keyword: %v", res.NewBadges)
	}
}

func TestCheckBadgesVolume(t *testing.T) {
	u := testUser(7)
	ledger, _, subs := newTestLedger(u)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		subs.Append(ctx, &store.Submission{UserID: u.ID, Topic: "Statistik", Correct: true, Mode: "normal"})
	}
	res, err := ledger.CheckBadges(ctx, u)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !slices.Contains(res.NewBadges, "fleissige_biene") {
		t.Errorf("new = %v, want fleissige_biene", res.NewBadges)
	}
	if slices.Contains(res.NewBadges, "mathe_marathon") {
		t.Errorf("mathe_marathon needs 100: %v", res.NewBadges)
	}
}
