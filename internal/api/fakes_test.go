package api

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/mathevilla/server/internal/store"
)

type fakeUsers struct {
	users map[uuid.UUID]*store.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: map[uuid.UUID]*store.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *store.User) error {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return store.ErrEmailTaken
		}
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
	return &cp, nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*store.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
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
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Grade = &grade
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUsers) SetFeatures(_ context.Context, id uuid.UUID, features map[string]bool) error {
	u, ok := f.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Features = features
	return nil
}

func (f *fakeUsers) ListStudents(_ context.Context, grade int) ([]*store.User, error) {
	var out []*store.User
	for _, u := range f.users {
		if u.Role != "student" {
			continue
		}
		if grade != 0 && (u.Grade == nil || *u.Grade != grade) {
			continue
		}
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeUsers) Count(_ context.Context) (int, error) { return len(f.users), nil }

type fakeTasks struct {
	tasks map[uuid.UUID]*store.Task
}

func newFakeTasks() *fakeTasks {
	return &fakeTasks{tasks: map[uuid.UUID]*store.Task{}}
}

func (f *fakeTasks) Create(_ context.Context, t *store.Task) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTasks) CreateBulk(ctx context.Context, ts []*store.Task) (int, error) {
	for _, t := range ts {
		f.Create(ctx, t)
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
		if filter.Curriculum != "" && t.Curriculum != filter.Curriculum {
			continue
		}
		out = append(out, t)
		if filter.Limit > 0 && len(out) == filter.Limit {
			break
		}
	}
	return out, nil
}

func (f *fakeTasks) Update(_ context.Context, t *store.Task) error {
	if _, ok := f.tasks[t.ID]; !ok {
		return store.ErrNotFound
	}
	f.tasks[t.ID] = t
	return nil
}

func (f *fakeTasks) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.tasks[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.tasks, id)
	return nil
}

func (f *fakeTasks) Count(_ context.Context) (int, error) { return len(f.tasks), nil }

type fakeSubs struct {
	users *fakeUsers
	rows  []*store.Submission
}

func (f *fakeSubs) Append(_ context.Context, s *store.Submission) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	f.rows = append(f.rows, s)
	if s.Correct && s.Mode == "normal" {
		if u, ok := f.users.users[s.UserID]; ok {
			u.CorrectCount++
		}
	}
	return nil
}

func (f *fakeSubs) normal(userID uuid.UUID) []*store.Submission {
	var out []*store.Submission
	for _, s := range f.rows {
		if s.UserID == userID && s.Mode == "normal" {
			out = append(out, s)
		}
	}
	return out
}

func (f *fakeSubs) Recent(_ context.Context, userID uuid.UUID, limit int) ([]*store.Submission, error) {
	rows := f.normal(userID)
	slices.Reverse(rows)
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

func (f *fakeSubs) TopicStats(_ context.Context, userID uuid.UUID) ([]store.TopicStat, error) {
	byTopic := map[string]*store.TopicStat{}
	var order []string
	for _, s := range f.normal(userID) {
		ts, ok := byTopic[s.Topic]
		if !ok {
			ts = &store.TopicStat{Topic: s.Topic}
			byTopic[s.Topic] = ts
			order = append(order, s.Topic)
		}
		ts.Attempts++
		if s.Correct {
			ts.Correct++
		}
	}
	out := make([]store.TopicStat, len(order))
	for i, topic := range order {
		out[i] = *byTopic[topic]
	}
	return out, nil
}

func (f *fakeSubs) CorrectByTopic(_ context.Context, userID uuid.UUID) (map[string]int, error) {
	out := map[string]int{}
	for _, s := range f.normal(userID) {
		if s.Correct {
			out[s.Topic]++
		}
	}
	return out, nil
}

func (f *fakeSubs) Since(_ context.Context, userID uuid.UUID, t time.Time) ([]*store.Submission, error) {
	var out []*store.Submission
	for _, s := range f.normal(userID) {
		if !s.CreatedAt.Before(t) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (f *fakeSubs) GlobalTopicErrors(_ context.Context, limit int) ([]store.TopicStat, error) {
	byTopic := map[string]*store.TopicStat{}
	for _, s := range f.rows {
		if s.Mode != "normal" {
			continue
		}
		ts, ok := byTopic[s.Topic]
		if !ok {
			ts = &store.TopicStat{Topic: s.Topic}
			byTopic[s.Topic] = ts
		}
		ts.Attempts++
		if s.Correct {
			ts.Correct++
		}
	}
	var out []store.TopicStat
	for _, ts := range byTopic {
		out = append(out, *ts)
	}
	slices.SortFunc(out, func(a, b store.TopicStat) int {
		switch {
		case a.Rate() < b.Rate():
			return -1
		case a.Rate() > b.Rate():
			return 1
		default:
			return 0
		}
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeSubs) GlobalStats(_ context.Context) (*store.GlobalStats, error) {
	stats := &store.GlobalStats{TotalUsers: len(f.users.users)}
	correct := 0
	for _, s := range f.rows {
		if s.Mode != "normal" {
			continue
		}
		stats.TotalSubmissions++
		if s.Correct {
			correct++
		}
	}
	if stats.TotalSubmissions > 0 {
		stats.CorrectRate = float64(correct) / float64(stats.TotalSubmissions)
	}
	return stats, nil
}

type challengeKey struct {
	user         uuid.UUID
	kind, bucket string
}

type fakeChallenges struct {
	rows map[challengeKey]*store.Challenge
}

func newFakeChallenges() *fakeChallenges {
	return &fakeChallenges{rows: map[challengeKey]*store.Challenge{}}
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

type fakeResets struct {
	rows map[string]*store.PasswordReset
}

func newFakeResets() *fakeResets {
	return &fakeResets{rows: map[string]*store.PasswordReset{}}
}

func (f *fakeResets) Create(_ context.Context, r *store.PasswordReset) error {
	f.rows[r.Token] = r
	return nil
}

func (f *fakeResets) ByToken(_ context.Context, token string) (*store.PasswordReset, error) {
	r, ok := f.rows[token]
	if !ok {
		return nil, store.ErrNotFound
	}
	return r, nil
}

func (f *fakeResets) MarkUsed(_ context.Context, id uuid.UUID) error {
	for _, r := range f.rows {
		if r.ID == id {
			r.Used = true
			return nil
		}
	}
	return store.ErrNotFound
}

type fakeAssignments struct {
	rows []*store.Assignment
}

func (f *fakeAssignments) Create(_ context.Context, a *store.Assignment) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	a.CreatedAt = time.Now().UTC()
	f.rows = append(f.rows, a)
	return nil
}

func (f *fakeAssignments) ByGrade(_ context.Context, grade int) ([]*store.Assignment, error) {
	var out []*store.Assignment
	for _, a := range f.rows {
		if grade == 0 || a.Grade == grade {
			out = append(out, a)
		}
	}
	return out, nil
}
