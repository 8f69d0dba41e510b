package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// User is a registered account with its gamification state.
type User struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"`
	Name         string          `json:"name"`
	Role         string          `json:"role"`
	Grade        *int            `json:"grade"`
	XP           int             `json:"xp"`
	Level        int             `json:"level"`
	CorrectCount int             `json:"correct_count"`
	Badges       []string        `json:"badges"`
	Features     map[string]bool `json:"features,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Task is one question-bank entry.
type Task struct {
	ID            uuid.UUID `json:"id"`
	Grade         int       `json:"grade"`
	Topic         string    `json:"topic"`
	Question      string    `json:"question"`
	Type          string    `json:"task_type"`
	Options       []string  `json:"options,omitempty"`
	CorrectAnswer string    `json:"correct_answer"`
	Explanation   string    `json:"explanation"`
	XPReward      int       `json:"xp_reward"`
	Difficulty    string    `json:"difficulty"`
	Curriculum    string    `json:"curriculum,omitempty"`
	CreatedBy     string    `json:"created_by,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// Submission is one recorded answer attempt.
type Submission struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	TaskID    uuid.UUID `json:"task_id"`
	Grade     int       `json:"grade"`
	Topic     string    `json:"topic"`
	Answer    string    `json:"answer"`
	Correct   bool      `json:"is_correct"`
	Mode      string    `json:"mode"`
	CreatedAt time.Time `json:"created_at"`
}

// Challenge is a per-user daily or weekly task set.
type Challenge struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Kind             string
	Bucket           string
	TaskIDs          []string
	CompletedTaskIDs []string
	Completed        bool
	BonusXP          int
	CreatedAt        time.Time
}

// PasswordReset is a single-use reset token.
type PasswordReset struct {
	ID        uuid.UUID
	Token     string
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
	Used      bool
}

// Assignment is an admin-created task set for a grade.
type Assignment struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Grade     int       `json:"grade"`
	Topic     string    `json:"topic,omitempty"`
	TaskIDs   []string  `json:"task_ids"`
	DueAt     time.Time `json:"due_date,omitzero"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

// TopicStat aggregates a user's attempts within one topic.
type TopicStat struct {
	Topic    string `json:"topic"`
	Attempts int    `json:"total"`
	Correct  int    `json:"correct"`
}

// Rate returns the success rate, or 0 when there are no attempts.
func (s TopicStat) Rate() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}

// TaskFilter narrows task listings. Zero values mean "any".
type TaskFilter struct {
	Grade      int
	Topic      string
	Difficulty string
	Curriculum string
	Limit      int
}

// GlobalStats are system-wide aggregates for the admin dashboard.
type GlobalStats struct {
	TotalUsers       int
	TotalTasks       int
	TotalSubmissions int
	CorrectRate      float64
}

// UserRepo manages accounts and their gamification counters.
type UserRepo interface {
	// Create inserts a new user. Returns ErrEmailTaken when the email
	// is already registered.
	Create(ctx context.Context, u *User) error

	ByID(ctx context.Context, id uuid.UUID) (*User, error)
	ByEmail(ctx context.Context, email string) (*User, error)

	// CreditXP atomically adds amount to the user's XP and recomputes
	// the level in one statement. Returns the new XP and level.
	CreditXP(ctx context.Context, id uuid.UUID, amount int) (xp, level int, err error)

	// AddBadges appends the given badges to the user's list, skipping
	// any already held. Returns the badges actually added.
	AddBadges(ctx context.Context, id uuid.UUID, badges []string) ([]string, error)

	UpdateGrade(ctx context.Context, id uuid.UUID, grade int) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	SetFeatures(ctx context.Context, id uuid.UUID, features map[string]bool) error

	// ListStudents returns student accounts, optionally filtered by
	// grade (0 = all grades).
	ListStudents(ctx context.Context, grade int) ([]*User, error)

	Count(ctx context.Context) (int, error)
}

// TaskRepo manages the question bank.
type TaskRepo interface {
	Create(ctx context.Context, t *Task) error

	// CreateBulk inserts tasks one by one and returns how many
	// succeeded; row-level failures do not abort the batch.
	CreateBulk(ctx context.Context, tasks []*Task) (int, error)

	ByID(ctx context.Context, id uuid.UUID) (*Task, error)
	List(ctx context.Context, f TaskFilter) ([]*Task, error)
	Update(ctx context.Context, t *Task) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int, error)
}

// SubmissionRepo records answer attempts and serves the aggregates the
// recommendation and badge logic read.
type SubmissionRepo interface {
	// Append inserts the submission and, when it is a correct
	// non-practice attempt, bumps the user's correct_count in the
	// same transaction.
	Append(ctx context.Context, sub *Submission) error

	// Recent returns the user's newest submissions, most recent first.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*Submission, error)

	// TopicStats aggregates all non-practice attempts per topic.
	TopicStats(ctx context.Context, userID uuid.UUID) ([]TopicStat, error)

	// CorrectByTopic counts correct non-practice attempts per topic.
	CorrectByTopic(ctx context.Context, userID uuid.UUID) (map[string]int, error)

	// Since returns non-practice submissions created at or after t.
	Since(ctx context.Context, userID uuid.UUID, t time.Time) ([]*Submission, error)

	// GlobalTopicErrors counts incorrect attempts per topic across all
	// users, highest first, capped at limit.
	GlobalTopicErrors(ctx context.Context, limit int) ([]TopicStat, error)

	GlobalStats(ctx context.Context) (*GlobalStats, error)
}

// ChallengeRepo manages daily and weekly challenge rows.
type ChallengeRepo interface {
	// Get returns the challenge for (userID, kind, bucket), or
	// ErrNotFound.
	Get(ctx context.Context, userID uuid.UUID, kind, bucket string) (*Challenge, error)

	Create(ctx context.Context, c *Challenge) error

	// SetProgress replaces the completed task list and completion flag.
	SetProgress(ctx context.Context, id uuid.UUID, completedTaskIDs []string, completed bool) error
}

// PasswordResetRepo manages single-use reset tokens.
type PasswordResetRepo interface {
	Create(ctx context.Context, r *PasswordReset) error

	// ByToken returns the reset row for token, or ErrNotFound.
	ByToken(ctx context.Context, token string) (*PasswordReset, error)

	MarkUsed(ctx context.Context, id uuid.UUID) error
}

// AssignmentRepo manages class assignments.
type AssignmentRepo interface {
	Create(ctx context.Context, a *Assignment) error

	// ByGrade returns assignments for a grade, newest first
	// (0 = all grades).
	ByGrade(ctx context.Context, grade int) ([]*Assignment, error)
}
