package curriculum

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathevilla/server/internal/store"
)

// Bootstrap admin credentials, created on first seed.
const (
	AdminEmail    = "admin@mathevilla.de"
	adminPassword = "admin123"
)

// SeedResult reports what a seeding run inserted.
type SeedResult struct {
	Message   string         `json:"message"`
	TaskCount int            `json:"task_count,omitempty"`
	Added     int            `json:"added,omitempty"`
	Counts    map[string]int `json:"counts,omitempty"`
}

// Seeder loads task content and the bootstrap admin into the store.
type Seeder struct {
	catalog *Catalog
	tasks   store.TaskRepo
	users   store.UserRepo
	logger  *slog.Logger
}

func NewSeeder(catalog *Catalog, tasks store.TaskRepo, users store.UserRepo, logger *slog.Logger) *Seeder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Seeder{catalog: catalog, tasks: tasks, users: users, logger: logger}
}

// SeedBase inserts the base task set and the default admin account.
// A non-empty task bank is left untouched.
func (s *Seeder) SeedBase(ctx context.Context) (*SeedResult, error) {
	count, err := s.tasks.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count tasks: %w", err)
	}
	if count > 0 {
		return &SeedResult{Message: "Datenbank bereits mit Seed-Daten gefüllt", TaskCount: count}, nil
	}

	inserted, err := s.insert(ctx, SeedTasks())
	if err != nil {
		return nil, err
	}
	if err := s.ensureAdmin(ctx); err != nil {
		return nil, err
	}
	s.logger.Info("database seeded", "tasks", inserted)
	return &SeedResult{Message: "Seed-Daten erfolgreich eingefügt", TaskCount: inserted}, nil
}

// SeedAdditional inserts the extended task set.
func (s *Seeder) SeedAdditional(ctx context.Context) (*SeedResult, error) {
	inserted, err := s.insert(ctx, AdditionalTasks())
	if err != nil {
		return nil, err
	}
	counts, err := s.perGradeCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &SeedResult{Message: "Zusätzliche Aufgaben eingefügt", Added: inserted, Counts: counts}, nil
}

// SeedNRW inserts the NRW-Hauptschule curriculum set.
func (s *Seeder) SeedNRW(ctx context.Context) (*SeedResult, error) {
	inserted, err := s.insert(ctx, NRWTasks())
	if err != nil {
		return nil, err
	}
	counts, err := s.perGradeCounts(ctx)
	if err != nil {
		return nil, err
	}
	return &SeedResult{Message: "NRW Hauptschule Aufgaben hinzugefügt", Added: inserted, Counts: counts}, nil
}

func (s *Seeder) insert(ctx context.Context, tasks []store.Task) (int, error) {
	batch := make([]*store.Task, len(tasks))
	for i := range tasks {
		t := tasks[i]
		t.ID = uuid.New()
		t.CreatedBy = "system"
		batch[i] = &t
	}
	inserted, err := s.tasks.CreateBulk(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("insert seed tasks: %w", err)
	}
	return inserted, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context) error {
	_, err := s.users.ByEmail(ctx, AdminEmail)
	if err == nil {
		return nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}
	admin := &store.User{
		ID:           uuid.New(),
		Email:        AdminEmail,
		PasswordHash: string(hash),
		Name:         "Administrator",
		Role:         "admin",
		Level:        1,
		Badges:       []string{},
		Features:     s.catalog.DefaultFeatures(),
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	s.logger.Info("bootstrap admin created", "email", AdminEmail)
	return nil
}

func (s *Seeder) perGradeCounts(ctx context.Context) (map[string]int, error) {
	grades := s.catalog.Grades()
	counts := make(map[string]int, len(grades))
	for _, grade := range grades {
		tasks, err := s.tasks.List(ctx, store.TaskFilter{Grade: grade})
		if err != nil {
			return nil, fmt.Errorf("count grade %d: %w", grade, err)
		}
		counts[fmt.Sprintf("grade_%d", grade)] = len(tasks)
	}
	return counts, nil
}
