// Package auth implements account registration, login, and password
// management on top of bcrypt hashes and HS256 bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

const (
	minPasswordLen = 6
	resetTokenTTL  = time.Hour
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong
	// password so login failures do not reveal which one it was.
	ErrInvalidCredentials = errors.New("Ungültige E-Mail oder Passwort")

	ErrInvalidToken = errors.New("Ungültiger Token")
	ErrTokenExpired = errors.New("Token abgelaufen")
)

// ValidationError carries a user-facing message for a rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(msg string) error { return &ValidationError{Message: msg} }

// Session is a successful register or login result.
type Session struct {
	Token string
	User  *store.User
}

// ResetTicket is the response to a password reset request. Token is
// empty when no account matches; the message is identical either way.
type ResetTicket struct {
	Message   string
	Token     string
	ExpiresIn string
}

// RegisterInput are the fields accepted at registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
	Grade    *int
}

// Service implements the account lifecycle.
type Service struct {
	users   store.UserRepo
	resets  store.PasswordResetRepo
	signer  *Signer
	cost    int
	catalog *curriculum.Catalog
	logger  *slog.Logger

	now func() time.Time
}

// NewService creates a Service. A zero bcrypt cost falls back to the
// library default.
func NewService(users store.UserRepo, resets store.PasswordResetRepo, signer *Signer, bcryptCost int, catalog *curriculum.Catalog, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		users:   users,
		resets:  resets,
		signer:  signer,
		cost:    bcryptCost,
		catalog: catalog,
		logger:  logger,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an account and returns a signed session for it.
// Returns store.ErrEmailTaken when the email is already registered.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Name = strings.TrimSpace(in.Name)
	if in.Email == "" || in.Name == "" {
		return nil, invalid("E-Mail und Name sind erforderlich")
	}
	if len(in.Password) < minPasswordLen {
		return nil, invalid("Passwort muss mindestens 6 Zeichen haben")
	}
	role := in.Role
	if role == "" {
		role = "student"
	}
	if role != "student" && role != "admin" {
		return nil, invalid("Ungültige Rolle")
	}
	if in.Grade != nil && !s.catalog.ValidGrade(*in.Grade) {
		return nil, invalid("Klasse muss zwischen 5 und 10 sein")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &store.User{
		ID:           uuid.New(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         role,
		Grade:        in.Grade,
		Level:        1,
		Badges:       []string{},
		Features:     s.catalog.DefaultFeatures(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("user registered", "user", user.ID, "role", role)

	token, err := s.signer.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}

// Login verifies the credentials and returns a signed session.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.ByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	token, err := s.signer.Sign(user.ID)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}

// Authenticate resolves a bearer token to its user.
func (s *Service) Authenticate(ctx context.Context, token string) (*store.User, error) {
	userID, err := s.signer.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.ByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}
	return user, nil
}

// UpdateGrade changes the user's grade level.
func (s *Service) UpdateGrade(ctx context.Context, userID uuid.UUID, grade int) error {
	if !s.catalog.ValidGrade(grade) {
		return invalid("Klasse muss zwischen 5 und 10 sein")
	}
	return s.users.UpdateGrade(ctx, userID, grade)
}

// ChangePassword replaces the password after checking the old one.
func (s *Service) ChangePassword(ctx context.Context, user *store.User, oldPassword, newPassword string) error {
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(oldPassword)) != nil {
		return invalid("Aktuelles Passwort ist falsch")
	}
	if len(newPassword) < minPasswordLen {
		return invalid("Neues Passwort muss mindestens 6 Zeichen haben")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	return s.users.UpdatePassword(ctx, user.ID, string(hash))
}

const resetMessage = "Falls ein Konto mit dieser E-Mail existiert, wurde ein Reset-Link gesendet."

// RequestReset issues a one-hour reset token. The message never
// discloses whether the email is registered; the token field is only
// filled for known accounts. Delivery by email is not wired up yet,
// callers surface the token directly.
func (s *Service) RequestReset(ctx context.Context, email string) (*ResetTicket, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.ByEmail(ctx, email)
	if errors.Is(err, store.ErrNotFound) {
		return &ResetTicket{Message: resetMessage}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	reset := &store.PasswordReset{
		ID:        uuid.New(),
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Email:     email,
		ExpiresAt: s.now().Add(resetTokenTTL),
	}
	if err := s.resets.Create(ctx, reset); err != nil {
		return nil, fmt.Errorf("store reset token: %w", err)
	}
	s.logger.Info("password reset requested", "user", user.ID)

	return &ResetTicket{
		Message:   resetMessage,
		Token:     reset.Token,
		ExpiresIn: "1 Stunde",
	}, nil
}

// ConfirmReset consumes a reset token and sets the new password.
func (s *Service) ConfirmReset(ctx context.Context, token, newPassword string) error {
	reset, err := s.resets.ByToken(ctx, token)
	if errors.Is(err, store.ErrNotFound) {
		return invalid("Ungültiger oder abgelaufener Reset-Token")
	}
	if err != nil {
		return fmt.Errorf("load reset token: %w", err)
	}
	if reset.Used {
		return invalid("Ungültiger oder abgelaufener Reset-Token")
	}
	if s.now().After(reset.ExpiresAt) {
		return invalid("Reset-Token ist abgelaufen")
	}
	if len(newPassword) < minPasswordLen {
		return invalid("Passwort muss mindestens 6 Zeichen haben")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), s.cost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, reset.UserID, string(hash)); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if err := s.resets.MarkUsed(ctx, reset.ID); err != nil {
		return fmt.Errorf("mark token used: %w", err)
	}
	return nil
}
