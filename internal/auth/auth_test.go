package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/mathevilla/server/internal/curriculum"
	"github.com/mathevilla/server/internal/store"
)

type fakeUsers struct {
	byEmail map[string]*store.User
	byID    map[uuid.UUID]*store.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byEmail: map[string]*store.User{}, byID: map[uuid.UUID]*store.User{}}
}

func (f *fakeUsers) Create(_ context.Context, u *store.User) error {
	if _, ok := f.byEmail[u.Email]; ok {
		return store.ErrEmailTaken
	}
	f.byEmail[u.Email] = u
	f.byID[u.ID] = u
	return nil
}

func (f *fakeUsers) ByID(_ context.Context, id uuid.UUID) (*store.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) ByEmail(_ context.Context, email string) (*store.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) CreditXP(_ context.Context, _ uuid.UUID, _ int) (int, int, error) {
	return 0, 0, nil
}

func (f *fakeUsers) AddBadges(_ context.Context, _ uuid.UUID, _ []string) ([]string, error) {
	return nil, nil
}

func (f *fakeUsers) UpdateGrade(_ context.Context, id uuid.UUID, grade int) error {
	u, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Grade = &grade
	return nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	u, ok := f.byID[id]
	if !ok {
		return store.ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

func (f *fakeUsers) SetFeatures(_ context.Context, _ uuid.UUID, _ map[string]bool) error {
	return nil
}

func (f *fakeUsers) ListStudents(_ context.Context, _ int) ([]*store.User, error) { return nil, nil }
func (f *fakeUsers) Count(_ context.Context) (int, error)                         { return len(f.byID), nil }

type fakeResets struct {
	rows map[string]*store.PasswordReset
}

func (f *fakeResets) Create(_ context.Context, r *store.PasswordReset) error {
	if f.rows == nil {
		f.rows = map[string]*store.PasswordReset{}
	}
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

func newTestService() (*Service, *fakeUsers, *fakeResets) {
	users := newFakeUsers()
	resets := &fakeResets{}
	signer := NewSigner([]byte("test-secret"), time.Hour)
	svc := NewService(users, resets, signer, bcrypt.MinCost, curriculum.Default(), nil)
	return svc, users, resets
}

func grade(n int) *int { return &n }

func TestRegister(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, RegisterInput{
		Email:    "  Anna@Example.com ",
		Password: "geheim",
		Name:     "Anna",
		Grade:    grade(6),
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	u := sess.User
	if u.Email != "anna@example.com" {
		t.Errorf("email = %q, want normalized lowercase", u.Email)
	}
	if u.Role != "student" {
		t.Errorf("role = %q, want default student", u.Role)
	}
	if u.Level != 1 || u.XP != 0 {
		t.Errorf("fresh account has xp=%d level=%d", u.XP, u.Level)
	}
	if len(u.Features) == 0 {
		t.Error("default feature flags missing")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("geheim")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}

	got, err := svc.Authenticate(ctx, sess.Token)
	if err != nil {
		t.Fatalf("authenticate fresh token: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("token resolves to %v, want %v", got.ID, u.ID)
	}
}

func TestRegisterRejects(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name string
		in   RegisterInput
	}{
		{"short password", RegisterInput{Email: "a@b.de", Name: "A", Password: "kurz"}},
		{"missing name", RegisterInput{Email: "a@b.de", Password: "geheim"}},
		{"grade out of range", RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim", Grade: grade(11)}},
		{"unknown role", RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim", Role: "teacher"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.in)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("err = %v, want ValidationError", err)
			}
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	in := RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim"}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, in)
	if !errors.Is(err, store.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLogin(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	sess, err := svc.Login(ctx, "A@B.de", "geheim")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if sess.Token == "" {
		t.Error("login returned empty token")
	}

	if _, err := svc.Login(ctx, "a@b.de", "falsch"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@b.de", "geheim"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Authenticate(ctx, "not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage token: err = %v, want ErrInvalidToken", err)
	}

	// Token signed with a different secret.
	other := NewSigner([]byte("other-secret"), time.Hour)
	tok, err := other.Sign(uuid.New())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Authenticate(ctx, tok); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("foreign token: err = %v, want ErrInvalidToken", err)
	}

	// Valid signature but no matching account.
	orphan, err := NewSigner([]byte("test-secret"), time.Hour).Sign(uuid.New())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := svc.Authenticate(ctx, orphan); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("orphan token: err = %v, want ErrInvalidToken", err)
	}
}

func TestExpiredToken(t *testing.T) {
	signer := NewSigner([]byte("test-secret"), time.Hour)
	signed := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	signer.now = func() time.Time { return signed }
	tok, err := signer.Sign(uuid.New())
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	signer.now = func() time.Time { return signed.Add(2 * time.Hour) }
	if _, err := signer.Verify(tok); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestUpdateGrade(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if err := svc.UpdateGrade(ctx, sess.User.ID, 4); err == nil {
		t.Error("grade 4 accepted")
	}
	if err := svc.UpdateGrade(ctx, sess.User.ID, 8); err != nil {
		t.Fatalf("update grade: %v", err)
	}
	if g := users.byID[sess.User.ID].Grade; g == nil || *g != 8 {
		t.Errorf("stored grade = %v, want 8", g)
	}
}

func TestChangePassword(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	user := sess.User

	var verr *ValidationError
	if err := svc.ChangePassword(ctx, user, "falsch", "neuespasswort"); !errors.As(err, &verr) {
		t.Errorf("wrong old password: err = %v, want ValidationError", err)
	}
	if err := svc.ChangePassword(ctx, user, "geheim", "kurz"); !errors.As(err, &verr) {
		t.Errorf("short new password: err = %v, want ValidationError", err)
	}
	if err := svc.ChangePassword(ctx, user, "geheim", "neuespasswort"); err != nil {
		t.Fatalf("change password: %v", err)
	}
	hash := users.byID[user.ID].PasswordHash
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("neuespasswort")); err != nil {
		t.Errorf("new password not stored: %v", err)
	}
}

func TestResetFlow(t *testing.T) {
	svc, users, _ := newTestService()
	ctx := context.Background()

	sess, err := svc.Register(ctx, RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email gets the same message but no token.
	ticket, err := svc.RequestReset(ctx, "nobody@b.de")
	if err != nil {
		t.Fatalf("request for unknown: %v", err)
	}
	if ticket.Token != "" {
		t.Error("unknown email must not receive a token")
	}
	if ticket.Message == "" {
		t.Error("anti-enumeration message missing")
	}

	ticket, err = svc.RequestReset(ctx, "a@b.de")
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if ticket.Token == "" {
		t.Fatal("known email did not receive a token")
	}

	if err := svc.ConfirmReset(ctx, ticket.Token, "neuespasswort"); err != nil {
		t.Fatalf("confirm: %v", err)
	}
	hash := users.byID[sess.User.ID].PasswordHash
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte("neuespasswort")); err != nil {
		t.Errorf("password not updated: %v", err)
	}

	// Tokens are single use.
	var verr *ValidationError
	if err := svc.ConfirmReset(ctx, ticket.Token, "nochmalneu"); !errors.As(err, &verr) {
		t.Errorf("reused token: err = %v, want ValidationError", err)
	}
}

func TestResetExpiry(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@b.de", Name: "A", Password: "geheim"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	issued := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }
	ticket, err := svc.RequestReset(ctx, "a@b.de")
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(61 * time.Minute) }
	var verr *ValidationError
	if err := svc.ConfirmReset(ctx, ticket.Token, "neuespasswort"); !errors.As(err, &verr) {
		t.Errorf("expired token: err = %v, want ValidationError", err)
	}
}

func TestConfirmResetUnknownToken(t *testing.T) {
	svc, _, _ := newTestService()
	var verr *ValidationError
	if err := svc.ConfirmReset(context.Background(), "kein-token", "neuespasswort"); !errors.As(err, &verr) {
		t.Errorf("err = %v, want ValidationError", err)
	}
}
