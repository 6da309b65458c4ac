package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/movielobby/catalog-api/internal/core/domain"
	"github.com/movielobby/catalog-api/internal/core/ports"
	"github.com/movielobby/catalog-api/internal/core/token"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byEmail[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.nextID)
	r.byEmail[user.Email] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func newAuthService(repo ports.UserRepository) (*AuthService, *token.Manager) {
	tokens := token.NewManager("secret", time.Hour)
	return NewAuthService(repo, tokens, zerolog.Nop()), tokens
}

func registerInput() ports.RegisterInput {
	return ports.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Contact:  "555-0100",
		Role:     "admin",
		Password: "correct-horse",
	}
}

// ---------------------------------------------------------------------------
// Register
// ---------------------------------------------------------------------------

func TestRegister_HashesPasswordAndClearsHash(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	user, err := svc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected assigned id")
	}
	if user.PasswordHash != "" {
		t.Fatalf("returned user must not carry password material")
	}

	stored := repo.byEmail["alice@example.com"]
	if stored.PasswordHash == "" || stored.PasswordHash == "correct-horse" {
		t.Fatalf("stored password must be hashed, got %q", stored.PasswordHash)
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")) != nil {
		t.Fatalf("stored hash does not verify against the plaintext")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	repo := newStubUserRepo()
	svc, _ := newAuthService(repo)

	input := registerInput()
	input.Password = ""
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrMissingFields) {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
	if len(repo.byEmail) != 0 {
		t.Fatalf("nothing should be persisted on validation failure")
	}
}

func TestRegister_UnknownRole(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	input := registerInput()
	input.Role = "superadmin"
	if _, err := svc.Register(context.Background(), input); !errors.Is(err, domain.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register(context.Background(), registerInput()); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------------

func TestLogin_IssuesVerifiableToken(t *testing.T) {
	repo := newStubUserRepo()
	svc, tokens := newAuthService(repo)

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	signed, err := svc.Login(context.Background(), "alice@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	id, err := tokens.Verify(signed)
	if err != nil {
		t.Fatalf("issued token must verify: %v", err)
	}
	if id.Email != "alice@example.com" {
		t.Fatalf("expected email claim, got %q", id.Email)
	}
	if id.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role claim, got %q", id.Role)
	}
	if id.UserID == "" {
		t.Fatalf("expected user id claim")
	}
}

func TestLogin_IdenticalFailureForBadPasswordAndUnknownEmail(t *testing.T) {
	svc, _ := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, errWrongPassword := svc.Login(context.Background(), "alice@example.com", "wrong")
	_, errUnknownEmail := svc.Login(context.Background(), "nobody@example.com", "correct-horse")

	if !errors.Is(errWrongPassword, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPassword)
	}
	if !errors.Is(errUnknownEmail, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errUnknownEmail)
	}
	if errWrongPassword.Error() != errUnknownEmail.Error() {
		t.Fatalf("failure messages must be indistinguishable: %q vs %q",
			errWrongPassword.Error(), errUnknownEmail.Error())
	}
}
