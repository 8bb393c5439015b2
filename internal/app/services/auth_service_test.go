package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/deren/greenhub/internal/app/models"
	"github.com/deren/greenhub/internal/pkg/apperrors"
	"github.com/deren/greenhub/internal/pkg/auth"
)

type fakeUserStore struct {
	byUsername map[string]*models.User
	nextID     int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byUsername: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) (int64, error) {
	if _, ok := f.byUsername[user.Username]; ok {
		return 0, apperrors.ErrUsernameTaken
	}
	f.nextID++
	user.ID = f.nextID
	f.byUsername[user.Username] = user
	return user.ID, nil
}

func (f *fakeUserStore) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, ok := f.byUsername[username]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func TestSignupHashesPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, zerolog.Nop())

	user, err := svc.Signup(context.Background(), "alice", "alice@example.com", "hunter2secret")
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if user.ID == 0 {
		t.Fatalf("user id not assigned")
	}
	if user.Password == "hunter2secret" {
		t.Fatalf("password stored in plaintext")
	}
	if !auth.CheckPassword(user.Password, "hunter2secret") {
		t.Fatalf("stored hash does not verify")
	}
}

func TestSignupDuplicateUsername(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), "alice", "a@example.com", "hunter2secret"); err != nil {
		t.Fatalf("first signup: %v", err)
	}
	_, err := svc.Signup(context.Background(), "alice", "b@example.com", "hunter2secret")
	if !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Fatalf("expected username taken, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), "alice", "a@example.com", "hunter2secret"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, err := svc.Login(context.Background(), "alice", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, zerolog.Nop())

	// Unknown user and wrong password are indistinguishable to the caller.
	if _, err := svc.Login(context.Background(), "nobody", "whatever"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestLoginSuccess(t *testing.T) {
	users := newFakeUserStore()
	svc := NewAuthService(users, zerolog.Nop())

	if _, err := svc.Signup(context.Background(), "alice", "a@example.com", "hunter2secret"); err != nil {
		t.Fatalf("signup: %v", err)
	}

	user, err := svc.Login(context.Background(), "alice", "hunter2secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("wrong user returned: %s", user.Username)
	}
}
