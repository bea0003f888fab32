package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/crypto"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

func newTestAuth(storage *FakeStorage) *AuthService {
	sm := core.NewSessionManager(core.SessionConfig{MaxAge: 24 * time.Hour}, storage, nil)
	return NewAuthService(storage, sm, crypto.NewArgon2(), logger.NewNop())
}

// seedUser creates a verified user with the given password and, when
// username is non-empty, a profile row.
func seedUser(t *testing.T, storage *FakeStorage, email, password, username string) *core.User {
	t.Helper()
	hash, err := crypto.NewArgon2().Hash(password)
	if err != nil {
		t.Fatalf("Hash failed: %v", err)
	}
	user := &core.User{
		ID:            "user-" + email,
		Email:         email,
		EmailVerified: true,
		PasswordHash:  hash,
	}
	if err := storage.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if username != "" {
		_ = storage.InsertProfile(context.Background(), &core.Profile{
			UserID:    user.ID,
			Email:     email,
			Name:      "Alice",
			Age:       30,
			Username:  username,
			AccountID: "UID_" + username,
		})
	}
	return user
}

// Requirement: SignIn authenticates by email and password, attaches the
// profile, and returns a usable session token.
func TestAuthService_SignIn(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		setup    func(*testing.T, *FakeStorage)
		wantErr  error
	}{
		{
			name:     "valid credentials",
			email:    "alice@example.com",
			password: "SecurePass123!",
			setup: func(t *testing.T, s *FakeStorage) {
				seedUser(t, s, "alice@example.com", "SecurePass123!", "alice")
			},
		},
		{
			name:     "email case-insensitive",
			email:    "ALICE@Example.com",
			password: "SecurePass123!",
			setup: func(t *testing.T, s *FakeStorage) {
				seedUser(t, s, "alice@example.com", "SecurePass123!", "alice")
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "SecurePass123!",
			wantErr:  core.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "WrongPass123!",
			setup: func(t *testing.T, s *FakeStorage) {
				seedUser(t, s, "alice@example.com", "SecurePass123!", "alice")
			},
			wantErr: core.ErrInvalidCredentials,
		},
		{
			name:     "unverified email",
			email:    "bob@example.com",
			password: "SecurePass123!",
			setup: func(t *testing.T, s *FakeStorage) {
				hash, _ := crypto.NewArgon2().Hash("SecurePass123!")
				_ = s.CreateUser(context.Background(), &core.User{
					ID:           "user-bob",
					Email:        "bob@example.com",
					PasswordHash: hash,
				})
			},
			wantErr: core.ErrEmailNotVerified,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := NewFakeStorage()
			if test.setup != nil {
				test.setup(t, storage)
			}
			service := newTestAuth(storage)

			result, err := service.SignIn(context.Background(), SignInInput{
				Email:    test.email,
				Password: test.password,
			}, "127.0.0.1", "test-agent")

			if !errors.Is(err, test.wantErr) {
				t.Fatalf("SignIn() error = %v, want %v", err, test.wantErr)
			}
			if test.wantErr != nil {
				return
			}
			if result.Token == "" {
				t.Error("SignIn() should return a token")
			}
			if result.User == nil || result.Session == nil {
				t.Fatal("SignIn() should return user and session")
			}
			if result.Profile == nil || result.Profile.Username != "alice" {
				t.Errorf("SignIn() profile = %+v, want username alice", result.Profile)
			}
		})
	}
}

// Requirement: a missing profile row is tolerated at sign-in.
func TestAuthService_SignIn_NoProfile(t *testing.T) {
	storage := NewFakeStorage()
	seedUser(t, storage, "alice@example.com", "SecurePass123!", "")
	service := newTestAuth(storage)

	result, err := service.SignIn(context.Background(), SignInInput{
		Email:    "alice@example.com",
		Password: "SecurePass123!",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if result.Profile != nil {
		t.Errorf("profile = %+v, want nil", result.Profile)
	}
}

// Requirement: GetSession resolves a token back to user, profile and
// session; SignOut invalidates it.
func TestAuthService_SessionRoundtrip(t *testing.T) {
	storage := NewFakeStorage()
	seedUser(t, storage, "alice@example.com", "SecurePass123!", "alice")
	service := newTestAuth(storage)

	result, err := service.SignIn(context.Background(), SignInInput{
		Email:    "alice@example.com",
		Password: "SecurePass123!",
	}, "127.0.0.1", "test-agent")
	if err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}

	data, err := service.GetSession(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if data.User == nil || data.User.Email != "alice@example.com" {
		t.Errorf("session user = %+v", data.User)
	}
	if data.Profile == nil || data.Profile.Username != "alice" {
		t.Errorf("session profile = %+v", data.Profile)
	}

	if err := service.SignOut(context.Background(), result.Token); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if _, err := service.GetSession(context.Background(), result.Token); err == nil {
		t.Error("GetSession() should fail after SignOut()")
	}
}

// Requirement: VerifyEmail flips the verified flag so a previously
// refused sign-in succeeds; an unknown user surfaces as not found.
func TestAuthService_VerifyEmail(t *testing.T) {
	storage := NewFakeStorage()
	hash, _ := crypto.NewArgon2().Hash("SecurePass123!")
	_ = storage.CreateUser(context.Background(), &core.User{
		ID:           "user-bob",
		Email:        "bob@example.com",
		PasswordHash: hash,
	})
	service := newTestAuth(storage)

	input := SignInInput{Email: "bob@example.com", Password: "SecurePass123!"}
	if _, err := service.SignIn(context.Background(), input, "127.0.0.1", "test-agent"); !errors.Is(err, core.ErrEmailNotVerified) {
		t.Fatalf("SignIn() before verification error = %v, want ErrEmailNotVerified", err)
	}

	if err := service.VerifyEmail(context.Background(), "user-bob"); err != nil {
		t.Fatalf("VerifyEmail() error = %v", err)
	}
	if _, err := service.SignIn(context.Background(), input, "127.0.0.1", "test-agent"); err != nil {
		t.Errorf("SignIn() after verification error = %v", err)
	}

	if err := service.VerifyEmail(context.Background(), "no-such-user"); !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("VerifyEmail(unknown) error = %v, want ErrUserNotFound", err)
	}
}

func TestAuthService_GetSession_InvalidToken(t *testing.T) {
	storage := NewFakeStorage()
	service := newTestAuth(storage)

	_, err := service.GetSession(context.Background(), "not-a-real-token")
	if !errors.Is(err, core.ErrInvalidToken) {
		t.Errorf("GetSession() error = %v, want ErrInvalidToken", err)
	}
}
