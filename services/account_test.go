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

func newTestAccount(storage *FakeStorage) *AccountService {
	sm := core.NewSessionManager(core.SessionConfig{MaxAge: 24 * time.Hour}, storage, nil)
	return NewAccountService(storage, sm, logger.NewNop())
}

// seedAccount creates a full account: identity, profile, one row in each
// entry table, and a live session.
func seedAccount(t *testing.T, storage *FakeStorage, userID string) {
	t.Helper()
	ctx := context.Background()
	hash, _ := crypto.NewArgon2().Hash("SecurePass123!")
	_ = storage.CreateUser(ctx, &core.User{ID: userID, Email: userID + "@example.com", EmailVerified: true, PasswordHash: hash})
	_ = storage.InsertProfile(ctx, &core.Profile{UserID: userID, Username: "u-" + userID, AccountID: "UID_" + userID})

	now := time.Now().UTC()
	_ = storage.InsertSleep(ctx, &core.SleepEntry{ID: userID + "-s", UserID: userID, Hours: 7, CreatedAt: now})
	_ = storage.InsertMood(ctx, &core.MoodEntry{ID: userID + "-m", UserID: userID, Score: 4, CreatedAt: now})
	_ = storage.InsertJournal(ctx, &core.JournalEntry{ID: userID + "-j", UserID: userID, Text: "day", CreatedAt: now})
	_ = storage.InsertSessionLog(ctx, &core.SessionLog{ID: userID + "-l", UserID: userID, CreatedAt: now})
	_ = storage.CreateSession(ctx, &core.Session{ID: userID + "-sess", UserID: userID, TokenHash: "hash-" + userID, ExpiresAt: now.Add(time.Hour)})
}

// Requirement: Delete removes dependents, profile, sessions, then the
// identity; afterwards nothing of the account remains.
func TestAccountService_Delete(t *testing.T) {
	storage := NewFakeStorage()
	seedAccount(t, storage, "alice")
	seedAccount(t, storage, "bob")
	service := newTestAccount(storage)

	if err := service.Delete(context.Background(), "alice"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	ctx := context.Background()
	if _, err := storage.GetUserByID(ctx, "alice"); !errors.Is(err, core.ErrUserNotFound) {
		t.Error("identity should be gone")
	}
	if _, err := storage.GetProfileByUserID(ctx, "alice"); !errors.Is(err, core.ErrProfileNotFound) {
		t.Error("profile should be gone")
	}
	if _, err := storage.GetSessionByHash(ctx, "hash-alice"); !errors.Is(err, core.ErrSessionNotFound) {
		t.Error("sessions should be gone")
	}
	journals, _ := storage.RecentJournals(ctx, "alice", 10)
	if len(journals) != 0 {
		t.Errorf("journals remaining = %d, want 0", len(journals))
	}

	// The other account is untouched.
	if _, err := storage.GetUserByID(ctx, "bob"); err != nil {
		t.Errorf("other identity should remain: %v", err)
	}
	if storage.SleepCount() != 1 || storage.MoodCount() != 1 || storage.JournalCount() != 1 || storage.LogCount() != 1 {
		t.Errorf("other account rows = %d/%d/%d/%d, want 1 each",
			storage.SleepCount(), storage.MoodCount(), storage.JournalCount(), storage.LogCount())
	}
}

// Requirement: a failure deleting dependents blocks every later step, so
// the identity is never deleted while rows that reference it may remain.
func TestAccountService_Delete_DependentFailureBlocksIdentity(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*FakeStorage)
	}{
		{"sleep delete fails", func(s *FakeStorage) { s.deleteSleepErr = errors.New("timeout") }},
		{"mood delete fails", func(s *FakeStorage) { s.deleteMoodErr = errors.New("timeout") }},
		{"journal delete fails", func(s *FakeStorage) { s.deleteJournalsErr = errors.New("timeout") }},
		{"log delete fails", func(s *FakeStorage) { s.deleteLogsErr = errors.New("timeout") }},
		{"profile delete fails", func(s *FakeStorage) { s.deleteProfileErr = errors.New("timeout") }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			storage := NewFakeStorage()
			seedAccount(t, storage, "alice")
			test.setup(storage)
			service := newTestAccount(storage)

			if err := service.Delete(context.Background(), "alice"); err == nil {
				t.Fatal("Delete() should fail")
			}
			if _, err := storage.GetUserByID(context.Background(), "alice"); err != nil {
				t.Error("identity must survive a failed earlier step")
			}
		})
	}
}

func TestAccountService_Delete_EmptyUserID(t *testing.T) {
	service := newTestAccount(NewFakeStorage())
	if err := service.Delete(context.Background(), ""); !errors.Is(err, core.ErrUserNotFound) {
		t.Errorf("Delete(\"\") error = %v, want ErrUserNotFound", err)
	}
}

// Requirement: deleting an account with no entry rows still succeeds.
func TestAccountService_Delete_BareIdentity(t *testing.T) {
	storage := NewFakeStorage()
	_ = storage.CreateUser(context.Background(), &core.User{ID: "ghost", Email: "ghost@example.com"})
	service := newTestAccount(storage)

	if err := service.Delete(context.Background(), "ghost"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if storage.UserCount() != 0 {
		t.Errorf("user count = %d, want 0", storage.UserCount())
	}
}
