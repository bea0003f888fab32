package services

import (
	"context"
	"fmt"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

// AccountService deletes accounts in dependency order: the four daily
// entry tables, then the profile row, then sessions, then the identity
// record. A failure at any step blocks everything after it, so the
// identity is never deleted while dependent rows may remain.
type AccountService struct {
	storage  core.Storage
	sessions *core.SessionManager
	log      *logger.Logger
}

func NewAccountService(storage core.Storage, sessions *core.SessionManager, log *logger.Logger) *AccountService {
	return &AccountService{
		storage:  storage,
		sessions: sessions,
		log:      log,
	}
}

func (s *AccountService) Delete(ctx context.Context, userID string) error {
	if userID == "" {
		return core.ErrUserNotFound
	}

	// Step 1: dependent daily entry rows, keyed by the subject id
	dependents := []struct {
		name string
		fn   func(context.Context, string) error
	}{
		{"sleep entries", s.storage.DeleteSleepByUser},
		{"mood entries", s.storage.DeleteMoodByUser},
		{"journal entries", s.storage.DeleteJournalsByUser},
		{"session logs", s.storage.DeleteSessionLogsByUser},
	}
	for _, d := range dependents {
		if err := d.fn(ctx, userID); err != nil {
			return fmt.Errorf("failed to delete %s: %w", d.name, err)
		}
	}

	// Step 2: the profile row
	if err := s.storage.DeleteProfile(ctx, userID); err != nil && err != core.ErrProfileNotFound {
		return fmt.Errorf("failed to delete profile: %w", err)
	}

	// Step 3: live sessions
	if err := s.sessions.DestroyAllUserSessions(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete sessions: %w", err)
	}

	// Step 4: the identity record, last
	if err := s.storage.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("failed to delete identity: %w", err)
	}

	s.log.Info("account deleted", "user_id", userID)
	return nil
}
