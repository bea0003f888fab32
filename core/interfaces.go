package core

import (
	"context"
	"time"
)

// Ports define interfaces for external dependencies. The remote store is
// the only shared resource in the system; its unique constraints (email,
// username, account id) are the correctness mechanism for the
// check-then-act patterns in the signup flow. The application-level
// checks exist only for fast user feedback.

// ============================================
// STORAGE PORTS
// ============================================

// UserStorage holds identity records.
type UserStorage interface {
	CreateUser(ctx context.Context, u *User) error
	GetUserByID(ctx context.Context, id string) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	MarkEmailVerified(ctx context.Context, id string) error
	DeleteUser(ctx context.Context, id string) error
}

// ProfileStorage holds the application's profile rows.
type ProfileStorage interface {
	InsertProfile(ctx context.Context, p *Profile) error
	GetProfileByUserID(ctx context.Context, userID string) (*Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
}

// EntryStorage holds the four per-day tables plus the queries the
// dashboard needs.
type EntryStorage interface {
	InsertSleep(ctx context.Context, e *SleepEntry) error
	InsertMood(ctx context.Context, e *MoodEntry) error
	InsertJournal(ctx context.Context, e *JournalEntry) error
	InsertSessionLog(ctx context.Context, e *SessionLog) error

	UpdateJournalSuggestion(ctx context.Context, journalID, suggestion string) error
	RecentJournals(ctx context.Context, userID string, limit int) ([]*JournalEntry, error)
	TodaySnapshot(ctx context.Context, userID string, day time.Time) (*TodaySnapshot, error)

	DeleteSleepByUser(ctx context.Context, userID string) error
	DeleteMoodByUser(ctx context.Context, userID string) error
	DeleteJournalsByUser(ctx context.Context, userID string) error
	DeleteSessionLogsByUser(ctx context.Context, userID string) error
}

// SessionStorage holds login sessions.
type SessionStorage interface {
	CreateSession(ctx context.Context, s *Session) error
	GetSessionByHash(ctx context.Context, tokenHash string) (*Session, error)
	DeleteSessionByID(ctx context.Context, id string) error
	DeleteSessionByHash(ctx context.Context, tokenHash string) error
	DeleteUserSessions(ctx context.Context, userID string) error
	DeleteExpiredSessions(ctx context.Context) (int, error)
}

// UniquenessChecker answers "does any row match". The (table, field)
// pair is whitelisted by the adapter; an error means the query itself
// failed, which is distinct from found/not-found.
type UniquenessChecker interface {
	CheckFieldUnique(ctx context.Context, table, field, value string) (bool, error)
}

// Storage is the full storage surface one adapter provides.
type Storage interface {
	UserStorage
	ProfileStorage
	EntryStorage
	SessionStorage
	UniquenessChecker
}

// ============================================
// ACCOUNT GATEWAY
// ============================================

// AccountGateway wraps the three remote operations the wizard's terminal
// transaction needs. Ordering contract: both uniqueness checks must come
// back clean before CreateIdentity; CreateIdentity must succeed before
// InsertProfile. An InsertProfile failure after CreateIdentity success
// leaves an orphaned identity; that state is logged, not retried.
type AccountGateway interface {
	CheckFieldUnique(ctx context.Context, table, field, value string) (bool, error)
	CreateIdentity(ctx context.Context, email, password string) (subjectID string, err error)
	InsertProfile(ctx context.Context, p *Profile) error
}

// ============================================
// CACHE PORT
// ============================================

// Cache defines session caching operations.
type Cache interface {
	Get(tokenHash string) (*Session, error)
	Set(tokenHash string, session *Session) error
	Delete(tokenHash string) error
	Clear() error
}

// CacheWithStats extends Cache with statistics tracking.
type CacheWithStats interface {
	Cache
	Stats() CacheStats
}

// CacheConfig configures cache behavior.
type CacheConfig struct {
	TTL     time.Duration
	MaxSize int
}

// CacheStats are simple counters for cache behavior, intended for
// diagnostics and monitoring.
type CacheStats struct {
	Hits      int64         `json:"hits"`
	Misses    int64         `json:"misses"`
	Sets      int64         `json:"sets"`
	Deletes   int64         `json:"deletes"`
	Evictions int64         `json:"evictions"`
	Size      int           `json:"size"`
	TTL       time.Duration `json:"ttl"`
}

// ============================================
// SUGGESTION PORT
// ============================================

// SuggestionProvider is one external completion endpoint. Providers are
// tried in order by the chain; an error or empty string moves on to the
// next one.
type SuggestionProvider interface {
	Name() string
	Complete(ctx context.Context, system, user string) (string, error)
}
