package core

import (
	"context"
	"fmt"
	"time"

	"github.com/mindfultrack/mindfultrack/pkg/crypto"
)

// Session represents an active login session.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	TokenHash string    `json:"-"` // Never expose in JSON
	IPAddress string    `json:"ipAddress"`
	UserAgent string    `json:"userAgent"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SessionData combines the identity, profile and session info returned to
// clients.
type SessionData struct {
	User    *User    `json:"user"`
	Profile *Profile `json:"profile,omitempty"`
	Session *Session `json:"session"`
}

type SessionConfig struct {
	MaxAge time.Duration
}

func DefaultSessionConfig() SessionConfig {
	return SessionConfig{
		MaxAge: 24 * time.Hour,
	}
}

type CreateSessionResult struct {
	Session *Session `json:"session"`
	Token   string   `json:"token"`
}

// SessionManager issues opaque tokens, stores only their hashes, and
// verifies with a cache-aside lookup when a cache is configured.
type SessionManager struct {
	config  SessionConfig
	storage SessionStorage
	cache   Cache // optional, nil when caching is disabled
}

func NewSessionManager(config SessionConfig, storage SessionStorage, cache Cache) *SessionManager {
	return &SessionManager{
		config:  config,
		storage: storage,
		cache:   cache,
	}
}

func (sm *SessionManager) Create(ctx context.Context, userID, ipAddress, userAgent string) (*CreateSessionResult, error) {
	token, err := crypto.GenerateHashedToken(32)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	id, err := crypto.NewNanoID().Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ID: %w", err)
	}

	now := time.Now()
	session := &Session{
		ID:        id,
		UserID:    userID,
		TokenHash: token.Hash,
		IPAddress: ipAddress,
		UserAgent: userAgent,
		ExpiresAt: now.Add(sm.config.MaxAge),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := sm.storage.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if sm.cache != nil {
		// Caching failures never fail the request
		_ = sm.cache.Set(token.Hash, session)
	}

	return &CreateSessionResult{
		Session: session,
		Token:   token.Token,
	}, nil
}

func (sm *SessionManager) Verify(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}

	tokenHash := crypto.HashToken(token)

	if sm.cache != nil {
		if session, err := sm.cache.Get(tokenHash); err == nil && session != nil {
			if time.Now().Before(session.ExpiresAt) {
				return session, nil
			}
			_ = sm.cache.Delete(tokenHash)
		}
	}

	session, err := sm.storage.GetSessionByHash(ctx, tokenHash)
	if err != nil {
		return nil, ErrSessionNotFound
	}

	valid, err := crypto.VerifyToken(token, session.TokenHash)
	if err != nil || !valid {
		return nil, ErrInvalidToken
	}

	if time.Now().After(session.ExpiresAt) {
		_ = sm.storage.DeleteSessionByID(ctx, session.ID)
		return nil, ErrSessionExpired
	}

	if sm.cache != nil {
		_ = sm.cache.Set(tokenHash, session)
	}

	return session, nil
}

func (sm *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}

	tokenHash := crypto.HashToken(token)

	if sm.cache != nil {
		_ = sm.cache.Delete(tokenHash)
	}

	return sm.storage.DeleteSessionByHash(ctx, tokenHash)
}

// DeleteExpired sweeps expired sessions out of storage. Verify already
// rejects them individually; this reclaims the rows in bulk and is meant
// to run on a timer.
func (sm *SessionManager) DeleteExpired(ctx context.Context) (int, error) {
	return sm.storage.DeleteExpiredSessions(ctx)
}

func (sm *SessionManager) DestroyAllUserSessions(ctx context.Context, userID string) error {
	// Conservative: dropping the whole cache beats fetching every user
	// session just to invalidate selectively.
	if sm.cache != nil {
		_ = sm.cache.Clear()
	}

	return sm.storage.DeleteUserSessions(ctx, userID)
}
