package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/crypto"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

// SignInInput contains the credentials for authentication
type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignInResult contains the authenticated user and their session
type SignInResult struct {
	User    *core.User    `json:"user"`
	Profile *core.Profile `json:"profile,omitempty"`
	Session *core.Session `json:"session"`
	Token   string        `json:"token"` // The raw token (not the hash)
}

// AuthService handles sign-in, sign-out and session lookup against the
// identity store.
type AuthService struct {
	storage   core.Storage
	sessions  *core.SessionManager
	passwords crypto.PasswordHandler
	log       *logger.Logger
}

func NewAuthService(storage core.Storage, sessions *core.SessionManager, passwords crypto.PasswordHandler, log *logger.Logger) *AuthService {
	return &AuthService{
		storage:   storage,
		sessions:  sessions,
		passwords: passwords,
		log:       log,
	}
}

// SignIn authenticates a user with email and password.
func (s *AuthService) SignIn(ctx context.Context, input SignInInput, ipAddress, userAgent string) (*SignInResult, error) {
	// Step 1: Find the user by email
	user, err := s.storage.GetUserByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if err == core.ErrUserNotFound {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	// Step 2: Verify the password
	valid, err := s.passwords.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !valid {
		return nil, core.ErrInvalidCredentials
	}

	// Step 3: The identity must be confirmed out-of-band before the
	// first login can succeed
	if !user.EmailVerified {
		return nil, core.ErrEmailNotVerified
	}

	// Step 4: Attach the profile; a missing row is logged but does not
	// block login
	profile, err := s.storage.GetProfileByUserID(ctx, user.ID)
	if err != nil && err != core.ErrProfileNotFound {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	if profile == nil {
		s.log.Warn("user has no profile row", "user_id", user.ID)
	}

	// Step 5: Create a new session
	sessionResult, err := s.sessions.Create(ctx, user.ID, ipAddress, userAgent)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SignInResult{
		User:    user,
		Profile: profile,
		Session: sessionResult.Session,
		Token:   sessionResult.Token,
	}, nil
}

// VerifyEmail records the out-of-band confirmation of an identity's
// email address. Sign-in is refused until this has happened.
func (s *AuthService) VerifyEmail(ctx context.Context, userID string) error {
	if err := s.storage.MarkEmailVerified(ctx, userID); err != nil {
		if err == core.ErrUserNotFound {
			return err
		}
		return fmt.Errorf("failed to mark email verified: %w", err)
	}
	s.log.Info("email verified", "user_id", userID)
	return nil
}

// SignOut invalidates the current session.
func (s *AuthService) SignOut(ctx context.Context, token string) error {
	if err := s.sessions.Destroy(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// GetSession retrieves session data by token.
func (s *AuthService) GetSession(ctx context.Context, token string) (*core.SessionData, error) {
	session, err := s.sessions.Verify(ctx, token)
	if err != nil {
		if err == core.ErrSessionNotFound {
			return nil, core.ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.storage.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	profile, err := s.storage.GetProfileByUserID(ctx, session.UserID)
	if err != nil && err != core.ErrProfileNotFound {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	return &core.SessionData{
		User:    user,
		Profile: profile,
		Session: session,
	}, nil
}
