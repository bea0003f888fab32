package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

// maxAccountIDAttempts bounds the collision-check loop. The candidate
// space is 100000 values, so 50 draws failing in a row means something is
// wrong with the store, not with luck.
const maxAccountIDAttempts = 50

// SignupService owns the wizard's remote interactions: availability
// checks for fast feedback, account-id generation, and the terminal
// signup transaction. The store's unique constraints remain the
// correctness mechanism for all of these; the checks here only produce
// friendlier errors sooner.
type SignupService struct {
	gateway core.AccountGateway
	log     *logger.Logger

	randInt func(n int) int // swapped in tests
	now     func() time.Time
}

func NewSignupService(gateway core.AccountGateway, log *logger.Logger) *SignupService {
	return &SignupService{
		gateway: gateway,
		log:     log,
		randInt: rand.IntN,
		now:     time.Now,
	}
}

// CheckEmailAvailable reports whether the email can still be claimed.
func (s *SignupService) CheckEmailAvailable(ctx context.Context, email string) error {
	if !core.IsValidEmail(email) {
		return core.ErrInvalidEmail
	}
	taken, err := s.gateway.CheckFieldUnique(ctx, "users", "email", strings.ToLower(email))
	if err != nil {
		return fmt.Errorf("%w: email check failed: %v", core.ErrRemoteUnavailable, err)
	}
	if taken {
		return core.ErrEmailTaken
	}
	return nil
}

// CheckUsernameAvailable reports whether the username can still be
// claimed. Usernames are unique case-insensitively.
func (s *SignupService) CheckUsernameAvailable(ctx context.Context, username string) error {
	if !core.IsValidUsernameFormat(username) {
		return core.ErrInvalidUsername
	}
	taken, err := s.gateway.CheckFieldUnique(ctx, "profiles", "username", strings.ToLower(username))
	if err != nil {
		return fmt.Errorf("%w: username check failed: %v", core.ErrRemoteUnavailable, err)
	}
	if taken {
		return core.ErrUsernameTaken
	}
	return nil
}

// GenerateAccountID draws "UID_<n>" candidates until one is unused by any
// existing profile row, capped at maxAccountIDAttempts.
func (s *SignupService) GenerateAccountID(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxAccountIDAttempts; attempt++ {
		candidate := "UID_" + strconv.Itoa(s.randInt(100000))

		taken, err := s.gateway.CheckFieldUnique(ctx, "profiles", "account_id", candidate)
		if err != nil {
			return "", fmt.Errorf("%w: account id check failed: %v", core.ErrRemoteUnavailable, err)
		}
		if !taken {
			return candidate, nil
		}
	}
	return "", core.ErrGenerationExhausted
}

// Complete runs the terminal signup transaction for the wizard's username
// step. On a username conflict the wizard stays where it is so the user
// can pick another name; any other failure moves the wizard to its
// terminal error state. On success the wizard advances to the summary
// step and the caller gets the inserted profile.
func (s *SignupService) Complete(ctx context.Context, w *core.Wizard, username string) (*core.Profile, error) {
	draft := w.Draft()
	draft.Username = strings.TrimSpace(username)

	// Step 1: defend against a corrupted draft; every field must have
	// passed its validator before we touch the network
	if !draft.Complete() {
		if draft.Email == "" || draft.Name == "" || draft.Password == "" || draft.Username == "" {
			w.Fail("Your signup session is missing information. Please start over.")
			return nil, core.ErrIncompleteDraft
		}
	}
	if draft.Age <= 0 {
		w.Fail("Your signup session is missing information. Please start over.")
		return nil, core.ErrInvalidAge
	}

	// Step 2: re-check username uniqueness; another signup may have
	// claimed it since the format check
	if err := s.CheckUsernameAvailable(ctx, draft.Username); err != nil {
		if err == core.ErrUsernameTaken || err == core.ErrInvalidUsername {
			return nil, err // wizard stays on the username step
		}
		w.Fail("Something went wrong. Please try again later.")
		return nil, err
	}

	// Step 3: create the identity record
	subjectID, err := s.gateway.CreateIdentity(ctx, draft.Email, draft.Password)
	if err != nil {
		if err == core.ErrEmailTaken {
			w.Fail("An account with this email already exists.")
			return nil, err
		}
		w.Fail("Something went wrong. Please try again later.")
		return nil, fmt.Errorf("failed to create identity: %w", err)
	}

	// Step 4: generate the human-readable account id
	accountID, err := s.GenerateAccountID(ctx)
	if err != nil {
		w.Fail("Something went wrong. Please try again later.")
		s.log.Error("account id generation failed after identity creation",
			"subject_id", subjectID, "error", err)
		return nil, err
	}

	// Step 5: insert the profile row. A failure here leaves an orphaned
	// identity; that inconsistency is logged, never silently retried.
	profile := &core.Profile{
		UserID:    subjectID,
		Email:     draft.Email,
		Name:      draft.Name,
		Age:       draft.Age,
		Username:  draft.Username,
		AccountID: accountID,
		CreatedAt: s.now().UTC(),
	}
	if err := s.gateway.InsertProfile(ctx, profile); err != nil {
		w.Fail("Something went wrong. Please try again later.")
		s.log.Error("profile insert failed, identity is orphaned",
			"subject_id", subjectID, "error", err)
		return nil, fmt.Errorf("failed to insert profile: %w", err)
	}

	w.Advance(core.StepOutput{
		Username:  &draft.Username,
		AccountID: &accountID,
	})
	return profile, nil
}
