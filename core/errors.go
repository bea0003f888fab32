package core

import "errors"

// Validation errors (client input, never touch the network)
var (
	ErrInvalidEmail     = errors.New("invalid email format")                                                            // 400
	ErrInvalidUsername  = errors.New("username may only contain letters, digits, '_' or '-' and must contain a letter") // 400
	ErrWeakPassword     = errors.New("password must be at least 8 characters")                                          // 400
	ErrPasswordMismatch = errors.New("passwords do not match")                                                          // 400
	ErrInvalidName      = errors.New("name is required")                                                                // 400
	ErrInvalidAge       = errors.New("age must be a positive number of up to 3 digits")                                 // 400
	ErrInvalidMood      = errors.New("mood must be between 1 and 5")                                                    // 400
	ErrInvalidSleep     = errors.New("sleep hours must be zero or more")                                                // 400
	ErrEmptyJournal     = errors.New("journal entry is empty")                                                          // 400
	ErrIncompleteDraft  = errors.New("signup draft is incomplete")                                                      // 400
)

// Uniqueness conflicts (a remote check found an existing row)
var (
	ErrEmailTaken    = errors.New("an account with this email already exists") // 409
	ErrUsernameTaken = errors.New("that username is taken")                    // 409
)

// Remote failures
var (
	ErrRemoteUnavailable   = errors.New("something went wrong")                   // 500, transport
	ErrIdentityRejected    = errors.New("identity service rejected the signup")   // 500, domain rejection
	ErrGenerationExhausted = errors.New("could not generate a unique account id") // 500
	ErrPartialWrite        = errors.New("daily entry was only partially written") // 500, no rollback
	ErrEntryNotSubmitted   = errors.New("daily entry could not be submitted")     // 500
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid email or password")  // 401
	ErrEmailNotVerified   = errors.New("email address not verified") // 401
	ErrUserNotFound       = errors.New("user not found")             // 404
	ErrProfileNotFound    = errors.New("profile not found")          // 404
)

// Session errors
var (
	ErrMissingAuthHeader = errors.New("missing authorization header") // 401
	ErrInvalidToken      = errors.New("invalid session token")        // 401
	ErrSessionNotFound   = errors.New("session not found")            // 401
	ErrSessionExpired    = errors.New("session expired")              // 401
	ErrCacheNotFound     = errors.New("session not found in cache")
)

// Wizard errors
var (
	ErrWizardNotFound = errors.New("signup session not found or expired") // 404
)

// Config errors (server-side configuration)
var (
	ErrStorageRequired = errors.New("storage adapter is required") // 500
	ErrLoggerRequired  = errors.New("logger is required")          // 500
)
