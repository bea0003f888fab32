// Package mindfultrack wires the wellness tracker's services together: a
// multi-step signup wizard, password sign-in with opaque sessions, daily
// mood/sleep/journal entries, and an AI suggestion chain with a fixed
// fallback.
package mindfultrack

import (
	"time"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/crypto"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
	"github.com/mindfultrack/mindfultrack/services"
)

// interfaces
type (
	Storage            = core.Storage
	Cache              = core.Cache
	AccountGateway     = core.AccountGateway
	SuggestionProvider = core.SuggestionProvider
	PasswordHandler    = crypto.PasswordHandler
)

// structs
type (
	User       = core.User
	Profile    = core.Profile
	Session    = core.Session
	Wizard     = core.Wizard
	Draft      = core.Draft
	StepOutput = core.StepOutput
)

const (
	defaultBasePath = "/api/auth"
)

// Constructors & helpers (convenience re-exports)
var (
	NewInMemoryCache     = core.NewInMemoryCache
	NewArgon2            = crypto.NewArgon2
	DefaultSessionConfig = core.DefaultSessionConfig
)

var (
	ErrEmailTaken         = core.ErrEmailTaken
	ErrUsernameTaken      = core.ErrUsernameTaken
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrEmailNotVerified   = core.ErrEmailNotVerified
	ErrUserNotFound       = core.ErrUserNotFound
	ErrWizardNotFound     = core.ErrWizardNotFound
	ErrRemoteUnavailable  = core.ErrRemoteUnavailable
)

var (
	ErrInvalidToken    = core.ErrInvalidToken
	ErrSessionNotFound = core.ErrSessionNotFound
	ErrSessionExpired  = core.ErrSessionExpired
)

var (
	ErrStorageRequired = core.ErrStorageRequired
)

// Config assembles an App. Storage is the only hard requirement;
// everything else gets a sensible default.
type Config struct {
	Storage core.Storage
	Logger  *logger.Logger

	// Suggestion providers, tried in order. An empty list means every
	// submission gets the fixed fallback suggestion.
	Providers []core.SuggestionProvider

	// Optional config
	Cache          core.Cache
	DisableCache   bool
	SessionConfig  *core.SessionConfig
	PasswordHasher crypto.PasswordHandler
	WizardTTL      time.Duration
	BasePath       string
}

// App bundles the assembled services for adapters to register against.
type App struct {
	Auth        *services.AuthService
	Signup      *services.SignupService
	Wizards     *services.WizardRegistry
	Entries     *services.EntryService
	Accounts    *services.AccountService
	Sessions    *core.SessionManager
	Suggestions *services.SuggestionChain
	Log         *logger.Logger
	BasePath    string
}

func New(config Config) (*App, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set defaults

	log := config.Logger
	if log == nil {
		var err error
		log, err = logger.New("development")
		if err != nil {
			return nil, err
		}
	}

	cache := config.Cache
	if cache == nil && !config.DisableCache {
		cache = core.NewInMemoryCache(core.CacheConfig{
			TTL:     5 * time.Minute,
			MaxSize: 500,
		})
	}

	sessionConfig := config.SessionConfig
	if sessionConfig == nil {
		c := core.DefaultSessionConfig()
		sessionConfig = &c
	}

	passwordHasher := config.PasswordHasher
	if passwordHasher == nil {
		passwordHasher = crypto.NewArgon2()
	}

	basePath := config.BasePath
	if basePath == "" {
		basePath = defaultBasePath
	}

	sessions := core.NewSessionManager(*sessionConfig, config.Storage, cache)
	gateway := services.NewStorageGateway(config.Storage, passwordHasher, log)
	chain := services.NewSuggestionChain(log, config.Providers...)

	return &App{
		Auth:        services.NewAuthService(config.Storage, sessions, passwordHasher, log),
		Signup:      services.NewSignupService(gateway, log),
		Wizards:     services.NewWizardRegistry(config.WizardTTL),
		Entries:     services.NewEntryService(config.Storage, chain, log),
		Accounts:    services.NewAccountService(config.Storage, sessions, log),
		Sessions:    sessions,
		Suggestions: chain,
		Log:         log,
		BasePath:    basePath,
	}, nil
}
