package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mindfultrack/mindfultrack/core"
	"github.com/mindfultrack/mindfultrack/pkg/crypto"
	"github.com/mindfultrack/mindfultrack/pkg/logger"
)

// StorageGateway is the default core.AccountGateway: identities and
// profiles live in the same store the rest of the app uses. Tests swap in
// a fake; the wizard only ever sees the interface.
type StorageGateway struct {
	storage   core.Storage
	passwords crypto.PasswordHandler
	log       *logger.Logger
}

var _ core.AccountGateway = (*StorageGateway)(nil)

func NewStorageGateway(storage core.Storage, passwords crypto.PasswordHandler, log *logger.Logger) *StorageGateway {
	return &StorageGateway{
		storage:   storage,
		passwords: passwords,
		log:       log,
	}
}

func (g *StorageGateway) CheckFieldUnique(ctx context.Context, table, field, value string) (bool, error) {
	return g.storage.CheckFieldUnique(ctx, table, field, value)
}

// CreateIdentity registers the credential record and returns the subject
// id. Duplicate email and weak password are domain rejections; anything
// else is a transport failure.
func (g *StorageGateway) CreateIdentity(ctx context.Context, email, password string) (string, error) {
	if !core.IsStrongPassword(password) {
		return "", fmt.Errorf("%w: %v", core.ErrIdentityRejected, core.ErrWeakPassword)
	}

	hash, err := g.passwords.Hash(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	user := &core.User{
		ID:            uuid.NewString(),
		Email:         strings.ToLower(strings.TrimSpace(email)),
		EmailVerified: false, // confirmed out-of-band before first login
		PasswordHash:  hash,
	}

	if err := g.storage.CreateUser(ctx, user); err != nil {
		if err == core.ErrEmailTaken {
			return "", err
		}
		return "", fmt.Errorf("failed to create identity: %w", err)
	}

	return user.ID, nil
}

func (g *StorageGateway) InsertProfile(ctx context.Context, p *core.Profile) error {
	return g.storage.InsertProfile(ctx, p)
}
