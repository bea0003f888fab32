package pgx

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/mindfultrack/mindfultrack/core"
)

func (a *Adapter) CreateUser(ctx context.Context, user *core.User) error {
	query := `INSERT INTO public.users (id, email, email_verified, password_hash) VALUES ($1, $2, $3, $4) RETURNING created_at, updated_at`

	var createdAt, updatedAt time.Time
	err := a.pool.QueryRow(ctx, query, user.ID, user.Email, user.EmailVerified, user.PasswordHash).Scan(&createdAt, &updatedAt)
	if err != nil {
		if uniqueViolation(err) != "" {
			return core.ErrEmailTaken
		}
		return err
	}

	user.CreatedAt = createdAt
	user.UpdatedAt = updatedAt
	return nil
}

func (a *Adapter) GetUserByID(ctx context.Context, id string) (*core.User, error) {
	q := `SELECT id, email, email_verified, password_hash, created_at, updated_at FROM public.users WHERE id = $1`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, id).Scan(&user.ID, &user.Email, &user.EmailVerified, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	q := `SELECT id, email, email_verified, password_hash, created_at, updated_at FROM public.users WHERE lower(email) = lower($1)`

	user := &core.User{}
	err := a.pool.QueryRow(ctx, q, email).Scan(&user.ID, &user.Email, &user.EmailVerified, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (a *Adapter) MarkEmailVerified(ctx context.Context, id string) error {
	q := `UPDATE public.users SET email_verified = true, updated_at = now() WHERE id = $1`
	tag, err := a.pool.Exec(ctx, q, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return core.ErrUserNotFound
	}
	return nil
}

func (a *Adapter) DeleteUser(ctx context.Context, id string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.users WHERE id = $1`, id)
	return err
}
