package pgx

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/mindfultrack/mindfultrack/core"
)

func (a *Adapter) InsertProfile(ctx context.Context, p *core.Profile) error {
	query := `INSERT INTO public.profiles (user_id, email, name, age, username, account_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := a.pool.Exec(ctx, query, p.UserID, p.Email, p.Name, p.Age, p.Username, p.AccountID, p.CreatedAt)
	if err != nil {
		switch constraint := uniqueViolation(err); {
		case strings.Contains(constraint, "username"):
			return core.ErrUsernameTaken
		case constraint != "":
			return fmt.Errorf("profile conflicts on %s: %w", constraint, err)
		}
		return err
	}
	return nil
}

func (a *Adapter) GetProfileByUserID(ctx context.Context, userID string) (*core.Profile, error) {
	q := `SELECT user_id, email, name, age, username, account_id, created_at FROM public.profiles WHERE user_id = $1`

	p := &core.Profile{}
	err := a.pool.QueryRow(ctx, q, userID).Scan(&p.UserID, &p.Email, &p.Name, &p.Age, &p.Username, &p.AccountID, &p.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, core.ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func (a *Adapter) DeleteProfile(ctx context.Context, userID string) error {
	_, err := a.pool.Exec(ctx, `DELETE FROM public.profiles WHERE user_id = $1`, userID)
	return err
}
