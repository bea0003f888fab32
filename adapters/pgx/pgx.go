// Package pgx is the PostgreSQL storage adapter. The schema (see
// schema.sql) carries unique constraints on users.email,
// profiles.username and profiles.account_id; those constraints, not the
// application-level checks, are what make the check-then-insert signup
// flow safe against concurrent signups.
package pgx

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindfultrack/mindfultrack/core"
)

type Adapter struct {
	pool *pgxpool.Pool
}

var _ core.Storage = (*Adapter)(nil)

func New(pool *pgxpool.Pool) *Adapter {
	return &Adapter{
		pool: pool,
	}
}

// uniqueViolation returns the violated constraint name, or "" when the
// error is not a unique violation.
func uniqueViolation(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return pgErr.ConstraintName
	}
	return ""
}
