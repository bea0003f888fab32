package pgx

import (
	"context"
	"fmt"
)

// uniqueQueries whitelists the (table, field) pairs CheckFieldUnique may
// probe; anything else is a programming error, not a query to run.
var uniqueQueries = map[string]string{
	"users.email":         `SELECT EXISTS (SELECT 1 FROM public.users WHERE lower(email) = lower($1))`,
	"profiles.username":   `SELECT EXISTS (SELECT 1 FROM public.profiles WHERE lower(username) = lower($1))`,
	"profiles.account_id": `SELECT EXISTS (SELECT 1 FROM public.profiles WHERE account_id = $1)`,
}

func (a *Adapter) CheckFieldUnique(ctx context.Context, table, field, value string) (bool, error) {
	q, ok := uniqueQueries[table+"."+field]
	if !ok {
		return false, fmt.Errorf("uniqueness check not allowed for %s.%s", table, field)
	}

	var exists bool
	if err := a.pool.QueryRow(ctx, q, value).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}
