// Package redis provides a Redis-backed session cache so multiple server
// instances can share one cache.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mindfultrack/mindfultrack/core"
)

const defaultPrefix = "mt:session:"

type Config struct {
	// TTL bounds how long a cached session lives; the authoritative
	// expiry stays on the stored session row.
	TTL    time.Duration
	Prefix string
}

// Cache implements core.Cache on a Redis client. The Cache port has no
// context parameter, so operations run on a background context bounded by
// a short timeout.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

var _ core.Cache = (*Cache)(nil)

func New(client *redis.Client, config Config) *Cache {
	ttl := config.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	prefix := config.Prefix
	if prefix == "" {
		prefix = defaultPrefix
	}
	return &Cache{client: client, ttl: ttl, prefix: prefix}
}

func (c *Cache) Get(tokenHash string) (*core.Session, error) {
	ctx, cancel := c.opContext()
	defer cancel()

	payload, err := c.client.Get(ctx, c.prefix+tokenHash).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, core.ErrCacheNotFound
		}
		return nil, fmt.Errorf("cache get failed: %w", err)
	}

	session := &core.Session{}
	if err := json.Unmarshal(payload, session); err != nil {
		return nil, fmt.Errorf("cache entry corrupt: %w", err)
	}
	return session, nil
}

func (c *Cache) Set(tokenHash string, session *core.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	ttl := c.ttl
	if until := time.Until(session.ExpiresAt); until > 0 && until < ttl {
		ttl = until
	}

	ctx, cancel := c.opContext()
	defer cancel()
	return c.client.Set(ctx, c.prefix+tokenHash, payload, ttl).Err()
}

func (c *Cache) Delete(tokenHash string) error {
	ctx, cancel := c.opContext()
	defer cancel()
	return c.client.Del(ctx, c.prefix+tokenHash).Err()
}

// Clear removes every cached session under the prefix.
func (c *Cache) Clear() error {
	ctx, cancel := c.opContext()
	defer cancel()

	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (c *Cache) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 3*time.Second)
}
