package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// TokenRevocation stores a per-user revoked-before mark in Redis. Session
// tokens issued at or before the mark are rejected by the auth middleware.
// Keys expire after the token lifetime, by which time every affected token
// has expired on its own.
type TokenRevocation struct {
	client *redisv9.Client
}

func NewTokenRevocation(client *redisv9.Client) *TokenRevocation {
	return &TokenRevocation{client: client}
}

func (t *TokenRevocation) RevokeAll(ctx context.Context, userID string, ttl time.Duration) error {
	key := revocationKey(userID)
	value := strconv.FormatInt(time.Now().Unix(), 10)
	if err := t.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("set revocation mark failed: %w", err)
	}
	return nil
}

func (t *TokenRevocation) IsRevoked(ctx context.Context, userID string, issuedAt time.Time) (bool, error) {
	raw, err := t.client.Get(ctx, revocationKey(userID)).Result()
	if err != nil {
		if errors.Is(err, redisv9.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get revocation mark failed: %w", err)
	}

	mark, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return false, fmt.Errorf("parse revocation mark failed: %w", err)
	}
	return !issuedAt.After(time.Unix(mark, 0)), nil
}

func revocationKey(userID string) string {
	return "auth:revoked:" + userID
}
