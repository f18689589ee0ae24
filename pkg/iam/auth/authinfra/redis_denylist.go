package authinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisTokenDenylist stores revoked token IDs with a TTL matching the token expiry
type RedisTokenDenylist struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisTokenDenylist creates a Redis backed denylist
func NewRedisTokenDenylist(client *redis.Client) *RedisTokenDenylist {
	return &RedisTokenDenylist{
		client: client,
		prefix: "auth:revoked:",
		now:    time.Now,
	}
}

// Revoke marks tokenID as revoked until the given time
func (d *RedisTokenDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := until.Sub(d.now())
	if ttl <= 0 {
		return nil
	}
	if err := d.client.Set(ctx, d.prefix+tokenID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("revoke token %s: %w", tokenID, err)
	}
	return nil
}

// IsRevoked reports whether tokenID was signed out
func (d *RedisTokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.prefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("check token %s: %w", tokenID, err)
	}
	return n > 0, nil
}
