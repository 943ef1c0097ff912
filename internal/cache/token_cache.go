package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenCache tracks revoked session tokens by their JWT ID
type TokenCache interface {
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type tokenCache struct {
	client *redis.Client
}

// NewTokenCache creates a new token revocation cache
func NewTokenCache(client *redis.Client) TokenCache {
	return &tokenCache{
		client: client,
	}
}

func (c *tokenCache) key(tokenID string) string {
	return "token:revoked:" + tokenID
}

// Revoke keeps the entry only until the token would have expired anyway
func (c *tokenCache) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		return nil
	}
	return c.client.Set(ctx, c.key(tokenID), "1", ttl).Err()
}

func (c *tokenCache) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := c.client.Exists(ctx, c.key(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
