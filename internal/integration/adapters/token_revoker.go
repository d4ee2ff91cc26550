// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finex/backend/internal/application/adapter"
)

// redisTokenRevoker implements adapter.TokenRevoker with expiring Redis keys.
type redisTokenRevoker struct {
	client *redis.Client
}

// NewRedisTokenRevoker creates a Redis backed token revoker.
func NewRedisTokenRevoker(client *redis.Client) adapter.TokenRevoker {
	return &redisTokenRevoker{
		client: client,
	}
}

func revokedKey(tokenID string) string {
	return "finex:revoked:" + tokenID
}

// Revoke marks the token id as revoked until the given time.
func (r *redisTokenRevoker) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.client.Set(ctx, revokedKey(tokenID), 1, ttl).Err()
}

// IsRevoked reports whether the token id was revoked.
func (r *redisTokenRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	err := r.client.Get(ctx, revokedKey(tokenID)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// memoryTokenRevoker implements adapter.TokenRevoker for a single process.
type memoryTokenRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

// NewMemoryTokenRevoker creates an in-process token revoker.
func NewMemoryTokenRevoker() adapter.TokenRevoker {
	return &memoryTokenRevoker{
		revoked: make(map[string]time.Time),
	}
}

// Revoke marks the token id as revoked until the given time.
func (r *memoryTokenRevoker) Revoke(_ context.Context, tokenID string, until time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	for id, expiry := range r.revoked {
		if now.After(expiry) {
			delete(r.revoked, id)
		}
	}
	r.revoked[tokenID] = until
	return nil
}

// IsRevoked reports whether the token id was revoked.
func (r *memoryTokenRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	until, ok := r.revoked[tokenID]
	return ok && time.Now().Before(until), nil
}
