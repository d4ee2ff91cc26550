// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finex/backend/internal/application/adapter"
)

const (
	lockTTL        = 10 * time.Second
	lockRetryDelay = 25 * time.Millisecond
)

// Deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisCodeLocker implements adapter.CodeLocker with SET NX PX locks shared by every API instance.
type redisCodeLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCodeLocker creates a Redis backed code locker.
func NewRedisCodeLocker(client *redis.Client) adapter.CodeLocker {
	return &redisCodeLocker{
		client: client,
		ttl:    lockTTL,
	}
}

// Lock blocks until the key is held or ctx is done.
func (l *redisCodeLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = "finex:lock:" + key
	token := uuid.NewString()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(lockRetryDelay):
		}
	}

	return func() {
		// Released with a fresh context so a cancelled request still frees the key
		releaseCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = releaseScript.Run(releaseCtx, l.client, []string{key}, token).Err()
	}, nil
}

// memoryCodeLocker implements adapter.CodeLocker for a single process.
type memoryCodeLocker struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

// NewMemoryCodeLocker creates an in-process code locker.
func NewMemoryCodeLocker() adapter.CodeLocker {
	return &memoryCodeLocker{
		locks: make(map[string]chan struct{}),
	}
}

// Lock blocks until the key is held or ctx is done.
func (l *memoryCodeLocker) Lock(ctx context.Context, key string) (func(), error) {
	for {
		l.mu.Lock()
		held, busy := l.locks[key]
		if !busy {
			released := make(chan struct{})
			l.locks[key] = released
			l.mu.Unlock()

			var once sync.Once
			return func() {
				once.Do(func() {
					l.mu.Lock()
					delete(l.locks, key)
					l.mu.Unlock()
					close(released)
				})
			}, nil
		}
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-held:
		}
	}
}
