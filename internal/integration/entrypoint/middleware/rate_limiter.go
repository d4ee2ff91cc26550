package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/i18n"
)

const (
	// defaultMaxAttempts is the default number of allowed attempts per window.
	defaultMaxAttempts = 5
	// defaultWindowDuration is the default time window for rate limiting.
	defaultWindowDuration = 1 * time.Minute
)

// attemptCounter counts hits of a key within a fixed window.
type attemptCounter interface {
	hit(ctx context.Context, key string, window time.Duration) (int, error)
}

// RateLimiter provides IP-based rate limiting functionality.
type RateLimiter struct {
	counter        attemptCounter
	translator     *i18n.Translator
	maxAttempts    int
	windowDuration time.Duration
	enabled        bool
}

// RateLimiterConfig holds rate limiter settings.
type RateLimiterConfig struct {
	Enabled        bool
	MaxAttempts    int
	WindowDuration time.Duration
}

// NewRateLimiter creates a rate limiter. A nil Redis client keeps counters in memory.
func NewRateLimiter(cfg RateLimiterConfig, client *redis.Client, translator *i18n.Translator) *RateLimiter {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = defaultMaxAttempts
	}
	if cfg.WindowDuration <= 0 {
		cfg.WindowDuration = defaultWindowDuration
	}

	var counter attemptCounter = newMemoryCounter()
	if client != nil {
		counter = &redisCounter{client: client}
	}

	return &RateLimiter{
		counter:        counter,
		translator:     translator,
		maxAttempts:    cfg.MaxAttempts,
		windowDuration: cfg.WindowDuration,
		enabled:        cfg.Enabled,
	}
}

// Middleware returns a Gin middleware handler that enforces rate limiting.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.enabled {
			c.Next()
			return
		}

		clientIP := c.ClientIP()
		if clientIP == "" {
			clientIP = c.Request.RemoteAddr
		}

		attempts, err := rl.counter.hit(c.Request.Context(), "finex:ratelimit:login:"+clientIP, rl.windowDuration)
		if err != nil {
			// Counter unavailable: let the request through
			slog.Warn("rate limiter unavailable", "error", err)
			c.Next()
			return
		}

		if attempts > rl.maxAttempts {
			c.JSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: rl.translator.T(GetLocale(c), i18n.KeyTooManyLoginAttempts),
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

// rateLimitEntry tracks rate limit data for a single key.
type rateLimitEntry struct {
	attempts  int
	resetTime time.Time
}

type memoryCounter struct {
	mu      sync.Mutex
	entries map[string]*rateLimitEntry
}

func newMemoryCounter() *memoryCounter {
	return &memoryCounter{
		entries: make(map[string]*rateLimitEntry),
	}
}

func (m *memoryCounter) hit(_ context.Context, key string, window time.Duration) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for k, entry := range m.entries {
		if now.After(entry.resetTime) {
			delete(m.entries, k)
		}
	}

	entry, exists := m.entries[key]
	if !exists {
		entry = &rateLimitEntry{resetTime: now.Add(window)}
		m.entries[key] = entry
	}
	entry.attempts++
	return entry.attempts, nil
}

type redisCounter struct {
	client *redis.Client
}

func (r *redisCounter) hit(ctx context.Context, key string, window time.Duration) (int, error) {
	attempts, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if attempts == 1 {
		if err := r.client.Expire(ctx, key, window).Err(); err != nil {
			return 0, err
		}
	}
	return int(attempts), nil
}
