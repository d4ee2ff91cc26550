package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finex/backend/internal/application/usecase/auth"
	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
	"github.com/finex/backend/internal/integration/adapters"
	"github.com/finex/backend/internal/integration/entrypoint/dto"
	"github.com/finex/backend/internal/integration/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.Use(Locale())
	engine.GET("/", append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"locale": GetLocale(c)})
	})...)
	return engine
}

func get(engine *gin.Engine, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for key, values := range header {
		req.Header[key] = values
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLocale(t *testing.T) {
	engine := newEngine()

	rec := get(engine, http.Header{"Accept-Language": {"fr-CA,fr;q=0.9"}})
	assert.JSONEq(t, `{"locale":"fr"}`, rec.Body.String())

	rec = get(engine, http.Header{"Accept-Language": {"de-DE"}})
	assert.JSONEq(t, `{"locale":"pt"}`, rec.Body.String())

	rec = get(engine, nil)
	assert.JSONEq(t, `{"locale":"pt"}`, rec.Body.String())
}

func TestRateLimiter_Memory(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{Enabled: true, MaxAttempts: 2, WindowDuration: time.Minute}, nil, i18n.NewTranslator())
	engine := newEngine(limiter.Middleware())

	assert.Equal(t, http.StatusOK, get(engine, nil).Code)
	assert.Equal(t, http.StatusOK, get(engine, nil).Code)

	rec := get(engine, http.Header{"Accept-Language": {"fr"}})
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, string(domainerror.ErrCodeRateLimited), body.Code)
	assert.Equal(t, i18n.NewTranslator().T(i18n.French, i18n.KeyTooManyLoginAttempts), body.Error)
}

func TestRateLimiter_Redis(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiter(RateLimiterConfig{Enabled: true, MaxAttempts: 1, WindowDuration: time.Minute}, client, i18n.NewTranslator())
	engine := newEngine(limiter.Middleware())

	assert.Equal(t, http.StatusOK, get(engine, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(engine, nil).Code)

	keys := server.Keys()
	require.Len(t, keys, 1)
	assert.Contains(t, keys[0], "finex:ratelimit:login:")
	assert.Equal(t, time.Minute, server.TTL(keys[0]))

	server.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, get(engine, nil).Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	server.Close()

	limiter := NewRateLimiter(RateLimiterConfig{Enabled: true, MaxAttempts: 1}, client, i18n.NewTranslator())
	engine := newEngine(limiter.Middleware())

	assert.Equal(t, http.StatusOK, get(engine, nil).Code)
	assert.Equal(t, http.StatusOK, get(engine, nil).Code)
}

func TestRateLimiter_Disabled(t *testing.T) {
	limiter := NewRateLimiter(RateLimiterConfig{MaxAttempts: 1}, nil, i18n.NewTranslator())
	engine := newEngine(limiter.Middleware())

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, get(engine, nil).Code)
	}
}

func TestAuthenticate(t *testing.T) {
	tokens := adapters.NewTokenService("middleware-test-secret", time.Hour)
	revoker := adapters.NewMemoryTokenRevoker()
	authMiddleware := NewAuthMiddleware(auth.NewResolveSessionUseCase(tokens, revoker), i18n.NewTranslator())

	engine := gin.New()
	engine.Use(Locale())
	engine.GET("/", authMiddleware.Authenticate(), func(c *gin.Context) {
		session, ok := GetSessionFromContext(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"username": session.Username, "locale": GetLocale(c)})
	})

	token, session, err := tokens.GenerateSessionToken(context.Background(), entity.Session{
		OperatorID: uuid.New(),
		Username:   "joana",
		Name:       "Joana",
		Color:      entity.OperatorColorPurple,
		Locale:     i18n.French,
	})
	require.NoError(t, err)

	t.Run("missing header", func(t *testing.T) {
		rec := get(engine, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeMissingToken), decodeError(t, rec).Code)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		rec := get(engine, http.Header{"Authorization": {"Basic " + token}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeInvalidToken), decodeError(t, rec).Code)
	})

	t.Run("session locale wins over the header", func(t *testing.T) {
		rec := get(engine, http.Header{
			"Authorization":   {"Bearer " + token},
			"Accept-Language": {"pt-BR"},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"username":"joana","locale":"fr"}`, rec.Body.String())
	})

	t.Run("revoked", func(t *testing.T) {
		require.NoError(t, revoker.Revoke(context.Background(), session.TokenID, session.ExpiresAt))

		rec := get(engine, http.Header{"Authorization": {"Bearer " + token}})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, string(domainerror.ErrCodeRevokedToken), decodeError(t, rec).Code)
	})
}
