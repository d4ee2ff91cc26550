package adapters

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finex/backend/internal/domain/entity"
	domainerror "github.com/finex/backend/internal/domain/error"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return server, client
}

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("secret", time.Hour)
	operatorID := uuid.New()

	token, issued, err := service.GenerateSessionToken(context.Background(), entity.Session{
		OperatorID: operatorID,
		Username:   "joao",
		Name:       "João",
		Color:      entity.OperatorColorPurple,
		Locale:     "fr",
	})
	require.NoError(t, err)
	require.NotEmpty(t, issued.TokenID)

	session, err := service.ValidateSessionToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, issued.TokenID, session.TokenID)
	assert.Equal(t, operatorID, session.OperatorID)
	assert.Equal(t, "joao", session.Username)
	assert.Equal(t, "João", session.Name)
	assert.Equal(t, entity.OperatorColorPurple, session.Color)
	assert.Equal(t, "fr", session.Locale)
}

func TestTokenService_Expired(t *testing.T) {
	service := NewTokenService("secret", -time.Minute)

	token, _, err := service.GenerateSessionToken(context.Background(), entity.Session{OperatorID: uuid.New()})
	require.NoError(t, err)

	_, err = service.ValidateSessionToken(context.Background(), token)
	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
}

func TestTokenService_RejectsForeignSignature(t *testing.T) {
	token, _, err := NewTokenService("other", time.Hour).
		GenerateSessionToken(context.Background(), entity.Session{OperatorID: uuid.New()})
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).ValidateSessionToken(context.Background(), token)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_RejectsNoneAlgorithm(t *testing.T) {
	claims := SessionClaims{
		OperatorID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenService("secret", time.Hour).ValidateSessionToken(context.Background(), token)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := &passwordService{cost: 4}

	hash, err := service.HashPassword("admin_2026")
	require.NoError(t, err)

	assert.NoError(t, service.VerifyPassword(hash, "admin_2026"))
	assert.Error(t, service.VerifyPassword(hash, "admin_2025"))
}

func TestRedisCodeLocker_SerializesHolders(t *testing.T) {
	server, client := newMiniRedis(t)
	locker := NewRedisCodeLocker(client)
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "product-code:1:JOA")
	require.NoError(t, err)
	assert.True(t, server.Exists("finex:lock:product-code:1:JOA"))

	waitCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(waitCtx, "product-code:1:JOA")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	unlock()
	assert.False(t, server.Exists("finex:lock:product-code:1:JOA"))

	unlock, err = locker.Lock(ctx, "product-code:1:JOA")
	require.NoError(t, err)
	unlock()
}

func TestRedisCodeLocker_UnlockKeepsForeignHolder(t *testing.T) {
	server, client := newMiniRedis(t)
	locker := NewRedisCodeLocker(client)

	unlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)

	// Key expired and was taken by another instance
	require.NoError(t, server.Set("finex:lock:k", "someone-else"))
	unlock()

	value, err := server.Get("finex:lock:k")
	require.NoError(t, err)
	assert.Equal(t, "someone-else", value)
}

func TestMemoryCodeLocker_MutualExclusion(t *testing.T) {
	locker := NewMemoryCodeLocker()
	ctx := context.Background()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		holders int
		maxSeen int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			unlock, err := locker.Lock(ctx, "same")
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			holders++
			if holders > maxSeen {
				maxSeen = holders
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			holders--
			mu.Unlock()
			unlock()
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestMemoryCodeLocker_HonoursContext(t *testing.T) {
	locker := NewMemoryCodeLocker()
	unlock, err := locker.Lock(context.Background(), "k")
	require.NoError(t, err)
	defer unlock()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = locker.Lock(ctx, "k")
	assert.ErrorIs(t, err, context.Canceled)

	unlockOther, err := locker.Lock(context.Background(), "other")
	require.NoError(t, err)
	unlockOther()
}

func TestRedisTokenRevoker(t *testing.T) {
	server, client := newMiniRedis(t)
	revoker := NewRedisTokenRevoker(client)
	ctx := context.Background()

	revoked, err := revoker.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, revoker.Revoke(ctx, "tok", time.Now().Add(time.Minute)))
	revoked, err = revoker.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.True(t, revoked)

	server.FastForward(2 * time.Minute)
	revoked, err = revoker.IsRevoked(ctx, "tok")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisTokenRevoker_PastExpiryIsNoop(t *testing.T) {
	server, client := newMiniRedis(t)
	revoker := NewRedisTokenRevoker(client)

	require.NoError(t, revoker.Revoke(context.Background(), "old", time.Now().Add(-time.Minute)))
	assert.False(t, server.Exists(revokedKey("old")))
}

func TestMemoryTokenRevoker(t *testing.T) {
	revoker := NewMemoryTokenRevoker()
	ctx := context.Background()

	require.NoError(t, revoker.Revoke(ctx, "live", time.Now().Add(time.Hour)))
	require.NoError(t, revoker.Revoke(ctx, "gone", time.Now().Add(-time.Second)))

	revoked, err := revoker.IsRevoked(ctx, "live")
	require.NoError(t, err)
	assert.True(t, revoked)

	revoked, err = revoker.IsRevoked(ctx, "gone")
	require.NoError(t, err)
	assert.False(t, revoked)
}
