package auth

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "tube-go")

	token, err := m.Generate(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.Parse(token)
	require.NoError(t, err)
	require.EqualValues(t, 42, claims.UserID)
	require.Equal(t, "tube-go", claims.Issuer)
	require.NotEmpty(t, claims.ID)
}

func TestTokenUniqueJTI(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "tube-go")

	first, err := m.Generate(1)
	require.NoError(t, err)
	second, err := m.Generate(1)
	require.NoError(t, err)

	firstClaims, err := m.Parse(first)
	require.NoError(t, err)
	secondClaims, err := m.Parse(second)
	require.NoError(t, err)
	require.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestTokenWrongSecret(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "tube-go")
	other := NewTokenManager("other-secret", time.Hour, "tube-go")

	token, err := m.Generate(42)
	require.NoError(t, err)

	_, err = other.Parse(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	m := NewTokenManager("secret", -time.Minute, "tube-go")

	token, err := m.Generate(42)
	require.NoError(t, err)

	_, err = m.Parse(token)
	require.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenGarbage(t *testing.T) {
	m := NewTokenManager("secret", time.Hour, "tube-go")

	_, err := m.Parse("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestDenylist(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	d := NewDenylist(client)
	ctx := context.Background()

	require.False(t, d.IsRevoked(ctx, "jti-1"))

	require.NoError(t, d.Revoke(ctx, "jti-1", time.Minute))
	require.True(t, d.IsRevoked(ctx, "jti-1"))
	require.False(t, d.IsRevoked(ctx, "jti-2"))

	// TTL 到期后自动移出名单
	mr.FastForward(2 * time.Minute)
	require.False(t, d.IsRevoked(ctx, "jti-1"))
}

func TestDenylistExpiredTokenNoop(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	d := NewDenylist(client)

	// 令牌已过期时无需写入
	require.NoError(t, d.Revoke(context.Background(), "jti-1", -time.Second))
	require.False(t, d.IsRevoked(context.Background(), "jti-1"))
}

func TestDenylistNilSafe(t *testing.T) {
	var d *Denylist
	require.False(t, d.IsRevoked(context.Background(), "jti-1"))
}
