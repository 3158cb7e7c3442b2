//go:build integration

package redis_test

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/jhoicas/vales-api/internal/infrastructure/redis"
	"github.com/jhoicas/vales-api/pkg/config"
)

func TestTokenDenylist(t *testing.T) {
	ctx := context.Background()

	rdC, err := tcRedis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	uri, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := goredis.ParseURL(uri)
	require.NoError(t, err)

	client, err := redis.Connect(ctx, config.RedisConfig{Addr: opts.Addr})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	list := redis.NewTokenDenylist(client)

	revoked, err := list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "jti-1", time.Minute))
	revoked, err = list.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ttl, err := client.TTL(ctx, "vales:revoked:jti-1").Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, 50*time.Second)

	require.NoError(t, list.Revoke(ctx, "jti-corto", 1100*time.Millisecond))
	assert.Eventually(t, func() bool {
		r, err := list.IsRevoked(ctx, "jti-corto")
		return err == nil && !r
	}, 5*time.Second, 200*time.Millisecond, "la revocación expira con el token")
}

func TestConnect_DireccionInvalida(t *testing.T) {
	_, err := redis.Connect(context.Background(), config.RedisConfig{Addr: "127.0.0.1:1"})
	assert.Error(t, err)
}
