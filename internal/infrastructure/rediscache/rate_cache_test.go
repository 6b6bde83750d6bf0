package rediscache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Graphi-api/pkg/config"
)

func getRedisClient(t *testing.T) *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		t.Skipf("Redis not available: %v", err)
	}
	return client
}

func TestRateCache_SetGet(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()
	ctx := context.Background()
	cache := NewRateCache(client, time.Minute)
	require.NoError(t, cache.Invalidate(ctx, "TST"))

	_, ok, err := cache.Get(ctx, "TST", "NGN")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "TST", "NGN", decimal.RequireFromString("1500.25")))
	rate, ok, err := cache.Get(ctx, "TST", "NGN")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, rate.Equal(decimal.RequireFromString("1500.25")))

	ttl := client.TTL(ctx, rateKey("TST", "NGN")).Val()
	assert.Greater(t, ttl, time.Duration(0))
}

func TestRateCache_Invalidate(t *testing.T) {
	client := getRedisClient(t)
	defer client.Close()
	ctx := context.Background()
	cache := NewRateCache(client, time.Minute)

	require.NoError(t, cache.Set(ctx, "TST", "NGN", decimal.NewFromInt(1500)))
	require.NoError(t, cache.Set(ctx, "TST", "EUR", decimal.RequireFromString("0.9")))
	require.NoError(t, cache.Set(ctx, "OTH", "EUR", decimal.RequireFromString("0.5")))

	require.NoError(t, cache.Invalidate(ctx, "TST"))

	_, ok, _ := cache.Get(ctx, "TST", "NGN")
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, "TST", "EUR")
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, "OTH", "EUR")
	assert.True(t, ok)
	require.NoError(t, cache.Invalidate(ctx, "OTH"))
}

func TestNewClient_EmptyAddrDisablesCache(t *testing.T) {
	client, err := NewClient(context.Background(), config.RedisConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)
}
