// Package rediscache caché de tasas de cambio en Redis.
package rediscache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Graphi-api/internal/application/currency"
	"github.com/jhoicas/Graphi-api/pkg/config"
)

const rateKeyPrefix = "fx:rate:"

var _ currency.RateCache = (*RateCache)(nil)

// NewClient abre el cliente Redis y verifica la conexión. Devuelve nil, nil si Addr está vacío.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// RateCache guarda tasas base→moneda como texto decimal con TTL.
type RateCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRateCache construye la caché.
func NewRateCache(client *redis.Client, ttl time.Duration) *RateCache {
	return &RateCache{client: client, ttl: ttl}
}

func rateKey(base, cur string) string {
	return rateKeyPrefix + base + ":" + cur
}

// Get devuelve ok=false si la clave no existe.
func (c *RateCache) Get(ctx context.Context, base, cur string) (decimal.Decimal, bool, error) {
	val, err := c.client.Get(ctx, rateKey(base, cur)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, err
	}
	rate, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("rate cache %s: %w", rateKey(base, cur), err)
	}
	return rate, true, nil
}

func (c *RateCache) Set(ctx context.Context, base, cur string, rate decimal.Decimal) error {
	return c.client.Set(ctx, rateKey(base, cur), rate.String(), c.ttl).Err()
}

// Invalidate elimina todas las tasas de la base (SCAN, no KEYS).
func (c *RateCache) Invalidate(ctx context.Context, base string) error {
	iter := c.client.Scan(ctx, 0, rateKeyPrefix+base+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}
