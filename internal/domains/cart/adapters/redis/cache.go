package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nexashop/storefront/internal/domains/cart/domain"
	"github.com/nexashop/storefront/internal/domains/cart/ports"
)

var _ ports.Cache = (*Cache)(nil)

// Cache keeps recently read carts in Redis with a jittered TTL.
type Cache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client, baseTTL: 15 * time.Minute}
}

func (c *Cache) Get(ctx context.Context, visitorID string) (*domain.Cart, error) {
	data, err := c.client.Get(ctx, cacheKey(visitorID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ports.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}
	var cart domain.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("unmarshal cart failed: %w", err)
	}
	return &cart, nil
}

func (c *Cache) Set(ctx context.Context, visitorID string, cart *domain.Cart) error {
	blob, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	// jitter spreads expiry so a popular deploy doesn't refill all at once
	ttl := c.baseTTL + time.Duration(rand.Intn(5))*time.Minute
	if err := c.client.Set(ctx, cacheKey(visitorID), blob, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *Cache) Delete(ctx context.Context, visitorID string) error {
	if err := c.client.Del(ctx, cacheKey(visitorID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cacheKey(visitorID string) string {
	return "cart:" + visitorID
}
