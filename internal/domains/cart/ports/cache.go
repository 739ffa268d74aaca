package ports

import (
	"context"
	"errors"

	"github.com/nexashop/storefront/internal/domains/cart/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache is a read-through cache in front of the cart repository.
type Cache interface {
	Get(ctx context.Context, visitorID string) (*domain.Cart, error)
	Set(ctx context.Context, visitorID string, cart *domain.Cart) error
	Delete(ctx context.Context, visitorID string) error
}

// NoopCache is a safe default when no cache backend is configured.
var NoopCache Cache = noopCache{}

type noopCache struct{}

func (noopCache) Get(_ context.Context, _ string) (*domain.Cart, error) { return nil, ErrCacheMiss }
func (noopCache) Set(_ context.Context, _ string, _ *domain.Cart) error { return nil }
func (noopCache) Delete(_ context.Context, _ string) error              { return nil }
