package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/nexashop/storefront/internal/domains/cart/domain"
	"github.com/nexashop/storefront/internal/domains/cart/ports"
)

// Service tracks the items a visitor intends to purchase, across requests,
// until checkout completes. Reads go cache-first; every mutation writes the
// full cart through to the repository and invalidates the cache.
type Service struct {
	repo   ports.Repository
	cache  ports.Cache
	logger *slog.Logger
	sfg    singleflight.Group // prevents cache stampede on concurrent reads
}

// NewService wires the cart service with its dependencies. A nil cache
// disables caching.
func NewService(repo ports.Repository, cache ports.Cache, logger *slog.Logger) *Service {
	if cache == nil {
		cache = ports.NoopCache
	}
	return &Service{repo: repo, cache: cache, logger: logger}
}

// Get loads the visitor's cart, returning an empty cart when none has been
// persisted yet.
func (s *Service) Get(ctx context.Context, visitorID string) (*domain.Cart, error) {
	v, err, _ := s.sfg.Do(visitorID, func() (interface{}, error) {
		cart, err := s.cache.Get(ctx, visitorID)
		if err == nil {
			return cart, nil
		}
		if !errors.Is(err, ports.ErrCacheMiss) {
			s.logWarn(ctx, "cart cache get failed", err)
		}

		cart, err = s.repo.Get(ctx, visitorID)
		if errors.Is(err, ports.ErrCartNotFound) {
			return domain.New(visitorID), nil
		}
		if err != nil {
			return nil, err
		}

		go func() {
			setCtx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			if err := s.cache.Set(setCtx, visitorID, cart); err != nil {
				s.logWarn(setCtx, "cart cache set failed", err)
			}
		}()

		return cart, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Cart), nil
}

// AddItem merges a product into the cart and persists the result.
func (s *Service) AddItem(ctx context.Context, visitorID string, product domain.ProductSnapshot, qty int) (*domain.Cart, error) {
	return s.mutate(ctx, visitorID, func(cart *domain.Cart) error {
		return cart.AddItem(product, qty)
	})
}

// RemoveItem drops a product from the cart and persists the result.
func (s *Service) RemoveItem(ctx context.Context, visitorID, productID string) (*domain.Cart, error) {
	return s.mutate(ctx, visitorID, func(cart *domain.Cart) error {
		cart.RemoveItem(productID)
		return nil
	})
}

// UpdateQuantity sets a line quantity; zero or below removes the line.
func (s *Service) UpdateQuantity(ctx context.Context, visitorID, productID string, qty int) (*domain.Cart, error) {
	return s.mutate(ctx, visitorID, func(cart *domain.Cart) error {
		cart.UpdateQuantity(productID, qty)
		return nil
	})
}

// Clear empties the visitor's cart. Called once after order placement.
func (s *Service) Clear(ctx context.Context, visitorID string) error {
	if err := s.repo.Delete(ctx, visitorID); err != nil && !errors.Is(err, ports.ErrCartNotFound) {
		return err
	}
	s.invalidate(visitorID)
	return nil
}

// mutate is the single write path: load, apply, write through, invalidate.
func (s *Service) mutate(ctx context.Context, visitorID string, apply func(*domain.Cart) error) (*domain.Cart, error) {
	cart, err := s.Get(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if err := apply(cart); err != nil {
		return nil, err
	}
	if err := s.repo.Upsert(ctx, cart); err != nil {
		return nil, err
	}
	s.invalidate(visitorID)
	return cart, nil
}

func (s *Service) invalidate(visitorID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, visitorID); err != nil {
		s.logWarn(ctx, "cart cache invalidate failed", err)
	}
}

func (s *Service) logWarn(ctx context.Context, msg string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("error", err.Error()))
}

var _ ports.Service = (*Service)(nil)
