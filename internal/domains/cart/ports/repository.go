package ports

import (
	"context"
	"errors"

	"github.com/nexashop/storefront/internal/domains/cart/domain"
)

var ErrCartNotFound = errors.New("cart not found")

// Repository durably stores the full cart blob per visitor. Every mutation
// writes the whole cart (write-through); concurrent writers race with
// last-write-wins, which is acceptable for a low-stakes cart.
type Repository interface {
	Get(ctx context.Context, visitorID string) (*domain.Cart, error)
	Upsert(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, visitorID string) error
}
