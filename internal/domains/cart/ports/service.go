package ports

import (
	"context"

	"github.com/nexashop/storefront/internal/domains/cart/domain"
)

// Service exposes the cart bounded context use cases to adapters.
type Service interface {
	Get(ctx context.Context, visitorID string) (*domain.Cart, error)
	AddItem(ctx context.Context, visitorID string, product domain.ProductSnapshot, qty int) (*domain.Cart, error)
	RemoveItem(ctx context.Context, visitorID, productID string) (*domain.Cart, error)
	UpdateQuantity(ctx context.Context, visitorID, productID string, qty int) (*domain.Cart, error)
	Clear(ctx context.Context, visitorID string) error
}
