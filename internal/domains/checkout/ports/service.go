package ports

import (
	"context"

	"github.com/nexashop/storefront/internal/domains/checkout/domain"
	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
)

// Service exposes the checkout bounded context use cases to adapters.
//
// PlaceOrder runs the full flow: persist the order, clear the cart, reset the
// draft. PersistOrder stops after persisting and exists so durable workflows
// can retry cart clearing and draft reset independently of order creation.
type Service interface {
	Draft(ctx context.Context, visitorID string) (*domain.Draft, error)
	SetDraftField(ctx context.Context, visitorID, key, value string) (*domain.Draft, error)
	ResetDraft(ctx context.Context, visitorID string) error
	PlaceOrder(ctx context.Context, visitorID string) (*ordersdomain.Order, error)
	PersistOrder(ctx context.Context, visitorID string) (*ordersdomain.Order, error)
}
