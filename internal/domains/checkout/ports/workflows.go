package ports

import (
	"context"

	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
)

// WorkflowOrchestrator exposes durable workflow operations required by the checkout bounded context.
type WorkflowOrchestrator interface {
	PlaceOrder(ctx context.Context, visitorID string) (*ordersdomain.Order, error)
}
