package ports

import (
	"context"

	"github.com/nexashop/storefront/internal/domains/orders/domain"
)

// Service exposes order bounded context use cases to adapters.
type Service interface {
	Place(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error)
}
