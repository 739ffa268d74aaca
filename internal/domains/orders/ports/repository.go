package ports

import (
	"context"
	"errors"

	"github.com/nexashop/storefront/internal/domains/orders/domain"
)

var ErrNotFound = errors.New("order not found")

// Repository persists placed orders.
type Repository interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	// ListByEmail returns the customer's orders, newest first.
	ListByEmail(ctx context.Context, email string) ([]*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
}
