package ports

import (
	"context"

	"github.com/nexashop/storefront/internal/domains/catalog/domain"
)

// Service exposes catalog bounded context use cases to adapters.
type Service interface {
	List(ctx context.Context) ([]*domain.Product, error)
	ListFeatured(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	ListCategories(ctx context.Context) ([]*domain.Category, error)

	// Admin catalog management.
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Update(ctx context.Context, id string, updated *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	AppendImages(ctx context.Context, id string, urls []string) (*domain.Product, error)
}
