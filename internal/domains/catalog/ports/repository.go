package ports

import (
	"context"
	"errors"

	"github.com/nexashop/storefront/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("product not found")

// Repository persists the product catalog.
type Repository interface {
	Save(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	// List returns products newest first.
	List(ctx context.Context) ([]*domain.Product, error)
	ListFeatured(ctx context.Context) ([]*domain.Product, error)
}

// CategoryRepository persists browsing categories.
type CategoryRepository interface {
	List(ctx context.Context) ([]*domain.Category, error)
	Save(ctx context.Context, category *domain.Category) (*domain.Category, error)
}
