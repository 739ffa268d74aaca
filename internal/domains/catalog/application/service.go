package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nexashop/storefront/internal/domains/catalog/domain"
	"github.com/nexashop/storefront/internal/domains/catalog/ports"
)

// Service orchestrates the catalog bounded context use cases.
type Service struct {
	repo       ports.Repository
	categories ports.CategoryRepository
}

// NewService wires the catalog service with its dependencies.
func NewService(repo ports.Repository, categories ports.CategoryRepository) *Service {
	return &Service{repo: repo, categories: categories}
}

// List returns the whole catalog, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.List(ctx)
}

// ListFeatured returns products flagged for the landing page.
func (s *Service) ListFeatured(ctx context.Context) ([]*domain.Product, error) {
	return s.repo.ListFeatured(ctx)
}

// GetByID loads a single product.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// ListCategories returns the browsing categories.
func (s *Service) ListCategories(ctx context.Context) ([]*domain.Category, error) {
	if s.categories == nil {
		return nil, nil
	}
	return s.categories.List(ctx)
}

// Create persists a new product aggregate.
func (s *Service) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if product == nil {
		return nil, errors.New("product is nil")
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	if err := product.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Update overrides an existing product with new state, keeping its identity.
func (s *Service) Update(ctx context.Context, id string, updated *domain.Product) (*domain.Product, error) {
	if updated == nil {
		return nil, errors.New("product is nil")
	}
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	updated.ID = existing.ID
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = time.Now()
	if err := updated.Validate(); err != nil {
		return nil, mapError(err)
	}
	saved, err := s.repo.Save(ctx, updated)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

// Delete removes a product from the catalog.
func (s *Service) Delete(ctx context.Context, id string) error {
	return mapError(s.repo.Delete(ctx, id))
}

// AppendImages attaches already-uploaded public image URLs to a product.
func (s *Service) AppendImages(ctx context.Context, id string, urls []string) (*domain.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapError(err)
	}
	for _, url := range urls {
		product.AppendImage(url)
	}
	product.UpdatedAt = time.Now()
	saved, err := s.repo.Save(ctx, product)
	if err != nil {
		return nil, mapError(err)
	}
	return saved, nil
}

var _ ports.Service = (*Service)(nil)
