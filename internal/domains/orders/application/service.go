package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/nexashop/storefront/internal/domains/orders/domain"
	"github.com/nexashop/storefront/internal/domains/orders/ports"
)

// Service orchestrates the orders bounded context use cases.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

// Place validates and persists a newly placed order.
func (s *Service) Place(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, errors.New("order is nil")
	}
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	now := time.Now()
	order.CreatedAt = now
	order.UpdatedAt = now
	if err := order.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Save(ctx, order)
}

// GetByID loads a single order.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// ListByEmail returns the customer's order history, newest first.
func (s *Service) ListByEmail(ctx context.Context, email string) ([]*domain.Order, error) {
	return s.repo.ListByEmail(ctx, email)
}

// List returns all orders for the admin dashboard.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	return s.repo.List(ctx)
}

// UpdateStatus applies a fulfillment transition.
func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := order.UpdateStatus(status); err != nil {
		return nil, err
	}
	order.UpdatedAt = time.Now()
	return s.repo.Save(ctx, order)
}

var _ ports.Service = (*Service)(nil)
