package ports

import (
	"context"
	"errors"

	"github.com/nexashop/storefront/internal/domains/checkout/domain"
)

// ErrDraftNotFound is returned when no draft has been saved for the visitor.
var ErrDraftNotFound = errors.New("checkout draft not found")

// DraftStore persists the shipping form draft per visitor so fields survive
// page reloads during the checkout flow.
type DraftStore interface {
	Get(ctx context.Context, visitorID string) (*domain.Draft, error)
	Save(ctx context.Context, visitorID string, draft *domain.Draft) error
	Delete(ctx context.Context, visitorID string) error
}
