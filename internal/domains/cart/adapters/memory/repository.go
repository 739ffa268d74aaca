package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/nexashop/storefront/internal/domains/cart/domain"
	"github.com/nexashop/storefront/internal/domains/cart/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository stores cart blobs in memory, serialized the same way the
// durable adapters do so tests exercise the round-trip contract.
type Repository struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewRepository() *Repository {
	return &Repository{blobs: map[string][]byte{}}
}

func (r *Repository) Get(_ context.Context, visitorID string) (*domain.Cart, error) {
	r.mu.RLock()
	blob, ok := r.blobs[visitorID]
	r.mu.RUnlock()
	if !ok {
		return nil, ports.ErrCartNotFound
	}
	var cart domain.Cart
	if err := json.Unmarshal(blob, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *Repository) Upsert(_ context.Context, cart *domain.Cart) error {
	blob, err := json.Marshal(cart)
	if err != nil {
		return err
	}
	r.mu.Lock()
	r.blobs[cart.VisitorID] = blob
	r.mu.Unlock()
	return nil
}

func (r *Repository) Delete(_ context.Context, visitorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.blobs[visitorID]; !ok {
		return ports.ErrCartNotFound
	}
	delete(r.blobs, visitorID)
	return nil
}
