package memory

import (
	"context"
	"sync"

	"github.com/nexashop/storefront/internal/domains/checkout/domain"
	"github.com/nexashop/storefront/internal/domains/checkout/ports"
)

// DraftStore keeps shipping drafts in process memory.
type DraftStore struct {
	mu     sync.RWMutex
	drafts map[string]domain.Draft
}

// NewDraftStore returns an empty in-memory draft store.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]domain.Draft)}
}

func (s *DraftStore) Get(_ context.Context, visitorID string) (*domain.Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	draft, ok := s.drafts[visitorID]
	if !ok {
		return nil, ports.ErrDraftNotFound
	}
	clone := draft
	return &clone, nil
}

func (s *DraftStore) Save(_ context.Context, visitorID string, draft *domain.Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[visitorID] = *draft
	return nil
}

func (s *DraftStore) Delete(_ context.Context, visitorID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, visitorID)
	return nil
}

var _ ports.DraftStore = (*DraftStore)(nil)
