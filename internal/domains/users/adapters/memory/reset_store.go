package memory

import (
	"context"
	"sync"
	"time"

	"github.com/nexashop/storefront/internal/domains/users/ports"
)

type resetEntry struct {
	userID    string
	expiresAt time.Time
}

// ResetTokenStore is an in-memory single-use token store.
type ResetTokenStore struct {
	mu     sync.Mutex
	tokens map[string]resetEntry
}

func NewResetTokenStore() *ResetTokenStore {
	return &ResetTokenStore{tokens: make(map[string]resetEntry)}
}

func (s *ResetTokenStore) Save(_ context.Context, token, userID string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = resetEntry{userID: userID, expiresAt: expiresAt}
	return nil
}

func (s *ResetTokenStore) Consume(_ context.Context, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.tokens[token]
	if !ok {
		return "", ports.ErrResetTokenNotFound
	}
	delete(s.tokens, token)
	if time.Now().After(entry.expiresAt) {
		return "", ports.ErrResetTokenNotFound
	}
	return entry.userID, nil
}

var _ ports.ResetTokenStore = (*ResetTokenStore)(nil)
