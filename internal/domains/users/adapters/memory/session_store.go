package memory

import (
	"context"
	"sync"

	"github.com/nexashop/storefront/internal/domains/users/domain"
	"github.com/nexashop/storefront/internal/domains/users/ports"
)

// SessionStore is an in-memory SessionStore implementation.
type SessionStore struct {
	sessions sync.Map
}

func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

func (s *SessionStore) Save(_ context.Context, session *domain.Session) error {
	clone := *session
	s.sessions.Store(session.Token, &clone)
	return nil
}

func (s *SessionStore) GetByToken(_ context.Context, token string) (*domain.Session, error) {
	value, ok := s.sessions.Load(token)
	if !ok {
		return nil, ports.ErrSessionNotFound
	}
	clone := *value.(*domain.Session)
	return &clone, nil
}

func (s *SessionStore) Delete(_ context.Context, token string) error {
	s.sessions.Delete(token)
	return nil
}

func (s *SessionStore) DeleteForUser(_ context.Context, userID string) error {
	s.sessions.Range(func(key, value any) bool {
		if value.(*domain.Session).UserID == userID {
			s.sessions.Delete(key)
		}
		return true
	})
	return nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
