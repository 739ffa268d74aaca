package ports

import (
	"context"
	"errors"

	"github.com/nexashop/storefront/internal/domains/users/domain"
)

// ErrSessionNotFound covers missing and expired sessions alike.
var ErrSessionNotFound = errors.New("session not found")

// SessionStore abstracts session token persistence.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Delete(ctx context.Context, token string) error
	DeleteForUser(ctx context.Context, userID string) error
}

// NoopSessionStore is a safe default when callers do not need session persistence.
var NoopSessionStore SessionStore = noopSessionStore{}

type noopSessionStore struct{}

func (noopSessionStore) Save(_ context.Context, _ *domain.Session) error { return nil }
func (noopSessionStore) GetByToken(_ context.Context, _ string) (*domain.Session, error) {
	return nil, ErrSessionNotFound
}
func (noopSessionStore) Delete(_ context.Context, _ string) error        { return nil }
func (noopSessionStore) DeleteForUser(_ context.Context, _ string) error { return nil }
