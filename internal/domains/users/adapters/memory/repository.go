package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/nexashop/storefront/internal/domains/users/domain"
	"github.com/nexashop/storefront/internal/domains/users/ports"
)

// Repository is an in-memory user store keyed by id with an email index.
type Repository struct {
	mu      sync.RWMutex
	users   map[string]*domain.User
	byEmail map[string]string
}

func NewRepository() *Repository {
	return &Repository{
		users:   make(map[string]*domain.User),
		byEmail: make(map[string]string),
	}
}

func (r *Repository) Save(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.users[user.ID]; ok && existing.Email != user.Email {
		delete(r.byEmail, existing.Email)
	}
	clone := cloneUser(user)
	r.users[clone.ID] = clone
	r.byEmail[clone.Email] = clone.ID
	return cloneUser(clone), nil
}

func (r *Repository) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneUser(r.users[id]), nil
}

func (r *Repository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ports.ErrNotFound
	}
	return cloneUser(user), nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

var _ ports.Repository = (*Repository)(nil)
