package ports

import (
	"context"

	"github.com/nexashop/storefront/internal/domains/users/domain"
)

// Service exposes the accounts bounded context use cases to adapters.
//
// IsAdmin is the single capability check consumed by both the route guard and
// the admin handlers. It fails closed: any lookup failure reads as "not admin".
type Service interface {
	Register(ctx context.Context, email, password, name string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error)
	Logout(ctx context.Context, token string) error
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
	IsAdmin(ctx context.Context, token string) bool
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) error
}
