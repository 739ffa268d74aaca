package application

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nexashop/storefront/internal/domains/users/domain"
	"github.com/nexashop/storefront/internal/domains/users/ports"
)

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = 24 * time.Hour

const resetTokenTTL = time.Hour

// Service exposes the accounts bounded context use cases.
type Service struct {
	repo       ports.Repository
	sessions   ports.SessionStore
	resets     ports.ResetTokenStore
	sessionTTL time.Duration
	now        func() time.Time
}

func NewService(repo ports.Repository, sessions ports.SessionStore, resets ports.ResetTokenStore, sessionTTL time.Duration) *Service {
	if sessions == nil {
		sessions = ports.NoopSessionStore
	}
	if sessionTTL <= 0 {
		sessionTTL = DefaultSessionTTL
	}
	return &Service{repo: repo, sessions: sessions, resets: resets, sessionTTL: sessionTTL, now: time.Now}
}

func (s *Service) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	user, err := domain.NewUser(uuid.NewString(), email, password, name)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.GetByEmail(ctx, user.Email); err == nil {
		return nil, ports.ErrEmailTaken
	} else if !errors.Is(err, ports.ErrNotFound) {
		return nil, err
	}
	now := s.now()
	user.CreatedAt = now
	user.UpdatedAt = now
	return s.repo.Save(ctx, user)
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, *domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, nil, ports.ErrInvalidCredentials
	}
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, nil, ports.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if !user.CheckPassword(password) {
		return nil, nil, ports.ErrInvalidCredentials
	}
	token, err := newToken()
	if err != nil {
		return nil, nil, err
	}
	now := s.now()
	session := &domain.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: now.Add(s.sessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, nil, err
	}
	return session, user, nil
}

func (s *Service) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil && !errors.Is(err, ports.ErrSessionNotFound) {
		return err
	}
	return nil
}

func (s *Service) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ports.ErrSessionNotFound
	}
	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session.Expired(s.now()) {
		_ = s.sessions.Delete(ctx, token)
		return nil, ports.ErrSessionNotFound
	}
	return s.repo.GetByID(ctx, session.UserID)
}

// IsAdmin is the single authorization decision point for admin surfaces.
func (s *Service) IsAdmin(ctx context.Context, token string) bool {
	user, err := s.CurrentUser(ctx, token)
	if err != nil {
		return false
	}
	return user.IsAdmin()
}

// RequestPasswordReset issues a single-use reset token. An unknown email
// yields an empty token and no error so callers cannot probe for accounts.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	if s.resets == nil {
		return "", errors.New("password resets not configured")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	token, err := newToken()
	if err != nil {
		return "", err
	}
	if err := s.resets.Save(ctx, token, user.ID, s.now().Add(resetTokenTTL)); err != nil {
		return "", err
	}
	return token, nil
}

func (s *Service) ResetPassword(ctx context.Context, token, newPassword string) error {
	if s.resets == nil {
		return errors.New("password resets not configured")
	}
	userID, err := s.resets.Consume(ctx, token)
	if err != nil {
		return err
	}
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := user.SetPassword(newPassword); err != nil {
		return err
	}
	user.UpdatedAt = s.now()
	if _, err := s.repo.Save(ctx, user); err != nil {
		return err
	}
	// Force re-login everywhere after a password change.
	return s.sessions.DeleteForUser(ctx, userID)
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

var _ ports.Service = (*Service)(nil)
