package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nexashop/storefront/internal/domains/users/adapters/memory"
	"github.com/nexashop/storefront/internal/domains/users/application"
	"github.com/nexashop/storefront/internal/domains/users/domain"
	"github.com/nexashop/storefront/internal/domains/users/ports"
)

func newService(t *testing.T) (*application.Service, *memory.Repository) {
	t.Helper()
	repo := memory.NewRepository()
	return application.NewService(repo, memory.NewSessionStore(), memory.NewResetTokenStore(), time.Hour), repo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada@Example.com", "s3cret42", "Ada")
	require.NoError(t, err)
	require.NotEmpty(t, user.ID)
	require.Equal(t, "ada@example.com", user.Email)
	require.Equal(t, domain.RoleCustomer, user.Role)
	require.NotEqual(t, "s3cret42", user.PasswordHash)

	session, loggedIn, err := svc.Login(ctx, "ada@example.com", "s3cret42")
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, user.ID, loggedIn.ID)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "s3cret42", "Ada")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "ADA@example.com", "another1", "Imposter")
	require.ErrorIs(t, err, ports.ErrEmailTaken)
}

func TestRegisterValidatesInput(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "not-an-email", "s3cret42", "")
	require.ErrorIs(t, err, domain.ErrInvalidEmail)

	_, err = svc.Register(ctx, "ada@example.com", "tiny", "")
	require.ErrorIs(t, err, domain.ErrWeakPassword)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "s3cret42", "Ada")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "ada@example.com", "wrong-password")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret42")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)
}

func TestCurrentUserResolvesSession(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "ada@example.com", "s3cret42", "Ada")
	require.NoError(t, err)
	session, _, err := svc.Login(ctx, "ada@example.com", "s3cret42")
	require.NoError(t, err)

	current, err := svc.CurrentUser(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, current.ID)

	_, err = svc.CurrentUser(ctx, "bogus-token")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
	_, err = svc.CurrentUser(ctx, "")
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "s3cret42", "Ada")
	require.NoError(t, err)
	session, _, err := svc.Login(ctx, "ada@example.com", "s3cret42")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, session.Token))
	_, err = svc.CurrentUser(ctx, session.Token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)

	// Logging out twice is harmless.
	require.NoError(t, svc.Logout(ctx, session.Token))
}

func TestIsAdminFailsClosed(t *testing.T) {
	svc, repo := newService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "ada@example.com", "s3cret42", "Ada")
	require.NoError(t, err)
	session, _, err := svc.Login(ctx, "ada@example.com", "s3cret42")
	require.NoError(t, err)

	require.False(t, svc.IsAdmin(ctx, session.Token))
	require.False(t, svc.IsAdmin(ctx, ""))
	require.False(t, svc.IsAdmin(ctx, "bogus-token"))

	user.Role = domain.RoleAdmin
	_, err = repo.Save(ctx, user)
	require.NoError(t, err)
	require.True(t, svc.IsAdmin(ctx, session.Token))
}

func TestPasswordResetFlow(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "ada@example.com", "s3cret42", "Ada")
	require.NoError(t, err)
	session, _, err := svc.Login(ctx, "ada@example.com", "s3cret42")
	require.NoError(t, err)

	token, err := svc.RequestPasswordReset(ctx, "ada@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.ResetPassword(ctx, token, "newpass99"))

	// Old sessions and the old password no longer work.
	_, err = svc.CurrentUser(ctx, session.Token)
	require.ErrorIs(t, err, ports.ErrSessionNotFound)
	_, _, err = svc.Login(ctx, "ada@example.com", "s3cret42")
	require.ErrorIs(t, err, ports.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "ada@example.com", "newpass99")
	require.NoError(t, err)

	// The token is single use.
	require.ErrorIs(t, svc.ResetPassword(ctx, token, "anotherpass"), ports.ErrResetTokenNotFound)
}

func TestPasswordResetUnknownEmailIsSilent(t *testing.T) {
	svc, _ := newService(t)

	token, err := svc.RequestPasswordReset(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	require.Empty(t, token)
}
