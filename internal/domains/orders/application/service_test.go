package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nexashop/storefront/internal/domains/orders/adapters/memory"
	"github.com/nexashop/storefront/internal/domains/orders/domain"
	"github.com/nexashop/storefront/internal/domains/orders/ports"
)

func validOrder() *domain.Order {
	return &domain.Order{
		UserEmail:  "ada@example.com",
		UserName:   "Ada",
		Address:    "1 Analytical Way",
		City:       "London",
		PostalCode: "EC1A 1BB",
		Country:    "UK",
		Items: []domain.Line{
			{ProductID: "a", ProductName: "Lamp", ProductPrice: 500, Quantity: 2},
		},
		TotalCents: 1000,
	}
}

func TestPlace_AssignsIDAndDefaultsStatus(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.Place(context.Background(), validOrder())
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	require.Equal(t, domain.StatusPending, saved.Status)
	require.False(t, saved.CreatedAt.IsZero())
}

func TestPlace_RejectsEmptyOrder(t *testing.T) {
	svc := NewService(memory.NewRepository())

	order := validOrder()
	order.Items = nil
	_, err := svc.Place(context.Background(), order)
	require.ErrorIs(t, err, domain.ErrNoItems)

	order = validOrder()
	order.UserEmail = "  "
	_, err = svc.Place(context.Background(), order)
	require.ErrorIs(t, err, domain.ErrEmptyEmail)
}

func TestListByEmail_IsCaseInsensitiveAndScoped(t *testing.T) {
	svc := NewService(memory.NewRepository())

	_, err := svc.Place(context.Background(), validOrder())
	require.NoError(t, err)
	other := validOrder()
	other.UserEmail = "grace@example.com"
	_, err = svc.Place(context.Background(), other)
	require.NoError(t, err)

	list, err := svc.ListByEmail(context.Background(), "ADA@example.com")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func TestUpdateStatus_FollowsProgression(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.Place(context.Background(), validOrder())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(context.Background(), saved.ID, domain.StatusProcessing)
	require.NoError(t, err)
	require.Equal(t, domain.StatusProcessing, updated.Status)

	_, err = svc.UpdateStatus(context.Background(), saved.ID, domain.StatusDelivered)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestUpdateStatus_CancelBeforeShipping(t *testing.T) {
	svc := NewService(memory.NewRepository())

	saved, err := svc.Place(context.Background(), validOrder())
	require.NoError(t, err)

	cancelled, err := svc.UpdateStatus(context.Background(), saved.ID, domain.StatusCancelled)
	require.NoError(t, err)
	require.Equal(t, domain.StatusCancelled, cancelled.Status)

	_, err = svc.UpdateStatus(context.Background(), saved.ID, domain.StatusProcessing)
	require.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestGetByID_Unknown(t *testing.T) {
	svc := NewService(memory.NewRepository())
	_, err := svc.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ports.ErrNotFound)
}
