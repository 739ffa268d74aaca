package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexashop/storefront/internal/domains/cart/adapters/memory"
	"github.com/nexashop/storefront/internal/domains/cart/domain"
)

func snapshot(id string, price int64) domain.ProductSnapshot {
	return domain.ProductSnapshot{ID: id, Name: "product " + id, PriceCents: price, Stock: 10}
}

func TestGet_ReturnsEmptyCartForNewVisitor(t *testing.T) {
	svc := NewService(memory.NewRepository(), nil, nil)

	cart, err := svc.Get(context.Background(), "v1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
	assert.Equal(t, "v1", cart.VisitorID)
}

func TestAddItem_PersistsAcrossLoads(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, nil, nil)

	_, err := svc.AddItem(context.Background(), "v1", snapshot("a", 500), 2)
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), "v1", snapshot("b", 300), 1)
	require.NoError(t, err)

	// a fresh service over the same repository simulates a reload
	reloaded, err := NewService(repo, nil, nil).Get(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, int64(1300), reloaded.Total())
	assert.Equal(t, 3, reloaded.ItemCount())
	require.Len(t, reloaded.Items, 2)
	assert.Equal(t, "a", reloaded.Items[0].Product.ID)
}

func TestRoundTrip_StateEquivalentAfterReload(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, nil, nil)

	before, err := svc.AddItem(context.Background(), "v1", snapshot("a", 500), 2)
	require.NoError(t, err)

	after, err := repo.Get(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, before.VisitorID, after.VisitorID)
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	svc := NewService(memory.NewRepository(), nil, nil)

	_, err := svc.AddItem(context.Background(), "v1", snapshot("a", 500), 2)
	require.NoError(t, err)

	cart, err := svc.UpdateQuantity(context.Background(), "v1", "a", 0)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

func TestRemoveItem_AbsentProductLeavesCartUnchanged(t *testing.T) {
	svc := NewService(memory.NewRepository(), nil, nil)

	_, err := svc.AddItem(context.Background(), "v1", snapshot("a", 500), 2)
	require.NoError(t, err)

	cart, err := svc.RemoveItem(context.Background(), "v1", "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), cart.Total())
}

func TestClear_EmptiesAndSurvivesReload(t *testing.T) {
	repo := memory.NewRepository()
	svc := NewService(repo, nil, nil)

	_, err := svc.AddItem(context.Background(), "v1", snapshot("a", 500), 2)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(context.Background(), "v1"))

	cart, err := svc.Get(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, int64(0), cart.Total())
}

func TestClear_NoCartIsNoOp(t *testing.T) {
	svc := NewService(memory.NewRepository(), nil, nil)
	require.NoError(t, svc.Clear(context.Background(), "v1"))
}

func TestCartsAreIsolatedPerVisitor(t *testing.T) {
	svc := NewService(memory.NewRepository(), nil, nil)

	_, err := svc.AddItem(context.Background(), "v1", snapshot("a", 500), 1)
	require.NoError(t, err)

	other, err := svc.Get(context.Background(), "v2")
	require.NoError(t, err)
	assert.True(t, other.IsEmpty())
}
