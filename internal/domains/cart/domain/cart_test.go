package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snapshot(id string, price int64) ProductSnapshot {
	return ProductSnapshot{ID: id, Name: "product " + id, PriceCents: price, Stock: 10}
}

func TestAddItem_MergesSameProduct(t *testing.T) {
	cart := New("v1")

	require.NoError(t, cart.AddItem(snapshot("a", 500), 2))
	require.NoError(t, cart.AddItem(snapshot("a", 500), 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestAddItem_RejectsNonPositiveQuantity(t *testing.T) {
	cart := New("v1")

	assert.ErrorIs(t, cart.AddItem(snapshot("a", 500), 0), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(snapshot("a", 500), -1), ErrInvalidQuantity)
	assert.ErrorIs(t, cart.AddItem(ProductSnapshot{}, 1), ErrEmptyProductID)
	assert.True(t, cart.IsEmpty())
}

func TestAddItem_KeepsInsertionOrder(t *testing.T) {
	cart := New("v1")

	require.NoError(t, cart.AddItem(snapshot("a", 500), 1))
	require.NoError(t, cart.AddItem(snapshot("b", 300), 1))
	require.NoError(t, cart.AddItem(snapshot("a", 500), 1))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "a", cart.Items[0].Product.ID)
	assert.Equal(t, "b", cart.Items[1].Product.ID)
}

func TestTotalAndItemCount(t *testing.T) {
	cart := New("v1")

	require.NoError(t, cart.AddItem(snapshot("a", 500), 2))
	require.NoError(t, cart.AddItem(snapshot("b", 300), 1))

	assert.Equal(t, int64(1300), cart.Total())
	assert.Equal(t, 3, cart.ItemCount())
}

func TestAddItem_IncreasesTotalByExactAmount(t *testing.T) {
	cart := New("v1")
	require.NoError(t, cart.AddItem(snapshot("a", 500), 2))
	before := cart.Total()

	require.NoError(t, cart.AddItem(snapshot("b", 250), 3))

	assert.Equal(t, before+750, cart.Total())
}

func TestRemoveItem_AbsentIDIsNoOp(t *testing.T) {
	cart := New("v1")
	require.NoError(t, cart.AddItem(snapshot("a", 500), 2))

	cart.RemoveItem("missing")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(1000), cart.Total())
}

func TestUpdateQuantity(t *testing.T) {
	cart := New("v1")
	require.NoError(t, cart.AddItem(snapshot("a", 500), 2))

	cart.UpdateQuantity("a", 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// zero and below remove the entry
	cart.UpdateQuantity("a", 0)
	assert.True(t, cart.IsEmpty())

	cart.UpdateQuantity("missing", 3)
	assert.True(t, cart.IsEmpty())
}

func TestClear(t *testing.T) {
	cart := New("v1")
	require.NoError(t, cart.AddItem(snapshot("a", 500), 2))
	require.NoError(t, cart.AddItem(snapshot("b", 300), 1))

	cart.Clear()

	assert.Equal(t, 0, cart.ItemCount())
	assert.Equal(t, int64(0), cart.Total())
	assert.True(t, cart.IsEmpty())
}
