package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	cartapp "github.com/nexashop/storefront/internal/domains/cart/application"
	cartdomain "github.com/nexashop/storefront/internal/domains/cart/domain"
	cartmemory "github.com/nexashop/storefront/internal/domains/cart/adapters/memory"
	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	"github.com/nexashop/storefront/internal/domains/checkout/application"
	checkoutmemory "github.com/nexashop/storefront/internal/domains/checkout/adapters/memory"
	checkoutdomain "github.com/nexashop/storefront/internal/domains/checkout/domain"
	ordersapp "github.com/nexashop/storefront/internal/domains/orders/application"
	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
	ordersmemory "github.com/nexashop/storefront/internal/domains/orders/adapters/memory"
)

type fixture struct {
	checkout *application.Service
	cart     cartports.Service
	orders   *ordersapp.Service
}

func newFixture() fixture {
	cartSvc := cartapp.NewService(cartmemory.NewRepository(), cartports.NoopCache, nil)
	ordersSvc := ordersapp.NewService(ordersmemory.NewRepository())
	drafts := checkoutmemory.NewDraftStore()
	return fixture{
		checkout: application.NewService(cartSvc, ordersSvc, drafts, nil),
		cart:     cartSvc,
		orders:   ordersSvc,
	}
}

func snapshot(id string, price int64) cartdomain.ProductSnapshot {
	return cartdomain.ProductSnapshot{ID: id, Name: "Product " + id, PriceCents: price, Image: "https://cdn.example.com/" + id + ".jpg"}
}

func fillDraft(t *testing.T, f fixture, visitorID string) {
	t.Helper()
	ctx := context.Background()
	for key, value := range map[string]string{
		checkoutdomain.FieldName:       "Ada Lovelace",
		checkoutdomain.FieldEmail:      "ada@example.com",
		checkoutdomain.FieldAddress:    "12 Analytical Way",
		checkoutdomain.FieldCity:       "London",
		checkoutdomain.FieldPostalCode: "EC1A 1BB",
		checkoutdomain.FieldCountry:    "UK",
	} {
		_, err := f.checkout.SetDraftField(ctx, visitorID, key, value)
		require.NoError(t, err)
	}
}

func TestDraftStartsEmpty(t *testing.T) {
	f := newFixture()

	draft, err := f.checkout.Draft(context.Background(), "visitor-1")
	require.NoError(t, err)
	require.Equal(t, &checkoutdomain.Draft{}, draft)
}

func TestDraftFieldsSurviveReload(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.checkout.SetDraftField(ctx, "visitor-1", checkoutdomain.FieldCity, "Oslo")
	require.NoError(t, err)
	_, err = f.checkout.SetDraftField(ctx, "visitor-1", checkoutdomain.FieldEmail, "kari@example.com")
	require.NoError(t, err)

	draft, err := f.checkout.Draft(ctx, "visitor-1")
	require.NoError(t, err)
	require.Equal(t, "Oslo", draft.City)
	require.Equal(t, "kari@example.com", draft.Email)
	require.Empty(t, draft.Name)
}

func TestSetDraftFieldRejectsUnknownKey(t *testing.T) {
	f := newFixture()

	_, err := f.checkout.SetDraftField(context.Background(), "visitor-1", "favourite_color", "teal")
	require.ErrorIs(t, err, checkoutdomain.ErrUnknownField)
}

func TestPlaceOrderRejectsEmptyCart(t *testing.T) {
	f := newFixture()
	fillDraft(t, f, "visitor-1")

	_, err := f.checkout.PlaceOrder(context.Background(), "visitor-1")
	require.ErrorIs(t, err, application.ErrEmptyCart)
}

func TestPlaceOrderSnapshotsCartAndDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	fillDraft(t, f, "visitor-1")

	_, err := f.cart.AddItem(ctx, "visitor-1", snapshot("p1", 1999), 2)
	require.NoError(t, err)
	_, err = f.cart.AddItem(ctx, "visitor-1", snapshot("p2", 500), 1)
	require.NoError(t, err)

	order, err := f.checkout.PlaceOrder(ctx, "visitor-1")
	require.NoError(t, err)
	require.NotEmpty(t, order.ID)
	require.Equal(t, ordersdomain.StatusPending, order.Status)
	require.Equal(t, "ada@example.com", order.UserEmail)
	require.Equal(t, "Ada Lovelace", order.UserName)
	require.Equal(t, "London", order.City)
	require.EqualValues(t, 2*1999+500, order.TotalCents)
	require.Len(t, order.Items, 2)
	require.Equal(t, "p1", order.Items[0].ProductID)
	require.Equal(t, 2, order.Items[0].Quantity)

	stored, err := f.orders.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, order.TotalCents, stored.TotalCents)
}

func TestPlaceOrderClearsCartAndDraft(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	fillDraft(t, f, "visitor-1")

	_, err := f.cart.AddItem(ctx, "visitor-1", snapshot("p1", 1000), 1)
	require.NoError(t, err)

	_, err = f.checkout.PlaceOrder(ctx, "visitor-1")
	require.NoError(t, err)

	cart, err := f.cart.Get(ctx, "visitor-1")
	require.NoError(t, err)
	require.True(t, cart.IsEmpty())

	draft, err := f.checkout.Draft(ctx, "visitor-1")
	require.NoError(t, err)
	require.Equal(t, &checkoutdomain.Draft{}, draft)
}

func TestPlaceOrderRequiresEmail(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.cart.AddItem(ctx, "visitor-1", snapshot("p1", 1000), 1)
	require.NoError(t, err)

	_, err = f.checkout.PlaceOrder(ctx, "visitor-1")
	require.ErrorIs(t, err, ordersdomain.ErrEmptyEmail)
}

func TestPersistOrderLeavesCartIntact(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	fillDraft(t, f, "visitor-1")

	_, err := f.cart.AddItem(ctx, "visitor-1", snapshot("p1", 750), 3)
	require.NoError(t, err)

	order, err := f.checkout.PersistOrder(ctx, "visitor-1")
	require.NoError(t, err)
	require.EqualValues(t, 2250, order.TotalCents)

	cart, err := f.cart.Get(ctx, "visitor-1")
	require.NoError(t, err)
	require.False(t, cart.IsEmpty())
}
