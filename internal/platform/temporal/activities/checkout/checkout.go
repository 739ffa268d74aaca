package checkout

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"

	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	checkoutports "github.com/nexashop/storefront/internal/domains/checkout/ports"
	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
)

const (
	// PersistOrderActivityName assembles and stores an order from the visitor's cart and draft.
	PersistOrderActivityName = "checkout.activities.PersistOrder"
	// ClearCartActivityName empties the visitor's cart after the order is stored.
	ClearCartActivityName = "checkout.activities.ClearCart"
	// ResetDraftActivityName discards the visitor's shipping draft after placement.
	ResetDraftActivityName = "checkout.activities.ResetDraft"
)

// Activities groups activities that operate on the checkout bounded context.
type Activities struct {
	checkout checkoutports.Service
	cart     cartports.Service
	drafts   checkoutports.DraftStore
}

// NewActivities wires the checkout collaborators into the Temporal activities bundle.
func NewActivities(checkout checkoutports.Service, cart cartports.Service, drafts checkoutports.DraftStore) *Activities {
	return &Activities{checkout: checkout, cart: cart, drafts: drafts}
}

// PersistOrder stores the order without touching cart or draft state.
func (a *Activities) PersistOrder(ctx context.Context, visitorID string) (*ordersdomain.Order, error) {
	logger := activity.GetLogger(ctx)
	if a == nil || a.checkout == nil {
		logger.Error("order persist activity not initialized", "visitorId", visitorID)
		return nil, errors.New("order persist activity not initialized")
	}
	logger.Info("PersistOrder activity started", "visitorId", visitorID)
	order, err := a.checkout.PersistOrder(ctx, visitorID)
	if err != nil {
		logger.Error("PersistOrder activity failed", "visitorId", visitorID, "error", err)
		return nil, err
	}
	logger.Info("PersistOrder activity completed", "orderId", order.ID)
	return order, nil
}

// ClearCart empties the visitor's cart. Safe to retry; clearing an already
// empty cart is a no-op.
func (a *Activities) ClearCart(ctx context.Context, visitorID string) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.cart == nil {
		logger.Error("cart clear activity not initialized", "visitorId", visitorID)
		return errors.New("cart clear activity not initialized")
	}
	logger.Info("ClearCart activity started", "visitorId", visitorID)
	if err := a.cart.Clear(ctx, visitorID); err != nil {
		logger.Error("ClearCart activity failed", "visitorId", visitorID, "error", err)
		return err
	}
	return nil
}

// ResetDraft discards the visitor's shipping draft. Safe to retry.
func (a *Activities) ResetDraft(ctx context.Context, visitorID string) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.drafts == nil {
		logger.Error("draft reset activity not initialized", "visitorId", visitorID)
		return errors.New("draft reset activity not initialized")
	}
	logger.Info("ResetDraft activity started", "visitorId", visitorID)
	if err := a.drafts.Delete(ctx, visitorID); err != nil && !errors.Is(err, checkoutports.ErrDraftNotFound) {
		logger.Error("ResetDraft activity failed", "visitorId", visitorID, "error", err)
		return err
	}
	return nil
}
