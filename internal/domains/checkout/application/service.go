package application

import (
	"context"
	"errors"
	"log/slog"

	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	"github.com/nexashop/storefront/internal/domains/checkout/domain"
	checkoutports "github.com/nexashop/storefront/internal/domains/checkout/ports"
	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
	ordersports "github.com/nexashop/storefront/internal/domains/orders/ports"
)

// Service coordinates checkout. It owns the shipping draft and assembles
// orders out of the cart and orders contexts at placement time.
type Service struct {
	cart   cartports.Service
	orders ordersports.Service
	drafts checkoutports.DraftStore
	logger *slog.Logger
}

// NewService wires the checkout collaborators.
func NewService(cart cartports.Service, orders ordersports.Service, drafts checkoutports.DraftStore, logger *slog.Logger) *Service {
	return &Service{cart: cart, orders: orders, drafts: drafts, logger: logger}
}

// Draft returns the visitor's saved shipping draft, or an empty draft when
// none has been saved yet.
func (s *Service) Draft(ctx context.Context, visitorID string) (*domain.Draft, error) {
	draft, err := s.drafts.Get(ctx, visitorID)
	if err != nil {
		if errors.Is(err, checkoutports.ErrDraftNotFound) {
			return &domain.Draft{}, nil
		}
		return nil, err
	}
	return draft, nil
}

// SetDraftField overwrites one shipping field and persists the draft.
func (s *Service) SetDraftField(ctx context.Context, visitorID, key, value string) (*domain.Draft, error) {
	draft, err := s.Draft(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if err := draft.SetField(key, value); err != nil {
		return nil, err
	}
	if err := s.drafts.Save(ctx, visitorID, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// ResetDraft discards the visitor's saved shipping fields.
func (s *Service) ResetDraft(ctx context.Context, visitorID string) error {
	if err := s.drafts.Delete(ctx, visitorID); err != nil && !errors.Is(err, checkoutports.ErrDraftNotFound) {
		return err
	}
	return nil
}

// PersistOrder assembles and stores an order from the visitor's cart and
// draft. The cart and draft are left untouched so the caller controls cleanup.
func (s *Service) PersistOrder(ctx context.Context, visitorID string) (*ordersdomain.Order, error) {
	cart, err := s.cart.Get(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}
	draft, err := s.Draft(ctx, visitorID)
	if err != nil {
		return nil, err
	}

	order := &ordersdomain.Order{
		UserEmail:  draft.Email,
		UserName:   draft.Name,
		Address:    draft.Address,
		City:       draft.City,
		PostalCode: draft.PostalCode,
		Country:    draft.Country,
		TotalCents: cart.Total(),
	}
	for _, item := range cart.Items {
		order.Items = append(order.Items, ordersdomain.Line{
			ProductID:    item.Product.ID,
			ProductName:  item.Product.Name,
			ProductPrice: item.Product.PriceCents,
			ProductImage: item.Product.Image,
			Quantity:     item.Quantity,
		})
	}
	return s.orders.Place(ctx, order)
}

// PlaceOrder persists the order, then empties the cart and resets the draft
// so the visitor starts the next session clean.
func (s *Service) PlaceOrder(ctx context.Context, visitorID string) (*ordersdomain.Order, error) {
	order, err := s.PersistOrder(ctx, visitorID)
	if err != nil {
		return nil, err
	}
	if err := s.cart.Clear(ctx, visitorID); err != nil {
		s.logWarn(ctx, "failed to clear cart after placement", visitorID, err)
	}
	if err := s.ResetDraft(ctx, visitorID); err != nil {
		s.logWarn(ctx, "failed to reset draft after placement", visitorID, err)
	}
	s.logInfo(ctx, "order placed", order.ID, visitorID)
	return order, nil
}

func (s *Service) logInfo(ctx context.Context, msg, orderID, visitorID string) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelInfo, msg, slog.String("order.id", orderID), slog.String("visitor.id", visitorID))
}

func (s *Service) logWarn(ctx context.Context, msg, visitorID string, err error) {
	if s.logger == nil {
		return
	}
	s.logger.LogAttrs(ctx, slog.LevelWarn, msg, slog.String("visitor.id", visitorID), slog.String("error", err.Error()))
}

var _ checkoutports.Service = (*Service)(nil)
