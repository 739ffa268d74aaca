package storefrontserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	checkoutports "github.com/nexashop/storefront/internal/domains/checkout/ports"
	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
	"github.com/nexashop/storefront/internal/shared/money"
)

// CheckoutAPI wires HTTP transport with the checkout bounded context service
// and the order placement workflows.
type CheckoutAPI struct {
	service   checkoutports.Service
	cart      cartports.Service
	workflows checkoutports.WorkflowOrchestrator
}

// NewCheckoutAPI creates a CheckoutAPI backed by the provided services.
func NewCheckoutAPI(service checkoutports.Service, cart cartports.Service, workflows checkoutports.WorkflowOrchestrator) CheckoutAPI {
	return CheckoutAPI{service: service, cart: cart, workflows: workflows}
}

// Get /checkout
// The saved shipping draft, used to prefill the form.
func (api *CheckoutAPI) GetDraft(c *gin.Context) {
	draft, err := api.service.Draft(c.Request.Context(), visitorID(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

type setDraftFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// Patch /checkout
// Overwrite one shipping field as the visitor types.
func (api *CheckoutAPI) SetDraftField(c *gin.Context) {
	var payload setDraftFieldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	draft, err := api.service.SetDraftField(c.Request.Context(), visitorID(c), payload.Field, payload.Value)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

// Get /checkout/review
// Read-only summary of cart and shipping details before placing the order.
func (api *CheckoutAPI) Review(c *gin.Context) {
	ctx := c.Request.Context()
	id := visitorID(c)
	cart, err := api.cart.Get(ctx, id)
	if err != nil {
		respondCartError(c, err)
		return
	}
	draft, err := api.service.Draft(ctx, id)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"cart":     toCartView(cart),
		"shipping": draft,
	})
}

type orderView struct {
	ID         string              `json:"id"`
	Email      string              `json:"email"`
	Name       string              `json:"name"`
	Address    string              `json:"address"`
	City       string              `json:"city"`
	PostalCode string              `json:"postal_code"`
	Country    string              `json:"country"`
	Items      []ordersdomain.Line `json:"items"`
	TotalCents int64               `json:"total_cents"`
	Total      string              `json:"total"`
	Status     ordersdomain.Status `json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
}

func toOrderView(order *ordersdomain.Order) orderView {
	return orderView{
		ID:         order.ID,
		Email:      order.UserEmail,
		Name:       order.UserName,
		Address:    order.Address,
		City:       order.City,
		PostalCode: order.PostalCode,
		Country:    order.Country,
		Items:      order.Items,
		TotalCents: order.TotalCents,
		Total:      money.Format(order.TotalCents),
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	}
}

func toOrderViews(orders []*ordersdomain.Order) []orderView {
	views := make([]orderView, 0, len(orders))
	for _, order := range orders {
		views = append(views, toOrderView(order))
	}
	return views
}

// Post /checkout/review
// Place the order. Payment is simulated; the cart and draft are cleared on success.
func (api *CheckoutAPI) PlaceOrder(c *gin.Context) {
	order, err := api.placeOrder(c.Request.Context(), visitorID(c))
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderView(order))
}

func (api *CheckoutAPI) placeOrder(ctx context.Context, visitorID string) (*ordersdomain.Order, error) {
	if api.workflows != nil {
		return api.workflows.PlaceOrder(ctx, visitorID)
	}
	return api.service.PlaceOrder(ctx, visitorID)
}
