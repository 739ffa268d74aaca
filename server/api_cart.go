package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartdomain "github.com/nexashop/storefront/internal/domains/cart/domain"
	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	catalogdomain "github.com/nexashop/storefront/internal/domains/catalog/domain"
	catalogports "github.com/nexashop/storefront/internal/domains/catalog/ports"
	"github.com/nexashop/storefront/internal/shared/money"
)

// CartAPI wires HTTP transport with the cart bounded context service. Product
// snapshots are resolved server-side from the catalog so a client can never
// put its own price in the cart.
type CartAPI struct {
	service cartports.Service
	catalog catalogports.Service
}

// NewCartAPI creates a CartAPI backed by the provided services.
func NewCartAPI(service cartports.Service, catalog catalogports.Service) CartAPI {
	return CartAPI{service: service, catalog: catalog}
}

type cartItemView struct {
	Product   cartdomain.ProductSnapshot `json:"product"`
	Quantity  int                        `json:"quantity"`
	LineCents int64                      `json:"line_cents"`
	LinePrice string                     `json:"line_price"`
}

type cartView struct {
	Items      []cartItemView `json:"items"`
	TotalCents int64          `json:"total_cents"`
	Total      string         `json:"total"`
	ItemCount  int            `json:"item_count"`
}

func toCartView(cart *cartdomain.Cart) cartView {
	view := cartView{
		Items:      make([]cartItemView, 0, len(cart.Items)),
		TotalCents: cart.Total(),
		ItemCount:  cart.ItemCount(),
	}
	view.Total = money.Format(view.TotalCents)
	for _, item := range cart.Items {
		lineCents := item.Product.PriceCents * int64(item.Quantity)
		view.Items = append(view.Items, cartItemView{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineCents: lineCents,
			LinePrice: money.Format(lineCents),
		})
	}
	return view
}

// Get /cart
// The visitor's cart.
func (api *CartAPI) GetCart(c *gin.Context) {
	cart, err := api.service.Get(c.Request.Context(), visitorID(c))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

// Post /cart/items
// Add a product to the cart, merging quantities for repeat adds.
func (api *CartAPI) AddItem(c *gin.Context) {
	var payload addCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}
	product, err := api.catalog.GetByID(c.Request.Context(), payload.ProductID)
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	cart, err := api.service.AddItem(c.Request.Context(), visitorID(c), toSnapshot(product), payload.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// Patch /cart/items/:productId
// Set the quantity for one entry. Zero or below removes it.
func (api *CartAPI) UpdateItem(c *gin.Context) {
	var payload updateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	cart, err := api.service.UpdateQuantity(c.Request.Context(), visitorID(c), c.Param("productId"), payload.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// Delete /cart/items/:productId
// Remove one entry; removing an absent entry is a no-op.
func (api *CartAPI) RemoveItem(c *gin.Context) {
	cart, err := api.service.RemoveItem(c.Request.Context(), visitorID(c), c.Param("productId"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartView(cart))
}

// Delete /cart
// Empty the cart.
func (api *CartAPI) ClearCart(c *gin.Context) {
	if err := api.service.Clear(c.Request.Context(), visitorID(c)); err != nil {
		respondCartError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func toSnapshot(product *catalogdomain.Product) cartdomain.ProductSnapshot {
	snapshot := cartdomain.ProductSnapshot{
		ID:         product.ID,
		Name:       product.Name,
		PriceCents: product.PriceCents,
		Category:   product.Category,
		Stock:      product.Stock,
	}
	if len(product.Images) > 0 {
		snapshot.Image = product.Images[0]
	}
	return snapshot
}
