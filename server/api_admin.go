package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/nexashop/storefront/internal/domains/catalog/domain"
	catalogports "github.com/nexashop/storefront/internal/domains/catalog/ports"
	mediaports "github.com/nexashop/storefront/internal/domains/media/ports"
	ordersdomain "github.com/nexashop/storefront/internal/domains/orders/domain"
	ordersports "github.com/nexashop/storefront/internal/domains/orders/ports"
	usersports "github.com/nexashop/storefront/internal/domains/users/ports"
	"github.com/nexashop/storefront/internal/shared/problem"
)

// AdminAPI wires HTTP transport with the catalog management surface. Every
// handler re-checks the admin capability through the same accounts service
// call the route guard uses.
type AdminAPI struct {
	catalog catalogports.Service
	orders  ordersports.Service
	media   mediaports.Service
	users   usersports.Service
}

// NewAdminAPI creates an AdminAPI backed by the provided services.
func NewAdminAPI(catalog catalogports.Service, orders ordersports.Service, media mediaports.Service, users usersports.Service) AdminAPI {
	return AdminAPI{catalog: catalog, orders: orders, media: media, users: users}
}

func (api *AdminAPI) requireAdmin(c *gin.Context) bool {
	if api.users.IsAdmin(c.Request.Context(), sessionToken(c)) {
		return true
	}
	respondProblem(c, problem.Forbidden.WithDetail("admin role required"))
	return false
}

// Get /admin
// Dashboard counts.
func (api *AdminAPI) Dashboard(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	products, err := api.catalog.List(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	orders, err := api.orders.List(c.Request.Context())
	if err != nil {
		respondOrdersError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"product_count": len(products),
		"order_count":   len(orders),
	})
}

// Get /admin/products
// Full catalog, newest first.
func (api *AdminAPI) ListProducts(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	products, err := api.catalog.List(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductViews(products)})
}

type productMutationRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"price_cents"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}

func (payload productMutationRequest) toDomain() *catalogdomain.Product {
	return &catalogdomain.Product{
		Name:        payload.Name,
		Description: payload.Description,
		PriceCents:  payload.PriceCents,
		Images:      payload.Images,
		Category:    payload.Category,
		Stock:       payload.Stock,
		Featured:    payload.Featured,
	}
}

// Post /admin/products
// Create a product.
func (api *AdminAPI) CreateProduct(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	var payload productMutationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	created, err := api.catalog.Create(c.Request.Context(), payload.toDomain())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toProductView(created))
}

// Put /admin/products/:productId
// Replace a product's attributes.
func (api *AdminAPI) UpdateProduct(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	var payload productMutationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	updated, err := api.catalog.Update(c.Request.Context(), c.Param("productId"), payload.toDomain())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(updated))
}

// Delete /admin/products/:productId
// Remove a product from the catalog.
func (api *AdminAPI) DeleteProduct(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	if err := api.catalog.Delete(c.Request.Context(), c.Param("productId")); err != nil {
		respondCatalogError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type uploadResultView struct {
	Name  string `json:"name"`
	URL   string `json:"url,omitempty"`
	Error string `json:"error,omitempty"`
}

// Post /admin/products/:productId/images
// Attach uploaded images to a product. Failures are per file; successful
// uploads are appended to the product's image list.
func (api *AdminAPI) UploadProductImages(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	productID := c.Param("productId")
	if _, err := api.catalog.GetByID(c.Request.Context(), productID); err != nil {
		respondCatalogError(c, err)
		return
	}
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	headers := form.File["images"]
	if len(headers) == 0 {
		respondProblem(c, problem.BadRequest.WithDetail("no files in 'images' field"))
		return
	}

	files := make([]mediaports.File, 0, len(headers))
	closers := make([]func() error, 0, len(headers))
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			respondError(c, http.StatusBadRequest, err)
			return
		}
		closers = append(closers, f.Close)
		files = append(files, mediaports.File{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Reader:      f,
		})
	}
	defer func() {
		for _, closeFile := range closers {
			_ = closeFile()
		}
	}()

	outcome := api.media.UploadImages(c.Request.Context(), files)
	urls := make([]string, 0, outcome.Succeeded)
	results := make([]uploadResultView, 0, len(outcome.Results))
	for _, result := range outcome.Results {
		view := uploadResultView{Name: result.Name, URL: result.URL}
		if result.Err != nil {
			view.Error = result.Err.Error()
		} else {
			urls = append(urls, result.URL)
		}
		results = append(results, view)
	}
	if len(urls) > 0 {
		if _, err := api.catalog.AppendImages(c.Request.Context(), productID, urls); err != nil {
			respondCatalogError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"uploaded": outcome.Succeeded,
		"results":  results,
	})
}

// Get /admin/orders
// All orders, newest first.
func (api *AdminAPI) ListOrders(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	orders, err := api.orders.List(c.Request.Context())
	if err != nil {
		respondOrdersError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": toOrderViews(orders)})
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// Patch /admin/orders/:orderId
// Move an order along the fulfillment progression.
func (api *AdminAPI) UpdateOrderStatus(c *gin.Context) {
	if !api.requireAdmin(c) {
		return
	}
	var payload updateOrderStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	order, err := api.orders.UpdateStatus(c.Request.Context(), c.Param("orderId"), ordersdomain.Status(payload.Status))
	if err != nil {
		respondOrdersError(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderView(order))
}
