package storefrontserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	catalogdomain "github.com/nexashop/storefront/internal/domains/catalog/domain"
	catalogports "github.com/nexashop/storefront/internal/domains/catalog/ports"
	"github.com/nexashop/storefront/internal/shared/money"
)

// CatalogAPI wires HTTP transport with the catalog bounded context service.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI creates a CatalogAPI backed by the provided service.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

type productView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	Price       string    `json:"price"`
	Images      []string  `json:"images"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	InStock     bool      `json:"in_stock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type categoryView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
}

func toProductView(p *catalogdomain.Product) productView {
	return productView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		Price:       money.Format(p.PriceCents),
		Images:      p.Images,
		Category:    p.Category,
		Stock:       p.Stock,
		InStock:     p.InStock(),
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductViews(products []*catalogdomain.Product) []productView {
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, toProductView(p))
	}
	return views
}

// Get /
// Storefront home: featured products.
func (api *CatalogAPI) Home(c *gin.Context) {
	featured, err := api.service.ListFeatured(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"featured": toProductViews(featured)})
}

// Get /products
// Full product listing, optionally narrowed to one category.
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	products, err := api.service.List(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	if category := c.Query("category"); category != "" {
		filtered := make([]*catalogdomain.Product, 0, len(products))
		for _, p := range products {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}
	c.JSON(http.StatusOK, gin.H{"products": toProductViews(products)})
}

// Get /products/:productId
// Product detail.
func (api *CatalogAPI) GetProduct(c *gin.Context) {
	product, err := api.service.GetByID(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductView(product))
}

// Get /categories
// Category listing for navigation and the admin product form.
func (api *CatalogAPI) ListCategories(c *gin.Context) {
	categories, err := api.service.ListCategories(c.Request.Context())
	if err != nil {
		respondCatalogError(c, err)
		return
	}
	views := make([]categoryView, 0, len(categories))
	for _, category := range categories {
		views = append(views, categoryView{
			ID:          category.ID,
			Name:        category.Name,
			Slug:        category.Slug,
			Description: category.Description,
		})
	}
	c.JSON(http.StatusOK, gin.H{"categories": views})
}
