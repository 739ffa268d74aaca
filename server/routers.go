package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// Routes is a map of defined api endpoints.
type Routes map[string][]Route

// ApiHandleFunctions holds the api handlers per surface.
type ApiHandleFunctions struct {
	CatalogAPI  CatalogAPI
	CartAPI     CartAPI
	CheckoutAPI CheckoutAPI
	AccountAPI  AccountAPI
	AuthAPI     AuthAPI
	AdminAPI    AdminAPI
}

// NewRouter returns a new router with the default gin engine.
func NewRouter(handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions, middleware...)
}

// NewRouterWithGinEngine adds the storefront routes to an existing gin engine.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions, middleware ...gin.HandlerFunc) *gin.Engine {
	for _, m := range middleware {
		if m != nil {
			router.Use(m)
		}
	}
	for _, routes := range getRoutes(handleFunctions) {
		for _, route := range routes {
			if route.HandlerFunc == nil {
				route.HandlerFunc = DefaultHandleFunc
			}
			switch route.Method {
			case http.MethodGet:
				router.GET(route.Pattern, route.HandlerFunc)
			case http.MethodPost:
				router.POST(route.Pattern, route.HandlerFunc)
			case http.MethodPut:
				router.PUT(route.Pattern, route.HandlerFunc)
			case http.MethodPatch:
				router.PATCH(route.Pattern, route.HandlerFunc)
			case http.MethodDelete:
				router.DELETE(route.Pattern, route.HandlerFunc)
			}
		}
	}
	return router
}

// DefaultHandleFunc used when a handler is not yet implemented.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(handleFunctions ApiHandleFunctions) Routes {
	return Routes{
		"CatalogAPI": {
			{"Home", http.MethodGet, "/", handleFunctions.CatalogAPI.Home},
			{"ListProducts", http.MethodGet, "/products", handleFunctions.CatalogAPI.ListProducts},
			{"GetProduct", http.MethodGet, "/products/:productId", handleFunctions.CatalogAPI.GetProduct},
			{"ListCategories", http.MethodGet, "/categories", handleFunctions.CatalogAPI.ListCategories},
		},
		"CartAPI": {
			{"GetCart", http.MethodGet, "/cart", handleFunctions.CartAPI.GetCart},
			{"AddCartItem", http.MethodPost, "/cart/items", handleFunctions.CartAPI.AddItem},
			{"UpdateCartItem", http.MethodPatch, "/cart/items/:productId", handleFunctions.CartAPI.UpdateItem},
			{"RemoveCartItem", http.MethodDelete, "/cart/items/:productId", handleFunctions.CartAPI.RemoveItem},
			{"ClearCart", http.MethodDelete, "/cart", handleFunctions.CartAPI.ClearCart},
		},
		"CheckoutAPI": {
			{"GetCheckoutDraft", http.MethodGet, "/checkout", handleFunctions.CheckoutAPI.GetDraft},
			{"SetCheckoutDraftField", http.MethodPatch, "/checkout", handleFunctions.CheckoutAPI.SetDraftField},
			{"CheckoutReview", http.MethodGet, "/checkout/review", handleFunctions.CheckoutAPI.Review},
			{"PlaceOrder", http.MethodPost, "/checkout/review", handleFunctions.CheckoutAPI.PlaceOrder},
		},
		"AccountAPI": {
			{"GetAccount", http.MethodGet, "/account", handleFunctions.AccountAPI.GetAccount},
			{"GetAccountOrder", http.MethodGet, "/account/orders/:orderId", handleFunctions.AccountAPI.GetOrder},
		},
		"AuthAPI": {
			{"LoginPage", http.MethodGet, "/login", handleFunctions.AuthAPI.LoginPage},
			{"Login", http.MethodPost, "/login", handleFunctions.AuthAPI.Login},
			{"RegisterPage", http.MethodGet, "/register", handleFunctions.AuthAPI.RegisterPage},
			{"Register", http.MethodPost, "/register", handleFunctions.AuthAPI.Register},
			{"Logout", http.MethodPost, "/logout", handleFunctions.AuthAPI.Logout},
			{"AdminLoginPage", http.MethodGet, "/admin/login", handleFunctions.AuthAPI.AdminLoginPage},
			{"AdminLogin", http.MethodPost, "/admin/login", handleFunctions.AuthAPI.Login},
			{"RequestPasswordReset", http.MethodPost, "/password-reset", handleFunctions.AuthAPI.RequestPasswordReset},
			{"ResetPassword", http.MethodPost, "/password-reset/confirm", handleFunctions.AuthAPI.ResetPassword},
		},
		"AdminAPI": {
			{"AdminDashboard", http.MethodGet, "/admin", handleFunctions.AdminAPI.Dashboard},
			{"AdminListProducts", http.MethodGet, "/admin/products", handleFunctions.AdminAPI.ListProducts},
			{"AdminCreateProduct", http.MethodPost, "/admin/products", handleFunctions.AdminAPI.CreateProduct},
			{"AdminUpdateProduct", http.MethodPut, "/admin/products/:productId", handleFunctions.AdminAPI.UpdateProduct},
			{"AdminDeleteProduct", http.MethodDelete, "/admin/products/:productId", handleFunctions.AdminAPI.DeleteProduct},
			{"AdminUploadProductImages", http.MethodPost, "/admin/products/:productId/images", handleFunctions.AdminAPI.UploadProductImages},
			{"AdminListOrders", http.MethodGet, "/admin/orders", handleFunctions.AdminAPI.ListOrders},
			{"AdminUpdateOrderStatus", http.MethodPatch, "/admin/orders/:orderId", handleFunctions.AdminAPI.UpdateOrderStatus},
		},
	}
}
