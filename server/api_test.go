package storefrontserver_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	cartmemory "github.com/nexashop/storefront/internal/domains/cart/adapters/memory"
	cartapp "github.com/nexashop/storefront/internal/domains/cart/application"
	cartports "github.com/nexashop/storefront/internal/domains/cart/ports"
	catalogmemory "github.com/nexashop/storefront/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/nexashop/storefront/internal/domains/catalog/application"
	catalogdomain "github.com/nexashop/storefront/internal/domains/catalog/domain"
	checkoutmemory "github.com/nexashop/storefront/internal/domains/checkout/adapters/memory"
	checkoutapp "github.com/nexashop/storefront/internal/domains/checkout/application"
	mediamemory "github.com/nexashop/storefront/internal/domains/media/adapters/memory"
	mediaapp "github.com/nexashop/storefront/internal/domains/media/application"
	ordersmemory "github.com/nexashop/storefront/internal/domains/orders/adapters/memory"
	ordersapp "github.com/nexashop/storefront/internal/domains/orders/application"
	usersmemory "github.com/nexashop/storefront/internal/domains/users/adapters/memory"
	usersapp "github.com/nexashop/storefront/internal/domains/users/application"
	usersdomain "github.com/nexashop/storefront/internal/domains/users/domain"
	storefrontserver "github.com/nexashop/storefront/server"
)

type testEnv struct {
	router  *gin.Engine
	catalog *catalogapp.Service
	users   *usersapp.Service
	repo    *usersmemory.Repository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogService := catalogapp.NewService(catalogmemory.NewRepository(), catalogmemory.NewCategoryRepository())
	cartService := cartapp.NewService(cartmemory.NewRepository(), cartports.NoopCache, nil)
	ordersService := ordersapp.NewService(ordersmemory.NewRepository())
	checkoutService := checkoutapp.NewService(cartService, ordersService, checkoutmemory.NewDraftStore(), nil)
	usersRepo := usersmemory.NewRepository()
	usersService := usersapp.NewService(usersRepo, usersmemory.NewSessionStore(), usersmemory.NewResetTokenStore(), time.Hour)
	mediaService := mediaapp.NewService(mediamemory.NewObjectStore(), nil)

	handlers := storefrontserver.ApiHandleFunctions{
		CatalogAPI:  storefrontserver.NewCatalogAPI(catalogService),
		CartAPI:     storefrontserver.NewCartAPI(cartService, catalogService),
		CheckoutAPI: storefrontserver.NewCheckoutAPI(checkoutService, cartService, nil),
		AccountAPI:  storefrontserver.NewAccountAPI(usersService, ordersService),
		AuthAPI:     storefrontserver.NewAuthAPI(usersService, time.Hour),
		AdminAPI:    storefrontserver.NewAdminAPI(catalogService, ordersService, mediaService, usersService),
	}
	router := storefrontserver.NewRouterWithGinEngine(gin.New(), handlers, storefrontserver.NewGuard(usersService))
	return &testEnv{router: router, catalog: catalogService, users: usersService, repo: usersRepo}
}

func (env *testEnv) seedProduct(t *testing.T, name string, priceCents int64, stock int) *catalogdomain.Product {
	t.Helper()
	product, err := env.catalog.Create(context.Background(), &catalogdomain.Product{
		Name:       name,
		PriceCents: priceCents,
		Category:   "gadgets",
		Stock:      stock,
	})
	require.NoError(t, err)
	return product
}

// sessionFor registers an account and returns its session cookie.
func (env *testEnv) sessionFor(t *testing.T, email string, admin bool) *http.Cookie {
	t.Helper()
	ctx := context.Background()
	user, err := env.users.Register(ctx, email, "s3cret42", "Test User")
	require.NoError(t, err)
	if admin {
		user.Role = usersdomain.RoleAdmin
		_, err = env.repo.Save(ctx, user)
		require.NoError(t, err)
	}
	session, _, err := env.users.Login(ctx, email, "s3cret42")
	require.NoError(t, err)
	return &http.Cookie{Name: storefrontserver.SessionCookie, Value: session.Token}
}

func (env *testEnv) do(method, target string, body []byte, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cookies {
		if cookie != nil {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func visitorCookieFrom(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == storefrontserver.VisitorCookie {
			return cookie
		}
	}
	t.Fatal("visitor cookie not set")
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHomeListsFeaturedProducts(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Desk Lamp", 1300, 5)
	product.Featured = true
	_, err := env.catalog.Update(context.Background(), product.ID, product)
	require.NoError(t, err)
	env.seedProduct(t, "Mouse Pad", 500, 5)

	w := env.do(http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	featured := body["featured"].([]any)
	require.Len(t, featured, 1)
	first := featured[0].(map[string]any)
	require.Equal(t, "Desk Lamp", first["name"])
	require.Equal(t, "$13.00", first["price"])
}

func TestGetUnknownProductReturnsProblem(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/products/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "application/problem+json")
}

func TestCartFlowAcrossRequests(t *testing.T) {
	env := newTestEnv(t)
	a := env.seedProduct(t, "Product A", 500, 10)
	b := env.seedProduct(t, "Product B", 300, 10)

	w := env.do(http.MethodPost, "/cart/items", []byte(`{"product_id":"`+a.ID+`","quantity":2}`))
	require.Equal(t, http.StatusOK, w.Code)
	visitor := visitorCookieFrom(t, w)

	w = env.do(http.MethodPost, "/cart/items", []byte(`{"product_id":"`+b.ID+`","quantity":1}`), visitor)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.EqualValues(t, 1300, body["total_cents"])
	require.EqualValues(t, 3, body["item_count"])
	require.Equal(t, "$13.00", body["total"])

	// The cart survives a "reload".
	w = env.do(http.MethodGet, "/cart", nil, visitor)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1300, decode(t, w)["total_cents"])

	// Zero quantity removes the entry.
	w = env.do(http.MethodPatch, "/cart/items/"+a.ID, []byte(`{"quantity":0}`), visitor)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 300, decode(t, w)["total_cents"])

	w = env.do(http.MethodDelete, "/cart", nil, visitor)
	require.Equal(t, http.StatusNoContent, w.Code)
	w = env.do(http.MethodGet, "/cart", nil, visitor)
	require.EqualValues(t, 0, decode(t, w)["total_cents"])
}

func TestAddUnknownProductToCart(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/cart/items", []byte(`{"product_id":"ghost"}`))
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestCheckoutFlowPlacesOrder(t *testing.T) {
	env := newTestEnv(t)
	product := env.seedProduct(t, "Desk Lamp", 1999, 5)

	w := env.do(http.MethodPost, "/cart/items", []byte(`{"product_id":"`+product.ID+`","quantity":2}`))
	require.Equal(t, http.StatusOK, w.Code)
	visitor := visitorCookieFrom(t, w)

	for _, field := range [][2]string{
		{"name", "Ada Lovelace"},
		{"email", "ada@example.com"},
		{"address", "12 Analytical Way"},
		{"city", "London"},
		{"postal_code", "EC1A 1BB"},
		{"country", "UK"},
	} {
		w = env.do(http.MethodPatch, "/checkout", []byte(`{"field":"`+field[0]+`","value":"`+field[1]+`"}`), visitor)
		require.Equal(t, http.StatusOK, w.Code)
	}

	// Review shows the draft and the cart.
	w = env.do(http.MethodGet, "/checkout/review", nil, visitor)
	require.Equal(t, http.StatusOK, w.Code)
	review := decode(t, w)
	require.Equal(t, "London", review["shipping"].(map[string]any)["city"])

	w = env.do(http.MethodPost, "/checkout/review", nil, visitor)
	require.Equal(t, http.StatusCreated, w.Code)
	order := decode(t, w)
	require.EqualValues(t, 3998, order["total_cents"])
	require.Equal(t, "pending", order["status"])
	require.Equal(t, "ada@example.com", order["email"])

	// Cart and draft are reset afterwards.
	w = env.do(http.MethodGet, "/cart", nil, visitor)
	require.EqualValues(t, 0, decode(t, w)["total_cents"])
	w = env.do(http.MethodGet, "/checkout", nil, visitor)
	require.Equal(t, "", decode(t, w)["city"])
}

func TestPlaceOrderWithEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodPost, "/checkout/review", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAccountShowsProfileAndOrders(t *testing.T) {
	env := newTestEnv(t)
	session := env.sessionFor(t, "ada@example.com", false)
	product := env.seedProduct(t, "Desk Lamp", 1000, 5)

	w := env.do(http.MethodPost, "/cart/items", []byte(`{"product_id":"`+product.ID+`"}`), session)
	require.Equal(t, http.StatusOK, w.Code)
	visitor := visitorCookieFrom(t, w)
	w = env.do(http.MethodPatch, "/checkout", []byte(`{"field":"email","value":"ada@example.com"}`), visitor, session)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPost, "/checkout/review", nil, visitor, session)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.do(http.MethodGet, "/account", nil, session)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.Equal(t, "ada@example.com", body["user"].(map[string]any)["email"])
	require.Len(t, body["orders"].([]any), 1)
}

func TestAdminProductCrud(t *testing.T) {
	env := newTestEnv(t)
	admin := env.sessionFor(t, "boss@example.com", true)

	w := env.do(http.MethodPost, "/admin/products", []byte(`{"name":"Desk Lamp","price_cents":1300,"category":"lighting","stock":4}`), admin)
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode(t, w)
	id := created["id"].(string)
	require.NotEmpty(t, id)

	w = env.do(http.MethodPut, "/admin/products/"+id, []byte(`{"name":"Desk Lamp XL","price_cents":1500,"category":"lighting","stock":4}`), admin)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Desk Lamp XL", decode(t, w)["name"])

	w = env.do(http.MethodDelete, "/admin/products/"+id, nil, admin)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(http.MethodGet, "/products/"+id, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAdminRejectsInvalidProduct(t *testing.T) {
	env := newTestEnv(t)
	admin := env.sessionFor(t, "boss@example.com", true)

	w := env.do(http.MethodPost, "/admin/products", []byte(`{"name":"Broken","price_cents":-5}`), admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminOrderStatusUpdate(t *testing.T) {
	env := newTestEnv(t)
	admin := env.sessionFor(t, "boss@example.com", true)
	product := env.seedProduct(t, "Desk Lamp", 1000, 5)

	w := env.do(http.MethodPost, "/cart/items", []byte(`{"product_id":"`+product.ID+`"}`))
	require.Equal(t, http.StatusOK, w.Code)
	visitor := visitorCookieFrom(t, w)
	w = env.do(http.MethodPatch, "/checkout", []byte(`{"field":"email","value":"ada@example.com"}`), visitor)
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(http.MethodPost, "/checkout/review", nil, visitor)
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := decode(t, w)["id"].(string)

	w = env.do(http.MethodPatch, "/admin/orders/"+orderID, []byte(`{"status":"processing"}`), admin)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "processing", decode(t, w)["status"])

	// Skipping straight to delivered is rejected.
	w = env.do(http.MethodPatch, "/admin/orders/"+orderID, []byte(`{"status":"delivered"}`), admin)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadProductImages(t *testing.T) {
	env := newTestEnv(t)
	admin := env.sessionFor(t, "boss@example.com", true)
	product := env.seedProduct(t, "Desk Lamp", 1000, 5)

	body, contentType := multipartImages(t, map[string]imagePart{
		"ok.png":   {contentType: "image/png", size: 10 << 10},
		"huge.png": {contentType: "image/png", size: 6 << 20},
	})
	req := httptest.NewRequest(http.MethodPost, "/admin/products/"+product.ID+"/images", body)
	req.Header.Set("Content-Type", contentType)
	req.AddCookie(admin)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)
	require.EqualValues(t, 1, out["uploaded"])

	updated, err := env.catalog.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.Len(t, updated.Images, 1)
}

type imagePart struct {
	contentType string
	size        int
}

func multipartImages(t *testing.T, parts map[string]imagePart) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for name, part := range parts {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="images"; filename="`+name+`"`)
		header.Set("Content-Type", part.contentType)
		pw, err := mw.CreatePart(header)
		require.NoError(t, err)
		_, err = pw.Write(make([]byte, part.size))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}
