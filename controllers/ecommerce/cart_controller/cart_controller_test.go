package cart_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VibeCart-Commerce/vibecart-backend/catalog"
	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/VibeCart-Commerce/vibecart-backend/session"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(catalog.NewEngine(dataset.Seed()))
	manager := session.NewManager(session.NewThemeStore(nil))

	r := gin.New()
	api := r.Group("/api/v1")
	api.Use(middleware.SessionMiddleware(manager))

	cart := api.Group("/cart")
	cart.GET("", GetCart)
	cart.POST("/items", AddCartItem)
	cart.PATCH("/items/:productId", UpdateCartItem)
	cart.DELETE("/items/:productId", RemoveCartItem)
	return r
}

// client carries the session cookie between requests, like a browser would.
type client struct {
	t      *testing.T
	router *gin.Engine
	cookie *http.Cookie
}

func (cl *client) do(method, path string, body any) (*httptest.ResponseRecorder, models.CartResponse) {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(cl.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if cl.cookie != nil {
		req.AddCookie(cl.cookie)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cl.cookie = c
		}
	}

	var env struct {
		Message string              `json:"message"`
		Data    models.CartResponse `json:"data"`
		Error   bool                `json:"error"`
	}
	require.NoError(cl.t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env.Data
}

func TestGetCartStartsEmpty(t *testing.T) {
	cl := &client{t: t, router: setupRouter()}

	w, cart := cl.do(http.MethodGet, "/api/v1/cart", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Count)
	assert.Zero(t, cart.Total)
}

func TestAddCartItemMergesAcrossRequests(t *testing.T) {
	cl := &client{t: t, router: setupRouter()}

	w, _ := cl.do(http.MethodPost, "/api/v1/cart/items",
		models.AddCartItemRequest{ProductID: "p-001", Quantity: 2})
	assert.Equal(t, http.StatusOK, w.Code)

	w, cart := cl.do(http.MethodPost, "/api/v1/cart/items",
		models.AddCartItemRequest{ProductID: "p-001", Quantity: 3})
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.Count)
	assert.InDelta(t, 5*129.99, cart.Total, 1e-9)
}

func TestAddCartItemDefaultsQuantity(t *testing.T) {
	cl := &client{t: t, router: setupRouter()}

	_, cart := cl.do(http.MethodPost, "/api/v1/cart/items",
		models.AddCartItemRequest{ProductID: "p-005"})

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	cl := &client{t: t, router: setupRouter()}

	w, _ := cl.do(http.MethodPost, "/api/v1/cart/items",
		models.AddCartItemRequest{ProductID: "p-999", Quantity: 1})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCartItemZeroRemovesLine(t *testing.T) {
	cl := &client{t: t, router: setupRouter()}
	cl.do(http.MethodPost, "/api/v1/cart/items",
		models.AddCartItemRequest{ProductID: "p-005", Quantity: 3})

	w, cart := cl.do(http.MethodPatch, "/api/v1/cart/items/p-005",
		models.UpdateCartItemRequest{Quantity: 0})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Items)
}

func TestRemoveCartItemAbsentIsNoOp(t *testing.T) {
	cl := &client{t: t, router: setupRouter()}
	cl.do(http.MethodPost, "/api/v1/cart/items",
		models.AddCartItemRequest{ProductID: "p-005", Quantity: 1})

	w, cart := cl.do(http.MethodDelete, "/api/v1/cart/items/p-999", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, cart.Items, 1)
}

func TestCartsAreIsolatedPerSession(t *testing.T) {
	router := setupRouter()
	alice := &client{t: t, router: router}
	bob := &client{t: t, router: router}

	alice.do(http.MethodPost, "/api/v1/cart/items",
		models.AddCartItemRequest{ProductID: "p-001", Quantity: 1})

	_, bobCart := bob.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Empty(t, bobCart.Items, "a new session cookie means a new cart")

	_, aliceCart := alice.do(http.MethodGet, "/api/v1/cart", nil)
	assert.Len(t, aliceCart.Items, 1)
}
