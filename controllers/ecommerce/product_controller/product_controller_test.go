package product_controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VibeCart-Commerce/vibecart-backend/catalog"
	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(catalog.NewEngine(dataset.Seed()))

	r := gin.New()
	products := r.Group("/api/v1/store/products")
	products.GET("", GetStorefrontProducts)
	products.GET("/trending", GetTrendingProducts)
	products.GET("/eco", GetEcoProducts)
	products.GET("/:id", GetStorefrontProductByID)
	return r
}

func get(t *testing.T, router *gin.Engine, path string, out any) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env struct {
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
		Error   bool            `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if out != nil && len(env.Data) > 0 {
		require.NoError(t, json.Unmarshal(env.Data, out))
	}
	return w
}

func names(products []models.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestGetStorefrontProductsDefaults(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	w := get(t, router, "/api/v1/store/products", &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 12, resp.Count)
	require.Len(t, resp.Products, 12)
	assert.True(t, resp.Products[0].IsTrending, "default sort puts trending first")
}

func TestGetStorefrontProductsSearch(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products?q=shoe", &resp)

	assert.Equal(t, []string{"Terra Running Shoe"}, names(resp.Products))
}

func TestGetStorefrontProductsPriceBucket(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products?price=50-100&sort=price-asc", &resp)

	require.NotEmpty(t, resp.Products)
	for _, p := range resp.Products {
		assert.GreaterOrEqual(t, p.Price, 50.0)
		assert.LessOrEqual(t, p.Price, 100.0)
	}
	for i := 1; i < len(resp.Products); i++ {
		assert.LessOrEqual(t, resp.Products[i-1].Price, resp.Products[i].Price)
	}
}

func TestGetStorefrontProductsPriceBucketAllIsNeutral(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products?price=all", &resp)

	assert.Equal(t, 12, resp.Count)
}

func TestGetStorefrontProductsExplicitBoundsWinOverBucket(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products?minPrice=150&price=10-20", &resp)

	require.NotEmpty(t, resp.Products)
	for _, p := range resp.Products {
		assert.GreaterOrEqual(t, p.Price, 150.0)
	}
}

func TestGetStorefrontProductsRatingFilter(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products?rating=5", &resp)

	require.NotEmpty(t, resp.Products)
	for _, p := range resp.Products {
		assert.GreaterOrEqual(t, catalog.RoundRating(p.Rating), 5)
	}
}

func TestGetStorefrontProductsCategoryAndEmptyResult(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products?category=Beauty&q=denim", &resp)

	assert.Zero(t, resp.Count, "an empty result is a valid state, not an error")
	assert.Empty(t, resp.Products)
}

func TestGetStorefrontProductByID(t *testing.T) {
	router := setupRouter()

	var resp models.ProductDetailResponse
	w := get(t, router, "/api/v1/store/products/p-006", &resp)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Ceramic Pour-Over Set", resp.Product.Name)
	require.NotEmpty(t, resp.Related)
	assert.LessOrEqual(t, len(resp.Related), 4)
	for _, r := range resp.Related {
		assert.Equal(t, resp.Product.Category, r.Category)
		assert.NotEqual(t, resp.Product.ID, r.ID)
	}
}

func TestGetStorefrontProductByIDNotFound(t *testing.T) {
	router := setupRouter()

	w := get(t, router, "/api/v1/store/products/p-999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTrendingProducts(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products/trending", &resp)

	require.NotEmpty(t, resp.Products)
	assert.LessOrEqual(t, len(resp.Products), 4, "home strip caps at four")
	for _, p := range resp.Products {
		assert.True(t, p.IsTrending)
	}
}

func TestGetEcoProducts(t *testing.T) {
	router := setupRouter()

	var resp models.StorefrontProductsResponse
	get(t, router, "/api/v1/store/products/eco", &resp)

	require.NotEmpty(t, resp.Products)
	for _, p := range resp.Products {
		assert.True(t, p.IsEcoFriendly)
	}
}
