package order_controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	Init(dataset.Seed())

	r := gin.New()
	admin := r.Group("/api/v1/admin")
	admin.GET("/orders", GetOrders)
	admin.GET("/orders/:id/invoice", DownloadOrderInvoicePDF)
	admin.PATCH("/orders/:id/status", UpdateOrderStatus)
	return r
}

func TestGetOrdersTable(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data models.TableResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, []string{"Order ID", "User ID", "Date", "Amount", "Status"}, env.Data.Headers)
	require.Len(t, env.Data.Rows, 5)
	assert.Equal(t, "ORD-2025-0001", env.Data.Rows[0][0])
	assert.Equal(t, "Delivered", env.Data.Rows[0][4])
}

func patchStatus(t *testing.T, router *gin.Engine, id, status string) *httptest.ResponseRecorder {
	body, err := json.Marshal(models.UpdateOrderStatusRequest{Status: status})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/orders/"+id+"/status", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUpdateOrderStatus(t *testing.T) {
	router := setupRouter()

	w := patchStatus(t, router, "o-1003", models.OrderStatusShipped)

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data models.UpdateOrderStatusResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Equal(t, "ORD-2025-0003", env.Data.OrderNumber)
	assert.Equal(t, models.OrderStatusShipped, env.Data.Status)

	order, found := ds.OrderByID("o-1003")
	require.True(t, found)
	assert.Equal(t, models.OrderStatusShipped, order.Status)
}

func TestUpdateOrderStatusRejectsUnknownStatus(t *testing.T) {
	router := setupRouter()

	w := patchStatus(t, router, "o-1003", "Teleported")

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusOrderNotFound(t *testing.T) {
	router := setupRouter()

	w := patchStatus(t, router, "o-9999", models.OrderStatusShipped)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDownloadOrderInvoicePDF(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders/o-1001/invoice", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "invoice-ORD-2025-0001.pdf")
	assert.NotZero(t, w.Body.Len())
}

func TestDownloadOrderInvoicePDFNotFound(t *testing.T) {
	router := setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/orders/o-9999/invoice", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
