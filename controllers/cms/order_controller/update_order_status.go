package order_controller

import (
	"log"
	"net/http"

	dashboard_cache "github.com/VibeCart-Commerce/vibecart-backend/cache"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateOrderStatus godoc
// @Summary Update an order's status
// @Description Status must be one of Pending, Shipped, Delivered, Cancelled.
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param request body models.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse "Order status updated"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	order, ok := ds.UpdateOrderStatus(id, req.Status)
	if !ok {
		log.Printf("[admin.order.status] order not found: %s", id)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	dashboard_cache.Invalidate()
	log.Printf("[admin.order.status] order %s set to %s", order.OrderNumber, order.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order status updated", models.UpdateOrderStatusResponse{
		ID:          order.ID,
		OrderNumber: order.OrderNumber,
		Status:      order.Status,
	}))
}
