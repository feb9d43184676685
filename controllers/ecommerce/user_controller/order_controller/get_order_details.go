package order_controller

import (
	"log"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// GetOrderDetails godoc
// @Summary Get one of the user's orders
// @Description Full order with line items. Orders belonging to other users resolve as not found.
// @Tags Storefront - Orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.ApiResponse "Order fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Router /user/orders/{id} [get]
func GetOrderDetails(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	id := c.Param("id")
	order, found := ds.OrderByID(id)
	if !found || order.UserID != userID {
		log.Printf("[user.order] order not found for user: %s", id)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", order))
}
