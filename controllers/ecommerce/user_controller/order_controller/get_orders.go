package order_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

var ds *dataset.Dataset

func Init(d *dataset.Dataset) {
	ds = d
}

// GetOrders godoc
// @Summary Get the user's order history
// @Description Compact order rows, newest first. An empty history is a valid state.
// @Tags Storefront - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Orders fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/orders [get]
func GetOrders(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	orders := ds.OrdersByUser(userID)
	history := make([]models.OrderHistoryResponse, 0, len(orders))
	for _, o := range orders {
		history = append(history, models.OrderHistoryResponse{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			Status:      o.Status,
			TotalAmount: o.TotalAmount,
			ItemCount:   o.ItemCount(),
			CreatedAt:   o.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders fetched successfully", history))
}
