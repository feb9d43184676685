package cart_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// UpdateCartItem godoc
// @Summary Set a cart line's quantity
// @Description Replaces the quantity exactly. A quantity of zero or below removes the line.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param productId path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.ApiResponse "Cart updated"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /cart/items/{productId} [patch]
func UpdateCartItem(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess.UpdateCartQuantity(c.Param("productId"), req.Quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart updated", sess.CartView()))
}
