package cart_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// RemoveCartItem godoc
// @Summary Remove a product from the cart
// @Description Removing a product that is not in the cart is a no-op, not an error.
// @Tags Storefront - Cart
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Item removed from cart"
// @Router /cart/items/{productId} [delete]
func RemoveCartItem(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	sess.RemoveFromCart(c.Param("productId"))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from cart", sess.CartView()))
}
