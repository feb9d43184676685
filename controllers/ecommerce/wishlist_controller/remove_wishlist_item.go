package wishlist_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// RemoveWishlistItem godoc
// @Summary Remove a product from the wishlist
// @Description Removing an absent product is a no-op, not an error.
// @Tags Storefront - Wishlist
// @Produce json
// @Param productId path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Item removed from wishlist"
// @Router /wishlist/items/{productId} [delete]
func RemoveWishlistItem(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	sess.RemoveFromWishlist(c.Param("productId"))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item removed from wishlist", sess.WishlistView()))
}
