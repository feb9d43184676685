package wishlist_controller

import (
	"log"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// AddWishlistItem godoc
// @Summary Add a product to the wishlist
// @Description Idempotent: adding a product already on the wishlist changes nothing.
// @Tags Storefront - Wishlist
// @Accept json
// @Produce json
// @Param request body models.AddWishlistItemRequest true "Product to add"
// @Success 200 {object} models.ApiResponse "Item added to wishlist"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /wishlist/items [post]
func AddWishlistItem(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	var req models.AddWishlistItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, found := engine.ProductByID(req.ProductID)
	if !found {
		log.Printf("[wishlist.add] product not found: %s", req.ProductID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	sess.AddToWishlist(product)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to wishlist", sess.WishlistView()))
}
