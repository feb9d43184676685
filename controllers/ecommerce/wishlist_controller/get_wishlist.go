package wishlist_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/catalog"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

var engine *catalog.Engine

func Init(e *catalog.Engine) {
	engine = e
}

// GetWishlist godoc
// @Summary Get the session wishlist
// @Tags Storefront - Wishlist
// @Produce json
// @Success 200 {object} models.ApiResponse "Wishlist fetched successfully"
// @Router /wishlist [get]
func GetWishlist(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Wishlist fetched successfully", sess.WishlistView()))
}
