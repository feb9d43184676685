package cart_controller

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

// GetCart godoc
// @Summary Get the session cart
// @Description Line items with snapshotted prices, total count and total amount. An empty cart is a valid state.
// @Tags Storefront - Cart
// @Produce json
// @Success 200 {object} models.ApiResponse "Cart fetched successfully"
// @Router /cart [get]
func GetCart(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Cart fetched successfully", sess.CartView()))
}
