package cart_controller

import (
	"log"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// AddCartItem godoc
// @Summary Add a product to the cart
// @Description Merges into an existing line for the same product, otherwise appends a new line. Quantity defaults to 1.
// @Tags Storefront - Cart
// @Accept json
// @Produce json
// @Param request body models.AddCartItemRequest true "Product and quantity"
// @Success 200 {object} models.ApiResponse "Item added to cart"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /cart/items [post]
func AddCartItem(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	product, found := engine.ProductByID(req.ProductID)
	if !found {
		log.Printf("[cart.add] product not found: %s", req.ProductID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}
	sess.AddToCart(product, quantity)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Item added to cart", sess.CartView()))
}
