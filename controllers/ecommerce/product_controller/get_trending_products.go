package product_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// homeTrendingLimit caps the home page trending strip.
const homeTrendingLimit = 4

// GetTrendingProducts godoc
// @Summary List trending products
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Trending products fetched successfully"
// @Router /store/products/trending [get]
func GetTrendingProducts(c *gin.Context) {
	products := engine.Trending(homeTrendingLimit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Trending products fetched successfully",
		models.StorefrontProductsResponse{
			Products: products,
			Count:    len(products),
		}))
}
