package product_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary List storefront products
// @Description Run the catalog query pipeline: free-text search, category, price range, minimum rating, then a stable sort.
// @Tags Storefront - Products
// @Produce json
// @Param q query string false "Search term (case-insensitive name match)"
// @Param category query string false "Category name or All" default(All)
// @Param minPrice query number false "Minimum price (inclusive)"
// @Param maxPrice query number false "Maximum price (inclusive)"
// @Param price query string false "Compact price bucket, e.g. 50-100"
// @Param rating query int false "Minimum rating threshold, 0 disables"
// @Param sort query string false "Sort key (trending | rating | price-asc | price-desc)" default(trending)
// @Success 200 {object} models.ApiResponse "Products fetched successfully"
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	query := parseQueryDescriptor(c)
	products := engine.Query(query)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products fetched successfully",
		models.StorefrontProductsResponse{
			Products: products,
			Count:    len(products),
		}))
}
