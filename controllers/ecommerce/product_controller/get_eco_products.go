package product_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// GetEcoProducts godoc
// @Summary List eco-friendly products
// @Tags Storefront - Products
// @Produce json
// @Success 200 {object} models.ApiResponse "Eco-friendly products fetched successfully"
// @Router /store/products/eco [get]
func GetEcoProducts(c *gin.Context) {
	products := engine.EcoFriendly()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Eco-friendly products fetched successfully",
		models.StorefrontProductsResponse{
			Products: products,
			Count:    len(products),
		}))
}
