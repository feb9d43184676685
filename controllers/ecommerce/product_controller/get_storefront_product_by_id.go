package product_controller

import (
	"log"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// GetStorefrontProductByID godoc
// @Summary Get a single product
// @Description Resolve one product plus up to four related products from the same category.
// @Tags Storefront - Products
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} models.ApiResponse "Product fetched successfully"
// @Failure 404 {object} models.ApiResponse "Product not found"
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	id := c.Param("id")

	product, ok := engine.ProductByID(id)
	if !ok {
		log.Printf("[store.product] product not found: %s", id)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully",
		models.ProductDetailResponse{
			Product: product,
			Related: engine.Related(product),
		}))
}
