package ecommerce_routes

import (
	store_filter "github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/filter_controller"
	store_product "github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/product_controller"
	"github.com/gin-gonic/gin"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts) // List with filters
		products.GET("/trending", store_product.GetTrendingProducts)
		products.GET("/eco", store_product.GetEcoProducts)
		products.GET("/:id", store_product.GetStorefrontProductByID) // Single product + related
	}

	store.GET("/filters/metadata", store_filter.GetFilterMetadata)
}
