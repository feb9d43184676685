package ecommerce_routes

import (
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/cart_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/theme_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/wishlist_controller"
	"github.com/gin-gonic/gin"
)

// SetupSessionRoutes registers the per-session surfaces: cart, wishlist and
// theme. All are public; the session cookie is identity enough.
func SetupSessionRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", cart_controller.GetCart)
		cart.POST("/items", cart_controller.AddCartItem)
		cart.PATCH("/items/:productId", cart_controller.UpdateCartItem)
		cart.DELETE("/items/:productId", cart_controller.RemoveCartItem)
	}

	wishlist := router.Group("/wishlist")
	{
		wishlist.GET("", wishlist_controller.GetWishlist)
		wishlist.POST("/items", wishlist_controller.AddWishlistItem)
		wishlist.DELETE("/items/:productId", wishlist_controller.RemoveWishlistItem)
	}

	router.GET("/theme", theme_controller.GetTheme)
	router.PUT("/theme", theme_controller.SetTheme)
}
