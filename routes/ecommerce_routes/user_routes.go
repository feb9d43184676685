package ecommerce_routes

import (
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/user_controller/order_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes sets up the authenticated account routes.
func SetupUserRoutes(router *gin.RouterGroup) {
	user := router.Group("/user")
	user.Use(middleware.AuthMiddleware()) // All routes require auth
	{
		user.GET("/orders", order_controller.GetOrders)
		user.GET("/orders/:id", order_controller.GetOrderDetails)
	}
}
