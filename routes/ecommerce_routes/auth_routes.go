package ecommerce_routes

import (
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/ecommerce/auth_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/login", auth_controller.Login)
		auth.POST("/logout", auth_controller.Logout)
		auth.GET("/me", middleware.AuthMiddleware(), auth_controller.GetMe)
	}
}
