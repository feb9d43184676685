package middleware

import (
	"log"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// RequireAdminMiddleware gates the admin console. It runs after
// AuthMiddleware and checks only the role claim issued at login from the
// resolved user record; there is no secondary email comparison.
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - role not found"))
			c.Abort()
			return
		}

		if role != models.RoleAdmin {
			log.Printf("[auth] non-admin attempted admin console access")
			c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Forbidden - admin access required"))
			c.Abort()
			return
		}

		c.Next()
	}
}
