package middleware

import (
	"github.com/VibeCart-Commerce/vibecart-backend/services"
	"github.com/gin-gonic/gin"
)

// ActivityLogMiddleware records mutating admin console requests once the
// handler has run successfully.
func ActivityLogMiddleware(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Request.Method == "GET" || c.Writer.Status() >= 400 {
			return
		}

		email, _ := GetUserEmailFromContext(c)
		services.GetActivityLog().Record(email, c.Request.Method, c.FullPath(), action)
	}
}
