package auth_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Log out
// @Description Detaches the user from the session and clears the auth cookie. Cart and wishlist survive logout.
// @Tags Storefront - Auth
// @Produce json
// @Success 200 {object} models.ApiResponse "Logged out successfully"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	if sess, ok := middleware.SessionFromContext(c); ok {
		sess.ClearUser()
	}
	c.SetCookie("auth_token", "", -1, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out successfully", nil))
}
