package theme_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/VibeCart-Commerce/vibecart-backend/session"
	"github.com/gin-gonic/gin"
)

var manager *session.Manager

func Init(m *session.Manager) {
	manager = m
}

// GetTheme godoc
// @Summary Get the display theme
// @Tags Storefront - Theme
// @Produce json
// @Success 200 {object} models.ApiResponse "Theme fetched successfully"
// @Router /theme [get]
func GetTheme(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Theme fetched successfully",
		models.ThemeResponse{Theme: sess.Theme()}))
}
