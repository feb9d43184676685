package theme_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// SetTheme godoc
// @Summary Set the display theme
// @Description Persists the light/dark flag to the key-value store so it survives the session.
// @Tags Storefront - Theme
// @Accept json
// @Produce json
// @Param request body models.UpdateThemeRequest true "Theme"
// @Success 200 {object} models.ApiResponse "Theme updated"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Router /theme [put]
func SetTheme(c *gin.Context) {
	sess, ok := middleware.SessionFromContext(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Session unavailable"))
		return
	}

	var req models.UpdateThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	manager.SetTheme(c.Request.Context(), sess, req.Theme)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Theme updated",
		models.ThemeResponse{Theme: sess.Theme()}))
}
