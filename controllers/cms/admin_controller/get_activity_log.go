package admin_controller

import (
	"net/http"
	"strconv"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/VibeCart-Commerce/vibecart-backend/services"
	"github.com/gin-gonic/gin"
)

const defaultActivityLimit = 50

// GetActivityLog godoc
// @Summary Get recent admin console activity
// @Tags Admin - Activity
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max entries" default(50)
// @Success 200 {object} models.ApiResponse "Activity log fetched successfully"
// @Router /admin/activity [get]
func GetActivityLog(c *gin.Context) {
	limit := defaultActivityLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	entries := services.GetActivityLog().Recent(limit)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Activity log fetched successfully", entries))
}
