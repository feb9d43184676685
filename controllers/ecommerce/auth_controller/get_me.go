package auth_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMe godoc
// @Summary Get the authenticated user
// @Tags Storefront - Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "User fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 404 {object} models.ApiResponse "User not found"
// @Router /auth/me [get]
func GetMe(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	user, found := ds.UserByID(userID)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "User not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "User fetched successfully", user.ToResponse()))
}
