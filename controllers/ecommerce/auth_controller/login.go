package auth_controller

import (
	"log"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/VibeCart-Commerce/vibecart-backend/services"
	"github.com/gin-gonic/gin"
)

var ds *dataset.Dataset

func Init(d *dataset.Dataset) {
	ds = d
}

const authCookieMaxAge = 86400

// Login godoc
// @Summary Log in
// @Description Resolve the user by email against the static dataset. Not a security boundary: this storefront runs in demo mode. The token's role claim derives from the user record.
// @Tags Storefront - Auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login form"
// @Success 200 {object} models.ApiResponse "Logged in successfully"
// @Failure 400 {object} models.ApiResponse "Invalid request body"
// @Failure 401 {object} models.ApiResponse "Invalid email or password"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	user, found := ds.UserByEmail(req.Email)
	if !found {
		log.Printf("[auth.login] unknown email: %s", req.Email)
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := services.GenerateToken(user)
	if err != nil {
		log.Printf("[auth.login] failed to generate token: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if sess, ok := middleware.SessionFromContext(c); ok {
		sess.SetUser(user)
	}
	c.SetCookie("auth_token", token, authCookieMaxAge, "/", "", false, true)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", models.AuthResponse{
		User:  user.ToResponse(),
		Token: token,
	}))
}
