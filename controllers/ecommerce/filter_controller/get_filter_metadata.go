package filter_controller

import (
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/catalog"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

var engine *catalog.Engine

func Init(e *catalog.Engine) {
	engine = e
}

// GetFilterMetadata godoc
// @Summary Get shop page filter metadata
// @Description Categories with product counts, the store-wide price range and per-star rating counts.
// @Tags Storefront - Filters
// @Produce json
// @Success 200 {object} models.ApiResponse "Filter metadata fetched successfully"
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully",
		engine.FilterMetadata()))
}
