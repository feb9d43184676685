package product_controller

import (
	"strconv"
	"strings"

	"github.com/VibeCart-Commerce/vibecart-backend/catalog"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

var engine *catalog.Engine

// Init wires the catalog engine the handlers read from.
func Init(e *catalog.Engine) {
	engine = e
}

// parseQueryDescriptor maps storefront query params onto a QueryDescriptor.
// Unparseable or unknown values fall back to the neutral value for their
// stage rather than erroring.
func parseQueryDescriptor(c *gin.Context) models.QueryDescriptor {
	q := models.QueryDescriptor{
		Search:   c.Query("q"),
		Category: c.DefaultQuery("category", models.CategoryAll),
		Sort:     models.ParseSortKey(c.DefaultQuery("sort", "trending")),
	}

	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.PriceMin = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			q.PriceMax = &v
		}
	}

	// Compact "min-max" bucket form from the shop page select, e.g. 50-100.
	// "all" (or garbage) leaves the price stage neutral.
	if q.PriceMin == nil && q.PriceMax == nil {
		if bucket := c.Query("price"); bucket != "" && bucket != "all" {
			parts := strings.SplitN(bucket, "-", 2)
			if v, err := strconv.ParseFloat(parts[0], 64); err == nil {
				q.PriceMin = &v
			}
			if len(parts) == 2 {
				if v, err := strconv.ParseFloat(parts[1], 64); err == nil {
					q.PriceMax = &v
				}
			}
		}
	}

	if raw := c.Query("rating"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			q.MinRating = v
		}
	}

	return q
}
