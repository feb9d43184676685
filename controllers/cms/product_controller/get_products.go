package product_controller

import (
	"fmt"
	"net/http"

	"github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/tablerender"
	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

var ds *dataset.Dataset

func Init(d *dataset.Dataset) {
	ds = d
}

// productColumns is the enumerated column set for the manage-products table.
var productColumns = []tablerender.Column[models.Product]{
	{Header: "Name", Value: func(p models.Product) string { return p.Name }},
	{Header: "Category", Value: func(p models.Product) string { return p.Category }},
	{Header: "Price", Value: func(p models.Product) string { return fmt.Sprintf("$%.2f", p.Price) }},
	{Header: "Stock", Value: func(p models.Product) string { return fmt.Sprintf("%d", p.Stock) }},
	{Header: "Rating", Value: func(p models.Product) string { return fmt.Sprintf("%.1f", p.Rating) }},
}

// GetProducts godoc
// @Summary Get the manage-products table
// @Tags Admin - Products
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Products table fetched successfully"
// @Router /admin/products [get]
func GetProducts(c *gin.Context) {
	table := tablerender.Render(ds.Products(), productColumns)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Products table fetched successfully", table))
}
