package order_controller

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

// orderColumns is the enumerated column set for the manage-orders table.
var orderColumns = []tablerender.Column[models.Order]{
	{Header: "Order ID", Value: func(o models.Order) string { return o.OrderNumber }},
	{Header: "User ID", Value: func(o models.Order) string { return o.UserID }},
	{Header: "Date", Value: func(o models.Order) string { return o.CreatedAt.Format("Jan 02, 2006") }},
	{Header: "Amount", Value: func(o models.Order) string { return fmt.Sprintf("$%.2f", o.TotalAmount) }},
	{Header: "Status", Value: func(o models.Order) string { return o.Status }},
}

// GetOrders godoc
// @Summary Get the manage-orders table
// @Tags Admin - Orders
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Orders table fetched successfully"
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	table := tablerender.Render(ds.Orders(), orderColumns)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Orders table fetched successfully", table))
}
