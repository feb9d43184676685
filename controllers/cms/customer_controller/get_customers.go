package customer_controller

import (
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

// userColumns is the enumerated column set for the manage-users table.
var userColumns = []tablerender.Column[models.User]{
	{Header: "Name", Value: func(u models.User) string { return u.Name }},
	{Header: "Email", Value: func(u models.User) string { return u.Email }},
	{Header: "Role", Value: func(u models.User) string { return u.Role }},
	{Header: "Joined", Value: func(u models.User) string { return u.CreatedAt.Format("Jan 02, 2006") }},
}

// GetCustomers godoc
// @Summary Get the manage-users table
// @Tags Admin - Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Users table fetched successfully"
// @Router /admin/users [get]
func GetCustomers(c *gin.Context) {
	table := tablerender.Render(ds.Users(), userColumns)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Users table fetched successfully", table))
}
