package cms_routes

import (
	"time"

	"github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/admin_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/customer_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/dashboard_controller"
	cms_order "github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/order_controller"
	cms_product "github.com/VibeCart-Commerce/vibecart-backend/controllers/cms/product_controller"
	"github.com/VibeCart-Commerce/vibecart-backend/middleware"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers the admin console. Every route requires a valid
// token whose role claim is admin; the role comes from the user record at
// login, never from an email comparison.
func SetupAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireAdminMiddleware(),
		middleware.RateLimiter(60, time.Minute),
	)
	{
		admin.GET("/dashboard", dashboard_controller.GetDashboardStats)

		admin.GET("/products", cms_product.GetProducts)
		admin.GET("/users", customer_controller.GetCustomers)

		admin.GET("/orders", cms_order.GetOrders)
		admin.GET("/orders/:id/invoice", cms_order.DownloadOrderInvoicePDF)
		admin.PATCH("/orders/:id/status",
			middleware.ActivityLogMiddleware("update order status"),
			cms_order.UpdateOrderStatus)

		admin.GET("/activity", admin_controller.GetActivityLog)
	}
}
