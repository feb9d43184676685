package dashboard_controller

import (
	"net/http"
	"sort"

	dashboard_cache "github.com/VibeCart-Commerce/vibecart-backend/cache"
	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
	"github.com/gin-gonic/gin"
)

var ds *dataset.Dataset

func Init(d *dataset.Dataset) {
	ds = d
}

const recentOrdersLimit = 5

// GetDashboardStats godoc
// @Summary Get admin dashboard stats
// @Description Total revenue, sales, customers and products, the latest orders and the weekly sales series.
// @Tags Admin - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Dashboard stats fetched successfully"
// @Router /admin/dashboard [get]
func GetDashboardStats(c *gin.Context) {
	if stats, ok := dashboard_cache.GetStats(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats fetched successfully", stats))
		return
	}

	stats := buildStats()
	dashboard_cache.SetStats(stats)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats fetched successfully", stats))
}

func buildStats() models.DashboardStatsResponse {
	orders := ds.Orders()

	totalRevenue := 0.0
	for _, o := range orders {
		totalRevenue += o.TotalAmount
	}

	totalCustomers := 0
	for _, u := range ds.Users() {
		if u.Role == models.RoleUser {
			totalCustomers++
		}
	}

	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	recent := make([]models.RecentOrder, 0, recentOrdersLimit)
	for _, o := range orders {
		recent = append(recent, models.RecentOrder{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			TotalAmount: o.TotalAmount,
			Status:      o.Status,
			CreatedAt:   o.CreatedAt,
		})
		if len(recent) == recentOrdersLimit {
			break
		}
	}

	return models.DashboardStatsResponse{
		TotalRevenue:   totalRevenue,
		TotalSales:     len(orders),
		TotalCustomers: totalCustomers,
		TotalProducts:  ds.ProductCount(),
		RecentOrders:   recent,
		WeeklySales:    weeklySales(orders),
	}
}

// weeklySales buckets order totals by weekday for the dashboard chart.
func weeklySales(orders []models.Order) []models.SalesPoint {
	labels := []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	totals := make(map[string]float64, len(labels))
	for _, o := range orders {
		totals[o.CreatedAt.Format("Mon")] += o.TotalAmount
	}

	points := make([]models.SalesPoint, 0, len(labels))
	for _, label := range labels {
		points = append(points, models.SalesPoint{Label: label, Sales: totals[label]})
	}
	return points
}
