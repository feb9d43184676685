package models

import "time"

// DashboardStatsResponse backs the admin dashboard stat cards and charts.
type DashboardStatsResponse struct {
	TotalRevenue   float64       `json:"total_revenue"`
	TotalSales     int           `json:"total_sales"`
	TotalCustomers int           `json:"total_customers"`
	TotalProducts  int           `json:"total_products"`
	RecentOrders   []RecentOrder `json:"recent_orders"`
	WeeklySales    []SalesPoint  `json:"weekly_sales"`
}

// RecentOrder is a dashboard row for the latest orders panel.
type RecentOrder struct {
	ID          string    `json:"id"`
	OrderNumber string    `json:"order_number"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// SalesPoint is one bucket of the weekly sales chart.
type SalesPoint struct {
	Label string  `json:"label"`
	Sales float64 `json:"sales"`
}

// TableResponse is a rendered admin table: headers plus display-ready rows.
// Cells are produced by the enumerated column descriptors, never by
// reflective field access.
type TableResponse struct {
	Headers []string   `json:"headers"`
	Rows    [][]string `json:"rows"`
}

// AdminActivityEntry is one recorded admin console action.
type AdminActivityEntry struct {
	ID         string    `json:"id"`
	AdminEmail string    `json:"admin_email"`
	Method     string    `json:"method"`
	Path       string    `json:"path"`
	Action     string    `json:"action"`
	At         time.Time `json:"at"`
}
