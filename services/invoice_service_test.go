package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

func TestGenerateOrderInvoicePDF(t *testing.T) {
	order := models.Order{
		ID:          "o-1001",
		OrderNumber: "ORD-2025-0001",
		UserID:      "u-002",
		Items: []models.OrderItem{
			{Product: models.Product{Name: "Aurora Wireless Headphones", Price: 129.99}, Quantity: 1},
			{Product: models.Product{Name: "Glow Vitamin C Serum", Price: 32.00}, Quantity: 2},
		},
		TotalAmount: 193.99,
		Status:      models.OrderStatusDelivered,
		CreatedAt:   time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	customer := models.User{Name: "Zoe Carter", Email: "zoe@example.com"}

	buf, err := GenerateOrderInvoicePDF(order, customer)

	require.NoError(t, err)
	require.NotNil(t, buf)
	assert.NotZero(t, buf.Len())
	assert.Equal(t, "%PDF", buf.String()[:4])
}

func TestGenerateOrderInvoicePDFEmptyOrder(t *testing.T) {
	buf, err := GenerateOrderInvoicePDF(models.Order{OrderNumber: "ORD-0000"}, models.User{})

	require.NoError(t, err, "an order with no lines still renders")
	assert.NotZero(t, buf.Len())
}
