package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

func TestSeedIndexes(t *testing.T) {
	ds := Seed()

	assert.Equal(t, 12, ds.ProductCount())
	assert.Len(t, ds.Users(), 4)
	assert.Len(t, ds.Orders(), 5)

	p, found := ds.ProductByID("p-004")
	require.True(t, found)
	assert.Equal(t, "Nomad Canvas Backpack", p.Name)
}

func TestSeedOrderTotalsMatchLines(t *testing.T) {
	ds := Seed()

	for _, o := range ds.Orders() {
		sum := 0.0
		for _, it := range o.Items {
			sum += it.Product.Price * float64(it.Quantity)
		}
		assert.InDelta(t, sum, o.TotalAmount, 1e-9, "order %s", o.OrderNumber)
	}
}

func TestUserByEmailIsCaseInsensitive(t *testing.T) {
	ds := Seed()

	u, found := ds.UserByEmail("ZOE@Example.com")
	require.True(t, found)
	assert.Equal(t, "u-002", u.ID)

	u, found = ds.UserByEmail("  zoe@example.com  ")
	require.True(t, found)
	assert.Equal(t, "u-002", u.ID)

	_, found = ds.UserByEmail("nobody@example.com")
	assert.False(t, found)
}

func TestOrdersByUserNewestFirst(t *testing.T) {
	ds := Seed()

	orders := ds.OrdersByUser("u-002")
	require.Len(t, orders, 2)
	assert.Equal(t, "o-1003", orders[0].ID)
	assert.Equal(t, "o-1001", orders[1].ID)
	for i := 1; i < len(orders); i++ {
		assert.False(t, orders[i-1].CreatedAt.Before(orders[i].CreatedAt))
	}

	assert.Empty(t, ds.OrdersByUser("u-999"))
}

func TestUpdateOrderStatus(t *testing.T) {
	ds := Seed()

	updated, ok := ds.UpdateOrderStatus("o-1003", models.OrderStatusShipped)
	require.True(t, ok)
	assert.Equal(t, models.OrderStatusShipped, updated.Status)

	got, found := ds.OrderByID("o-1003")
	require.True(t, found)
	assert.Equal(t, models.OrderStatusShipped, got.Status, "update is visible on later reads")

	_, ok = ds.UpdateOrderStatus("o-9999", models.OrderStatusShipped)
	assert.False(t, ok)
}

func TestProductsReturnsCopy(t *testing.T) {
	ds := Seed()

	products := ds.Products()
	products[0].Name = "mutated"

	p, found := ds.ProductByID(products[0].ID)
	require.True(t, found)
	assert.NotEqual(t, "mutated", p.Name)
}
