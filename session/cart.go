package session

import "github.com/VibeCart-Commerce/vibecart-backend/models"

// Cart aggregates line items keyed by product ID. Items keep insertion order
// for display; the index map keeps lookups O(1). Cart is not safe for
// concurrent use on its own; the owning Session serializes access.
type Cart struct {
	items []models.CartItem
	index map[string]int
}

func NewCart() *Cart {
	return &Cart{index: make(map[string]int)}
}

// AddItem merges the quantity into an existing line or appends a new one.
// The product is snapshotted, so later catalog price changes do not reprice
// the line. Quantities are not clamped against stock: the storefront runs in
// mock-checkout mode and deliberately allows ordering past availability.
func (c *Cart) AddItem(p models.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	if i, ok := c.index[p.ID]; ok {
		c.items[i].Quantity += quantity
		return
	}
	c.index[p.ID] = len(c.items)
	c.items = append(c.items, models.CartItem{Product: p, Quantity: quantity})
}

// RemoveItem deletes the line if present; removing an absent product is a
// no-op, not an error.
func (c *Cart) RemoveItem(productID string) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].Product.ID] = j
	}
}

// SetQuantity replaces the line's quantity exactly. A quantity of zero or
// below removes the line, keeping the quantity >= 1 invariant.
func (c *Cart) SetQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}
	if i, ok := c.index[productID]; ok {
		c.items[i].Quantity = quantity
	}
}

// TotalCount sums all line quantities.
func (c *Cart) TotalCount() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalAmount sums price*quantity over the snapshotted prices.
func (c *Cart) TotalAmount() float64 {
	sum := 0.0
	for _, it := range c.items {
		sum += it.Subtotal()
	}
	return sum
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []models.CartItem {
	out := make([]models.CartItem, len(c.items))
	copy(out, c.items)
	return out
}
