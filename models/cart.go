package models

// CartItem is a line item: a product snapshot plus a quantity. The snapshot
// keeps the price at add-time, so later catalog changes never reprice a cart.
// Quantity is always >= 1; a mutation that would drive it to 0 removes the
// line instead.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal is the snapshotted price times quantity.
func (ci CartItem) Subtotal() float64 {
	return ci.Product.Price * float64(ci.Quantity)
}

// CartResponse is the full cart view returned to the storefront.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Count int        `json:"count"`
	Total float64    `json:"total"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}
