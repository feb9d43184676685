package models

// WishlistResponse lists wishlisted products in the order they were added.
type WishlistResponse struct {
	Items []Product `json:"items"`
	Count int       `json:"count"`
}

type AddWishlistItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}
