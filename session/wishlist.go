package session

import "github.com/VibeCart-Commerce/vibecart-backend/models"

// Wishlist is a duplicate-free set of products. Contains is O(1) because the
// membership test runs on every catalog card render. Display order is
// insertion order.
type Wishlist struct {
	items []models.Product
	index map[string]int
}

func NewWishlist() *Wishlist {
	return &Wishlist{index: make(map[string]int)}
}

// Add inserts the product; adding a product already present is a no-op.
func (w *Wishlist) Add(p models.Product) {
	if _, ok := w.index[p.ID]; ok {
		return
	}
	w.index[p.ID] = len(w.items)
	w.items = append(w.items, p)
}

// Remove deletes the product if present; absent is a no-op.
func (w *Wishlist) Remove(productID string) {
	i, ok := w.index[productID]
	if !ok {
		return
	}
	w.items = append(w.items[:i], w.items[i+1:]...)
	delete(w.index, productID)
	for j := i; j < len(w.items); j++ {
		w.index[w.items[j].ID] = j
	}
}

// Contains reports membership.
func (w *Wishlist) Contains(productID string) bool {
	_, ok := w.index[productID]
	return ok
}

// Count reports the set size.
func (w *Wishlist) Count() int {
	return len(w.items)
}

// Items returns a copy of the wishlisted products in insertion order.
func (w *Wishlist) Items() []models.Product {
	out := make([]models.Product, len(w.items))
	copy(out, w.items)
	return out
}
