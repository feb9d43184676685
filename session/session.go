// Package session holds the mutable per-visitor state: cart, wishlist, theme
// and the authenticated user. The browser source ran all mutations on a
// single UI thread; here every Session carries its own mutex so each
// session's mutations still run to completion with no interleaving.
package session

import (
	"sync"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

// Session is the explicit per-visitor state object. Handlers receive it by
// reference from the middleware; there is no global singleton.
type Session struct {
	ID string

	mu       sync.Mutex
	cart     *Cart
	wishlist *Wishlist
	theme    string
	user     *models.User
}

func newSession(id, theme string) *Session {
	return &Session{
		ID:       id,
		cart:     NewCart(),
		wishlist: NewWishlist(),
		theme:    theme,
	}
}

// ── Cart ────────────────────────────────────────────────────────────────────

func (s *Session) AddToCart(p models.Product, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.AddItem(p, quantity)
}

func (s *Session) RemoveFromCart(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.RemoveItem(productID)
}

func (s *Session) UpdateCartQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.SetQuantity(productID, quantity)
}

// CartView snapshots the cart into its response shape.
func (s *Session) CartView() models.CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.CartResponse{
		Items: s.cart.Items(),
		Count: s.cart.TotalCount(),
		Total: s.cart.TotalAmount(),
	}
}

// ── Wishlist ────────────────────────────────────────────────────────────────

func (s *Session) AddToWishlist(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.Add(p)
}

func (s *Session) RemoveFromWishlist(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wishlist.Remove(productID)
}

func (s *Session) IsInWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wishlist.Contains(productID)
}

// WishlistView snapshots the wishlist into its response shape.
func (s *Session) WishlistView() models.WishlistResponse {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.WishlistResponse{
		Items: s.wishlist.Items(),
		Count: s.wishlist.Count(),
	}
}

// ── Theme ───────────────────────────────────────────────────────────────────

func (s *Session) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.theme == "" {
		return models.ThemeLight
	}
	return s.theme
}

func (s *Session) setTheme(theme string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
}

// ── Auth ────────────────────────────────────────────────────────────────────

// SetUser binds the resolved user to the session at login.
func (s *Session) SetUser(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
}

// ClearUser detaches the user at logout. Cart and wishlist survive, matching
// the source behavior.
func (s *Session) ClearUser() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
}

// User returns the authenticated user, if any.
func (s *Session) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}
