package dataset

import (
	"sort"
	"strings"
	"sync"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

// Dataset is the static collection backing the whole storefront. Products and
// users are immutable after Load; orders allow a single mutation (status
// updates from the admin console) behind a lock.
type Dataset struct {
	products     []models.Product
	productsByID map[string]int

	users        []models.User
	usersByEmail map[string]int
	usersByID    map[string]int

	mu         sync.RWMutex
	orders     []models.Order
	ordersByID map[string]int
}

// Load indexes the supplied records. Callers hand over ownership of the
// slices; nothing else may mutate them afterwards.
func Load(products []models.Product, users []models.User, orders []models.Order) *Dataset {
	ds := &Dataset{
		products:     products,
		productsByID: make(map[string]int, len(products)),
		users:        users,
		usersByEmail: make(map[string]int, len(users)),
		usersByID:    make(map[string]int, len(users)),
		orders:       orders,
		ordersByID:   make(map[string]int, len(orders)),
	}
	for i, p := range products {
		ds.productsByID[p.ID] = i
	}
	for i, u := range users {
		ds.usersByEmail[strings.ToLower(u.Email)] = i
		ds.usersByID[u.ID] = i
	}
	for i, o := range orders {
		ds.ordersByID[o.ID] = i
	}
	return ds
}

// Products returns the full catalog in collection order. The returned slice
// is a fresh copy so callers can reorder it freely.
func (ds *Dataset) Products() []models.Product {
	out := make([]models.Product, len(ds.products))
	copy(out, ds.products)
	return out
}

// ProductByID resolves a product. Not-found is an explicit outcome, not an
// error: callers render an empty state.
func (ds *Dataset) ProductByID(id string) (models.Product, bool) {
	i, ok := ds.productsByID[id]
	if !ok {
		return models.Product{}, false
	}
	return ds.products[i], true
}

// ProductCount reports the catalog size.
func (ds *Dataset) ProductCount() int {
	return len(ds.products)
}

// Users returns all user records in collection order.
func (ds *Dataset) Users() []models.User {
	out := make([]models.User, len(ds.users))
	copy(out, ds.users)
	return out
}

// UserByEmail resolves a user by email, case-insensitively.
func (ds *Dataset) UserByEmail(email string) (models.User, bool) {
	i, ok := ds.usersByEmail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return models.User{}, false
	}
	return ds.users[i], true
}

// UserByID resolves a user by identifier.
func (ds *Dataset) UserByID(id string) (models.User, bool) {
	i, ok := ds.usersByID[id]
	if !ok {
		return models.User{}, false
	}
	return ds.users[i], true
}

// Orders returns all orders in collection order.
func (ds *Dataset) Orders() []models.Order {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	out := make([]models.Order, len(ds.orders))
	copy(out, ds.orders)
	return out
}

// OrderByID resolves a single order.
func (ds *Dataset) OrderByID(id string) (models.Order, bool) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	i, ok := ds.ordersByID[id]
	if !ok {
		return models.Order{}, false
	}
	return ds.orders[i], true
}

// OrdersByUser returns the user's orders, newest first.
func (ds *Dataset) OrdersByUser(userID string) []models.Order {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	var out []models.Order
	for _, o := range ds.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// UpdateOrderStatus replaces an order's status. Returns the updated order,
// or ok=false when the order does not exist.
func (ds *Dataset) UpdateOrderStatus(id, status string) (models.Order, bool) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	i, ok := ds.ordersByID[id]
	if !ok {
		return models.Order{}, false
	}
	ds.orders[i].Status = status
	return ds.orders[i], true
}
