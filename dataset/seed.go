package dataset

import (
	"time"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// Seed builds the fixed demo dataset the storefront runs against. There is
// no real backend; this collection is the catalog, the customer base and the
// order history for the whole session.
func Seed() *Dataset {
	products := []models.Product{
		{
			ID: "p-001", Name: "Aurora Wireless Headphones", Category: models.CategoryElectronics,
			Price: 129.99, Stock: 42, Rating: 4.6, ReviewCount: 318,
			Images:      []string{"/images/products/aurora-1.jpg", "/images/products/aurora-2.jpg"},
			IsTrending:  true,
			Description: "Over-ear wireless headphones with 40h battery and active noise cancelling.",
			CreatedAt:   day("2025-01-12"),
		},
		{
			ID: "p-002", Name: "Pulse Smart Watch", Category: models.CategoryElectronics,
			Price: 199.00, Stock: 25, Rating: 4.2, ReviewCount: 204,
			Images:      []string{"/images/products/pulse-1.jpg"},
			Description: "Fitness tracking, heart-rate monitoring and a week of battery life.",
			CreatedAt:   day("2025-01-20"),
		},
		{
			ID: "p-003", Name: "Terra Running Shoe", Category: models.CategorySports,
			Price: 89.95, Stock: 60, Rating: 4.4, ReviewCount: 451,
			Images:        []string{"/images/products/terra-1.jpg", "/images/products/terra-2.jpg"},
			IsTrending:    true,
			IsEcoFriendly: true,
			Description:   "Lightweight trail running shoe with recycled-mesh upper.",
			CreatedAt:     day("2025-02-03"),
		},
		{
			ID: "p-004", Name: "Nomad Canvas Backpack", Category: models.CategoryFashion,
			Price: 64.50, Stock: 38, Rating: 4.7, ReviewCount: 129,
			Images:        []string{"/images/products/nomad-1.jpg"},
			IsEcoFriendly: true,
			Description:   "Water-resistant 22L daypack in organic canvas with laptop sleeve.",
			CreatedAt:     day("2025-02-10"),
		},
		{
			ID: "p-005", Name: "Linen Throw Blanket", Category: models.CategoryHome,
			Price: 45.00, Stock: 80, Rating: 4.1, ReviewCount: 87,
			Images:        []string{"/images/products/linen-1.jpg"},
			IsEcoFriendly: true,
			Description:   "Stonewashed linen throw, naturally dyed, 130x170cm.",
			CreatedAt:     day("2025-02-18"),
		},
		{
			ID: "p-006", Name: "Ceramic Pour-Over Set", Category: models.CategoryHome,
			Price: 54.00, Stock: 31, Rating: 4.8, ReviewCount: 212,
			Images:      []string{"/images/products/pourover-1.jpg", "/images/products/pourover-2.jpg"},
			IsTrending:  true,
			Description: "Hand-glazed ceramic dripper and carafe for a slower morning.",
			CreatedAt:   day("2025-03-01"),
		},
		{
			ID: "p-007", Name: "Glow Vitamin C Serum", Category: models.CategoryBeauty,
			Price: 32.00, Stock: 120, Rating: 4.3, ReviewCount: 540,
			Images:      []string{"/images/products/glow-1.jpg"},
			IsTrending:  true,
			Description: "Brightening 15% vitamin C serum with hyaluronic acid.",
			CreatedAt:   day("2025-03-08"),
		},
		{
			ID: "p-008", Name: "Bamboo Hair Brush", Category: models.CategoryBeauty,
			Price: 18.50, Stock: 95, Rating: 3.9, ReviewCount: 76,
			Images:        []string{"/images/products/bamboo-1.jpg"},
			IsEcoFriendly: true,
			Description:   "Detangling brush with bamboo body and natural rubber cushion.",
			CreatedAt:     day("2025-03-15"),
		},
		{
			ID: "p-009", Name: "Summit Yoga Mat", Category: models.CategorySports,
			Price: 58.00, Stock: 47, Rating: 4.5, ReviewCount: 188,
			Images:        []string{"/images/products/summit-1.jpg"},
			IsEcoFriendly: true,
			Description:   "6mm natural rubber mat with alignment guides.",
			CreatedAt:     day("2025-03-22"),
		},
		{
			ID: "p-010", Name: "Volt Portable Speaker", Category: models.CategoryElectronics,
			Price: 79.99, Stock: 54, Rating: 3.6, ReviewCount: 142,
			Images:      []string{"/images/products/volt-1.jpg"},
			Description: "Pocket-size speaker with punchy bass and IPX7 waterproofing.",
			CreatedAt:   day("2025-04-02"),
		},
		{
			ID: "p-011", Name: "Heritage Denim Jacket", Category: models.CategoryFashion,
			Price: 110.00, Stock: 22, Rating: 4.4, ReviewCount: 98,
			Images:      []string{"/images/products/heritage-1.jpg", "/images/products/heritage-2.jpg"},
			IsTrending:  true,
			Description: "Classic-cut jacket in 14oz selvedge denim.",
			CreatedAt:   day("2025-04-09"),
		},
		{
			ID: "p-012", Name: "Cedar Scented Candle", Category: models.CategoryHome,
			Price: 24.00, Stock: 140, Rating: 4.0, ReviewCount: 63,
			Images:        []string{"/images/products/cedar-1.jpg"},
			IsEcoFriendly: true,
			Description:   "Soy wax candle with cedarwood and amber, 45h burn time.",
			CreatedAt:     day("2025-04-16"),
		},
	}

	users := []models.User{
		{ID: "u-001", Name: "Admin", Email: "admin@vibecart.com", Role: models.RoleAdmin, CreatedAt: day("2024-11-01")},
		{ID: "u-002", Name: "Zoe Carter", Email: "zoe@example.com", Role: models.RoleUser, CreatedAt: day("2025-01-05")},
		{ID: "u-003", Name: "Liam Okafor", Email: "liam@example.com", Role: models.RoleUser, CreatedAt: day("2025-02-14")},
		{ID: "u-004", Name: "Mia Schneider", Email: "mia@example.com", Role: models.RoleUser, CreatedAt: day("2025-03-21")},
	}

	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	line := func(id string, qty int) models.OrderItem {
		return models.OrderItem{Product: byID[id], Quantity: qty}
	}
	total := func(items []models.OrderItem) float64 {
		sum := 0.0
		for _, it := range items {
			sum += it.Product.Price * float64(it.Quantity)
		}
		return sum
	}
	order := func(id, number, userID, status, created string, items ...models.OrderItem) models.Order {
		return models.Order{
			ID:          id,
			OrderNumber: number,
			UserID:      userID,
			Items:       items,
			TotalAmount: total(items),
			Status:      status,
			CreatedAt:   day(created),
		}
	}

	orders := []models.Order{
		order("o-1001", "ORD-2025-0001", "u-002", models.OrderStatusDelivered, "2025-03-02",
			line("p-001", 1), line("p-007", 2)),
		order("o-1002", "ORD-2025-0002", "u-003", models.OrderStatusShipped, "2025-03-28",
			line("p-003", 1)),
		order("o-1003", "ORD-2025-0003", "u-002", models.OrderStatusPending, "2025-04-11",
			line("p-006", 1), line("p-012", 3)),
		order("o-1004", "ORD-2025-0004", "u-004", models.OrderStatusCancelled, "2025-04-18",
			line("p-011", 1)),
		order("o-1005", "ORD-2025-0005", "u-003", models.OrderStatusPending, "2025-04-25",
			line("p-009", 2), line("p-005", 1)),
	}

	return Load(products, users, orders)
}
