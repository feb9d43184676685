package catalog

import (
	"fmt"

	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

// relatedLimit caps the related-products strip on the detail page.
const relatedLimit = 4

// ProductByID resolves a single product. The second return is false when the
// identifier matches nothing; callers render a not-found state.
func (e *Engine) ProductByID(id string) (models.Product, bool) {
	return e.ds.ProductByID(id)
}

// Related returns up to four products from the same category, excluding the
// product itself, in collection order.
func (e *Engine) Related(p models.Product) []models.Product {
	out := make([]models.Product, 0, relatedLimit)
	for _, cand := range e.ds.Products() {
		if cand.Category == p.Category && cand.ID != p.ID {
			out = append(out, cand)
			if len(out) == relatedLimit {
				break
			}
		}
	}
	return out
}

// Trending returns trending products in collection order, capped at limit
// (0 means no cap).
func (e *Engine) Trending(limit int) []models.Product {
	var out []models.Product
	for _, p := range e.ds.Products() {
		if p.IsTrending {
			out = append(out, p)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out
}

// EcoFriendly returns the eco-conscious collection in collection order.
func (e *Engine) EcoFriendly() []models.Product {
	var out []models.Product
	for _, p := range e.ds.Products() {
		if p.IsEcoFriendly {
			out = append(out, p)
		}
	}
	return out
}

// FilterMetadata aggregates the shop page filter panel data: per-category
// counts, the store-wide price range and per-star rating counts.
func (e *Engine) FilterMetadata() models.FilterMetadata {
	products := e.ds.Products()

	counts := make(map[string]int)
	for _, p := range products {
		counts[p.Category]++
	}
	categories := make([]models.FilterOption, 0, len(models.Categories()))
	for _, cat := range models.Categories() {
		categories = append(categories, models.FilterOption{
			Label: cat,
			Value: cat,
			Count: counts[cat],
		})
	}

	var priceRange *models.PriceRangeData
	if len(products) > 0 {
		pr := models.PriceRangeData{Min: products[0].Price, Max: products[0].Price}
		for _, p := range products[1:] {
			if p.Price < pr.Min {
				pr.Min = p.Price
			}
			if p.Price > pr.Max {
				pr.Max = p.Price
			}
		}
		priceRange = &pr
	}

	ratings := make([]models.FilterOption, 0, 5)
	for star := 1; star <= 5; star++ {
		n := 0
		for _, p := range products {
			if RoundRating(p.Rating) >= star {
				n++
			}
		}
		ratings = append(ratings, models.FilterOption{
			Label: fmt.Sprintf("%d stars & up", star),
			Value: fmt.Sprintf("%d", star),
			Count: n,
		})
	}

	return models.FilterMetadata{
		Categories: categories,
		PriceRange: priceRange,
		Ratings:    ratings,
	}
}
