// Package catalog implements the storefront query engine: a fixed
// filter-then-sort pipeline over the immutable product collection.
package catalog

import (
	"math"
	"sort"
	"strings"

	"github.com/VibeCart-Commerce/vibecart-backend/dataset"
	"github.com/VibeCart-Commerce/vibecart-backend/models"
)

// Engine answers catalog queries against a loaded dataset. It never mutates
// the underlying collection; every query returns a new ordered view.
type Engine struct {
	ds *dataset.Dataset
}

func NewEngine(ds *dataset.Dataset) *Engine {
	return &Engine{ds: ds}
}

// Query runs the fixed pipeline: search, category, price, rating, then a
// stable sort. Stages whose predicate is the neutral value are skipped.
// An empty result is a valid outcome.
func (e *Engine) Query(q models.QueryDescriptor) []models.Product {
	products := e.ds.Products()

	if term := strings.TrimSpace(q.Search); term != "" {
		term = strings.ToLower(term)
		products = keep(products, func(p models.Product) bool {
			return strings.Contains(strings.ToLower(p.Name), term)
		})
	}

	if q.HasCategoryFilter() {
		products = keep(products, func(p models.Product) bool {
			return p.Category == q.Category
		})
	}

	if q.HasPriceFilter() {
		products = keep(products, func(p models.Product) bool {
			if q.PriceMin != nil && p.Price < *q.PriceMin {
				return false
			}
			if q.PriceMax != nil && p.Price > *q.PriceMax {
				return false
			}
			return true
		})
	}

	if q.MinRating > 0 {
		products = keep(products, func(p models.Product) bool {
			return RoundRating(p.Rating) >= q.MinRating
		})
	}

	sortProducts(products, q.Sort)
	return products
}

// RoundRating rounds to the nearest whole star, half up: 3.5 counts as 4.
func RoundRating(rating float64) int {
	return int(math.Floor(rating + 0.5))
}

// keep filters in place over the query's private copy.
func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	out := products[:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// sortProducts orders the view by the selected key. All sorts are stable so
// ties keep their collection order; trending is a stable partition, not a
// full comparator swap.
func sortProducts(products []models.Product, key models.SortKey) {
	switch key {
	case models.SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case models.SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case models.SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default: // trending
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].IsTrending && !products[j].IsTrending
		})
	}
}
