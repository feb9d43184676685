package models

import "time"

// Product categories are a fixed enumerated set, mirroring the storefront
// navigation. "All" is the neutral filter value, not a real category.
const (
	CategoryAll = "All"

	CategoryElectronics = "Electronics"
	CategoryFashion     = "Fashion"
	CategoryHome        = "Home & Living"
	CategoryBeauty      = "Beauty"
	CategorySports      = "Sports"
)

// Categories lists every real product category in display order.
func Categories() []string {
	return []string{
		CategoryElectronics,
		CategoryFashion,
		CategoryHome,
		CategoryBeauty,
		CategorySports,
	}
}

// Product is a catalog entry. Products are immutable once loaded; the
// dataset owns them and every consumer gets value copies.
type Product struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	Stock         int       `json:"stock"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"review_count"`
	Images        []string  `json:"images"`
	IsTrending    bool      `json:"is_trending"`
	IsEcoFriendly bool      `json:"is_eco_friendly"`
	CreatedAt     time.Time `json:"created_at"`
}

// StorefrontProductsResponse wraps a product listing with its result count.
type StorefrontProductsResponse struct {
	Products []Product `json:"products"`
	Count    int       `json:"count"`
}

// ProductDetailResponse is the single-product view plus its related products
// (same category, the product itself excluded, capped at four).
type ProductDetailResponse struct {
	Product Product   `json:"product"`
	Related []Product `json:"related"`
}
