package models

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortTrending  SortKey = "trending"
	SortRating    SortKey = "rating"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// ParseSortKey maps a raw query value onto a known sort key. Unknown values
// fall back to trending, the storefront default.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortRating, SortPriceAsc, SortPriceDesc:
		return SortKey(raw)
	default:
		return SortTrending
	}
}

// QueryDescriptor is the combined filter and sort selection driving the
// catalog view. Zero values are neutral: empty search, category "All",
// nil price bounds and rating 0 all skip their pipeline stage.
type QueryDescriptor struct {
	Search    string   `json:"search"`
	Category  string   `json:"category"`
	PriceMin  *float64 `json:"price_min,omitempty"`
	PriceMax  *float64 `json:"price_max,omitempty"`
	MinRating int      `json:"min_rating"`
	Sort      SortKey  `json:"sort"`
}

// HasPriceFilter reports whether any price bound is set.
func (q QueryDescriptor) HasPriceFilter() bool {
	return q.PriceMin != nil || q.PriceMax != nil
}

// HasCategoryFilter reports whether the category stage applies.
func (q QueryDescriptor) HasCategoryFilter() bool {
	return q.Category != "" && q.Category != CategoryAll
}
