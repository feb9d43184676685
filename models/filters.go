package models

// FilterMetadata represents all filter data for the storefront shop page.
type FilterMetadata struct {
	Categories []FilterOption  `json:"categories"`
	PriceRange *PriceRangeData `json:"priceRange"`
	Ratings    []FilterOption  `json:"ratings"`
}

// FilterOption represents a single filter option with its product count.
type FilterOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Count int    `json:"count"`
}

// PriceRangeData represents the minimum and maximum price in the store.
type PriceRangeData struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
