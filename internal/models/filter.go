// internal/models/filter.go
package models

const (
	DefaultMinPrice = 0.0
	DefaultMaxPrice = 1000.0
)

// FilterState holds the constraints the shopper has set. It is owned by the
// caller and passed into every query.
type FilterState struct {
	SearchQuery string  `json:"search_query"`
	Category    string  `json:"category"`
	MinPrice    float64 `json:"min_price" validate:"gte=0"`
	MaxPrice    float64 `json:"max_price" validate:"gte=0,gtefield=MinPrice"`
	MinRating   float64 `json:"min_rating" validate:"gte=0,lte=5"`
	SortBy      SortBy  `json:"sort_by" validate:"omitempty,oneof=relevance price-low price-high rating newest popularity"`
}

// DefaultFilterState is the state after "clear filters".
func DefaultFilterState() FilterState {
	return FilterState{
		MinPrice: DefaultMinPrice,
		MaxPrice: DefaultMaxPrice,
		SortBy:   SortRelevance,
	}
}
