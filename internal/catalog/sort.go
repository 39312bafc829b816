// internal/catalog/sort.go
package catalog

import (
	"cmp"
	"slices"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

// SortProducts orders products in place. The sort is stable, so ties keep
// their incoming order. Relevance and unknown keys leave the order untouched.
func SortProducts(products []models.Product, sortBy models.SortBy) {
	compare := comparator(sortBy)
	if compare == nil {
		return
	}
	slices.SortStableFunc(products, compare)
}

func comparator(sortBy models.SortBy) func(a, b models.Product) int {
	switch sortBy {
	case models.SortPriceLow:
		return func(a, b models.Product) int { return cmp.Compare(a.Price, b.Price) }
	case models.SortPriceHigh:
		return func(a, b models.Product) int { return cmp.Compare(b.Price, a.Price) }
	case models.SortRating:
		return func(a, b models.Product) int { return cmp.Compare(b.Rating, a.Rating) }
	case models.SortNewest:
		return func(a, b models.Product) int { return b.CreatedAt.Compare(a.CreatedAt.Time) }
	case models.SortPopularity:
		return func(a, b models.Product) int { return cmp.Compare(b.ReviewCount, a.ReviewCount) }
	default:
		return nil
	}
}
