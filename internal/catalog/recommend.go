// internal/catalog/recommend.go
package catalog

import (
	"cmp"
	"slices"
	"strings"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

const (
	DefaultRecommendLimit = 8

	// Below this many context matches the pool is topped up with popular items.
	backfillThreshold   = 8
	backfillRatingFloor = 4.5
)

// Recommend picks up to limit products the shopper does not already hold in
// the cart or wishlist. Items matching the current search and filters come
// first in the pool; when there are fewer than eight of them, trending or
// highly rated items are appended. The pool is then ordered trending first,
// then by rating, then newest.
//
// minPrice never narrows recommendations.
func Recommend(products []models.Product, cartIDs, wishlistIDs map[int]bool, filters models.FilterState, limit int) []models.Product {
	if limit <= 0 {
		limit = DefaultRecommendLimit
	}

	candidates := make([]models.Product, 0, len(products))
	for _, product := range products {
		if cartIDs[product.ID] || wishlistIDs[product.ID] {
			continue
		}
		candidates = append(candidates, product)
	}

	pool := candidates
	if hasContext(filters) {
		pool = make([]models.Product, 0, len(candidates))
		for _, product := range candidates {
			if matchesContext(product, filters) {
				pool = append(pool, product)
			}
		}
	}

	if len(pool) < backfillThreshold {
		seen := make(map[int]bool, len(pool))
		for _, product := range pool {
			seen[product.ID] = true
		}
		for _, product := range candidates {
			if seen[product.ID] {
				continue
			}
			if product.IsTrending || product.Rating >= backfillRatingFloor {
				seen[product.ID] = true
				pool = append(pool, product)
			}
		}
	}

	slices.SortStableFunc(pool, compareRecommendations)

	if len(pool) > limit {
		pool = pool[:limit:limit]
	}
	return pool
}

func hasContext(filters models.FilterState) bool {
	return filters.SearchQuery != "" ||
		filters.Category != "" ||
		filters.MinRating > 0 ||
		filters.MaxPrice < models.DefaultMaxPrice
}

func matchesContext(product models.Product, filters models.FilterState) bool {
	if filters.SearchQuery != "" && !MatchesQuery(product, strings.ToLower(filters.SearchQuery)) {
		return false
	}
	if filters.Category != "" && product.Category != filters.Category {
		return false
	}
	if filters.MinRating > 0 && product.Rating < filters.MinRating {
		return false
	}
	if filters.MaxPrice < models.DefaultMaxPrice && product.Price > filters.MaxPrice {
		return false
	}
	return true
}

func compareRecommendations(a, b models.Product) int {
	if a.IsTrending != b.IsTrending {
		if a.IsTrending {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(b.Rating, a.Rating); c != 0 {
		return c
	}
	return b.CreatedAt.Compare(a.CreatedAt.Time)
}
