// internal/catalog/filter.go
package catalog

import (
	"strings"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

// ApplyFilters returns the products matching every active constraint in
// filters, in catalog order, then sorted by filters.SortBy.
func ApplyFilters(products []models.Product, filters models.FilterState) []models.Product {
	query := strings.ToLower(filters.SearchQuery)

	filtered := make([]models.Product, 0, len(products))
	for _, product := range products {
		if query != "" && !MatchesQuery(product, query) {
			continue
		}
		if filters.Category != "" && product.Category != filters.Category {
			continue
		}
		if product.Price < filters.MinPrice || product.Price > filters.MaxPrice {
			continue
		}
		if filters.MinRating > 0 && product.Rating < filters.MinRating {
			continue
		}
		filtered = append(filtered, product)
	}

	SortProducts(filtered, filters.SortBy)
	return filtered
}

// MatchesQuery reports whether the lowercase query is a substring of the
// product's title, description or category.
func MatchesQuery(product models.Product, query string) bool {
	return strings.Contains(strings.ToLower(product.Title), query) ||
		strings.Contains(strings.ToLower(product.Description), query) ||
		strings.Contains(strings.ToLower(product.Category), query)
}

// Suggestions returns up to limit products matching query, in catalog order.
func Suggestions(products []models.Product, query string, limit int) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || limit <= 0 {
		return []models.Product{}
	}

	matches := make([]models.Product, 0, limit)
	for _, product := range products {
		if MatchesQuery(product, query) {
			matches = append(matches, product)
			if len(matches) == limit {
				break
			}
		}
	}
	return matches
}

// Categories lists the distinct categories in first-seen order.
func Categories(products []models.Product) []string {
	seen := make(map[string]bool)
	categories := make([]string, 0)
	for _, product := range products {
		if seen[product.Category] {
			continue
		}
		seen[product.Category] = true
		categories = append(categories, product.Category)
	}
	return categories
}
