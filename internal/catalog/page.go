// internal/catalog/page.go
package catalog

import "github.com/javajoker/shopsmart-backend/internal/models"

const DefaultPageSize = 12

// Page returns the first pageNumber*pageSize products. Pages accumulate:
// page 2 contains page 1 followed by the next pageSize products. hasMore
// reports whether products remain beyond the returned slice.
func Page(products []models.Product, pageNumber, pageSize int) ([]models.Product, bool) {
	if pageNumber < 1 {
		pageNumber = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	// Compare by division so huge page numbers cannot overflow.
	if pageNumber > len(products)/pageSize {
		return products[:len(products):len(products)], false
	}

	end := pageNumber * pageSize
	if end >= len(products) {
		return products[:len(products):len(products)], false
	}
	return products[:end:end], true
}
