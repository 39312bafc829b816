package catalog

import (
	"time"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

var baseTime = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func product(id int, category string, price, rating float64) models.Product {
	return models.Product{
		ID:            id,
		Title:         "Product " + category,
		Description:   "Description",
		Category:      category,
		Price:         price,
		OriginalPrice: price,
		Rating:        rating,
		InStock:       true,
		CreatedAt:     models.NewTimestamp(baseTime.AddDate(0, 0, id)),
	}
}

// exampleCatalog is the three-product catalog used throughout the examples.
func exampleCatalog() []models.Product {
	p1 := product(1, "A", 10, 4.0)
	p2 := product(2, "B", 50, 4.8)
	p2.IsTrending = true
	p3 := product(3, "A", 5, 3.0)
	return []models.Product{p1, p2, p3}
}

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func defaultFilters() models.FilterState {
	return models.DefaultFilterState()
}
