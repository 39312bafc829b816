package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

func sortFixture() []models.Product {
	a := product(1, "A", 30, 4.0)
	a.ReviewCount = 10
	b := product(2, "A", 10, 4.5)
	b.ReviewCount = 200
	c := product(3, "A", 30, 4.5)
	c.ReviewCount = 10
	d := product(4, "A", 20, 3.5)
	d.ReviewCount = 50
	return []models.Product{a, b, c, d}
}

func TestSortProducts(t *testing.T) {
	tests := []struct {
		sortBy models.SortBy
		want   []int
	}{
		{models.SortRelevance, []int{1, 2, 3, 4}},
		{models.SortBy("unknown"), []int{1, 2, 3, 4}},
		{models.SortPriceLow, []int{2, 4, 1, 3}},
		{models.SortPriceHigh, []int{1, 3, 4, 2}},
		{models.SortRating, []int{2, 3, 1, 4}},
		{models.SortNewest, []int{4, 3, 2, 1}},
		{models.SortPopularity, []int{2, 4, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(string(tt.sortBy), func(t *testing.T) {
			products := sortFixture()
			SortProducts(products, tt.sortBy)
			assert.Equal(t, tt.want, ids(products))
		})
	}
}

func TestSortProducts_Idempotent(t *testing.T) {
	for _, sortBy := range []models.SortBy{
		models.SortPriceLow, models.SortPriceHigh, models.SortRating,
		models.SortNewest, models.SortPopularity, models.SortRelevance,
	} {
		once := sortFixture()
		SortProducts(once, sortBy)

		twice := append([]models.Product(nil), once...)
		SortProducts(twice, sortBy)

		assert.Equal(t, ids(once), ids(twice), "sorting by %s twice changed the order", sortBy)
	}
}
