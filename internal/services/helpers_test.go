package services

import (
	"context"
	"sync/atomic"

	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/models"
)

// staticSource serves a fixed catalog or error and counts fetches.
type staticSource struct {
	products []models.Product
	err      error
	fetches  int32
	gate     chan struct{}
}

func (s *staticSource) Fetch(ctx context.Context) ([]models.Product, error) {
	atomic.AddInt32(&s.fetches, 1)
	if s.gate != nil {
		<-s.gate
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.products, nil
}

func (s *staticSource) Describe() string {
	return "static"
}

func testProduct(id int, title, category string, price, rating float64) models.Product {
	return models.Product{
		ID:          id,
		Title:       title,
		Description: title + " description",
		Category:    category,
		Price:       price,
		Rating:      rating,
		InStock:     true,
	}
}

func testCatalog() []models.Product {
	trending := testProduct(4, "Gaming Headset", "audio", 80, 4.2)
	trending.IsTrending = true
	return []models.Product{
		testProduct(1, "Smartphone X", "phones", 699, 4.6),
		testProduct(2, "Budget Phone", "phones", 199, 3.9),
		testProduct(3, "Wireless Earbuds", "audio", 129, 4.8),
		trending,
		testProduct(5, "Ultrabook Laptop", "computers", 999, 4.7),
	}
}

func testCatalogConfig() config.CatalogConfig {
	return config.CatalogConfig{PageSize: 2, RecommendLimit: 8}
}

func loadedCatalogService(products []models.Product) *CatalogService {
	svc := NewCatalogService(&staticSource{products: products}, testCatalogConfig())
	if _, err := svc.Load(context.Background()); err != nil {
		panic(err)
	}
	return svc
}
