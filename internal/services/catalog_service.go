// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/javajoker/shopsmart-backend/internal/catalog"
	"github.com/javajoker/shopsmart-backend/internal/config"
	"github.com/javajoker/shopsmart-backend/internal/metrics"
	"github.com/javajoker/shopsmart-backend/internal/models"
)

const SuggestionLimit = 5

var (
	ErrCatalogNotReady = errors.New("catalog has not been loaded yet")
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyQuery      = errors.New("search query is empty")
)

// CatalogService owns the loaded catalog. The product slice is replaced
// wholesale on reload and never mutated, so readers may keep a snapshot.
type CatalogService struct {
	source CatalogSource
	config config.CatalogConfig
	group  singleflight.Group

	mu       sync.RWMutex
	products []models.Product
	index    map[int]int
	ready    bool
	loadErr  error
	loadedAt time.Time
}

type QueryResult struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	HasMore  bool             `json:"has_more"`
}

type EnhancedSearchResult struct {
	Query    string           `json:"query"`
	Keywords []string         `json:"keywords"`
	Products []models.Product `json:"products"`
}

type CatalogStats struct {
	Source        string    `json:"source"`
	TotalProducts int       `json:"total_products"`
	Categories    int       `json:"categories"`
	InStock       int       `json:"in_stock"`
	OnSale        int       `json:"on_sale"`
	Trending      int       `json:"trending"`
	New           int       `json:"new"`
	AverageRating float64   `json:"average_rating"`
	LoadedAt      time.Time `json:"loaded_at"`
}

func NewCatalogService(source CatalogSource, cfg config.CatalogConfig) *CatalogService {
	if cfg.PageSize < 1 {
		cfg.PageSize = catalog.DefaultPageSize
	}
	if cfg.RecommendLimit < 1 {
		cfg.RecommendLimit = catalog.DefaultRecommendLimit
	}
	return &CatalogService{
		source: source,
		config: cfg,
		index:  map[int]int{},
	}
}

func (s *CatalogService) Source() CatalogSource {
	return s.source
}

// Load fetches the catalog and swaps it in. Concurrent calls share one fetch.
// A failed first load leaves an empty catalog that can still be queried; a
// failed reload keeps the previous catalog.
func (s *CatalogService) Load(ctx context.Context) (int, error) {
	v, err, _ := s.group.Do("catalog", func() (interface{}, error) {
		return s.load(ctx)
	})
	if err != nil {
		return 0, err
	}
	return v.(int), nil
}

// Reload is Load for an already running service.
func (s *CatalogService) Reload(ctx context.Context) (int, error) {
	logrus.WithField("source", s.source.Describe()).Info("Reloading catalog")
	return s.Load(ctx)
}

func (s *CatalogService) load(ctx context.Context) (int, error) {
	if s.config.LoadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(s.config.LoadTimeout)*time.Second)
		defer cancel()
	}

	start := time.Now()
	products, err := s.source.Fetch(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.ready = true
	if err != nil {
		s.loadErr = err
		metrics.CatalogLoads.WithLabelValues("failure").Inc()
		logrus.WithError(err).WithFields(logrus.Fields{
			"source":   s.source.Describe(),
			"retained": len(s.products),
		}).Error("Failed to load catalog")
		return 0, fmt.Errorf("failed to load catalog from %s: %w", s.source.Describe(), err)
	}

	index := make(map[int]int, len(products))
	for i, p := range products {
		index[p.ID] = i
	}

	s.products = products
	s.index = index
	s.loadErr = nil
	s.loadedAt = time.Now()

	metrics.CatalogLoads.WithLabelValues("success").Inc()
	metrics.CatalogProducts.Set(float64(len(products)))
	logrus.WithFields(logrus.Fields{
		"source":   s.source.Describe(),
		"count":    len(products),
		"duration": time.Since(start).Milliseconds(),
	}).Info("Catalog loaded")

	return len(products), nil
}

func (s *CatalogService) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// LoadError is the error of the most recent load, nil after a success.
func (s *CatalogService) LoadError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadErr
}

func (s *CatalogService) snapshot() ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return nil, ErrCatalogNotReady
	}
	return s.products, nil
}

func (s *CatalogService) Products() ([]models.Product, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(products), nil
}

// Count reports the number of loaded products without copying them.
func (s *CatalogService) Count() (int, error) {
	products, err := s.snapshot()
	return len(products), err
}

func (s *CatalogService) Find(id int) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.ready {
		return models.Product{}, ErrCatalogNotReady
	}
	i, ok := s.index[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return s.products[i], nil
}

func (s *CatalogService) Categories() ([]string, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return catalog.Categories(products), nil
}

func (s *CatalogService) Stats() (CatalogStats, error) {
	products, err := s.snapshot()
	if err != nil {
		return CatalogStats{}, err
	}

	s.mu.RLock()
	stats := CatalogStats{
		Source:        s.source.Describe(),
		TotalProducts: len(products),
		Categories:    len(catalog.Categories(products)),
		LoadedAt:      s.loadedAt,
	}
	s.mu.RUnlock()

	var ratingSum float64
	for _, p := range products {
		ratingSum += p.Rating
		if p.InStock {
			stats.InStock++
		}
		if p.IsOnSale {
			stats.OnSale++
		}
		if p.IsTrending {
			stats.Trending++
		}
		if p.IsNew {
			stats.New++
		}
	}
	if len(products) > 0 {
		stats.AverageRating = float64(int(ratingSum/float64(len(products))*100+0.5)) / 100
	}
	return stats, nil
}

// Query filters, sorts and pages the catalog. Pages are cumulative.
func (s *CatalogService) Query(filters models.FilterState, page, pageSize int) (QueryResult, error) {
	products, err := s.snapshot()
	if err != nil {
		return QueryResult{}, err
	}
	if pageSize < 1 {
		pageSize = s.config.PageSize
	}
	if page < 1 {
		page = 1
	}

	metrics.CatalogQueries.WithLabelValues("query").Inc()
	filtered := catalog.ApplyFilters(products, filters)
	visible, hasMore := catalog.Page(filtered, page, pageSize)

	return QueryResult{
		Products: visible,
		Total:    len(filtered),
		Page:     page,
		PageSize: pageSize,
		HasMore:  hasMore,
	}, nil
}

func (s *CatalogService) Suggestions(query string) ([]models.Product, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}

	metrics.CatalogQueries.WithLabelValues("suggestions").Inc()
	return catalog.Suggestions(products, query, SuggestionLimit), nil
}

// EnhancedSearch expands the query with synonyms and returns every product
// matching any of the resulting keywords.
func (s *CatalogService) EnhancedSearch(query string) (EnhancedSearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return EnhancedSearchResult{}, ErrEmptyQuery
	}

	products, err := s.snapshot()
	if err != nil {
		return EnhancedSearchResult{}, err
	}

	metrics.CatalogQueries.WithLabelValues("enhanced_search").Inc()
	keywords := catalog.ExtractQueryKeywords(query)
	return EnhancedSearchResult{
		Query:    query,
		Keywords: keywords,
		Products: catalog.MatchKeywords(products, keywords),
	}, nil
}

func (s *CatalogService) Recommend(filters models.FilterState, cartIDs, wishlistIDs map[int]bool, limit int) ([]models.Product, error) {
	products, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	if limit < 1 {
		limit = s.config.RecommendLimit
	}

	metrics.CatalogQueries.WithLabelValues("recommend").Inc()
	return catalog.Recommend(products, cartIDs, wishlistIDs, filters, limit), nil
}
