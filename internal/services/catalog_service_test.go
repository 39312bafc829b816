package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

func TestCatalogService_NotReadyBeforeLoad(t *testing.T) {
	svc := NewCatalogService(&staticSource{products: testCatalog()}, testCatalogConfig())

	assert.False(t, svc.Ready())
	_, err := svc.Query(models.DefaultFilterState(), 1, 0)
	assert.ErrorIs(t, err, ErrCatalogNotReady)
	_, err = svc.Find(1)
	assert.ErrorIs(t, err, ErrCatalogNotReady)
	_, err = svc.Count()
	assert.ErrorIs(t, err, ErrCatalogNotReady)
}

func TestCatalogService_Count(t *testing.T) {
	svc := NewCatalogService(&staticSource{products: testCatalog()}, testCatalogConfig())
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	count, err := svc.Count()
	require.NoError(t, err)
	assert.Equal(t, len(testCatalog()), count)
}

func TestCatalogService_FailedFirstLoadLeavesEmptyCatalog(t *testing.T) {
	svc := NewCatalogService(&staticSource{err: errors.New("boom")}, testCatalogConfig())

	_, err := svc.Load(context.Background())
	require.Error(t, err)

	assert.True(t, svc.Ready())
	assert.Error(t, svc.LoadError())

	result, err := svc.Query(models.DefaultFilterState(), 1, 0)
	require.NoError(t, err)
	assert.Empty(t, result.Products)
	assert.False(t, result.HasMore)
}

func TestCatalogService_FailedReloadKeepsPreviousCatalog(t *testing.T) {
	source := &staticSource{products: testCatalog()}
	svc := NewCatalogService(source, testCatalogConfig())
	_, err := svc.Load(context.Background())
	require.NoError(t, err)

	source.err = errors.New("unreachable")
	_, err = svc.Reload(context.Background())
	require.Error(t, err)

	products, err := svc.Products()
	require.NoError(t, err)
	assert.Len(t, products, 5)
	assert.Error(t, svc.LoadError())

	source.err = nil
	_, err = svc.Reload(context.Background())
	require.NoError(t, err)
	assert.NoError(t, svc.LoadError())
}

func TestCatalogService_ConcurrentLoadsShareOneFetch(t *testing.T) {
	source := &staticSource{products: testCatalog(), gate: make(chan struct{})}
	svc := NewCatalogService(source, testCatalogConfig())

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := svc.Load(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, 5, n)
		}()
	}

	assert.Eventually(t, func() bool { return atomic.LoadInt32(&source.fetches) == 1 }, time.Second, time.Millisecond)
	close(source.gate)
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&source.fetches), int32(5))
	assert.True(t, svc.Ready())
}

func TestCatalogService_QueryPagesCumulatively(t *testing.T) {
	svc := loadedCatalogService(testCatalog())

	first, err := svc.Query(models.DefaultFilterState(), 1, 0)
	require.NoError(t, err)
	assert.Len(t, first.Products, 2)
	assert.Equal(t, 5, first.Total)
	assert.True(t, first.HasMore)

	third, err := svc.Query(models.DefaultFilterState(), 3, 0)
	require.NoError(t, err)
	assert.Len(t, third.Products, 5)
	assert.False(t, third.HasMore)
	assert.Equal(t, first.Products, third.Products[:2])
}

func TestCatalogService_QueryFilters(t *testing.T) {
	svc := loadedCatalogService(testCatalog())

	filters := models.DefaultFilterState()
	filters.Category = "phones"
	filters.SortBy = models.SortPriceLow

	result, err := svc.Query(filters, 1, 10)
	require.NoError(t, err)
	require.Len(t, result.Products, 2)
	assert.Equal(t, 2, result.Products[0].ID)
	assert.Equal(t, 1, result.Products[1].ID)
}

func TestCatalogService_Find(t *testing.T) {
	svc := loadedCatalogService(testCatalog())

	product, err := svc.Find(3)
	require.NoError(t, err)
	assert.Equal(t, "Wireless Earbuds", product.Title)

	_, err = svc.Find(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCatalogService_CategoriesAndStats(t *testing.T) {
	svc := loadedCatalogService(testCatalog())

	categories, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{"phones", "audio", "computers"}, categories)

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.Equal(t, 5, stats.TotalProducts)
	assert.Equal(t, 3, stats.Categories)
	assert.Equal(t, 1, stats.Trending)
	assert.Equal(t, 5, stats.InStock)
	assert.InDelta(t, 4.44, stats.AverageRating, 0.001)
}

func TestCatalogService_Suggestions(t *testing.T) {
	svc := loadedCatalogService(testCatalog())

	suggestions, err := svc.Suggestions("PHONE")
	require.NoError(t, err)
	assert.Len(t, suggestions, 2)

	suggestions, err = svc.Suggestions("   ")
	require.NoError(t, err)
	assert.Empty(t, suggestions)
}

func TestCatalogService_EnhancedSearch(t *testing.T) {
	svc := loadedCatalogService(testCatalog())

	result, err := svc.EnhancedSearch("bluetooth")
	require.NoError(t, err)
	assert.Equal(t, []string{"bluetooth", "wireless", "cordless"}, result.Keywords)
	require.Len(t, result.Products, 1)
	assert.Equal(t, 3, result.Products[0].ID)

	_, err = svc.EnhancedSearch("  ")
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestCatalogService_RecommendExcludesOwned(t *testing.T) {
	svc := loadedCatalogService(testCatalog())

	recs, err := svc.Recommend(models.DefaultFilterState(), map[int]bool{4: true}, map[int]bool{3: true}, 0)
	require.NoError(t, err)
	for _, p := range recs {
		assert.NotContains(t, []int{3, 4}, p.ID)
	}
	assert.NotEmpty(t, recs)
}
