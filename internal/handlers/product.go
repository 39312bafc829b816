// internal/handlers/product.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-backend/internal/i18n"
	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

const MaxRecommendLimit = 50

type ProductHandler struct {
	catalogService   *services.CatalogService
	selectionService *services.SelectionService
}

func NewProductHandler(catalogService *services.CatalogService, selectionService *services.SelectionService) *ProductHandler {
	return &ProductHandler{
		catalogService:   catalogService,
		selectionService: selectionService,
	}
}

// ProductQueryParams is the filter state as it arrives on the query string.
type ProductQueryParams struct {
	Search    string   `form:"search"`
	Category  string   `form:"category"`
	MinPrice  *float64 `form:"min_price"`
	MaxPrice  *float64 `form:"max_price"`
	MinRating float64  `form:"min_rating"`
	Sort      string   `form:"sort"`
	Page      int      `form:"page"`
	Limit     int      `form:"limit" validate:"omitempty,min=1,max=50"`
}

func (p ProductQueryParams) FilterState() models.FilterState {
	filters := models.DefaultFilterState()
	filters.SearchQuery = strings.ToLower(strings.TrimSpace(p.Search))
	filters.Category = p.Category
	filters.MinRating = p.MinRating
	if p.MinPrice != nil {
		filters.MinPrice = *p.MinPrice
	}
	if p.MaxPrice != nil {
		filters.MaxPrice = *p.MaxPrice
	}
	if p.Sort != "" {
		filters.SortBy = models.SortBy(p.Sort)
	}
	return filters
}

// ProductView is a product as the storefront renders it.
type ProductView struct {
	models.Product
	models.Membership
	DiscountPercent int `json:"discountPercent"`
}

// GET /v1/products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	filters, params, ok := h.bindFilters(c)
	if !ok {
		return
	}

	result, err := h.catalogService.Query(filters, params.Page, 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	pagination := utils.CreatePaginationResult(h.views(result.Products), result.Total, result.HasMore, utils.PaginationParams{
		Page:  result.Page,
		Limit: result.PageSize,
	})
	utils.PaginatedResponse(c, pagination)
}

// GET /v1/products/suggestions
func (h *ProductHandler) GetSuggestions(c *gin.Context) {
	suggestions, err := h.catalogService.Suggestions(c.Query("q"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, h.views(suggestions))
}

// GET /v1/products/search/enhanced
func (h *ProductHandler) EnhancedSearch(c *gin.Context) {
	result, err := h.catalogService.EnhancedSearch(c.Query("q"))
	if err != nil {
		if errors.Is(err, services.ErrEmptyQuery) {
			utils.WarningResponse(c, http.StatusBadRequest, "EMPTY_QUERY", i18n.KeySearchEmptyQuery)
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.NotifyResponse(c, http.StatusOK, gin.H{
		"query":    result.Query,
		"keywords": result.Keywords,
		"products": h.views(result.Products),
	}, models.NotificationInfo, i18n.KeySearchEnhanced, len(result.Products))
}

// GET /v1/products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	product, err := h.catalogService.Find(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, h.view(product))
}

// GET /v1/recommendations
func (h *ProductHandler) GetRecommendations(c *gin.Context) {
	filters, params, ok := h.bindFilters(c)
	if !ok {
		return
	}

	recommendations, err := h.catalogService.Recommend(
		filters,
		h.selectionService.CartIDs(),
		h.selectionService.WishlistIDs(),
		params.Limit,
	)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, h.views(recommendations))
}

// GET /v1/categories
func (h *ProductHandler) GetCategories(c *gin.Context) {
	categories, err := h.catalogService.Categories()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, categories)
}

// GET /v1/stats
func (h *ProductHandler) GetStats(c *gin.Context) {
	stats, err := h.catalogService.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, stats)
}

// POST /v1/catalog/reload
func (h *ProductHandler) ReloadCatalog(c *gin.Context) {
	count, err := h.catalogService.Reload(c.Request.Context())
	if err != nil {
		lang := utils.GetLangFromContext(c)
		utils.ErrorResponse(c, http.StatusBadGateway, "CATALOG_LOAD_FAILED", i18n.T(lang, i18n.KeyCatalogLoadFailed), err.Error())
		return
	}

	utils.NotifyResponse(c, http.StatusOK, gin.H{"count": count}, models.NotificationSuccess, i18n.KeyCatalogReloaded, count)
}

func (h *ProductHandler) bindFilters(c *gin.Context) (models.FilterState, ProductQueryParams, bool) {
	var params ProductQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return models.FilterState{}, params, false
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&params)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return models.FilterState{}, params, false
	}

	filters := params.FilterState()
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&filters)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return models.FilterState{}, params, false
	}
	return filters, params, true
}

func (h *ProductHandler) view(product models.Product) ProductView {
	return ProductView{
		Product:         product,
		Membership:      h.selectionService.Membership(product.ID),
		DiscountPercent: product.DiscountPercent(),
	}
}

func (h *ProductHandler) views(products []models.Product) []ProductView {
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = h.view(p)
	}
	return views
}

func productIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return 0, false
	}
	return id, true
}

// respondServiceError maps service sentinel errors onto the response envelope.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCatalogNotReady):
		utils.ServiceUnavailableResponse(c)
	case errors.Is(err, services.ErrProductNotFound):
		utils.NotFoundResponse(c, "product")
	case errors.Is(err, services.ErrOrderNotFound):
		utils.NotFoundResponse(c, "order")
	default:
		c.Error(err)
		utils.InternalErrorResponse(c, "")
	}
}
