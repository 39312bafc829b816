// internal/handlers/selection.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/javajoker/shopsmart-backend/internal/i18n"
	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/selection"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type SelectionHandler struct {
	catalogService   *services.CatalogService
	selectionService *services.SelectionService
}

func NewSelectionHandler(catalogService *services.CatalogService, selectionService *services.SelectionService) *SelectionHandler {
	return &SelectionHandler{
		catalogService:   catalogService,
		selectionService: selectionService,
	}
}

type AddCartItemRequest struct {
	ProductID int `json:"product_id" validate:"min=0"`
	Quantity  int `json:"quantity" validate:"omitempty,min=1,max=99"`
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required,min=0,max=99"`
}

type CartView struct {
	Items   []models.SelectionItem `json:"items"`
	Summary models.CartSummary     `json:"summary"`
}

// GET /v1/cart
func (h *SelectionHandler) GetCart(c *gin.Context) {
	utils.SuccessResponse(c, h.cartView())
}

// POST /v1/cart/items
func (h *SelectionHandler) AddCartItem(c *gin.Context) {
	var req AddCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := h.catalogService.Find(req.ProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.selectionService.AddToCartQuantity(c.Request.Context(), product, req.Quantity)

	utils.NotifyResponse(c, http.StatusCreated, h.cartView(), models.NotificationSuccess, i18n.KeyCartAdded, product.Title)
}

// PUT /v1/cart/items/:id
func (h *SelectionHandler) UpdateCartItem(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	var req UpdateCartItemRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := h.selectionService.UpdateCartQuantity(c.Request.Context(), id, *req.Quantity); err != nil {
		h.respondSelectionError(c, err)
		return
	}

	utils.NotifyResponse(c, http.StatusOK, h.cartView(), models.NotificationInfo, i18n.KeyCartUpdated)
}

// DELETE /v1/cart/items/:id
func (h *SelectionHandler) RemoveCartItem(c *gin.Context) {
	id, ok := productIDParam(c)
	if !ok {
		return
	}

	removed, err := h.selectionService.RemoveFromCart(c.Request.Context(), id)
	if err != nil {
		h.respondSelectionError(c, err)
		return
	}

	utils.NotifyResponse(c, http.StatusOK, h.cartView(), models.NotificationInfo, i18n.KeyCartRemoved, removed.Title)
}

// DELETE /v1/cart
func (h *SelectionHandler) ClearCart(c *gin.Context) {
	h.selectionService.ClearCart(c.Request.Context())
	utils.NotifyResponse(c, http.StatusOK, h.cartView(), models.NotificationInfo, i18n.KeyCartCleared)
}

// POST /v1/cart/checkout
func (h *SelectionHandler) Checkout(c *gin.Context) {
	result, err := h.selectionService.Checkout(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.WarningResponse(c, http.StatusBadRequest, "CART_EMPTY", i18n.KeyCartEmpty)
			return
		}
		respondServiceError(c, err)
		return
	}

	utils.NotifyResponse(c, http.StatusOK, result, models.NotificationSuccess, i18n.KeyCheckoutOrderPlaced, result.Summary.Total)
}

// GET /v1/wishlist
func (h *SelectionHandler) GetWishlist(c *gin.Context) {
	utils.SuccessResponse(c, h.selectionService.Wishlist())
}

// POST /v1/wishlist/:id/toggle
func (h *SelectionHandler) ToggleWishlist(c *gin.Context) {
	product, ok := h.productFromParam(c)
	if !ok {
		return
	}

	key, notification := i18n.KeyWishlistRemoved, models.NotificationInfo
	if h.selectionService.ToggleWishlist(c.Request.Context(), product) {
		key, notification = i18n.KeyWishlistAdded, models.NotificationSuccess
	}

	utils.NotifyResponse(c, http.StatusOK, h.selectionService.Wishlist(), notification, key, product.Title)
}

// GET /v1/compare
func (h *SelectionHandler) GetCompare(c *gin.Context) {
	utils.SuccessResponse(c, h.selectionService.Compare())
}

// POST /v1/compare/:id/toggle
func (h *SelectionHandler) ToggleCompare(c *gin.Context) {
	product, ok := h.productFromParam(c)
	if !ok {
		return
	}

	added, err := h.selectionService.ToggleCompare(c.Request.Context(), product)
	if err != nil {
		h.respondSelectionError(c, err)
		return
	}

	key, notification := i18n.KeyCompareRemoved, models.NotificationInfo
	if added {
		key, notification = i18n.KeyCompareAdded, models.NotificationSuccess
	}
	utils.NotifyResponse(c, http.StatusOK, h.selectionService.Compare(), notification, key, product.Title)
}

func (h *SelectionHandler) productFromParam(c *gin.Context) (models.Product, bool) {
	id, ok := productIDParam(c)
	if !ok {
		return models.Product{}, false
	}

	product, err := h.catalogService.Find(id)
	if err != nil {
		respondServiceError(c, err)
		return models.Product{}, false
	}
	return product, true
}

func (h *SelectionHandler) cartView() CartView {
	return CartView{
		Items:   h.selectionService.Cart(),
		Summary: h.selectionService.CartSummary(),
	}
}

func (h *SelectionHandler) respondSelectionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, selection.ErrNotInSelection):
		utils.NotFoundResponse(c, "cart_item")
	case errors.Is(err, selection.ErrCompareFull):
		utils.WarningResponse(c, http.StatusConflict, "COMPARE_FULL", i18n.KeyCompareFull)
	default:
		respondServiceError(c, err)
	}
}

// bindJSON decodes and validates a request body, writing the error response on failure.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		utils.BadRequestResponse(c, "", err.Error())
		return false
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return false
	}
	return true
}
