// internal/handlers/profile.go
package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/javajoker/shopsmart-backend/internal/i18n"
	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/services"
	"github.com/javajoker/shopsmart-backend/internal/utils"
)

type ProfileHandler struct {
	profileService *services.ProfileService
}

func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// ProfileView never exposes the password hash.
type ProfileView struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	HasPassword bool   `json:"has_password"`
}

func newProfileView(p models.Profile) ProfileView {
	return ProfileView{
		Name:        p.Name,
		Username:    p.Username,
		HasPassword: p.PasswordHash != "",
	}
}

// GET /v1/profile
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	utils.SuccessResponse(c, newProfileView(h.profileService.GetProfile()))
}

// PUT /v1/profile
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	var req services.SaveProfileRequest
	if !bindJSON(c, &req) {
		return
	}

	profile, err := h.profileService.SaveProfile(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.NotifyResponse(c, http.StatusOK, newProfileView(profile), models.NotificationSuccess, i18n.KeyProfileSaved)
}

// DELETE /v1/profile
func (h *ProfileHandler) Logout(c *gin.Context) {
	h.profileService.Logout(c.Request.Context())
	utils.NotifyResponse(c, http.StatusOK, nil, models.NotificationInfo, i18n.KeyProfileLoggedOut)
}

// GET /v1/orders
func (h *ProfileHandler) ListOrders(c *gin.Context) {
	utils.SuccessResponse(c, h.profileService.ListOrders())
}

// POST /v1/orders
func (h *ProfileHandler) CreateOrder(c *gin.Context) {
	var req services.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.BadRequestResponse(c, "", err.Error())
		return
	}
	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	order, err := h.profileService.RecordOrder(c.Request.Context(), req.Label, 0)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.NotifyResponse(c, http.StatusCreated, order, models.NotificationSuccess, i18n.KeyOrderAdded)
}

// PUT /v1/orders/:id
func (h *ProfileHandler) UpdateOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	var req services.OrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.profileService.UpdateOrder(c.Request.Context(), id, req.Label)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.NotifyResponse(c, http.StatusOK, order, models.NotificationSuccess, i18n.KeyOrderUpdated)
}

// DELETE /v1/orders/:id
func (h *ProfileHandler) DeleteOrder(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		return
	}

	if err := h.profileService.DeleteOrder(c.Request.Context(), id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.NotifyResponse(c, http.StatusOK, nil, models.NotificationInfo, i18n.KeyOrderDeleted)
}

func orderIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return uuid.Nil, false
	}
	return id, true
}
