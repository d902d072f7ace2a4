package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/server/http/dto"
)

// SettingsHandler serves store settings and admin updates.
type SettingsHandler struct {
	facade SettingsFacade
}

// NewSettingsHandler constructs SettingsHandler.
func NewSettingsHandler(facade SettingsFacade) *SettingsHandler {
	return &SettingsHandler{facade: facade}
}

// Get handles GET /api/settings.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.facade.Settings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SettingsResponse{
		ShippingFee:           settings.ShippingFee,
		FreeShippingThreshold: settings.FreeShippingThreshold,
		TaxRate:               settings.TaxRate,
		MaintenanceMode:       settings.MaintenanceMode,
		RegistrationAllowed:   settings.RegistrationAllowed,
		ReviewsEnabled:        settings.ReviewsEnabled,
		Categories:            settings.Categories,
	})
}

// Update handles PUT /api/admin/settings.
func (h *SettingsHandler) Update(c *gin.Context) {
	var req dto.SettingsUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Result{Message: "invalid settings payload"})
		return
	}

	err := h.facade.UpdateSettings(c.Request.Context(), CurrentToken(c), model.StoreSettings{
		ShippingFee:           req.ShippingFee,
		FreeShippingThreshold: req.FreeShippingThreshold,
		TaxRate:               req.TaxRate,
		MaintenanceMode:       req.MaintenanceMode,
		RegistrationAllowed:   req.RegistrationAllowed,
		ReviewsEnabled:        req.ReviewsEnabled,
		Categories:            req.Categories,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true})
}
