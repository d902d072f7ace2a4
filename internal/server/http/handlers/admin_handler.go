package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellamart/storefront/internal/server/http/dto"
)

// AdminHandler issues admin session tokens.
type AdminHandler struct {
	facade AdminSessionFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminSessionFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// CreateSession handles POST /api/admin/session.
func (h *AdminHandler) CreateSession(c *gin.Context) {
	var req dto.AdminSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Key == "" {
		c.JSON(http.StatusBadRequest, dto.Result{Message: "key is required"})
		return
	}

	token, err := h.facade.AdminSession(req.Key)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.AdminSessionResponse{Token: token})
}
