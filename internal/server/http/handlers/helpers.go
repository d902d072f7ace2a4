package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vellamart/storefront/internal/adapter/backend"
	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/server/http/dto"
	"github.com/vellamart/storefront/internal/server/http/middleware"
)

// CurrentToken extracts the backend bearer token from context.
func CurrentToken(c *gin.Context) string {
	val, ok := c.Get(middleware.BearerTokenContextKey)
	if !ok {
		return ""
	}
	token, _ := val.(string)
	return token
}

// CurrentShopperKey extracts the derived cart owner key from context.
func CurrentShopperKey(c *gin.Context) string {
	val, ok := c.Get(middleware.ShopperKeyContextKey)
	if !ok {
		return ""
	}
	key, _ := val.(string)
	return key
}

// money renders an amount for display, rounded to two decimals only here.
func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// respondError maps domain and backend failures to HTTP statuses with the
// generic error envelope.
func respondError(c *gin.Context, err error) {
	var eligibility domainErrors.EligibilityError
	var backendErr *backend.Error

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Result{Message: "not found"})
	case errors.Is(err, domainErrors.ErrEmptyCart):
		c.JSON(http.StatusUnprocessableEntity, dto.Result{Message: "cart is empty"})
	case errors.Is(err, domainErrors.ErrMissingAddress):
		c.JSON(http.StatusUnprocessableEntity, dto.Result{Message: "shipping address is incomplete"})
	case errors.Is(err, domainErrors.ErrInvalidStatus):
		c.JSON(http.StatusUnprocessableEntity, dto.Result{Message: "unknown order status"})
	case errors.Is(err, domainErrors.ErrStatusNotAllowed):
		c.JSON(http.StatusConflict, dto.Result{Message: "status transition not allowed"})
	case errors.Is(err, domainErrors.ErrNotCancellable):
		c.JSON(http.StatusConflict, dto.Result{Message: "order can no longer be cancelled"})
	case errors.Is(err, domainErrors.ErrInvalidAdminKey):
		c.JSON(http.StatusUnauthorized, dto.Result{Message: "invalid admin key"})
	case errors.Is(err, domainErrors.ErrMaintenanceActive):
		c.JSON(http.StatusServiceUnavailable, dto.Result{Message: "store is in maintenance mode"})
	case errors.As(err, &eligibility):
		c.JSON(http.StatusUnprocessableEntity, dto.Result{Message: eligibility.Reason})
	case errors.Is(err, backend.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Result{Message: "backend rejected credentials"})
	case errors.As(err, &backendErr):
		status := backendErr.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, dto.Result{Message: backendErr.Message})
	default:
		c.JSON(http.StatusInternalServerError, dto.Result{Message: "internal error"})
	}
}
