package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/server/http/dto"
)

// CartHandler manages per-shopper cart endpoints.
type CartHandler struct {
	facade CartFacade
}

// NewCartHandler constructs CartHandler.
func NewCartHandler(facade CartFacade) *CartHandler {
	return &CartHandler{facade: facade}
}

// List handles GET /api/cart.
func (h *CartHandler) List(c *gin.Context) {
	items, err := h.facade.Cart(c.Request.Context(), CurrentShopperKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(items))
}

// Add handles POST /api/cart/items.
func (h *CartHandler) Add(c *gin.Context) {
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ProductID == "" {
		c.JSON(http.StatusBadRequest, dto.Result{Message: "product_id is required"})
		return
	}

	items, err := h.facade.AddToCart(c.Request.Context(), CurrentShopperKey(c), req.ProductID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(items))
}

// Decrease handles POST /api/cart/items/:productID/decrease.
func (h *CartHandler) Decrease(c *gin.Context) {
	items, err := h.facade.DecreaseCartItem(c.Request.Context(), CurrentShopperKey(c), c.Param("productID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(items))
}

// Remove handles DELETE /api/cart/items/:productID.
func (h *CartHandler) Remove(c *gin.Context) {
	items, err := h.facade.RemoveCartItem(c.Request.Context(), CurrentShopperKey(c), c.Param("productID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toCartResponse(items))
}

// Quote handles GET /api/cart/quote.
func (h *CartHandler) Quote(c *gin.Context) {
	quote, err := h.facade.Quote(c.Request.Context(), CurrentShopperKey(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.QuoteResponse{
		Subtotal: money(quote.Subtotal),
		Shipping: money(quote.Shipping),
		Tax:      money(quote.Tax),
		Total:    money(quote.Total),
	})
}

func toCartResponse(items []model.CartLineItem) []dto.CartItemResponse {
	resp := make([]dto.CartItemResponse, 0, len(items))
	for _, it := range items {
		resp = append(resp, dto.CartItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Price:     money(it.Price),
			Image:     it.Image,
			Quantity:  it.Quantity,
		})
	}
	return resp
}
