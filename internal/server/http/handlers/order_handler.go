package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/server/http/dto"
)

// OrderHandler manages checkout and order lifecycle endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Checkout handles POST /api/checkout.
func (h *OrderHandler) Checkout(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Result{Message: "invalid checkout payload"})
		return
	}

	order, err := h.facade.Checkout(
		c.Request.Context(),
		CurrentToken(c),
		CurrentShopperKey(c),
		req.Items,
		model.ShippingAddress{
			FullName:   req.Address.FullName,
			Street:     req.Address.Street,
			City:       req.Address.City,
			PostalCode: req.Address.PostalCode,
			Country:    req.Address.Country,
			Phone:      req.Address.Phone,
		},
		req.PaymentMethod,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toOrderResponse(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.facade.Orders(c.Request.Context(), CurrentToken(c), CurrentShopperKey(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, resp)
}

// Cancel handles PUT /api/orders/:orderID/cancel.
func (h *OrderHandler) Cancel(c *gin.Context) {
	err := h.facade.CancelOrder(c.Request.Context(), CurrentToken(c), CurrentShopperKey(c), c.Param("orderID"), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true})
}

// AdminCancel handles PUT /api/admin/orders/:orderID/cancel.
func (h *OrderHandler) AdminCancel(c *gin.Context) {
	err := h.facade.CancelOrder(c.Request.Context(), CurrentToken(c), CurrentShopperKey(c), c.Param("orderID"), true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true})
}

// UpdateStatus handles PUT /api/admin/orders/:orderID/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.OrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.JSON(http.StatusBadRequest, dto.Result{Message: "status is required"})
		return
	}

	err := h.facade.TransitionOrder(c.Request.Context(), CurrentToken(c), CurrentShopperKey(c), c.Param("orderID"), model.OrderStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.Result{Success: true})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: money(it.UnitPrice),
		})
	}
	return dto.OrderResponse{
		ID:     order.ID,
		Number: order.Number,
		Status: string(order.Status),
		Items:  items,
		Address: dto.ShippingAddress{
			FullName:   order.Address.FullName,
			Street:     order.Address.Street,
			City:       order.Address.City,
			PostalCode: order.Address.PostalCode,
			Country:    order.Address.Country,
			Phone:      order.Address.Phone,
		},
		PaymentMethod: order.PaymentMethod,
		Total:         money(order.Total),
		CreatedAt:     order.CreatedAt,
	}
}
