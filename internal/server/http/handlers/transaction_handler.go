package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vellamart/storefront/internal/domain/model"
	"github.com/vellamart/storefront/internal/server/http/dto"
)

// TransactionHandler manages admin payment endpoints.
type TransactionHandler struct {
	facade TransactionFacade
}

// NewTransactionHandler constructs TransactionHandler.
func NewTransactionHandler(facade TransactionFacade) *TransactionHandler {
	return &TransactionHandler{facade: facade}
}

// List handles GET /api/admin/transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	transactions, err := h.facade.Transactions(c.Request.Context(), CurrentToken(c))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, toTransactionResponse(tx))
	}
	c.JSON(http.StatusOK, resp)
}

// Refund handles PUT /api/admin/transactions/:transactionID/refund.
func (h *TransactionHandler) Refund(c *gin.Context) {
	refunded, err := h.facade.RefundTransaction(c.Request.Context(), CurrentToken(c), c.Param("transactionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTransactionResponse(*refunded))
}

// Revenue handles GET /api/admin/revenue.
func (h *TransactionHandler) Revenue(c *gin.Context) {
	summary, err := h.facade.Revenue(c.Request.Context(), CurrentToken(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RevenueResponse{
		GrossRevenue: money(summary.GrossRevenue),
		Refunded:     money(summary.Refunded),
		PaidCount:    summary.PaidCount,
		RefundCount:  summary.RefundCount,
	})
}

func toTransactionResponse(tx model.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:            tx.ID,
		OrderID:       tx.OrderID,
		Amount:        money(tx.Amount),
		PaymentMethod: tx.PaymentMethod,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
	}
}
