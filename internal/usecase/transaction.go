package usecase

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/vellamart/storefront/internal/adapter/backend"
	domainErrors "github.com/vellamart/storefront/internal/domain/errors"
	"github.com/vellamart/storefront/internal/domain/model"
)

// TransactionUseCase owns payment transaction state and refund eligibility.
// Eligibility joins two aggregates that change independently, so it is
// always recomputed from freshly fetched records, never cached.
type TransactionUseCase struct {
	client backend.Client
}

// NewTransactionUseCase constructs TransactionUseCase.
func NewTransactionUseCase(client backend.Client) *TransactionUseCase {
	return &TransactionUseCase{client: client}
}

// List returns the current transactions.
func (u *TransactionUseCase) List(ctx context.Context, token string) ([]model.Transaction, error) {
	return u.client.FetchTransactions(ctx, token)
}

// RefundEligibility is the pure predicate over the transaction and its
// owning order. The reason is selected by checking transaction status first,
// then order presence, then order status.
func RefundEligibility(tx model.Transaction, order *model.Order) (bool, string) {
	if tx.Status != model.TransactionStatusPaid {
		return false, domainErrors.NotPaidReason
	}
	if order == nil {
		return false, domainErrors.OrderStatusReason("unknown")
	}
	if !model.RefundEligibleOrderStatus(order.Status) {
		return false, domainErrors.OrderStatusReason(string(order.Status))
	}
	return true, ""
}

// Refund issues a refund for an eligible transaction. Both records are
// re-fetched before the eligibility check; an ineligible refund never
// reaches the network. On backend failure local state stays untouched.
func (u *TransactionUseCase) Refund(ctx context.Context, token, transactionID string) (*model.Transaction, error) {
	transactions, err := u.client.FetchTransactions(ctx, token)
	if err != nil {
		return nil, err
	}

	var tx *model.Transaction
	for i := range transactions {
		if transactions[i].ID == transactionID {
			tx = &transactions[i]
			break
		}
	}
	if tx == nil {
		return nil, domainErrors.ErrNotFound
	}

	orders, err := u.client.FetchOrders(ctx, token)
	if err != nil {
		return nil, err
	}
	var owning *model.Order
	for i := range orders {
		if orders[i].ID == tx.OrderID {
			owning = &orders[i]
			break
		}
	}

	if ok, reason := RefundEligibility(*tx, owning); !ok {
		return nil, domainErrors.EligibilityError{Reason: reason}
	}

	refunded, err := u.client.RefundTransaction(ctx, token, transactionID)
	if err != nil {
		return nil, err
	}
	return refunded, nil
}

// Revenue computes the live revenue summary from current transactions.
// Refunded transactions are excluded and reclassification is live: the sums
// reflect the statuses at the moment of the call.
func (u *TransactionUseCase) Revenue(ctx context.Context, token string) (*model.RevenueSummary, error) {
	transactions, err := u.client.FetchTransactions(ctx, token)
	if err != nil {
		return nil, err
	}

	summary := &model.RevenueSummary{GrossRevenue: decimal.Zero, Refunded: decimal.Zero}
	for _, tx := range transactions {
		switch tx.Status {
		case model.TransactionStatusPaid:
			summary.GrossRevenue = summary.GrossRevenue.Add(tx.Amount)
			summary.PaidCount++
		case model.TransactionStatusRefunded:
			summary.Refunded = summary.Refunded.Add(tx.Amount)
			summary.RefundCount++
		}
	}
	return summary, nil
}
