package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus describes payment settlement state.
type TransactionStatus string

const (
	TransactionStatusPaid     TransactionStatus = "Paid"
	TransactionStatusRefunded TransactionStatus = "Refunded"
	// TransactionStatusFailed is backend-originated only; the storefront
	// never requests it.
	TransactionStatusFailed TransactionStatus = "Failed"
)

// Transaction is the payment record owned 1:1 by an order. The amount always
// equals the order total frozen at creation.
type Transaction struct {
	ID            string
	OrderID       string
	Amount        decimal.Decimal
	PaymentMethod string
	Status        TransactionStatus
	CreatedAt     time.Time
}

// RevenueSummary aggregates settled revenue at a moment in time.
type RevenueSummary struct {
	GrossRevenue decimal.Decimal
	Refunded     decimal.Decimal
	PaidCount    int
	RefundCount  int
}
