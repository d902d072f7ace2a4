package dto

import "time"

// TransactionResponse describes a payment record.
type TransactionResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	Amount        string    `json:"amount"`
	PaymentMethod string    `json:"payment_method,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// RevenueResponse summarizes settled revenue at the moment of the call.
type RevenueResponse struct {
	GrossRevenue string `json:"gross_revenue"`
	Refunded     string `json:"refunded"`
	PaidCount    int    `json:"paid_count"`
	RefundCount  int    `json:"refund_count"`
}
