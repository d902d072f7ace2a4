package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusPlaced          OrderStatus = "Placed"
	OrderStatusProcessing      OrderStatus = "Processing"
	OrderStatusShipped         OrderStatus = "Shipped"
	OrderStatusDelivered       OrderStatus = "Delivered"
	OrderStatusCancelled       OrderStatus = "Cancelled"
	OrderStatusReturnRequested OrderStatus = "Return Requested"
	OrderStatusReturned        OrderStatus = "Returned"
)

// validNext captures the forward lifecycle for non-admin actors. Admins are
// not bound by it.
var validNext = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:          {OrderStatusProcessing, OrderStatusCancelled},
	OrderStatusProcessing:      {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:         {OrderStatusDelivered},
	OrderStatusDelivered:       {OrderStatusReturnRequested},
	OrderStatusReturnRequested: {OrderStatusReturned},
	OrderStatusCancelled:       {},
	OrderStatusReturned:        {},
}

// KnownOrderStatus reports whether s is one of the recognized statuses.
func KnownOrderStatus(s OrderStatus) bool {
	_, ok := validNext[s]
	return ok
}

// CanTransition reports whether the lifecycle permits moving from one status
// to another.
func CanTransition(from, to OrderStatus) bool {
	for _, next := range validNext[from] {
		if next == to {
			return true
		}
	}
	return false
}

// CustomerCancellable reports whether a customer may still cancel an order in
// the given status. Only freshly placed orders qualify.
func CustomerCancellable(s OrderStatus) bool {
	return s == OrderStatusPlaced
}

// RefundEligibleOrderStatus reports whether the order status permits refunding
// the associated payment.
func RefundEligibleOrderStatus(s OrderStatus) bool {
	switch s {
	case OrderStatusCancelled, OrderStatusReturned, OrderStatusReturnRequested:
		return true
	}
	return false
}

// ShippingAddress is the delivery destination captured at checkout.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone"`
}

// OrderItem is a purchased line with its unit price frozen at checkout.
type OrderItem struct {
	ProductID string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
}

// Order is owned by the backend. The storefront keeps a cached snapshot per
// shopper and replaces it wholesale on every resync.
type Order struct {
	ID            string
	Number        string
	Items         []OrderItem
	Address       ShippingAddress
	PaymentMethod string
	Status        OrderStatus
	Total         decimal.Decimal
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
