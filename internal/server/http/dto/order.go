package dto

import "time"

// ShippingAddress is the delivery destination submitted at checkout.
type ShippingAddress struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code,omitempty"`
	Country    string `json:"country,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

// CheckoutRequest describes the checkout payload. An empty item list means
// the whole cart is purchased.
type CheckoutRequest struct {
	Items         []string        `json:"items,omitempty"`
	Address       ShippingAddress `json:"address"`
	PaymentMethod string          `json:"payment_method"`
}

// OrderStatusRequest carries the target status for an admin transition.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse is a purchased line inside an order.
type OrderItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unit_price"`
}

// OrderResponse describes an order snapshot.
type OrderResponse struct {
	ID            string              `json:"id"`
	Number        string              `json:"number,omitempty"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items"`
	Address       ShippingAddress     `json:"address"`
	PaymentMethod string              `json:"payment_method,omitempty"`
	Total         string              `json:"total"`
	CreatedAt     time.Time           `json:"created_at"`
}
