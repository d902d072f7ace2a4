package model

import "github.com/shopspring/decimal"

// CartLineItem is a selected-for-purchase line. Display fields are
// snapshotted from the product at add time and never live-priced.
type CartLineItem struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image"`
	Quantity  int             `json:"quantity"`
}
