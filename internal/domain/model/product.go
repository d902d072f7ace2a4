package model

import "github.com/shopspring/decimal"

// Product is a catalog entry owned by the commerce backend. The storefront
// holds a cached read-only copy refreshed by the sync worker.
type Product struct {
	ID          string
	Name        string
	Category    string
	SubCategory string
	Price       decimal.Decimal
	Stock       int
	Image       string
}
