// Package pricing derives order totals from cart lines and store settings.
// It is pure: no state, no network, identical inputs always produce
// identical outputs.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/vellamart/storefront/internal/domain/model"
)

var hundred = decimal.NewFromInt(100)

// Line is a (unit price, quantity) pair to be priced.
type Line struct {
	UnitPrice decimal.Decimal
	Quantity  int
}

// Quote is the full-precision pricing breakdown. Rounding to two decimal
// places happens only when a quote is rendered, so cart and checkout views
// derived from the same inputs agree to the cent.
type Quote struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// Compute prices the given lines against the settings snapshot. Settings are
// sanitized first, so malformed values degrade to defaults instead of
// propagating through the totals.
func Compute(lines []Line, settings model.StoreSettings) Quote {
	settings = settings.Sanitize()

	subtotal := decimal.Zero
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		subtotal = subtotal.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	shipping := decimal.Zero
	if len(lines) > 0 {
		threshold := decimal.NewFromFloat(settings.FreeShippingThreshold)
		if subtotal.LessThan(threshold) {
			shipping = decimal.NewFromFloat(settings.ShippingFee)
		}
	}

	tax := subtotal.Mul(decimal.NewFromFloat(settings.TaxRate)).Div(hundred)

	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// FromCart converts cart lines into pricing input.
func FromCart(items []model.CartLineItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{UnitPrice: it.Price, Quantity: it.Quantity})
	}
	return lines
}

// FromOrder converts frozen order items into pricing input.
func FromOrder(items []model.OrderItem) []Line {
	lines := make([]Line, 0, len(items))
	for _, it := range items {
		lines = append(lines, Line{UnitPrice: it.UnitPrice, Quantity: it.Quantity})
	}
	return lines
}
