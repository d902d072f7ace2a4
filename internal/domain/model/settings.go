package model

import "math"

// Default fallbacks applied when the backend delivers unusable values.
const (
	DefaultShippingFee           = 150
	DefaultFreeShippingThreshold = 0
	DefaultTaxRate               = 0
)

// StoreSettings is the store-wide configuration singleton. It is owned by the
// backend; the storefront keeps an optimistic local snapshot.
type StoreSettings struct {
	ShippingFee           float64  `json:"shipping_fee"`
	FreeShippingThreshold float64  `json:"free_shipping_threshold"`
	TaxRate               float64  `json:"tax_rate"`
	MaintenanceMode       bool     `json:"maintenance_mode"`
	RegistrationAllowed   bool     `json:"registration_allowed"`
	ReviewsEnabled        bool     `json:"reviews_enabled"`
	Categories            []string `json:"categories"`
}

// Sanitize returns a copy with negative or non-numeric monetary values
// coerced to safe defaults so pricing never sees NaN or negative fees.
// The tax rate is clamped into the 0..100 percentage range and the
// category set is deduplicated.
func (s StoreSettings) Sanitize() StoreSettings {
	out := s
	if !validAmount(out.ShippingFee) {
		out.ShippingFee = DefaultShippingFee
	}
	if !validAmount(out.FreeShippingThreshold) {
		out.FreeShippingThreshold = DefaultFreeShippingThreshold
	}
	if !validAmount(out.TaxRate) {
		out.TaxRate = DefaultTaxRate
	}
	if out.TaxRate > 100 {
		out.TaxRate = 100
	}
	out.Categories = UniqueCategories(out.Categories)
	return out
}

// UniqueCategories keeps the first occurrence of each category in arrival
// order. The category list is a set; duplicates carry no meaning.
func UniqueCategories(categories []string) []string {
	if len(categories) == 0 {
		return categories
	}
	seen := make(map[string]struct{}, len(categories))
	out := make([]string, 0, len(categories))
	for _, c := range categories {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}

func validAmount(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0
}
