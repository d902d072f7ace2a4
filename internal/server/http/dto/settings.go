package dto

// SettingsResponse exposes the store-wide configuration snapshot.
type SettingsResponse struct {
	ShippingFee           float64  `json:"shipping_fee"`
	FreeShippingThreshold float64  `json:"free_shipping_threshold"`
	TaxRate               float64  `json:"tax_rate"`
	MaintenanceMode       bool     `json:"maintenance_mode"`
	RegistrationAllowed   bool     `json:"registration_allowed"`
	ReviewsEnabled        bool     `json:"reviews_enabled"`
	Categories            []string `json:"categories"`
}

// SettingsUpdateRequest carries an admin settings change.
type SettingsUpdateRequest struct {
	ShippingFee           float64  `json:"shipping_fee"`
	FreeShippingThreshold float64  `json:"free_shipping_threshold"`
	TaxRate               float64  `json:"tax_rate"`
	MaintenanceMode       bool     `json:"maintenance_mode"`
	RegistrationAllowed   bool     `json:"registration_allowed"`
	ReviewsEnabled        bool     `json:"reviews_enabled"`
	Categories            []string `json:"categories"`
}

// AdminSessionRequest carries the admin key for session issuance.
type AdminSessionRequest struct {
	Key string `json:"key"`
}

// AdminSessionResponse returns the issued admin session token.
type AdminSessionResponse struct {
	Token string `json:"token"`
}

// Result is the generic error envelope.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
