package dto

// AddCartItemRequest selects the product to add to the cart.
type AddCartItemRequest struct {
	ProductID string `json:"product_id"`
}

// CartItemResponse describes one cart line with its add-time snapshot.
type CartItemResponse struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     string `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}

// QuoteResponse is the priced cart summary. Amounts carry full internal
// precision rounded to two decimals only here, at the display boundary.
type QuoteResponse struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}
