package dto

// ProductResponse describes a catalog entry with live stock.
type ProductResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	SubCategory string `json:"sub_category,omitempty"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	Image       string `json:"image,omitempty"`
}
