// internal/models/selection.go
package models

// SelectionItem is a product snapshot held in the cart, wishlist or compare list.
// Quantity is only meaningful in the cart.
type SelectionItem struct {
	Product
	Quantity int `json:"quantity,omitempty"`
}

type CartSummary struct {
	ItemCount int     `json:"item_count"`
	Subtotal  float64 `json:"subtotal"`
	Tax       float64 `json:"tax"`
	Total     float64 `json:"total"`
}

// Membership reports which selection sets contain a product.
type Membership struct {
	InCart     bool `json:"inCart"`
	InWishlist bool `json:"inWishlist"`
	InCompare  bool `json:"inCompare"`
}
