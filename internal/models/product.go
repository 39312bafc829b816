// internal/models/product.go
package models

import "math"

// Product is a catalog record. Field names follow the catalog interchange format.
type Product struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	Category      string    `json:"category"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"originalPrice"`
	Rating        float64   `json:"rating"`
	ReviewCount   int       `json:"reviewCount"`
	Image         string    `json:"image,omitempty"`
	IsNew         bool      `json:"isNew"`
	IsTrending    bool      `json:"isTrending"`
	IsOnSale      bool      `json:"isOnSale"`
	InStock       bool      `json:"inStock"`
	CreatedAt     Timestamp `json:"createdAt"`
}

func (p Product) DiscountPercent() int {
	if p.OriginalPrice <= 0 || p.OriginalPrice <= p.Price {
		return 0
	}
	return int(math.Round((p.OriginalPrice - p.Price) / p.OriginalPrice * 100))
}
