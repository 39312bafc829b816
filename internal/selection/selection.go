// internal/selection/selection.go
package selection

import (
	"errors"
	"math"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

const (
	// MaxCompare is the largest number of products that can be compared at once.
	MaxCompare = 3
	// MaxQuantity caps a cart entry added in bulk.
	MaxQuantity = 99
	TaxRate     = 0.10
)

var (
	ErrCompareFull    = errors.New("compare list is full")
	ErrNotInSelection = errors.New("product is not in the selection")
)

// IndexOf returns the position of the product with the given id, or -1.
func IndexOf(items []models.SelectionItem, id int) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

func Contains(items []models.SelectionItem, id int) bool {
	return IndexOf(items, id) >= 0
}

// IDs returns the set of product ids held in items.
func IDs(items []models.SelectionItem) map[int]bool {
	set := make(map[int]bool, len(items))
	for _, item := range items {
		set[item.ID] = true
	}
	return set
}

// Add appends item unless its product is already present.
func Add(items []models.SelectionItem, item models.SelectionItem) []models.SelectionItem {
	if Contains(items, item.ID) {
		return clone(items)
	}
	return append(clone(items), item)
}

// Remove drops the product with the given id. Missing ids are ignored.
func Remove(items []models.SelectionItem, id int) []models.SelectionItem {
	out := make([]models.SelectionItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// AddToCart increments the quantity of an existing entry or appends the
// product with quantity 1.
func AddToCart(items []models.SelectionItem, product models.Product) []models.SelectionItem {
	out := clone(items)
	if i := IndexOf(out, product.ID); i >= 0 {
		out[i].Quantity++
		return out
	}
	return append(out, models.SelectionItem{Product: product, Quantity: 1})
}

// AddQuantity adds quantity units of the product, appending it when absent.
// The resulting entry never exceeds MaxQuantity; quantities below 1 add one unit.
func AddQuantity(items []models.SelectionItem, product models.Product, quantity int) []models.SelectionItem {
	if quantity < 1 {
		quantity = 1
	}
	out := clone(items)
	i := IndexOf(out, product.ID)
	if i < 0 {
		out = append(out, models.SelectionItem{Product: product})
		i = len(out) - 1
	}
	out[i].Quantity = min(out[i].Quantity+min(quantity, MaxQuantity), MaxQuantity)
	return out
}

// SetQuantity sets the quantity of a cart entry. A quantity of zero or less
// removes the entry.
func SetQuantity(items []models.SelectionItem, id, quantity int) ([]models.SelectionItem, error) {
	i := IndexOf(items, id)
	if i < 0 {
		return items, ErrNotInSelection
	}
	if quantity <= 0 {
		return Remove(items, id), nil
	}

	out := clone(items)
	out[i].Quantity = quantity
	return out, nil
}

// Toggle removes the product when present and appends it otherwise.
func Toggle(items []models.SelectionItem, product models.Product) ([]models.SelectionItem, bool) {
	if Contains(items, product.ID) {
		return Remove(items, product.ID), false
	}
	return append(clone(items), models.SelectionItem{Product: product}), true
}

// ToggleCompare behaves like Toggle but refuses to grow the list past MaxCompare.
func ToggleCompare(items []models.SelectionItem, product models.Product) ([]models.SelectionItem, bool, error) {
	if !Contains(items, product.ID) && len(items) >= MaxCompare {
		return items, false, ErrCompareFull
	}
	out, added := Toggle(items, product)
	return out, added, nil
}

// Count sums the quantities in items.
func Count(items []models.SelectionItem) int {
	count := 0
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

func Summarize(items []models.SelectionItem) models.CartSummary {
	subtotal := 0.0
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * TaxRate

	return models.CartSummary{
		ItemCount: Count(items),
		Subtotal:  roundCents(subtotal),
		Tax:       roundCents(tax),
		Total:     roundCents(subtotal + tax),
	}
}

func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

func clone(items []models.SelectionItem) []models.SelectionItem {
	out := make([]models.SelectionItem, len(items), len(items)+1)
	copy(out, items)
	return out
}
