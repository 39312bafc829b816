// internal/services/selection_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-backend/internal/metrics"
	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/selection"
	"github.com/javajoker/shopsmart-backend/internal/store"
)

var ErrEmptyCart = errors.New("cart is empty")

// OrderRecorder appends a completed checkout to the order history.
type OrderRecorder interface {
	RecordOrder(ctx context.Context, label string, total float64) (models.Order, error)
}

// SelectionService holds the shopper's cart, wishlist and compare list and
// writes each set back to its slot after every change.
type SelectionService struct {
	store  store.Store
	orders OrderRecorder

	mu       sync.RWMutex
	cart     []models.SelectionItem
	wishlist []models.SelectionItem
	compare  []models.SelectionItem
}

type CheckoutResult struct {
	Order   models.Order       `json:"order"`
	Summary models.CartSummary `json:"summary"`
}

// NewSelectionService restores the three sets from the store. Missing or
// unreadable slots start empty.
func NewSelectionService(ctx context.Context, s store.Store, orders OrderRecorder) *SelectionService {
	empty := []models.SelectionItem{}
	svc := &SelectionService{
		store:    s,
		orders:   orders,
		cart:     store.LoadJSON(ctx, s, models.SlotCart, empty),
		wishlist: store.LoadJSON(ctx, s, models.SlotWishlist, empty),
		compare:  store.LoadJSON(ctx, s, models.SlotCompareList, empty),
	}

	logrus.WithFields(logrus.Fields{
		"cart":     len(svc.cart),
		"wishlist": len(svc.wishlist),
		"compare":  len(svc.compare),
	}).Debug("Selections restored")
	return svc
}

func (s *SelectionService) Cart() []models.SelectionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.cart)
}

func (s *SelectionService) Wishlist() []models.SelectionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.wishlist)
}

func (s *SelectionService) Compare() []models.SelectionItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.compare)
}

func (s *SelectionService) CartSummary() models.CartSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selection.Summarize(s.cart)
}

func (s *SelectionService) CartIDs() map[int]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selection.IDs(s.cart)
}

func (s *SelectionService) WishlistIDs() map[int]bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return selection.IDs(s.wishlist)
}

func (s *SelectionService) Membership(productID int) models.Membership {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Membership{
		InCart:     selection.Contains(s.cart, productID),
		InWishlist: selection.Contains(s.wishlist, productID),
		InCompare:  selection.Contains(s.compare, productID),
	}
}

func (s *SelectionService) AddToCart(ctx context.Context, product models.Product) []models.SelectionItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = selection.AddToCart(s.cart, product)
	s.saveCart(ctx, "add")
	return slices.Clone(s.cart)
}

// AddToCartQuantity adds quantity units of the product in one step. The entry
// is capped at selection.MaxQuantity.
func (s *SelectionService) AddToCartQuantity(ctx context.Context, product models.Product, quantity int) []models.SelectionItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = selection.AddQuantity(s.cart, product, quantity)
	s.saveCart(ctx, "add")
	return slices.Clone(s.cart)
}

// RemoveFromCart drops the product and returns the removed entry.
func (s *SelectionService) RemoveFromCart(ctx context.Context, productID int) (models.SelectionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := selection.IndexOf(s.cart, productID)
	if i < 0 {
		return models.SelectionItem{}, selection.ErrNotInSelection
	}
	removed := s.cart[i]

	s.cart = selection.Remove(s.cart, productID)
	s.saveCart(ctx, "remove")
	return removed, nil
}

func (s *SelectionService) UpdateCartQuantity(ctx context.Context, productID, quantity int) ([]models.SelectionItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := selection.SetQuantity(s.cart, productID, quantity)
	if err != nil {
		return nil, err
	}

	s.cart = cart
	s.saveCart(ctx, "update")
	return slices.Clone(s.cart), nil
}

func (s *SelectionService) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = []models.SelectionItem{}
	s.saveCart(ctx, "clear")
}

// ToggleWishlist adds or removes the product and reports whether it was added.
func (s *SelectionService) ToggleWishlist(ctx context.Context, product models.Product) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	wishlist, added := selection.Toggle(s.wishlist, product)
	s.wishlist = wishlist

	metrics.SelectionMutations.WithLabelValues(models.SlotWishlist, toggleAction(added)).Inc()
	store.Persist(ctx, s.store, models.SlotWishlist, s.wishlist)
	return added
}

// ToggleCompare adds or removes the product. Adding to a full list fails
// with selection.ErrCompareFull and leaves the list unchanged.
func (s *SelectionService) ToggleCompare(ctx context.Context, product models.Product) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	compare, added, err := selection.ToggleCompare(s.compare, product)
	if err != nil {
		return false, err
	}
	s.compare = compare

	metrics.SelectionMutations.WithLabelValues(models.SlotCompareList, toggleAction(added)).Inc()
	store.Persist(ctx, s.store, models.SlotCompareList, s.compare)
	return added, nil
}

// Checkout records the cart total (tax included) as an order and empties the cart.
func (s *SelectionService) Checkout(ctx context.Context) (CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cart) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}

	summary := selection.Summarize(s.cart)
	label := fmt.Sprintf("Checkout: %d item(s)", summary.ItemCount)

	var order models.Order
	if s.orders != nil {
		var err error
		order, err = s.orders.RecordOrder(ctx, label, summary.Total)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("failed to record order: %w", err)
		}
	}

	s.cart = []models.SelectionItem{}
	s.saveCart(ctx, "checkout")

	logrus.WithFields(logrus.Fields{
		"order_id": order.ID,
		"items":    summary.ItemCount,
		"total":    summary.Total,
	}).Info("Checkout completed")

	return CheckoutResult{Order: order, Summary: summary}, nil
}

func (s *SelectionService) saveCart(ctx context.Context, action string) {
	metrics.SelectionMutations.WithLabelValues(models.SlotCart, action).Inc()
	store.Persist(ctx, s.store, models.SlotCart, s.cart)
}

func toggleAction(added bool) string {
	if added {
		return "add"
	}
	return "remove"
}
