package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/selection"
	"github.com/javajoker/shopsmart-backend/internal/store"
)

type SelectionServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *store.MemoryStore
	profiles *ProfileService
	service  *SelectionService
	products []models.Product
}

func (s *SelectionServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = store.NewMemoryStore()
	s.profiles = NewProfileService(s.ctx, s.store)
	s.service = NewSelectionService(s.ctx, s.store, s.profiles)
	s.products = testCatalog()
}

func (s *SelectionServiceTestSuite) TestAddToCartIncrementsQuantity() {
	s.service.AddToCart(s.ctx, s.products[0])
	cart := s.service.AddToCart(s.ctx, s.products[0])

	s.Require().Len(cart, 1)
	s.Equal(2, cart[0].Quantity)
	s.True(s.service.Membership(s.products[0].ID).InCart)
}

func (s *SelectionServiceTestSuite) TestAddToCartQuantity() {
	cart := s.service.AddToCartQuantity(s.ctx, s.products[0], 3)
	s.Require().Len(cart, 1)
	s.Equal(3, cart[0].Quantity)

	cart = s.service.AddToCartQuantity(s.ctx, s.products[0], 98)
	s.Equal(selection.MaxQuantity, cart[0].Quantity)

	restored := NewSelectionService(s.ctx, s.store, s.profiles)
	s.Equal(selection.MaxQuantity, restored.Cart()[0].Quantity)
}

func (s *SelectionServiceTestSuite) TestMutationsArePersisted() {
	s.service.AddToCart(s.ctx, s.products[0])
	s.service.ToggleWishlist(s.ctx, s.products[1])
	_, err := s.service.ToggleCompare(s.ctx, s.products[2])
	s.Require().NoError(err)

	restored := NewSelectionService(s.ctx, s.store, s.profiles)
	s.Equal(s.service.Cart(), restored.Cart())
	s.Equal([]int{2}, itemIDs(restored.Wishlist()))
	s.Equal([]int{3}, itemIDs(restored.Compare()))
}

func (s *SelectionServiceTestSuite) TestRemoveFromCart() {
	s.service.AddToCart(s.ctx, s.products[0])

	removed, err := s.service.RemoveFromCart(s.ctx, s.products[0].ID)
	s.Require().NoError(err)
	s.Equal("Smartphone X", removed.Title)
	s.Empty(s.service.Cart())

	_, err = s.service.RemoveFromCart(s.ctx, s.products[0].ID)
	s.ErrorIs(err, selection.ErrNotInSelection)
}

func (s *SelectionServiceTestSuite) TestUpdateCartQuantity() {
	s.service.AddToCart(s.ctx, s.products[0])

	cart, err := s.service.UpdateCartQuantity(s.ctx, s.products[0].ID, 4)
	s.Require().NoError(err)
	s.Equal(4, cart[0].Quantity)

	cart, err = s.service.UpdateCartQuantity(s.ctx, s.products[0].ID, 0)
	s.Require().NoError(err)
	s.Empty(cart)

	_, err = s.service.UpdateCartQuantity(s.ctx, 99, 1)
	s.ErrorIs(err, selection.ErrNotInSelection)
}

func (s *SelectionServiceTestSuite) TestToggleWishlist() {
	s.True(s.service.ToggleWishlist(s.ctx, s.products[0]))
	s.True(s.service.Membership(s.products[0].ID).InWishlist)
	s.False(s.service.ToggleWishlist(s.ctx, s.products[0]))
	s.Empty(s.service.Wishlist())
}

func (s *SelectionServiceTestSuite) TestCompareHoldsAtMostThree() {
	for _, p := range s.products[:3] {
		added, err := s.service.ToggleCompare(s.ctx, p)
		s.Require().NoError(err)
		s.True(added)
	}

	_, err := s.service.ToggleCompare(s.ctx, s.products[3])
	s.ErrorIs(err, selection.ErrCompareFull)
	s.Equal([]int{1, 2, 3}, itemIDs(s.service.Compare()))

	added, err := s.service.ToggleCompare(s.ctx, s.products[1])
	s.Require().NoError(err)
	s.False(added)
	s.Equal([]int{1, 3}, itemIDs(s.service.Compare()))
}

func (s *SelectionServiceTestSuite) TestCheckout() {
	s.service.AddToCart(s.ctx, testProduct(10, "Mouse", "accessories", 25, 4))
	s.service.AddToCart(s.ctx, testProduct(10, "Mouse", "accessories", 25, 4))
	s.service.AddToCart(s.ctx, testProduct(11, "Pad", "accessories", 50, 4))

	result, err := s.service.Checkout(s.ctx)
	s.Require().NoError(err)

	s.Equal(100.0, result.Summary.Subtotal)
	s.Equal(10.0, result.Summary.Tax)
	s.Equal(110.0, result.Summary.Total)
	s.Empty(s.service.Cart())

	orders := s.profiles.ListOrders()
	s.Require().Len(orders, 1)
	s.Equal(result.Order.ID, orders[0].ID)
	s.Equal(110.0, orders[0].Total)
}

func (s *SelectionServiceTestSuite) TestCheckoutEmptyCart() {
	_, err := s.service.Checkout(s.ctx)
	s.ErrorIs(err, ErrEmptyCart)
	s.Empty(s.profiles.ListOrders())
}

func (s *SelectionServiceTestSuite) TestClearCart() {
	s.service.AddToCart(s.ctx, s.products[0])
	s.service.ClearCart(s.ctx)

	s.Empty(s.service.Cart())
	s.Equal(models.CartSummary{}, s.service.CartSummary())
}

func TestSelectionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SelectionServiceTestSuite))
}

type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("disk unavailable")
}

func (brokenStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk unavailable")
}

func (brokenStore) Delete(ctx context.Context, key string) error {
	return errors.New("disk unavailable")
}

func (brokenStore) Close() error {
	return nil
}

func TestSelectionService_StoreFailuresAreNotFatal(t *testing.T) {
	ctx := context.Background()
	svc := NewSelectionService(ctx, brokenStore{}, nil)

	assert.Empty(t, svc.Cart())
	cart := svc.AddToCart(ctx, testCatalog()[0])
	require.Len(t, cart, 1)
	assert.True(t, svc.ToggleWishlist(ctx, testCatalog()[1]))
}

func TestSelectionService_CorruptSlotStartsEmpty(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemoryStore()
	require.NoError(t, s.Set(ctx, models.SlotCart, []byte("{not json")))

	svc := NewSelectionService(ctx, s, nil)
	assert.Empty(t, svc.Cart())
}

func itemIDs(items []models.SelectionItem) []int {
	ids := make([]int, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	return ids
}
