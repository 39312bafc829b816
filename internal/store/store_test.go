package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/shopsmart-backend/internal/models"
)

type failingStore struct{}

var errUnavailable = errors.New("storage unavailable")

func (failingStore) Get(context.Context, string) ([]byte, error) { return nil, errUnavailable }
func (failingStore) Set(context.Context, string, []byte) error   { return errUnavailable }
func (failingStore) Delete(context.Context, string) error        { return errUnavailable }
func (failingStore) Close() error                                { return nil }

func TestLoadJSON_MissingSlotUsesDefault(t *testing.T) {
	s := NewMemoryStore()

	got := LoadJSON(context.Background(), s, models.SlotCart, []models.SelectionItem{})

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestLoadJSON_CorruptSlotUsesDefault(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	require.NoError(t, s.Set(ctx, models.SlotWishlist, []byte("{not json")))

	got := LoadJSON(ctx, s, models.SlotWishlist, []models.SelectionItem{})

	assert.Empty(t, got)
}

func TestLoadJSON_UnavailableStoreUsesDefault(t *testing.T) {
	got := LoadJSON(context.Background(), &failingStore{}, models.SlotProfile, models.Profile{Name: "fallback"})

	assert.Equal(t, "fallback", got.Name)
}

func TestPersist_FailureIsNotFatal(t *testing.T) {
	assert.NotPanics(t, func() {
		Persist(context.Background(), &failingStore{}, models.SlotCart, []int{1})
		Forget(context.Background(), &failingStore{}, models.SlotCart)
	})
}

func TestSaveJSON_RoundTripKeepsOrder(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	cart := []models.SelectionItem{
		{Product: models.Product{ID: 9, Title: "Nine", Price: 9}, Quantity: 2},
		{Product: models.Product{ID: 3, Title: "Three", Price: 3}, Quantity: 1},
		{Product: models.Product{ID: 5, Title: "Five", Price: 5}, Quantity: 4},
	}

	require.NoError(t, SaveJSON(ctx, s, models.SlotCart, cart))
	got := LoadJSON(ctx, s, models.SlotCart, []models.SelectionItem{})

	assert.Equal(t, cart, got)
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	_, err := s.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	value := []byte(`[1,2]`)
	require.NoError(t, s.Set(ctx, "k", value))
	value[0] = 'x'

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	require.NoError(t, s.Delete(ctx, "k"))
	_, err = s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, s.Close())
}
