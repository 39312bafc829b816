package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&Slot{}), "failed to migrate test database")

	return db
}

func TestGormStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	s := NewGormStore(setupTestDB(t), "test:")

	_, err := s.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(ctx, "cart", []byte(`[{"id":1}]`)))
	require.NoError(t, s.Set(ctx, "cart", []byte(`[{"id":2}]`)))

	got, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":2}]`, string(got))

	require.NoError(t, s.Delete(ctx, "cart"))
	_, err = s.Get(ctx, "cart")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStore_NamespacesAreIsolated(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	a := NewGormStore(db, "a:")
	b := NewGormStore(db, "b:")

	require.NoError(t, a.Set(ctx, "wishlist", []byte(`[]`)))

	_, err := b.Get(ctx, "wishlist")
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&Slot{}).Where("slot_key = ?", "a:wishlist").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
