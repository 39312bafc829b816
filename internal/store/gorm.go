// internal/store/gorm.go
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Slot is one persisted document in the SQL-backed store.
type Slot struct {
	Key       string    `gorm:"column:slot_key;primaryKey;size:191"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Slot) TableName() string {
	return "storefront_slots"
}

// GormStore keeps slots in a SQL table. Keys are prefixed with a namespace
// so several storefronts can share one database.
type GormStore struct {
	db        *gorm.DB
	namespace string
}

func NewGormStore(db *gorm.DB, namespace string) *GormStore {
	return &GormStore{db: db, namespace: namespace}
}

func (s *GormStore) Get(ctx context.Context, key string) ([]byte, error) {
	var slot Slot
	if err := s.db.WithContext(ctx).First(&slot, "slot_key = ?", s.namespace+key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return []byte(slot.Value), nil
}

func (s *GormStore) Set(ctx context.Context, key string, value []byte) error {
	slot := Slot{Key: s.namespace + key, Value: string(value)}

	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&slot).Error
	if err != nil {
		return fmt.Errorf("failed to save slot: %w", err)
	}
	return nil
}

func (s *GormStore) Delete(ctx context.Context, key string) error {
	if err := s.db.WithContext(ctx).Delete(&Slot{}, "slot_key = ?", s.namespace+key).Error; err != nil {
		return fmt.Errorf("failed to delete slot: %w", err)
	}
	return nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}
