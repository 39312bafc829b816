// internal/models/common.go
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Timestamp accepts the date layouts found in exported catalogs and
// always serializes as RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t}
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", raw)
}

// Enums
type SortBy string

const (
	SortRelevance  SortBy = "relevance"
	SortPriceLow   SortBy = "price-low"
	SortPriceHigh  SortBy = "price-high"
	SortRating     SortBy = "rating"
	SortNewest     SortBy = "newest"
	SortPopularity SortBy = "popularity"
)

type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationError   NotificationType = "error"
	NotificationWarning NotificationType = "warning"
	NotificationInfo    NotificationType = "info"
)

// Notification is the user-facing message attached to a mutating response.
type Notification struct {
	Type    NotificationType `json:"type"`
	Message string           `json:"message"`
}

// Persistence slots
const (
	SlotCart         = "cart"
	SlotWishlist     = "wishlist"
	SlotCompareList  = "compareList"
	SlotProfile      = "profile"
	SlotOrderHistory = "orderHistory"
)
