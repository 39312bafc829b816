// internal/store/store.go
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-backend/internal/metrics"
)

// ErrNotFound is returned when a slot has never been written.
var ErrNotFound = errors.New("slot not found")

// Store is a key-value store of named slots holding JSON documents.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LoadJSON decodes the slot into a value of type T. A missing, unreadable or
// corrupt slot yields def; only the latter two are logged.
func LoadJSON[T any](ctx context.Context, s Store, key string, def T) T {
	data, err := s.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			metrics.PersistenceFailures.WithLabelValues(key, "read").Inc()
			logrus.WithError(err).WithField("slot", key).Warn("Could not load slot")
		}
		return def
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		metrics.PersistenceFailures.WithLabelValues(key, "decode").Inc()
		logrus.WithError(err).WithField("slot", key).Warn("Discarding corrupt slot")
		return def
	}
	return value
}

// SaveJSON encodes value and writes it to the slot.
func SaveJSON(ctx context.Context, s Store, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", key, err)
	}
	if err := s.Set(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write slot %s: %w", key, err)
	}
	return nil
}

// Persist is the best-effort form of SaveJSON: failures are logged and dropped.
func Persist(ctx context.Context, s Store, key string, value interface{}) {
	if err := SaveJSON(ctx, s, key, value); err != nil {
		metrics.PersistenceFailures.WithLabelValues(key, "write").Inc()
		logrus.WithError(err).WithField("slot", key).Warn("Could not save slot")
	}
}

// Forget is the best-effort form of Delete.
func Forget(ctx context.Context, s Store, key string) {
	if err := s.Delete(ctx, key); err != nil && !errors.Is(err, ErrNotFound) {
		metrics.PersistenceFailures.WithLabelValues(key, "delete").Inc()
		logrus.WithError(err).WithField("slot", key).Warn("Could not delete slot")
	}
}
