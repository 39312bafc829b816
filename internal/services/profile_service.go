// internal/services/profile_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shopsmart-backend/internal/models"
	"github.com/javajoker/shopsmart-backend/internal/store"
)

const DefaultOrderLabel = "New Order"

var ErrOrderNotFound = errors.New("order not found")

type ProfileService struct {
	store store.Store
	now   func() time.Time

	mu      sync.RWMutex
	profile models.Profile
	orders  []models.Order
}

type SaveProfileRequest struct {
	Name     string `json:"name" validate:"max=100"`
	Username string `json:"username" validate:"omitempty,username"`
	Password string `json:"password" validate:"omitempty,min=4,max=72"`
}

type OrderRequest struct {
	Label string `json:"label" validate:"max=200"`
}

func NewProfileService(ctx context.Context, s store.Store) *ProfileService {
	return &ProfileService{
		store:   s,
		now:     time.Now,
		profile: store.LoadJSON(ctx, s, models.SlotProfile, models.Profile{}),
		orders:  store.LoadJSON(ctx, s, models.SlotOrderHistory, []models.Order{}),
	}
}

func (s *ProfileService) GetProfile() models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

// SaveProfile replaces the profile. An empty password keeps the stored hash.
func (s *ProfileService) SaveProfile(ctx context.Context, req SaveProfileRequest) (models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile := models.Profile{
		Name:         strings.TrimSpace(req.Name),
		Username:     strings.TrimSpace(req.Username),
		PasswordHash: s.profile.PasswordHash,
	}
	if req.Password != "" {
		if err := profile.SetPassword(req.Password); err != nil {
			return models.Profile{}, fmt.Errorf("failed to hash password: %w", err)
		}
	}

	s.profile = profile
	store.Persist(ctx, s.store, models.SlotProfile, s.profile)

	logrus.WithField("username", profile.Username).Info("Profile saved")
	return profile, nil
}

// Logout forgets the profile and the order history.
func (s *ProfileService) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile = models.Profile{}
	s.orders = []models.Order{}
	store.Forget(ctx, s.store, models.SlotProfile)
	store.Forget(ctx, s.store, models.SlotOrderHistory)

	logrus.Info("Profile logged out")
}

func (s *ProfileService) ListOrders() []models.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.orders)
}

// RecordOrder appends an order to the history. Blank labels fall back to
// DefaultOrderLabel.
func (s *ProfileService) RecordOrder(ctx context.Context, label string, total float64) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	label = strings.TrimSpace(label)
	if label == "" {
		label = DefaultOrderLabel
	}

	order := models.Order{
		ID:        uuid.New(),
		Label:     label,
		Total:     total,
		CreatedAt: s.now().UTC(),
	}
	s.orders = append(slices.Clone(s.orders), order)
	store.Persist(ctx, s.store, models.SlotOrderHistory, s.orders)
	return order, nil
}

// UpdateOrder relabels an order. An empty label keeps the current one.
func (s *ProfileService) UpdateOrder(ctx context.Context, id uuid.UUID, label string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Order{}, ErrOrderNotFound
	}

	orders := slices.Clone(s.orders)
	if label = strings.TrimSpace(label); label != "" {
		orders[i].Label = label
	}
	s.orders = orders
	store.Persist(ctx, s.store, models.SlotOrderHistory, s.orders)
	return orders[i], nil
}

func (s *ProfileService) DeleteOrder(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return ErrOrderNotFound
	}

	s.orders = slices.Delete(slices.Clone(s.orders), i, i+1)
	store.Persist(ctx, s.store, models.SlotOrderHistory, s.orders)
	return nil
}

func (s *ProfileService) indexOf(id uuid.UUID) int {
	return slices.IndexFunc(s.orders, func(o models.Order) bool { return o.ID == id })
}
