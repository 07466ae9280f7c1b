package cache

import (
	"context"
	"sync"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/google/uuid"
)

// CartStore holds one cart per profile. Whether carts survive a restart is a
// deployment policy: the memory store is volatile, the redis store is not.
type CartStore interface {
	Get(ctx context.Context, profileID uuid.UUID) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, profileID uuid.UUID) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const CartKeyPrefix = "cart"

type memoryCartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*models.Cart
}

func NewMemoryCartStore() CartStore {
	return &memoryCartStore{
		carts: make(map[uuid.UUID]*models.Cart),
	}
}

func (s *memoryCartStore) Get(ctx context.Context, profileID uuid.UUID) (*models.Cart, error) {

	s.mu.RLock()
	defer s.mu.RUnlock()

	cart, ok := s.carts[profileID]
	if !ok {
		return nil, nil
	}

	// copy so callers never mutate the stored map without going through Save
	copied := &models.Cart{
		ProfileID: cart.ProfileID,
		Items:     make(map[string]models.CartItem, len(cart.Items)),
		UpdatedAt: cart.UpdatedAt,
	}

	for k, v := range cart.Items {
		copied.Items[k] = v
	}

	return copied, nil
}

func (s *memoryCartStore) Save(ctx context.Context, cart *models.Cart) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := &models.Cart{
		ProfileID: cart.ProfileID,
		Items:     make(map[string]models.CartItem, len(cart.Items)),
		UpdatedAt: cart.UpdatedAt,
	}

	for k, v := range cart.Items {
		stored.Items[k] = v
	}

	s.carts[cart.ProfileID] = stored

	return nil
}

func (s *memoryCartStore) Delete(ctx context.Context, profileID uuid.UUID) error {

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, profileID)

	return nil
}

func (s *memoryCartStore) Close() error {
	return nil
}
