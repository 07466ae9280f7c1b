package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/AlphaC137/EG-Business-Final-Project/internal/config"
	"github.com/AlphaC137/EG-Business-Final-Project/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartStore backs carts with redis so they survive page reloads and
// process restarts. Each cart lives under "cart:<profile id>" with a TTL.
func NewRedisCartStore(client *redis.Client, cfg *config.Cart) CartStore {
	return &redisCartStore{
		client: client,
		ttl:    cfg.TTL,
	}
}

func (s *redisCartStore) Get(ctx context.Context, profileID uuid.UUID) (*models.Cart, error) {

	data, err := s.client.Get(ctx, Key(CartKeyPrefix, profileID.String())).Bytes()
	if err != nil {

		if err == redis.Nil {
			return nil, nil
		}

		return nil, fmt.Errorf("failed to get cart for profile %s from redis: %w", profileID, err)
	}

	cart := &models.Cart{}

	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("failed to unmarshal cart for profile %s: %w", profileID, err)
	}

	return cart, nil
}

func (s *redisCartStore) Save(ctx context.Context, cart *models.Cart) error {

	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to marshal cart for profile %s: %w", cart.ProfileID, err)
	}

	err = s.client.Set(ctx, Key(CartKeyPrefix, cart.ProfileID.String()), data, s.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set cart for profile %s in redis: %w", cart.ProfileID, err)
	}

	return nil
}

func (s *redisCartStore) Delete(ctx context.Context, profileID uuid.UUID) error {

	err := s.client.Del(ctx, Key(CartKeyPrefix, profileID.String())).Err()
	if err != nil {
		return fmt.Errorf("failed to delete cart for profile %s from redis: %w", profileID, err)
	}

	return nil
}

func (s *redisCartStore) Close() error {
	return s.client.Close()
}
