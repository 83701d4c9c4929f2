package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"coursely/models"
	"coursely/utils"

	"github.com/google/uuid"
)

// Store keeps carts as JSON in Redis, keyed by cart ID.
type Store struct {
	Cache utils.KVStore
}

func (s *Store) Create(ctx context.Context) (models.Cart, error) {
	c := models.Cart{CartID: uuid.New().String()}
	if err := s.Save(ctx, c); err != nil {
		return models.Cart{}, err
	}
	return c, nil
}

func (s *Store) Get(ctx context.Context, cartID string) (models.Cart, error) {
	data, err := s.Cache.Get(ctx, utils.CartPrefix+cartID)
	if err != nil {
		return models.Cart{}, fmt.Errorf("cart not found or expired: %w", err)
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return models.Cart{}, fmt.Errorf("failed to parse cart: %w", err)
	}
	return c, nil
}

func (s *Store) Save(ctx context.Context, c models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.CartPrefix+c.CartID, data, utils.CartTTL); err != nil {
		return fmt.Errorf("failed to store cart: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, cartID string) error {
	return s.Cache.Del(ctx, utils.CartPrefix+cartID)
}
