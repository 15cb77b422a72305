package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"PhotoMarketAPI/internal/model"

	"github.com/redis/go-redis/v9"
)

// RedisPersistence keeps each buyer's serialized cart under its own key.
// Carts have no TTL; they are cleared explicitly or replaced by the next
// write (last write wins).
type RedisPersistence struct {
	client *redis.Client
}

func NewRedisPersistence(client *redis.Client) *RedisPersistence {
	return &RedisPersistence{client: client}
}

func (r *RedisPersistence) Load(ctx context.Context, buyerID int64) (*model.Cart, error) {
	data, err := r.client.Get(ctx, cartKey(buyerID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var c model.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &c, nil
}

func (r *RedisPersistence) Save(ctx context.Context, buyerID int64, cart *model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := r.client.Set(ctx, cartKey(buyerID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (r *RedisPersistence) Delete(ctx context.Context, buyerID int64) error {
	if err := r.client.Del(ctx, cartKey(buyerID)).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}
	return nil
}

func cartKey(buyerID int64) string {
	return fmt.Sprintf("cart:%d", buyerID)
}
