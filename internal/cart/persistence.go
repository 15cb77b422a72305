package cart

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/model"
)

// Persistence is the durable key-value store a cart survives in between
// sessions. Implementations report a missing cart as ErrNotFound and an
// unreadable one as ErrCorrupt; anything else is treated as transient.
type Persistence interface {
	Load(ctx context.Context, buyerID int64) (*model.Cart, error)
	Save(ctx context.Context, buyerID int64, cart *model.Cart) error
	Delete(ctx context.Context, buyerID int64) error
}

var (
	ErrNotFound = errors.New("cart not found")
	ErrCorrupt  = errors.New("stored cart is malformed")
)
