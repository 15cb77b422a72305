package cart

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"PhotoMarketAPI/internal/model"
)

// ErrInvalidItem reports a cart item missing required identity fields. Adding
// such an item is a caller bug, everything else about Add is a no-op path.
var ErrInvalidItem = errors.New("cart item is missing required fields")

// Store holds the authoritative carts and keeps them synchronized with
// durable storage. Stored carts that fail to load cleanly are discarded; a
// failing store demotes that buyer's cart to in-memory-only for the rest of
// the session instead of surfacing the failure.
type Store struct {
	persistence Persistence

	mu       sync.Mutex
	fallback map[int64]*model.Cart
}

func NewStore(p Persistence) *Store {
	return &Store{
		persistence: p,
		fallback:    make(map[int64]*model.Cart),
	}
}

// Items returns a copy of the buyer's current cart items.
func (s *Store) Items(ctx context.Context, buyerID int64) []model.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.load(ctx, buyerID)
	return append([]model.CartItem(nil), c.Items...)
}

// Count returns the live number of items across all albums.
func (s *Store) Count(ctx context.Context, buyerID int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.load(ctx, buyerID).Items)
}

// Contains reports whether the photo is already in the buyer's cart.
func (s *Store) Contains(ctx context.Context, buyerID, itemID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.load(ctx, buyerID).Items {
		if it.ItemID == itemID {
			return true
		}
	}
	return false
}

// AddItem inserts the item unless a cart entry with the same ItemID already
// exists; re-adding is a no-op, not an error.
func (s *Store) AddItem(ctx context.Context, buyerID int64, item model.CartItem) error {
	if item.ItemID == 0 || item.AlbumID == 0 {
		return ErrInvalidItem
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.load(ctx, buyerID)
	for _, it := range c.Items {
		if it.ItemID == item.ItemID {
			return nil
		}
	}
	c.Items = append(c.Items, item)
	s.save(ctx, buyerID, c)
	return nil
}

// RemoveItem removes the entry with the matching ItemID; absent is a no-op.
func (s *Store) RemoveItem(ctx context.Context, buyerID, itemID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.load(ctx, buyerID)
	for i, it := range c.Items {
		if it.ItemID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			s.save(ctx, buyerID, c)
			return
		}
	}
}

// RemoveAlbumItems drops every item belonging to the album. Used when an
// album's checkout settles.
func (s *Store) RemoveAlbumItems(ctx context.Context, buyerID, albumID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.load(ctx, buyerID)
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.AlbumID != albumID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(c.Items) {
		return
	}
	c.Items = kept
	s.save(ctx, buyerID, c)
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context, buyerID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallbackDrop(buyerID)
	if err := s.persistence.Delete(ctx, buyerID); err != nil {
		slog.Warn("cart storage delete failed", "buyerid", buyerID, "error", err)
	}
}

// UpdatePackageForAlbum replaces the package snapshot on every item of the
// album, preserving item identity and order. No matching items is a valid
// state and a no-op.
func (s *Store) UpdatePackageForAlbum(ctx context.Context, buyerID, albumID int64, pkg *model.PricingPackage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.load(ctx, buyerID)
	changed := false
	for i := range c.Items {
		if c.Items[i].AlbumID == albumID {
			c.Items[i].Package = pkg
			changed = true
		}
	}
	if changed {
		s.save(ctx, buyerID, c)
	}
}

// load returns the buyer's cart, always non-nil. Callers hold s.mu.
func (s *Store) load(ctx context.Context, buyerID int64) *model.Cart {
	if c, ok := s.fallback[buyerID]; ok {
		return c
	}

	c, err := s.persistence.Load(ctx, buyerID)
	switch {
	case err == nil:
		return c
	case errors.Is(err, ErrNotFound):
		// first access, start empty
	case errors.Is(err, ErrCorrupt):
		slog.Warn("discarding malformed stored cart", "buyerid", buyerID, "error", err)
		// drop the bad value so later reads don't re-parse it
		if derr := s.persistence.Delete(ctx, buyerID); derr != nil {
			slog.Warn("delete of malformed stored cart failed", "buyerid", buyerID, "error", derr)
		}
	default:
		slog.Warn("cart storage unavailable, continuing in memory", "buyerid", buyerID, "error", err)
		c := &model.Cart{BuyerID: buyerID, UpdatedAt: time.Now()}
		s.fallback[buyerID] = c
		return c
	}
	return &model.Cart{BuyerID: buyerID, UpdatedAt: time.Now()}
}

// save writes the cart through to storage. On failure the cart stays usable
// in memory for the rest of the session. Callers hold s.mu.
func (s *Store) save(ctx context.Context, buyerID int64, c *model.Cart) {
	c.UpdatedAt = time.Now()
	if _, degraded := s.fallback[buyerID]; degraded {
		s.fallback[buyerID] = c
		return
	}
	if err := s.persistence.Save(ctx, buyerID, c); err != nil {
		slog.Warn("cart storage write failed, continuing in memory", "buyerid", buyerID, "error", err)
		s.fallback[buyerID] = c
	}
}

func (s *Store) fallbackDrop(buyerID int64) {
	delete(s.fallback, buyerID)
}
