package cart

import (
	"context"
	"errors"
	"testing"

	"PhotoMarketAPI/internal/model"
	"PhotoMarketAPI/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// corruptPersistence simulates a stored cart that no longer parses. The bad
// value stays around until it is deleted or overwritten, as in a real store.
type corruptPersistence struct {
	MemoryPersistence
	corrupt      bool
	corruptLoads int
	deletes      int
}

func (c *corruptPersistence) Load(ctx context.Context, buyerID int64) (*model.Cart, error) {
	if c.corrupt {
		c.corruptLoads++
		return nil, ErrCorrupt
	}
	return c.MemoryPersistence.Load(ctx, buyerID)
}

func (c *corruptPersistence) Save(ctx context.Context, buyerID int64, cart *model.Cart) error {
	c.corrupt = false
	return c.MemoryPersistence.Save(ctx, buyerID, cart)
}

func (c *corruptPersistence) Delete(ctx context.Context, buyerID int64) error {
	c.deletes++
	c.corrupt = false
	return c.MemoryPersistence.Delete(ctx, buyerID)
}

// downPersistence simulates storage that is unavailable for the session.
type downPersistence struct{}

var errStorageDown = errors.New("connection refused")

func (downPersistence) Load(context.Context, int64) (*model.Cart, error) {
	return nil, errStorageDown
}

func (downPersistence) Save(context.Context, int64, *model.Cart) error {
	return errStorageDown
}

func (downPersistence) Delete(context.Context, int64) error {
	return errStorageDown
}

func item(id, albumID int64) model.CartItem {
	return model.CartItem{ItemID: id, AlbumID: albumID}
}

func TestAddItem_IdempotentByItemID(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryPersistence())

	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))
	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))

	assert.Equal(t, 1, s.Count(ctx, 1))
	assert.True(t, s.Contains(ctx, 1, 100))
}

func TestAddItem_RejectsMissingIdentity(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryPersistence())

	assert.ErrorIs(t, s.AddItem(ctx, 1, model.CartItem{AlbumID: 10}), ErrInvalidItem)
	assert.ErrorIs(t, s.AddItem(ctx, 1, model.CartItem{ItemID: 100}), ErrInvalidItem)
	assert.Zero(t, s.Count(ctx, 1))
}

func TestRemoveItem_InverseOfAdd(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryPersistence())

	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))
	s.RemoveItem(ctx, 1, 100)

	assert.Zero(t, s.Count(ctx, 1))
	assert.False(t, s.Contains(ctx, 1, 100))

	// removing an absent item is a no-op
	s.RemoveItem(ctx, 1, 999)
	assert.Zero(t, s.Count(ctx, 1))
}

func TestClear_EmptiesCart(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersistence()
	s := NewStore(p)

	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))
	require.NoError(t, s.AddItem(ctx, 1, item(101, 10)))
	s.Clear(ctx, 1)

	assert.Zero(t, s.Count(ctx, 1))
	_, err := p.Load(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCartSurvivesAcrossStores(t *testing.T) {
	ctx := context.Background()
	p := NewMemoryPersistence()

	s1 := NewStore(p)
	require.NoError(t, s1.AddItem(ctx, 1, item(100, 10)))
	require.NoError(t, s1.AddItem(ctx, 1, item(200, 20)))

	// a fresh store over the same persistence sees the same cart
	s2 := NewStore(p)
	assert.Equal(t, 2, s2.Count(ctx, 1))
	assert.True(t, s2.Contains(ctx, 1, 200))
}

func TestCorruptStoredCart_StartsEmpty(t *testing.T) {
	ctx := context.Background()
	p := &corruptPersistence{MemoryPersistence: *NewMemoryPersistence(), corrupt: true}
	s := NewStore(p)

	// first load hits the malformed value; the cart must come up empty
	assert.Zero(t, s.Count(ctx, 1))

	// and stays fully usable afterwards
	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))
	assert.Equal(t, 1, s.Count(ctx, 1))
}

func TestCorruptStoredCart_DroppedOnFirstRead(t *testing.T) {
	ctx := context.Background()
	p := &corruptPersistence{MemoryPersistence: *NewMemoryPersistence(), corrupt: true}
	s := NewStore(p)

	// repeated read-only calls must not keep re-parsing the bad value
	assert.Zero(t, s.Count(ctx, 1))
	assert.False(t, s.Contains(ctx, 1, 100))
	assert.Empty(t, s.Items(ctx, 1))

	assert.Equal(t, 1, p.corruptLoads)
	assert.Equal(t, 1, p.deletes)
}

func TestStorageDown_FallsBackToMemory(t *testing.T) {
	ctx := context.Background()
	s := NewStore(downPersistence{})

	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))
	require.NoError(t, s.AddItem(ctx, 1, item(101, 10)))
	s.RemoveItem(ctx, 1, 100)

	assert.Equal(t, 1, s.Count(ctx, 1))
	assert.True(t, s.Contains(ctx, 1, 101))
}

func TestUpdatePackageForAlbum_ChangesNextTotal(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryPersistence())

	flat := model.CartItem{ItemID: 100, AlbumID: 10, AlbumFlatPriceCents: 2500}
	require.NoError(t, s.AddItem(ctx, 1, flat))
	require.NoError(t, s.AddItem(ctx, 1, model.CartItem{ItemID: 101, AlbumID: 10, AlbumFlatPriceCents: 2500}))
	require.NoError(t, s.AddItem(ctx, 1, model.CartItem{ItemID: 200, AlbumID: 20, AlbumFlatPriceCents: 1000}))

	total, err := pricing.CartTotalCents(s.Items(ctx, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(3500), total)

	// switching album 10 to a tiered package reprices its existing selection
	pkg := &model.PricingPackage{
		Tiers: []model.PriceTier{{Quantity: 1, UnitPriceCents: 800}},
	}
	s.UpdatePackageForAlbum(ctx, 1, 10, pkg)

	total, err = pricing.CartTotalCents(s.Items(ctx, 1))
	require.NoError(t, err)
	assert.Equal(t, int64(2600), total)

	// item identity and order are preserved
	items := s.Items(ctx, 1)
	require.Len(t, items, 3)
	assert.Equal(t, int64(100), items[0].ItemID)
	assert.Equal(t, int64(101), items[1].ItemID)
	assert.Equal(t, int64(200), items[2].ItemID)
	assert.Nil(t, items[2].Package)
}

func TestUpdatePackageForAlbum_NoMatchingItemsIsNoop(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryPersistence())

	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))
	s.UpdatePackageForAlbum(ctx, 1, 99, &model.PricingPackage{
		Tiers: []model.PriceTier{{Quantity: 1, UnitPriceCents: 800}},
	})

	items := s.Items(ctx, 1)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].Package)
}

func TestRemoveAlbumItems(t *testing.T) {
	ctx := context.Background()
	s := NewStore(NewMemoryPersistence())

	require.NoError(t, s.AddItem(ctx, 1, item(100, 10)))
	require.NoError(t, s.AddItem(ctx, 1, item(101, 10)))
	require.NoError(t, s.AddItem(ctx, 1, item(200, 20)))

	s.RemoveAlbumItems(ctx, 1, 10)

	items := s.Items(ctx, 1)
	require.Len(t, items, 1)
	assert.Equal(t, int64(200), items[0].ItemID)
}
