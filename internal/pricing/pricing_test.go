package pricing

import (
	"testing"

	"PhotoMarketAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tieredPackage() *model.PricingPackage {
	return &model.PricingPackage{
		PackageID: 1,
		AlbumID:   10,
		Name:      "Event standard",
		Tiers: []model.PriceTier{
			{Quantity: 1, UnitPriceCents: 1000},
			{Quantity: 5, UnitPriceCents: 800},
			{Quantity: 10, UnitPriceCents: 600},
		},
	}
}

func albumItems(albumID int64, n int, pkg *model.PricingPackage, flatCents int64) []model.CartItem {
	items := make([]model.CartItem, 0, n)
	for i := 0; i < n; i++ {
		items = append(items, model.CartItem{
			ItemID:              albumID*1000 + int64(i),
			AlbumID:             albumID,
			Package:             pkg,
			AlbumFlatPriceCents: flatCents,
		})
	}
	return items
}

func TestResolveUnitPrice_TierBoundaries(t *testing.T) {
	pkg := tieredPackage()

	tests := []struct {
		name     string
		quantity int
		want     int64
	}{
		{"entry tier", 1, 1000},
		{"below next threshold", 4, 1000},
		{"exactly on threshold", 5, 800},
		{"between thresholds", 9, 800},
		{"top threshold", 10, 600},
		{"beyond top threshold", 20, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveUnitPrice(pkg, tt.quantity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveUnitPrice_BelowEveryThreshold(t *testing.T) {
	pkg := &model.PricingPackage{
		Tiers: []model.PriceTier{
			{Quantity: 5, UnitPriceCents: 800},
			{Quantity: 10, UnitPriceCents: 600},
		},
	}

	// quantity under the smallest threshold falls back to that tier's price
	got, err := ResolveUnitPrice(pkg, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(800), got)
}

func TestResolveUnitPrice_UnsortedTiers(t *testing.T) {
	pkg := &model.PricingPackage{
		Tiers: []model.PriceTier{
			{Quantity: 10, UnitPriceCents: 600},
			{Quantity: 1, UnitPriceCents: 1000},
			{Quantity: 5, UnitPriceCents: 800},
		},
	}

	got, err := ResolveUnitPrice(pkg, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(800), got)
}

func TestResolveUnitPrice_NoTiers(t *testing.T) {
	_, err := ResolveUnitPrice(nil, 3)
	assert.ErrorIs(t, err, ErrNoTiers)

	_, err = ResolveUnitPrice(&model.PricingPackage{}, 3)
	assert.ErrorIs(t, err, ErrNoTiers)
}

func TestAlbumTotalCents_TierMonotonicity(t *testing.T) {
	pkg := tieredPackage()

	tests := []struct {
		quantity int
		want     int64
	}{
		{1, 1000},
		{5, 4000},
		{9, 7200},
		{10, 6000},
		{20, 12000},
	}

	for _, tt := range tests {
		got, err := AlbumTotalCents(albumItems(10, tt.quantity, pkg, 0), pkg, 0)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "quantity %d", tt.quantity)
	}
}

func TestAlbumTotalCents_FlatPriceInvariance(t *testing.T) {
	// no package: album access is charged once, whatever the selection size
	for _, q := range []int{1, 2, 50} {
		got, err := AlbumTotalCents(albumItems(7, q, nil, 2500), nil, 2500)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), got, "quantity %d", q)
	}
}

func TestAlbumTotalCents_EmptySelection(t *testing.T) {
	got, err := AlbumTotalCents(nil, tieredPackage(), 2500)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestAlbumTotalCents_ZeroTierPackageFallsBackToFlat(t *testing.T) {
	empty := &model.PricingPackage{}
	got, err := AlbumTotalCents(albumItems(7, 3, empty, 2500), empty, 2500)
	require.NoError(t, err)
	assert.Equal(t, int64(2500), got)
}

func TestCartTotalCents_CrossAlbumIndependence(t *testing.T) {
	pkg := &model.PricingPackage{
		Tiers: []model.PriceTier{{Quantity: 1, UnitPriceCents: 500}},
	}

	flat := albumItems(1, 3, nil, 3000) // flat $30
	tiered := albumItems(2, 6, pkg, 0)  // 6 x $5

	total, err := CartTotalCents(append(append([]model.CartItem{}, flat...), tiered...))
	require.NoError(t, err)
	assert.Equal(t, int64(6000), total)

	// reordering the album groups does not change the result
	reordered, err := CartTotalCents(append(append([]model.CartItem{}, tiered...), flat...))
	require.NoError(t, err)
	assert.Equal(t, total, reordered)
}

func TestCartTotalCents_EmptyCart(t *testing.T) {
	total, err := CartTotalCents(nil)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestGroupByAlbum_PreservesOrder(t *testing.T) {
	items := []model.CartItem{
		{ItemID: 1, AlbumID: 2},
		{ItemID: 2, AlbumID: 1},
		{ItemID: 3, AlbumID: 2},
	}

	groups := GroupByAlbum(items)
	require.Len(t, groups, 2)
	assert.Equal(t, int64(2), groups[0].AlbumID)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, int64(1), groups[1].AlbumID)
	assert.Len(t, groups[1].Items, 1)
}
