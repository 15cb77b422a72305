package pricing

import (
	"errors"
	"sort"

	"PhotoMarketAPI/internal/model"
)

// ErrNoTiers reports a pricing package with an empty tier schedule in a place
// where a tier is required. This is a configuration bug, not a user condition.
var ErrNoTiers = errors.New("pricing package has no tiers")

// ResolveUnitPrice returns the per-photo price for buying quantity photos
// under pkg: the unit price of the tier with the largest threshold <= quantity.
// A quantity below every threshold resolves to the smallest-threshold tier, so
// a non-empty schedule always yields some tier.
func ResolveUnitPrice(pkg *model.PricingPackage, quantity int) (int64, error) {
	if pkg == nil || len(pkg.Tiers) == 0 {
		return 0, ErrNoTiers
	}

	tiers := make([]model.PriceTier, len(pkg.Tiers))
	copy(tiers, pkg.Tiers)
	sort.Slice(tiers, func(i, j int) bool { return tiers[i].Quantity < tiers[j].Quantity })

	unit := tiers[0].UnitPriceCents
	for _, t := range tiers {
		if t.Quantity > quantity {
			break
		}
		unit = t.UnitPriceCents
	}
	return unit, nil
}

// AlbumTotalCents prices one album's selection. With a tiered package the
// total is quantity x resolved unit price. Without one the album charges its
// flat price once, however many photos were selected.
func AlbumTotalCents(items []model.CartItem, pkg *model.PricingPackage, flatPriceCents int64) (int64, error) {
	q := len(items)
	if q == 0 {
		return 0, nil
	}
	if pkg != nil && len(pkg.Tiers) > 0 {
		unit, err := ResolveUnitPrice(pkg, q)
		if err != nil {
			return 0, err
		}
		return int64(q) * unit, nil
	}
	return flatPriceCents, nil
}

// AlbumGroup is one album's slice of a cart. All items in a group share the
// same package snapshot after a package switch.
type AlbumGroup struct {
	AlbumID int64
	Items   []model.CartItem
}

func (g AlbumGroup) Package() *model.PricingPackage {
	if len(g.Items) == 0 {
		return nil
	}
	return g.Items[0].Package
}

func (g AlbumGroup) FlatPriceCents() int64 {
	if len(g.Items) == 0 {
		return 0
	}
	return g.Items[0].AlbumFlatPriceCents
}

func (g AlbumGroup) TotalCents() (int64, error) {
	return AlbumTotalCents(g.Items, g.Package(), g.FlatPriceCents())
}

// GroupByAlbum splits cart items into per-album groups, keeping the groups in
// first-seen order and the items in cart order.
func GroupByAlbum(items []model.CartItem) []AlbumGroup {
	var groups []AlbumGroup
	index := make(map[int64]int)
	for _, it := range items {
		i, ok := index[it.AlbumID]
		if !ok {
			i = len(groups)
			index[it.AlbumID] = i
			groups = append(groups, AlbumGroup{AlbumID: it.AlbumID})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}

// CartTotalCents sums the independent per-album totals. Each album applies its
// own rule; tiers never bleed across albums.
func CartTotalCents(items []model.CartItem) (int64, error) {
	var total int64
	for _, g := range GroupByAlbum(items) {
		sub, err := g.TotalCents()
		if err != nil {
			return 0, err
		}
		total += sub
	}
	return total, nil
}
