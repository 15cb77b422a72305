package services

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/cart"
	"PhotoMarketAPI/internal/model"
	"PhotoMarketAPI/internal/pricing"
)

// AlbumReader is the slice of the album repository the cart needs.
type AlbumReader interface {
	GetByID(ctx context.Context, id int64) (*model.Album, error)
	GetPhotoByID(ctx context.Context, photoID int64) (*model.Photo, error)
}

// PackageReader loads pricing packages with their tier schedules.
type PackageReader interface {
	GetByID(ctx context.Context, id int64) (*model.PricingPackage, error)
}

// PhotographerReader resolves photographer attribution and payout accounts.
type PhotographerReader interface {
	GetByID(ctx context.Context, id int64) (*model.Photographer, error)
}

type CartService struct {
	Cart          *cart.Store
	Albums        AlbumReader
	Packages      PackageReader
	Photographers PhotographerReader
}

func NewCartService(store *cart.Store, albums AlbumReader, packages PackageReader, photographers PhotographerReader) *CartService {
	return &CartService{
		Cart:          store,
		Albums:        albums,
		Packages:      packages,
		Photographers: photographers,
	}
}

// Add snapshots the photo, its album, photographer and (optionally) a pricing
// package into a cart item. Adding a photo that is already in the cart is a
// no-op.
func (s *CartService) Add(ctx context.Context, buyerID, photoID int64, packageID int64) error {
	if s.Cart.Contains(ctx, buyerID, photoID) {
		return nil
	}

	photo, err := s.Albums.GetPhotoByID(ctx, photoID)
	if err != nil {
		return err
	}
	album, err := s.Albums.GetByID(ctx, photo.AlbumID)
	if err != nil {
		return err
	}
	photographer, err := s.Photographers.GetByID(ctx, album.PhotographerID)
	if err != nil {
		return err
	}

	pkg, err := s.resolvePackage(ctx, buyerID, album.AlbumID, packageID)
	if err != nil {
		return err
	}

	item := model.CartItem{
		ItemID:              photo.PhotoID,
		AlbumID:             album.AlbumID,
		AlbumTitle:          album.Title,
		PhotographerID:      photographer.PhotographerID,
		PhotographerName:    photographer.Name,
		Title:               photo.Title,
		PreviewURL:          photo.PreviewURL,
		Package:             pkg,
		AlbumFlatPriceCents: album.FlatPriceCents,
	}
	return s.Cart.AddItem(ctx, buyerID, item)
}

// resolvePackage picks the package snapshot for a new item: an explicit id
// wins, otherwise the package already chosen for that album's items, so every
// item of an album group stays on the same schedule.
func (s *CartService) resolvePackage(ctx context.Context, buyerID, albumID, packageID int64) (*model.PricingPackage, error) {
	if packageID != 0 {
		pkg, err := s.Packages.GetByID(ctx, packageID)
		if err != nil {
			return nil, err
		}
		if pkg.AlbumID != albumID {
			return nil, errors.New("pricing package does not belong to this album")
		}
		return pkg, nil
	}
	for _, it := range s.Cart.Items(ctx, buyerID) {
		if it.AlbumID == albumID {
			return it.Package, nil
		}
	}
	return nil, nil
}

// Remove removes a photo from the cart
func (s *CartService) Remove(ctx context.Context, buyerID, photoID int64) {
	s.Cart.RemoveItem(ctx, buyerID, photoID)
}

// Clear clears the cart (removes items)
func (s *CartService) Clear(ctx context.Context, buyerID int64) {
	s.Cart.Clear(ctx, buyerID)
}

// Count returns the live badge count.
func (s *CartService) Count(ctx context.Context, buyerID int64) int {
	return s.Cart.Count(ctx, buyerID)
}

// SelectPackage switches every cart item of the album to another of the
// album's packages; packageID 0 drops back to the flat album price. Items
// keep their identity and order, only the price snapshot changes.
func (s *CartService) SelectPackage(ctx context.Context, buyerID, albumID, packageID int64) error {
	var pkg *model.PricingPackage
	if packageID != 0 {
		p, err := s.Packages.GetByID(ctx, packageID)
		if err != nil {
			return err
		}
		if p.AlbumID != albumID {
			return errors.New("pricing package does not belong to this album")
		}
		pkg = p
	}
	s.Cart.UpdatePackageForAlbum(ctx, buyerID, albumID, pkg)
	return nil
}

// Get returns the cart (items + per-album subtotals + total)
func (s *CartService) Get(ctx context.Context, buyerID int64) (*model.CartResponse, error) {
	items := s.Cart.Items(ctx, buyerID)

	subtotals := make([]model.AlbumSubtotal, 0)
	var total int64
	for _, g := range pricing.GroupByAlbum(items) {
		sub, err := g.TotalCents()
		if err != nil {
			return nil, err
		}
		subtotals = append(subtotals, model.AlbumSubtotal{
			AlbumID:       g.AlbumID,
			AlbumTitle:    g.Items[0].AlbumTitle,
			ItemCount:     len(g.Items),
			SubtotalCents: sub,
		})
		total += sub
	}

	if items == nil {
		items = []model.CartItem{}
	}
	return &model.CartResponse{
		Items:      items,
		Subtotals:  subtotals,
		TotalCents: total,
	}, nil
}
