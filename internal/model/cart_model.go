package model

import "time"

// CartItem is one photo selected for purchase. Album and photographer fields
// are denormalized snapshots captured at add-time and not re-synced.
type CartItem struct {
	ItemID              int64           `json:"itemid"`
	AlbumID             int64           `json:"albumid"`
	AlbumTitle          string          `json:"albumtitle"`
	PhotographerID      int64           `json:"photographerid"`
	PhotographerName    string          `json:"photographername"`
	Title               string          `json:"title"`
	PreviewURL          string          `json:"previewurl"`
	Package             *PricingPackage `json:"package,omitempty"`
	AlbumFlatPriceCents int64           `json:"albumflatprice_cents"`
	AddedAt             time.Time       `json:"added_at"`
}

// Cart is the aggregate of all selected items for one buyer.
type Cart struct {
	BuyerID   int64      `json:"buyerid"`
	Items     []CartItem `json:"items"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// AlbumSubtotal is the computed per-album slice of a cart shown to the buyer.
type AlbumSubtotal struct {
	AlbumID       int64  `json:"albumid"`
	AlbumTitle    string `json:"albumtitle"`
	ItemCount     int    `json:"itemcount"`
	SubtotalCents int64  `json:"subtotal_cents"`
}

// CartResponse is returned when calling GET /api/cart
type CartResponse struct {
	Items      []CartItem      `json:"items"`
	Subtotals  []AlbumSubtotal `json:"subtotals"`
	TotalCents int64           `json:"total_cents"`
}
