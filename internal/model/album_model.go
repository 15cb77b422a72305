package model

import "time"

type Album struct {
	AlbumID        int64      `json:"albumid"`
	PhotographerID int64      `json:"photographerid"`
	Title          string     `json:"title"`
	EventDate      *time.Time `json:"eventdate,omitempty"`
	FlatPriceCents int64      `json:"flatprice_cents"`
	CoverURL       *string    `json:"coverurl,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
	DeletedAt      *time.Time `json:"deleted_at,omitempty"`
}

type Photo struct {
	PhotoID    int64      `json:"photoid"`
	AlbumID    int64      `json:"albumid"`
	Title      string     `json:"title"`
	PreviewURL string     `json:"previewurl"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	DeletedAt  *time.Time `json:"deleted_at,omitempty"`
}

// PriceTier is one step of a package's quantity schedule: buying at least
// Quantity photos prices every photo at UnitPriceCents.
type PriceTier struct {
	Quantity       int   `json:"quantity"`
	UnitPriceCents int64 `json:"unitprice_cents"`
}

// PricingPackage is a named tier schedule belonging to an album.
type PricingPackage struct {
	PackageID   int64       `json:"packageid"`
	AlbumID     int64       `json:"albumid"`
	Name        string      `json:"name"`
	Description *string     `json:"description,omitempty"`
	PackageType *string     `json:"packagetype,omitempty"`
	Tiers       []PriceTier `json:"tiers"`
}
