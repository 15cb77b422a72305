package model

import "time"

// Order represents an entry in the orders table. One order covers the photos
// of a single album group at checkout time, so the commission split maps onto
// exactly one photographer payout.
type Order struct {
	OrderID         int64      `json:"orderid"`
	BuyerID         int64      `json:"buyerid"`
	AlbumID         int64      `json:"albumid"`
	PhotographerID  int64      `json:"photographerid"`
	OrderStatus     string     `json:"orderstatus"`
	GrossCents      int64      `json:"gross_cents"`
	CommissionCents int64      `json:"commission_cents"`
	NetCents        int64      `json:"net_cents"`
	OrderDate       *time.Time `json:"orderdate,omitempty"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}

// OrderItem represents a row in the orderitems table
type OrderItem struct {
	OrderItemID    int64      `json:"orderitemid"`
	OrderID        int64      `json:"orderid"`
	PhotoID        int64      `json:"photoid"`
	UnitPriceCents int64      `json:"unitprice_cents"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}
