package model

// MarketplaceMetrics is the marketplace-wide summary shown on the admin console.
type MarketplaceMetrics struct {
	OrdersTotal       int64 `json:"orders_total"`
	OrdersPaid        int64 `json:"orders_paid"`
	GrossCents        int64 `json:"gross_cents"`
	CommissionCents   int64 `json:"commission_cents"`
	NetCents          int64 `json:"net_cents"`
	PhotographerCount int64 `json:"photographer_count"`
	AlbumCount        int64 `json:"album_count"`
}

// PhotographerSales is one row of the admin top-sellers table.
type PhotographerSales struct {
	PhotographerID int64  `json:"photographerid"`
	Name           string `json:"name"`
	PaidOrders     int64  `json:"paid_orders"`
	GrossCents     int64  `json:"gross_cents"`
}
