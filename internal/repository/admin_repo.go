package repository

import (
	"context"

	"PhotoMarketAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AdminRepository struct {
	DB *pgxpool.Pool
}

func NewAdminRepository(db *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{DB: db}
}

// GetMarketplaceMetrics aggregates sales and catalog counts across the whole
// marketplace. Paid orders only contribute to the monetary sums.
func (r *AdminRepository) GetMarketplaceMetrics(ctx context.Context) (*model.MarketplaceMetrics, error) {
	var m model.MarketplaceMetrics

	query := `
		SELECT
			(SELECT COUNT(*) FROM orders WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM orders WHERE orderstatus='Paid' AND deleted_at IS NULL),
			COALESCE((SELECT SUM(gross_cents) FROM orders WHERE orderstatus='Paid' AND deleted_at IS NULL), 0),
			COALESCE((SELECT SUM(commission_cents) FROM orders WHERE orderstatus='Paid' AND deleted_at IS NULL), 0),
			COALESCE((SELECT SUM(net_cents) FROM orders WHERE orderstatus='Paid' AND deleted_at IS NULL), 0),
			(SELECT COUNT(*) FROM photographers WHERE deleted_at IS NULL),
			(SELECT COUNT(*) FROM albums WHERE deleted_at IS NULL)
	`
	if err := r.DB.QueryRow(ctx, query).Scan(
		&m.OrdersTotal,
		&m.OrdersPaid,
		&m.GrossCents,
		&m.CommissionCents,
		&m.NetCents,
		&m.PhotographerCount,
		&m.AlbumCount,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

// TopPhotographers returns photographers ranked by paid gross volume.
func (r *AdminRepository) TopPhotographers(ctx context.Context, limit int) ([]model.PhotographerSales, error) {
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	query := `
		SELECT p.photographerid, p.name, COUNT(o.orderid), COALESCE(SUM(o.gross_cents), 0)
		FROM photographers p
		JOIN orders o ON o.photographerid = p.photographerid AND o.orderstatus='Paid' AND o.deleted_at IS NULL
		WHERE p.deleted_at IS NULL
		GROUP BY p.photographerid, p.name
		ORDER BY SUM(o.gross_cents) DESC
		LIMIT $1
	`
	rows, err := r.DB.Query(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.PhotographerSales
	for rows.Next() {
		var s model.PhotographerSales
		if err := rows.Scan(&s.PhotographerID, &s.Name, &s.PaidOrders, &s.GrossCents); err != nil {
			return nil, err
		}
		list = append(list, s)
	}
	return list, nil
}
