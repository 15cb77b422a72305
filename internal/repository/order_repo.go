package repository

import (
	"context"
	"time"

	"PhotoMarketAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OrderRepository struct {
	DB *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{DB: db}
}

// CreatePendingTx inserts the order and its photo line items inside the
// caller's transaction and returns the new orderid.
func (r *OrderRepository) CreatePendingTx(ctx context.Context, tx pgx.Tx, o *model.Order, items []model.OrderItem) (int64, error) {
	var orderID int64
	query := `
		INSERT INTO orders
			(buyerid, albumid, photographerid, orderstatus, gross_cents, commission_cents, net_cents, created_at)
		VALUES
			($1, $2, $3, 'PendingPayment', $4, $5, $6, $7)
		RETURNING orderid
	`
	if err := tx.QueryRow(
		ctx, query,
		o.BuyerID, o.AlbumID, o.PhotographerID, o.GrossCents, o.CommissionCents, o.NetCents, time.Now(),
	).Scan(&orderID); err != nil {
		return 0, err
	}

	itemQuery := `INSERT INTO orderitems (orderid, photoid, unitprice_cents, created_at) VALUES ($1, $2, $3, $4)`
	for _, it := range items {
		if _, err := tx.Exec(ctx, itemQuery, orderID, it.PhotoID, it.UnitPriceCents, time.Now()); err != nil {
			return 0, err
		}
	}
	return orderID, nil
}

// GetOrderByID returns the order row for the given orderid
func (r *OrderRepository) GetOrderByID(ctx context.Context, orderID int64) (*model.Order, error) {
	query := `
		SELECT orderid, buyerid, albumid, photographerid, orderstatus, gross_cents, commission_cents, net_cents, orderdate, created_at, deleted_at
		FROM orders
		WHERE orderid=$1
	`
	var o model.Order
	if err := r.DB.QueryRow(ctx, query, orderID).Scan(
		&o.OrderID, &o.BuyerID, &o.AlbumID, &o.PhotographerID, &o.OrderStatus,
		&o.GrossCents, &o.CommissionCents, &o.NetCents, &o.OrderDate, &o.CreatedAt, &o.DeletedAt,
	); err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrdersByBuyer returns the buyer's orders, newest first.
func (r *OrderRepository) GetOrdersByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error) {
	query := `
		SELECT orderid, buyerid, albumid, photographerid, orderstatus, gross_cents, commission_cents, net_cents, orderdate, created_at, deleted_at
		FROM orders
		WHERE buyerid=$1 AND deleted_at IS NULL
		ORDER BY orderid DESC
	`
	rows, err := r.DB.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Order
	for rows.Next() {
		var o model.Order
		if err := rows.Scan(
			&o.OrderID, &o.BuyerID, &o.AlbumID, &o.PhotographerID, &o.OrderStatus,
			&o.GrossCents, &o.CommissionCents, &o.NetCents, &o.OrderDate, &o.CreatedAt, &o.DeletedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

// GetPhotoIDsByOrderID returns the photo ids purchased with the order.
func (r *OrderRepository) GetPhotoIDsByOrderID(ctx context.Context, orderID int64) ([]int64, error) {
	query := `SELECT photoid FROM orderitems WHERE orderid=$1`
	rows, err := r.DB.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// MarkPaidTx finalizes the order inside a transaction.
func (r *OrderRepository) MarkPaidTx(ctx context.Context, tx pgx.Tx, orderID int64) error {
	query := `UPDATE orders SET orderstatus='Paid', orderdate=$1 WHERE orderid=$2`
	_, err := tx.Exec(ctx, query, time.Now(), orderID)
	return err
}

func (r *OrderRepository) MarkFailed(ctx context.Context, orderID int64) error {
	query := `UPDATE orders SET orderstatus='Failed' WHERE orderid=$1`
	_, err := r.DB.Exec(ctx, query, orderID)
	return err
}
