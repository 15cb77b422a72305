package repository

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PaymentRepository struct {
	DB *pgxpool.Pool
}

func NewPaymentRepository(db *pgxpool.Pool) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

// CreatePendingTx inserts the pending payment row in the caller's
// transaction, so an order can never be committed without one.
func (r *PaymentRepository) CreatePendingTx(
	ctx context.Context,
	tx pgx.Tx,
	orderID int64,
	amountCents int64,
	provider string,
	providerRef string,
) (int64, error) {

	var paymentID int64
	q := `
		INSERT INTO payments
			(orderid, amountcents, paymentstatus, paymentprovider, providerref, createdat)
		VALUES
			($1, $2, 'Pending', $3, $4, NOW())
		RETURNING paymentid
	`
	err := tx.QueryRow(
		ctx, q,
		orderID, amountCents, provider, providerRef,
	).Scan(&paymentID)

	return paymentID, err
}

func (r *PaymentRepository) GetByOrderID(
	ctx context.Context,
	orderID int64,
) (*model.Payment, error) {

	var p model.Payment

	q := `
		SELECT paymentid, orderid, amountcents, paymentstatus,
		       paymentprovider, providerref, providerpayload,
		       createdat, paidat
		FROM payments
		WHERE orderid=$1
	`

	err := r.DB.QueryRow(ctx, q, orderID).Scan(
		&p.PaymentID,
		&p.OrderID,
		&p.AmountCents,
		&p.PaymentStatus,
		&p.PaymentProvider,
		&p.ProviderRef,
		&p.ProviderPayload,
		&p.CreatedAt,
		&p.PaidAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &p, nil
}

func (r *PaymentRepository) MarkPaidTx(
	ctx context.Context,
	tx pgx.Tx,
	orderID int64,
	providerRef string,
	provider string,
	payload []byte,
) error {

	tag, err := tx.Exec(ctx, `
		UPDATE payments
		SET paymentstatus='Paid',
		    providerref=$2,
		    paymentprovider=$3,
		    providerpayload=$4,
		    paidat=NOW()
		WHERE orderid=$1 AND paymentstatus='Pending'
	`, orderID, providerRef, provider, payload)

	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return errors.New("no pending payment for order")
	}
	return nil
}

func (r *PaymentRepository) MarkFailed(
	ctx context.Context,
	orderID int64,
	payload []byte,
) error {
	_, err := r.DB.Exec(ctx, `
		UPDATE payments
		SET paymentstatus='Failed',
		    providerpayload=$2
		WHERE orderid=$1
		  AND paymentstatus='Pending'
	`, orderID, payload)
	return err
}
