package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"PhotoMarketAPI/internal/cart"
	"PhotoMarketAPI/internal/checkout"
	"PhotoMarketAPI/internal/model"
	"PhotoMarketAPI/internal/pricing"
	"PhotoMarketAPI/internal/repository"

	"github.com/google/uuid"
)

// PaymentGateway creates a hosted payment session for one checkout payload.
// Returns the provider's session id and the redirect URL for the buyer.
type PaymentGateway interface {
	CreateCheckoutSession(ctx context.Context, p checkout.Payload, orderRef string) (string, string, error)
}

type CheckoutService struct {
	Cart          *cart.Store
	Photographers PhotographerReader
	OrderRepo     *repository.OrderRepository
	PaymentRepo   *repository.PaymentRepository
	Gateway       PaymentGateway
	Commission    checkout.CommissionFn
	SuccessURL    string
	CancelURL     string
}

func NewCheckoutService(
	store *cart.Store,
	photographers PhotographerReader,
	or *repository.OrderRepository,
	pr *repository.PaymentRepository,
	gateway PaymentGateway,
	commission checkout.CommissionFn,
	successURL, cancelURL string,
) *CheckoutService {
	return &CheckoutService{
		Cart:          store,
		Photographers: photographers,
		OrderRepo:     or,
		PaymentRepo:   pr,
		Gateway:       gateway,
		Commission:    commission,
		SuccessURL:    successURL,
		CancelURL:     cancelURL,
	}
}

// Checkout prices the buyer's selection for one album, records a pending
// order with its commission split and hands the payload to the gateway.
// Returns the order id and the redirect URL.
func (s *CheckoutService) Checkout(ctx context.Context, buyerID, albumID int64) (int64, string, error) {
	items := s.Cart.Items(ctx, buyerID)
	if len(items) == 0 {
		return 0, "", errors.New("cart is empty")
	}

	var group *pricing.AlbumGroup
	for _, g := range pricing.GroupByAlbum(items) {
		if g.AlbumID == albumID {
			g := g
			group = &g
			break
		}
	}
	if group == nil {
		return 0, "", errors.New("no photos from this album in your cart")
	}

	photographer, err := s.Photographers.GetByID(ctx, group.Items[0].PhotographerID)
	if err != nil {
		return 0, "", err
	}
	if photographer.StripeAccountID == "" {
		return 0, "", errors.New("photographer has no payout account")
	}

	payload, err := checkout.BuildPayload(*group, photographer.StripeAccountID, s.Commission, s.SuccessURL, s.CancelURL)
	if err != nil {
		return 0, "", err
	}

	order := &model.Order{
		BuyerID:         buyerID,
		AlbumID:         albumID,
		PhotographerID:  photographer.PhotographerID,
		GrossCents:      payload.GrossCents,
		CommissionCents: payload.CommissionCents,
		NetCents:        payload.NetCents(),
	}

	// Order and pending payment commit together: the gateway session is only
	// created once both rows exist, so a settling webhook always finds its
	// payment row.
	tx, err := s.OrderRepo.DB.Begin(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	orderID, err := s.OrderRepo.CreatePendingTx(ctx, tx, order, buildOrderItems(*group, payload.GrossCents))
	if err != nil {
		return 0, "", fmt.Errorf("create order: %w", err)
	}

	externalRef := fmt.Sprintf("ORDER-%d-%s", orderID, uuid.NewString())

	if _, err := s.PaymentRepo.CreatePendingTx(
		ctx, tx,
		orderID,
		payload.GrossCents,
		"stripe",
		externalRef,
	); err != nil {
		return 0, "", fmt.Errorf("create payment: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, "", fmt.Errorf("commit tx: %w", err)
	}

	_, redirectURL, err := s.Gateway.CreateCheckoutSession(ctx, payload, externalRef)
	if err != nil {
		if ferr := s.OrderRepo.MarkFailed(ctx, orderID); ferr != nil {
			slog.Error("mark order failed after gateway error", "orderid", orderID, "error", ferr)
		}
		if ferr := s.PaymentRepo.MarkFailed(ctx, orderID, nil); ferr != nil {
			slog.Error("mark payment failed after gateway error", "orderid", orderID, "error", ferr)
		}
		return 0, "", err
	}

	return orderID, redirectURL, nil
}

// buildOrderItems spreads the gross across the line items so the stored
// per-photo prices always sum to the charged amount. Tiered groups split
// evenly into the resolved unit price; flat groups split the one-off album
// price with the remainder cents on the first items.
func buildOrderItems(g pricing.AlbumGroup, grossCents int64) []model.OrderItem {
	n := int64(len(g.Items))
	base := grossCents / n
	rem := grossCents % n

	items := make([]model.OrderItem, 0, n)
	for i, it := range g.Items {
		unit := base
		if int64(i) < rem {
			unit++
		}
		items = append(items, model.OrderItem{
			PhotoID:        it.ItemID,
			UnitPriceCents: unit,
		})
	}
	return items
}
