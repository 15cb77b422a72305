package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"PhotoMarketAPI/internal/cart"
	"PhotoMarketAPI/internal/events"
	"PhotoMarketAPI/internal/repository"

	"github.com/stripe/stripe-go/v81"
)

// OrderEventPublisher pushes settlement events to the message bus.
type OrderEventPublisher interface {
	PublishOrderPaid(ctx context.Context, ev events.OrderPaidEvent) error
}

// ReceiptMailer sends the buyer a purchase confirmation.
type ReceiptMailer interface {
	SendReceiptEmail(ctx context.Context, toEmail, albumTitle string, photoCount int, totalCents int64) error
}

type PaymentService struct {
	PaymentRepo *repository.PaymentRepository
	OrderRepo   *repository.OrderRepository
	Albums      AlbumReader
	Cart        *cart.Store

	// Publisher and Mailer are optional; settlement succeeds without them.
	Publisher OrderEventPublisher
	Mailer    ReceiptMailer
}

func NewPaymentService(
	pr *repository.PaymentRepository,
	or *repository.OrderRepository,
	albums AlbumReader,
	store *cart.Store,
	publisher OrderEventPublisher,
	mailer ReceiptMailer,
) *PaymentService {
	return &PaymentService{
		PaymentRepo: pr,
		OrderRepo:   or,
		Albums:      albums,
		Cart:        store,
		Publisher:   publisher,
		Mailer:      mailer,
	}
}

// HandleStripeEvent processes a verified webhook event. Settlements are
// idempotent: a replayed event for an already-paid order is safely ignored.
func (s *PaymentService) HandleStripeEvent(ctx context.Context, event stripe.Event) error {
	switch event.Type {

	case "checkout.session.completed":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return err
		}
		orderID, err := orderIDFromRef(sess.Metadata["order_ref"])
		if err != nil {
			return err
		}
		buyerEmail := ""
		if sess.CustomerDetails != nil {
			buyerEmail = sess.CustomerDetails.Email
		}
		return s.finalizePayment(ctx, orderID, sess.ID, event.Data.Raw, buyerEmail)

	case "checkout.session.expired":
		var sess stripe.CheckoutSession
		if err := json.Unmarshal(event.Data.Raw, &sess); err != nil {
			return err
		}
		orderID, err := orderIDFromRef(sess.Metadata["order_ref"])
		if err != nil {
			return err
		}
		return s.markPaymentFailed(ctx, orderID, event.Data.Raw)

	default:
		slog.Info("unhandled stripe event", "type", event.Type)
	}

	return nil
}

// orderIDFromRef extracts the internal order id from ORDER-{id}-UUID
func orderIDFromRef(ref string) (int64, error) {
	var orderID int64
	if _, err := fmt.Sscanf(ref, "ORDER-%d-", &orderID); err != nil {
		return 0, errors.New("invalid order reference")
	}
	return orderID, nil
}

func (s *PaymentService) finalizePayment(
	ctx context.Context,
	orderID int64,
	providerRef string,
	rawPayload []byte,
	buyerEmail string,
) error {

	// Idempotency guard
	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.OrderStatus == "Paid" {
		return nil
	}

	tx, err := s.PaymentRepo.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.PaymentRepo.MarkPaidTx(ctx, tx, orderID, providerRef, "stripe", rawPayload); err != nil {
		return err
	}
	if err := s.OrderRepo.MarkPaidTx(ctx, tx, orderID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	// Post-settlement side effects are best effort: the payment is already
	// recorded, so failures here are logged, not surfaced to the provider.
	s.Cart.RemoveAlbumItems(ctx, order.BuyerID, order.AlbumID)

	if s.Publisher != nil {
		ev := events.OrderPaidEvent{
			OrderID:         order.OrderID,
			BuyerID:         order.BuyerID,
			AlbumID:         order.AlbumID,
			PhotographerID:  order.PhotographerID,
			GrossCents:      order.GrossCents,
			CommissionCents: order.CommissionCents,
			PaidAt:          time.Now().UTC(),
		}
		if err := s.Publisher.PublishOrderPaid(ctx, ev); err != nil {
			slog.Error("publish order-paid event failed", "orderid", order.OrderID, "error", err)
		}
	}

	if s.Mailer != nil && buyerEmail != "" {
		photoIDs, err := s.OrderRepo.GetPhotoIDsByOrderID(ctx, orderID)
		if err != nil {
			slog.Error("load order items for receipt failed", "orderid", orderID, "error", err)
			return nil
		}
		albumTitle := ""
		if album, err := s.Albums.GetByID(ctx, order.AlbumID); err == nil {
			albumTitle = album.Title
		}
		if err := s.Mailer.SendReceiptEmail(ctx, buyerEmail, albumTitle, len(photoIDs), order.GrossCents); err != nil {
			slog.Error("send receipt email failed", "orderid", orderID, "error", err)
		}
	}

	return nil
}

func (s *PaymentService) markPaymentFailed(
	ctx context.Context,
	orderID int64,
	rawPayload []byte,
) error {

	// Idempotency guard
	order, err := s.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.OrderStatus == "Paid" || order.OrderStatus == "Failed" {
		return nil
	}

	if err := s.OrderRepo.MarkFailed(ctx, orderID); err != nil {
		return err
	}
	return s.PaymentRepo.MarkFailed(ctx, orderID, rawPayload)
}
