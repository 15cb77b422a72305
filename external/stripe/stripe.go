package stripe

import (
	"context"
	"errors"
	"os"

	"PhotoMarketAPI/internal/checkout"

	"github.com/stripe/stripe-go/v81"
	"github.com/stripe/stripe-go/v81/checkout/session"
	"github.com/stripe/stripe-go/v81/webhook"
)

type Client struct{}

func NewClient() (*Client, error) {
	key := os.Getenv("STRIPE_SECRET_KEY")
	if key == "" {
		return nil, errors.New("STRIPE_SECRET_KEY not set")
	}
	stripe.Key = key
	return &Client{}, nil
}

// CreateCheckoutSession creates a hosted payment page that charges the buyer
// the gross amount, keeps the commission as the platform's application fee
// and transfers the remainder to the photographer's connected account.
// Returns the session id and the redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, p checkout.Payload, orderRef string) (string, string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(p.SuccessRedirect),
		CancelURL:  stripe.String(p.CancelRedirect),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Quantity: stripe.Int64(1),
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(string(stripe.CurrencyUSD)),
					UnitAmount: stripe.Int64(p.GrossCents),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.LineItemDescription),
					},
				},
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			ApplicationFeeAmount: stripe.Int64(p.CommissionCents),
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(p.DestinationAccountID),
			},
			Metadata: map[string]string{
				"order_ref": orderRef,
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("order_ref", orderRef)

	s, err := session.New(params)
	if err != nil {
		return "", "", err
	}
	return s.ID, s.URL, nil
}

// VerifyWebhook checks the Stripe-Signature header against the endpoint's
// signing secret and returns the parsed event.
func VerifyWebhook(payload []byte, sigHeader string) (stripe.Event, error) {
	secret := os.Getenv("STRIPE_WEBHOOK_SECRET")
	if secret == "" {
		return stripe.Event{}, errors.New("STRIPE_WEBHOOK_SECRET not set")
	}
	return webhook.ConstructEvent(payload, sigHeader, secret)
}
