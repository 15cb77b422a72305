package checkout

import (
	"errors"
	"fmt"

	"PhotoMarketAPI/internal/pricing"
)

// CommissionFn computes the platform's cut in cents for a given gross amount.
// The rate policy behind it is configuration, not owned here.
type CommissionFn func(grossCents int64) int64

// ErrInvalidCommission reports a commission outside [0, gross]. Rate
// functions are trusted configuration, so this is a programming-contract
// failure, not a user condition.
var ErrInvalidCommission = errors.New("commission amount outside [0, gross]")

// PercentCommission returns a CommissionFn taking the given cut in basis
// points, truncated to whole cents.
func PercentCommission(bps int64) CommissionFn {
	return func(grossCents int64) int64 {
		return grossCents * bps / 10000
	}
}

// Payload carries the exact numeric fields the payment gateway needs for one
// album group. All monetary fields are integer cents.
type Payload struct {
	GrossCents           int64
	CommissionCents      int64
	DestinationAccountID string
	LineItemDescription  string
	SuccessRedirect      string
	CancelRedirect       string
}

// NetCents is what the photographer is owed after the platform's cut.
func (p Payload) NetCents() int64 {
	return p.GrossCents - p.CommissionCents
}

// BuildPayload prices one album group and splits the gross between platform
// and photographer. Pure computation; the gateway call happens elsewhere.
func BuildPayload(group pricing.AlbumGroup, destinationAccountID string, commission CommissionFn, successURL, cancelURL string) (Payload, error) {
	gross, err := group.TotalCents()
	if err != nil {
		return Payload{}, err
	}

	cut := commission(gross)
	if cut < 0 || cut > gross {
		return Payload{}, fmt.Errorf("%w: gross=%d commission=%d", ErrInvalidCommission, gross, cut)
	}

	desc := fmt.Sprintf("%d photo(s)", len(group.Items))
	if len(group.Items) > 0 && group.Items[0].AlbumTitle != "" {
		desc = fmt.Sprintf("%d photo(s) from %q", len(group.Items), group.Items[0].AlbumTitle)
	}

	return Payload{
		GrossCents:           gross,
		CommissionCents:      cut,
		DestinationAccountID: destinationAccountID,
		LineItemDescription:  desc,
		SuccessRedirect:      successURL,
		CancelRedirect:       cancelURL,
	}, nil
}
