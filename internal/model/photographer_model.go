package model

import "time"

type Photographer struct {
	PhotographerID int64      `json:"photographerid"`
	Name           string     `json:"name"`
	Email          string     `json:"email"`
	// StripeAccountID is the connected account that receives the net amount
	// of every sale after the platform commission.
	StripeAccountID string     `json:"stripeaccountid"`
	CreatedAt       *time.Time `json:"created_at,omitempty"`
	DeletedAt       *time.Time `json:"deleted_at,omitempty"`
}
