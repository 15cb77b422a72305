package main

import (
	"io"
	"net/http"

	extstripe "PhotoMarketAPI/external/stripe"
	"PhotoMarketAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerPaymentRoutes(g *echo.Group, ps *services.PaymentService) {
	p := g.Group("/payments")

	// Stripe webhook. Unauthenticated on purpose: the signature header is the
	// authentication.
	p.POST("/webhook", func(c echo.Context) error {
		payload, err := io.ReadAll(c.Request().Body)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "cannot read body"})
		}

		event, err := extstripe.VerifyWebhook(payload, c.Request().Header.Get("Stripe-Signature"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid signature"})
		}

		if err := ps.HandleStripeEvent(c.Request().Context(), event); err != nil {
			// Non-2xx makes Stripe retry the delivery later.
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "ok"})
	})
}
