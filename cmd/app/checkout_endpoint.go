package main

import (
	"net/http"

	"PhotoMarketAPI/internal/middleware"
	"PhotoMarketAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type checkoutRequest struct {
	AlbumID int64 `json:"albumid"`
}

func registerCheckoutRoutes(g *echo.Group, cs *services.CheckoutService) {
	p := g.Group("/checkout")
	p.Use(middleware.JWTMiddleware())

	// One payment session covers a single album's cart items, since the
	// proceeds of each session go to that album's photographer.
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(checkoutRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		orderID, redirectURL, err := cs.Checkout(c.Request().Context(), claims.BuyerID, req.AlbumID)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"orderid":      orderID,
			"redirect_url": redirectURL,
		})
	})
}
