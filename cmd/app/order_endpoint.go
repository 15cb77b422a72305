package main

import (
	"net/http"
	"strconv"

	"PhotoMarketAPI/internal/middleware"
	"PhotoMarketAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerOrderRoutes(g *echo.Group, os *services.OrderService) {
	p := g.Group("/orders")
	p.Use(middleware.JWTMiddleware())

	// LIST buyer's orders
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		orders, err := os.ListByBuyer(c.Request().Context(), claims.BuyerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, orders)
	})

	// GET one order with purchased photo ids
	p.GET("/:id", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		order, err := os.GetForBuyer(c.Request().Context(), id, claims.BuyerID)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		photoIDs, err := os.GetPhotoIDs(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]interface{}{
			"order":    order,
			"photoids": photoIDs,
		})
	})
}
