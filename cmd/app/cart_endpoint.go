package main

import (
	"net/http"
	"strconv"

	"PhotoMarketAPI/internal/middleware"
	"PhotoMarketAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type addCartRequest struct {
	PhotoID   int64 `json:"photoid"`
	PackageID int64 `json:"packageid"`
}

type selectPackageRequest struct {
	PackageID int64 `json:"packageid"`
}

func registerCartRoutes(g *echo.Group, cs *services.CartService) {
	p := g.Group("/cart")
	p.Use(middleware.JWTMiddleware())

	// GET cart with per-album subtotals
	p.GET("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cart, err := cs.Get(c.Request().Context(), claims.BuyerID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, cart)
	})

	// ADD photo (idempotent)
	p.POST("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		req := new(addCartRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.Add(c.Request().Context(), claims.BuyerID, req.PhotoID, req.PackageID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, map[string]string{"message": "added"})
	})

	// SELECT package for an album (packageid 0 reverts to flat album pricing)
	p.PUT("/albums/:albumid/package", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		albumID, _ := strconv.ParseInt(c.Param("albumid"), 10, 64)
		req := new(selectPackageRequest)
		if err := c.Bind(req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request"})
		}
		if err := cs.SelectPackage(c.Request().Context(), claims.BuyerID, albumID, req.PackageID); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, map[string]string{"message": "package updated"})
	})

	// REMOVE photo
	p.DELETE("/:photoid", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		photoID, _ := strconv.ParseInt(c.Param("photoid"), 10, 64)
		cs.Remove(c.Request().Context(), claims.BuyerID, photoID)
		return c.JSON(http.StatusOK, map[string]string{"message": "removed"})
	})

	// CLEAR cart
	p.DELETE("", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		cs.Clear(c.Request().Context(), claims.BuyerID)
		return c.JSON(http.StatusOK, map[string]string{"message": "cleared"})
	})

	// COUNT
	p.GET("/count", func(c echo.Context) error {
		claims := middleware.GetClaims(c)
		n := cs.Count(c.Request().Context(), claims.BuyerID)
		return c.JSON(http.StatusOK, map[string]interface{}{"count": n})
	})
}
