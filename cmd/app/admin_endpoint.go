package main

import (
	"net/http"
	"strconv"

	"PhotoMarketAPI/internal/middleware"
	"PhotoMarketAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAdminRoutes(g *echo.Group, as *services.AdminService) {
	p := g.Group("/admin")
	p.Use(middleware.JWTMiddleware())
	p.Use(middleware.AdminOnly)

	p.GET("/metrics", func(c echo.Context) error {
		metrics, err := as.Metrics(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, metrics)
	})

	p.GET("/top-photographers", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		list, err := as.TopPhotographers(c.Request().Context(), limit)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})
}
