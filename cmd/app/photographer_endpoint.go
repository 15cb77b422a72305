package main

import (
	"net/http"
	"strconv"

	"PhotoMarketAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerPhotographerRoutes(g *echo.Group, ps *services.PhotographerService) {
	p := g.Group("/photographers")

	p.GET("", func(c echo.Context) error {
		list, err := ps.ListPhotographers(c.Request().Context())
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, list)
	})

	p.GET("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		photographer, err := ps.GetPhotographer(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, photographer)
	})
}
