package main

import (
	"net/http"
	"strconv"

	"PhotoMarketAPI/internal/services"

	"github.com/labstack/echo/v4"
)

func registerAlbumRoutes(g *echo.Group, as *services.AlbumService) {
	p := g.Group("/albums")

	// LIST albums
	p.GET("", func(c echo.Context) error {
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		albums, err := as.ListAlbums(c.Request().Context(), limit, offset)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, albums)
	})

	// GET album
	p.GET("/:id", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		album, err := as.GetAlbum(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, album)
	})

	// LIST album photos
	p.GET("/:id/photos", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		limit, _ := strconv.Atoi(c.QueryParam("limit"))
		offset, _ := strconv.Atoi(c.QueryParam("offset"))
		photos, err := as.ListPhotos(c.Request().Context(), id, limit, offset)
		if err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, photos)
	})

	// LIST album pricing packages
	p.GET("/:id/packages", func(c echo.Context) error {
		id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
		packages, err := as.ListPackages(c.Request().Context(), id)
		if err != nil {
			return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, packages)
	})
}
