package repository

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AlbumRepository struct {
	DB *pgxpool.Pool
}

func NewAlbumRepository(db *pgxpool.Pool) *AlbumRepository {
	return &AlbumRepository{DB: db}
}

func (r *AlbumRepository) GetByID(ctx context.Context, id int64) (*model.Album, error) {
	var a model.Album
	query := `
		SELECT albumid, photographerid, title, eventdate, flatprice_cents, coverurl, created_at, deleted_at
		FROM albums
		WHERE albumid=$1 AND deleted_at IS NULL
	`
	if err := r.DB.
		QueryRow(ctx, query, id).
		Scan(&a.AlbumID, &a.PhotographerID, &a.Title, &a.EventDate, &a.FlatPriceCents, &a.CoverURL, &a.CreatedAt, &a.DeletedAt); err != nil {
		return nil, errors.New("album not found")
	}
	return &a, nil
}

func (r *AlbumRepository) List(ctx context.Context, limit, offset int) ([]model.Album, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT albumid, photographerid, title, eventdate, flatprice_cents, coverurl, created_at, deleted_at FROM albums WHERE deleted_at IS NULL ORDER BY albumid LIMIT $1 OFFSET $2`
	rows, err := r.DB.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Album
	for rows.Next() {
		var a model.Album
		if err := rows.Scan(&a.AlbumID, &a.PhotographerID, &a.Title, &a.EventDate, &a.FlatPriceCents, &a.CoverURL, &a.CreatedAt, &a.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, nil
}

func (r *AlbumRepository) GetPhotoByID(ctx context.Context, photoID int64) (*model.Photo, error) {
	var p model.Photo
	query := `
		SELECT photoid, albumid, title, previewurl, created_at, deleted_at
		FROM photos
		WHERE photoid=$1 AND deleted_at IS NULL
	`
	if err := r.DB.
		QueryRow(ctx, query, photoID).
		Scan(&p.PhotoID, &p.AlbumID, &p.Title, &p.PreviewURL, &p.CreatedAt, &p.DeletedAt); err != nil {
		return nil, errors.New("photo not found")
	}
	return &p, nil
}

func (r *AlbumRepository) ListPhotos(ctx context.Context, albumID int64, limit, offset int) ([]model.Photo, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	query := `SELECT photoid, albumid, title, previewurl, created_at, deleted_at FROM photos WHERE albumid=$1 AND deleted_at IS NULL ORDER BY photoid LIMIT $2 OFFSET $3`
	rows, err := r.DB.Query(ctx, query, albumID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.PhotoID, &p.AlbumID, &p.Title, &p.PreviewURL, &p.CreatedAt, &p.DeletedAt); err != nil {
			return nil, err
		}
		list = append(list, p)
	}
	return list, nil
}
