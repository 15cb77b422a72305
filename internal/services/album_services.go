package services

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/model"
	"PhotoMarketAPI/internal/repository"
)

type AlbumService struct {
	Repo        *repository.AlbumRepository
	PackageRepo *repository.PricingPackageRepository
}

func NewAlbumService(r *repository.AlbumRepository, pr *repository.PricingPackageRepository) *AlbumService {
	return &AlbumService{Repo: r, PackageRepo: pr}
}

func (s *AlbumService) GetAlbum(ctx context.Context, id int64) (*model.Album, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *AlbumService) ListAlbums(ctx context.Context, limit, offset int) ([]model.Album, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.List(ctx, limit, offset)
}

func (s *AlbumService) ListPhotos(ctx context.Context, albumID int64, limit, offset int) ([]model.Photo, error) {
	if albumID <= 0 {
		return nil, errors.New("invalid album id")
	}
	return s.Repo.ListPhotos(ctx, albumID, limit, offset)
}

// ListPackages returns the album's pricing packages with their tier schedules.
func (s *AlbumService) ListPackages(ctx context.Context, albumID int64) ([]model.PricingPackage, error) {
	if albumID <= 0 {
		return nil, errors.New("invalid album id")
	}
	if _, err := s.Repo.GetByID(ctx, albumID); err != nil {
		return nil, err
	}
	return s.PackageRepo.ListByAlbum(ctx, albumID)
}
