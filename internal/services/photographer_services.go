package services

import (
	"context"

	"PhotoMarketAPI/internal/model"
	"PhotoMarketAPI/internal/repository"
)

type PhotographerService struct {
	Repo *repository.PhotographerRepository
}

func NewPhotographerService(r *repository.PhotographerRepository) *PhotographerService {
	return &PhotographerService{Repo: r}
}

func (s *PhotographerService) GetPhotographer(ctx context.Context, id int64) (*model.Photographer, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *PhotographerService) ListPhotographers(ctx context.Context) ([]model.Photographer, error) {
	return s.Repo.GetAll(ctx)
}
