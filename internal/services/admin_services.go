package services

import (
	"context"

	"PhotoMarketAPI/internal/model"
	"PhotoMarketAPI/internal/repository"
)

type AdminService struct {
	Repo *repository.AdminRepository
}

func NewAdminService(r *repository.AdminRepository) *AdminService {
	return &AdminService{Repo: r}
}

func (s *AdminService) Metrics(ctx context.Context) (*model.MarketplaceMetrics, error) {
	return s.Repo.GetMarketplaceMetrics(ctx)
}

func (s *AdminService) TopPhotographers(ctx context.Context, limit int) ([]model.PhotographerSales, error) {
	return s.Repo.TopPhotographers(ctx, limit)
}
