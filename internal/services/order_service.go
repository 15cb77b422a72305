package services

import (
	"context"
	"errors"

	"PhotoMarketAPI/internal/model"
	"PhotoMarketAPI/internal/repository"
)

type OrderService struct {
	Repo *repository.OrderRepository
}

func NewOrderService(r *repository.OrderRepository) *OrderService {
	return &OrderService{Repo: r}
}

func (s *OrderService) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error) {
	return s.Repo.GetOrdersByBuyer(ctx, buyerID)
}

// GetForBuyer returns a single order, rejecting lookups of other buyers' orders.
func (s *OrderService) GetForBuyer(ctx context.Context, orderID, buyerID int64) (*model.Order, error) {
	order, err := s.Repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.BuyerID != buyerID {
		return nil, errors.New("order not found")
	}
	return order, nil
}

func (s *OrderService) GetPhotoIDs(ctx context.Context, orderID int64) ([]int64, error) {
	return s.Repo.GetPhotoIDsByOrderID(ctx, orderID)
}
