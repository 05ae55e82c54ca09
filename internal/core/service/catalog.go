package service

import (
	"context"

	"github.com/wzlim/foodcourt/internal/core/domain"
	"github.com/wzlim/foodcourt/internal/core/port"
	"go.uber.org/zap"
)

type CatalogService struct {
	foods  port.FoodRepository
	logger *zap.Logger
}

func NewCatalogService(foods port.FoodRepository, logger *zap.Logger) (*CatalogService, error) {
	return &CatalogService{
		foods:  foods,
		logger: logger,
	}, nil
}

func (s *CatalogService) AddFood(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	if food.Name == "" {
		return nil, domain.ErrFoodNameRequired
	}
	if food.Price.IsNeg() {
		return nil, domain.ErrNegativePrice
	}

	created, err := s.foods.CreateFood(ctx, food)
	if err != nil {
		s.logger.Error("Create food", zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (s *CatalogService) GetFood(ctx context.Context, id uint64) (*domain.Food, error) {
	return s.foods.GetFood(ctx, id)
}

func (s *CatalogService) ListFoods(ctx context.Context) ([]*domain.Food, error) {
	list, err := s.foods.ListFoods(ctx)
	if err != nil {
		s.logger.Error("List foods", zap.Error(err))
		return nil, err
	}
	return list, nil
}

func (s *CatalogService) UpdateFood(ctx context.Context, food *domain.Food) (*domain.Food, error) {
	if food.Name == "" {
		return nil, domain.ErrFoodNameRequired
	}
	if food.Price.IsNeg() {
		return nil, domain.ErrNegativePrice
	}

	updated, err := s.foods.UpdateFood(ctx, food)
	if err != nil {
		s.logger.Error("Update food", zap.Error(err))
		return nil, err
	}
	return updated, nil
}

func (s *CatalogService) RemoveFood(ctx context.Context, id uint64) error {
	err := s.foods.DeleteFood(ctx, id)
	if err != nil {
		s.logger.Error("Delete food", zap.Error(err))
		return err
	}
	return nil
}
