package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/city"
)

type CityService struct {
	repo city.Repository
}

func NewCityService(repo city.Repository) *CityService {
	return &CityService{repo: repo}
}

func (s *CityService) GetAll(ctx context.Context) ([]city.City, error) {
	return s.repo.GetAll(ctx)
}

func (s *CityService) GetByID(ctx context.Context, id uuid.UUID) (city.City, error) {
	return s.repo.GetByID(ctx, id)
}
