package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/refilllocal/directory/modules/directory/domain/entities/store"
)

type StoreService struct {
	repo store.Repository
}

func NewStoreService(repo store.Repository) *StoreService {
	return &StoreService{repo: repo}
}

// GetByCity lists the verified stores of one city for the public directory.
func (s *StoreService) GetByCity(ctx context.Context, cityID uuid.UUID) ([]store.Store, error) {
	return s.repo.GetByCity(ctx, cityID)
}
