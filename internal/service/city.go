package service

import (
	"context"

	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/repository"
)

type cityService struct {
	cityRepo repository.CityRepository
}

func NewCityService(cityRepo repository.CityRepository) CityService {
	return &cityService{cityRepo: cityRepo}
}

func (s *cityService) ListCities(ctx context.Context, activeOnly bool) ([]domain.City, error) {
	return s.cityRepo.List(ctx, activeOnly)
}
