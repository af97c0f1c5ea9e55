package service

import (
	"context"
	"encoding/json"
	"time"

	"car-rental-backend/internal/cache"
	"car-rental-backend/internal/domain"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository"
)

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	cache       cache.Cache
	cacheTTL    time.Duration
}

// NewVehicleService wires the vehicle catalog. The cache is optional; pass
// nil to read straight from the database.
func NewVehicleService(vehicleRepo repository.VehicleRepository, c cache.Cache, cacheTTL time.Duration) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		cache:       c,
		cacheTTL:    cacheTTL,
	}
}

func (s *vehicleService) AddVehicle(ctx context.Context, v *domain.Vehicle) error {
	if v.Status == "" {
		v.Status = domain.VehicleStatusActive
	}
	if err := s.vehicleRepo.Create(ctx, v); err != nil {
		return err
	}
	s.invalidateListing(ctx, v.City)
	return nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByID(ctx, id)
}

// ListVehicles returns vehicles in a city, cheapest first. An empty status
// means active. Listings are the hottest read path, so the default active
// listing goes through the cache when one is wired.
func (s *vehicleService) ListVehicles(ctx context.Context, city, status string, limit int32) ([]domain.Vehicle, error) {
	if status == "" {
		status = string(domain.VehicleStatusActive)
	}
	cacheable := status == string(domain.VehicleStatusActive) && limit == 0

	key := ""
	if s.cache != nil && cacheable {
		key = s.cache.GenerateKey("vehicles", city)
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var vehicles []domain.Vehicle
			if err := json.Unmarshal([]byte(cached), &vehicles); err == nil {
				return vehicles, nil
			}
		}
	}

	vehicles, err := s.vehicleRepo.List(ctx, city, status, limit)
	if err != nil {
		return nil, err
	}

	if s.cache != nil && cacheable {
		if data, err := json.Marshal(vehicles); err == nil {
			if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
				logger.Warn("vehicle listing cache write failed", "city", city, "error", err)
			}
		}
	}
	return vehicles, nil
}

func (s *vehicleService) SetVehicleStatus(ctx context.Context, id int64, status domain.VehicleStatus) error {
	v, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.vehicleRepo.UpdateStatus(ctx, id, status); err != nil {
		return err
	}
	s.invalidateListing(ctx, v.City)
	return nil
}

func (s *vehicleService) invalidateListing(ctx context.Context, city string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, s.cache.GenerateKey("vehicles", city)); err != nil {
		logger.Warn("vehicle listing cache invalidation failed", "city", city, "error", err)
	}
}
