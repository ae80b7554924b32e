package service

import (
	"context"
	"fmt"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/FarHanZzzz/SmartUrban/internal/service/ports"
)

const defaultSpotType = "Standard"

type SpotService struct {
	repo ports.SpotRepo
}

func NewSpotService(repo ports.SpotRepo) *SpotService {
	return &SpotService{repo: repo}
}

func (s *SpotService) Create(ctx context.Context, input domain.CreateSpotInput) (*domain.ParkingSpot, error) {
	if input.Location == "" {
		return nil, fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if input.SpotNumber == "" {
		return nil, fmt.Errorf("%w: spot_number is required", domain.ErrValidation)
	}
	if input.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}
	if input.HourlyRate < 0 {
		return nil, fmt.Errorf("%w: hourly_rate must not be negative", domain.ErrValidation)
	}

	capacity := input.Capacity
	if capacity == 0 {
		capacity = 1
	}
	spotType := input.SpotType
	if spotType == "" {
		spotType = defaultSpotType
	}
	available := true
	if input.IsAvailable != nil {
		available = *input.IsAvailable
	}

	spot := &domain.ParkingSpot{
		Location:    input.Location,
		SpotNumber:  input.SpotNumber,
		Zone:        input.Zone,
		Capacity:    capacity,
		IsAvailable: available,
		SpotType:    spotType,
		HourlyRate:  input.HourlyRate,
		Latitude:    input.Latitude,
		Longitude:   input.Longitude,
	}

	if err := s.repo.Create(ctx, spot); err != nil {
		return nil, fmt.Errorf("create spot: %w", err)
	}

	return spot, nil
}

func (s *SpotService) GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *SpotService) List(ctx context.Context, filter domain.SpotFilter) ([]*domain.ParkingSpot, error) {
	return s.repo.List(ctx, filter)
}

func (s *SpotService) Update(ctx context.Context, id int64, input domain.UpdateSpotInput) error {
	if input.Empty() {
		return fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}
	if input.Capacity != nil && *input.Capacity < 1 {
		return fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}
	if input.HourlyRate != nil && *input.HourlyRate < 0 {
		return fmt.Errorf("%w: hourly_rate must not be negative", domain.ErrValidation)
	}

	return s.repo.Update(ctx, id, input)
}

func (s *SpotService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
