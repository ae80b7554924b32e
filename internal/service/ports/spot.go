package ports

import (
	"context"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
)

type SpotRepo interface {
	Create(ctx context.Context, s *domain.ParkingSpot) error
	GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error)
	List(ctx context.Context, filter domain.SpotFilter) ([]*domain.ParkingSpot, error)
	Update(ctx context.Context, id int64, in domain.UpdateSpotInput) error
	Delete(ctx context.Context, id int64) error
}
