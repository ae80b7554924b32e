package ports

import (
	"context"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
)

type OpsNotifier interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation, spot *domain.ParkingSpot)
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation)
	NotifyReservationNoShow(ctx context.Context, r *domain.Reservation)
}
