package ports

import (
	"context"
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
)

type ReservationRepo interface {
	// Create atomically re-checks spot availability and slot conflicts
	// under a row lock on the spot, then inserts. Fills r.ID on success.
	Create(ctx context.Context, r *domain.Reservation) error
	GetByID(ctx context.Context, id int64) (*domain.ReservationDetails, error)
	List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error)
	// UpdateStatus is a compare-and-swap: it only writes if the stored
	// status still equals from.
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
	// UpdateInterval atomically re-checks conflicts for the new interval,
	// excluding the reservation itself, then writes times and amount.
	UpdateInterval(ctx context.Context, id, spotID int64, start, end time.Time, amount float64) error
	UpdatePayment(ctx context.Context, id int64, status domain.PaymentStatus) error
	UpdateVehiclePlate(ctx context.Context, id int64, plate *string) error
	Delete(ctx context.Context, id int64) error

	// Lifecycle sweeps, each returning the reservations it moved.
	ActivateDue(ctx context.Context) ([]*domain.Reservation, error)
	CompleteElapsed(ctx context.Context) ([]*domain.Reservation, error)
	CancelUnclaimed(ctx context.Context) ([]*domain.Reservation, error)
}
