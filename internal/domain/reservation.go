package domain

import "time"

type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "Pending"
	ReservationStatusConfirmed ReservationStatus = "Confirmed"
	ReservationStatusActive    ReservationStatus = "Active"
	ReservationStatusCompleted ReservationStatus = "Completed"
	ReservationStatusCancelled ReservationStatus = "Cancelled"
)

// ActiveStatuses is the conflict domain: only reservations in one of these
// statuses can block a spot's time slot.
var ActiveStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusActive,
}

var statusTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationStatusPending:   {ReservationStatusConfirmed, ReservationStatusCancelled},
	ReservationStatusConfirmed: {ReservationStatusActive, ReservationStatusCancelled},
	ReservationStatusActive:    {ReservationStatusCompleted, ReservationStatusCancelled},
}

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusActive,
		ReservationStatusCompleted, ReservationStatusCancelled:
		return true
	}
	return false
}

func (s ReservationStatus) Terminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCancelled
}

func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (p PaymentStatus) Valid() bool {
	return p == PaymentStatusUnpaid || p == PaymentStatusPaid || p == PaymentStatusRefunded
}

type Reservation struct {
	ID            int64             `json:"reservation_id"`
	SpotID        int64             `json:"spot_id"`
	UserName      string            `json:"user_name"`
	UserEmail     string            `json:"user_email"`
	UserPhone     *string           `json:"user_phone"`
	StartTime     time.Time         `json:"start_time"`
	EndTime       time.Time         `json:"end_time"`
	VehiclePlate  *string           `json:"vehicle_plate"`
	TotalAmount   float64           `json:"total_amount"`
	Status        ReservationStatus `json:"status"`
	PaymentStatus PaymentStatus     `json:"payment_status"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// ReservationDetails is a reservation joined with the spot fields callers
// need to render it without a second lookup.
type ReservationDetails struct {
	Reservation
	SpotLocation string `json:"location"`
	SpotNumber   string `json:"spot_number"`
}

type CreateReservationInput struct {
	SpotID       int64
	UserName     string
	UserEmail    string
	UserPhone    *string
	StartTime    time.Time
	EndTime      time.Time
	VehiclePlate *string
}

// UpdateReservationInput enumerates the mutable reservation fields. The
// interval may be moved one end at a time; the merged interval is validated
// as a whole.
type UpdateReservationInput struct {
	Status        *ReservationStatus
	PaymentStatus *PaymentStatus
	StartTime     *time.Time
	EndTime       *time.Time
	VehiclePlate  *string
}

func (in UpdateReservationInput) Empty() bool {
	return in.Status == nil && in.PaymentStatus == nil &&
		in.StartTime == nil && in.EndTime == nil && in.VehiclePlate == nil
}

// ReservationFilter narrows reservation listings; nil means "any".
type ReservationFilter struct {
	UserEmail *string
	Status    *ReservationStatus
}

// LifecycleSweep reports what one pass of the background sweeper moved.
type LifecycleSweep struct {
	Activated []*Reservation
	Completed []*Reservation
	NoShows   []*Reservation
}

func (s LifecycleSweep) Total() int {
	return len(s.Activated) + len(s.Completed) + len(s.NoShows)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share any instant. Covers partial overlap, identical
// intervals and containment in either direction; back-to-back intervals
// touching at a boundary do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
