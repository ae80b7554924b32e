package domain

import "errors"

var (
	ErrSpotNotFound        = errors.New("parking spot not found")
	ErrReservationNotFound = errors.New("reservation not found")
)

var (
	ErrSpotUnavailable   = errors.New("parking spot is not available")
	ErrSlotConflict      = errors.New("time slot conflict with existing reservation")
	ErrInvalidTransition = errors.New("illegal reservation status transition")
)

var (
	ErrInvalidInterval = errors.New("invalid reservation interval")
	ErrValidation      = errors.New("validation error")
)
