package domain

import (
	"math"
	"time"
)

// ReservationAmount prices an interval against a spot's hourly rate.
// Billing is per started minute: the duration is rounded up to whole
// minutes, charged at rate/60 per minute, and the result is rounded
// half-up to cents. Both create and interval-update paths go through
// here so the two can never diverge.
func ReservationAmount(hourlyRate float64, start, end time.Time) float64 {
	if !start.Before(end) {
		return 0
	}
	minutes := math.Ceil(end.Sub(start).Minutes())
	amount := hourlyRate * minutes / 60
	return math.Round(amount*100) / 100
}
