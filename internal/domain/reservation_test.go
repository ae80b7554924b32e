package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func at(hour, min int) time.Time {
	return time.Date(2025, time.March, 10, hour, min, 0, 0, time.UTC)
}

func TestOverlaps_PartialOverlap(t *testing.T) {
	assert.True(t, Overlaps(at(9, 0), at(11, 0), at(10, 0), at(12, 0)))
	assert.True(t, Overlaps(at(10, 0), at(12, 0), at(9, 0), at(11, 0)))
}

func TestOverlaps_IdenticalIntervals(t *testing.T) {
	assert.True(t, Overlaps(at(9, 0), at(11, 0), at(9, 0), at(11, 0)))
}

func TestOverlaps_Containment(t *testing.T) {
	// New interval fully inside an existing one, and the reverse. The
	// boundary-pair check the old dashboard used missed the second case.
	assert.True(t, Overlaps(at(10, 0), at(12, 0), at(9, 0), at(13, 0)))
	assert.True(t, Overlaps(at(9, 0), at(13, 0), at(10, 0), at(12, 0)))
	assert.True(t, Overlaps(at(11, 0), at(11, 30), at(10, 0), at(12, 0)))
}

func TestOverlaps_BackToBack(t *testing.T) {
	// Half-open intervals: one booking ending exactly when the next
	// starts is not a conflict.
	assert.False(t, Overlaps(at(9, 0), at(11, 0), at(11, 0), at(12, 0)))
	assert.False(t, Overlaps(at(11, 0), at(12, 0), at(9, 0), at(11, 0)))
}

func TestOverlaps_Disjoint(t *testing.T) {
	assert.False(t, Overlaps(at(9, 0), at(10, 0), at(14, 0), at(15, 0)))
}

func TestReservationStatus_Transitions(t *testing.T) {
	assert.True(t, ReservationStatusPending.CanTransitionTo(ReservationStatusConfirmed))
	assert.True(t, ReservationStatusPending.CanTransitionTo(ReservationStatusCancelled))
	assert.True(t, ReservationStatusConfirmed.CanTransitionTo(ReservationStatusActive))
	assert.True(t, ReservationStatusConfirmed.CanTransitionTo(ReservationStatusCancelled))
	assert.True(t, ReservationStatusActive.CanTransitionTo(ReservationStatusCompleted))
	assert.True(t, ReservationStatusActive.CanTransitionTo(ReservationStatusCancelled))

	assert.False(t, ReservationStatusPending.CanTransitionTo(ReservationStatusActive))
	assert.False(t, ReservationStatusPending.CanTransitionTo(ReservationStatusCompleted))
	assert.False(t, ReservationStatusConfirmed.CanTransitionTo(ReservationStatusCompleted))
	assert.False(t, ReservationStatusActive.CanTransitionTo(ReservationStatusPending))
}

func TestReservationStatus_TerminalStatesAreFrozen(t *testing.T) {
	for _, terminal := range []ReservationStatus{ReservationStatusCompleted, ReservationStatusCancelled} {
		assert.True(t, terminal.Terminal())
		for _, next := range []ReservationStatus{
			ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusActive,
			ReservationStatusCompleted, ReservationStatusCancelled,
		} {
			assert.False(t, terminal.CanTransitionTo(next), "%s -> %s must be illegal", terminal, next)
		}
	}
}

func TestReservationStatus_Valid(t *testing.T) {
	assert.True(t, ReservationStatusPending.Valid())
	assert.True(t, ReservationStatusCancelled.Valid())
	assert.False(t, ReservationStatus("Parked").Valid())
	assert.False(t, ReservationStatus("").Valid())
}

func TestPaymentStatus_Valid(t *testing.T) {
	assert.True(t, PaymentStatusUnpaid.Valid())
	assert.True(t, PaymentStatusPaid.Valid())
	assert.True(t, PaymentStatusRefunded.Valid())
	assert.False(t, PaymentStatus("overdue").Valid())
}
