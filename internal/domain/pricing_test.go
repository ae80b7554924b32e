package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReservationAmount_WholeHours(t *testing.T) {
	assert.Equal(t, 10.0, ReservationAmount(5.0, at(9, 0), at(11, 0)))
}

func TestReservationAmount_FractionalHours(t *testing.T) {
	// 2.5h at $10/h; minute precision, not whole-hour truncation.
	assert.Equal(t, 25.0, ReservationAmount(10.0, at(9, 0), at(11, 30)))
}

func TestReservationAmount_Deterministic(t *testing.T) {
	first := ReservationAmount(10.0, at(9, 0), at(11, 30))
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, ReservationAmount(10.0, at(9, 0), at(11, 30)))
	}
}

func TestReservationAmount_MonotonicInDuration(t *testing.T) {
	prev := 0.0
	for extra := 1; extra <= 180; extra++ {
		amount := ReservationAmount(7.25, at(9, 0), at(9, 0).Add(time.Duration(extra)*time.Minute))
		assert.GreaterOrEqual(t, amount, prev, "amount decreased at %d minutes", extra)
		prev = amount
	}
}

func TestReservationAmount_PartialMinuteRoundsUp(t *testing.T) {
	withSeconds := ReservationAmount(60.0, at(9, 0), at(9, 30).Add(30*time.Second))
	exact := ReservationAmount(60.0, at(9, 0), at(9, 31))
	assert.Equal(t, exact, withSeconds)
	assert.Equal(t, 31.0, withSeconds)
}

func TestReservationAmount_FreeSpot(t *testing.T) {
	assert.Equal(t, 0.0, ReservationAmount(0, at(9, 0), at(18, 0)))
}

func TestReservationAmount_EmptyInterval(t *testing.T) {
	assert.Equal(t, 0.0, ReservationAmount(12.0, at(9, 0), at(9, 0)))
	assert.Equal(t, 0.0, ReservationAmount(12.0, at(10, 0), at(9, 0)))
}

func TestReservationAmount_RoundsToCents(t *testing.T) {
	// 50 minutes at $9.99/h = 8.325, rounds to 8.33.
	assert.Equal(t, 8.33, ReservationAmount(9.99, at(9, 0), at(9, 50)))
}
