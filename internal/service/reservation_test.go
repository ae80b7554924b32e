package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/FarHanZzzz/SmartUrban/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func slotTime(hour int) time.Time {
	return time.Date(2025, time.June, 2, hour, 0, 0, 0, time.UTC)
}

func newReservationService(t *testing.T) (*ReservationService, *mocks.MockReservationRepo, *mocks.MockSpotRepo, *mocks.MockOpsNotifier) {
	t.Helper()
	reservationRepo := mocks.NewMockReservationRepo(t)
	spotRepo := mocks.NewMockSpotRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	svc := NewReservationService(reservationRepo, spotRepo, notifier, newTestLogger(t))
	return svc, reservationRepo, spotRepo, notifier
}

func TestReservationService_Create_Success(t *testing.T) {
	svc, reservationRepo, spotRepo, notifier := newReservationService(t)

	spot := &domain.ParkingSpot{ID: 1, Location: "Central Garage", SpotNumber: "A-12", IsAvailable: true, HourlyRate: 5.0}

	spotRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(spot, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, r *domain.Reservation) {
		r.ID = 42
	}).Return(nil)
	notifier.EXPECT().NotifyReservationCreated(mock.Anything, mock.Anything, spot).Return()

	reservation, err := svc.Create(context.Background(), domain.CreateReservationInput{
		SpotID:    1,
		UserName:  "Alice",
		UserEmail: "alice@example.com",
		StartTime: slotTime(9),
		EndTime:   slotTime(11),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), reservation.ID)
	assert.Equal(t, domain.ReservationStatusPending, reservation.Status)
	assert.Equal(t, domain.PaymentStatusUnpaid, reservation.PaymentStatus)
	assert.Equal(t, 10.0, reservation.TotalAmount)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Create_SpotNotFound(t *testing.T) {
	svc, _, spotRepo, _ := newReservationService(t)

	spotRepo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrSpotNotFound)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		SpotID:    99,
		UserName:  "Alice",
		UserEmail: "alice@example.com",
		StartTime: slotTime(9),
		EndTime:   slotTime(11),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpotNotFound)
}

func TestReservationService_Create_SpotUnavailable(t *testing.T) {
	svc, _, spotRepo, _ := newReservationService(t)

	spot := &domain.ParkingSpot{ID: 1, IsAvailable: false, HourlyRate: 5.0}
	spotRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(spot, nil)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		SpotID:    1,
		UserName:  "Alice",
		UserEmail: "alice@example.com",
		StartTime: slotTime(9),
		EndTime:   slotTime(11),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSpotUnavailable)
}

func TestReservationService_Create_InvertedInterval(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		SpotID:    1,
		UserName:  "Alice",
		UserEmail: "alice@example.com",
		StartTime: slotTime(11),
		EndTime:   slotTime(9),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestReservationService_Create_ZeroLengthInterval(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		SpotID:    1,
		UserName:  "Alice",
		UserEmail: "alice@example.com",
		StartTime: slotTime(9),
		EndTime:   slotTime(9),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestReservationService_Create_MissingEmail(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		SpotID:    1,
		UserName:  "Alice",
		StartTime: slotTime(9),
		EndTime:   slotTime(11),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Create_Conflict(t *testing.T) {
	svc, reservationRepo, spotRepo, _ := newReservationService(t)

	spot := &domain.ParkingSpot{ID: 1, IsAvailable: true, HourlyRate: 5.0}
	spotRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(spot, nil)
	reservationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSlotConflict)

	_, err := svc.Create(context.Background(), domain.CreateReservationInput{
		SpotID:    1,
		UserName:  "Bob",
		UserEmail: "bob@example.com",
		StartTime: slotTime(10),
		EndTime:   slotTime(12),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestReservationService_Update_ConfirmPending(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusPending,
		StartTime: slotTime(9), EndTime: slotTime(11),
	}}
	status := domain.ReservationStatusConfirmed

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	reservationRepo.EXPECT().UpdateStatus(mock.Anything, int64(7), domain.ReservationStatusPending, domain.ReservationStatusConfirmed).Return(nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{Status: &status})

	require.NoError(t, err)
}

func TestReservationService_Update_IllegalTransition(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusPending,
	}}
	status := domain.ReservationStatusCompleted

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Update_SameStatusIsNoOp(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusConfirmed,
	}}
	status := domain.ReservationStatusConfirmed

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{Status: &status})

	require.NoError(t, err)
}

func TestReservationService_Update_TerminalSameStatus(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, Status: domain.ReservationStatusCompleted,
	}}
	status := domain.ReservationStatusCompleted

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Update_UnknownStatus(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, Status: domain.ReservationStatusPending,
	}}
	status := domain.ReservationStatus("Parked")

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Update_RescheduleRecomputesAmount(t *testing.T) {
	svc, reservationRepo, spotRepo, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusPending,
		StartTime: slotTime(9), EndTime: slotTime(11), TotalAmount: 20.0,
	}}
	newEnd := slotTime(12)

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	spotRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.ParkingSpot{ID: 1, IsAvailable: true, HourlyRate: 10.0}, nil)
	reservationRepo.EXPECT().UpdateInterval(mock.Anything, int64(7), int64(1), slotTime(9), slotTime(12), 30.0).Return(nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{EndTime: &newEnd})

	require.NoError(t, err)
}

func TestReservationService_Update_IntervalFrozenWhenActive(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusActive,
		StartTime: slotTime(9), EndTime: slotTime(11),
	}}
	newEnd := slotTime(12)

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{EndTime: &newEnd})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Update_RescheduleConflict(t *testing.T) {
	svc, reservationRepo, spotRepo, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusConfirmed,
		StartTime: slotTime(9), EndTime: slotTime(11),
	}}
	newEnd := slotTime(14)

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	spotRepo.EXPECT().GetByID(mock.Anything, int64(1)).Return(&domain.ParkingSpot{ID: 1, HourlyRate: 10.0}, nil)
	reservationRepo.EXPECT().UpdateInterval(mock.Anything, int64(7), int64(1), slotTime(9), slotTime(14), 50.0).Return(domain.ErrSlotConflict)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{EndTime: &newEnd})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestReservationService_Update_InvertedInterval(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusPending,
		StartTime: slotTime(9), EndTime: slotTime(11),
	}}
	newStart := slotTime(12) // past the unchanged end

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{StartTime: &newStart})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInterval)
}

func TestReservationService_Update_Payment(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, Status: domain.ReservationStatusConfirmed,
	}}
	payment := domain.PaymentStatusPaid

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	reservationRepo.EXPECT().UpdatePayment(mock.Anything, int64(7), domain.PaymentStatusPaid).Return(nil)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{PaymentStatus: &payment})

	require.NoError(t, err)
}

func TestReservationService_Update_Empty(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	err := svc.Update(context.Background(), 7, domain.UpdateReservationInput{})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Update_NotFound(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	status := domain.ReservationStatusConfirmed
	reservationRepo.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domain.ErrReservationNotFound)

	err := svc.Update(context.Background(), 404, domain.UpdateReservationInput{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_Cancel_Pending(t *testing.T) {
	svc, reservationRepo, _, notifier := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, SpotID: 1, Status: domain.ReservationStatusPending,
	}}

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)
	reservationRepo.EXPECT().UpdateStatus(mock.Anything, int64(7), domain.ReservationStatusPending, domain.ReservationStatusCancelled).Return(nil)
	notifier.EXPECT().NotifyReservationCancelled(mock.Anything, mock.Anything).Return()

	err := svc.Cancel(context.Background(), 7)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, Status: domain.ReservationStatusCancelled,
	}}

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Cancel(context.Background(), 7)

	require.NoError(t, err)
}

func TestReservationService_Cancel_Completed(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	current := &domain.ReservationDetails{Reservation: domain.Reservation{
		ID: 7, Status: domain.ReservationStatusCompleted,
	}}

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(7)).Return(current, nil)

	err := svc.Cancel(context.Background(), 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	reservationRepo.EXPECT().GetByID(mock.Anything, int64(404)).Return(nil, domain.ErrReservationNotFound)

	err := svc.Cancel(context.Background(), 404)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrReservationNotFound)
}

func TestReservationService_List_UnknownStatusFilter(t *testing.T) {
	svc, _, _, _ := newReservationService(t)

	status := domain.ReservationStatus("Parked")
	_, err := svc.List(context.Background(), domain.ReservationFilter{Status: &status})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_SweepLifecycle_Success(t *testing.T) {
	svc, reservationRepo, _, notifier := newReservationService(t)

	activated := []*domain.Reservation{{ID: 1, Status: domain.ReservationStatusActive}}
	completed := []*domain.Reservation{{ID: 2, Status: domain.ReservationStatusCompleted}}
	noShows := []*domain.Reservation{{ID: 3, Status: domain.ReservationStatusCancelled}}

	reservationRepo.EXPECT().ActivateDue(mock.Anything).Return(activated, nil)
	reservationRepo.EXPECT().CompleteElapsed(mock.Anything).Return(completed, nil)
	reservationRepo.EXPECT().CancelUnclaimed(mock.Anything).Return(noShows, nil)
	notifier.EXPECT().NotifyReservationNoShow(mock.Anything, noShows[0]).Return()

	sweep, err := svc.SweepLifecycle(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, sweep.Total())
	assert.Len(t, sweep.Activated, 1)
	assert.Len(t, sweep.Completed, 1)
	assert.Len(t, sweep.NoShows, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_SweepLifecycle_Empty(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	reservationRepo.EXPECT().ActivateDue(mock.Anything).Return(nil, nil)
	reservationRepo.EXPECT().CompleteElapsed(mock.Anything).Return(nil, nil)
	reservationRepo.EXPECT().CancelUnclaimed(mock.Anything).Return(nil, nil)

	sweep, err := svc.SweepLifecycle(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sweep.Total())
}

func TestReservationService_SweepLifecycle_RepoError(t *testing.T) {
	svc, reservationRepo, _, _ := newReservationService(t)

	reservationRepo.EXPECT().ActivateDue(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.SweepLifecycle(context.Background())

	require.Error(t, err)
}
