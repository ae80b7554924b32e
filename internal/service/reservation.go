package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/FarHanZzzz/SmartUrban/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	spotRepo        ports.SpotRepo
	notifier        ports.OpsNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	spotRepo ports.SpotRepo,
	notifier ports.OpsNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		spotRepo:        spotRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// Create books a spot for [input.StartTime, input.EndTime). Validation runs
// before any lock is taken; the availability and conflict checks are repeated
// by the repository inside the transaction, so two concurrent requests for an
// overlapping slot can never both commit.
func (s *ReservationService) Create(ctx context.Context, input domain.CreateReservationInput) (*domain.Reservation, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	spot, err := s.spotRepo.GetByID(ctx, input.SpotID)
	if err != nil {
		return nil, fmt.Errorf("check spot: %w", err)
	}
	if !spot.IsAvailable {
		return nil, domain.ErrSpotUnavailable
	}

	reservation := &domain.Reservation{
		SpotID:        input.SpotID,
		UserName:      input.UserName,
		UserEmail:     input.UserEmail,
		UserPhone:     input.UserPhone,
		StartTime:     input.StartTime.UTC(),
		EndTime:       input.EndTime.UTC(),
		VehiclePlate:  input.VehiclePlate,
		TotalAmount:   domain.ReservationAmount(spot.HourlyRate, input.StartTime, input.EndTime),
		Status:        domain.ReservationStatusPending,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}

	if err = s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.logger.Info("reservation created",
		logger.Int64("reservation_id", reservation.ID),
		logger.Int64("spot_id", reservation.SpotID),
		logger.String("user_email", reservation.UserEmail),
		logger.Any("total_amount", reservation.TotalAmount),
	)

	go s.notifier.NotifyReservationCreated(context.WithoutCancel(ctx), reservation, spot)

	return reservation, nil
}

func validateCreateInput(input domain.CreateReservationInput) error {
	if input.UserName == "" {
		return fmt.Errorf("%w: user_name is required", domain.ErrValidation)
	}
	if input.UserEmail == "" {
		return fmt.Errorf("%w: user_email is required", domain.ErrValidation)
	}
	if !strings.Contains(input.UserEmail, "@") {
		return fmt.Errorf("%w: user_email is malformed", domain.ErrValidation)
	}
	if input.StartTime.IsZero() || input.EndTime.IsZero() {
		return fmt.Errorf("%w: start_time and end_time are required", domain.ErrInvalidInterval)
	}
	if !input.StartTime.Before(input.EndTime) {
		return fmt.Errorf("%w: start_time must be before end_time", domain.ErrInvalidInterval)
	}
	return nil
}

func (s *ReservationService) GetByID(ctx context.Context, id int64) (*domain.ReservationDetails, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error) {
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *filter.Status)
	}
	return s.reservationRepo.List(ctx, filter)
}

// Update applies a partial update over the mutable field set. The interval is
// applied before the status so a pending reservation can be rescheduled and
// confirmed in one request.
func (s *ReservationService) Update(ctx context.Context, id int64, input domain.UpdateReservationInput) error {
	if input.Empty() {
		return fmt.Errorf("%w: no fields to update", domain.ErrValidation)
	}

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if input.StartTime != nil || input.EndTime != nil {
		if err = s.updateInterval(ctx, current, input.StartTime, input.EndTime); err != nil {
			return err
		}
	}

	if input.Status != nil {
		if err = s.updateStatus(ctx, current, *input.Status); err != nil {
			return err
		}
	}

	if input.PaymentStatus != nil {
		if !input.PaymentStatus.Valid() {
			return fmt.Errorf("%w: unknown payment status %q", domain.ErrValidation, *input.PaymentStatus)
		}
		if err = s.reservationRepo.UpdatePayment(ctx, id, *input.PaymentStatus); err != nil {
			return fmt.Errorf("update payment status: %w", err)
		}
	}

	if input.VehiclePlate != nil {
		if err = s.reservationRepo.UpdateVehiclePlate(ctx, id, input.VehiclePlate); err != nil {
			return fmt.Errorf("update vehicle plate: %w", err)
		}
	}

	return nil
}

// updateInterval moves one or both ends of the reservation's slot. Only
// pending and confirmed reservations may move; an active or closed slot's
// history is frozen.
func (s *ReservationService) updateInterval(ctx context.Context, current *domain.ReservationDetails, start, end *time.Time) error {
	if current.Status != domain.ReservationStatusPending && current.Status != domain.ReservationStatusConfirmed {
		return fmt.Errorf("%w: interval is frozen in status %s", domain.ErrInvalidTransition, current.Status)
	}

	newStart := current.StartTime
	newEnd := current.EndTime
	if start != nil {
		newStart = start.UTC()
	}
	if end != nil {
		newEnd = end.UTC()
	}
	if !newStart.Before(newEnd) {
		return fmt.Errorf("%w: start_time must be before end_time", domain.ErrInvalidInterval)
	}

	spot, err := s.spotRepo.GetByID(ctx, current.SpotID)
	if err != nil {
		return fmt.Errorf("check spot: %w", err)
	}
	amount := domain.ReservationAmount(spot.HourlyRate, newStart, newEnd)

	if err = s.reservationRepo.UpdateInterval(ctx, current.ID, current.SpotID, newStart, newEnd, amount); err != nil {
		return fmt.Errorf("update interval: %w", err)
	}

	s.logger.Info("reservation rescheduled",
		logger.Int64("reservation_id", current.ID),
		logger.Int64("spot_id", current.SpotID),
		logger.Any("total_amount", amount),
	)

	return nil
}

func (s *ReservationService) updateStatus(ctx context.Context, current *domain.ReservationDetails, next domain.ReservationStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}
	if next == current.Status {
		// Repeating the current status is a harmless no-op, but terminal
		// reservations refuse any status write, including their own.
		if current.Status.Terminal() {
			return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
		}
		return nil
	}
	if !current.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current.Status, next)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, current.ID, current.Status, next); err != nil {
		return err
	}

	s.logger.Info("reservation status changed",
		logger.Int64("reservation_id", current.ID),
		logger.String("from", string(current.Status)),
		logger.String("to", string(next)),
	)

	if next == domain.ReservationStatusCancelled {
		go s.notifier.NotifyReservationCancelled(context.WithoutCancel(ctx), &current.Reservation)
	}

	return nil
}

// Cancel is idempotent: cancelling an already cancelled reservation is a
// successful no-op. Only a completed reservation refuses to cancel.
func (s *ReservationService) Cancel(ctx context.Context, id int64) error {
	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if current.Status == domain.ReservationStatusCancelled {
		return nil
	}

	return s.updateStatus(ctx, current, domain.ReservationStatusCancelled)
}

// Delete removes the record administratively, bypassing the status lifecycle.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	return s.reservationRepo.Delete(ctx, id)
}

// SweepLifecycle advances time-driven status transitions: confirmed slots
// that have begun become active, active slots that have ended complete, and
// pending slots never confirmed by their start time are cancelled as
// no-shows.
func (s *ReservationService) SweepLifecycle(ctx context.Context) (domain.LifecycleSweep, error) {
	var sweep domain.LifecycleSweep
	var err error

	if sweep.Activated, err = s.reservationRepo.ActivateDue(ctx); err != nil {
		return sweep, fmt.Errorf("activate due: %w", err)
	}
	if sweep.Completed, err = s.reservationRepo.CompleteElapsed(ctx); err != nil {
		return sweep, fmt.Errorf("complete elapsed: %w", err)
	}
	if sweep.NoShows, err = s.reservationRepo.CancelUnclaimed(ctx); err != nil {
		return sweep, fmt.Errorf("cancel unclaimed: %w", err)
	}

	if len(sweep.NoShows) > 0 {
		go s.notifyNoShows(context.WithoutCancel(ctx), sweep.NoShows)
	}

	return sweep, nil
}

func (s *ReservationService) notifyNoShows(ctx context.Context, reservations []*domain.Reservation) {
	for _, r := range reservations {
		s.notifier.NotifyReservationNoShow(ctx, r)
	}
}
