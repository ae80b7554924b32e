package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ReservationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewReservationRepo(db *dbpg.DB) *ReservationRepository {
	return &ReservationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const reservationColumns = `r.reservation_id, r.spot_id, r.user_name, r.user_email, r.user_phone,
		r.start_time, r.end_time, r.vehicle_plate, r.total_amount,
		r.status, r.payment_status, r.created_at, r.updated_at`

func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	// Row lock on the spot serializes concurrent bookings for it; bookings
	// on different spots proceed in parallel.
	var available bool
	lockQuery := `SELECT is_available FROM parking_spots WHERE spot_id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, res.SpotID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("lock spot: %w", err)
	}
	if !available {
		return domain.ErrSpotUnavailable
	}

	if err = findConflict(ctx, tx, res.SpotID, res.StartTime, res.EndTime, 0); err != nil {
		return err
	}

	query := `INSERT INTO reservations (spot_id, user_name, user_email, user_phone,
				start_time, end_time, vehicle_plate, total_amount,
				status, payment_status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
			  RETURNING reservation_id`
	now := time.Now().UTC()
	if err = tx.QueryRowContext(
		ctx, query,
		res.SpotID, res.UserName, res.UserEmail, res.UserPhone,
		res.StartTime, res.EndTime, res.VehiclePlate, res.TotalAmount,
		res.Status, res.PaymentStatus, now,
	).Scan(&res.ID); err != nil {
		return fmt.Errorf("insert reservation: %w", err)
	}
	res.CreatedAt = now
	res.UpdatedAt = now

	return tx.Commit()
}

// findConflict scans for a non-terminal reservation on the spot whose
// half-open interval overlaps [start, end). Full containment in either
// direction counts as overlap. excludeID skips the reservation being
// rescheduled; 0 excludes nothing.
func findConflict(ctx context.Context, tx *sql.Tx, spotID int64, start, end time.Time, excludeID int64) error {
	query := `SELECT reservation_id, start_time, end_time
			  FROM reservations
			  WHERE spot_id = $1
			    AND reservation_id <> $2
			    AND status = ANY($3)
			    AND start_time < $5
			    AND end_time > $4
			  ORDER BY start_time
			  LIMIT 1`

	var (
		conflictID    int64
		conflictStart time.Time
		conflictEnd   time.Time
	)
	err := tx.QueryRowContext(
		ctx, query,
		spotID, excludeID, pq.Array(domain.ActiveStatuses), start, end,
	).Scan(&conflictID, &conflictStart, &conflictEnd)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("check conflicts: %w", err)
	}

	return fmt.Errorf("%w: reservation %d holds %s to %s",
		domain.ErrSlotConflict, conflictID,
		conflictStart.Format(time.RFC3339), conflictEnd.Format(time.RFC3339),
	)
}

func (r *ReservationRepository) GetByID(ctx context.Context, id int64) (*domain.ReservationDetails, error) {
	query := `SELECT ` + reservationColumns + `, p.location, p.spot_number
			  FROM reservations r
			  JOIN parking_spots p ON p.spot_id = r.spot_id
			  WHERE r.reservation_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}

	var d domain.ReservationDetails
	if err = scanReservationDetails(row.Scan, &d); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrReservationNotFound
		}
		return nil, fmt.Errorf("scan reservation: %w", err)
	}

	return &d, nil
}

func (r *ReservationRepository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.ReservationDetails, error) {
	query := `SELECT ` + reservationColumns + `, p.location, p.spot_number
			  FROM reservations r
			  JOIN parking_spots p ON p.spot_id = r.spot_id
			  WHERE 1=1`
	var args []any

	if filter.UserEmail != nil {
		args = append(args, *filter.UserEmail)
		query += fmt.Sprintf(" AND r.user_email = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		query += fmt.Sprintf(" AND r.status = $%d", len(args))
	}
	query += " ORDER BY r.start_time DESC"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	var res []*domain.ReservationDetails
	for rows.Next() {
		var d domain.ReservationDetails
		if err = scanReservationDetails(rows.Scan, &d); err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		res = append(res, &d)
	}

	return res, rows.Err()
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	query := `UPDATE reservations
			  SET status = $3, updated_at = now()
			  WHERE reservation_id = $1 AND status = $2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, from, to)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		// Lost the race or the reservation is gone; report which.
		var current domain.ReservationStatus
		checkQuery := `SELECT status FROM reservations WHERE reservation_id = $1`
		row, scanErr := r.db.QueryRowWithRetry(ctx, r.strategy, checkQuery, id)
		if scanErr != nil {
			return domain.ErrReservationNotFound
		}
		if scanErr = row.Scan(&current); scanErr != nil {
			return domain.ErrReservationNotFound
		}
		return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, current, to)
	}

	return nil
}

func (r *ReservationRepository) UpdateInterval(ctx context.Context, id, spotID int64, start, end time.Time, amount float64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT spot_id FROM parking_spots WHERE spot_id = $1 FOR UPDATE`
	if err = tx.QueryRowContext(ctx, lockQuery, spotID).Scan(&spotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSpotNotFound
		}
		return fmt.Errorf("lock spot: %w", err)
	}

	if err = findConflict(ctx, tx, spotID, start, end, id); err != nil {
		return err
	}

	query := `UPDATE reservations
			  SET start_time = $2, end_time = $3, total_amount = $4, updated_at = now()
			  WHERE reservation_id = $1`
	res, err := tx.ExecContext(ctx, query, id, start, end, amount)
	if err != nil {
		return fmt.Errorf("update interval: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("interval rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return tx.Commit()
}

func (r *ReservationRepository) UpdatePayment(ctx context.Context, id int64, status domain.PaymentStatus) error {
	query := `UPDATE reservations
			  SET payment_status = $2, updated_at = now()
			  WHERE reservation_id = $1`
	return r.execOnReservation(ctx, query, id, status)
}

func (r *ReservationRepository) UpdateVehiclePlate(ctx context.Context, id int64, plate *string) error {
	query := `UPDATE reservations
			  SET vehicle_plate = $2, updated_at = now()
			  WHERE reservation_id = $1`
	return r.execOnReservation(ctx, query, id, plate)
}

func (r *ReservationRepository) Delete(ctx context.Context, id int64) error {
	return r.execOnReservation(ctx, `DELETE FROM reservations WHERE reservation_id = $1`, id)
}

func (r *ReservationRepository) execOnReservation(ctx context.Context, query string, id int64, args ...any) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, append([]any{id}, args...)...)
	if err != nil {
		return fmt.Errorf("exec reservation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("reservation rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrReservationNotFound
	}

	return nil
}

// ActivateDue moves confirmed reservations whose slot has begun to Active.
func (r *ReservationRepository) ActivateDue(ctx context.Context) ([]*domain.Reservation, error) {
	return r.sweep(ctx,
		domain.ReservationStatusConfirmed, domain.ReservationStatusActive,
		`start_time <= now()`,
	)
}

// CompleteElapsed moves active reservations whose slot has ended to Completed.
func (r *ReservationRepository) CompleteElapsed(ctx context.Context) ([]*domain.Reservation, error) {
	return r.sweep(ctx,
		domain.ReservationStatusActive, domain.ReservationStatusCompleted,
		`end_time <= now()`,
	)
}

// CancelUnclaimed cancels pending reservations never confirmed before their
// slot began, releasing the slot back to the conflict domain.
func (r *ReservationRepository) CancelUnclaimed(ctx context.Context) ([]*domain.Reservation, error) {
	return r.sweep(ctx,
		domain.ReservationStatusPending, domain.ReservationStatusCancelled,
		`start_time <= now()`,
	)
}

func (r *ReservationRepository) sweep(ctx context.Context, from, to domain.ReservationStatus, cond string) ([]*domain.Reservation, error) {
	query := `UPDATE reservations r
			  SET status = $2, updated_at = now()
			  WHERE r.status = $1 AND ` + cond + `
			  RETURNING ` + reservationColumns

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("sweep %s to %s: %w", from, to, err)
	}
	defer rows.Close()

	var res []*domain.Reservation
	for rows.Next() {
		var rec domain.Reservation
		if err = scanReservation(rows.Scan, &rec); err != nil {
			return nil, fmt.Errorf("scan swept reservation: %w", err)
		}
		res = append(res, &rec)
	}

	return res, rows.Err()
}

func scanReservation(scan func(...any) error, rec *domain.Reservation) error {
	return scan(
		&rec.ID, &rec.SpotID, &rec.UserName, &rec.UserEmail, &rec.UserPhone,
		&rec.StartTime, &rec.EndTime, &rec.VehiclePlate, &rec.TotalAmount,
		&rec.Status, &rec.PaymentStatus, &rec.CreatedAt, &rec.UpdatedAt,
	)
}

func scanReservationDetails(scan func(...any) error, d *domain.ReservationDetails) error {
	return scan(
		&d.ID, &d.SpotID, &d.UserName, &d.UserEmail, &d.UserPhone,
		&d.StartTime, &d.EndTime, &d.VehiclePlate, &d.TotalAmount,
		&d.Status, &d.PaymentStatus, &d.CreatedAt, &d.UpdatedAt,
		&d.SpotLocation, &d.SpotNumber,
	)
}
