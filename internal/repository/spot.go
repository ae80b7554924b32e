package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SpotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSpotRepo(db *dbpg.DB) *SpotRepository {
	return &SpotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const spotColumns = `spot_id, location, spot_number, zone, capacity, is_available,
		spot_type, hourly_rate, latitude, longitude, created_at, updated_at`

func (r *SpotRepository) Create(ctx context.Context, s *domain.ParkingSpot) error {
	query := `INSERT INTO parking_spots (location, spot_number, zone, capacity, is_available,
				spot_type, hourly_rate, latitude, longitude, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
			  RETURNING spot_id`
	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		s.Location, s.SpotNumber, s.Zone, s.Capacity, s.IsAvailable,
		s.SpotType, s.HourlyRate, s.Latitude, s.Longitude, now,
	)
	if err != nil {
		return fmt.Errorf("insert spot: %w", err)
	}
	if err = row.Scan(&s.ID); err != nil {
		return fmt.Errorf("scan spot id: %w", err)
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	return nil
}

func (r *SpotRepository) GetByID(ctx context.Context, id int64) (*domain.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + `
			  FROM parking_spots
			  WHERE spot_id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get spot: %w", err)
	}

	var s domain.ParkingSpot
	if err = scanSpot(row.Scan, &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSpotNotFound
		}
		return nil, fmt.Errorf("scan spot: %w", err)
	}

	return &s, nil
}

func (r *SpotRepository) List(ctx context.Context, filter domain.SpotFilter) ([]*domain.ParkingSpot, error) {
	query := `SELECT ` + spotColumns + `
			  FROM parking_spots
			  WHERE 1=1`
	var args []any

	if filter.Available != nil {
		args = append(args, *filter.Available)
		query += fmt.Sprintf(" AND is_available = $%d", len(args))
	}
	if filter.Zone != nil {
		args = append(args, *filter.Zone)
		query += fmt.Sprintf(" AND zone = $%d", len(args))
	}
	query += " ORDER BY location, spot_number"

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list spots: %w", err)
	}
	defer rows.Close()

	var res []*domain.ParkingSpot
	for rows.Next() {
		var s domain.ParkingSpot
		if err = scanSpot(rows.Scan, &s); err != nil {
			return nil, fmt.Errorf("scan spot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SpotRepository) Update(ctx context.Context, id int64, in domain.UpdateSpotInput) error {
	var (
		sets []string
		args []any
	)
	set := func(column string, value any) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if in.Location != nil {
		set("location", *in.Location)
	}
	if in.SpotNumber != nil {
		set("spot_number", *in.SpotNumber)
	}
	if in.Zone != nil {
		set("zone", *in.Zone)
	}
	if in.Capacity != nil {
		set("capacity", *in.Capacity)
	}
	if in.IsAvailable != nil {
		set("is_available", *in.IsAvailable)
	}
	if in.SpotType != nil {
		set("spot_type", *in.SpotType)
	}
	if in.HourlyRate != nil {
		set("hourly_rate", *in.HourlyRate)
	}
	if in.Latitude != nil {
		set("latitude", *in.Latitude)
	}
	if in.Longitude != nil {
		set("longitude", *in.Longitude)
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")

	args = append(args, id)
	query := fmt.Sprintf(
		"UPDATE parking_spots SET %s WHERE spot_id = $%d",
		strings.Join(sets, ", "), len(args),
	)

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return fmt.Errorf("update spot: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("spot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSpotNotFound
	}

	return nil
}

func (r *SpotRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM parking_spots WHERE spot_id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete spot: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("spot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSpotNotFound
	}

	return nil
}

func scanSpot(scan func(...any) error, s *domain.ParkingSpot) error {
	return scan(
		&s.ID, &s.Location, &s.SpotNumber, &s.Zone, &s.Capacity, &s.IsAvailable,
		&s.SpotType, &s.HourlyRate, &s.Latitude, &s.Longitude, &s.CreatedAt, &s.UpdatedAt,
	)
}
