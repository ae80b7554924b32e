package dto

import (
	"time"

	"github.com/FarHanZzzz/SmartUrban/internal/domain"
)

type SpotResponse struct {
	SpotID      int64    `json:"spot_id"`
	Location    string   `json:"location"`
	SpotNumber  string   `json:"spot_number"`
	Zone        string   `json:"zone,omitempty"`
	Capacity    int      `json:"capacity"`
	IsAvailable bool     `json:"is_available"`
	SpotType    string   `json:"spot_type"`
	HourlyRate  float64  `json:"hourly_rate"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	CreatedAt   string   `json:"created_at"`
}

type CreateReservationResponse struct {
	ReservationID int64   `json:"reservation_id"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
}

type ReservationResponse struct {
	ReservationID int64   `json:"reservation_id"`
	SpotID        int64   `json:"spot_id"`
	Location      string  `json:"location"`
	SpotNumber    string  `json:"spot_number"`
	UserName      string  `json:"user_name"`
	UserEmail     string  `json:"user_email"`
	UserPhone     *string `json:"user_phone,omitempty"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	VehiclePlate  *string `json:"vehicle_plate,omitempty"`
	TotalAmount   float64 `json:"total_amount"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"payment_status"`
	CreatedAt     string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSpotResponse(s *domain.ParkingSpot) SpotResponse {
	return SpotResponse{
		SpotID:      s.ID,
		Location:    s.Location,
		SpotNumber:  s.SpotNumber,
		Zone:        s.Zone,
		Capacity:    s.Capacity,
		IsAvailable: s.IsAvailable,
		SpotType:    s.SpotType,
		HourlyRate:  s.HourlyRate,
		Latitude:    s.Latitude,
		Longitude:   s.Longitude,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func ToCreateReservationResponse(r *domain.Reservation) CreateReservationResponse {
	return CreateReservationResponse{
		ReservationID: r.ID,
		TotalAmount:   r.TotalAmount,
		Status:        string(r.Status),
	}
}

func ToReservationResponse(d *domain.ReservationDetails) ReservationResponse {
	return ReservationResponse{
		ReservationID: d.ID,
		SpotID:        d.SpotID,
		Location:      d.SpotLocation,
		SpotNumber:    d.SpotNumber,
		UserName:      d.UserName,
		UserEmail:     d.UserEmail,
		UserPhone:     d.UserPhone,
		StartTime:     d.StartTime.Format(time.RFC3339),
		EndTime:       d.EndTime.Format(time.RFC3339),
		VehiclePlate:  d.VehiclePlate,
		TotalAmount:   d.TotalAmount,
		Status:        string(d.Status),
		PaymentStatus: string(d.PaymentStatus),
		CreatedAt:     d.CreatedAt.Format(time.RFC3339),
	}
}
