package dto

type CreateSpotRequest struct {
	Location    string   `json:"location" binding:"required"`
	SpotNumber  string   `json:"spot_number" binding:"required"`
	Zone        string   `json:"zone"`
	Capacity    int      `json:"capacity" binding:"omitempty,gt=0"`
	IsAvailable *bool    `json:"is_available"`
	SpotType    string   `json:"spot_type"`
	HourlyRate  float64  `json:"hourly_rate" binding:"gte=0"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type UpdateSpotRequest struct {
	Location    *string  `json:"location"`
	SpotNumber  *string  `json:"spot_number"`
	Zone        *string  `json:"zone"`
	Capacity    *int     `json:"capacity"`
	IsAvailable *bool    `json:"is_available"`
	SpotType    *string  `json:"spot_type"`
	HourlyRate  *float64 `json:"hourly_rate"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type CreateReservationRequest struct {
	SpotID       int64   `json:"spot_id" binding:"required,gt=0"`
	UserName     string  `json:"user_name" binding:"required"`
	UserEmail    string  `json:"user_email" binding:"required,email"`
	UserPhone    *string `json:"user_phone"`
	StartTime    string  `json:"start_time" binding:"required"`
	EndTime      string  `json:"end_time" binding:"required"`
	VehiclePlate *string `json:"vehicle_plate"`
}

type UpdateReservationRequest struct {
	Status        *string `json:"status"`
	PaymentStatus *string `json:"payment_status"`
	StartTime     *string `json:"start_time"`
	EndTime       *string `json:"end_time"`
	VehiclePlate  *string `json:"vehicle_plate"`
}
