package domain

import "time"

type ParkingSpot struct {
	ID          int64     `json:"spot_id"`
	Location    string    `json:"location"`
	SpotNumber  string    `json:"spot_number"`
	Zone        string    `json:"zone"`
	Capacity    int       `json:"capacity"`
	IsAvailable bool      `json:"is_available"`
	SpotType    string    `json:"spot_type"`
	HourlyRate  float64   `json:"hourly_rate"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateSpotInput struct {
	Location    string
	SpotNumber  string
	Zone        string
	Capacity    int
	IsAvailable *bool
	SpotType    string
	HourlyRate  float64
	Latitude    *float64
	Longitude   *float64
}

// UpdateSpotInput enumerates the mutable spot fields. A nil field is left
// untouched; anything outside this set is not writable through the API.
type UpdateSpotInput struct {
	Location    *string
	SpotNumber  *string
	Zone        *string
	Capacity    *int
	IsAvailable *bool
	SpotType    *string
	HourlyRate  *float64
	Latitude    *float64
	Longitude   *float64
}

func (in UpdateSpotInput) Empty() bool {
	return in.Location == nil && in.SpotNumber == nil && in.Zone == nil &&
		in.Capacity == nil && in.IsAvailable == nil && in.SpotType == nil &&
		in.HourlyRate == nil && in.Latitude == nil && in.Longitude == nil
}

// SpotFilter narrows spot listings; nil means "any".
type SpotFilter struct {
	Available *bool
	Zone      *string
}
