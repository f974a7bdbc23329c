package domain

import (
	"time"

	"github.com/google/uuid"
)

// Office is a registered location staff can mark attendance against.
// RequiredDistanceM is the geofence radius in meters; when nil the
// evaluator falls back to the service-wide default (1000 m).
type Office struct {
	ID                uuid.UUID `json:"id"`
	ManagerID         uuid.UUID `json:"manager_id"`
	Name              string    `json:"name"`
	Lat               float64   `json:"lat" validate:"lat"` // -90..90
	Lng               float64   `json:"lng" validate:"lng"` // -180..180
	RequiredDistanceM *float64  `json:"required_distance_m,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// Coordinate is a device fix at the moment of an attendance action.
// AccuracyM is the positioning service's self-reported uncertainty
// radius; nil when the device did not report one.
type Coordinate struct {
	Lat       float64  `json:"lat"`
	Lng       float64  `json:"lng"`
	AccuracyM *float64 `json:"accuracy_m,omitempty"`
}
