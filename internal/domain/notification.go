package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPayload is what the notify queue carries for every recorded
// attendance mark; the sender worker posts it to the configured webhook.
type NotificationPayload struct {
	UserID      uuid.UUID `json:"user_id"`
	OfficeID    uuid.UUID `json:"office_id"`
	OfficeName  string    `json:"office_name"`
	DistanceM   float64   `json:"distance_m"`
	WithinRange bool      `json:"within_range"`
	Overridden  bool      `json:"overridden"`
	MarkedAt    time.Time `json:"marked_at"`
}
